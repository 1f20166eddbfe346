package trekclient_test

import (
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	trekhttp "github.com/BishowDevkota/trekking-company/internal/trek/http"
	"github.com/BishowDevkota/trekking-company/internal/trek/service"
	"github.com/BishowDevkota/trekking-company/internal/trek/store/drivers/sqlite"
	"github.com/BishowDevkota/trekking-company/pkg/slogx"
	"github.com/BishowDevkota/trekking-company/pkg/trekclient"
	"github.com/stretchr/testify/require"
)

const bucket = "trek-assets"

type memHost struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (h *memHost) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.objects[key] = b
	return assetURL(key), nil
}

func (h *memHost) Delete(_ context.Context, key string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.objects, key)
	return nil
}

func (h *memHost) has(key string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.objects[key]
	return ok
}

func (h *memHost) Ping(context.Context) error { return nil }

func (h *memHost) PublicID(url string) (string, bool) {
	return assets.PublicIDFromURL(bucket, url)
}

func assetURL(key string) string {
	return "http://assets.test/" + bucket + "/" + key
}

// newServer starts the full HTTP API on a temp sqlite database.
func newServer(t *testing.T) (*httptest.Server, *memHost) {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "trek.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	tokens, err := service.NewTokenService(service.TokenConfig{
		AccessSecret:  []byte("client-test-access"),
		RefreshSecret: []byte("client-test-refresh"),
		Issuer:        "trekking-company",
	})
	require.NoError(t, err)

	host := &memHost{objects: map[string][]byte{}}

	router := trekhttp.NewRouter("client-test", st, host, nil, 10*time.Second, slogx.Discard())
	router.TokenService = tokens
	router.SessionService = &service.SessionService{Store: st, Tokens: tokens}
	router.RegionService = &service.RegionService{Store: st, Assets: host}
	router.TrekService = &service.TrekService{Store: st, Assets: host}
	router.ImageService = &service.ImageService{Assets: host}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, host
}

// signIn registers an admin and signs in as them.
func signIn(t *testing.T, c *trekclient.Client, username string) *trekclient.Session {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, c.SignUp(ctx, trekclient.SignUpRequest{
		FullName: "Test " + username,
		Username: username,
		Email:    username + "@example.com",
		Password: "correct horse battery",
	}))

	sess, err := c.SignIn(ctx, username, "correct horse battery")
	require.NoError(t, err)
	return sess
}
