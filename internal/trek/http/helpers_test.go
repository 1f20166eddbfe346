package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"slices"
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

const testBucket = "trek-assets"

type memHost struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func (h *memHost) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.objects[key] = b
	return "http://assets.test/" + testBucket + "/" + key, nil
}

func (h *memHost) Delete(_ context.Context, key string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deleted = append(h.deleted, key)
	delete(h.objects, key)
	return nil
}

func (h *memHost) deletedKeys() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.deleted)
}

func (h *memHost) Ping(context.Context) error { return nil }

func (h *memHost) PublicID(url string) (string, bool) {
	return assets.PublicIDFromURL(testBucket, url)
}

type testEnv struct {
	srv    *httptest.Server
	host   *memHost
	tokens *service.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "trek.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	tokens, err := service.NewTokenService(service.TokenConfig{
		AccessSecret:  []byte("access-secret-for-tests"),
		RefreshSecret: []byte("refresh-secret-for-tests"),
		Issuer:        "trekking-company",
	})
	require.NoError(t, err)

	host := &memHost{objects: map[string][]byte{}}

	router := trekhttp.NewRouter("test", st, host, nil, 10*time.Second, slogx.Discard())
	router.TokenService = tokens
	router.SessionService = &service.SessionService{Store: st, Tokens: tokens}
	router.RegionService = &service.RegionService{Store: st, Assets: host}
	router.TrekService = &service.TrekService{Store: st, Assets: host}
	router.ImageService = &service.ImageService{Assets: host}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, host: host, tokens: tokens}
}

// client returns an HTTP client with its own cookie jar, like a browser.
func (e *testEnv) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

type reply struct {
	status int
	header http.Header
	body   []byte
}

func (r reply) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.body, v), string(r.body))
}

func (r reply) errorMessage(t *testing.T) string {
	t.Helper()
	var e trekclient.ErrorResponse
	r.decode(t, &e)
	return e.Error
}

func (e *testEnv) do(t *testing.T, c *http.Client, method, path, token string, body any) reply {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return reply{status: resp.StatusCode, header: resp.Header, body: b}
}

// signUpAndIn registers an admin and signs in with c, returning the access
// token. The refresh cookie lands in c's jar.
func (e *testEnv) signUpAndIn(t *testing.T, c *http.Client, username string) string {
	t.Helper()

	r := e.do(t, c, http.MethodPost, "/auth/sign-up", "", trekclient.SignUpRequest{
		FullName: "Admin " + username,
		Username: username,
		Email:    username + "@example.com",
		Password: "correct horse",
	})
	require.Equal(t, http.StatusCreated, r.status, string(r.body))

	r = e.do(t, c, http.MethodPost, "/auth/sign-in", "", trekclient.SignInRequest{
		Username: username,
		Password: "correct horse",
	})
	require.Equal(t, http.StatusOK, r.status, string(r.body))

	var res trekclient.SignInResponse
	r.decode(t, &res)
	return res.AccessToken
}

func assetURL(key string) string { return "http://assets.test/" + testBucket + "/" + key }
