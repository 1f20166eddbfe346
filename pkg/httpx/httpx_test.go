package httpx_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BishowDevkota/trekking-company/pkg/httpx"
	"github.com/BishowDevkota/trekking-company/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, http.StatusConflict, "Username is taken")

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"error":"Username is taken"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Everest","extra":1}`))
	require.NoError(t, httpx.DecodeJSON(req, &dst))
	require.Equal(t, "Everest", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	require.ErrorIs(t, httpx.DecodeJSON(req, &dst), httpx.ErrBadJSON)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	require.ErrorIs(t, httpx.DecodeJSON(req, &dst), httpx.ErrBadJSON)
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestTimeout(t *testing.T) {
	var deadline time.Time
	h := httpx.Chain(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		deadline, _ = r.Context().Deadline()
	}), httpx.Timeout(time.Second))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic Zm9vOmJhcg==", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		got, ok := httpx.BearerToken(req)
		require.Equal(t, tt.ok, ok, tt.header)
		require.Equal(t, tt.want, got, tt.header)
	}
}

func TestAuthnAndRole(t *testing.T) {
	secret := []byte("access-secret")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{Use: jwtx.UseAccess})
	require.NoError(t, err)

	var seenAdmin string
	protected := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAdmin = httpx.AdminID(r.Context())
		claims, ok := httpx.ClaimsFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, "admin", claims.Username)
		w.WriteHeader(http.StatusNoContent)
	}), httpx.AuthnMiddleware(verifier), httpx.RequireRole("admin"))

	sign := func(role string) string {
		tok, err := signer.Sign(jwtx.NewAccessClaims("admin-1", "admin", role, "", time.Minute, time.Now()))
		require.NoError(t, err)
		return tok
	}

	do := func(authz string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/trekking", nil).WithContext(context.Background())
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing token", func(t *testing.T) {
		rec := do("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("garbage token", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, do("Bearer nope").Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		rec := do("Bearer " + sign("editor"))
		require.Equal(t, http.StatusForbidden, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "Forbidden", body["error"])
	})

	t.Run("admin", func(t *testing.T) {
		rec := do("Bearer " + sign("admin"))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "admin-1", seenAdmin)
	})
}
