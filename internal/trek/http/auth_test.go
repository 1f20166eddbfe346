package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/BishowDevkota/trekking-company/pkg/trekclient"
	"github.com/stretchr/testify/require"
)

func TestSignInSetsRefreshCookie(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)

	r := env.do(t, c, http.MethodPost, "/auth/sign-up", "", trekclient.SignUpRequest{
		FullName: "Pasang Sherpa", Username: "pasang", Email: "pasang@example.com", Password: "correct horse",
	})
	require.Equal(t, http.StatusCreated, r.status)
	require.Equal(t, "Admin registered successfully", mustMessage(t, r))

	r = env.do(t, c, http.MethodPost, "/auth/sign-in", "", trekclient.SignInRequest{Username: "pasang", Password: "correct horse"})
	require.Equal(t, http.StatusOK, r.status)

	var res trekclient.SignInResponse
	r.decode(t, &res)
	require.Equal(t, "Signed in successfully", res.Message)
	require.NotEmpty(t, res.AccessToken)

	setCookie := r.header.Get("Set-Cookie")
	require.True(t, strings.HasPrefix(setCookie, "refreshToken="), setCookie)
	require.Contains(t, setCookie, "Path=/")
	require.Contains(t, setCookie, "Max-Age=604800")
	require.Contains(t, setCookie, "HttpOnly")
	require.Contains(t, setCookie, "SameSite=Strict")
	require.NotContains(t, setCookie, "Secure")
	require.Equal(t, "no-store", r.header.Get("Cache-Control"))

	// Verify returns the same subject.
	r = env.do(t, c, http.MethodPost, "/auth/verify", "", trekclient.VerifyRequest{AccessToken: res.AccessToken})
	require.Equal(t, http.StatusOK, r.status)

	var v trekclient.VerifyResponse
	r.decode(t, &v)
	require.True(t, v.Valid)
	require.NotNil(t, v.User)
	require.Equal(t, "pasang", v.User.Username)
	require.Equal(t, "admin", v.User.Role)
	require.Equal(t, int64(15*60), v.User.ExpiresAt-v.User.IssuedAt)
}

func TestSignInRejections(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.signUpAndIn(t, c, "pasang")

	tests := []struct {
		name   string
		req    trekclient.SignInRequest
		status int
		msg    string
	}{
		{"wrong password", trekclient.SignInRequest{Username: "pasang", Password: "nope"}, http.StatusUnauthorized, "Invalid username or password"},
		{"unknown user", trekclient.SignInRequest{Username: "dawa", Password: "correct horse"}, http.StatusUnauthorized, "Invalid username or password"},
		{"missing password", trekclient.SignInRequest{Username: "pasang"}, http.StatusBadRequest, "Username and password are required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := env.do(t, env.client(t), http.MethodPost, "/auth/sign-in", "", tc.req)
			require.Equal(t, tc.status, r.status)
			require.Equal(t, tc.msg, r.errorMessage(t))
			require.Empty(t, r.header.Get("Set-Cookie"))
		})
	}
}

func TestSignUpRules(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)

	r := env.do(t, c, http.MethodPost, "/auth/sign-up", "", trekclient.SignUpRequest{Username: "x", Password: "y"})
	require.Equal(t, http.StatusBadRequest, r.status)
	require.Equal(t, "All fields are required", r.errorMessage(t))

	env.signUpAndIn(t, c, "pasang")

	r = env.do(t, c, http.MethodPost, "/auth/sign-up", "", trekclient.SignUpRequest{
		FullName: "Other", Username: "pasang", Email: "other@example.com", Password: "pw",
	})
	require.Equal(t, http.StatusConflict, r.status)
	require.Equal(t, "Username is taken", r.errorMessage(t))

	r = env.do(t, c, http.MethodPost, "/auth/sign-up", "", trekclient.SignUpRequest{
		FullName: "Other", Username: "other", Email: "PASANG@example.com", Password: "pw",
	})
	require.Equal(t, http.StatusConflict, r.status)
	require.Equal(t, "Email is registered", r.errorMessage(t))

	env.signUpAndIn(t, c, "dawa")

	r = env.do(t, c, http.MethodPost, "/auth/sign-up", "", trekclient.SignUpRequest{
		FullName: "Third", Username: "third", Email: "third@example.com", Password: "pw",
	})
	require.Equal(t, http.StatusForbidden, r.status)
	require.Equal(t, "There are already two admins", r.errorMessage(t))
}

func TestVerifyRejections(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.signUpAndIn(t, c, "pasang")

	r := env.do(t, c, http.MethodPost, "/auth/verify", "", trekclient.VerifyRequest{})
	require.Equal(t, http.StatusUnauthorized, r.status)
	var v trekclient.VerifyResponse
	r.decode(t, &v)
	require.False(t, v.Valid)
	require.Equal(t, "No access token", v.Error)

	// A refresh token is never accepted as an access token.
	refresh, _, err := env.tokens.IssueRefreshToken("admin-1")
	require.NoError(t, err)

	r = env.do(t, c, http.MethodPost, "/auth/verify", "", trekclient.VerifyRequest{AccessToken: refresh})
	require.Equal(t, http.StatusUnauthorized, r.status)
	r.decode(t, &v)
	require.False(t, v.Valid)
	require.Equal(t, "Invalid or expired token", v.Error)
}

func TestRefreshKeepsCookieAndSignOutClearsIt(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.signUpAndIn(t, c, "pasang")

	for range 2 {
		r := env.do(t, c, http.MethodPost, "/auth/refresh", "", nil)
		require.Equal(t, http.StatusOK, r.status, string(r.body))
		require.Empty(t, r.header.Get("Set-Cookie"))

		var res trekclient.RefreshResponse
		r.decode(t, &res)

		r = env.do(t, c, http.MethodPost, "/auth/verify", "", trekclient.VerifyRequest{AccessToken: res.AccessToken})
		require.Equal(t, http.StatusOK, r.status)
	}

	r := env.do(t, c, http.MethodPost, "/auth/sign-out", "", nil)
	require.Equal(t, http.StatusOK, r.status)
	require.Equal(t, "Signed out successfully", mustMessage(t, r))
	setCookie := r.header.Get("Set-Cookie")
	require.True(t, strings.HasPrefix(setCookie, "refreshToken=;"), setCookie)
	require.Contains(t, setCookie, "Max-Age=0")
	require.Contains(t, setCookie, "HttpOnly")

	r = env.do(t, c, http.MethodPost, "/auth/refresh", "", nil)
	require.Equal(t, http.StatusUnauthorized, r.status)
	require.Equal(t, "No refresh token", r.errorMessage(t))
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	env := newTestEnv(t)
	access := env.signUpAndIn(t, env.client(t), "pasang")

	req, err := http.NewRequest(http.MethodPost, env.srv.URL+"/auth/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: access})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func mustMessage(t *testing.T, r reply) string {
	t.Helper()
	var m trekclient.MessageResponse
	r.decode(t, &m)
	return m.Message
}
