package http

import (
	"net/http"
	"time"
)

const refreshCookieName = "refreshToken"

// refreshCookieMaxAge matches the refresh token lifetime.
const refreshCookieMaxAge = 7 * 24 * time.Hour

func refreshCookie(value string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(refreshCookieMaxAge / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// clearedRefreshCookie expires the cookie immediately. net/http renders a
// negative MaxAge as Max-Age=0.
func clearedRefreshCookie(secure bool) *http.Cookie {
	c := refreshCookie("", secure)
	c.MaxAge = -1
	return c
}

func readRefreshCookie(r *http.Request) string {
	c, err := r.Cookie(refreshCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
