package trekclient

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client talks to the trekking service. Its HTTP client carries a cookie jar
// so the refresh cookie set by SignIn is replayed on Refresh, the way a
// browser would.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	// cookiejar.New only fails on a bad PublicSuffixList, and we pass none.
	jar, _ := cookiejar.New(nil)

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}
}
