package trekclient

import (
	"context"
	"errors"
	"sync"
	"time"
)

// expiryBuffer refreshes a token slightly before the server would reject it.
const expiryBuffer = 30 * time.Second

// Session holds an admin access token and renews it from the client's
// refresh cookie when it runs out.
type Session struct {
	client *Client

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

func newSession(client *Client, accessToken string, expiresAt time.Time) *Session {
	return &Session{
		client:      client,
		accessToken: accessToken,
		expiresAt:   expiresAt.Add(-expiryBuffer),
	}
}

// Resume creates a session with no access token. The first call that needs
// one refreshes from the cookie jar, which is how a returning browser picks
// up where it left off.
func (c *Client) Resume() *Session {
	return &Session{client: c}
}

// AccessToken returns the current access token, which may be empty or stale.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// Ensure makes one attempt to hold a usable session. It refreshes when the
// access token is missing or expired, then verifies it with the server.
// Failures are reported as a *SessionError. A token that fails verify is
// dropped, so the following call starts with a refresh.
func (s *Session) Ensure(ctx context.Context) (*VerifiedUser, error) {
	token, err := s.getValidToken(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.client.Verify(ctx, token)
	if err != nil {
		// The next Ensure refreshes from the cookie instead of reusing a
		// token the server already turned down.
		s.forget(token)
		return nil, verifyFailure(err)
	}
	return user, nil
}

// forget drops token unless another goroutine already replaced it.
func (s *Session) forget(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken == token {
		s.accessToken = ""
		s.expiresAt = time.Time{}
	}
}

// getValidToken returns a valid access token, refreshing it if expired.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.accessToken != "" && time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if s.accessToken != "" && time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	token, expiresAt, err := s.client.Refresh(ctx)
	if err != nil {
		return "", refreshFailure(err)
	}
	if token == "" {
		return "", &SessionError{Code: CodeSessionExpired, Err: errors.New("refresh returned no access token")}
	}

	s.accessToken = token
	s.expiresAt = expiresAt.Add(-expiryBuffer)
	return token, nil
}

// SignOut clears the refresh cookie and forgets the access token.
func (s *Session) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.accessToken = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	return s.client.SignOut(ctx)
}
