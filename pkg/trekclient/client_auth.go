package trekclient

import (
	"context"
	"net/http"
	"time"
)

// SignIn exchanges admin credentials for a session. The refresh cookie lands
// in the client's cookie jar.
func (c *Client) SignIn(ctx context.Context, username, password string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/sign-in", "", SignInRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out SignInResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, out.AccessToken, out.ExpiresAt), nil
}

// SignUp registers a new admin. The service allows a small fixed number of
// admins and answers 403 once they exist.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/sign-up", "", req)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusCreated)
}

// Verify checks an access token and returns its decoded claims.
func (c *Client) Verify(ctx context.Context, accessToken string) (*VerifiedUser, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/verify", "", VerifyRequest{AccessToken: accessToken})
	if err != nil {
		return nil, err
	}

	var out VerifyResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Refresh mints a new access token from the refresh cookie in the jar.
func (c *Client) Refresh(ctx context.Context) (string, time.Time, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/refresh", "", nil)
	if err != nil {
		return "", time.Time{}, err
	}

	var out RefreshResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", time.Time{}, err
	}
	return out.AccessToken, out.ExpiresAt, nil
}

// SignOut clears the refresh cookie. Access tokens already issued stay valid
// until they expire.
func (c *Client) SignOut(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/sign-out", "", nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}
