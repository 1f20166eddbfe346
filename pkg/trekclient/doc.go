// Package trekclient is a Go client for the trekking service.
//
// Public content needs only a Client:
//
//	c := trekclient.New("http://localhost:8080")
//	regions, err := c.ListRegions(ctx)
//
// Admin writes go through a Session, obtained by signing in:
//
//	sess, err := c.SignIn(ctx, "admin", "password")
//	region, err := sess.CreateRegion(ctx, trekclient.Region{Name: "Everest"})
//
// The refresh token lives in the client's cookie jar. A Session refreshes its
// access token from it when needed, and Ensure reports whether the session is
// still good as a *SessionError with one of the Code constants.
package trekclient
