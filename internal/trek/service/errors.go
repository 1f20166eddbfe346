package service

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
	ErrAdminLimit         = errors.New("admin limit reached")
	ErrUsernameTaken      = errors.New("username is taken")
	ErrEmailTaken         = errors.New("email is registered")
	ErrNoAccessToken      = errors.New("no access token")
	ErrNoRefreshToken     = errors.New("no refresh token")
	ErrSubjectNotFound    = errors.New("token subject no longer exists")
)

// ErrTokenRejected matches every token failure. Callers never need to tell
// an expired token from a forged one.
var (
	ErrTokenRejected = errors.New("token rejected")
	ErrTokenInvalid  = fmt.Errorf("%w: invalid", ErrTokenRejected)
	ErrTokenExpired  = fmt.Errorf("%w: expired", ErrTokenRejected)
)

var (
	ErrRegionNotFound     = errors.New("region not found")
	ErrRegionExists       = errors.New("a region with this name already exists")
	ErrRegionIDRequired   = errors.New("region id is required")
	ErrTrekNotFound       = errors.New("trek not found")
	ErrTrekExists         = errors.New("a trek with this name already exists in this region")
	ErrTrekIDRequired     = errors.New("trek id is required")
	ErrImageURLRequired   = errors.New("image url is required")
	ErrPublicIDRequired   = errors.New("public id is required")
	ErrSearchQueryMissing = errors.New("search query is required")
)

// RegionInUseError blocks deleting a region that still has treks.
type RegionInUseError struct {
	Treks int
}

func (e *RegionInUseError) Error() string {
	return fmt.Sprintf("region has %d associated trek(s)", e.Treks)
}
