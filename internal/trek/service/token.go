package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/BishowDevkota/trekking-company/pkg/jwtx"
)

var (
	ErrMissingSecret = errors.New("access and refresh secrets are required")
	ErrSharedSecret  = errors.New("access and refresh secrets must differ")
)

type TokenConfig struct {
	AccessSecret  []byte
	RefreshSecret []byte
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	// Now is overridable so tests can mint already expired tokens.
	Now func() time.Time
}

// Identity is what an access token asserts about the admin.
type Identity struct {
	Subject  string
	Username string
	Role     string
}

// TokenService mints and checks the two token classes. Each class has its own
// secret and its own "use" claim, so neither can stand in for the other.
type TokenService struct {
	accessSigner    jwtx.Signer
	refreshSigner   jwtx.Signer
	accessVerifier  jwtx.Verifier
	refreshVerifier jwtx.Verifier

	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if len(cfg.AccessSecret) == 0 || len(cfg.RefreshSecret) == 0 {
		return nil, ErrMissingSecret
	}
	if subtle.ConstantTimeCompare(cfg.AccessSecret, cfg.RefreshSecret) == 1 {
		return nil, ErrSharedSecret
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = jwtx.DefaultAccessTokenTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = jwtx.DefaultRefreshTokenTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	accessSigner, err := jwtx.NewSignerHS256(cfg.AccessSecret)
	if err != nil {
		return nil, fmt.Errorf("access signer: %w", err)
	}
	refreshSigner, err := jwtx.NewSignerHS256(cfg.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("refresh signer: %w", err)
	}
	accessVerifier, err := jwtx.NewVerifierHS256(cfg.AccessSecret, jwtx.VerifyOptions{
		Issuer: cfg.Issuer,
		Use:    jwtx.UseAccess,
	})
	if err != nil {
		return nil, fmt.Errorf("access verifier: %w", err)
	}
	refreshVerifier, err := jwtx.NewVerifierHS256(cfg.RefreshSecret, jwtx.VerifyOptions{
		Issuer: cfg.Issuer,
		Use:    jwtx.UseRefresh,
	})
	if err != nil {
		return nil, fmt.Errorf("refresh verifier: %w", err)
	}

	return &TokenService{
		accessSigner:    accessSigner,
		refreshSigner:   refreshSigner,
		accessVerifier:  accessVerifier,
		refreshVerifier: refreshVerifier,
		issuer:          cfg.Issuer,
		accessTTL:       cfg.AccessTTL,
		refreshTTL:      cfg.RefreshTTL,
		now:             cfg.Now,
	}, nil
}

func (s *TokenService) IssueAccessToken(id Identity) (string, time.Time, error) {
	claims := jwtx.NewAccessClaims(id.Subject, id.Username, id.Role, s.issuer, s.accessTTL, s.now())
	tok, err := s.accessSigner.Sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return tok, claims.ExpiresAt.Time, nil
}

func (s *TokenService) IssueRefreshToken(subject string) (string, time.Time, error) {
	claims := jwtx.NewRefreshClaims(subject, s.issuer, s.refreshTTL, s.now())
	tok, err := s.refreshSigner.Sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return tok, claims.ExpiresAt.Time, nil
}

func (s *TokenService) VerifyAccessToken(token string) (jwtx.Claims, error) {
	return verifyWith(s.accessVerifier, token)
}

func (s *TokenService) VerifyRefreshToken(token string) (jwtx.Claims, error) {
	return verifyWith(s.refreshVerifier, token)
}

// AccessVerifier is handed to the bearer auth middleware.
func (s *TokenService) AccessVerifier() jwtx.Verifier { return s.accessVerifier }

// RefreshTTL is the lifetime of refresh tokens, which is also the cookie
// Max-Age.
func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

func verifyWith(v jwtx.Verifier, token string) (jwtx.Claims, error) {
	claims, err := v.Verify(token)
	if err == nil {
		return claims, nil
	}
	if errors.Is(err, jwtx.ErrExpired) {
		return jwtx.Claims{}, fmt.Errorf("%w: %v", ErrTokenExpired, err)
	}
	return jwtx.Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
}
