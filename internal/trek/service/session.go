package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
	"github.com/BishowDevkota/trekking-company/internal/trek/store"
	"github.com/BishowDevkota/trekking-company/pkg/cryptox"
	"github.com/BishowDevkota/trekking-company/pkg/idx"
	"github.com/BishowDevkota/trekking-company/pkg/slogx"
)

const (
	DefaultMaxAdmins    = 2
	DefaultStoreTimeout = 5 * time.Second
)

// SessionService runs the admin sign-in handshake. It keeps no per-session
// state: the client holds the access token and the browser holds the refresh
// cookie.
type SessionService struct {
	Store        store.Store
	Tokens       *TokenService
	StoreTimeout time.Duration
	MaxAdmins    int
}

type SignInResult struct {
	Admin            domain.Admin
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

type SignUpInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

// VerifiedAdmin is the decoded view of a valid access token.
type VerifiedAdmin struct {
	ID        string
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (s *SessionService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.StoreTimeout
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// SignIn checks the credentials and issues both tokens. An unknown username
// and a wrong password fail the same way and take roughly the same time.
func (s *SessionService) SignIn(ctx context.Context, username, password string) (SignInResult, error) {
	l := slogx.FromContext(ctx)
	if username == "" || password == "" {
		return SignInResult{}, ErrMissingCredentials
	}

	sctx, cancel := s.storeCtx(ctx)
	admin, err := s.Store.Admins().GetAdminByUsername(sctx, username)
	cancel()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			cryptox.DummyVerify(password)
			l.Info("sign-in rejected", "reason", "unknown_username")
			return SignInResult{}, ErrInvalidCredentials
		}
		return SignInResult{}, fmt.Errorf("load admin: %w", err)
	}

	if err := cryptox.VerifyPassword(password, admin.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrInvalidHash) {
			l.Error("stored password hash is unreadable", "admin_id", admin.ID)
		}
		l.Info("sign-in rejected", "reason", "bad_password", "admin_id", admin.ID)
		return SignInResult{}, ErrInvalidCredentials
	}

	access, accessExp, err := s.Tokens.IssueAccessToken(Identity{
		Subject:  admin.ID,
		Username: admin.Username,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return SignInResult{}, err
	}
	refresh, refreshExp, err := s.Tokens.IssueRefreshToken(admin.ID)
	if err != nil {
		return SignInResult{}, err
	}

	l.Info("admin signed in", "admin_id", admin.ID)
	return SignInResult{
		Admin:            admin,
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// SignUp registers an admin while fewer than MaxAdmins exist. The count and
// the duplicate checks share one transaction with the insert so two
// concurrent sign-ups cannot both take the last seat. The password is
// length-checked and hashed only once those checks pass.
func (s *SessionService) SignUp(ctx context.Context, in SignUpInput) (domain.Admin, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.FullName == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return domain.Admin{}, ErrMissingFields
	}
	maxAdmins := s.MaxAdmins
	if maxAdmins <= 0 {
		maxAdmins = DefaultMaxAdmins
	}

	admin := domain.Admin{
		FullName: in.FullName,
		Username: in.Username,
		Email:    in.Email,
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	err := s.Store.WithTx(sctx, func(tx store.Tx) error {
		count, err := tx.Admins().CountAdmins(sctx)
		if err != nil {
			return err
		}
		if count >= maxAdmins {
			return ErrAdminLimit
		}

		if taken, err := tx.Admins().UsernameExists(sctx, admin.Username); err != nil {
			return err
		} else if taken {
			return ErrUsernameTaken
		}
		if taken, err := tx.Admins().EmailExists(sctx, admin.Email); err != nil {
			return err
		} else if taken {
			return ErrEmailTaken
		}

		// Checked before hashing, and after the cap so a full house
		// always answers with ErrAdminLimit.
		if len(in.Password) > cryptox.MaxPasswordBytes {
			return ErrPasswordTooLong
		}
		hash, err := cryptox.HashPassword(in.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		admin.ID = idx.New().String()
		admin.PasswordHash = hash
		admin.CreatedAt = time.Now().UTC()

		return tx.Admins().CreateAdmin(sctx, admin)
	})
	if err != nil {
		return domain.Admin{}, err
	}

	slogx.FromContext(ctx).Info("admin registered", "admin_id", admin.ID)
	return admin, nil
}

// Verify decodes an access token. It does not touch the store.
func (s *SessionService) Verify(ctx context.Context, accessToken string) (VerifiedAdmin, error) {
	if accessToken == "" {
		return VerifiedAdmin{}, ErrNoAccessToken
	}

	claims, err := s.Tokens.VerifyAccessToken(accessToken)
	if err != nil {
		slogx.FromContext(ctx).Debug("access token rejected", "err", err)
		return VerifiedAdmin{}, err
	}

	v := VerifiedAdmin{
		ID:       claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}
	if claims.IssuedAt != nil {
		v.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		v.ExpiresAt = claims.ExpiresAt.Time
	}
	return v, nil
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token itself is left as is and keeps working until it expires.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	l := slogx.FromContext(ctx)
	if refreshToken == "" {
		return "", time.Time{}, ErrNoRefreshToken
	}

	claims, err := s.Tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		l.Info("refresh rejected", "err", err)
		return "", time.Time{}, err
	}

	sctx, cancel := s.storeCtx(ctx)
	admin, err := s.Store.Admins().GetAdminByID(sctx, claims.Subject)
	cancel()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("refresh rejected", "reason", "subject_missing", "admin_id", claims.Subject)
			return "", time.Time{}, ErrSubjectNotFound
		}
		return "", time.Time{}, fmt.Errorf("load admin: %w", err)
	}

	tok, exp, err := s.Tokens.IssueAccessToken(Identity{
		Subject:  admin.ID,
		Username: admin.Username,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, exp, nil
}
