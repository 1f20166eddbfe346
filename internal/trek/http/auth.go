package http

import (
	"errors"
	"net/http"

	"github.com/BishowDevkota/trekking-company/internal/trek/service"
	"github.com/BishowDevkota/trekking-company/pkg/httpx"
	"github.com/BishowDevkota/trekking-company/pkg/slogx"
	"github.com/BishowDevkota/trekking-company/pkg/trekclient"
)

const msgInternalError = "Internal Server Error"

// AuthHandler serves the admin session handshake under /auth.
type AuthHandler struct {
	SessionService *service.SessionService
	SecureCookies  bool
}

// HandleSignIn handles POST /auth/sign-in
//
//	@Summary		Admin Sign In
//	@Description	Checks the admin credentials. Returns a 15 minute access token in the body and sets the 7 day refreshToken cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trekclient.SignInRequest	true	"Admin credentials"
//	@Success		200		{object}	trekclient.SignInResponse	"message, accessToken, expiresAt"
//	@Failure		400		{object}	trekclient.ErrorResponse	"Username and password are required"
//	@Failure		401		{object}	trekclient.ErrorResponse	"Invalid username or password"
//	@Failure		500		{object}	trekclient.ErrorResponse	"Internal Server Error"
//	@Router			/auth/sign-in [post]
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req trekclient.SignInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	res, err := h.SessionService.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			httpx.WriteError(w, http.StatusBadRequest, "Username and password are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid username or password")
		default:
			slogx.FromContext(ctx).Error("sign-in failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	http.SetCookie(w, refreshCookie(res.RefreshToken, h.SecureCookies))
	httpx.WriteJSON(w, http.StatusOK, trekclient.SignInResponse{
		Message:     "Signed in successfully",
		AccessToken: res.AccessToken,
		ExpiresAt:   res.AccessExpiresAt,
	})
}

// HandleSignUp handles POST /auth/sign-up
//
//	@Summary		Admin Sign Up
//	@Description	Registers an admin account. At most two admins may exist.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trekclient.SignUpRequest	true	"New admin"
//	@Success		201		{object}	trekclient.MessageResponse	"Admin registered successfully"
//	@Failure		400		{object}	trekclient.ErrorResponse	"All fields are required"
//	@Failure		403		{object}	trekclient.ErrorResponse	"There are already two admins"
//	@Failure		409		{object}	trekclient.ErrorResponse	"Username is taken, Email is registered"
//	@Failure		500		{object}	trekclient.ErrorResponse	"Internal Server Error"
//	@Router			/auth/sign-up [post]
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req trekclient.SignUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	_, err := h.SessionService.SignUp(ctx, service.SignUpInput{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrPasswordTooLong):
			httpx.WriteError(w, http.StatusBadRequest, "Password must be at most 72 bytes")
		case errors.Is(err, service.ErrAdminLimit):
			httpx.WriteError(w, http.StatusForbidden, "There are already two admins")
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteError(w, http.StatusConflict, "Username is taken")
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteError(w, http.StatusConflict, "Email is registered")
		default:
			slogx.FromContext(ctx).Error("sign-up failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, trekclient.MessageResponse{Message: "Admin registered successfully"})
}

// HandleVerify handles POST /auth/verify
//
//	@Summary		Verify Access Token
//	@Description	Decodes an access token. The token is read from the body, or from the Authorization header when the body has none.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trekclient.VerifyRequest	false	"Access token"
//	@Success		200		{object}	trekclient.VerifyResponse	"valid, user"
//	@Failure		401		{object}	trekclient.VerifyResponse	"valid, error"
//	@Router			/auth/verify [post]
func (h *AuthHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// A missing or unreadable body is the same as no token.
	var req trekclient.VerifyRequest
	_ = httpx.DecodeJSON(r, &req)

	token := req.AccessToken
	if token == "" {
		token, _ = httpx.BearerToken(r)
	}

	admin, err := h.SessionService.Verify(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoAccessToken):
			httpx.WriteJSON(w, http.StatusUnauthorized, trekclient.VerifyResponse{Error: "No access token"})
		case errors.Is(err, service.ErrTokenRejected):
			httpx.WriteJSON(w, http.StatusUnauthorized, trekclient.VerifyResponse{Error: "Invalid or expired token"})
		default:
			slogx.FromContext(ctx).Error("verify failed", "error", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, trekclient.VerifyResponse{Error: msgInternalError})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, trekclient.VerifyResponse{
		Valid: true,
		User: &trekclient.VerifiedUser{
			ID:        admin.ID,
			Username:  admin.Username,
			Role:      admin.Role,
			IssuedAt:  admin.IssuedAt.Unix(),
			ExpiresAt: admin.ExpiresAt.Unix(),
		},
	})
}

// HandleRefresh handles POST /auth/refresh
//
//	@Summary		Refresh Access Token
//	@Description	Mints a new access token from the refreshToken cookie. The refresh token is not rotated.
//	@Tags			Auth
//	@Produce		json
//	@Param			refreshToken	header		string						true	"Cookie: refreshToken={token}"
//	@Success		200				{object}	trekclient.RefreshResponse	"accessToken, expiresAt"
//	@Failure		401				{object}	trekclient.ErrorResponse	"No refresh token"
//	@Failure		403				{object}	trekclient.ErrorResponse	"Invalid or expired refresh token"
//	@Failure		500				{object}	trekclient.ErrorResponse	"Internal Server Error"
//	@Router			/auth/refresh [post]
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, exp, err := h.SessionService.Refresh(ctx, readRefreshCookie(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoRefreshToken):
			httpx.WriteError(w, http.StatusUnauthorized, "No refresh token")
		case errors.Is(err, service.ErrTokenRejected), errors.Is(err, service.ErrSubjectNotFound):
			httpx.WriteError(w, http.StatusForbidden, "Invalid or expired refresh token")
		default:
			slogx.FromContext(ctx).Error("refresh failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, trekclient.RefreshResponse{
		AccessToken: token,
		ExpiresAt:   exp,
	})
}

// HandleSignOut handles POST /auth/sign-out
//
//	@Summary		Admin Sign Out
//	@Description	Clears the refreshToken cookie. Access tokens already issued stay valid until they expire.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	trekclient.MessageResponse	"Signed out successfully"
//	@Router			/auth/sign-out [post]
func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, clearedRefreshCookie(h.SecureCookies))
	httpx.WriteJSON(w, http.StatusOK, trekclient.MessageResponse{Message: "Signed out successfully"})
}
