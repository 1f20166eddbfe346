package trekclient

import (
	"time"

	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
)

// ============================================================================
// Content Types
// ============================================================================

// The content documents are served exactly as stored, so the SDK shares the
// server's definitions.
type (
	Region       = domain.Region
	Trek         = domain.Trek
	TrekSummary  = domain.TrekSummary
	OverviewItem = domain.OverviewItem
	ItineraryDay = domain.ItineraryDay
	PriceTier    = domain.PriceTier
	GalleryImage = domain.GalleryImage
	FAQ          = domain.FAQ
)

// ============================================================================
// Common Responses
// ============================================================================

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	// Error is a human-readable message safe to show to an admin.
	Error string `json:"error"`

	// Details lists each failed validation rule. Only set for 400
	// "Validation failed" responses.
	Details []string `json:"details,omitempty"`
}

// MessageResponse is returned by operations that only report success.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Auth Types
// ============================================================================

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInResponse carries the access token. The refresh token is only ever
// sent as the HttpOnly refreshToken cookie.
type SignInResponse struct {
	Message     string    `json:"message"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type SignUpRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyRequest struct {
	AccessToken string `json:"accessToken"`
}

// VerifyResponse reports whether an access token is still good. User is set
// when Valid is true, Error otherwise.
type VerifyResponse struct {
	Valid bool          `json:"valid"`
	User  *VerifiedUser `json:"user,omitempty"`
	Error string        `json:"error,omitempty"`
}

// VerifiedUser holds the decoded access token claims. IssuedAt and ExpiresAt
// are unix seconds.
type VerifiedUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

type RefreshResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// ============================================================================
// Content Requests and Responses
// ============================================================================

type DeleteRegionRequest struct {
	ID string `json:"id"`
}

type RegionUpdatedResponse struct {
	Message string `json:"message"`
	Region  Region `json:"region"`
}

type TrekUpdatedResponse struct {
	Message string `json:"message"`
	Trek    Trek   `json:"trek"`
}

// GalleryImageRequest names a gallery image by its src URL.
type GalleryImageRequest struct {
	ImageURL string `json:"imageUrl"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type DeleteImageRequest struct {
	PublicID string `json:"publicId"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks holds the readiness of each backing service. Search is empty
// when no search index is configured.
type HealthChecks struct {
	Database string `json:"database"`
	Assets   string `json:"assets"`
	Search   string `json:"search,omitempty"`
}
