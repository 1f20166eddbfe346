package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
	"github.com/BishowDevkota/trekking-company/internal/trek/service"
	"github.com/BishowDevkota/trekking-company/pkg/httpx"
	"github.com/BishowDevkota/trekking-company/pkg/slogx"
	"github.com/BishowDevkota/trekking-company/pkg/trekclient"
)

const msgInvalidJSON = "Invalid JSON body"

// writeContentError translates content, upload and search failures into a
// response. Anything unexpected is logged and reported with fallback so
// internals never reach the client.
func writeContentError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		verr  *domain.ValidationError
		inUse *service.RegionInUseError
	)

	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, trekclient.ErrorResponse{
			Error:   "Validation failed",
			Details: verr.Details,
		})
	case errors.As(err, &inUse):
		httpx.WriteError(w, http.StatusConflict, fmt.Sprintf(
			"Cannot delete region. It has %d associated trek(s). Delete all treks first.", inUse.Treks))

	case errors.Is(err, httpx.ErrBadJSON):
		httpx.WriteError(w, http.StatusBadRequest, msgInvalidJSON)

	case errors.Is(err, service.ErrRegionNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Region not found")
	case errors.Is(err, service.ErrTrekNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Trek not found")

	case errors.Is(err, service.ErrRegionExists):
		httpx.WriteError(w, http.StatusConflict, "A region with this name already exists")
	case errors.Is(err, service.ErrTrekExists):
		httpx.WriteError(w, http.StatusConflict, "A trek with this name already exists in this region")

	case errors.Is(err, service.ErrRegionIDRequired):
		httpx.WriteError(w, http.StatusBadRequest, "Region ID is required")
	case errors.Is(err, service.ErrTrekIDRequired):
		httpx.WriteError(w, http.StatusBadRequest, "Trek ID is required")
	case errors.Is(err, service.ErrImageURLRequired):
		httpx.WriteError(w, http.StatusBadRequest, "Image URL is required")
	case errors.Is(err, service.ErrPublicIDRequired):
		httpx.WriteError(w, http.StatusBadRequest, "Public ID is required")
	case errors.Is(err, service.ErrSearchQueryMissing):
		httpx.WriteError(w, http.StatusBadRequest, "Search query is required")

	case errors.Is(err, assets.ErrNoFile):
		httpx.WriteError(w, http.StatusBadRequest, "No file provided")
	case errors.Is(err, assets.ErrUnsupportedType):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid file type. Only JPEG, PNG, WebP, and GIF files are allowed.")
	case errors.Is(err, assets.ErrTooLarge):
		httpx.WriteError(w, http.StatusBadRequest, "File size too large. Maximum size is 10MB.")

	default:
		slogx.FromContext(r.Context()).Error(fallback, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, fallback)
	}
}
