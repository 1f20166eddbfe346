package http

import (
	"net/http"
	"strconv"

	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
	"github.com/BishowDevkota/trekking-company/internal/trek/service"
	"github.com/BishowDevkota/trekking-company/pkg/httpx"
	"github.com/BishowDevkota/trekking-company/pkg/trekclient"
)

// TreksHandler handles treks, nested under their region, plus the flat
// listing and search routes.
type TreksHandler struct {
	TrekService *service.TrekService
}

// HandleListAll handles GET /api/treks
//
//	@Summary		List All Treks
//	@Description	Returns a summary of every trek for the home page.
//	@Tags			Treks
//	@Produce		json
//	@Success		200	{array}		trekclient.TrekSummary
//	@Failure		500	{object}	trekclient.ErrorResponse	"Failed to fetch treks"
//	@Router			/api/treks [get]
func (h *TreksHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	treks, err := h.TrekService.ListAll(r.Context())
	if err != nil {
		writeContentError(w, r, err, "Failed to fetch treks")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, treks)
}

// HandleSearch handles GET /api/search
//
//	@Summary		Search Treks
//	@Description	Matches treks by name, description and keywords.
//	@Tags			Treks
//	@Produce		json
//	@Param			q		query		string	true	"Search text"
//	@Param			limit	query		int		false	"Maximum results (default 10, max 50)"
//	@Success		200		{array}		trekclient.TrekSummary
//	@Failure		400		{object}	trekclient.ErrorResponse	"Search query is required"
//	@Failure		500		{object}	trekclient.ErrorResponse	"Failed to search treks"
//	@Router			/api/search [get]
func (h *TreksHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// A malformed limit falls back to the default.
	limit, _ := strconv.Atoi(q.Get("limit"))

	treks, err := h.TrekService.Search(r.Context(), q.Get("q"), limit)
	if err != nil {
		writeContentError(w, r, err, "Failed to search treks")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, treks)
}

// HandleListByRegion handles GET /api/trekking/{region}
//
//	@Summary		List Region Treks
//	@Tags			Treks
//	@Produce		json
//	@Param			region	path		string	true	"Region slug"
//	@Success		200		{array}		trekclient.Trek
//	@Failure		404		{object}	trekclient.ErrorResponse	"Region not found"
//	@Failure		500		{object}	trekclient.ErrorResponse	"Failed to fetch treks"
//	@Router			/api/trekking/{region} [get]
func (h *TreksHandler) HandleListByRegion(w http.ResponseWriter, r *http.Request) {
	treks, err := h.TrekService.ListByRegion(r.Context(), r.PathValue("region"))
	if err != nil {
		writeContentError(w, r, err, "Failed to fetch treks")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, treks)
}

// HandleCreate handles POST /api/trekking/{region}
//
//	@Summary		Create Trek
//	@Tags			Treks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			region	path		string						true	"Region slug"
//	@Param			request	body		trekclient.Trek				true	"Trek"
//	@Success		201		{object}	trekclient.Trek
//	@Failure		400		{object}	trekclient.ErrorResponse	"Validation failed"
//	@Failure		404		{object}	trekclient.ErrorResponse	"Region not found"
//	@Failure		409		{object}	trekclient.ErrorResponse	"A trek with this name already exists in this region"
//	@Failure		500		{object}	trekclient.ErrorResponse	"Failed to create trek"
//	@Router			/api/trekking/{region} [post]
func (h *TreksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.Trek
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeContentError(w, r, err, "Failed to create trek")
		return
	}

	trek, err := h.TrekService.Create(r.Context(), r.PathValue("region"), in)
	if err != nil {
		writeContentError(w, r, err, "Failed to create trek")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, trek)
}

// HandleGet handles GET /api/trekking/{region}/{trek}
//
//	@Summary		Get Trek
//	@Tags			Treks
//	@Produce		json
//	@Param			region	path		string	true	"Region slug"
//	@Param			trek	path		string	true	"Trek slug"
//	@Success		200		{object}	trekclient.Trek
//	@Failure		404		{object}	trekclient.ErrorResponse	"Region not found, Trek not found"
//	@Failure		500		{object}	trekclient.ErrorResponse	"Failed to fetch trek"
//	@Router			/api/trekking/{region}/{trek} [get]
func (h *TreksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	trek, err := h.TrekService.Get(r.Context(), r.PathValue("region"), r.PathValue("trek"))
	if err != nil {
		writeContentError(w, r, err, "Failed to fetch trek")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trek)
}

// HandleUpdate handles PUT /api/trekking/{region}/{trek}
//
//	@Summary		Update Trek
//	@Description	Replaces the trek. Images the new version no longer references are deleted from the asset host.
//	@Tags			Treks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			region	path		string							true	"Region slug"
//	@Param			trek	path		string							true	"Trek slug"
//	@Param			request	body		trekclient.Trek					true	"Trek including _id"
//	@Success		200		{object}	trekclient.TrekUpdatedResponse	"Trek updated successfully"
//	@Failure		400		{object}	trekclient.ErrorResponse		"Trek ID is required, Validation failed"
//	@Failure		404		{object}	trekclient.ErrorResponse		"Trek not found"
//	@Failure		409		{object}	trekclient.ErrorResponse		"A trek with this name already exists in this region"
//	@Failure		500		{object}	trekclient.ErrorResponse		"Failed to update trek"
//	@Router			/api/trekking/{region}/{trek} [put]
func (h *TreksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in domain.Trek
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeContentError(w, r, err, "Failed to update trek")
		return
	}

	trek, err := h.TrekService.Update(r.Context(), r.PathValue("region"), r.PathValue("trek"), in)
	if err != nil {
		writeContentError(w, r, err, "Failed to update trek")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trekclient.TrekUpdatedResponse{
		Message: "Trek updated successfully",
		Trek:    trek,
	})
}

// HandleDelete handles DELETE /api/trekking/{region}/{trek}
//
//	@Summary		Delete Trek
//	@Description	Deletes the trek with its cover and gallery images.
//	@Tags			Treks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			region	path		string						true	"Region slug"
//	@Param			trek	path		string						true	"Trek slug"
//	@Success		200		{object}	trekclient.MessageResponse	"Trek and associated images deleted successfully"
//	@Failure		404		{object}	trekclient.ErrorResponse	"Trek not found"
//	@Failure		500		{object}	trekclient.ErrorResponse	"Failed to delete trek"
//	@Router			/api/trekking/{region}/{trek} [delete]
func (h *TreksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.TrekService.Delete(r.Context(), r.PathValue("region"), r.PathValue("trek")); err != nil {
		writeContentError(w, r, err, "Failed to delete trek")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trekclient.MessageResponse{
		Message: "Trek and associated images deleted successfully",
	})
}

// HandleDeleteGalleryImage handles PATCH /api/trekking/{region}/{trek} and
// DELETE /api/trekking/{region}/{trek}/gallery
//
//	@Summary		Remove Gallery Image
//	@Tags			Treks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			region	path		string							true	"Region slug"
//	@Param			trek	path		string							true	"Trek slug"
//	@Param			request	body		trekclient.GalleryImageRequest	true	"Gallery image src"
//	@Success		200		{object}	trekclient.MessageResponse		"Gallery image deleted successfully"
//	@Failure		400		{object}	trekclient.ErrorResponse		"Image URL is required"
//	@Failure		404		{object}	trekclient.ErrorResponse		"Trek not found"
//	@Failure		500		{object}	trekclient.ErrorResponse		"Failed to delete gallery image"
//	@Router			/api/trekking/{region}/{trek} [patch]
//	@Router			/api/trekking/{region}/{trek}/gallery [delete]
func (h *TreksHandler) HandleDeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req trekclient.GalleryImageRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeContentError(w, r, err, "Failed to delete gallery image")
		return
	}

	_, err := h.TrekService.DeleteGalleryImage(r.Context(), r.PathValue("region"), r.PathValue("trek"), req.ImageURL)
	if err != nil {
		writeContentError(w, r, err, "Failed to delete gallery image")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trekclient.MessageResponse{
		Message: "Gallery image deleted successfully",
	})
}
