package http

import (
	"net/http"

	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
	"github.com/BishowDevkota/trekking-company/internal/trek/service"
	"github.com/BishowDevkota/trekking-company/pkg/httpx"
	"github.com/BishowDevkota/trekking-company/pkg/trekclient"
)

// RegionsHandler handles the region collection at /api/trekking.
type RegionsHandler struct {
	RegionService *service.RegionService
}

// HandleList handles GET /api/trekking
//
//	@Summary		List Regions
//	@Description	Returns every trekking region ordered by name.
//	@Tags			Regions
//	@Produce		json
//	@Success		200	{array}		trekclient.Region
//	@Failure		500	{object}	trekclient.ErrorResponse	"Failed to fetch regions"
//	@Router			/api/trekking [get]
func (h *RegionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	regions, err := h.RegionService.List(r.Context())
	if err != nil {
		writeContentError(w, r, err, "Failed to fetch regions")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, regions)
}

// HandleCreate handles POST /api/trekking
//
//	@Summary		Create Region
//	@Tags			Regions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		trekclient.Region			true	"Region"
//	@Success		201		{object}	trekclient.Region
//	@Failure		400		{object}	trekclient.ErrorResponse	"Validation failed"
//	@Failure		401		{object}	trekclient.ErrorResponse	"Unauthorized"
//	@Failure		403		{object}	trekclient.ErrorResponse	"Forbidden"
//	@Failure		409		{object}	trekclient.ErrorResponse	"A region with this name already exists"
//	@Failure		500		{object}	trekclient.ErrorResponse	"Failed to create region"
//	@Router			/api/trekking [post]
func (h *RegionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.Region
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeContentError(w, r, err, "Failed to create region")
		return
	}

	region, err := h.RegionService.Create(r.Context(), in)
	if err != nil {
		writeContentError(w, r, err, "Failed to create region")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, region)
}

// HandleUpdate handles PUT /api/trekking
//
//	@Summary		Update Region
//	@Description	Replaces the region named by _id. A replaced cover image is deleted from the asset host.
//	@Tags			Regions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		trekclient.Region					true	"Region including _id"
//	@Success		200		{object}	trekclient.RegionUpdatedResponse	"Region updated successfully"
//	@Failure		400		{object}	trekclient.ErrorResponse			"Region ID is required, Validation failed"
//	@Failure		404		{object}	trekclient.ErrorResponse			"Region not found"
//	@Failure		409		{object}	trekclient.ErrorResponse			"A region with this name already exists"
//	@Failure		500		{object}	trekclient.ErrorResponse			"Failed to update region"
//	@Router			/api/trekking [put]
func (h *RegionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in domain.Region
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeContentError(w, r, err, "Failed to update region")
		return
	}

	region, err := h.RegionService.Update(r.Context(), in)
	if err != nil {
		writeContentError(w, r, err, "Failed to update region")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trekclient.RegionUpdatedResponse{
		Message: "Region updated successfully",
		Region:  region,
	})
}

// HandleDelete handles DELETE /api/trekking
//
//	@Summary		Delete Region
//	@Description	Deletes an empty region and its cover image. The id may also be passed as the id query parameter.
//	@Tags			Regions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		trekclient.DeleteRegionRequest	false	"Region id"
//	@Success		200		{object}	trekclient.MessageResponse		"Region and associated image deleted successfully"
//	@Failure		400		{object}	trekclient.ErrorResponse		"Region ID is required"
//	@Failure		404		{object}	trekclient.ErrorResponse		"Region not found"
//	@Failure		409		{object}	trekclient.ErrorResponse		"Region still has treks"
//	@Failure		500		{object}	trekclient.ErrorResponse		"Failed to delete region"
//	@Router			/api/trekking [delete]
func (h *RegionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		var req trekclient.DeleteRegionRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			writeContentError(w, r, err, "Failed to delete region")
			return
		}
		id = req.ID
	}

	if err := h.RegionService.Delete(r.Context(), id); err != nil {
		writeContentError(w, r, err, "Failed to delete region")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trekclient.MessageResponse{
		Message: "Region and associated image deleted successfully",
	})
}
