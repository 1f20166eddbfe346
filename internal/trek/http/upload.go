package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	"github.com/BishowDevkota/trekking-company/internal/trek/service"
	"github.com/BishowDevkota/trekking-company/pkg/httpx"
	"github.com/BishowDevkota/trekking-company/pkg/trekclient"
)

// multipartOverhead is the room left for part headers and boundaries on top
// of the file itself.
const multipartOverhead = 1 << 20

// UploadHandler accepts admin image uploads for the asset host.
type UploadHandler struct {
	ImageService *service.ImageService
}

// HandleUpload handles POST /api/upload
//
//	@Summary		Upload Image
//	@Description	Stores a JPEG, PNG, WebP or GIF image of at most 10MB. JPEG and PNG images are scaled down to fit 1200x800.
//	@Tags			Uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			file	formData	file						true	"Image file"
//	@Success		200		{object}	trekclient.UploadResponse	"url, publicId, width, height"
//	@Failure		400		{object}	trekclient.ErrorResponse	"No file provided, Invalid file type, File size too large"
//	@Failure		500		{object}	trekclient.ErrorResponse	"Failed to upload image"
//	@Router			/api/upload [post]
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, assets.MaxUploadBytes+multipartOverhead)

	data, contentType, err := readUpload(r)
	if err != nil {
		writeContentError(w, r, err, "Failed to upload image")
		return
	}

	img, err := h.ImageService.Upload(r.Context(), data, contentType)
	if err != nil {
		writeContentError(w, r, err, "Failed to upload image")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, trekclient.UploadResponse{
		URL:      img.URL,
		PublicID: img.PublicID,
		Width:    img.Width,
		Height:   img.Height,
	})
}

// readUpload returns the bytes and declared content type of the "file" part.
func readUpload(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(assets.MaxUploadBytes); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, "", assets.ErrTooLarge
		}
		return nil, "", assets.ErrNoFile
	}
	defer r.MultipartForm.RemoveAll()

	file, hdr, err := r.FormFile("file")
	if err != nil {
		return nil, "", assets.ErrNoFile
	}
	defer file.Close()

	if hdr.Size > assets.MaxUploadBytes {
		return nil, "", assets.ErrTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(file, assets.MaxUploadBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}
	return data, hdr.Header.Get("Content-Type"), nil
}

// HandleDelete handles DELETE /api/upload
//
//	@Summary		Delete Image
//	@Tags			Uploads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		trekclient.DeleteImageRequest	true	"Public id returned by the upload"
//	@Success		200		{object}	trekclient.MessageResponse		"Image deleted successfully"
//	@Failure		400		{object}	trekclient.ErrorResponse		"Public ID is required"
//	@Failure		500		{object}	trekclient.ErrorResponse		"Failed to delete image"
//	@Router			/api/upload [delete]
func (h *UploadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req trekclient.DeleteImageRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeContentError(w, r, err, "Failed to delete image")
		return
	}

	if err := h.ImageService.Delete(r.Context(), req.PublicID); err != nil {
		writeContentError(w, r, err, "Failed to delete image")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trekclient.MessageResponse{Message: "Image deleted successfully"})
}
