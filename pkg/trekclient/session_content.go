package trekclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
)

// do sends an authenticated JSON request and decodes the reply.
func (s *Session) do(ctx context.Context, method, path string, body, target any, expectedStatus int) error {
	token, err := s.getValidToken(ctx)
	if err != nil {
		return err
	}

	resp, err := s.client.doRequest(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, expectedStatus)
}

// CreateRegion creates a region. The slug is derived from the name when
// left empty.
func (s *Session) CreateRegion(ctx context.Context, in Region) (*Region, error) {
	var out Region
	if err := s.do(ctx, http.MethodPost, "/api/trekking", in, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRegion replaces the region identified by in.ID.
func (s *Session) UpdateRegion(ctx context.Context, in Region) (*Region, error) {
	var out RegionUpdatedResponse
	if err := s.do(ctx, http.MethodPut, "/api/trekking", in, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Region, nil
}

// DeleteRegion deletes an empty region and its image.
func (s *Session) DeleteRegion(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/api/trekking", DeleteRegionRequest{ID: id}, nil, http.StatusOK)
}

func (s *Session) CreateTrek(ctx context.Context, regionSlug string, in Trek) (*Trek, error) {
	var out Trek
	if err := s.do(ctx, http.MethodPost, "/api/trekking/"+url.PathEscape(regionSlug), in, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateTrek(ctx context.Context, regionSlug, trekSlug string, in Trek) (*Trek, error) {
	var out TrekUpdatedResponse
	if err := s.do(ctx, http.MethodPut, trekPath(regionSlug, trekSlug), in, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Trek, nil
}

func (s *Session) DeleteTrek(ctx context.Context, regionSlug, trekSlug string) error {
	return s.do(ctx, http.MethodDelete, trekPath(regionSlug, trekSlug), nil, nil, http.StatusOK)
}

// DeleteGalleryImage removes one image from a trek's gallery and returns the
// updated trek.
func (s *Session) DeleteGalleryImage(ctx context.Context, regionSlug, trekSlug, imageURL string) (*Trek, error) {
	var out TrekUpdatedResponse
	path := trekPath(regionSlug, trekSlug) + "/gallery"
	if err := s.do(ctx, http.MethodDelete, path, GalleryImageRequest{ImageURL: imageURL}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Trek, nil
}

// UploadImage sends an image as the "file" part of a multipart form.
// contentType is the declared type of the image, e.g. "image/png".
func (s *Session) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (*UploadResponse, error) {
	token, err := s.getValidToken(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	hdr.Set("Content-Type", contentType)

	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to write form part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.url("/api/upload"), &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.client.send(req, token)
	if err != nil {
		return nil, err
	}

	var out UploadResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteImage removes an uploaded image by its public id.
func (s *Session) DeleteImage(ctx context.Context, publicID string) error {
	return s.do(ctx, http.MethodDelete, "/api/upload", DeleteImageRequest{PublicID: publicID}, nil, http.StatusOK)
}
