package http_test

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
	"github.com/BishowDevkota/trekking-company/pkg/trekclient"
	"github.com/stretchr/testify/require"
)

func region(name string) domain.Region {
	return domain.Region{
		Name:        name,
		Description: name + " region",
		Image:       assetURL("trekking/" + domain.Slugify(name) + ".jpg"),
		Keywords:    []string{"nepal"},
	}
}

func trek(name string) domain.Trek {
	return domain.Trek{
		Name:        name,
		Description: "A walk through " + name,
		Image:       assetURL("trekking/" + domain.Slugify(name) + "-cover.jpg"),
		Pricing:     []domain.PriceTier{{MinPersons: 1, MaxPersons: 4, Price: 900}},
		Gallery: []domain.GalleryImage{
			{Src: assetURL("trekking/g1.jpg"), Alt: "one", Caption: "One"},
			{Src: assetURL("trekking/g2.jpg"), Alt: "two", Caption: "Two"},
		},
	}
}

func TestWriteRoutesRequireAdmin(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/trekking"},
		{http.MethodPut, "/api/trekking"},
		{http.MethodDelete, "/api/trekking"},
		{http.MethodPost, "/api/trekking/everest"},
		{http.MethodPut, "/api/trekking/everest/ebc"},
		{http.MethodDelete, "/api/trekking/everest/ebc"},
		{http.MethodPatch, "/api/trekking/everest/ebc"},
		{http.MethodDelete, "/api/trekking/everest/ebc/gallery"},
		{http.MethodPost, "/api/upload"},
		{http.MethodDelete, "/api/upload"},
	}
	for _, rt := range routes {
		r := env.do(t, c, rt.method, rt.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, r.status, rt.method+" "+rt.path)
		require.Equal(t, "Unauthorized", r.errorMessage(t))
	}

	// Refresh tokens do not authorize writes.
	refresh, _, err := env.tokens.IssueRefreshToken("admin-1")
	require.NoError(t, err)
	r := env.do(t, c, http.MethodPost, "/api/trekking", refresh, region("Everest"))
	require.Equal(t, http.StatusUnauthorized, r.status)

	// Public reads need nothing.
	r = env.do(t, c, http.MethodGet, "/api/trekking", "", nil)
	require.Equal(t, http.StatusOK, r.status)
	require.JSONEq(t, `[]`, string(r.body))
}

func TestRegionAndTrekRoutes(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	token := env.signUpAndIn(t, c, "pasang")

	// Validation failures list every problem.
	r := env.do(t, c, http.MethodPost, "/api/trekking", token, domain.Region{Name: "Everest"})
	require.Equal(t, http.StatusBadRequest, r.status)
	var verr trekclient.ErrorResponse
	r.decode(t, &verr)
	require.Equal(t, "Validation failed", verr.Error)
	require.Len(t, verr.Details, 2)

	r = env.do(t, c, http.MethodPost, "/api/trekking", token, region("Everest Region"))
	require.Equal(t, http.StatusCreated, r.status, string(r.body))
	var created domain.Region
	r.decode(t, &created)
	require.Equal(t, "everest-region", created.Slug)

	r = env.do(t, c, http.MethodPost, "/api/trekking", token, region("everest region"))
	require.Equal(t, http.StatusConflict, r.status)
	require.Equal(t, "A region with this name already exists", r.errorMessage(t))

	r = env.do(t, c, http.MethodPut, "/api/trekking", token, region("Everest Region"))
	require.Equal(t, http.StatusBadRequest, r.status)
	require.Equal(t, "Region ID is required", r.errorMessage(t))

	// Treks.
	r = env.do(t, c, http.MethodPost, "/api/trekking/everest-region", token, trek("Everest Base Camp"))
	require.Equal(t, http.StatusCreated, r.status, string(r.body))
	var ebc domain.Trek
	r.decode(t, &ebc)
	require.Equal(t, created.ID, ebc.RegionID)

	r = env.do(t, c, http.MethodPost, "/api/trekking/nowhere", token, trek("Everest Base Camp"))
	require.Equal(t, http.StatusNotFound, r.status)
	require.Equal(t, "Region not found", r.errorMessage(t))

	r = env.do(t, c, http.MethodGet, "/api/trekking/everest-region/everest-base-camp", "", nil)
	require.Equal(t, http.StatusOK, r.status)

	r = env.do(t, c, http.MethodGet, "/api/trekking/everest-region/nope", "", nil)
	require.Equal(t, http.StatusNotFound, r.status)
	require.Equal(t, "Trek not found", r.errorMessage(t))

	r = env.do(t, c, http.MethodGet, "/api/treks", "", nil)
	require.Equal(t, http.StatusOK, r.status)
	var summaries []domain.TrekSummary
	r.decode(t, &summaries)
	require.Len(t, summaries, 1)

	// Region with treks cannot go.
	r = env.do(t, c, http.MethodDelete, "/api/trekking", token, trekclient.DeleteRegionRequest{ID: created.ID})
	require.Equal(t, http.StatusConflict, r.status)
	require.Equal(t, "Cannot delete region. It has 1 associated trek(s). Delete all treks first.", r.errorMessage(t))

	// Update drops g1 from the gallery.
	upd := trek("Everest Base Camp")
	upd.ID = ebc.ID
	upd.Gallery = upd.Gallery[1:]
	r = env.do(t, c, http.MethodPut, "/api/trekking/everest-region/everest-base-camp", token, upd)
	require.Equal(t, http.StatusOK, r.status, string(r.body))
	var updated trekclient.TrekUpdatedResponse
	r.decode(t, &updated)
	require.Equal(t, "Trek updated successfully", updated.Message)
	require.Contains(t, env.host.deletedKeys(), "trekking/g1.jpg")

	r = env.do(t, c, http.MethodPatch, "/api/trekking/everest-region/everest-base-camp", token, trekclient.GalleryImageRequest{})
	require.Equal(t, http.StatusBadRequest, r.status)
	require.Equal(t, "Image URL is required", r.errorMessage(t))

	r = env.do(t, c, http.MethodDelete, "/api/trekking/everest-region/everest-base-camp/gallery", token,
		trekclient.GalleryImageRequest{ImageURL: assetURL("trekking/g2.jpg")})
	require.Equal(t, http.StatusOK, r.status)
	require.Equal(t, "Gallery image deleted successfully", mustMessage(t, r))

	r = env.do(t, c, http.MethodDelete, "/api/trekking/everest-region/everest-base-camp", token, nil)
	require.Equal(t, http.StatusOK, r.status)
	require.Equal(t, "Trek and associated images deleted successfully", mustMessage(t, r))

	r = env.do(t, c, http.MethodDelete, "/api/trekking?id="+created.ID, token, nil)
	require.Equal(t, http.StatusOK, r.status, string(r.body))
	require.Equal(t, "Region and associated image deleted successfully", mustMessage(t, r))
	require.Contains(t, env.host.deletedKeys(), "trekking/everest-region.jpg")
}

func TestSearchRoute(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	token := env.signUpAndIn(t, c, "pasang")

	r := env.do(t, c, http.MethodGet, "/api/search?q=", "", nil)
	require.Equal(t, http.StatusBadRequest, r.status)
	require.Equal(t, "Search query is required", r.errorMessage(t))

	require.Equal(t, http.StatusCreated, env.do(t, c, http.MethodPost, "/api/trekking", token, region("Annapurna")).status)
	require.Equal(t, http.StatusCreated, env.do(t, c, http.MethodPost, "/api/trekking/annapurna", token, trek("Mardi Himal")).status)

	r = env.do(t, c, http.MethodGet, "/api/search?q=mardi&limit=abc", "", nil)
	require.Equal(t, http.StatusOK, r.status)
	var got []domain.TrekSummary
	r.decode(t, &got)
	require.Len(t, got, 1)
	require.Equal(t, "mardi-himal", got[0].Slug)
}

func TestUploadRoutes(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	token := env.signUpAndIn(t, c, "pasang")

	upload := func(filename, contentType string, data []byte) reply {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		if data != nil {
			h := textproto.MIMEHeader{}
			h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
			h.Set("Content-Type", contentType)
			part, err := mw.CreatePart(h)
			require.NoError(t, err)
			_, err = part.Write(data)
			require.NoError(t, err)
		}
		require.NoError(t, mw.Close())

		req, err := http.NewRequest(http.MethodPost, env.srv.URL+"/api/upload", &buf)
		require.NoError(t, err)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := c.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return reply{status: resp.StatusCode, header: resp.Header, body: b}
	}

	r := upload("", "", nil)
	require.Equal(t, http.StatusBadRequest, r.status)
	require.Equal(t, "No file provided", r.errorMessage(t))

	r = upload("notes.txt", "text/plain", []byte("not an image"))
	require.Equal(t, http.StatusBadRequest, r.status)
	require.Equal(t, "Invalid file type. Only JPEG, PNG, WebP, and GIF files are allowed.", r.errorMessage(t))

	r = upload("huge.png", "image/png", make([]byte, 10<<20+1))
	require.Equal(t, http.StatusBadRequest, r.status)
	require.Equal(t, "File size too large. Maximum size is 10MB.", r.errorMessage(t))

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 40, 30))))
	r = upload("photo.png", "image/png", img.Bytes())
	require.Equal(t, http.StatusOK, r.status, string(r.body))

	var up trekclient.UploadResponse
	r.decode(t, &up)
	require.Equal(t, 40, up.Width)
	require.Equal(t, 30, up.Height)
	require.Equal(t, assetURL(up.PublicID), up.URL)

	r = env.do(t, c, http.MethodDelete, "/api/upload", token, trekclient.DeleteImageRequest{})
	require.Equal(t, http.StatusBadRequest, r.status)
	require.Equal(t, "Public ID is required", r.errorMessage(t))

	r = env.do(t, c, http.MethodDelete, "/api/upload", token, trekclient.DeleteImageRequest{PublicID: up.PublicID})
	require.Equal(t, http.StatusOK, r.status)
	require.Equal(t, "Image deleted successfully", mustMessage(t, r))
}

func TestHealthRoutes(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)

	for _, path := range []string{"/livez", "/readyz"} {
		r := env.do(t, c, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, r.status, path)

		var h trekclient.HealthResponse
		r.decode(t, &h)
		require.Equal(t, "ok", h.Status)
		require.Equal(t, "test", h.Version)
	}
}
