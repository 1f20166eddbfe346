package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
	"github.com/BishowDevkota/trekking-company/internal/trek/search"
	"github.com/BishowDevkota/trekking-company/internal/trek/store/drivers/sqlite"
	"github.com/BishowDevkota/trekking-company/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const testBucket = "trek-assets"

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "trek.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// fakeHost is an in-memory asset host.
type fakeHost struct {
	mu         sync.Mutex
	objects    map[string][]byte
	deleted    []string
	failPut    error
	failDelete error
}

func newFakeHost() *fakeHost { return &fakeHost{objects: map[string][]byte{}} }

func (h *fakeHost) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	if h.failPut != nil {
		return "", h.failPut
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.objects[key] = b
	return "http://assets.test/" + testBucket + "/" + key, nil
}

func (h *fakeHost) Delete(_ context.Context, key string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deleted = append(h.deleted, key)
	if h.failDelete != nil {
		return h.failDelete
	}
	delete(h.objects, key)
	return nil
}

func (h *fakeHost) Ping(context.Context) error { return nil }

func (h *fakeHost) PublicID(url string) (string, bool) {
	return assets.PublicIDFromURL(testBucket, url)
}

func (h *fakeHost) deletedKeys() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.deleted)
}

// fakeIndex records documents and answers searches by exact name match.
type fakeIndex struct {
	mu      sync.Mutex
	docs    map[string]search.Document
	failing bool
	fail    map[string]bool
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{docs: map[string]search.Document{}, fail: map[string]bool{}}
}

var errIndexDown = errors.New("index down")

func (x *fakeIndex) IndexTrek(_ context.Context, doc search.Document) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.failing || x.fail[doc.ID] {
		return errIndexDown
	}
	x.docs[doc.ID] = doc
	return nil
}

func (x *fakeIndex) DeleteTrek(_ context.Context, id string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.docs, id)
	return nil
}

func (x *fakeIndex) Search(_ context.Context, query string, limit int) ([]string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.failing {
		return nil, errIndexDown
	}
	var ids []string
	for id, d := range x.docs {
		if d.Name == query && len(ids) < limit {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (x *fakeIndex) Ping(context.Context) error { return nil }

func assetURL(key string) string { return "http://assets.test/" + testBucket + "/" + key }

func sampleRegion(name string) domain.Region {
	return domain.Region{
		Name:        name,
		Description: name + " region",
		Image:       assetURL("trekking/" + domain.Slugify(name) + ".jpg"),
		Keywords:    []string{"nepal"},
	}
}

func sampleTrek(name string) domain.Trek {
	return domain.Trek{
		Name:        name,
		Description: "A walk through " + name,
		Image:       assetURL("trekking/" + domain.Slugify(name) + "-cover.jpg"),
		Itinerary:   []domain.ItineraryDay{{Heading: "Day 1", Description: "Start"}},
		Pricing:     []domain.PriceTier{{MinPersons: 1, MaxPersons: 4, Price: 900}},
		Gallery: []domain.GalleryImage{
			{Src: assetURL("trekking/g1.jpg"), Alt: "one", Caption: "One"},
			{Src: assetURL("trekking/g2.jpg"), Alt: "two", Caption: "Two"},
		},
		Keywords: []string{"himal"},
	}
}

func discardLogger() *slog.Logger { return slogx.Discard() }
