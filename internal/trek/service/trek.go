package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
	"github.com/BishowDevkota/trekking-company/internal/trek/search"
	"github.com/BishowDevkota/trekking-company/internal/trek/store"
	"github.com/BishowDevkota/trekking-company/pkg/idx"
	"github.com/BishowDevkota/trekking-company/pkg/slogx"
)

// MaxSearchLimit caps GET /api/search result sizes.
const MaxSearchLimit = 50

type TrekService struct {
	Store  store.Store
	Assets assets.Host

	// Index is optional. Without it search falls back to the store.
	Index search.Index
}

func (s *TrekService) region(ctx context.Context, slug string) (domain.Region, error) {
	r, err := s.Store.Regions().GetRegionBySlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Region{}, ErrRegionNotFound
	}
	return r, err
}

func (s *TrekService) ListAll(ctx context.Context) ([]domain.TrekSummary, error) {
	treks, err := s.Store.Treks().ListTreks(ctx)
	if err != nil {
		return nil, err
	}
	return summaries(treks), nil
}

func (s *TrekService) ListByRegion(ctx context.Context, regionSlug string) ([]domain.Trek, error) {
	r, err := s.region(ctx, regionSlug)
	if err != nil {
		return nil, err
	}
	return s.Store.Treks().ListTreksByRegion(ctx, r.ID)
}

func (s *TrekService) Get(ctx context.Context, regionSlug, trekSlug string) (domain.Trek, error) {
	r, err := s.region(ctx, regionSlug)
	if err != nil {
		return domain.Trek{}, err
	}
	t, err := s.Store.Treks().GetTrekBySlug(ctx, r.ID, trekSlug)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Trek{}, ErrTrekNotFound
	}
	return t, err
}

func (s *TrekService) Create(ctx context.Context, regionSlug string, in domain.Trek) (domain.Trek, error) {
	r, err := s.region(ctx, regionSlug)
	if err != nil {
		return domain.Trek{}, err
	}
	if err := domain.ValidateTrek(in); err != nil {
		return domain.Trek{}, err
	}
	t := domain.NormalizeTrek(in)

	taken, err := s.Store.Treks().TrekNameExists(ctx, r.ID, t.Name, "")
	if err != nil {
		return domain.Trek{}, err
	}
	if taken {
		return domain.Trek{}, ErrTrekExists
	}

	now := time.Now().UTC()
	t.ID = idx.New().String()
	t.RegionID = r.ID
	t.CreatedAt, t.UpdatedAt = now, now

	if err := s.Store.Treks().CreateTrek(ctx, t); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Trek{}, ErrTrekExists
		}
		return domain.Trek{}, fmt.Errorf("create trek: %w", err)
	}

	s.index(ctx, t)
	slogx.FromContext(ctx).Info("trek created", "trek_id", t.ID, "region_id", r.ID)
	return t, nil
}

// Update replaces the trek identified by in.ID. The id must name the trek at
// regionSlug/trekSlug. Images that the new version no longer references are
// removed from the asset host.
func (s *TrekService) Update(ctx context.Context, regionSlug, trekSlug string, in domain.Trek) (domain.Trek, error) {
	if in.ID == "" {
		return domain.Trek{}, ErrTrekIDRequired
	}
	if err := domain.ValidateTrek(in); err != nil {
		return domain.Trek{}, err
	}
	r, err := s.region(ctx, regionSlug)
	if err != nil {
		return domain.Trek{}, err
	}
	if !idx.Valid(in.ID) {
		return domain.Trek{}, ErrTrekNotFound
	}

	existing, err := s.Store.Treks().GetTrekByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Trek{}, ErrTrekNotFound
		}
		return domain.Trek{}, err
	}
	if existing.RegionID != r.ID || existing.Slug != trekSlug {
		return domain.Trek{}, ErrTrekNotFound
	}

	t := domain.NormalizeTrek(in)
	taken, err := s.Store.Treks().TrekNameExists(ctx, r.ID, t.Name, t.ID)
	if err != nil {
		return domain.Trek{}, err
	}
	if taken {
		return domain.Trek{}, ErrTrekExists
	}

	t.RegionID = existing.RegionID
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	if err := s.Store.Treks().UpdateTrek(ctx, t); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.Trek{}, ErrTrekNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Trek{}, ErrTrekExists
		}
		return domain.Trek{}, fmt.Errorf("update trek: %w", err)
	}

	var stale []string
	if existing.Image != t.Image {
		stale = append(stale, existing.Image)
	}
	stale = append(stale, removedGalleryImages(existing.Gallery, t.Gallery)...)
	removeImages(ctx, s.Assets, stale...)

	s.index(ctx, t)
	return t, nil
}

// removedGalleryImages lists sources present in before but not in after.
func removedGalleryImages(before, after []domain.GalleryImage) []string {
	keep := domain.GallerySources(after)
	var out []string
	for _, src := range domain.GallerySources(before) {
		if !slices.Contains(keep, src) {
			out = append(out, src)
		}
	}
	return out
}

// Delete removes a trek together with its cover and gallery images.
func (s *TrekService) Delete(ctx context.Context, regionSlug, trekSlug string) error {
	t, err := s.Get(ctx, regionSlug, trekSlug)
	if err != nil {
		return err
	}

	if err := s.Store.Treks().DeleteTrek(ctx, t.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTrekNotFound
		}
		return fmt.Errorf("delete trek: %w", err)
	}

	if s.Index != nil {
		if err := s.Index.DeleteTrek(ctx, t.ID); err != nil {
			slogx.FromContext(ctx).Warn("failed to remove trek from search index", "trek_id", t.ID, "err", err)
		}
	}

	removeImages(ctx, s.Assets, append([]string{t.Image}, domain.GallerySources(t.Gallery)...)...)
	slogx.FromContext(ctx).Info("trek deleted", "trek_id", t.ID)
	return nil
}

// DeleteGalleryImage drops one image from a trek's gallery and deletes the
// asset.
func (s *TrekService) DeleteGalleryImage(ctx context.Context, regionSlug, trekSlug, imageURL string) (domain.Trek, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return domain.Trek{}, ErrImageURLRequired
	}

	t, err := s.Get(ctx, regionSlug, trekSlug)
	if err != nil {
		return domain.Trek{}, err
	}

	removeImages(ctx, s.Assets, imageURL)

	t.Gallery = slices.DeleteFunc(t.Gallery, func(g domain.GalleryImage) bool {
		return g.Src == imageURL
	})
	t.UpdatedAt = time.Now().UTC()
	if err := s.Store.Treks().UpdateTrek(ctx, t); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Trek{}, ErrTrekNotFound
		}
		return domain.Trek{}, fmt.Errorf("update trek gallery: %w", err)
	}
	return t, nil
}

// Search matches treks by name, description and keywords. The search index
// is preferred; when it is missing or failing the store is queried directly.
func (s *TrekService) Search(ctx context.Context, query string, limit int) ([]domain.TrekSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrSearchQueryMissing
	}
	if limit <= 0 {
		limit = search.DefaultLimit
	}
	limit = min(limit, MaxSearchLimit)

	if s.Index != nil {
		treks, err := s.searchIndex(ctx, query, limit)
		if err == nil {
			return summaries(treks), nil
		}
		slogx.FromContext(ctx).Warn("search index failed, using store fallback", "err", err)
	}

	treks, err := s.Store.Treks().SearchTreks(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return summaries(treks), nil
}

func (s *TrekService) searchIndex(ctx context.Context, query string, limit int) ([]domain.Trek, error) {
	ids, err := s.Index.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Trek, 0, len(ids))
	for _, id := range ids {
		t, err := s.Store.Treks().GetTrekByID(ctx, id)
		if err != nil {
			// The index can briefly lag behind deletes.
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *TrekService) index(ctx context.Context, t domain.Trek) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexTrek(ctx, search.DocumentFromTrek(t)); err != nil {
		slogx.FromContext(ctx).Warn("failed to index trek", "trek_id", t.ID, "err", err)
	}
}

func summaries(treks []domain.Trek) []domain.TrekSummary {
	out := make([]domain.TrekSummary, 0, len(treks))
	for _, t := range treks {
		out = append(out, t.Summary())
	}
	return out
}
