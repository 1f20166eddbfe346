package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
	"github.com/BishowDevkota/trekking-company/internal/trek/store"
	"github.com/BishowDevkota/trekking-company/pkg/idx"
	"github.com/BishowDevkota/trekking-company/pkg/slogx"
)

type RegionService struct {
	Store  store.Store
	Assets assets.Host
}

func (s *RegionService) List(ctx context.Context) ([]domain.Region, error) {
	return s.Store.Regions().ListRegions(ctx)
}

func (s *RegionService) GetBySlug(ctx context.Context, slug string) (domain.Region, error) {
	r, err := s.Store.Regions().GetRegionBySlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Region{}, ErrRegionNotFound
	}
	return r, err
}

func (s *RegionService) Create(ctx context.Context, in domain.Region) (domain.Region, error) {
	if err := domain.ValidateRegion(in); err != nil {
		return domain.Region{}, err
	}
	r := domain.NormalizeRegion(in)

	taken, err := s.Store.Regions().RegionNameExists(ctx, r.Name, "")
	if err != nil {
		return domain.Region{}, err
	}
	if taken {
		return domain.Region{}, ErrRegionExists
	}

	now := time.Now().UTC()
	r.ID = idx.New().String()
	r.CreatedAt, r.UpdatedAt = now, now

	if err := s.Store.Regions().CreateRegion(ctx, r); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Region{}, ErrRegionExists
		}
		return domain.Region{}, fmt.Errorf("create region: %w", err)
	}

	slogx.FromContext(ctx).Info("region created", "region_id", r.ID, "slug", r.Slug)
	return r, nil
}

// Update replaces a region's editable fields. A replaced cover image is
// removed from the asset host.
func (s *RegionService) Update(ctx context.Context, in domain.Region) (domain.Region, error) {
	if in.ID == "" {
		return domain.Region{}, ErrRegionIDRequired
	}
	if err := domain.ValidateRegion(in); err != nil {
		return domain.Region{}, err
	}
	if !idx.Valid(in.ID) {
		return domain.Region{}, ErrRegionNotFound
	}
	r := domain.NormalizeRegion(in)

	taken, err := s.Store.Regions().RegionNameExists(ctx, r.Name, r.ID)
	if err != nil {
		return domain.Region{}, err
	}
	if taken {
		return domain.Region{}, ErrRegionExists
	}

	existing, err := s.Store.Regions().GetRegionByID(ctx, r.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Region{}, ErrRegionNotFound
		}
		return domain.Region{}, err
	}

	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = time.Now().UTC()
	if err := s.Store.Regions().UpdateRegion(ctx, r); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.Region{}, ErrRegionNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Region{}, ErrRegionExists
		}
		return domain.Region{}, fmt.Errorf("update region: %w", err)
	}

	if existing.Image != r.Image {
		removeImages(ctx, s.Assets, existing.Image)
	}
	return r, nil
}

// Delete removes an empty region and its cover image.
func (s *RegionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrRegionIDRequired
	}
	if !idx.Valid(id) {
		return ErrRegionNotFound
	}

	n, err := s.Store.Treks().CountTreksByRegion(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return &RegionInUseError{Treks: n}
	}

	existing, err := s.Store.Regions().GetRegionByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRegionNotFound
		}
		return err
	}

	if err := s.Store.Regions().DeleteRegion(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRegionNotFound
		}
		return fmt.Errorf("delete region: %w", err)
	}

	removeImages(ctx, s.Assets, existing.Image)
	slogx.FromContext(ctx).Info("region deleted", "region_id", id)
	return nil
}
