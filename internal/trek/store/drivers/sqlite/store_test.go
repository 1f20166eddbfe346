package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
	"github.com/BishowDevkota/trekking-company/internal/trek/store"
	"github.com/BishowDevkota/trekking-company/internal/trek/store/drivers/sqlite"
	"github.com/BishowDevkota/trekking-company/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "trek.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	// Applying twice is a no-op.
	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedRegion(t *testing.T, s store.Store, name string) domain.Region {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	r := domain.NormalizeRegion(domain.Region{
		ID:          idx.New().String(),
		Name:        name,
		Description: name + " region",
		Image:       "https://assets.example.com/trek-assets/trekking/" + domain.Slugify(name) + ".jpg",
		Keywords:    []string{domain.Slugify(name)},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, s.Regions().CreateRegion(context.Background(), r))
	return r
}

func TestAdmins(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	n, err := s.Admins().CountAdmins(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	admin := domain.Admin{
		ID:           idx.New().String(),
		FullName:     "Pasang Sherpa",
		Username:     "pasang",
		Email:        "pasang@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.Admins().CreateAdmin(ctx, admin))

	got, err := s.Admins().GetAdminByUsername(ctx, "pasang")
	require.NoError(t, err)
	require.Equal(t, admin.ID, got.ID)
	require.Equal(t, admin.Email, got.Email)

	got, err = s.Admins().GetAdminByID(ctx, admin.ID)
	require.NoError(t, err)
	require.Equal(t, "pasang", got.Username)

	_, err = s.Admins().GetAdminByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)

	ok, err := s.Admins().UsernameExists(ctx, "pasang")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Admins().EmailExists(ctx, "PASANG@example.com")
	require.NoError(t, err)
	require.True(t, ok)

	dup := admin
	dup.ID = idx.New().String()
	dup.Email = "other@example.com"
	require.ErrorIs(t, s.Admins().CreateAdmin(ctx, dup), store.ErrAlreadyExists)

	n, err = s.Admins().CountAdmins(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestRegions(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	everest := seedRegion(t, s, "Everest")
	seedRegion(t, s, "Annapurna")

	list, err := s.Regions().ListRegions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Annapurna", list[0].Name)

	got, err := s.Regions().GetRegionBySlug(ctx, "everest")
	require.NoError(t, err)
	require.Equal(t, everest.ID, got.ID)
	require.Equal(t, []string{"everest"}, got.Keywords)

	exists, err := s.Regions().RegionNameExists(ctx, "EVEREST", "")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = s.Regions().RegionNameExists(ctx, "everest", everest.ID)
	require.NoError(t, err)
	require.False(t, exists)

	everest.Name = "Everest Khumbu"
	everest.Slug = domain.Slugify(everest.Name)
	everest.UpdatedAt = time.Now().UTC()
	require.NoError(t, s.Regions().UpdateRegion(ctx, everest))

	got, err = s.Regions().GetRegionByID(ctx, everest.ID)
	require.NoError(t, err)
	require.Equal(t, "everest-khumbu", got.Slug)

	missing := everest
	missing.ID = idx.New().String()
	require.ErrorIs(t, s.Regions().UpdateRegion(ctx, missing), store.ErrNotFound)

	require.NoError(t, s.Regions().DeleteRegion(ctx, everest.ID))
	require.ErrorIs(t, s.Regions().DeleteRegion(ctx, everest.ID), store.ErrNotFound)
}

func TestTrekNestedFieldsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	region := seedRegion(t, s, "Everest")

	now := time.Now().UTC().Truncate(time.Second)
	trek := domain.NormalizeTrek(domain.Trek{
		ID:          idx.New().String(),
		RegionID:    region.ID,
		Name:        "Everest Base Camp",
		Description: "Classic route through the Khumbu",
		Image:       "https://assets.example.com/trek-assets/trekking/ebc.jpg",
		Overview:    []domain.OverviewItem{{Icon: "mountain", Heading: "Max altitude", Description: "5,364 m"}},
		Itinerary: []domain.ItineraryDay{
			{Heading: "Day 1", Description: "Fly to Lukla"},
			{Heading: "Day 2", Description: "Namche Bazaar"},
		},
		Inclusions: []string{"Permits", "Guide"},
		Pricing:    []domain.PriceTier{{MinPersons: 1, MaxPersons: 4, Price: 1399.5}},
		Gallery:    []domain.GalleryImage{{Src: "https://assets.example.com/a.jpg", Alt: "Ama Dablam", Caption: "Sunrise"}},
		FAQs:       []domain.FAQ{{Question: "Altitude sickness?", Answer: "Acclimatise"}},
		Keywords:   []string{"ebc", "khumbu"},
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, s.Treks().CreateTrek(ctx, trek))

	got, err := s.Treks().GetTrekBySlug(ctx, region.ID, "everest-base-camp")
	require.NoError(t, err)
	require.Equal(t, trek.Overview, got.Overview)
	require.Equal(t, trek.Itinerary, got.Itinerary)
	require.Equal(t, trek.Inclusions, got.Inclusions)
	require.Equal(t, []string{}, got.Exclusions)
	require.Equal(t, trek.Pricing, got.Pricing)
	require.Equal(t, trek.Gallery, got.Gallery)
	require.Equal(t, trek.FAQs, got.FAQs)
	require.Equal(t, trek.Keywords, got.Keywords)
	require.True(t, trek.CreatedAt.Equal(got.CreatedAt))

	_, err = s.Treks().GetTrekBySlug(ctx, idx.New().String(), "everest-base-camp")
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := s.Treks().CountTreksByRegion(ctx, region.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	exists, err := s.Treks().TrekNameExists(ctx, region.ID, "everest base camp", "")
	require.NoError(t, err)
	require.True(t, exists)

	dup := trek
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Treks().CreateTrek(ctx, dup), store.ErrAlreadyExists)

	// A region with treks cannot be removed.
	require.Error(t, s.Regions().DeleteRegion(ctx, region.ID))

	trek.Gallery = nil
	trek.UpdatedAt = time.Now().UTC()
	require.NoError(t, s.Treks().UpdateTrek(ctx, trek))
	got, err = s.Treks().GetTrekByID(ctx, trek.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.GalleryImage{}, got.Gallery)

	require.NoError(t, s.Treks().DeleteTrek(ctx, trek.ID))
	_, err = s.Treks().GetTrekByID(ctx, trek.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSearchTreks(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	region := seedRegion(t, s, "Annapurna")

	now := time.Now().UTC()
	for _, name := range []string{"Mardi Himal", "Annapurna Circuit", "Poon Hill 100%"} {
		tr := domain.NormalizeTrek(domain.Trek{
			ID:          idx.New().String(),
			RegionID:    region.ID,
			Name:        name,
			Description: "A trek in the Annapurna range",
			Image:       "https://assets.example.com/x.jpg",
			Keywords:    []string{"pokhara"},
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		require.NoError(t, s.Treks().CreateTrek(ctx, tr))
	}

	got, err := s.Treks().SearchTreks(ctx, "mardi", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Mardi Himal", got[0].Name)

	got, err = s.Treks().SearchTreks(ctx, "POKHARA", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = s.Treks().SearchTreks(ctx, "100%", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Admins().CreateAdmin(ctx, domain.Admin{
			ID:           idx.New().String(),
			FullName:     "Temp",
			Username:     "temp",
			Email:        "temp@example.com",
			PasswordHash: "x",
			CreatedAt:    time.Now().UTC(),
		}))
		return store.ErrAlreadyExists
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	n, err := s.Admins().CountAdmins(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}
