package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
)

type treksRepo struct {
	db dbtx
}

const trekColumns = `id, region_id, name, slug, description, image, overview, itinerary,
	inclusions, exclusions, pricing, gallery, faqs, keywords, created_at, updated_at`

// trekJSON holds the encoded nested fields of a trek row.
type trekJSON struct {
	overview, itinerary, inclusions, exclusions string
	pricing, gallery, faqs, keywords            string
}

func encodeTrek(t domain.Trek) (trekJSON, error) {
	var (
		j   trekJSON
		err error
	)
	if j.overview, err = encodeJSON(t.Overview); err != nil {
		return j, err
	}
	if j.itinerary, err = encodeJSON(t.Itinerary); err != nil {
		return j, err
	}
	if j.inclusions, err = encodeJSON(t.Inclusions); err != nil {
		return j, err
	}
	if j.exclusions, err = encodeJSON(t.Exclusions); err != nil {
		return j, err
	}
	if j.pricing, err = encodeJSON(t.Pricing); err != nil {
		return j, err
	}
	if j.gallery, err = encodeJSON(t.Gallery); err != nil {
		return j, err
	}
	if j.faqs, err = encodeJSON(t.FAQs); err != nil {
		return j, err
	}
	if j.keywords, err = encodeJSON(t.Keywords); err != nil {
		return j, err
	}
	return j, nil
}

func scanTrek(row interface{ Scan(...any) error }) (domain.Trek, error) {
	var (
		t domain.Trek
		j trekJSON
	)
	err := row.Scan(
		&t.ID, &t.RegionID, &t.Name, &t.Slug, &t.Description, &t.Image,
		&j.overview, &j.itinerary, &j.inclusions, &j.exclusions,
		&j.pricing, &j.gallery, &j.faqs, &j.keywords,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Trek{}, err
	}

	if t.Overview, err = decodeJSON[domain.OverviewItem](j.overview); err != nil {
		return domain.Trek{}, fmt.Errorf("decode trek %s overview: %w", t.ID, err)
	}
	if t.Itinerary, err = decodeJSON[domain.ItineraryDay](j.itinerary); err != nil {
		return domain.Trek{}, fmt.Errorf("decode trek %s itinerary: %w", t.ID, err)
	}
	if t.Inclusions, err = decodeJSON[string](j.inclusions); err != nil {
		return domain.Trek{}, fmt.Errorf("decode trek %s inclusions: %w", t.ID, err)
	}
	if t.Exclusions, err = decodeJSON[string](j.exclusions); err != nil {
		return domain.Trek{}, fmt.Errorf("decode trek %s exclusions: %w", t.ID, err)
	}
	if t.Pricing, err = decodeJSON[domain.PriceTier](j.pricing); err != nil {
		return domain.Trek{}, fmt.Errorf("decode trek %s pricing: %w", t.ID, err)
	}
	if t.Gallery, err = decodeJSON[domain.GalleryImage](j.gallery); err != nil {
		return domain.Trek{}, fmt.Errorf("decode trek %s gallery: %w", t.ID, err)
	}
	if t.FAQs, err = decodeJSON[domain.FAQ](j.faqs); err != nil {
		return domain.Trek{}, fmt.Errorf("decode trek %s faqs: %w", t.ID, err)
	}
	if t.Keywords, err = decodeJSON[string](j.keywords); err != nil {
		return domain.Trek{}, fmt.Errorf("decode trek %s keywords: %w", t.ID, err)
	}
	return t, nil
}

func (r *treksRepo) queryTreks(ctx context.Context, query string, args ...any) ([]domain.Trek, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Trek{}
	for rows.Next() {
		t, err := scanTrek(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *treksRepo) ListTreks(ctx context.Context) ([]domain.Trek, error) {
	return r.queryTreks(ctx, `SELECT `+trekColumns+` FROM treks ORDER BY name`)
}

func (r *treksRepo) ListTreksByRegion(ctx context.Context, regionID string) ([]domain.Trek, error) {
	return r.queryTreks(ctx,
		`SELECT `+trekColumns+` FROM treks WHERE region_id = ? ORDER BY name`, regionID)
}

func (r *treksRepo) CountTreksByRegion(ctx context.Context, regionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM treks WHERE region_id = ?`, regionID).Scan(&n)
	return n, err
}

func (r *treksRepo) GetTrekByID(ctx context.Context, id string) (domain.Trek, error) {
	t, err := scanTrek(r.db.QueryRowContext(ctx,
		`SELECT `+trekColumns+` FROM treks WHERE id = ?`, id))
	if err != nil {
		return domain.Trek{}, mapNotFound(err)
	}
	return t, nil
}

func (r *treksRepo) GetTrekBySlug(ctx context.Context, regionID, slug string) (domain.Trek, error) {
	t, err := scanTrek(r.db.QueryRowContext(ctx,
		`SELECT `+trekColumns+` FROM treks WHERE region_id = ? AND slug = ?`, regionID, slug))
	if err != nil {
		return domain.Trek{}, mapNotFound(err)
	}
	return t, nil
}

func (r *treksRepo) TrekNameExists(ctx context.Context, regionID, name, excludeID string) (bool, error) {
	return exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM treks WHERE region_id = ? AND name = ? AND id <> ?)`,
		regionID, name, excludeID)
}

func (r *treksRepo) CreateTrek(ctx context.Context, t domain.Trek) error {
	j, err := encodeTrek(t)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO treks (`+trekColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.RegionID, t.Name, t.Slug, t.Description, t.Image,
		j.overview, j.itinerary, j.inclusions, j.exclusions,
		j.pricing, j.gallery, j.faqs, j.keywords,
		t.CreatedAt.UTC(), t.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *treksRepo) UpdateTrek(ctx context.Context, t domain.Trek) error {
	j, err := encodeTrek(t)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE treks
		    SET name = ?, slug = ?, description = ?, image = ?, overview = ?, itinerary = ?,
		        inclusions = ?, exclusions = ?, pricing = ?, gallery = ?, faqs = ?, keywords = ?,
		        updated_at = ?
		  WHERE id = ?`,
		t.Name, t.Slug, t.Description, t.Image, j.overview, j.itinerary,
		j.inclusions, j.exclusions, j.pricing, j.gallery, j.faqs, j.keywords,
		t.UpdatedAt.UTC(), t.ID,
	)
	return mustAffect(res, mapConstraint(err))
}

func (r *treksRepo) DeleteTrek(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM treks WHERE id = ?`, id)
	return mustAffect(res, err)
}

func (r *treksRepo) SearchTreks(ctx context.Context, query string, limit int) ([]domain.Trek, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(query))) + "%"
	return r.queryTreks(ctx,
		`SELECT `+trekColumns+` FROM treks
		  WHERE lower(name) LIKE ? ESCAPE '\'
		     OR lower(description) LIKE ? ESCAPE '\'
		     OR lower(keywords) LIKE ? ESCAPE '\'
		  ORDER BY name
		  LIMIT ?`,
		pattern, pattern, pattern, limit)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
