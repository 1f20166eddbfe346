package sqlite

import (
	"context"
	"fmt"

	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
)

type regionsRepo struct {
	db dbtx
}

const regionColumns = `id, name, slug, description, image, keywords, created_at, updated_at`

func scanRegion(row interface{ Scan(...any) error }) (domain.Region, error) {
	var (
		r        domain.Region
		keywords string
	)
	if err := row.Scan(&r.ID, &r.Name, &r.Slug, &r.Description, &r.Image, &keywords, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return domain.Region{}, err
	}

	kw, err := decodeJSON[string](keywords)
	if err != nil {
		return domain.Region{}, fmt.Errorf("decode region %s keywords: %w", r.ID, err)
	}
	r.Keywords = kw
	return r, nil
}

func (r *regionsRepo) ListRegions(ctx context.Context) ([]domain.Region, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+regionColumns+` FROM regions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Region{}
	for rows.Next() {
		reg, err := scanRegion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

func (r *regionsRepo) GetRegionByID(ctx context.Context, id string) (domain.Region, error) {
	reg, err := scanRegion(r.db.QueryRowContext(ctx,
		`SELECT `+regionColumns+` FROM regions WHERE id = ?`, id))
	if err != nil {
		return domain.Region{}, mapNotFound(err)
	}
	return reg, nil
}

func (r *regionsRepo) GetRegionBySlug(ctx context.Context, slug string) (domain.Region, error) {
	reg, err := scanRegion(r.db.QueryRowContext(ctx,
		`SELECT `+regionColumns+` FROM regions WHERE slug = ?`, slug))
	if err != nil {
		return domain.Region{}, mapNotFound(err)
	}
	return reg, nil
}

func (r *regionsRepo) RegionNameExists(ctx context.Context, name, excludeID string) (bool, error) {
	return exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM regions WHERE name = ? AND id <> ?)`, name, excludeID)
}

func (r *regionsRepo) CreateRegion(ctx context.Context, reg domain.Region) error {
	keywords, err := encodeJSON(reg.Keywords)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO regions (`+regionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		reg.ID, reg.Name, reg.Slug, reg.Description, reg.Image, keywords,
		reg.CreatedAt.UTC(), reg.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *regionsRepo) UpdateRegion(ctx context.Context, reg domain.Region) error {
	keywords, err := encodeJSON(reg.Keywords)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE regions
		    SET name = ?, slug = ?, description = ?, image = ?, keywords = ?, updated_at = ?
		  WHERE id = ?`,
		reg.Name, reg.Slug, reg.Description, reg.Image, keywords, reg.UpdatedAt.UTC(), reg.ID,
	)
	return mustAffect(res, mapConstraint(err))
}

func (r *regionsRepo) DeleteRegion(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM regions WHERE id = ?`, id)
	return mustAffect(res, err)
}
