package sqlite

import (
	"context"

	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
)

type adminsRepo struct {
	db dbtx
}

const adminColumns = `id, full_name, username, email, password_hash, created_at`

func scanAdmin(row interface{ Scan(...any) error }) (domain.Admin, error) {
	var a domain.Admin
	err := row.Scan(&a.ID, &a.FullName, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

func (r *adminsRepo) GetAdminByID(ctx context.Context, id string) (domain.Admin, error) {
	a, err := scanAdmin(r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = ?`, id))
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	a, err := scanAdmin(r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE username = ?`, username))
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (`+adminColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.FullName, a.Username, a.Email, a.PasswordHash, a.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *adminsRepo) CountAdmins(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n)
	return n, err
}

func (r *adminsRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM admins WHERE username = ?)`, username)
}

func (r *adminsRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM admins WHERE email = ?)`, email)
}

func exists(ctx context.Context, db dbtx, query string, args ...any) (bool, error) {
	var found bool
	if err := db.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}
