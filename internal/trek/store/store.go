package store

import (
	"context"
	"errors"

	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and so a Tx cannot start another transaction.
type Store interface {
	Admins() Admins
	Regions() Regions
	Treks() Treks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Admins interface {
	// GetAdminByID is used at refresh to re-load the token subject.
	GetAdminByID(ctx context.Context, id string) (domain.Admin, error)

	// GetAdminByUsername is used at sign-in.
	GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error)

	// CreateAdmin inserts a new admin (id is provided by app via ULID).
	// Returns ErrAlreadyExists on a username or email collision.
	CreateAdmin(ctx context.Context, a domain.Admin) error

	CountAdmins(ctx context.Context) (int, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type Regions interface {
	// ListRegions returns all regions ordered by name.
	ListRegions(ctx context.Context) ([]domain.Region, error)

	GetRegionByID(ctx context.Context, id string) (domain.Region, error)
	GetRegionBySlug(ctx context.Context, slug string) (domain.Region, error)

	// RegionNameExists matches case-insensitively. excludeID lets an update
	// keep its own name.
	RegionNameExists(ctx context.Context, name, excludeID string) (bool, error)

	CreateRegion(ctx context.Context, r domain.Region) error

	// UpdateRegion overwrites name, slug, description, image and keywords.
	UpdateRegion(ctx context.Context, r domain.Region) error

	// DeleteRegion fails with a foreign key error while treks still reference it.
	DeleteRegion(ctx context.Context, id string) error
}

type Treks interface {
	// ListTreks returns every trek ordered by name.
	ListTreks(ctx context.Context) ([]domain.Trek, error)
	ListTreksByRegion(ctx context.Context, regionID string) ([]domain.Trek, error)
	CountTreksByRegion(ctx context.Context, regionID string) (int, error)

	GetTrekByID(ctx context.Context, id string) (domain.Trek, error)

	// GetTrekBySlug looks the trek up within a region, slugs are only unique
	// per region.
	GetTrekBySlug(ctx context.Context, regionID, slug string) (domain.Trek, error)

	// TrekNameExists matches case-insensitively within the region.
	TrekNameExists(ctx context.Context, regionID, name, excludeID string) (bool, error)

	CreateTrek(ctx context.Context, t domain.Trek) error
	UpdateTrek(ctx context.Context, t domain.Trek) error
	DeleteTrek(ctx context.Context, id string) error

	// SearchTreks is the fallback used when no search index is configured. It
	// matches the query against name, description and keywords.
	SearchTreks(ctx context.Context, query string, limit int) ([]domain.Trek, error)
}
