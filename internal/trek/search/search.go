package search

import (
	"context"

	"github.com/BishowDevkota/trekking-company/internal/trek/domain"
)

const DefaultLimit = 10

// Index is a full-text index over treks. It only stores what is needed to
// match a query; results are ids that the caller loads from the store.
type Index interface {
	IndexTrek(ctx context.Context, doc Document) error
	DeleteTrek(ctx context.Context, id string) error

	// Search returns matching trek ids, best match first.
	Search(ctx context.Context, query string, limit int) ([]string, error)

	Ping(ctx context.Context) error
}

type Document struct {
	ID          string   `json:"-"`
	RegionID    string   `json:"regionId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

func DocumentFromTrek(t domain.Trek) Document {
	return Document{
		ID:          t.ID,
		RegionID:    t.RegionID,
		Name:        t.Name,
		Description: t.Description,
		Keywords:    t.Keywords,
	}
}
