package provider

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("provider not found")

type Repository interface {
	Create(ctx context.Context, p Provider) (Provider, error)
	GetByID(ctx context.Context, id int64) (Provider, error)
	Update(ctx context.Context, p Provider) (Provider, error)
	List(ctx context.Context) ([]Provider, error)

	// ListByOwnerRole returns providers whose owning user holds the given
	// role. Matching reads through this so that orphaned profiles never
	// surface in a ranking.
	ListByOwnerRole(ctx context.Context, role string) ([]Provider, error)
}
