package teapot

import (
	"context"

	"github.com/google/uuid"
)

// TeapotRepository is the keyed collection backing the teapot
// resource. GetAll iterates in insertion order; filtering on secondary
// attributes is the service's linear scan.
type TeapotRepository interface {
	Insert(ctx context.Context, t Teapot) error
	GetByID(ctx context.Context, id uuid.UUID) (*Teapot, error)
	GetAll(ctx context.Context) ([]Teapot, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
