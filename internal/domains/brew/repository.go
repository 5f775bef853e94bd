package brew

import (
	"context"

	"github.com/google/uuid"
)

type BrewRepository interface {
	Insert(ctx context.Context, b Brew) error
	GetByID(ctx context.Context, id uuid.UUID) (*Brew, error)
	GetAll(ctx context.Context) ([]Brew, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// SteepCascader is the slice of the steep repository the brew service
// needs for cascade deletes. Declared here to keep the two domains
// from importing each other.
type SteepCascader interface {
	DeleteByBrew(ctx context.Context, brewID uuid.UUID) (int, error)
}
