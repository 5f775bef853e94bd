package steep

import (
	"context"

	"github.com/google/uuid"
)

type SteepRepository interface {
	Insert(ctx context.Context, s Steep) error
	GetAllByBrew(ctx context.Context, brewID uuid.UUID) ([]Steep, error)
	CountByBrew(ctx context.Context, brewID uuid.UUID) (int, error)
	// DeleteByBrew removes every steep of the brew and returns how
	// many went away. This is the cascade path; no single-steep delete
	// exists.
	DeleteByBrew(ctx context.Context, brewID uuid.UUID) (int, error)
}

// BrewChecker is the slice of the brew repository the steep service
// needs: existence checks before insert and list.
type BrewChecker interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
