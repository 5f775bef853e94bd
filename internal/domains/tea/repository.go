package tea

import (
	"context"

	"github.com/google/uuid"
)

type TeaRepository interface {
	Insert(ctx context.Context, t Tea) error
	GetByID(ctx context.Context, id uuid.UUID) (*Tea, error)
	GetAll(ctx context.Context) ([]Tea, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
