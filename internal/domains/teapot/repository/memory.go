package repository

import (
	"context"

	"github.com/google/uuid"

	"teahouse-backend/internal/domains/teapot"
	"teahouse-backend/internal/shared/memstore"
)

// memoryTeapotRepository keeps teapots in process memory. The fixture
// has no persistence on purpose; each constructed repository starts
// empty, which makes per-test isolation a constructor call.
type memoryTeapotRepository struct {
	store *memstore.Store[teapot.Teapot]
}

func NewMemoryTeapotRepository() teapot.TeapotRepository {
	return &memoryTeapotRepository{
		store: memstore.New[teapot.Teapot](),
	}
}

func (r *memoryTeapotRepository) Insert(_ context.Context, t teapot.Teapot) error {
	r.store.Insert(t.ID, t)
	return nil
}

func (r *memoryTeapotRepository) GetByID(_ context.Context, id uuid.UUID) (*teapot.Teapot, error) {
	t, ok := r.store.Get(id)
	if !ok {
		return nil, teapot.ErrTeapotNotFound
	}
	return &t, nil
}

func (r *memoryTeapotRepository) GetAll(_ context.Context) ([]teapot.Teapot, error) {
	return r.store.List(), nil
}

func (r *memoryTeapotRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	return r.store.Delete(id), nil
}

func (r *memoryTeapotRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return r.store.Has(id), nil
}
