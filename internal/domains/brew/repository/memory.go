package repository

import (
	"context"

	"github.com/google/uuid"

	"teahouse-backend/internal/domains/brew"
	"teahouse-backend/internal/shared/memstore"
)

type memoryBrewRepository struct {
	store *memstore.Store[brew.Brew]
}

func NewMemoryBrewRepository() brew.BrewRepository {
	return &memoryBrewRepository{
		store: memstore.New[brew.Brew](),
	}
}

func (r *memoryBrewRepository) Insert(_ context.Context, b brew.Brew) error {
	r.store.Insert(b.ID, b)
	return nil
}

func (r *memoryBrewRepository) GetByID(_ context.Context, id uuid.UUID) (*brew.Brew, error) {
	b, ok := r.store.Get(id)
	if !ok {
		return nil, brew.ErrBrewNotFound
	}
	return &b, nil
}

func (r *memoryBrewRepository) GetAll(_ context.Context) ([]brew.Brew, error) {
	return r.store.List(), nil
}

func (r *memoryBrewRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	return r.store.Delete(id), nil
}

func (r *memoryBrewRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return r.store.Has(id), nil
}
