package repository

import (
	"context"

	"github.com/google/uuid"

	"teahouse-backend/internal/domains/tea"
	"teahouse-backend/internal/shared/memstore"
)

type memoryTeaRepository struct {
	store *memstore.Store[tea.Tea]
}

func NewMemoryTeaRepository() tea.TeaRepository {
	return &memoryTeaRepository{
		store: memstore.New[tea.Tea](),
	}
}

func (r *memoryTeaRepository) Insert(_ context.Context, t tea.Tea) error {
	r.store.Insert(t.ID, t)
	return nil
}

func (r *memoryTeaRepository) GetByID(_ context.Context, id uuid.UUID) (*tea.Tea, error) {
	t, ok := r.store.Get(id)
	if !ok {
		return nil, tea.ErrTeaNotFound
	}
	return &t, nil
}

func (r *memoryTeaRepository) GetAll(_ context.Context) ([]tea.Tea, error) {
	return r.store.List(), nil
}

func (r *memoryTeaRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	return r.store.Delete(id), nil
}

func (r *memoryTeaRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return r.store.Has(id), nil
}
