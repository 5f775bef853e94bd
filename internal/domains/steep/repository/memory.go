package repository

import (
	"context"

	"github.com/google/uuid"

	"teahouse-backend/internal/domains/steep"
	"teahouse-backend/internal/shared/memstore"
)

type memorySteepRepository struct {
	store *memstore.Store[steep.Steep]
}

func NewMemorySteepRepository() steep.SteepRepository {
	return &memorySteepRepository{
		store: memstore.New[steep.Steep](),
	}
}

func (r *memorySteepRepository) Insert(_ context.Context, s steep.Steep) error {
	r.store.Insert(s.ID, s)
	return nil
}

func (r *memorySteepRepository) GetAllByBrew(_ context.Context, brewID uuid.UUID) ([]steep.Steep, error) {
	items := make([]steep.Steep, 0)
	for _, s := range r.store.List() {
		if s.BrewID == brewID {
			items = append(items, s)
		}
	}
	return items, nil
}

func (r *memorySteepRepository) CountByBrew(_ context.Context, brewID uuid.UUID) (int, error) {
	count := 0
	for _, s := range r.store.List() {
		if s.BrewID == brewID {
			count++
		}
	}
	return count, nil
}

func (r *memorySteepRepository) DeleteByBrew(_ context.Context, brewID uuid.UUID) (int, error) {
	removed := r.store.DeleteWhere(func(s steep.Steep) bool {
		return s.BrewID == brewID
	})
	return removed, nil
}
