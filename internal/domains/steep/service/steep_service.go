package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"teahouse-backend/internal/domains/steep"
	"teahouse-backend/internal/shared/pagination"
)

type steepServiceImpl struct {
	repository steep.SteepRepository
	brews      steep.BrewChecker

	// guard is shared with the brew service. It makes the
	// check-count-insert sequence atomic against a concurrent cascade
	// delete of the same brew.
	guard *sync.Mutex
}

func NewSteepService(repo steep.SteepRepository, brews steep.BrewChecker, guard *sync.Mutex) steep.SteepService {
	return &steepServiceImpl{
		repository: repo,
		brews:      brews,
		guard:      guard,
	}
}

// Create assigns steepNumber = current count for the brew, plus one.
// The whole sequence runs under the guard: a brew cannot be cascade-
// deleted between the existence check and the insert, and two creates
// for one brew cannot claim the same number.
func (s *steepServiceImpl) Create(ctx context.Context, brewID uuid.UUID, req *steep.CreateSteepReq) (*steep.Steep, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	exists, err := s.brews.ExistsByID(ctx, brewID)
	if err != nil {
		return nil, fmt.Errorf("create steep: %w", err)
	}
	if !exists {
		return nil, steep.ErrBrewNotFound
	}

	count, err := s.repository.CountByBrew(ctx, brewID)
	if err != nil {
		return nil, fmt.Errorf("create steep: %w", err)
	}

	entity := steep.NewSteep(brewID, count+1, req)
	if err := s.repository.Insert(ctx, entity); err != nil {
		return nil, fmt.Errorf("create steep: %w", err)
	}
	return &entity, nil
}

// ListByBrew is the only listing in the system with a mandated order:
// ascending steepNumber, applied before pagination.
func (s *steepServiceImpl) ListByBrew(ctx context.Context, brewID uuid.UUID, query *pagination.Query) ([]steep.Steep, pagination.Meta, error) {
	exists, err := s.brews.ExistsByID(ctx, brewID)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("list steeps: %w", err)
	}
	if !exists {
		return nil, pagination.Meta{}, steep.ErrBrewNotFound
	}

	items, err := s.repository.GetAllByBrew(ctx, brewID)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("list steeps: %w", err)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].SteepNumber < items[j].SteepNumber
	})

	page, meta := pagination.Paginate(items, query.Page, query.Limit)
	return page, meta, nil
}
