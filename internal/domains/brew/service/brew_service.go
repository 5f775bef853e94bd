package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"teahouse-backend/internal/domains/brew"
	"teahouse-backend/internal/domains/tea"
	"teahouse-backend/internal/domains/teapot"
	"teahouse-backend/internal/shared/pagination"
)

type brewServiceImpl struct {
	repository brew.BrewRepository
	teapots    teapot.TeapotRepository
	teas       tea.TeaRepository
	steeps     brew.SteepCascader

	// guard serializes brew deletion against steep creation for the
	// same brew, so a cascade can never race a count-and-assign. The
	// steep service holds the same mutex. No other operation takes it.
	guard *sync.Mutex
}

func NewBrewService(
	repo brew.BrewRepository,
	teapots teapot.TeapotRepository,
	teas tea.TeaRepository,
	steeps brew.SteepCascader,
	guard *sync.Mutex,
) brew.BrewService {
	return &brewServiceImpl{
		repository: repo,
		teapots:    teapots,
		teas:       teas,
		steeps:     steeps,
		guard:      guard,
	}
}

func (s *brewServiceImpl) List(ctx context.Context, query *brew.ListBrewsQuery) ([]brew.Brew, pagination.Meta, error) {
	items, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("list brews: %w", err)
	}

	// UUID filters arrive pre-validated, so parse once and compare
	// values rather than strings. That keeps uppercase input working.
	var teapotFilter, teaFilter uuid.UUID
	if query.TeapotID != "" {
		teapotFilter, _ = uuid.Parse(query.TeapotID)
	}
	if query.TeaID != "" {
		teaFilter, _ = uuid.Parse(query.TeaID)
	}

	filtered := make([]brew.Brew, 0, len(items))
	for _, b := range items {
		if query.Status != "" && b.Status != query.Status {
			continue
		}
		if query.TeapotID != "" && b.TeapotID != teapotFilter {
			continue
		}
		if query.TeaID != "" && b.TeaID != teaFilter {
			continue
		}
		filtered = append(filtered, b)
	}

	page, meta := pagination.Paginate(filtered, query.Page, query.Limit)
	return page, meta, nil
}

func (s *brewServiceImpl) ListByTeapot(ctx context.Context, teapotID uuid.UUID, query *pagination.Query) ([]brew.Brew, pagination.Meta, error) {
	exists, err := s.teapots.ExistsByID(ctx, teapotID)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("list brews by teapot: %w", err)
	}
	if !exists {
		return nil, pagination.Meta{}, brew.ErrTeapotNotFound
	}

	items, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("list brews by teapot: %w", err)
	}

	filtered := make([]brew.Brew, 0, len(items))
	for _, b := range items {
		if b.TeapotID == teapotID {
			filtered = append(filtered, b)
		}
	}

	page, meta := pagination.Paginate(filtered, query.Page, query.Limit)
	return page, meta, nil
}

// Create enforces the one referential-integrity rule of the system:
// both referenced entities must exist right now. Later deletes are not
// re-validated.
func (s *brewServiceImpl) Create(ctx context.Context, req *brew.CreateBrewReq) (*brew.Brew, error) {
	teapotID, err := uuid.Parse(req.TeapotID)
	if err != nil {
		return nil, brew.ErrTeapotNotFound
	}
	teaID, err := uuid.Parse(req.TeaID)
	if err != nil {
		return nil, brew.ErrTeaNotFound
	}

	exists, err := s.teapots.ExistsByID(ctx, teapotID)
	if err != nil {
		return nil, fmt.Errorf("create brew: %w", err)
	}
	if !exists {
		return nil, brew.ErrTeapotNotFound
	}

	teaEntity, err := s.teas.GetByID(ctx, teaID)
	if err != nil {
		if errors.Is(err, tea.ErrTeaNotFound) {
			return nil, brew.ErrTeaNotFound
		}
		return nil, fmt.Errorf("create brew: %w", err)
	}

	waterTemp := teaEntity.SteepTempCelsius
	if req.WaterTempCelsius != nil {
		waterTemp = *req.WaterTempCelsius
	}

	entity := brew.NewBrew(teapotID, teaID, waterTemp, req.Notes)
	if err := s.repository.Insert(ctx, entity); err != nil {
		return nil, fmt.Errorf("create brew: %w", err)
	}
	return &entity, nil
}

// GetByID resolves the expansion view. A missing referenced teapot or
// tea just drops the sub-object; the bare brew still comes back.
func (s *brewServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*brew.BrewDetail, error) {
	b, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &brew.BrewDetail{Brew: *b}
	if tp, err := s.teapots.GetByID(ctx, b.TeapotID); err == nil {
		detail.Teapot = tp
	}
	if t, err := s.teas.GetByID(ctx, b.TeaID); err == nil {
		detail.Tea = t
	}
	return detail, nil
}

func (s *brewServiceImpl) Patch(ctx context.Context, id uuid.UUID, req *brew.PatchBrewReq) (*brew.Brew, error) {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ApplyPatch(req)
	if err := s.repository.Insert(ctx, *existing); err != nil {
		return nil, fmt.Errorf("patch brew: %w", err)
	}
	return existing, nil
}

// Delete cascades: every steep of the brew goes away in the same
// logical operation.
func (s *brewServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	exists, err := s.repository.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete brew: %w", err)
	}
	if !exists {
		return brew.ErrBrewNotFound
	}

	if _, err := s.steeps.DeleteByBrew(ctx, id); err != nil {
		return fmt.Errorf("delete brew: cascade steeps: %w", err)
	}
	if _, err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete brew: %w", err)
	}
	return nil
}
