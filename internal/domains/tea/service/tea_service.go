package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"teahouse-backend/internal/domains/tea"
	"teahouse-backend/internal/shared/pagination"
)

type teaServiceImpl struct {
	repository tea.TeaRepository
}

func NewTeaService(repo tea.TeaRepository) tea.TeaService {
	return &teaServiceImpl{
		repository: repo,
	}
}

func (s *teaServiceImpl) List(ctx context.Context, query *tea.ListTeasQuery) ([]tea.Tea, pagination.Meta, error) {
	items, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("list teas: %w", err)
	}

	filtered := make([]tea.Tea, 0, len(items))
	for _, t := range items {
		if query.Type != "" && t.Type != query.Type {
			continue
		}
		if query.CaffeineLevel != "" && t.CaffeineLevel != query.CaffeineLevel {
			continue
		}
		filtered = append(filtered, t)
	}

	page, meta := pagination.Paginate(filtered, query.Page, query.Limit)
	return page, meta, nil
}

func (s *teaServiceImpl) Create(ctx context.Context, req *tea.CreateTeaReq) (*tea.Tea, error) {
	entity := tea.NewTea(req)
	if err := s.repository.Insert(ctx, entity); err != nil {
		return nil, fmt.Errorf("create tea: %w", err)
	}
	return &entity, nil
}

func (s *teaServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*tea.Tea, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *teaServiceImpl) Replace(ctx context.Context, id uuid.UUID, req *tea.ReplaceTeaReq) (*tea.Tea, error) {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Replace(req)
	if err := s.repository.Insert(ctx, *existing); err != nil {
		return nil, fmt.Errorf("replace tea: %w", err)
	}
	return existing, nil
}

func (s *teaServiceImpl) Patch(ctx context.Context, id uuid.UUID, req *tea.PatchTeaReq) (*tea.Tea, error) {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ApplyPatch(req)
	if err := s.repository.Insert(ctx, *existing); err != nil {
		return nil, fmt.Errorf("patch tea: %w", err)
	}
	return existing, nil
}

func (s *teaServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete tea: %w", err)
	}
	if !deleted {
		return tea.ErrTeaNotFound
	}
	return nil
}
