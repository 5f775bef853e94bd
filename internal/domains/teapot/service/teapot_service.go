package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"teahouse-backend/internal/domains/teapot"
	"teahouse-backend/internal/shared/pagination"
)

type teapotServiceImpl struct {
	repository teapot.TeapotRepository
}

func NewTeapotService(repo teapot.TeapotRepository) teapot.TeapotService {
	return &teapotServiceImpl{
		repository: repo,
	}
}

func (s *teapotServiceImpl) List(ctx context.Context, query *teapot.ListTeapotsQuery) ([]teapot.Teapot, pagination.Meta, error) {
	items, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("list teapots: %w", err)
	}

	filtered := make([]teapot.Teapot, 0, len(items))
	for _, t := range items {
		if query.Material != "" && t.Material != query.Material {
			continue
		}
		if query.Style != "" && t.Style != query.Style {
			continue
		}
		filtered = append(filtered, t)
	}

	page, meta := pagination.Paginate(filtered, query.Page, query.Limit)
	return page, meta, nil
}

func (s *teapotServiceImpl) Create(ctx context.Context, req *teapot.CreateTeapotReq) (*teapot.Teapot, error) {
	entity := teapot.NewTeapot(req)
	if err := s.repository.Insert(ctx, entity); err != nil {
		return nil, fmt.Errorf("create teapot: %w", err)
	}
	return &entity, nil
}

func (s *teapotServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*teapot.Teapot, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *teapotServiceImpl) Replace(ctx context.Context, id uuid.UUID, req *teapot.ReplaceTeapotReq) (*teapot.Teapot, error) {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Replace(req)
	if err := s.repository.Insert(ctx, *existing); err != nil {
		return nil, fmt.Errorf("replace teapot: %w", err)
	}
	return existing, nil
}

func (s *teapotServiceImpl) Patch(ctx context.Context, id uuid.UUID, req *teapot.PatchTeapotReq) (*teapot.Teapot, error) {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ApplyPatch(req)
	if err := s.repository.Insert(ctx, *existing); err != nil {
		return nil, fmt.Errorf("patch teapot: %w", err)
	}
	return existing, nil
}

func (s *teapotServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete teapot: %w", err)
	}
	if !deleted {
		return teapot.ErrTeapotNotFound
	}
	return nil
}
