package teapot

import (
	"context"

	"github.com/google/uuid"

	"teahouse-backend/internal/shared/pagination"
)

type TeapotService interface {
	List(ctx context.Context, query *ListTeapotsQuery) ([]Teapot, pagination.Meta, error)
	Create(ctx context.Context, req *CreateTeapotReq) (*Teapot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Teapot, error)
	Replace(ctx context.Context, id uuid.UUID, req *ReplaceTeapotReq) (*Teapot, error)
	Patch(ctx context.Context, id uuid.UUID, req *PatchTeapotReq) (*Teapot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
