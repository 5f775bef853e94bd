package tea

import (
	"context"

	"github.com/google/uuid"

	"teahouse-backend/internal/shared/pagination"
)

type TeaService interface {
	List(ctx context.Context, query *ListTeasQuery) ([]Tea, pagination.Meta, error)
	Create(ctx context.Context, req *CreateTeaReq) (*Tea, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Tea, error)
	Replace(ctx context.Context, id uuid.UUID, req *ReplaceTeaReq) (*Tea, error)
	Patch(ctx context.Context, id uuid.UUID, req *PatchTeaReq) (*Tea, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
