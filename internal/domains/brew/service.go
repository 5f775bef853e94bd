package brew

import (
	"context"

	"github.com/google/uuid"

	"teahouse-backend/internal/shared/pagination"
)

type BrewService interface {
	List(ctx context.Context, query *ListBrewsQuery) ([]Brew, pagination.Meta, error)
	ListByTeapot(ctx context.Context, teapotID uuid.UUID, query *pagination.Query) ([]Brew, pagination.Meta, error)
	Create(ctx context.Context, req *CreateBrewReq) (*Brew, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BrewDetail, error)
	Patch(ctx context.Context, id uuid.UUID, req *PatchBrewReq) (*Brew, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
