package steep

import (
	"context"

	"github.com/google/uuid"

	"teahouse-backend/internal/shared/pagination"
)

type SteepService interface {
	Create(ctx context.Context, brewID uuid.UUID, req *CreateSteepReq) (*Steep, error)
	ListByBrew(ctx context.Context, brewID uuid.UUID, query *pagination.Query) ([]Steep, pagination.Meta, error)
}
