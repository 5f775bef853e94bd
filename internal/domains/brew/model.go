package brew

import (
	"time"

	"github.com/google/uuid"

	"teahouse-backend/internal/domains/tea"
	"teahouse-backend/internal/domains/teapot"
)

// Statuses a brew can carry. There is deliberately no transition
// checking: any status may be patched from any other.
var Statuses = []string{"preparing", "steeping", "ready", "served", "cold"}

const StatusPreparing = "preparing"

// Brew references one teapot and one tea. Both must exist at creation
// time; deleting them afterwards orphans the references, which the
// fixture tolerates.
type Brew struct {
	ID               uuid.UUID  `json:"id"`
	TeapotID         uuid.UUID  `json:"teapotId"`
	TeaID            uuid.UUID  `json:"teaId"`
	Status           string     `json:"status"`
	WaterTempCelsius int        `json:"waterTempCelsius"`
	Notes            *string    `json:"notes"`
	StartedAt        time.Time  `json:"startedAt"`
	CompletedAt      *time.Time `json:"completedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// BrewDetail is the expansion view returned by GET /brews/:id: the
// brew with its referenced entities inlined. A sub-object is dropped
// if its entity has since been deleted; that is not an error.
type BrewDetail struct {
	Brew
	Teapot *teapot.Teapot `json:"teapot,omitempty"`
	Tea    *tea.Tea       `json:"tea,omitempty"`
}

// NewBrew builds a brew from a validated create request. Status is
// always "preparing" and StartedAt equals CreatedAt. waterTemp is the
// already-defaulted value (request or the tea's steep temperature).
func NewBrew(teapotID, teaID uuid.UUID, waterTemp int, notes *string) Brew {
	now := time.Now().UTC()

	return Brew{
		ID:               uuid.New(),
		TeapotID:         teapotID,
		TeaID:            teaID,
		Status:           StatusPreparing,
		WaterTempCelsius: waterTemp,
		Notes:            notes,
		StartedAt:        now,
		CompletedAt:      nil,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ApplyPatch mutates the only patchable fields: status, notes and
// completedAt. Referential fields never change after creation.
func (b *Brew) ApplyPatch(req *PatchBrewReq) {
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.Notes != nil {
		b.Notes = req.Notes
	}
	if req.CompletedAt != nil {
		b.CompletedAt = req.CompletedAt
	}
	b.UpdatedAt = time.Now().UTC()
}
