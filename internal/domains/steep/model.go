package steep

import (
	"time"

	"github.com/google/uuid"
)

// Steep is an immutable record of one infusion of a brew. It has no
// UpdatedAt because nothing can change after creation, and no
// individual delete — steeps only disappear when their brew cascades.
type Steep struct {
	ID              uuid.UUID `json:"id"`
	BrewID          uuid.UUID `json:"brewId"`
	SteepNumber     int       `json:"steepNumber"`
	DurationSeconds int       `json:"durationSeconds"`
	Rating          *int      `json:"rating"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewSteep builds a steep with its system-assigned number: one past
// the brew's current steep count, so numbers start at 1 and stay
// gapless.
func NewSteep(brewID uuid.UUID, number int, req *CreateSteepReq) Steep {
	return Steep{
		ID:              uuid.New(),
		BrewID:          brewID,
		SteepNumber:     number,
		DurationSeconds: req.DurationSeconds,
		Rating:          req.Rating,
		Notes:           req.Notes,
		CreatedAt:       time.Now().UTC(),
	}
}
