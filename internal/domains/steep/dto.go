package steep

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateSteepReq is the body of POST /brews/:id/steeps. steepNumber is
// never client-supplied; the system assigns it.
type CreateSteepReq struct {
	DurationSeconds int     `json:"durationSeconds"`
	Rating          *int    `json:"rating"`
	Notes           *string `json:"notes"`
}

func (r *CreateSteepReq) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.DurationSeconds, validation.Required, validation.Min(1)),
		validation.Field(&r.Rating, validation.NilOrNotEmpty, validation.Min(1), validation.Max(5)),
		validation.Field(&r.Notes, validation.Length(0, 200)),
	)
}
