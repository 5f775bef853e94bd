package brew

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"teahouse-backend/internal/shared/pagination"
	"teahouse-backend/internal/shared/validate"
)

// CreateBrewReq is the body of POST /brews. waterTempCelsius defaults
// to the referenced tea's steepTempCelsius when absent.
type CreateBrewReq struct {
	TeapotID         string  `json:"teapotId"`
	TeaID            string  `json:"teaId"`
	WaterTempCelsius *int    `json:"waterTempCelsius"`
	Notes            *string `json:"notes"`
}

func (r *CreateBrewReq) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TeapotID, validation.Required, is.UUID),
		validation.Field(&r.TeaID, validation.Required, is.UUID),
		validation.Field(&r.WaterTempCelsius, validation.NilOrNotEmpty, validation.Min(60), validation.Max(100)),
		validation.Field(&r.Notes, validation.Length(0, 500)),
	)
}

// PatchBrewReq is the body of PATCH /brews/:id. Only status, notes and
// completedAt are patchable; there is no full-replace for brews.
type PatchBrewReq struct {
	Status      *string    `json:"status"`
	Notes       *string    `json:"notes"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (r *PatchBrewReq) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status, validation.NilOrNotEmpty, validate.In(Statuses)),
		validation.Field(&r.Notes, validation.Length(0, 500)),
	)
}

// ListBrewsQuery are the query parameters of GET /brews.
type ListBrewsQuery struct {
	pagination.Query
	Status   string `form:"status" json:"status"`
	TeapotID string `form:"teapotId" json:"teapotId"`
	TeaID    string `form:"teaId" json:"teaId"`
}

func (q *ListBrewsQuery) Validate() error {
	q.SetDefaults()
	rules := append(q.Query.Fields(),
		validation.Field(&q.Status, validate.In(Statuses)),
		validation.Field(&q.TeapotID, is.UUID),
		validation.Field(&q.TeaID, is.UUID),
	)
	return validation.ValidateStruct(q, rules...)
}
