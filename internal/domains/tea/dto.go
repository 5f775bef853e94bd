package tea

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"teahouse-backend/internal/shared/pagination"
	"teahouse-backend/internal/shared/validate"
)

// CreateTeaReq is the body of POST /teas. CaffeineLevel defaults to
// "medium" when absent.
type CreateTeaReq struct {
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Origin           *string `json:"origin"`
	CaffeineLevel    string  `json:"caffeineLevel"`
	SteepTempCelsius int     `json:"steepTempCelsius"`
	SteepTimeSeconds int     `json:"steepTimeSeconds"`
	Description      *string `json:"description"`
}

func (r *CreateTeaReq) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Type, validation.Required, validate.In(Types)),
		validation.Field(&r.Origin, validation.Length(0, 100)),
		validation.Field(&r.CaffeineLevel, validate.In(CaffeineLevels)),
		validation.Field(&r.SteepTempCelsius, validation.Required, validation.Min(60), validation.Max(100)),
		validation.Field(&r.SteepTimeSeconds, validation.Required, validation.Min(1), validation.Max(600)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
	)
}

// ReplaceTeaReq is the body of PUT /teas/:id.
type ReplaceTeaReq struct {
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Origin           *string `json:"origin"`
	CaffeineLevel    string  `json:"caffeineLevel"`
	SteepTempCelsius int     `json:"steepTempCelsius"`
	SteepTimeSeconds int     `json:"steepTimeSeconds"`
	Description      *string `json:"description"`
}

func (r *ReplaceTeaReq) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Type, validation.Required, validate.In(Types)),
		validation.Field(&r.Origin, validation.Length(0, 100)),
		validation.Field(&r.CaffeineLevel, validation.Required, validate.In(CaffeineLevels)),
		validation.Field(&r.SteepTempCelsius, validation.Required, validation.Min(60), validation.Max(100)),
		validation.Field(&r.SteepTimeSeconds, validation.Required, validation.Min(1), validation.Max(600)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
	)
}

// PatchTeaReq is the body of PATCH /teas/:id.
type PatchTeaReq struct {
	Name             *string `json:"name"`
	Type             *string `json:"type"`
	Origin           *string `json:"origin"`
	CaffeineLevel    *string `json:"caffeineLevel"`
	SteepTempCelsius *int    `json:"steepTempCelsius"`
	SteepTimeSeconds *int    `json:"steepTimeSeconds"`
	Description      *string `json:"description"`
}

func (r *PatchTeaReq) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Type, validation.NilOrNotEmpty, validate.In(Types)),
		validation.Field(&r.Origin, validation.Length(0, 100)),
		validation.Field(&r.CaffeineLevel, validation.NilOrNotEmpty, validate.In(CaffeineLevels)),
		validation.Field(&r.SteepTempCelsius, validation.NilOrNotEmpty, validation.Min(60), validation.Max(100)),
		validation.Field(&r.SteepTimeSeconds, validation.NilOrNotEmpty, validation.Min(1), validation.Max(600)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
	)
}

// ListTeasQuery are the query parameters of GET /teas.
type ListTeasQuery struct {
	pagination.Query
	Type          string `form:"type" json:"type"`
	CaffeineLevel string `form:"caffeineLevel" json:"caffeineLevel"`
}

func (q *ListTeasQuery) Validate() error {
	q.SetDefaults()
	rules := append(q.Query.Fields(),
		validation.Field(&q.Type, validate.In(Types)),
		validation.Field(&q.CaffeineLevel, validate.In(CaffeineLevels)),
	)
	return validation.ValidateStruct(q, rules...)
}
