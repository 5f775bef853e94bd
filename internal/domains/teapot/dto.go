package teapot

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"teahouse-backend/internal/shared/pagination"
	"teahouse-backend/internal/shared/validate"
)

// CreateTeapotReq is the body of POST /teapots. Style defaults to
// "english" when absent; description stays null.
type CreateTeapotReq struct {
	Name        string  `json:"name"`
	Material    string  `json:"material"`
	CapacityMl  int     `json:"capacityMl"`
	Style       string  `json:"style"`
	Description *string `json:"description"`
}

func (r *CreateTeapotReq) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Material, validation.Required, validate.In(Materials)),
		validation.Field(&r.CapacityMl, validation.Required, validation.Min(1), validation.Max(5000)),
		validation.Field(&r.Style, validate.In(Styles)),
		validation.Field(&r.Description, validation.Length(0, 500)),
	)
}

// ReplaceTeapotReq is the body of PUT /teapots/:id — a full
// replacement, so every non-nullable field is required.
type ReplaceTeapotReq struct {
	Name        string  `json:"name"`
	Material    string  `json:"material"`
	CapacityMl  int     `json:"capacityMl"`
	Style       string  `json:"style"`
	Description *string `json:"description"`
}

func (r *ReplaceTeapotReq) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Material, validation.Required, validate.In(Materials)),
		validation.Field(&r.CapacityMl, validation.Required, validation.Min(1), validation.Max(5000)),
		validation.Field(&r.Style, validation.Required, validate.In(Styles)),
		validation.Field(&r.Description, validation.Length(0, 500)),
	)
}

// PatchTeapotReq is the body of PATCH /teapots/:id. Absent fields
// retain their prior values.
type PatchTeapotReq struct {
	Name        *string `json:"name"`
	Material    *string `json:"material"`
	CapacityMl  *int    `json:"capacityMl"`
	Style       *string `json:"style"`
	Description *string `json:"description"`
}

func (r *PatchTeapotReq) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Material, validation.NilOrNotEmpty, validate.In(Materials)),
		validation.Field(&r.CapacityMl, validation.NilOrNotEmpty, validation.Min(1), validation.Max(5000)),
		validation.Field(&r.Style, validation.NilOrNotEmpty, validate.In(Styles)),
		validation.Field(&r.Description, validation.Length(0, 500)),
	)
}

// ListTeapotsQuery are the query parameters of GET /teapots. Filters
// combine with logical AND.
type ListTeapotsQuery struct {
	pagination.Query
	Material string `form:"material" json:"material"`
	Style    string `form:"style" json:"style"`
}

func (q *ListTeapotsQuery) Validate() error {
	q.SetDefaults()
	rules := append(q.Query.Fields(),
		validation.Field(&q.Material, validate.In(Materials)),
		validation.Field(&q.Style, validate.In(Styles)),
	)
	return validation.ValidateStruct(q, rules...)
}
