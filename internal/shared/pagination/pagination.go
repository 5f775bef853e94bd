package pagination

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Meta is the pagination metadata block returned by every list
// endpoint.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query carries the page/limit parameters shared by the nested list
// endpoints; resource-level lists embed the same fields alongside
// their filters.
type Query struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// SetDefaults fills absent values. Absent means the zero value: gin's
// query binding has already coerced the strings.
func (q *Query) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
}

// Fields returns the validation rules for the embedded page/limit
// pair, so a resource query can report them in the same pass as its
// filter fields.
func (q *Query) Fields() []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&q.Page, validation.Min(1)),
		validation.Field(&q.Limit, validation.Min(1), validation.Max(MaxLimit)),
	}
}

// Validate is used by the nested list endpoints, which take no
// filters.
func (q *Query) Validate() error {
	q.SetDefaults()
	return validation.ValidateStruct(q, q.Fields()...)
}

// Paginate slices items for the requested page. A page past the end
// yields an empty slice, never an error. Ordering is the caller's
// concern; items are sliced as given.
func Paginate[T any](items []T, page, limit int) ([]T, Meta) {
	total := len(items)
	totalPages := (total + limit - 1) / limit

	meta := Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	start := (page - 1) * limit
	if start >= total {
		return []T{}, meta
	}

	end := start + limit
	if end > total {
		end = total
	}

	return items[start:end], meta
}
