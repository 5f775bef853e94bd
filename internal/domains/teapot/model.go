package teapot

import (
	"time"

	"github.com/google/uuid"
)

// Materials and styles a teapot can be created with.
var (
	Materials = []string{"ceramic", "cast-iron", "glass", "porcelain", "clay", "stainless-steel"}
	Styles    = []string{"kyusu", "gaiwan", "english", "moroccan", "turkish", "yixing"}
)

const DefaultStyle = "english"

// Teapot is one of the four fixture resources. ID and CreatedAt never
// change after creation.
type Teapot struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Material    string    `json:"material"`
	CapacityMl  int       `json:"capacityMl"`
	Style       string    `json:"style"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTeapot builds a teapot from a validated create request, filling
// defaults and stamping both timestamps with the same instant.
func NewTeapot(req *CreateTeapotReq) Teapot {
	now := time.Now().UTC()

	style := req.Style
	if style == "" {
		style = DefaultStyle
	}

	return Teapot{
		ID:          uuid.New(),
		Name:        req.Name,
		Material:    req.Material,
		CapacityMl:  req.CapacityMl,
		Style:       style,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Replace overwrites every mutable field. ID and CreatedAt stay.
func (t *Teapot) Replace(req *ReplaceTeapotReq) {
	t.Name = req.Name
	t.Material = req.Material
	t.CapacityMl = req.CapacityMl
	t.Style = req.Style
	t.Description = req.Description
	t.UpdatedAt = time.Now().UTC()
}

// ApplyPatch overwrites only the fields present in the request.
// UpdatedAt refreshes even when nothing actually changed.
func (t *Teapot) ApplyPatch(req *PatchTeapotReq) {
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Material != nil {
		t.Material = *req.Material
	}
	if req.CapacityMl != nil {
		t.CapacityMl = *req.CapacityMl
	}
	if req.Style != nil {
		t.Style = *req.Style
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	t.UpdatedAt = time.Now().UTC()
}
