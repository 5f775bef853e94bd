package tea

import (
	"time"

	"github.com/google/uuid"
)

var (
	Types          = []string{"green", "black", "oolong", "white", "puerh", "herbal", "rooibos"}
	CaffeineLevels = []string{"none", "low", "medium", "high"}
)

const DefaultCaffeineLevel = "medium"

// Tea holds the brewing parameters the brew resource defaults from.
type Tea struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Origin           *string   `json:"origin,omitempty"`
	CaffeineLevel    string    `json:"caffeineLevel"`
	SteepTempCelsius int       `json:"steepTempCelsius"`
	SteepTimeSeconds int       `json:"steepTimeSeconds"`
	Description      *string   `json:"description"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func NewTea(req *CreateTeaReq) Tea {
	now := time.Now().UTC()

	caffeine := req.CaffeineLevel
	if caffeine == "" {
		caffeine = DefaultCaffeineLevel
	}

	return Tea{
		ID:               uuid.New(),
		Name:             req.Name,
		Type:             req.Type,
		Origin:           req.Origin,
		CaffeineLevel:    caffeine,
		SteepTempCelsius: req.SteepTempCelsius,
		SteepTimeSeconds: req.SteepTimeSeconds,
		Description:      req.Description,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (t *Tea) Replace(req *ReplaceTeaReq) {
	t.Name = req.Name
	t.Type = req.Type
	t.Origin = req.Origin
	t.CaffeineLevel = req.CaffeineLevel
	t.SteepTempCelsius = req.SteepTempCelsius
	t.SteepTimeSeconds = req.SteepTimeSeconds
	t.Description = req.Description
	t.UpdatedAt = time.Now().UTC()
}

func (t *Tea) ApplyPatch(req *PatchTeaReq) {
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Type != nil {
		t.Type = *req.Type
	}
	if req.Origin != nil {
		t.Origin = req.Origin
	}
	if req.CaffeineLevel != nil {
		t.CaffeineLevel = *req.CaffeineLevel
	}
	if req.SteepTempCelsius != nil {
		t.SteepTempCelsius = *req.SteepTempCelsius
	}
	if req.SteepTimeSeconds != nil {
		t.SteepTimeSeconds = *req.SteepTimeSeconds
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	t.UpdatedAt = time.Now().UTC()
}
