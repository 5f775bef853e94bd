package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teahouse-backend/internal/domains/brew"
	brewRepo "teahouse-backend/internal/domains/brew/repository"
	"teahouse-backend/internal/domains/steep"
	steepRepo "teahouse-backend/internal/domains/steep/repository"
	"teahouse-backend/internal/domains/tea"
	teaRepo "teahouse-backend/internal/domains/tea/repository"
	"teahouse-backend/internal/domains/teapot"
	teapotRepo "teahouse-backend/internal/domains/teapot/repository"
	"teahouse-backend/internal/shared/pagination"
)

type fixture struct {
	svc     brew.BrewService
	teapots teapot.TeapotRepository
	teas    tea.TeaRepository
	steeps  steep.SteepRepository

	teapotID uuid.UUID
	teaID    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		teapots: teapotRepo.NewMemoryTeapotRepository(),
		teas:    teaRepo.NewMemoryTeaRepository(),
		steeps:  steepRepo.NewMemorySteepRepository(),
	}

	tp := teapot.NewTeapot(&teapot.CreateTeapotReq{
		Name:       "Fixture Pot",
		Material:   "clay",
		CapacityMl: 350,
	})
	require.NoError(t, f.teapots.Insert(ctx, tp))
	f.teapotID = tp.ID

	te := tea.NewTea(&tea.CreateTeaReq{
		Name:             "Sencha",
		Type:             "green",
		SteepTempCelsius: 75,
		SteepTimeSeconds: 120,
	})
	require.NoError(t, f.teas.Insert(ctx, te))
	f.teaID = te.ID

	repo := brewRepo.NewMemoryBrewRepository()
	f.svc = NewBrewService(repo, f.teapots, f.teas, f.steeps, &sync.Mutex{})
	return f
}

func (f *fixture) create(t *testing.T, req *brew.CreateBrewReq) *brew.Brew {
	t.Helper()
	if req == nil {
		req = &brew.CreateBrewReq{
			TeapotID: f.teapotID.String(),
			TeaID:    f.teaID.String(),
		}
	}
	b, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	return b
}

func TestCreateDefaultsWaterTempFromTea(t *testing.T) {
	f := newFixture(t)

	b := f.create(t, nil)
	assert.Equal(t, 75, b.WaterTempCelsius)
	assert.Equal(t, brew.StatusPreparing, b.Status)
	assert.True(t, b.StartedAt.Equal(b.CreatedAt))
	assert.Nil(t, b.CompletedAt)
}

func TestCreateKeepsExplicitWaterTemp(t *testing.T) {
	f := newFixture(t)

	temp := 90
	b := f.create(t, &brew.CreateBrewReq{
		TeapotID:         f.teapotID.String(),
		TeaID:            f.teaID.String(),
		WaterTempCelsius: &temp,
	})
	assert.Equal(t, 90, b.WaterTempCelsius)
}

// Missing references at creation are validation failures, not 404s.
func TestCreateMissingReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, &brew.CreateBrewReq{
		TeapotID: uuid.New().String(),
		TeaID:    f.teaID.String(),
	})
	assert.ErrorIs(t, err, brew.ErrTeapotNotFound)

	_, err = f.svc.Create(ctx, &brew.CreateBrewReq{
		TeapotID: f.teapotID.String(),
		TeaID:    uuid.New().String(),
	})
	assert.ErrorIs(t, err, brew.ErrTeaNotFound)
}

func TestGetByIDExpandsReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.create(t, nil)

	detail, err := f.svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Teapot)
	require.NotNil(t, detail.Tea)
	assert.Equal(t, f.teapotID, detail.Teapot.ID)
	assert.Equal(t, "Sencha", detail.Tea.Name)
}

// Deleting a referenced entity afterwards is tolerated: the expansion
// just falls back to the bare brew.
func TestGetByIDWithoutExpansionAfterReferenceDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.create(t, nil)

	_, err := f.teapots.Delete(ctx, f.teapotID)
	require.NoError(t, err)

	detail, err := f.svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.Teapot)
	assert.NotNil(t, detail.Tea)
	assert.Equal(t, b.ID, detail.ID)
}

func TestPatchStatusAndCompletedAt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.create(t, nil)

	status := "ready"
	patched, err := f.svc.Patch(ctx, b.ID, &brew.PatchBrewReq{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "ready", patched.Status)
	assert.Equal(t, b.WaterTempCelsius, patched.WaterTempCelsius)

	// No transition checking: any status from any status.
	status = "preparing"
	patched, err = f.svc.Patch(ctx, b.ID, &brew.PatchBrewReq{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "preparing", patched.Status)
}

func TestDeleteCascadesSteeps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.create(t, nil)
	for i := 0; i < 3; i++ {
		s := steep.NewSteep(b.ID, i+1, &steep.CreateSteepReq{DurationSeconds: 30})
		require.NoError(t, f.steeps.Insert(ctx, s))
	}

	other := f.create(t, nil)
	s := steep.NewSteep(other.ID, 1, &steep.CreateSteepReq{DurationSeconds: 30})
	require.NoError(t, f.steeps.Insert(ctx, s))

	require.NoError(t, f.svc.Delete(ctx, b.ID))

	_, err := f.svc.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, brew.ErrBrewNotFound)

	gone, err := f.steeps.GetAllByBrew(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := f.steeps.GetAllByBrew(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestListByTeapot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.create(t, nil)
	f.create(t, nil)

	query := &pagination.Query{}
	require.NoError(t, query.Validate())

	items, meta, err := f.svc.ListByTeapot(ctx, f.teapotID, query)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, meta.Total)

	_, _, err = f.svc.ListByTeapot(ctx, uuid.New(), query)
	assert.ErrorIs(t, err, brew.ErrTeapotNotFound)
}

func TestListFiltersByStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.create(t, nil)
	b := f.create(t, nil)

	status := "cold"
	_, err := f.svc.Patch(ctx, b.ID, &brew.PatchBrewReq{Status: &status})
	require.NoError(t, err)

	query := &brew.ListBrewsQuery{Status: "cold"}
	require.NoError(t, query.Validate())

	items, meta, err := f.svc.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)
	assert.Equal(t, 1, meta.Total)
}
