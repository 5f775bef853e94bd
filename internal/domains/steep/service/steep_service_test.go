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
	"teahouse-backend/internal/shared/pagination"
)

func newFixture(t *testing.T) (steep.SteepService, uuid.UUID) {
	t.Helper()

	brews := brewRepo.NewMemoryBrewRepository()
	b := brew.NewBrew(uuid.New(), uuid.New(), 90, nil)
	require.NoError(t, brews.Insert(context.Background(), b))

	svc := NewSteepService(steepRepo.NewMemorySteepRepository(), brews, &sync.Mutex{})
	return svc, b.ID
}

// The k-th steep created for a brew carries steepNumber k.
func TestCreateNumbersSequentially(t *testing.T) {
	svc, brewID := newFixture(t)
	ctx := context.Background()

	for k := 1; k <= 5; k++ {
		s, err := svc.Create(ctx, brewID, &steep.CreateSteepReq{DurationSeconds: 30 * k})
		require.NoError(t, err)
		assert.Equal(t, k, s.SteepNumber)
		assert.Equal(t, brewID, s.BrewID)
	}
}

func TestCreateUnknownBrewIsNotFound(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.Create(context.Background(), uuid.New(), &steep.CreateSteepReq{DurationSeconds: 30})
	assert.ErrorIs(t, err, steep.ErrBrewNotFound)
}

func TestListByBrewSortedAndPaginated(t *testing.T) {
	svc, brewID := newFixture(t)
	ctx := context.Background()

	for k := 1; k <= 7; k++ {
		_, err := svc.Create(ctx, brewID, &steep.CreateSteepReq{DurationSeconds: 30})
		require.NoError(t, err)
	}

	query := &pagination.Query{Page: 2, Limit: 3}
	require.NoError(t, query.Validate())

	items, meta, err := svc.ListByBrew(ctx, brewID, query)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int{4, 5, 6}, []int{items[0].SteepNumber, items[1].SteepNumber, items[2].SteepNumber})
	assert.Equal(t, 7, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestListByBrewUnknownBrew(t *testing.T) {
	svc, _ := newFixture(t)

	query := &pagination.Query{}
	require.NoError(t, query.Validate())

	_, _, err := svc.ListByBrew(context.Background(), uuid.New(), query)
	assert.ErrorIs(t, err, steep.ErrBrewNotFound)
}

func TestCreateValidation(t *testing.T) {
	req := steep.CreateSteepReq{DurationSeconds: 0}
	assert.Error(t, req.Validate())

	rating := 6
	req = steep.CreateSteepReq{DurationSeconds: 30, Rating: &rating}
	assert.Error(t, req.Validate())

	rating = 5
	req = steep.CreateSteepReq{DurationSeconds: 30, Rating: &rating}
	assert.NoError(t, req.Validate())
}
