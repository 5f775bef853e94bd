package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateMath(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, meta := Paginate(items, 1, 3)
	assert.Equal(t, []int{1, 2, 3}, page)
	assert.Equal(t, Meta{Page: 1, Limit: 3, Total: 7, TotalPages: 3}, meta)

	page, meta = Paginate(items, 3, 3)
	assert.Equal(t, []int{7}, page)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestPaginatePastEnd(t *testing.T) {
	items := []int{1, 2, 3}

	page, meta := Paginate(items, 5, 10)
	assert.Empty(t, page)
	assert.NotNil(t, page)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestPaginateEmpty(t *testing.T) {
	page, meta := Paginate([]string{}, 1, 10)
	assert.Empty(t, page)
	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, 0, meta.TotalPages)
}

func TestQueryDefaults(t *testing.T) {
	q := Query{}
	require.NoError(t, q.Validate())
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
}

func TestQueryRejectsOutOfRange(t *testing.T) {
	q := Query{Page: -1}
	assert.Error(t, q.Validate())

	q = Query{Limit: 101}
	assert.Error(t, q.Validate())
}
