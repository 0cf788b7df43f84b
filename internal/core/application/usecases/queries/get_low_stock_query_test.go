package queries_test

import (
	"testing"

	"litstock/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLowStockQuery_Valid(t *testing.T) {
	query, err := queries.NewGetLowStockQuery(10)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 10, query.Threshold())
}

func TestNewGetLowStockQuery_NonPositiveThreshold(t *testing.T) {
	for _, threshold := range []int{0, -3} {
		_, err := queries.NewGetLowStockQuery(threshold)
		require.Error(t, err)
	}
}

func TestGetLowStockQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetLowStockQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetLowStockQueryIsNotConstructed)
}
