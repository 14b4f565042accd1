package queries_test

import (
	"testing"
	"time"

	"lifecycle/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOverdueParcelsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOverdueParcelsQuery(time.Now())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOverdueParcelsQuery_ZeroTime(t *testing.T) {
	_, err := queries.NewGetOverdueParcelsQuery(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrAsOfIsRequired)
}

func TestGetOverdueParcelsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOverdueParcelsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOverdueParcelsQueryIsNotConstructed)
}

func TestNewGetOverdueShipmentsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOverdueShipmentsQuery(time.Now())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetOverdueShipmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOverdueShipmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOverdueShipmentsQueryIsNotConstructed)
}
