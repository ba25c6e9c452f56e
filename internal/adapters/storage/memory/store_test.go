package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-health-log/internal/domain/pets"
	"pet-health-log/internal/ports/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLog struct {
	ID     store.ID `json:"id"`
	PetID  store.ID `json:"pet_id"`
	Weight float64  `json:"weight"`
}

func TestStore_FetchMany_FiltersAndKeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	for _, r := range []map[string]any{
		{"id": "c", "pet_id": "1", "weight": 3},
		{"id": "x", "pet_id": "2", "weight": 9},
		{"id": "a", "pet_id": "1", "weight": 1.5},
	} {
		_, err := s.Insert(store.CollectionWeightLogs, r)
		require.NoError(t, err)
	}

	var out []testLog
	err := s.FetchMany(context.Background(), store.CollectionWeightLogs, store.Eq(store.FieldPetID, "1"), &out)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "c", out[0].ID.String())
	assert.Equal(t, "a", out[1].ID.String())
	assert.Equal(t, 1.5, out[1].Weight)
}

func TestStore_FetchMany_NoRowsIsEmptyNotError(t *testing.T) {
	s := NewStore()
	out := []testLog{}
	err := s.FetchMany(context.Background(), store.CollectionVetVisitLogs, store.Eq(store.FieldPetID, "nope"), &out)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestStore_FetchOne_NotFound(t *testing.T) {
	s := NewStore()
	var out testLog
	err := s.FetchOne(context.Background(), store.CollectionPets, store.Eq(store.FieldID, "1"), &out)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_FetchOne_NumericIDMatchesString(t *testing.T) {
	s := NewStore()
	_, err := s.Insert(store.CollectionPets, map[string]any{"id": 7, "name": "Milo"})
	require.NoError(t, err)

	var out struct {
		ID   store.ID `json:"id"`
		Name string   `json:"name"`
	}
	require.NoError(t, s.FetchOne(context.Background(), store.CollectionPets, store.Eq(store.FieldID, "7"), &out))
	assert.Equal(t, "7", out.ID.String())
	assert.Equal(t, "Milo", out.Name)
}

func TestStore_Insert_GeneratesID(t *testing.T) {
	s := NewStore()
	id, err := s.Insert(store.CollectionWeightLogs, map[string]any{"pet_id": "1"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestStore_Fail_ReturnsTransportError(t *testing.T) {
	s := NewStore()
	s.Fail(store.CollectionWeightLogs, errors.New("connection reset"))

	var out []testLog
	err := s.FetchMany(context.Background(), store.CollectionWeightLogs, store.Filter{}, &out)
	require.Error(t, err)
	assert.True(t, store.IsTransport(err))

	s.Fail(store.CollectionWeightLogs, nil)
	assert.NoError(t, s.FetchMany(context.Background(), store.CollectionWeightLogs, store.Filter{}, &out))
}

func TestStore_RejectsUnknownCollectionAndField(t *testing.T) {
	s := NewStore()
	var out []testLog
	assert.ErrorIs(t, s.FetchMany(context.Background(), "owners", store.Filter{}, &out), store.ErrUnknownCollection)
	assert.ErrorIs(t, s.FetchMany(context.Background(), store.CollectionPets, store.Eq("name", "Milo"), &out), store.ErrUnknownField)
}

func TestStore_SeedDemo(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SeedDemo(time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)))

	var all []pets.Pet
	require.NoError(t, s.FetchMany(context.Background(), store.CollectionPets, store.Filter{}, &all))
	require.Len(t, all, 3)
	assert.Equal(t, pets.SpeciesDog, all[0].Species)
	assert.Equal(t, pets.SpeciesCat, all[1].Species)
}
