package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"pet-health-log/internal/config"
	"pet-health-log/internal/domain/pets"
	"pet-health-log/internal/ports/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore_MemorySeeded(t *testing.T) {
	cfg := &config.Config{StoreBackend: config.BackendMemory, SeedDemo: true}

	st, closer, err := OpenStore(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer closer.Close()

	var all []pets.Pet
	require.NoError(t, st.FetchMany(context.Background(), store.CollectionPets, store.Filter{}, &all))
	assert.Len(t, all, 3)
}

func TestOpenStore_MemoryEmpty(t *testing.T) {
	cfg := &config.Config{StoreBackend: config.BackendMemory}

	st, _, err := OpenStore(context.Background(), cfg, nil)
	require.NoError(t, err)

	var all []pets.Pet
	require.NoError(t, st.FetchMany(context.Background(), store.CollectionPets, store.Filter{}, &all))
	assert.Empty(t, all)
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := &config.Config{
		StoreBackend: config.BackendSQLite,
		SQLiteDBPath: filepath.Join(t.TempDir(), "pets.db"),
		SeedDemo:     true,
	}

	st, closer, err := OpenStore(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer closer.Close()

	var p pets.Pet
	require.NoError(t, st.FetchOne(context.Background(), store.CollectionPets, store.Eq(store.FieldID, "1"), &p))
	assert.Equal(t, "Milo", p.Name)
}

func TestOpenStore_REST(t *testing.T) {
	cfg := &config.Config{StoreBackend: config.BackendREST, StoreURL: "http://localhost:54321", StoreTimeout: time.Second}

	st, _, err := OpenStore(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, st)
}

func TestOpenStore_Unknown(t *testing.T) {
	_, _, err := OpenStore(context.Background(), &config.Config{StoreBackend: "sheets"}, nil)
	assert.Error(t, err)
}
