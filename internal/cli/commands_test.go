package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"pet-health-log/internal/config"
	"pet-health-log/internal/domain/profiles"
	"pet-health-log/internal/domain/tabs"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	cmd := New(Deps{
		Out:    &out,
		Config: func() *config.Config { return cfg },
	})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func sqliteConfig(t *testing.T, seed bool) *config.Config {
	return &config.Config{
		Port:         "8080",
		StoreBackend: config.BackendSQLite,
		SQLiteDBPath: filepath.Join(t.TempDir(), "pets.db"),
		StoreTimeout: 10 * time.Second,
		SeedDemo:     seed,
	}
}

func TestPets_Table(t *testing.T) {
	out, err := run(t, sqliteConfig(t, true), "pets")
	require.NoError(t, err)
	assert.Contains(t, out, "Pets")
	assert.Contains(t, out, "Milo")
	assert.Contains(t, out, "Age: 4 years")
	assert.Contains(t, out, "Luna")
}

func TestPets_Empty(t *testing.T) {
	out, err := run(t, sqliteConfig(t, false), "pets")
	require.NoError(t, err)
	assert.Contains(t, out, "There are no pets, available")
}

func TestPets_JSON(t *testing.T) {
	out, err := run(t, sqliteConfig(t, true), "pets", "--json")
	require.NoError(t, err)

	var v struct {
		Pets []struct {
			Name string `json:"name"`
		} `json:"pets"`
		Empty bool `json:"empty"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.False(t, v.Empty)
	assert.Len(t, v.Pets, 3)
}

func TestProfile_DefaultTab(t *testing.T) {
	out, err := run(t, sqliteConfig(t, true), "profile", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Milo")
	assert.Contains(t, out, "Species: dog")
	assert.Contains(t, out, "Health: Good")
	assert.Contains(t, out, "[Weight Logs]")
	assert.Contains(t, out, "Weight: 18.9Kg")
	assert.Contains(t, out, "Date: 6/15/2024")
	assert.NotContains(t, out, "+ Add new vet visit")
}

func TestProfile_VetVisitsTab(t *testing.T) {
	out, err := run(t, sqliteConfig(t, true), "profile", "1", "--tab", string(tabs.VetVisits))
	require.NoError(t, err)
	assert.Contains(t, out, "[Vet Visits]")
	assert.Contains(t, out, "Annual vaccines")
	assert.Contains(t, out, "+ Add new vet visit")
}

func TestProfile_EmptyTab(t *testing.T) {
	out, err := run(t, sqliteConfig(t, true), "profile", "3", "--tab", string(tabs.BodyCondition))
	require.NoError(t, err)
	assert.Contains(t, out, "There are no logs")
}

func TestProfile_NotFound(t *testing.T) {
	out, err := run(t, sqliteConfig(t, true), "profile", "404")
	assert.True(t, errors.Is(err, profiles.ErrProfileNotFound))
	assert.Contains(t, out, "Pet not found")
}

func TestProfile_UnknownTab(t *testing.T) {
	_, err := run(t, sqliteConfig(t, true), "profile", "1", "--tab", "Photos")
	assert.True(t, errors.Is(err, tabs.ErrUnknownTab))
}

func TestProfile_JSON(t *testing.T) {
	out, err := run(t, sqliteConfig(t, true), "profile", "2", "--json", "--tab", string(tabs.VetVisits))
	require.NoError(t, err)

	var v struct {
		Pet struct {
			Name string `json:"name"`
		} `json:"pet"`
		Projection struct {
			Tab         string `json:"tab"`
			CanAddVisit bool   `json:"can_add_visit"`
		} `json:"projection"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "Luna", v.Pet.Name)
	assert.Equal(t, string(tabs.VetVisits), v.Projection.Tab)
	assert.True(t, v.Projection.CanAddVisit)
}

func TestInvalidConfig(t *testing.T) {
	cfg := sqliteConfig(t, true)
	cfg.StoreBackend = "sheets"
	_, err := run(t, cfg, "pets")
	assert.Error(t, err)
}
