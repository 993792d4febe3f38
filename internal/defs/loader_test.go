package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUpgradeDefinitionsDefault(t *testing.T) {
	got, err := LoadUpgradeDefinitions("")
	require.NoError(t, err)
	assert.Equal(t, DefaultUpgrades(), got)
}

func TestLoadUpgradeDefinitionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upgrades.json")
	body := `[
		{"id": "big", "title": "Big", "branch": "projectile", "group": "g", "cost": 3,
		 "effects": [{"stat": "damage", "op": "mul", "value": 2}]},
		{"id": "bigger", "title": "Bigger", "branch": "projectile", "group": "h", "cost": 7,
		 "requires": ["big"], "effects": [{"stat": "archetype", "op": "set", "archetype": "rocket"}]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	got, err := LoadUpgradeDefinitions(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "big", got[0].ID)
	assert.Equal(t, uint32(3), got[0].Cost)
	assert.Equal(t, []string{"big"}, got[1].Requires)
	assert.Equal(t, StatArchetype, got[1].Effects[0].Stat)
	assert.Equal(t, "rocket", got[1].Effects[0].Archetype)
}

func TestLoadUpgradeDefinitionsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadUpgradeDefinitions(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadUpgradeDefinitions(bad)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("[]"), 0o644))
	_, err = LoadUpgradeDefinitions(empty)
	assert.ErrorContains(t, err, "empty")
}

func TestDefaultUpgradesShape(t *testing.T) {
	ids := map[string]bool{}
	for _, u := range DefaultUpgrades() {
		assert.False(t, ids[u.ID], "duplicate %s", u.ID)
		ids[u.ID] = true
		assert.NotZero(t, u.Cost, u.ID)
		assert.NotEmpty(t, u.Effects, u.ID)
	}
	assert.Len(t, ids, 12)
}
