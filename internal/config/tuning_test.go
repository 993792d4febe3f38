package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())
}

func TestLoadTuningOverridesFromYAML(t *testing.T) {
	t.Setenv("SHMUP_CONFIG", "")
	t.Setenv("SHMUP_SEED", "")
	t.Setenv("SHMUP_STORE", "")
	t.Setenv("SHMUP_REDIS_ADDR", "")

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := `
seed: 99
spawn:
  initial_interval: 0.5
  max_difficulty_scale: 4
weapon:
  volley: 3
store:
  backend: memory
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	tuning, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), tuning.Seed)
	assert.Equal(t, 0.5, tuning.Spawn.InitialInterval)
	assert.Equal(t, 4.0, tuning.Spawn.MaxDifficultyScale)
	assert.Equal(t, 3, tuning.Weapon.Volley)
	assert.Equal(t, "memory", tuning.Store.Backend)

	// Незаданные поля остаются по умолчанию
	assert.Equal(t, DefaultTuning().Spawn.GrowthFactor, tuning.Spawn.GrowthFactor)
	assert.Equal(t, DefaultTuning().Enemy, tuning.Enemy)
}

func TestLoadTuningEnvOverrides(t *testing.T) {
	t.Setenv("SHMUP_CONFIG", "")
	t.Setenv("SHMUP_SEED", "12")
	t.Setenv("SHMUP_STORE", "redis")
	t.Setenv("SHMUP_REDIS_ADDR", "cache:6380")

	tuning, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, int64(12), tuning.Seed)
	assert.Equal(t, "redis", tuning.Store.Backend)
	assert.Equal(t, "cache:6380", tuning.Store.RedisAddr)
}

func TestLoadTuningErrors(t *testing.T) {
	t.Setenv("SHMUP_CONFIG", "")
	t.Setenv("SHMUP_STORE", "")
	t.Setenv("SHMUP_REDIS_ADDR", "")

	t.Setenv("SHMUP_SEED", "abc")
	_, err := LoadTuning("")
	assert.ErrorContains(t, err, "SHMUP_SEED")
	t.Setenv("SHMUP_SEED", "")

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spawn:\n  ramp_factor: 0.5\n"), 0o644))
	_, err = LoadTuning(path)
	assert.ErrorContains(t, err, "ramp_factor")
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Tuning){
		"initial interval": func(t *Tuning) { t.Spawn.InitialInterval = 0 },
		"growth below one": func(t *Tuning) { t.Spawn.GrowthFactor = 0.9 },
		"scale cap":        func(t *Tuning) { t.Spawn.MaxDifficultyScale = 0.5 },
		"negative min":     func(t *Tuning) { t.Spawn.MinSpawnInterval = -1 },
		"pierce":           func(t *Tuning) { t.Weapon.Pierce = 0 },
		"pickup value":     func(t *Tuning) { t.Pickup.Value = 0 },
		"player health":    func(t *Tuning) { t.Player.MaxHealth = 0 },
		"backend":          func(t *Tuning) { t.Store.Backend = "sqlite" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			tuning := DefaultTuning()
			mutate(&tuning)
			assert.Error(t, tuning.Validate())
		})
	}
}
