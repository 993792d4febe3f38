package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tank-shmup/internal/event"
)

func TestDifficultyIsMonotonic(t *testing.T) {
	c, rec := newTestContext(t)
	s := NewSpawnSystem(c)

	prevScale, prevInterval := c.Difficulty.Scale, c.Difficulty.SpawnInterval
	for i := 0; i < 200; i++ {
		s.Update(0.25)
		assert.GreaterOrEqual(t, c.Difficulty.Scale, prevScale)
		assert.LessOrEqual(t, c.Difficulty.SpawnInterval, prevInterval)
		prevScale, prevInterval = c.Difficulty.Scale, c.Difficulty.SpawnInterval
	}
	assert.Equal(t, 50, c.Difficulty.Ramps)
	assert.Equal(t, 50, rec.Count(event.DifficultyRamped))
	assert.Greater(t, c.Difficulty.Scale, 1.0)
}

func TestDifficultyCaps(t *testing.T) {
	c, _ := newTestContext(t)
	c.Tuning.Spawn.GrowthFactor = 2
	c.Tuning.Spawn.RampFactor = 2
	c.Tuning.Spawn.MaxDifficultyScale = 4
	c.Tuning.Spawn.MinSpawnInterval = 0.2
	s := NewSpawnSystem(c)

	for i := 0; i < 10; i++ {
		s.Update(1.0)
	}
	assert.Equal(t, 4.0, c.Difficulty.Scale)
	assert.Equal(t, 0.2, c.Difficulty.SpawnInterval)
}

func TestSpawnCadenceAndScaledStats(t *testing.T) {
	c, rec := newTestContext(t)
	s := NewSpawnSystem(c)

	assert.Empty(t, s.Update(0.5))
	spawned := s.Update(0.5)
	require.Len(t, spawned, 1)
	assert.Equal(t, 1, rec.Count(event.EnemySpawned))
	last, _ := rec.Last(event.EnemySpawned)
	data, ok := last.Data.(event.EnemySpawnedData)
	require.True(t, ok, "payload is %T", last.Data)
	assert.Equal(t, spawned[0], data.EnemyID)
	pos, _ := c.ECS.Position(spawned[0])
	assert.Equal(t, pos.X, data.X)
	assert.Equal(t, pos.Y, data.Y)

	// Враг создан после одного шага масштабирования
	h, ok := c.ECS.Health(spawned[0])
	require.True(t, ok)
	assert.InDelta(t, c.Tuning.Enemy.BaseHealth*c.Difficulty.Scale, h.Max, 1e-9)
	e, _ := c.ECS.Enemy(spawned[0])
	assert.InDelta(t, c.Tuning.Enemy.BaseDamage*c.Difficulty.Scale, e.Damage, 1e-9)
}

func TestEnemiesSpawnOnEdges(t *testing.T) {
	c, _ := newTestContext(t)
	s := NewSpawnSystem(c)
	b := c.Bounds

	var ids []uint64
	for i := 0; i < 100; i++ {
		for _, id := range s.Update(0.5) {
			ids = append(ids, uint64(id))
			pos, ok := c.ECS.Position(id)
			require.True(t, ok)
			onEdge := pos.X == b.MinX || pos.X == b.MaxX || pos.Y == b.MinY || pos.Y == b.MaxY
			assert.True(t, onEdge, "enemy at %+v is not on an edge", *pos)
		}
	}
	assert.NotEmpty(t, ids)
}

func TestSpawnPauseStopsTimers(t *testing.T) {
	c, _ := newTestContext(t)
	s := NewSpawnSystem(c)
	s.Pause()
	assert.True(t, s.Paused())
	assert.Empty(t, s.Update(5))
	assert.Equal(t, 1.0, c.Difficulty.Scale)

	s.Resume()
	assert.NotEmpty(t, s.Update(1))
}
