package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/types"
)

func TestNewEntityIDsAreNeverReused(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity(KindEnemy)
	b := ecs.NewEntity(KindEnemy)
	assert.NotEqual(t, types.NoEntity, a)
	assert.Less(t, a, b)

	require.True(t, ecs.Destroy(a))
	c := ecs.NewEntity(KindEnemy)
	assert.Greater(t, c, b)
}

func TestDestroyRemovesAllComponents(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity(KindEnemy)
	require.True(t, ecs.SetPosition(id, &component.Position{X: 1}))
	require.True(t, ecs.SetHealth(id, component.NewHealth(10)))
	require.True(t, ecs.SetEnemy(id, &component.Enemy{}))

	assert.True(t, ecs.Destroy(id))
	assert.False(t, ecs.Destroy(id), "second destroy is a no-op")
	assert.False(t, ecs.Alive(id))

	_, ok := ecs.Position(id)
	assert.False(t, ok)
	_, ok = ecs.Health(id)
	assert.False(t, ok)
	_, ok = ecs.Enemy(id)
	assert.False(t, ok)
}

func TestAttachToDeadEntityIgnored(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity(KindBullet)
	ecs.Destroy(id)

	assert.False(t, ecs.SetPosition(id, &component.Position{}))
	assert.False(t, ecs.SetHealth(types.EntityID(999), component.NewHealth(1)))
	assert.Empty(t, ecs.Positions)
	assert.Empty(t, ecs.Healths)
}

func TestKindQueries(t *testing.T) {
	ecs := NewECS()
	_, ok := ecs.PlayerID()
	assert.False(t, ok)

	p := ecs.NewEntity(KindPlayer)
	e1 := ecs.NewEntity(KindEnemy)
	e2 := ecs.NewEntity(KindEnemy)
	ecs.NewEntity(KindBullet)

	id, ok := ecs.PlayerID()
	require.True(t, ok)
	assert.Equal(t, p, id)
	assert.Equal(t, []types.EntityID{e1, e2}, ecs.EntitiesOfKind(KindEnemy))
	assert.Equal(t, 2, ecs.Count(KindEnemy))
	assert.Len(t, ecs.AllEntities(), 4)

	kind, ok := ecs.Kind(e2)
	require.True(t, ok)
	assert.Equal(t, KindEnemy, kind)
	assert.Equal(t, "enemy", kind.String())

	assert.Equal(t, 3, ecs.DestroyKinds(KindEnemy, KindBullet))
	assert.Equal(t, 1, len(ecs.AllEntities()))
}
