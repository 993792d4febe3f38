package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tank-shmup/internal/entity"
	"go-tank-shmup/internal/event"
	vec "go-tank-shmup/pkg/utils"
)

func TestLethalHitDestroysEnemyAndDropsCurrency(t *testing.T) {
	c, rec := newTestContext(t)
	SpawnPlayer(c)
	enemy := enemyWithHealth(c, vec.V(200, 0), 40, 100)
	bullet := bulletWith(c, vec.V(200, 0), 50, 1)

	resolver := NewCollisionSystem(c)
	deaths := NewDeathSystem(c)

	deferred := resolver.Resolve([]CollisionPair{{A: enemy, B: bullet}})
	assert.Empty(t, deferred)
	assert.False(t, c.ECS.Alive(bullet), "bullet must be destroyed when pierce reaches 0")

	killed := deaths.Sweep()
	assert.Equal(t, 1, killed)
	assert.False(t, c.ECS.Alive(enemy))
	assert.Equal(t, 1, c.ECS.Count(entity.KindCurrencyPickup))
	assert.Equal(t, 1, rec.Count(event.EnemyKilled))

	// Монета летит к игроку в центре
	pickup := c.ECS.EntitiesOfKind(entity.KindCurrencyPickup)[0]
	m, ok := c.ECS.Motion(pickup)
	require.True(t, ok)
	assert.Less(t, m.Velocity.X, 0.0)
	assert.InDelta(t, c.Tuning.Pickup.LaunchSpeed, m.Velocity.Len(), 1e-9)
}

func TestPierceThreeAcrossSuccessiveTicks(t *testing.T) {
	c, _ := newTestContext(t)
	SpawnPlayer(c)
	bullet := bulletWith(c, vec.V(0, 0), 50, 3)
	resolver := NewCollisionSystem(c)
	deaths := NewDeathSystem(c)

	for i := 0; i < 3; i++ {
		e := enemyWithHealth(c, vec.V(float64(100+i*50), 0), 10, 10)

		b, ok := c.ECS.Bullet(bullet)
		require.True(t, ok, "bullet must survive until its third hit")
		assert.Equal(t, 3-i, b.Stats.Pierce)

		resolver.Resolve([]CollisionPair{{A: bullet, B: e}})
		deaths.Sweep()
		assert.False(t, c.ECS.Alive(e))
	}
	assert.False(t, c.ECS.Alive(bullet))
	assert.Equal(t, 0, c.ECS.Count(entity.KindEnemy))
	assert.Equal(t, 3, c.ECS.Count(entity.KindCurrencyPickup))
}

func TestSameTickPairsAreDeferredPerParticipant(t *testing.T) {
	c, _ := newTestContext(t)
	bullet := bulletWith(c, vec.V(0, 0), 50, 3)
	e1 := enemyWithHealth(c, vec.V(10, 0), 10, 10)
	e2 := enemyWithHealth(c, vec.V(12, 0), 10, 10)
	e3 := enemyWithHealth(c, vec.V(14, 0), 10, 10)
	resolver := NewCollisionSystem(c)

	batch := []CollisionPair{{A: bullet, B: e1}, {A: e2, B: bullet}, {A: bullet, B: e3}}
	deferred := resolver.Resolve(batch)
	assert.Len(t, deferred, 2)

	h1, _ := c.ECS.Health(e1)
	h2, _ := c.ECS.Health(e2)
	assert.LessOrEqual(t, h1.Current, 0.0)
	assert.Equal(t, 10.0, h2.Current, "one entity is resolved by at most one pair per tick")

	deferred = resolver.Resolve(deferred)
	assert.Len(t, deferred, 1)
	deferred = resolver.Resolve(deferred)
	assert.Empty(t, deferred)
	assert.False(t, c.ECS.Alive(bullet))
}

func TestBulletNeverHitsSameEnemyTwice(t *testing.T) {
	c, _ := newTestContext(t)
	bullet := bulletWith(c, vec.V(0, 0), 5, 3)
	enemy := enemyWithHealth(c, vec.V(0, 0), 100, 100)
	resolver := NewCollisionSystem(c)

	for i := 0; i < 3; i++ {
		resolver.Resolve([]CollisionPair{{A: bullet, B: enemy}})
	}

	h, _ := c.ECS.Health(enemy)
	assert.Equal(t, 95.0, h.Current)
	b, ok := c.ECS.Bullet(bullet)
	require.True(t, ok)
	assert.Equal(t, 2, b.Stats.Pierce)
	assert.Equal(t, 1, b.Ledger.Len())
}

func TestStalePairsAreDropped(t *testing.T) {
	c, _ := newTestContext(t)
	bullet := bulletWith(c, vec.V(0, 0), 50, 1)
	enemy := enemyWithHealth(c, vec.V(0, 0), 100, 100)
	c.ECS.Destroy(enemy)

	resolver := NewCollisionSystem(c)
	assert.NotPanics(t, func() {
		resolver.Resolve([]CollisionPair{{A: bullet, B: enemy}, {A: 9999, B: bullet}})
	})
	b, ok := c.ECS.Bullet(bullet)
	require.True(t, ok)
	assert.Equal(t, 1, b.Stats.Pierce)
}

func TestPickupCollectedByPlayer(t *testing.T) {
	c, rec := newTestContext(t)
	player := SpawnPlayer(c)
	pickup := SpawnCurrencyPickup(c, vec.V(10, 0))
	other := SpawnCurrencyPickup(c, vec.V(-10, 0))

	resolver := NewCollisionSystem(c)
	deferred := resolver.Resolve([]CollisionPair{{A: player, B: pickup}, {A: other, B: player}})

	assert.Equal(t, uint32(1), c.Currency)
	assert.False(t, c.ECS.Alive(pickup))
	assert.Equal(t, []CollisionPair{{A: other, B: player}}, deferred)

	resolver.Resolve(deferred)
	assert.Equal(t, uint32(2), c.Currency)
	assert.Equal(t, 2, rec.Count(event.CurrencyCollected))
}

func TestIrrelevantPairsIgnored(t *testing.T) {
	c, _ := newTestContext(t)
	player := SpawnPlayer(c)
	e1 := enemyWithHealth(c, vec.V(0, 0), 100, 100)
	e2 := enemyWithHealth(c, vec.V(0, 0), 100, 100)

	resolver := NewCollisionSystem(c)
	deferred := resolver.Resolve([]CollisionPair{{A: player, B: e1}, {A: e1, B: e2}})
	assert.Empty(t, deferred)

	h, _ := c.ECS.Health(player)
	assert.Equal(t, h.Max, h.Current)
}

func TestKnockbackOpposesDriveForce(t *testing.T) {
	c, _ := newTestContext(t)
	enemy := enemyWithHealth(c, vec.V(0, 0), 100, 100)
	m, _ := c.ECS.Motion(enemy)
	m.Force = vec.V(1000, 0)
	c.Weapon.Knockback = 500
	bullet := bulletWith(c, vec.V(0, 0), 1, 1)

	NewCollisionSystem(c).Resolve([]CollisionPair{{A: bullet, B: enemy}})

	assert.InDelta(t, -500/c.Tuning.Enemy.Mass, m.Velocity.X, 1e-9)
	assert.InDelta(t, 0, m.Velocity.Y, 1e-9)
}

func TestFreezeOnHitDoesNotStack(t *testing.T) {
	c, _ := newTestContext(t)
	c.Weapon.FreezeOnHit = true
	enemy := enemyWithHealth(c, vec.V(0, 0), 1000, 1000)
	resolver := NewCollisionSystem(c)
	status := NewStatusEffectSystem(c)

	resolver.Resolve([]CollisionPair{{A: bulletWith(c, vec.V(0, 0), 1, 1), B: enemy}})
	e, _ := c.ECS.Enemy(enemy)
	require.True(t, e.Status.IsImmobile())

	status.Update(1.5)
	remaining := e.Status.Remaining()

	resolver.Resolve([]CollisionPair{{A: bulletWith(c, vec.V(0, 0), 1, 1), B: enemy}})
	assert.InDelta(t, remaining, e.Status.Remaining(), 1e-9, "re-hit of an immobile enemy must not extend the timer")

	status.Update(0.6)
	assert.False(t, e.Status.IsImmobile())
}
