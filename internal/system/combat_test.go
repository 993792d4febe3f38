package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/entity"
	"go-tank-shmup/internal/event"
	vec "go-tank-shmup/pkg/utils"
)

func TestWeaponFiresVolleyOnCooldown(t *testing.T) {
	c, rec := newTestContext(t)
	SpawnPlayer(c)
	c.Weapon.Volley = 3
	c.Weapon.SpreadAngle = 0.5
	c.Weapon.FireInterval = 0.4
	w := NewWeaponSystem(c)
	w.Aim(vec.V(0, -100))

	ids := w.Update(0.016, true)
	require.Len(t, ids, 3)
	assert.Equal(t, 1, rec.Count(event.BulletFired))

	// Перезарядка
	assert.Empty(t, w.Update(0.25, true))
	assert.Empty(t, w.Update(0.1, false))
	assert.Len(t, w.Update(0.1, true), 3)

	for _, id := range ids {
		b, ok := c.ECS.Bullet(id)
		require.True(t, ok)
		assert.Equal(t, c.Weapon.Stats(), b.Stats)
		m, _ := c.ECS.Motion(id)
		assert.Less(t, m.Velocity.Y, 0.0, "bullets fly towards the aim point")
	}
}

func TestWeaponHoldsFireWithoutInput(t *testing.T) {
	c, _ := newTestContext(t)
	SpawnPlayer(c)
	w := NewWeaponSystem(c)
	for i := 0; i < 10; i++ {
		assert.Empty(t, w.Update(0.1, false))
	}
	assert.Equal(t, 0, c.ECS.Count(entity.KindBullet))
}

func TestBulletCopiesArchetypeBody(t *testing.T) {
	c, _ := newTestContext(t)
	c.Weapon.Archetype = component.ArchetypeSawBlade
	id := SpawnBullet(c, vec.V(0, 0), 0)

	col, _ := c.ECS.Collider(id)
	assert.Equal(t, config.SawBladeRadius, col.Radius)
	m, _ := c.ECS.Motion(id)
	assert.InDelta(t, config.SawBladeSpeed, m.Velocity.Len(), 1e-9)
	b, _ := c.ECS.Bullet(id)
	assert.Equal(t, component.ArchetypeSawBlade, b.Archetype)
}

func TestMovementCullsBulletsOutsideBounds(t *testing.T) {
	c, _ := newTestContext(t)
	id := SpawnBullet(c, vec.V(c.Bounds.MaxX, 0), 0)
	enemy := SpawnEnemy(c, vec.V(c.Bounds.MaxX+config.BoundsMargin*2, 0))

	mv := NewMovementSystem(c)
	mv.Update(0.2)
	assert.False(t, c.ECS.Alive(id))
	assert.True(t, c.ECS.Alive(enemy), "enemies are never culled")
}

func TestMovementSkipsFixedBodies(t *testing.T) {
	c, _ := newTestContext(t)
	enemy := SpawnEnemy(c, vec.V(100, 0))
	m, _ := c.ECS.Motion(enemy)
	m.Velocity = vec.V(50, 0)
	m.Mode = component.BodyFixed

	NewMovementSystem(c).Update(1)
	pos, _ := c.ECS.Position(enemy)
	assert.Equal(t, 100.0, pos.X)
}

func TestEnemyAIDrivesTowardsPlayer(t *testing.T) {
	c, _ := newTestContext(t)
	SpawnPlayer(c)
	enemy := SpawnEnemy(c, vec.V(300, 0))
	frozen := SpawnEnemy(c, vec.V(-300, 0))
	fe, _ := c.ECS.Enemy(frozen)
	fe.Status.Immobilize(1)

	NewEnemyAISystem(c).Update(0.016)

	m, _ := c.ECS.Motion(enemy)
	assert.InDelta(t, -c.Tuning.Enemy.DriveForce, m.Force.X, 1e-9)
	fm, _ := c.ECS.Motion(frozen)
	assert.True(t, fm.Force.IsZero())
}

func TestHomingBiasPullsTowardsBullets(t *testing.T) {
	c, _ := newTestContext(t)
	SpawnPlayer(c)
	enemy := SpawnEnemy(c, vec.V(300, 0))
	SpawnBullet(c, vec.V(300, 100), 0)

	ai := NewEnemyAISystem(c)
	ai.Update(0.016)
	m, _ := c.ECS.Motion(enemy)
	assert.InDelta(t, 0, m.Force.Y, 1e-9)

	c.Weapon.HomingBias = true
	ai.Update(0.016)
	assert.InDelta(t, c.Tuning.Enemy.HomingBiasStrength/100, m.Force.Y, 1e-6)
}

func TestMeleeOnlyInRange(t *testing.T) {
	c, _ := newTestContext(t)
	player := SpawnPlayer(c)
	near := SpawnEnemy(c, vec.V(50, 0))
	SpawnEnemy(c, vec.V(500, 0))
	melee := NewMeleeSystem(c)

	melee.Update(0.3)
	h, _ := c.ECS.Health(player)
	assert.Equal(t, h.Max, h.Current)

	melee.Update(0.3)
	e, _ := c.ECS.Enemy(near)
	assert.InDelta(t, h.Max-e.Damage, h.Current, 1e-9)

	// Два периода за один тик - двойной урон
	melee.Update(1.0)
	assert.InDelta(t, h.Max-3*e.Damage, h.Current, 1e-9)
}

func TestImmobileZeroesMotionAndTints(t *testing.T) {
	c, _ := newTestContext(t)
	enemy := SpawnEnemy(c, vec.V(0, 0))
	e, _ := c.ECS.Enemy(enemy)
	m, _ := c.ECS.Motion(enemy)
	r, _ := c.ECS.Renderable(enemy)
	e.Status.Immobilize(1)
	m.Velocity = vec.V(10, 10)
	m.Force = vec.V(5, 5)

	s := NewStatusEffectSystem(c)
	s.Update(0.5)
	assert.True(t, m.Velocity.IsZero())
	assert.True(t, m.Force.IsZero())
	assert.Equal(t, config.FrozenEnemyColor, r.Color)

	s.Update(0.5)
	assert.False(t, e.Status.IsImmobile())
	assert.Equal(t, r.BaseColor, r.Color)
}

func TestFreezeAndRestoreMotion(t *testing.T) {
	c, _ := newTestContext(t)
	player := SpawnPlayer(c)
	enemy := SpawnEnemy(c, vec.V(100, 0))
	bullet := SpawnBullet(c, vec.V(0, 0), 0)
	em, _ := c.ECS.Motion(enemy)
	em.Force = vec.V(-1000, 0)
	em.Velocity = vec.V(-20, 0)
	bm, _ := c.ECS.Motion(bullet)
	bulletVel := bm.Velocity

	assert.Equal(t, 2, FreezeMotion(c.ECS))
	assert.Equal(t, component.BodyFixed, em.Mode)
	assert.True(t, em.Velocity.IsZero())
	_, playerFrozen := c.ECS.MotionSnapshots[player]
	assert.False(t, playerFrozen)

	NewMovementSystem(c).Update(1)
	pos, _ := c.ECS.Position(enemy)
	assert.Equal(t, 100.0, pos.X)

	assert.Equal(t, 2, RestoreMotion(c.ECS))
	assert.Equal(t, component.BodyDynamic, em.Mode)
	assert.Equal(t, vec.V(-1000, 0), em.Force)
	assert.Equal(t, vec.V(-20, 0), em.Velocity)
	assert.Equal(t, bulletVel, bm.Velocity)
	assert.Empty(t, c.ECS.MotionSnapshots)
}

func TestOverlapReportsOnlyStarts(t *testing.T) {
	c, _ := newTestContext(t)
	player := SpawnPlayer(c)
	pickup := SpawnCurrencyPickup(c, vec.V(10, 0))
	far := SpawnEnemy(c, vec.V(400, 0))
	det := NewOverlapSystem(c.ECS)

	pairs := det.Detect()
	assert.Equal(t, []CollisionPair{{A: player, B: pickup}}, pairs)
	assert.Empty(t, det.Detect(), "an ongoing overlap is not reported again")

	det.Release(pairs)
	assert.Len(t, det.Detect(), 1)

	pos, _ := c.ECS.Position(far)
	pos.X = 20
	assert.Len(t, det.Detect(), 2, "new overlaps with the player and the pickup")
}
