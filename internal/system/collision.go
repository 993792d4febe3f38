// internal/system/collision.go
package system

import (
	"go-tank-shmup/internal/entity"
	"go-tank-shmup/internal/event"
	"go-tank-shmup/internal/types"
)

// CollisionSystem применяет правила к парам столкновений одного тика.
type CollisionSystem struct {
	ctx *Context
}

func NewCollisionSystem(ctx *Context) *CollisionSystem {
	return &CollisionSystem{ctx: ctx}
}

// Resolve обрабатывает пары в порядке поступления. Каждая сущность участвует
// не более чем в одной сработавшей паре за тик. Пары с уже уничтоженными
// сущностями отбрасываются. Возвращаются пары, отложенные из-за этого правила:
// их участники живы, и пересечение может быть обработано на следующем тике.
func (s *CollisionSystem) Resolve(pairs []CollisionPair) (deferred []CollisionPair) {
	ecs := s.ctx.ECS
	handled := make(map[types.EntityID]struct{}, len(pairs)*2)

	for _, pair := range pairs {
		kindA, okA := ecs.Kind(pair.A)
		kindB, okB := ecs.Kind(pair.B)
		if !okA || !okB || pair.A == pair.B {
			continue
		}
		_, doneA := handled[pair.A]
		_, doneB := handled[pair.B]
		if doneA || doneB {
			if relevant(kindA, kindB) {
				deferred = append(deferred, pair)
			}
			continue
		}

		var resolved bool
		switch {
		case kindA == entity.KindBullet && kindB == entity.KindEnemy:
			resolved = s.bulletHitsEnemy(pair.A, pair.B)
		case kindA == entity.KindEnemy && kindB == entity.KindBullet:
			resolved = s.bulletHitsEnemy(pair.B, pair.A)
		case kindA == entity.KindCurrencyPickup && kindB == entity.KindPlayer:
			resolved = s.collectPickup(pair.A)
		case kindA == entity.KindPlayer && kindB == entity.KindCurrencyPickup:
			resolved = s.collectPickup(pair.B)
		default:
			// Игрок-враг обрабатывается таймером атаки, остальные пары игнорируются
		}
		if resolved {
			handled[pair.A] = struct{}{}
			handled[pair.B] = struct{}{}
		}
	}
	return deferred
}

func relevant(a, b entity.Kind) bool {
	return (a == entity.KindBullet && b == entity.KindEnemy) ||
		(a == entity.KindEnemy && b == entity.KindBullet) ||
		(a == entity.KindCurrencyPickup && b == entity.KindPlayer) ||
		(a == entity.KindPlayer && b == entity.KindCurrencyPickup)
}

func (s *CollisionSystem) bulletHitsEnemy(bulletID, enemyID types.EntityID) bool {
	ecs := s.ctx.ECS
	bullet, ok := ecs.Bullet(bulletID)
	if !ok {
		return false
	}
	if !bullet.Ledger.Insert(enemyID) {
		// Этот снаряд уже попадал по врагу
		return false
	}

	bullet.Stats.Pierce--

	if health, ok := ecs.Health(enemyID); ok {
		health.Damage(bullet.Stats.Damage)
	}
	ecs.SetDamageFlash(enemyID, newFlash())

	if motion, ok := ecs.Motion(enemyID); ok && bullet.Stats.Knockback > 0 {
		// Импульс против текущей силы движения врага
		dir := motion.Force.Normalize().Scale(-1)
		motion.ApplyImpulse(dir.Scale(bullet.Stats.Knockback))
	}

	if s.ctx.Weapon.FreezeOnHit {
		if enemy, ok := ecs.Enemy(enemyID); ok && !enemy.Status.IsImmobile() {
			enemy.Status.Immobilize(s.ctx.Tuning.Enemy.FreezeDuration)
		}
	}

	if bullet.Stats.Pierce <= 0 {
		ecs.Destroy(bulletID)
	}
	return true
}

func (s *CollisionSystem) collectPickup(pickupID types.EntityID) bool {
	pickup, ok := s.ctx.ECS.Pickup(pickupID)
	if !ok {
		return false
	}
	s.ctx.AddCurrency(pickup.Value)
	s.ctx.ECS.Destroy(pickupID)
	s.ctx.dispatch(event.CurrencyCollected, event.CurrencyCollectedData{
		Amount:  pickup.Value,
		Balance: s.ctx.Currency,
	})
	return true
}
