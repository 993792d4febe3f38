package system

import (
	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/entity"
	"go-tank-shmup/internal/event"
	"go-tank-shmup/internal/types"
	"go-tank-shmup/internal/utils"
	vec "go-tank-shmup/pkg/utils"
)

// SpawnPlayer создает единственного игрока в центре поля.
func SpawnPlayer(c *Context) types.EntityID {
	id := c.ECS.NewEntity(entity.KindPlayer)
	c.ECS.SetPosition(id, &component.Position{})
	c.ECS.SetCollider(id, &component.Collider{Radius: config.PlayerRadius})
	c.ECS.SetHealth(id, component.NewHealth(c.Tuning.Player.MaxHealth))
	c.ECS.SetPlayer(id, &component.Player{Aim: vec.V(1, 0)})
	c.ECS.SetRenderable(id, &component.Renderable{
		Color:     config.PlayerColor,
		BaseColor: config.PlayerColor,
		Radius:    float32(config.PlayerRadius),
	})
	return id
}

// SpawnEnemy создает врага в точке pos. Здоровье и урон умножаются на текущий DifficultyScale.
func SpawnEnemy(c *Context, pos vec.Vec2) types.EntityID {
	t := c.Tuning.Enemy
	scale := c.Difficulty.Scale

	id := c.ECS.NewEntity(entity.KindEnemy)
	c.ECS.SetPosition(id, &component.Position{X: pos.X, Y: pos.Y})
	c.ECS.SetMotion(id, &component.Motion{Mass: t.Mass, Damping: t.Damping})
	c.ECS.SetCollider(id, &component.Collider{Radius: config.EnemyRadius})
	c.ECS.SetHealth(id, component.NewHealth(t.BaseHealth*scale))
	c.ECS.SetEnemy(id, &component.Enemy{
		Damage:      t.BaseDamage * scale,
		AttackTimer: utils.NewRepeatingTimer(t.AttackInterval),
	})
	c.ECS.SetRenderable(id, &component.Renderable{
		Color:     config.EnemyColor,
		BaseColor: config.EnemyColor,
		Radius:    float32(config.EnemyRadius),
	})
	c.dispatch(event.EnemySpawned, event.EnemySpawnedData{EnemyID: id, X: pos.X, Y: pos.Y})
	return id
}

// SpawnBullet создает снаряд текущего архетипа, летящий под углом angle.
// Характеристики копируются из WeaponState в момент выстрела.
func SpawnBullet(c *Context, origin vec.Vec2, angle float64) types.EntityID {
	speed, radius := archetypeBody(c.Weapon.Archetype)
	col := config.BulletColors[0]
	if int(c.Weapon.Archetype) < len(config.BulletColors) {
		col = config.BulletColors[c.Weapon.Archetype]
	}

	id := c.ECS.NewEntity(entity.KindBullet)
	c.ECS.SetPosition(id, &component.Position{X: origin.X, Y: origin.Y})
	c.ECS.SetMotion(id, &component.Motion{
		Velocity: vec.FromAngle(angle).Scale(speed),
		Mass:     1,
	})
	c.ECS.SetCollider(id, &component.Collider{Radius: radius})
	c.ECS.SetBullet(id, &component.Bullet{
		Archetype: c.Weapon.Archetype,
		Stats:     c.Weapon.Stats(),
		Ledger:    component.NewHitLedger(),
	})
	c.ECS.SetRenderable(id, &component.Renderable{Color: col, BaseColor: col, Radius: float32(radius)})
	return id
}

func archetypeBody(a component.Archetype) (speed, radius float64) {
	switch a {
	case component.ArchetypeRocket:
		return config.RocketBulletSpeed, config.RocketBulletRadius
	case component.ArchetypeSawBlade:
		return config.SawBladeSpeed, config.SawBladeRadius
	default:
		return config.RegularBulletSpeed, config.RegularBulletRadius
	}
}

// SpawnCurrencyPickup создает монету, летящую к игроку с фиксированной скоростью.
// Без игрока монета остаётся на месте.
func SpawnCurrencyPickup(c *Context, pos vec.Vec2) types.EntityID {
	var velocity vec.Vec2
	if playerID, ok := c.ECS.PlayerID(); ok {
		if ppos, ok := c.ECS.Position(playerID); ok {
			velocity = ppos.Vec().Sub(pos).Normalize().Scale(c.Tuning.Pickup.LaunchSpeed)
		}
	}

	id := c.ECS.NewEntity(entity.KindCurrencyPickup)
	c.ECS.SetPosition(id, &component.Position{X: pos.X, Y: pos.Y})
	c.ECS.SetMotion(id, &component.Motion{Velocity: velocity, Mass: 1})
	c.ECS.SetCollider(id, &component.Collider{Radius: config.PickupRadius})
	c.ECS.SetPickup(id, &component.CurrencyPickup{Value: c.Tuning.Pickup.Value})
	c.ECS.SetRenderable(id, &component.Renderable{
		Color:     config.PickupColor,
		BaseColor: config.PickupColor,
		Radius:    float32(config.PickupRadius),
	})
	return id
}
