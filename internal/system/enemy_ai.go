package system

import (
	"go-tank-shmup/internal/entity"
	vec "go-tank-shmup/pkg/utils"
)

// EnemyAISystem задаёт силу движения врагов к игроку. При включённом
// HomingBias враги дополнительно притягиваются к летящим снарядам.
type EnemyAISystem struct {
	ctx *Context
}

func NewEnemyAISystem(ctx *Context) *EnemyAISystem {
	return &EnemyAISystem{ctx: ctx}
}

func (s *EnemyAISystem) Update(deltaTime float64) {
	ecs := s.ctx.ECS
	playerID, ok := ecs.PlayerID()
	if !ok {
		return
	}
	ppos, ok := ecs.Position(playerID)
	if !ok {
		return
	}
	t := s.ctx.Tuning.Enemy

	var bullets []vec.Vec2
	if s.ctx.Weapon.HomingBias {
		for _, id := range ecs.EntitiesOfKind(entity.KindBullet) {
			if p, ok := ecs.Position(id); ok {
				bullets = append(bullets, p.Vec())
			}
		}
	}

	for id, enemy := range ecs.Enemies {
		pos, hasPos := ecs.Position(id)
		motion, hasMotion := ecs.Motion(id)
		if !hasPos || !hasMotion {
			continue
		}
		toPlayer := ppos.Vec().Sub(pos.Vec())
		if !toPlayer.IsZero() {
			enemy.Facing = toPlayer.Angle()
		}
		if enemy.Status.IsImmobile() {
			continue
		}

		force := toPlayer.Normalize().Scale(t.DriveForce)
		for _, b := range bullets {
			d := b.Sub(pos.Vec())
			dist := d.Len()
			if dist == 0 {
				continue
			}
			force = force.Add(d.Normalize().Scale(t.HomingBiasStrength / dist))
		}
		motion.Force = force
	}
}
