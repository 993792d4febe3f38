// internal/system/movement.go
package system

import (
	"math"

	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/entity"
	"go-tank-shmup/internal/types"
)

// MovementSystem интегрирует силу и скорость динамических тел.
// Снаряды и монеты, вылетевшие за поле, уничтожаются.
type MovementSystem struct {
	ctx *Context
}

func NewMovementSystem(ctx *Context) *MovementSystem {
	return &MovementSystem{ctx: ctx}
}

func (s *MovementSystem) Update(deltaTime float64) {
	ecs := s.ctx.ECS
	var outside []types.EntityID

	for id, motion := range ecs.Motions {
		if motion.Mode == component.BodyFixed {
			continue
		}
		pos, ok := ecs.Position(id)
		if !ok {
			continue
		}

		mass := motion.Mass
		if mass <= 0 {
			mass = 1
		}
		motion.Velocity = motion.Velocity.Add(motion.Force.Scale(deltaTime / mass))
		if motion.Damping > 0 {
			motion.Velocity = motion.Velocity.Scale(math.Exp(-motion.Damping * deltaTime))
		}
		pos.Set(pos.Vec().Add(motion.Velocity.Scale(deltaTime)))

		if kind, _ := ecs.Kind(id); kind == entity.KindBullet || kind == entity.KindCurrencyPickup {
			if !s.ctx.Bounds.Contains(pos.Vec(), config.BoundsMargin) {
				outside = append(outside, id)
			}
		}
	}

	for _, id := range outside {
		ecs.Destroy(id)
	}
}
