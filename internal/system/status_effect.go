// internal/system/status_effect.go
package system

import (
	"go-tank-shmup/internal/config"
	vec "go-tank-shmup/pkg/utils"
)

// StatusEffectSystem продвигает состояние Normal/Immobile у врагов.
// Обездвиженный враг каждый тик теряет силу и скорость и подсвечивается.
type StatusEffectSystem struct {
	ctx *Context
}

func NewStatusEffectSystem(ctx *Context) *StatusEffectSystem {
	return &StatusEffectSystem{ctx: ctx}
}

func (s *StatusEffectSystem) Update(deltaTime float64) {
	ecs := s.ctx.ECS
	for id, enemy := range ecs.Enemies {
		if !enemy.Status.IsImmobile() {
			continue
		}
		render, hasRender := ecs.Renderable(id)
		if enemy.Status.Advance(deltaTime) {
			// Таймер истёк: враг снова двигается
			if hasRender {
				render.ClearTint()
			}
			continue
		}
		if motion, ok := ecs.Motion(id); ok {
			motion.Force = vec.Vec2{}
			motion.Velocity = vec.Vec2{}
		}
		if hasRender {
			render.Tint(config.FrozenEnemyColor)
		}
	}
}
