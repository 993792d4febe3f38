package system

import (
	"slices"

	"go-tank-shmup/internal/entity"
	"go-tank-shmup/internal/event"
	"go-tank-shmup/internal/types"
)

// DeathSystem уничтожает сущности с нулевым здоровьем после разрешения всех пар.
// Игрок не удаляется здесь: его смерть - переход забега в GameOver.
type DeathSystem struct {
	ctx *Context
}

func NewDeathSystem(ctx *Context) *DeathSystem {
	return &DeathSystem{ctx: ctx}
}

// Sweep возвращает число уничтоженных врагов.
func (s *DeathSystem) Sweep() int {
	ecs := s.ctx.ECS
	var dead []types.EntityID
	for id, health := range ecs.Healths {
		if health.IsDead() {
			dead = append(dead, id)
		}
	}
	slices.Sort(dead)

	killed := 0
	for _, id := range dead {
		kind, ok := ecs.Kind(id)
		if !ok || kind == entity.KindPlayer {
			continue
		}
		pos, hasPos := ecs.Position(id)
		var x, y float64
		if hasPos {
			x, y = pos.X, pos.Y
		}
		if !ecs.Destroy(id) {
			continue
		}
		if kind != entity.KindEnemy {
			continue
		}
		killed++
		if hasPos {
			SpawnCurrencyPickup(s.ctx, pos.Vec())
		}
		s.ctx.dispatch(event.EnemyKilled, event.EnemyKilledData{EnemyID: id, X: x, Y: y})
	}
	return killed
}
