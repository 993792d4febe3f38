package system

// MeleeSystem наносит урон игроку врагами в радиусе ближнего боя.
// Таймер атаки каждого врага тикает только пока он рядом с игроком.
type MeleeSystem struct {
	ctx *Context
}

func NewMeleeSystem(ctx *Context) *MeleeSystem {
	return &MeleeSystem{ctx: ctx}
}

func (s *MeleeSystem) Update(deltaTime float64) {
	ecs := s.ctx.ECS
	playerID, ok := ecs.PlayerID()
	if !ok {
		return
	}
	ppos, hasPos := ecs.Position(playerID)
	health, hasHealth := ecs.Health(playerID)
	if !hasPos || !hasHealth {
		return
	}

	hit := false
	for id, enemy := range ecs.Enemies {
		pos, ok := ecs.Position(id)
		if !ok || pos.Vec().Dist(ppos.Vec()) > s.ctx.Tuning.Enemy.MeleeRange {
			continue
		}
		enemy.AttackTimer.Advance(deltaTime)
		if n := enemy.AttackTimer.TimesFired(); n > 0 {
			health.Damage(enemy.Damage * float64(n))
			hit = true
		}
	}
	if hit {
		ecs.SetDamageFlash(playerID, newFlash())
	}
}
