package system

import (
	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/event"
	"go-tank-shmup/internal/types"
	"go-tank-shmup/internal/utils"
	vec "go-tank-shmup/pkg/utils"
)

// WeaponSystem стреляет из позиции игрока в сторону прицела.
// Интервал стрельбы и параметры снарядов читаются из WeaponState на каждом тике,
// поэтому покупка улучшения действует со следующего выстрела.
type WeaponSystem struct {
	ctx       *Context
	fireTimer *utils.Timer
	ready     bool // Оружие перезаряжено и ждёт нажатия
}

func NewWeaponSystem(ctx *Context) *WeaponSystem {
	s := &WeaponSystem{ctx: ctx}
	s.Reset()
	return s
}

// Reset делает следующий выстрел доступным сразу.
func (s *WeaponSystem) Reset() {
	s.fireTimer = utils.NewRepeatingTimer(s.ctx.Weapon.FireInterval)
	s.ready = true
}

// Aim поворачивает игрока к точке aim.
func (s *WeaponSystem) Aim(aim vec.Vec2) {
	if playerID, ok := s.ctx.ECS.PlayerID(); ok {
		if p, ok := s.ctx.ECS.Player(playerID); ok {
			p.Aim = aim
		}
	}
}

// Update перезаряжает оружие и, если fire зажат, выпускает залп.
func (s *WeaponSystem) Update(deltaTime float64, fire bool) []types.EntityID {
	s.fireTimer.SetDuration(s.ctx.Weapon.FireInterval)
	if !s.ready {
		s.fireTimer.Advance(deltaTime)
		s.ready = s.fireTimer.IsDue()
	}
	if !fire || !s.ready {
		return nil
	}

	ecs := s.ctx.ECS
	playerID, ok := ecs.PlayerID()
	if !ok {
		return nil
	}
	ppos, hasPos := ecs.Position(playerID)
	player, hasPlayer := ecs.Player(playerID)
	if !hasPos || !hasPlayer {
		return nil
	}

	dir := player.Aim.Sub(ppos.Vec())
	if dir.IsZero() {
		dir = vec.V(1, 0)
	}
	w := s.ctx.Weapon
	origin := ppos.Vec().Add(dir.Normalize().Scale(config.PlayerRadius))

	ids := make([]types.EntityID, 0, w.Volley)
	for _, angle := range utils.FanAngles(dir.Angle(), w.SpreadAngle, w.Volley) {
		ids = append(ids, SpawnBullet(s.ctx, origin, angle))
	}
	s.ready = false
	s.fireTimer.Reset()

	s.ctx.dispatch(event.BulletFired, event.BulletFiredData{
		Count:     len(ids),
		Archetype: w.Archetype.String(),
	})
	return ids
}
