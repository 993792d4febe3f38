package system

import (
	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/entity"
	"go-tank-shmup/internal/event"
	"go-tank-shmup/internal/utils"
	vec "go-tank-shmup/pkg/utils"
)

// Bounds - прямоугольник игрового поля в мировых координатах.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// ScreenBounds возвращает поле размером с экран с центром в нуле.
func ScreenBounds() Bounds {
	hw, hh := float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2
	return Bounds{MinX: -hw, MinY: -hh, MaxX: hw, MaxY: hh}
}

// Contains проверяет точку с учётом отступа margin.
func (b Bounds) Contains(p vec.Vec2, margin float64) bool {
	return p.X >= b.MinX-margin && p.X <= b.MaxX+margin &&
		p.Y >= b.MinY-margin && p.Y <= b.MaxY+margin
}

// Context - состояние симуляции одного забега. Единственный писатель - тик,
// системы получают его через конструкторы.
type Context struct {
	ECS        *entity.ECS
	Currency   uint32
	Weapon     component.WeaponState
	Difficulty component.Difficulty
	Events     *event.Dispatcher
	Rng        *utils.PRNGService
	Tuning     config.Tuning
	Bounds     Bounds
}

// NewContext создает контекст со значениями по умолчанию из tuning.
func NewContext(tuning config.Tuning, events *event.Dispatcher, rng *utils.PRNGService) *Context {
	c := &Context{
		ECS:    entity.NewECS(),
		Events: events,
		Rng:    rng,
		Tuning: tuning,
		Bounds: ScreenBounds(),
	}
	c.ResetProgress()
	return c
}

// DefaultWeapon возвращает стартовое оружие.
func (c *Context) DefaultWeapon() component.WeaponState {
	w := c.Tuning.Weapon
	return component.WeaponState{
		Damage:       w.Damage,
		Pierce:       w.Pierce,
		Knockback:    w.Knockback,
		SpreadAngle:  w.SpreadAngle,
		Volley:       w.Volley,
		FireInterval: w.FireInterval,
		Archetype:    component.ArchetypeRegular,
	}.Normalize()
}

// ResetProgress сбрасывает валюту, оружие и сложность к начальным значениям.
func (c *Context) ResetProgress() {
	c.Currency = 0
	c.Weapon = c.DefaultWeapon()
	c.Difficulty = component.Difficulty{
		Scale:         1.0,
		SpawnInterval: c.Tuning.Spawn.InitialInterval,
	}
}

// AddCurrency начисляет валюту, не допуская переполнения.
func (c *Context) AddCurrency(amount uint32) {
	if c.Currency > ^uint32(0)-amount {
		c.Currency = ^uint32(0)
		return
	}
	c.Currency += amount
}

func (c *Context) dispatch(t event.EventType, data any) {
	c.Events.Dispatch(event.Event{Type: t, Data: data})
}
