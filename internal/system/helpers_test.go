package system

import (
	"testing"

	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/event"
	"go-tank-shmup/internal/types"
	"go-tank-shmup/internal/utils"
	vec "go-tank-shmup/pkg/utils"
)

func newTestContext(t *testing.T) (*Context, *event.Recorder) {
	t.Helper()
	d := event.NewDispatcher()
	rec := &event.Recorder{}
	d.SubscribeAll(rec, event.AllTypes()...)
	tuning := config.DefaultTuning()
	tuning.Seed = 42
	return NewContext(tuning, d, utils.NewPRNGService(tuning.Seed)), rec
}

// enemyWithHealth создает врага с заданным здоровьем.
func enemyWithHealth(c *Context, pos vec.Vec2, current, max float64) types.EntityID {
	id := SpawnEnemy(c, pos)
	c.ECS.SetHealth(id, &component.Health{Current: current, Max: max})
	return id
}

// bulletWith создает снаряд с заданным уроном и пробиванием.
func bulletWith(c *Context, pos vec.Vec2, damage float64, pierce int) types.EntityID {
	c.Weapon.Damage = damage
	c.Weapon.Pierce = pierce
	return SpawnBullet(c, pos, 0)
}
