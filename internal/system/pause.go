package system

import (
	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/entity"
	vec "go-tank-shmup/pkg/utils"
)

// FreezeMotion сохраняет скорость и силу всех динамических тел, кроме игрока,
// и переводит их в режим Fixed. Возвращает число замороженных тел.
func FreezeMotion(ecs *entity.ECS) int {
	n := 0
	for id, motion := range ecs.Motions {
		if kind, _ := ecs.Kind(id); kind == entity.KindPlayer {
			continue
		}
		if motion.Mode == component.BodyFixed {
			continue
		}
		ecs.MotionSnapshots[id] = &component.MotionSnapshot{
			Velocity: motion.Velocity,
			Force:    motion.Force,
		}
		motion.Velocity = vec.Vec2{}
		motion.Force = vec.Vec2{}
		motion.Mode = component.BodyFixed
		n++
	}
	return n
}

// RestoreMotion возвращает сохранённые скорость и силу и режим Dynamic.
func RestoreMotion(ecs *entity.ECS) int {
	n := 0
	for id, snap := range ecs.MotionSnapshots {
		if motion, ok := ecs.Motion(id); ok {
			motion.Velocity = snap.Velocity
			motion.Force = snap.Force
			motion.Mode = component.BodyDynamic
			n++
		}
		delete(ecs.MotionSnapshots, id)
	}
	return n
}
