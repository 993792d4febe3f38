package component

import "go-tank-shmup/internal/utils"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Damage      float64      // Урон в ближнем бою, уже умноженный на DifficultyScale
	AttackTimer *utils.Timer // Повторяющийся таймер атаки, тикает только в радиусе ближнего боя
	Status      MotionStatus // Normal или Immobile
	Facing      float64      // Угол поворота к игроку (для отрисовки)
}
