package system

import (
	"go-tank-shmup/internal/event"
	"go-tank-shmup/internal/types"
	"go-tank-shmup/internal/utils"
	vec "go-tank-shmup/pkg/utils"
)

// Edge - край поля, у которого появляется враг.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
	edgeCount
)

// SpawnSystem создает врагов у краёв поля и наращивает сложность.
// Два повторяющихся таймера: спавн (интервал уменьшается) и масштаб (фиксированный).
type SpawnSystem struct {
	ctx        *Context
	spawnTimer *utils.Timer
	scaleTimer *utils.Timer
}

func NewSpawnSystem(ctx *Context) *SpawnSystem {
	s := &SpawnSystem{ctx: ctx}
	s.Reset()
	return s
}

// Reset возвращает таймеры к начальному состоянию. Сложность сбрасывает Context.ResetProgress.
func (s *SpawnSystem) Reset() {
	s.spawnTimer = utils.NewRepeatingTimer(s.ctx.Difficulty.SpawnInterval)
	s.scaleTimer = utils.NewRepeatingTimer(s.ctx.Tuning.Spawn.ScaleInterval)
}

// Update продвигает оба таймера и возвращает ID созданных врагов.
func (s *SpawnSystem) Update(deltaTime float64) []types.EntityID {
	s.scaleTimer.Advance(deltaTime)
	for i := 0; i < s.scaleTimer.TimesFired(); i++ {
		s.ramp()
	}

	// Новый интервал действует со следующей проверки, накопленное время сохраняется
	s.spawnTimer.SetDuration(s.ctx.Difficulty.SpawnInterval)
	s.spawnTimer.Advance(deltaTime)

	var spawned []types.EntityID
	for i := 0; i < s.spawnTimer.TimesFired(); i++ {
		spawned = append(spawned, SpawnEnemy(s.ctx, s.edgePosition()))
	}
	return spawned
}

func (s *SpawnSystem) ramp() {
	t := s.ctx.Tuning.Spawn
	d := &s.ctx.Difficulty

	d.Scale *= t.GrowthFactor
	if t.MaxDifficultyScale > 0 && d.Scale > t.MaxDifficultyScale {
		d.Scale = t.MaxDifficultyScale
	}
	d.SpawnInterval /= t.RampFactor
	if t.MinSpawnInterval > 0 && d.SpawnInterval < t.MinSpawnInterval {
		d.SpawnInterval = t.MinSpawnInterval
	}
	d.Ramps++

	s.ctx.dispatch(event.DifficultyRamped, event.DifficultyRampedData{
		Scale:         d.Scale,
		SpawnInterval: d.SpawnInterval,
	})
}

// edgePosition выбирает край равновероятно и точку на нём равномерно.
func (s *SpawnSystem) edgePosition() vec.Vec2 {
	b := s.ctx.Bounds
	rng := s.ctx.Rng
	switch Edge(rng.Intn(int(edgeCount))) {
	case EdgeTop:
		return vec.V(rng.Range(b.MinX, b.MaxX), b.MinY)
	case EdgeBottom:
		return vec.V(rng.Range(b.MinX, b.MaxX), b.MaxY)
	case EdgeLeft:
		return vec.V(b.MinX, rng.Range(b.MinY, b.MaxY))
	default:
		return vec.V(b.MaxX, rng.Range(b.MinY, b.MaxY))
	}
}

// Paused сообщает, стоят ли таймеры.
func (s *SpawnSystem) Paused() bool {
	return s.spawnTimer.Paused()
}

// Pause останавливает оба таймера на время оверлея.
func (s *SpawnSystem) Pause() {
	s.spawnTimer.Pause()
	s.scaleTimer.Pause()
}

func (s *SpawnSystem) Resume() {
	s.spawnTimer.Resume()
	s.scaleTimer.Resume()
}
