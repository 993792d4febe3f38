package app

import (
	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/entity"
	"go-tank-shmup/internal/skilltree"
)

// Snapshot - состояние для отрисовки одного кадра. Только чтение.
type Snapshot struct {
	Phase          Phase
	RunID          string
	HealthRatio    float64
	Currency       uint32
	HighScore      uint32
	HighScoreKnown bool
	Difficulty     component.Difficulty
	Weapon         component.WeaponState
	Nodes          []skilltree.NodeView
	Elapsed        float64
	Enemies        int
	Summary        Summary
}

// Snapshot собирает данные для UI.
func (r *Run) Snapshot() Snapshot {
	s := Snapshot{
		Phase:          r.phase,
		RunID:          r.ID,
		Currency:       r.ctx.Currency,
		HighScore:      r.highScore,
		HighScoreKnown: r.highScoreKnown,
		Difficulty:     r.ctx.Difficulty,
		Weapon:         r.ctx.Weapon,
		Nodes:          r.tree.Nodes(),
		Elapsed:        r.elapsed,
		Enemies:        r.ctx.ECS.Count(entity.KindEnemy),
		Summary:        r.summary,
	}
	if id, ok := r.ctx.ECS.PlayerID(); ok {
		if h, ok := r.ctx.ECS.Health(id); ok {
			s.HealthRatio = h.Ratio()
		}
	}
	return s
}
