package system

import (
	"slices"

	"go-tank-shmup/internal/entity"
	"go-tank-shmup/internal/types"
)

// CollisionPair - пара пересекающихся сущностей. Порядок внутри пары не важен.
type CollisionPair struct {
	A, B types.EntityID
}

func (p CollisionPair) key() CollisionPair {
	if p.A > p.B {
		return CollisionPair{A: p.B, B: p.A}
	}
	return p
}

// OverlapSystem - простой детектор пересечений кругов. Сообщает только о начале
// пересечения: пара, уже пересекавшаяся на прошлом тике, повторно не выдаётся.
type OverlapSystem struct {
	ecs    *entity.ECS
	active map[CollisionPair]struct{}
}

func NewOverlapSystem(ecs *entity.ECS) *OverlapSystem {
	return &OverlapSystem{ecs: ecs, active: make(map[CollisionPair]struct{})}
}

// Detect возвращает пары, начавшие пересекаться на этом тике, в порядке ID.
func (s *OverlapSystem) Detect() []CollisionPair {
	ids := make([]types.EntityID, 0, len(s.ecs.Colliders))
	for id := range s.ecs.Colliders {
		if kind, ok := s.ecs.Kind(id); ok && kind != entity.KindOverlay {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	var started []CollisionPair
	current := make(map[CollisionPair]struct{}, len(s.active))
	for i := 0; i < len(ids); i++ {
		a := ids[i]
		pa, okA := s.ecs.Position(a)
		ca, _ := s.ecs.Collider(a)
		if !okA {
			continue
		}
		for j := i + 1; j < len(ids); j++ {
			b := ids[j]
			pb, okB := s.ecs.Position(b)
			cb, _ := s.ecs.Collider(b)
			if !okB {
				continue
			}
			r := ca.Radius + cb.Radius
			dx, dy := pa.X-pb.X, pa.Y-pb.Y
			if dx*dx+dy*dy > r*r {
				continue
			}
			pair := CollisionPair{A: a, B: b}
			current[pair] = struct{}{}
			if _, seen := s.active[pair]; !seen {
				started = append(started, pair)
			}
		}
	}
	s.active = current
	return started
}

// Release забывает пары, чтобы они снова пришли как новые, если пересечение сохранится.
// Так резолвер откладывает пары, которые он не успел обработать на этом тике.
func (s *OverlapSystem) Release(pairs []CollisionPair) {
	for _, p := range pairs {
		delete(s.active, p.key())
	}
}

// Reset очищает набор активных пар.
func (s *OverlapSystem) Reset() {
	s.active = make(map[CollisionPair]struct{})
}
