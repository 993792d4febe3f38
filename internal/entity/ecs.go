// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/types"
)

// Kind - вид сущности. Используется для классификации пар столкновений
// без поочерёдных проверок по всем картам компонентов.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
	KindCurrencyPickup
	KindOverlay
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindCurrencyPickup:
		return "currency"
	case KindOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

type ECS struct {
	GameTime        float64
	NextID          types.EntityID
	Kinds           map[types.EntityID]Kind
	Positions       map[types.EntityID]*component.Position
	Motions         map[types.EntityID]*component.Motion
	Colliders       map[types.EntityID]*component.Collider
	Healths         map[types.EntityID]*component.Health
	Renderables     map[types.EntityID]*component.Renderable
	Players         map[types.EntityID]*component.Player
	Enemies         map[types.EntityID]*component.Enemy
	Bullets         map[types.EntityID]*component.Bullet
	Pickups         map[types.EntityID]*component.CurrencyPickup
	DamageFlashes   map[types.EntityID]*component.DamageFlash
	MotionSnapshots map[types.EntityID]*component.MotionSnapshot
	OverlayMarkers  map[types.EntityID]*component.OverlayMarker
}

func NewECS() *ECS {
	return &ECS{
		NextID:          1,
		Kinds:           make(map[types.EntityID]Kind),
		Positions:       make(map[types.EntityID]*component.Position),
		Motions:         make(map[types.EntityID]*component.Motion),
		Colliders:       make(map[types.EntityID]*component.Collider),
		Healths:         make(map[types.EntityID]*component.Health),
		Renderables:     make(map[types.EntityID]*component.Renderable),
		Players:         make(map[types.EntityID]*component.Player),
		Enemies:         make(map[types.EntityID]*component.Enemy),
		Bullets:         make(map[types.EntityID]*component.Bullet),
		Pickups:         make(map[types.EntityID]*component.CurrencyPickup),
		DamageFlashes:   make(map[types.EntityID]*component.DamageFlash),
		MotionSnapshots: make(map[types.EntityID]*component.MotionSnapshot),
		OverlayMarkers:  make(map[types.EntityID]*component.OverlayMarker),
	}
}

// NewEntity регистрирует сущность указанного вида и возвращает её ID.
func (ecs *ECS) NewEntity(kind Kind) types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.Kinds[id] = kind
	return id
}

// Alive сообщает, существует ли сущность.
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.Kinds[id]
	return ok
}

// Kind возвращает вид сущности.
func (ecs *ECS) Kind(id types.EntityID) (Kind, bool) {
	k, ok := ecs.Kinds[id]
	return k, ok
}

// Destroy удаляет сущность и все её компоненты. Повторный вызов ничего не делает
// и возвращает false: несколько систем за тик могут решить убить одну и ту же сущность.
func (ecs *ECS) Destroy(id types.EntityID) bool {
	if !ecs.Alive(id) {
		return false
	}
	delete(ecs.Kinds, id)
	delete(ecs.Positions, id)
	delete(ecs.Motions, id)
	delete(ecs.Colliders, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Players, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bullets, id)
	delete(ecs.Pickups, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.MotionSnapshots, id)
	delete(ecs.OverlayMarkers, id)
	return true
}

// EntitiesOfKind возвращает ID всех живых сущностей вида kind в порядке создания.
func (ecs *ECS) EntitiesOfKind(kind Kind) []types.EntityID {
	var ids []types.EntityID
	for id, k := range ecs.Kinds {
		if k == kind {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// AllEntities возвращает ID всех живых сущностей в порядке создания.
func (ecs *ECS) AllEntities() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Kinds))
	for id := range ecs.Kinds {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Count возвращает число живых сущностей вида kind.
func (ecs *ECS) Count(kind Kind) int {
	n := 0
	for _, k := range ecs.Kinds {
		if k == kind {
			n++
		}
	}
	return n
}

// DestroyKinds удаляет все сущности перечисленных видов.
func (ecs *ECS) DestroyKinds(kinds ...Kind) int {
	removed := 0
	for _, kind := range kinds {
		for _, id := range ecs.EntitiesOfKind(kind) {
			if ecs.Destroy(id) {
				removed++
			}
		}
	}
	return removed
}

// PlayerID возвращает ID единственного игрока.
func (ecs *ECS) PlayerID() (types.EntityID, bool) {
	ids := ecs.EntitiesOfKind(KindPlayer)
	if len(ids) == 0 {
		return types.NoEntity, false
	}
	return ids[0], true
}

// --- Доступ к атрибутам. Отсутствующая сущность или атрибут - не ошибка. ---

func lookup[T any](m map[types.EntityID]*T, id types.EntityID) (*T, bool) {
	v, ok := m[id]
	return v, ok && v != nil
}

func attach[T any](ecs *ECS, m map[types.EntityID]*T, id types.EntityID, v *T) bool {
	if !ecs.Alive(id) || v == nil {
		return false
	}
	m[id] = v
	return true
}

func (ecs *ECS) Position(id types.EntityID) (*component.Position, bool) {
	return lookup(ecs.Positions, id)
}

func (ecs *ECS) SetPosition(id types.EntityID, p *component.Position) bool {
	return attach(ecs, ecs.Positions, id, p)
}

func (ecs *ECS) Motion(id types.EntityID) (*component.Motion, bool) {
	return lookup(ecs.Motions, id)
}

func (ecs *ECS) SetMotion(id types.EntityID, m *component.Motion) bool {
	return attach(ecs, ecs.Motions, id, m)
}

func (ecs *ECS) Collider(id types.EntityID) (*component.Collider, bool) {
	return lookup(ecs.Colliders, id)
}

func (ecs *ECS) SetCollider(id types.EntityID, c *component.Collider) bool {
	return attach(ecs, ecs.Colliders, id, c)
}

func (ecs *ECS) Health(id types.EntityID) (*component.Health, bool) {
	return lookup(ecs.Healths, id)
}

func (ecs *ECS) SetHealth(id types.EntityID, h *component.Health) bool {
	return attach(ecs, ecs.Healths, id, h)
}

func (ecs *ECS) Renderable(id types.EntityID) (*component.Renderable, bool) {
	return lookup(ecs.Renderables, id)
}

func (ecs *ECS) SetRenderable(id types.EntityID, r *component.Renderable) bool {
	return attach(ecs, ecs.Renderables, id, r)
}

func (ecs *ECS) Player(id types.EntityID) (*component.Player, bool) {
	return lookup(ecs.Players, id)
}

func (ecs *ECS) SetPlayer(id types.EntityID, p *component.Player) bool {
	return attach(ecs, ecs.Players, id, p)
}

func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	return lookup(ecs.Enemies, id)
}

func (ecs *ECS) SetEnemy(id types.EntityID, e *component.Enemy) bool {
	return attach(ecs, ecs.Enemies, id, e)
}

func (ecs *ECS) Bullet(id types.EntityID) (*component.Bullet, bool) {
	return lookup(ecs.Bullets, id)
}

func (ecs *ECS) SetBullet(id types.EntityID, b *component.Bullet) bool {
	return attach(ecs, ecs.Bullets, id, b)
}

func (ecs *ECS) Pickup(id types.EntityID) (*component.CurrencyPickup, bool) {
	return lookup(ecs.Pickups, id)
}

func (ecs *ECS) SetPickup(id types.EntityID, p *component.CurrencyPickup) bool {
	return attach(ecs, ecs.Pickups, id, p)
}

func (ecs *ECS) SetDamageFlash(id types.EntityID, f *component.DamageFlash) bool {
	return attach(ecs, ecs.DamageFlashes, id, f)
}

func (ecs *ECS) SetOverlayMarker(id types.EntityID, m *component.OverlayMarker) bool {
	return attach(ecs, ecs.OverlayMarkers, id, m)
}
