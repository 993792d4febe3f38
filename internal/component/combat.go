package component

import "go-tank-shmup/internal/types"

// Health — компонент здоровья
type Health struct {
	Current float64
	Max     float64
}

// NewHealth создает полное здоровье.
func NewHealth(max float64) *Health {
	return &Health{Current: max, Max: max}
}

// Damage уменьшает текущее здоровье. Неположительный урон игнорируется,
// поэтому здоровье во время забега никогда не растёт.
func (h *Health) Damage(amount float64) {
	if amount <= 0 {
		return
	}
	h.Current -= amount
}

// IsDead истинен, когда здоровье опустилось до нуля или ниже.
func (h *Health) IsDead() bool {
	return h.Current <= 0
}

// Ratio возвращает долю оставшегося здоровья в диапазоне [0, 1].
func (h *Health) Ratio() float64 {
	if h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	if h.Current >= h.Max {
		return 1
	}
	return h.Current / h.Max
}

// CombatStats - боевые характеристики снаряда, скопированные из WeaponState при выстреле.
type CombatStats struct {
	Damage    float64
	Pierce    int // Оставшийся бюджет попаданий по разным врагам
	Knockback float64
}

// HitLedger хранит врагов, по которым снаряд уже попал. Записи никогда не удаляются.
type HitLedger struct {
	hits map[types.EntityID]struct{}
}

// NewHitLedger создает пустой журнал попаданий.
func NewHitLedger() *HitLedger {
	return &HitLedger{hits: make(map[types.EntityID]struct{})}
}

// Contains сообщает, было ли уже попадание по врагу.
func (l *HitLedger) Contains(id types.EntityID) bool {
	_, ok := l.hits[id]
	return ok
}

// Insert добавляет врага в журнал. Возвращает false, если он уже там был.
func (l *HitLedger) Insert(id types.EntityID) bool {
	if l.Contains(id) {
		return false
	}
	l.hits[id] = struct{}{}
	return true
}

// Len возвращает число уникальных врагов в журнале.
func (l *HitLedger) Len() int {
	return len(l.hits)
}
