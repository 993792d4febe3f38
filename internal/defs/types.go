// internal/defs/types.go
package defs

// Stat - поле WeaponState, которое меняет эффект улучшения.
type Stat string

const (
	StatDamage       Stat = "damage"
	StatPierce       Stat = "pierce"
	StatKnockback    Stat = "knockback"
	StatSpread       Stat = "spread"
	StatVolley       Stat = "volley"
	StatFireInterval Stat = "fire_interval"
	StatArchetype    Stat = "archetype"
	StatHomingBias   Stat = "homing_bias"
	StatFreezeOnHit  Stat = "freeze_on_hit"
)

// Op задаёт, как эффект сочетается с текущим значением.
type Op string

const (
	OpAdd Op = "add"
	OpMul Op = "mul"
	OpSet Op = "set"
)

// EffectDef - одно изменение характеристики. Archetype используется только со StatArchetype;
// для булевых характеристик Value != 0 означает true.
type EffectDef struct {
	Stat      Stat    `json:"stat"`
	Op        Op      `json:"op"`
	Value     float64 `json:"value,omitempty"`
	Archetype string  `json:"archetype,omitempty"`
}
