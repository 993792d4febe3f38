// internal/defs/upgrades.go
package defs

// UpgradeDefinition - статические данные одного узла дерева навыков.
type UpgradeDefinition struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Branch   string      `json:"branch"` // Колонка оверлея
	Group    string      `json:"group"`  // Узлы одной группы взаимоисключающие
	Cost     uint32      `json:"cost"`
	Requires []string    `json:"requires,omitempty"` // Все должны быть куплены раньше
	Effects  []EffectDef `json:"effects"`
}

const (
	BranchProjectile = "projectile"
	BranchSpread     = "spread"
	BranchEffects    = "effects"
)

// DefaultUpgrades возвращает встроенное дерево: три ветки, в каждой
// взаимоисключающий первый ярус и по одному продолжению на каждый его выбор.
func DefaultUpgrades() []UpgradeDefinition {
	return []UpgradeDefinition{
		{
			ID: "rocket", Title: "Rocket", Branch: BranchProjectile, Group: "projectile-type", Cost: 20,
			Effects: []EffectDef{
				{Stat: StatArchetype, Op: OpSet, Archetype: "rocket"},
				{Stat: StatDamage, Op: OpMul, Value: 2},
				{Stat: StatKnockback, Op: OpAdd, Value: 300},
				{Stat: StatFireInterval, Op: OpMul, Value: 1.5},
			},
		},
		{
			ID: "sawblade", Title: "Saw Blade", Branch: BranchProjectile, Group: "projectile-type", Cost: 20,
			Effects: []EffectDef{
				{Stat: StatArchetype, Op: OpSet, Archetype: "sawblade"},
				{Stat: StatPierce, Op: OpAdd, Value: 3},
				{Stat: StatDamage, Op: OpMul, Value: 0.75},
			},
		},
		{
			ID: "warhead", Title: "Warhead", Branch: BranchProjectile, Group: "warhead", Cost: 40,
			Requires: []string{"rocket"},
			Effects: []EffectDef{
				{Stat: StatDamage, Op: OpAdd, Value: 25},
				{Stat: StatKnockback, Op: OpMul, Value: 2},
			},
		},
		{
			ID: "razor", Title: "Razor Edge", Branch: BranchProjectile, Group: "razor", Cost: 40,
			Requires: []string{"sawblade"},
			Effects: []EffectDef{
				{Stat: StatPierce, Op: OpAdd, Value: 2},
				{Stat: StatDamage, Op: OpAdd, Value: 10},
			},
		},
		{
			ID: "twin", Title: "Twin Shot", Branch: BranchSpread, Group: "spread", Cost: 15,
			Effects: []EffectDef{
				{Stat: StatVolley, Op: OpSet, Value: 2},
				{Stat: StatSpread, Op: OpSet, Value: 0.15},
			},
		},
		{
			ID: "rapid", Title: "Rapid Fire", Branch: BranchSpread, Group: "spread", Cost: 15,
			Effects: []EffectDef{
				{Stat: StatFireInterval, Op: OpMul, Value: 0.6},
			},
		},
		{
			ID: "fan", Title: "Fan", Branch: BranchSpread, Group: "fan", Cost: 35,
			Requires: []string{"twin"},
			Effects: []EffectDef{
				{Stat: StatVolley, Op: OpSet, Value: 5},
				{Stat: StatSpread, Op: OpSet, Value: 0.6},
			},
		},
		{
			ID: "gatling", Title: "Gatling", Branch: BranchSpread, Group: "gatling", Cost: 35,
			Requires: []string{"rapid"},
			Effects: []EffectDef{
				{Stat: StatFireInterval, Op: OpMul, Value: 0.5},
			},
		},
		{
			ID: "freeze", Title: "Freeze", Branch: BranchEffects, Group: "effects", Cost: 25,
			Effects: []EffectDef{
				{Stat: StatFreezeOnHit, Op: OpSet, Value: 1},
			},
		},
		{
			ID: "vortex", Title: "Vortex", Branch: BranchEffects, Group: "effects", Cost: 25,
			Effects: []EffectDef{
				{Stat: StatHomingBias, Op: OpSet, Value: 1},
			},
		},
		{
			ID: "shatter", Title: "Shatter", Branch: BranchEffects, Group: "shatter", Cost: 45,
			Requires: []string{"freeze"},
			Effects: []EffectDef{
				{Stat: StatDamage, Op: OpAdd, Value: 15},
			},
		},
		{
			ID: "singularity", Title: "Singularity", Branch: BranchEffects, Group: "singularity", Cost: 45,
			Requires: []string{"vortex"},
			Effects: []EffectDef{
				{Stat: StatKnockback, Op: OpAdd, Value: 400},
				{Stat: StatPierce, Op: OpAdd, Value: 1},
			},
		},
	}
}
