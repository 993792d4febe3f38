// internal/component/projectile.go
package component

// Archetype - тип снаряда.
type Archetype int

const (
	ArchetypeRegular Archetype = iota
	ArchetypeRocket
	ArchetypeSawBlade
)

func (a Archetype) String() string {
	switch a {
	case ArchetypeRegular:
		return "regular"
	case ArchetypeRocket:
		return "rocket"
	case ArchetypeSawBlade:
		return "sawblade"
	default:
		return "unknown"
	}
}

// ParseArchetype разбирает имя архетипа. Пустая строка означает обычный снаряд.
func ParseArchetype(name string) (Archetype, bool) {
	switch name {
	case "", "regular":
		return ArchetypeRegular, true
	case "rocket":
		return ArchetypeRocket, true
	case "sawblade":
		return ArchetypeSawBlade, true
	default:
		return ArchetypeRegular, false
	}
}

// Bullet представляет летящий снаряд.
type Bullet struct {
	Archetype Archetype
	Stats     CombatStats
	Ledger    *HitLedger
}
