// internal/component/weapon.go
package component

// MinFireInterval - нижняя граница интервала стрельбы, чтобы апгрейды не выродили таймер.
const MinFireInterval = 0.05

// WeaponState - изменяемые характеристики оружия на время забега.
// Меняются только деревом навыков; сбрасываются при возврате в меню.
type WeaponState struct {
	Damage       float64
	Pierce       int
	Knockback    float64
	SpreadAngle  float64 // Ширина веера в радианах
	Volley       int     // Снарядов за выстрел
	FireInterval float64 // Секунд между выстрелами
	Archetype    Archetype
	HomingBias   bool // Враги притягиваются к летящим снарядам
	FreezeOnHit  bool // Попадание обездвиживает врага
}

// Stats возвращает боевые характеристики для нового снаряда.
func (w WeaponState) Stats() CombatStats {
	return CombatStats{
		Damage:    w.Damage,
		Pierce:    w.Pierce,
		Knockback: w.Knockback,
	}
}

// Normalize приводит состояние к инвариантам: pierce >= 1, volley >= 1,
// неотрицательные knockback и spread, интервал не меньше MinFireInterval.
func (w WeaponState) Normalize() WeaponState {
	if w.Damage <= 0 {
		w.Damage = 1
	}
	if w.Pierce < 1 {
		w.Pierce = 1
	}
	if w.Volley < 1 {
		w.Volley = 1
	}
	if w.Knockback < 0 {
		w.Knockback = 0
	}
	if w.SpreadAngle < 0 {
		w.SpreadAngle = 0
	}
	if w.FireInterval < MinFireInterval {
		w.FireInterval = MinFireInterval
	}
	return w
}
