package skilltree

import (
	"fmt"
	"math"

	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/defs"
)

// Effect - чистая функция: старое состояние оружия -> новое.
type Effect func(component.WeaponState) component.WeaponState

// compileEffects собирает данные эффектов в один Effect, применяемый по порядку.
func compileEffects(effects []defs.EffectDef) (Effect, error) {
	steps := make([]Effect, 0, len(effects))
	for i, e := range effects {
		step, err := compileEffect(e)
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		steps = append(steps, step)
	}
	return func(w component.WeaponState) component.WeaponState {
		for _, step := range steps {
			w = step(w)
		}
		return w.Normalize()
	}, nil
}

func compileEffect(e defs.EffectDef) (Effect, error) {
	switch e.Stat {
	case defs.StatDamage:
		return floatEffect(e, func(w *component.WeaponState) *float64 { return &w.Damage })
	case defs.StatKnockback:
		return floatEffect(e, func(w *component.WeaponState) *float64 { return &w.Knockback })
	case defs.StatSpread:
		return floatEffect(e, func(w *component.WeaponState) *float64 { return &w.SpreadAngle })
	case defs.StatFireInterval:
		return floatEffect(e, func(w *component.WeaponState) *float64 { return &w.FireInterval })
	case defs.StatPierce:
		return intEffect(e, func(w *component.WeaponState) *int { return &w.Pierce })
	case defs.StatVolley:
		return intEffect(e, func(w *component.WeaponState) *int { return &w.Volley })
	case defs.StatHomingBias:
		return boolEffect(e, func(w *component.WeaponState) *bool { return &w.HomingBias })
	case defs.StatFreezeOnHit:
		return boolEffect(e, func(w *component.WeaponState) *bool { return &w.FreezeOnHit })
	case defs.StatArchetype:
		if e.Op != defs.OpSet {
			return nil, fmt.Errorf("archetype supports only %q, got %q", defs.OpSet, e.Op)
		}
		a, ok := component.ParseArchetype(e.Archetype)
		if !ok {
			return nil, fmt.Errorf("unknown archetype %q", e.Archetype)
		}
		return func(w component.WeaponState) component.WeaponState {
			w.Archetype = a
			return w
		}, nil
	default:
		return nil, fmt.Errorf("unknown stat %q", e.Stat)
	}
}

func floatEffect(e defs.EffectDef, field func(*component.WeaponState) *float64) (Effect, error) {
	op, err := numericOp(e.Op)
	if err != nil {
		return nil, err
	}
	return func(w component.WeaponState) component.WeaponState {
		p := field(&w)
		*p = op(*p, e.Value)
		return w
	}, nil
}

func intEffect(e defs.EffectDef, field func(*component.WeaponState) *int) (Effect, error) {
	op, err := numericOp(e.Op)
	if err != nil {
		return nil, err
	}
	return func(w component.WeaponState) component.WeaponState {
		p := field(&w)
		*p = int(math.Round(op(float64(*p), e.Value)))
		return w
	}, nil
}

func boolEffect(e defs.EffectDef, field func(*component.WeaponState) *bool) (Effect, error) {
	if e.Op != defs.OpSet {
		return nil, fmt.Errorf("%s supports only %q, got %q", e.Stat, defs.OpSet, e.Op)
	}
	return func(w component.WeaponState) component.WeaponState {
		*field(&w) = e.Value != 0
		return w
	}, nil
}

func numericOp(op defs.Op) (func(cur, v float64) float64, error) {
	switch op {
	case defs.OpAdd:
		return func(cur, v float64) float64 { return cur + v }, nil
	case defs.OpMul:
		return func(cur, v float64) float64 { return cur * v }, nil
	case defs.OpSet:
		return func(_, v float64) float64 { return v }, nil
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}
