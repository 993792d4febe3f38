package skilltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tank-shmup/internal/component"
	"go-tank-shmup/internal/defs"
)

func baseWeapon() component.WeaponState {
	return component.WeaponState{
		Damage:       50,
		Pierce:       1,
		Knockback:    500,
		FireInterval: 0.4,
		Volley:       1,
	}
}

func newDefaultTree(t *testing.T, h *History) *Tree {
	t.Helper()
	tree, err := New(defs.DefaultUpgrades(), h)
	require.NoError(t, err)
	return tree
}

func TestPurchaseRejectedWithoutFunds(t *testing.T) {
	tree := newDefaultTree(t, nil)
	funds := uint32(0)
	weapon := baseWeapon()

	err := tree.Purchase("rocket", &funds, &weapon)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	assert.Equal(t, uint32(0), funds)
	assert.Equal(t, baseWeapon(), weapon)
	st, _ := tree.Status("rocket")
	assert.Equal(t, StatusAvailable, st)
}

func TestPurchaseLocksGroupSiblings(t *testing.T) {
	tree := newDefaultTree(t, nil)
	funds := uint32(20)
	weapon := baseWeapon()

	require.NoError(t, tree.Purchase("rocket", &funds, &weapon))

	assert.Equal(t, uint32(0), funds)
	st, _ := tree.Status("rocket")
	assert.Equal(t, StatusPurchased, st)
	st, _ = tree.Status("sawblade")
	assert.Equal(t, StatusLocked, st)

	assert.Equal(t, component.ArchetypeRocket, weapon.Archetype)
	assert.InDelta(t, 100, weapon.Damage, 1e-9)
	assert.InDelta(t, 800, weapon.Knockback, 1e-9)

	// Сиблинг заблокирован даже при достаточных средствах
	funds = 1000
	err := tree.Purchase("sawblade", &funds, &weapon)
	require.ErrorIs(t, err, ErrLocked)
	assert.Equal(t, uint32(1000), funds)
}

func TestPurchaseUnlocksDependents(t *testing.T) {
	tree := newDefaultTree(t, nil)
	funds := uint32(100)
	weapon := baseWeapon()

	st, _ := tree.Status("warhead")
	require.Equal(t, StatusLocked, st)

	require.NoError(t, tree.Purchase("rocket", &funds, &weapon))
	st, _ = tree.Status("warhead")
	assert.Equal(t, StatusAvailable, st)
	st, _ = tree.Status("razor")
	assert.Equal(t, StatusLocked, st)

	require.NoError(t, tree.Purchase("warhead", &funds, &weapon))
	assert.Equal(t, uint32(40), funds)
}

func TestPurchaseTwiceAndUnknown(t *testing.T) {
	tree := newDefaultTree(t, nil)
	funds := uint32(100)
	weapon := baseWeapon()

	require.NoError(t, tree.Purchase("freeze", &funds, &weapon))
	assert.True(t, weapon.FreezeOnHit)

	require.ErrorIs(t, tree.Purchase("freeze", &funds, &weapon), ErrAlreadyPurchased)
	require.ErrorIs(t, tree.Purchase("nope", &funds, &weapon), ErrNotFound)
	assert.Equal(t, uint32(75), funds)
}

func TestRebuildFromHistoryIsIdempotent(t *testing.T) {
	h := NewHistory()
	tree := newDefaultTree(t, h)
	funds := uint32(100)
	weapon := baseWeapon()
	require.NoError(t, tree.Purchase("twin", &funds, &weapon))
	require.NoError(t, tree.Purchase("fan", &funds, &weapon))

	first := newDefaultTree(t, h)
	second := newDefaultTree(t, h)
	assert.Equal(t, tree.Nodes(), first.Nodes())
	assert.Equal(t, first.Nodes(), second.Nodes())

	st, _ := first.Status("rapid")
	assert.Equal(t, StatusLocked, st)
	st, _ = first.Status("gatling")
	assert.Equal(t, StatusLocked, st)

	h.Clear()
	fresh := newDefaultTree(t, h)
	for _, n := range fresh.Nodes() {
		if len(n.Requires) == 0 {
			assert.Equal(t, StatusAvailable, n.Status, n.ID)
		} else {
			assert.Equal(t, StatusLocked, n.Status, n.ID)
		}
	}
}

func TestEffectsKeepWeaponInvariants(t *testing.T) {
	tree := newDefaultTree(t, nil)
	funds := uint32(1000)
	weapon := baseWeapon()

	require.NoError(t, tree.Purchase("rapid", &funds, &weapon))
	require.NoError(t, tree.Purchase("gatling", &funds, &weapon))
	assert.InDelta(t, 0.12, weapon.FireInterval, 1e-9)

	require.NoError(t, tree.Purchase("sawblade", &funds, &weapon))
	require.NoError(t, tree.Purchase("razor", &funds, &weapon))
	assert.Equal(t, 6, weapon.Pierce)
	assert.GreaterOrEqual(t, weapon.Volley, 1)
}

func TestFireIntervalClampedToMinimum(t *testing.T) {
	upgrades := []defs.UpgradeDefinition{{
		ID: "overclock", Cost: 1,
		Effects: []defs.EffectDef{{Stat: defs.StatFireInterval, Op: defs.OpSet, Value: 0}},
	}}
	tree, err := New(upgrades, nil)
	require.NoError(t, err)

	funds := uint32(1)
	weapon := baseWeapon()
	require.NoError(t, tree.Purchase("overclock", &funds, &weapon))
	assert.Equal(t, component.MinFireInterval, weapon.FireInterval)
}

func TestNewRejectsInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		upgrades []defs.UpgradeDefinition
	}{
		{"duplicate id", []defs.UpgradeDefinition{{ID: "a", Cost: 1}, {ID: "a", Cost: 1}}},
		{"zero cost", []defs.UpgradeDefinition{{ID: "a"}}},
		{"unknown require", []defs.UpgradeDefinition{{ID: "a", Cost: 1, Requires: []string{"b"}}}},
		{"cycle", []defs.UpgradeDefinition{
			{ID: "a", Cost: 1, Requires: []string{"b"}},
			{ID: "b", Cost: 1, Requires: []string{"a"}},
		}},
		{"unknown stat", []defs.UpgradeDefinition{{ID: "a", Cost: 1,
			Effects: []defs.EffectDef{{Stat: "mana", Op: defs.OpAdd, Value: 1}}}}},
		{"bad archetype", []defs.UpgradeDefinition{{ID: "a", Cost: 1,
			Effects: []defs.EffectDef{{Stat: defs.StatArchetype, Op: defs.OpSet, Archetype: "laser"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.upgrades, nil)
			assert.Error(t, err)
		})
	}
}

func TestBranchesKeepDefinitionOrder(t *testing.T) {
	tree := newDefaultTree(t, nil)
	names, columns := tree.Branches()
	assert.Equal(t, []string{defs.BranchProjectile, defs.BranchSpread, defs.BranchEffects}, names)
	assert.Len(t, columns[defs.BranchSpread], 4)
	assert.ElementsMatch(t, []string{"sawblade"}, tree.Siblings("rocket"))
}
