package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthNeverGrows(t *testing.T) {
	h := NewHealth(100)
	h.Damage(-20)
	h.Damage(0)
	assert.Equal(t, 100.0, h.Current)

	h.Damage(40)
	assert.Equal(t, 60.0, h.Current)
	assert.InDelta(t, 0.6, h.Ratio(), 1e-9)
	assert.False(t, h.IsDead())

	h.Damage(100)
	assert.True(t, h.IsDead())
	assert.Equal(t, 0.0, h.Ratio())
}

func TestHitLedgerInsertOnce(t *testing.T) {
	l := NewHitLedger()
	assert.True(t, l.Insert(7))
	assert.False(t, l.Insert(7))
	assert.True(t, l.Contains(7))
	assert.False(t, l.Contains(8))
	assert.Equal(t, 1, l.Len())
}
