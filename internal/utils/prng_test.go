package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGIsDeterministic(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Range(-5, 5), b.Range(-5, 5))
	}
	assert.Equal(t, int64(42), a.Seed())
	assert.Equal(t, 3.0, a.Range(3, 3))
	assert.NotZero(t, NewPRNGService(0).Seed())
}
