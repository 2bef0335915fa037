package prng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform_Deterministic(t *testing.T) {
	a := Uniform(42, 1000)
	b := Uniform(42, 1000)
	assert.Equal(t, a, b)
}

func TestUniform_SeedSensitivity(t *testing.T) {
	a := Uniform(42, 100)
	b := Uniform(43, 100)
	assert.NotEqual(t, a, b)
}

func TestUniform_Range(t *testing.T) {
	for _, v := range Uniform(7, 10000) {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestUniform_PrefixStable(t *testing.T) {
	// Drawing more values must not change the earlier ones.
	short := Uniform(99, 10)
	long := Uniform(99, 100)
	assert.Equal(t, short, long[:10])
}

func TestRotateLeft(t *testing.T) {
	v := []float64{0, 1, 2, 3, 4}

	assert.Equal(t, []float64{2, 3, 4, 0, 1}, RotateLeft(v, 2))
	assert.Equal(t, []float64{3, 4, 0, 1, 2}, RotateLeft(v, -2))
	assert.Equal(t, v, RotateLeft(v, 0))
	assert.Equal(t, v, RotateLeft(v, 5))
	assert.Equal(t, []float64{2, 3, 4, 0, 1}, RotateLeft(v, 12))
}

func TestRotateLeft_Empty(t *testing.T) {
	assert.Nil(t, RotateLeft(nil, 3))
	assert.Nil(t, RotateLeft([]float64{}, 1))
}

func TestRotateLeft_RoundTrip(t *testing.T) {
	v := Uniform(5, 17)
	assert.Equal(t, v, RotateLeft(RotateLeft(v, 5), -5))
}
