package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorBasics(t *testing.T) {
	v := NewVector(4, []float64{3, 1, 4, 1.5})
	assert.False(t, v.IsEmpty())
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 4.0, v.AtVec(2))
	assert.Equal(t, 1.0, v.Min())
	assert.Equal(t, 4.0, v.Max())
	assert.Equal(t, []float64{3, 1, 4, 1.5}, v.Data())
}

func TestVectorEmpty(t *testing.T) {
	var v Vector
	assert.True(t, v.IsEmpty())
	assert.Zero(t, v.Len())
	assert.Nil(t, v.Data())
}

func TestVectorAllocationMismatch(t *testing.T) {
	require.Panics(t, func() {
		NewVector(3, []float64{1, 2})
	})
}
