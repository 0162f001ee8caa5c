package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum mat.VecDense, used for per-face and per-node tag data.
type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v",
				n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{v}
	return
}

func (v Vector) IsEmpty() bool { return v.V == nil }

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int) {
	if v.IsEmpty() {
		return 0, 0
	}
	return v.V.Dims()
}
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }

func (v Vector) Len() int {
	if v.IsEmpty() {
		return 0
	}
	return v.V.Len()
}

func (v Vector) Data() []float64 {
	if v.IsEmpty() {
		return nil
	}
	return v.V.RawVector().Data
}

func (v Vector) Min() (min float64) {
	data := v.Data()
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	data := v.Data()
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}
