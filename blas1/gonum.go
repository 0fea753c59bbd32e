package blas1

import "gonum.org/v1/gonum/blas/blas64"

// gonumBackend adapts gonum's reference-quality float64 kernels to the
// Backend interface. Registered in DefaultRegistry for CPU keys.
type gonumBackend struct{}

func (gonumBackend) Nrm2(x []float64, n, inc int) float64 {
	if n == 0 {
		return 0
	}
	return blas64.Nrm2(blas64.Vector{N: n, Inc: inc, Data: x})
}

func (gonumBackend) Iamax(x []float64, n, inc int) int {
	if n == 0 {
		return 0
	}
	// gonum reports a 0-based first-maximum index; BLAS convention is
	// 1-based with 0 meaning empty.
	return blas64.Iamax(blas64.Vector{N: n, Inc: inc, Data: x}) + 1
}
