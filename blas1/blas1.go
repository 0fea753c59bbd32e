package blas1

import "fmt"

// Nrm2 returns the Euclidean norm of x through the default registry's
// contiguous float64 backend.
func Nrm2(x []float64) float64 {
	b, _ := DefaultRegistry().Resolve(Key{Float64, Contiguous, CPU})
	return b.Nrm2(x, len(x), 1)
}

// Iamax returns the 1-based index of the first element of x with the
// largest absolute value, 0 for an empty slice.
func Iamax(x []float64) int {
	b, _ := DefaultRegistry().Resolve(Key{Float64, Contiguous, CPU})
	return b.Iamax(x, len(x), 1)
}

// checkStride validates a (n, inc) vector description against its backing
// slice.
func checkStride(x []float64, n, inc int) error {
	if n < 0 || inc < 1 {
		return fmt.Errorf("n=%d inc=%d: %w", n, inc, ErrBadStride)
	}
	if n > 0 && len(x) < (n-1)*inc+1 {
		return fmt.Errorf("len=%d n=%d inc=%d: %w", len(x), n, inc, ErrBadStride)
	}
	return nil
}

// Nrm2Inc is the strided variant of Nrm2: the norm of the n elements at
// spacing inc inside x.
func Nrm2Inc(x []float64, n, inc int) (float64, error) {
	if err := checkStride(x, n, inc); err != nil {
		return 0, fmt.Errorf("Nrm2Inc: %w", err)
	}
	b, _ := DefaultRegistry().Resolve(Key{Float64, Strided, CPU})

	return b.Nrm2(x, n, inc), nil
}

// IamaxInc is the strided variant of Iamax; indices count logical
// elements, not slice positions.
func IamaxInc(x []float64, n, inc int) (int, error) {
	if err := checkStride(x, n, inc); err != nil {
		return 0, fmt.Errorf("IamaxInc: %w", err)
	}
	b, _ := DefaultRegistry().Resolve(Key{Float64, Strided, CPU})

	return b.Iamax(x, n, inc), nil
}
