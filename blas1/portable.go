package blas1

import "math"

// portableBackend is the pure-Go fallback: correct for every layout and
// device-less execution, optimized for none.
type portableBackend struct{}

// Nrm2 uses the classical scale/ssq recurrence so that vectors with
// components near the float64 overflow threshold still norm correctly.
func (portableBackend) Nrm2(x []float64, n, inc int) float64 {
	switch n {
	case 0:
		return 0
	case 1:
		return math.Abs(x[0])
	}

	scale, ssq := 0.0, 1.0
	for i := 0; i < n; i++ {
		v := x[i*inc]
		if v == 0 {
			continue
		}
		a := math.Abs(v)
		if scale < a {
			r := scale / a
			ssq = 1 + ssq*r*r
			scale = a
		} else {
			r := a / scale
			ssq += r * r
		}
	}

	return scale * math.Sqrt(ssq)
}

// Iamax scans left to right keeping the first maximum (reference BLAS
// tie-breaking), returning a 1-based index.
func (portableBackend) Iamax(x []float64, n, inc int) int {
	if n == 0 {
		return 0
	}

	best, bestAbs := 0, math.Abs(x[0])
	for i := 1; i < n; i++ {
		if a := math.Abs(x[i*inc]); a > bestAbs {
			best, bestAbs = i, a
		}
	}

	return best + 1
}
