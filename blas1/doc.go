// Package blas1 provides the dense-vector reductions the factorization
// kernels lean on — Euclidean norm (Nrm2) and index of the largest
// absolute value (Iamax) — behind a small capability registry.
//
// The registry maps a (scalar, layout, device) key to a Backend. Callers
// resolve once at configuration time; when no specialized entry matches,
// a portable pure-Go implementation answers. The default registry wires
// gonum's blas64 kernels for float64 on the CPU, so the common path gets
// a vendor-grade routine while exotic keys still work unoptimized.
//
// Conventions follow reference BLAS: Iamax reports a 1-based index, 0 for
// an empty vector, first occurrence on ties; strided variants read n
// elements at spacing inc from the backing slice.
package blas1
