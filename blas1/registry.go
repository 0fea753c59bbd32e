package blas1

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNilBackend - Register received a nil implementation.
	ErrNilBackend = errors.New("blas1: nil backend")
	// ErrNoBackend - Resolve found neither a registered entry nor an
	// applicable fallback for the key.
	ErrNoBackend = errors.New("blas1: no backend for key")
	// ErrBadStride - strided call with n < 0 or inc < 1, or a backing
	// slice too short for the described vector.
	ErrBadStride = errors.New("blas1: invalid stride description")
)

// Scalar identifies the element type a backend computes on.
type Scalar int

const (
	Float64 Scalar = iota
	Float32
)

// Layout describes how vector elements sit in memory.
type Layout int

const (
	// Contiguous - elements packed back to back (inc == 1).
	Contiguous Layout = iota
	// Strided - elements spaced by an arbitrary positive increment.
	Strided
)

// Device is the execution target class of a backend.
type Device int

const (
	CPU Device = iota
	Accelerator
)

// Key addresses one registry slot.
type Key struct {
	Scalar Scalar
	Layout Layout
	Device Device
}

// Backend computes the BLAS-1 reductions for one key. n and inc describe
// the logical vector inside x: element i lives at x[i*inc].
type Backend interface {
	// Nrm2 returns the Euclidean norm without intermediate overflow for
	// inputs whose squares would not fit a float64.
	Nrm2(x []float64, n, inc int) float64
	// Iamax returns the 1-based index of the first element with the
	// largest absolute value, 0 when n == 0.
	Iamax(x []float64, n, inc int) int
}

// Registry resolves reduction backends by capability key. Safe for
// concurrent use; registration is expected at configuration time, lookup
// from anywhere.
type Registry struct {
	mu    sync.RWMutex
	table map[Key]Backend
}

// NewRegistry returns an empty registry (portable fallback still applies
// on Resolve).
func NewRegistry() *Registry {
	return &Registry{table: make(map[Key]Backend)}
}

// Register installs b for key k, replacing any previous entry. A nil
// backend is rejected with ErrNilBackend.
func (r *Registry) Register(k Key, b Backend) error {
	if b == nil {
		return fmt.Errorf("Register(%+v): %w", k, ErrNilBackend)
	}
	r.mu.Lock()
	r.table[k] = b
	r.mu.Unlock()

	return nil
}

// Resolve returns the backend registered for k, or the portable float64
// fallback when nothing specialized matches. Keys outside the fallback's
// reach (non-float64 scalars) fail with ErrNoBackend.
func (r *Registry) Resolve(k Key) (Backend, error) {
	r.mu.RLock()
	b, ok := r.table[k]
	r.mu.RUnlock()
	if ok {
		return b, nil
	}
	if k.Scalar == Float64 {
		return portableBackend{}, nil
	}

	return nil, fmt.Errorf("Resolve(%+v): %w", k, ErrNoBackend)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// DefaultRegistry returns the shared registry with the gonum float64 CPU
// backend pre-registered for both layouts. Built on first use.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		// Registration of a known-good backend cannot fail.
		_ = defaultReg.Register(Key{Float64, Contiguous, CPU}, gonumBackend{})
		_ = defaultReg.Register(Key{Float64, Strided, CPU}, gonumBackend{})
	})

	return defaultReg
}
