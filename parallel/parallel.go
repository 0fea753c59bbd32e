package parallel

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrBadRange indicates a negative range length or a non-positive grain.
var ErrBadRange = errors.New("parallel: invalid range")

// For runs fn over contiguous blocks covering [0, n), each block at least
// grain indices long (the final block may be shorter), on up to GOMAXPROCS
// goroutines. It returns after every block finished (barrier semantics).
// The first non-nil error cancels the remaining blocks via the group
// context and is returned.
func For(ctx context.Context, n, grain int, fn func(lo, hi int) error) error {
	// 1) Validate the range domain.
	if n < 0 || grain < 1 {
		return fmt.Errorf("For: n=%d grain=%d: %w", n, grain, ErrBadRange)
	}
	if n == 0 {
		return nil
	}
	// 2) Tiny ranges run inline; spawning would cost more than the work.
	if n <= grain {
		return fn(0, n)
	}

	// 3) Fan the blocks out over an errgroup bounded by GOMAXPROCS.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < n; lo += grain {
		hi := lo + grain
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(lo, hi)
		})
	}

	// 4) Barrier: no caller proceeds until every block completed.
	return g.Wait()
}

// Reduce runs fn over blocks of [0, n) like For, then joins the per-block
// partial results sequentially with join, starting from identity. The
// reduction order over blocks is unspecified; join must be associative and
// commutative for a deterministic result.
func Reduce[T any](ctx context.Context, n, grain int, identity T, fn func(lo, hi int, acc T) (T, error), join func(a, b T) T) (T, error) {
	if n < 0 || grain < 1 {
		return identity, fmt.Errorf("Reduce: n=%d grain=%d: %w", n, grain, ErrBadRange)
	}
	if n == 0 {
		return identity, nil
	}
	if n <= grain {
		return fn(0, n, identity)
	}

	nblocks := (n + grain - 1) / grain
	partial := make([]T, nblocks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for b := 0; b < nblocks; b++ {
		b := b
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			lo := b * grain
			hi := lo + grain
			if hi > n {
				hi = n
			}
			acc, err := fn(lo, hi, identity)
			if err != nil {
				return err
			}
			partial[b] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return identity, err
	}

	out := identity
	for _, p := range partial {
		out = join(out, p)
	}

	return out, nil
}
