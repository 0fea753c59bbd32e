// SPDX-License-Identifier: MIT
// Package spiluk: functional options for handle construction.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     NewHandle itself never panics.
//   - Tuning hints (team/vector size) are opaque to the symbolic phase;
//     only numeric-phase executors interpret them.

package spiluk

// Named defaults (no magic numbers at call sites).
const (
	// defaultFillLevel selects ILU(0): keep the original pattern, no fill.
	defaultFillLevel = 0
	// defaultTeamSize / defaultVectorSize mean "let the executor decide".
	defaultTeamSize   = 0
	defaultVectorSize = 0
	// defaultChunkDivisor splits a level across roughly this many chunks
	// per processor when no explicit rows-per-chunk is configured.
	defaultChunkDivisor = 4
)

// Internal panic messages (option constructors only).
const (
	panicFillNegative  = "spiluk: WithFillLevel: negative fill level"
	panicTeamSizeBad   = "spiluk: WithTeamSize: need size >= 1"
	panicVectorSizeBad = "spiluk: WithVectorSize: need size >= 1"
	panicChunkBad      = "spiluk: WithRowsPerChunk: need rows >= 1"
)

// Option customizes a Handle at construction time.
type Option func(*config)

type config struct {
	fillLevel    int // k in ILU(k)
	teamSize     int // executor hint, 0 = auto
	vectorSize   int // executor hint, 0 = auto
	rowsPerChunk int // TP1 chunk size, 0 = derive per level
}

func defaultConfig() config {
	return config{
		fillLevel:    defaultFillLevel,
		teamSize:     defaultTeamSize,
		vectorSize:   defaultVectorSize,
		rowsPerChunk: 0,
	}
}

func gatherOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithFillLevel sets k for ILU(k) fill prediction. k=0 keeps the original
// pattern; each increment admits one more generation of fill entries.
// Panics on negative k.
func WithFillLevel(k int) Option {
	if k < 0 {
		panic(panicFillNegative)
	}
	return func(c *config) {
		c.fillLevel = k
	}
}

// WithTeamSize records a team-size hint for numeric-phase executors.
// Panics unless size >= 1.
func WithTeamSize(size int) Option {
	if size < 1 {
		panic(panicTeamSizeBad)
	}
	return func(c *config) {
		c.teamSize = size
	}
}

// WithVectorSize records a vector-length hint for numeric-phase executors.
// Panics unless size >= 1.
func WithVectorSize(size int) Option {
	if size < 1 {
		panic(panicVectorSizeBad)
	}
	return func(c *config) {
		c.vectorSize = size
	}
}

// WithRowsPerChunk fixes the TP1 chunk size instead of deriving it from
// the level size and GOMAXPROCS. Panics unless rows >= 1.
func WithRowsPerChunk(rows int) Option {
	if rows < 1 {
		panic(panicChunkBad)
	}
	return func(c *config) {
		c.rowsPerChunk = rows
	}
}
