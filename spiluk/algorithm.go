// SPDX-License-Identifier: MIT
package spiluk

import (
	"fmt"
	"strings"
)

// Algorithm selects how a level's rows are dispatched to the executor.
// It never changes which levels are computed, only the work granularity.
type Algorithm int

const (
	// SeqLevelRP dispatches one row per work item (finest granularity).
	SeqLevelRP Algorithm = iota
	// SeqLevelTP1 dispatches fixed-size row chunks (coarser granularity,
	// better when per-row work is small relative to dispatch overhead).
	SeqLevelTP1
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case SeqLevelRP:
		return "SPILUK_RANGEPOLICY"
	case SeqLevelTP1:
		return "SPILUK_TEAMPOLICY1"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

func (a Algorithm) valid() bool {
	return a == SeqLevelRP || a == SeqLevelTP1
}

// ParseAlgorithm maps a configuration string to an Algorithm. Matching is
// case-insensitive; "SPILUK_DEFAULT" aliases the range policy. Unknown
// names return ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "SPILUK_DEFAULT", "SPILUK_RANGEPOLICY":
		return SeqLevelRP, nil
	case "SPILUK_TEAMPOLICY1":
		return SeqLevelTP1, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
	}
}
