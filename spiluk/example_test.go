// File: spiluk/example_test.go
package spiluk_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlsparse/builder"
	"github.com/katalvlaran/lvlsparse/crs"
	"github.com/katalvlaran/lvlsparse/spiluk"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Symbolic
////////////////////////////////////////////////////////////////////////////////

// ExampleHandle_Symbolic schedules a 5×5 lower-triangular pattern where
// rows 0, 1 and 3 are diagonal-only, row 2 depends on rows 0–1 and row 4
// depends on all earlier rows.
func ExampleHandle_Symbolic() {
	a, _ := crs.New(5, 5,
		[]int{0, 1, 2, 5, 6, 11},
		[]int{0, 1, 0, 1, 2, 3, 0, 1, 2, 3, 4},
		[]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1})

	h, _ := spiluk.NewHandle(spiluk.SeqLevelRP, 5, 11, 11)
	if err := h.Symbolic(a); err != nil {
		fmt.Println("symbolic:", err)
		return
	}

	nlev, _ := h.NumLevels()
	ptr, _ := h.LevelPtr()
	idx, _ := h.LevelIdx()

	fmt.Println("levels:", nlev)
	fmt.Println("levelPtr:", ptr)
	for k := 0; k < nlev; k++ {
		fmt.Printf("level %d rows: %v\n", k, idx[ptr[k]:ptr[k+1]])
	}

	// Output:
	// levels: 3
	// levelPtr: [0 3 4 5]
	// level 0 rows: [0 1 3]
	// level 1 rows: [2]
	// level 2 rows: [4]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Sweep
////////////////////////////////////////////////////////////////////////////////

// ExampleSweep walks a dependency chain — each level holds one row, so the
// visit order is fully deterministic.
func ExampleSweep() {
	l, _ := builder.Triangular(builder.Lower, 4)

	h, _ := spiluk.NewHandle(spiluk.SeqLevelRP, 4, 10, 4)
	if err := h.Symbolic(l); err != nil {
		fmt.Println("symbolic:", err)
		return
	}

	_ = spiluk.Sweep(context.Background(), h, func(row int) error {
		fmt.Println("row", row)
		return nil
	})

	// Output:
	// row 0
	// row 1
	// row 2
	// row 3
}
