// File: blas1/example_test.go
package blas1_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/blas1"
)

// ExampleNrm2 norms a 3-4 pair.
func ExampleNrm2() {
	fmt.Println(blas1.Nrm2([]float64{3, 4}))
	// Output:
	// 5
}

// ExampleIamax shows the 1-based, sign-blind convention.
func ExampleIamax() {
	fmt.Println(blas1.Iamax([]float64{1.5, -8, 3}))
	fmt.Println(blas1.Iamax(nil))
	// Output:
	// 2
	// 0
}
