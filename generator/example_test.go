// SPDX-License-Identifier: MIT

package generator_test

import (
	"fmt"

	"github.com/katalvlaran/polygen/generator"
)

func ExampleGenerate() {
	inst, err := generator.Generate(10, generator.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("baseline:", inst.Baseline)
	fmt.Println("row totals sum to δ+m:", inst.Delta+inst.M == sum(inst.RowTotals))
	// Output:
	// baseline: 10
	// row totals sum to δ+m: true
}

func ExampleBaselineFromTotals() {
	fmt.Println(generator.BaselineFromTotals([]int{3, 2, 1}))
	// Output: 3
}
