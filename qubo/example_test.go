package qubo_test

import (
	"fmt"

	"github.com/katalvlaran/lvqubo/qubo"
)

// ExampleSolve minimizes the reference problem x0 + 4·x1 − 4·x0·x1 and
// prints the full energy landscape.
func ExampleSolve() {
	m, err := qubo.NewModel([][]float64{
		{1, -2},
		{-2, 4},
	})
	if err != nil {
		panic(err)
	}

	out, table, err := qubo.Solve(m)
	if err != nil {
		panic(err)
	}
	fmt.Println("best:", out.Best, "cost:", out.MinCost)
	for _, e := range table.Entries() {
		fmt.Println(e.Assignment, e.Cost)
	}
	// Output:
	// best: 00 cost: 0
	// 00 0
	// 01 4
	// 10 1
	// 11 1
}
