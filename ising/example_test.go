package ising_test

import (
	"fmt"

	"github.com/katalvlaran/lvqubo/ising"
	"github.com/katalvlaran/lvqubo/qubo"
)

// ExampleEncode encodes x0 + x1 − 2·x0·x1 and lists its Pauli terms.
func ExampleEncode() {
	m, err := qubo.NewModel([][]float64{
		{1, -1},
		{-1, 1},
	})
	if err != nil {
		panic(err)
	}
	h, err := ising.Encode(m)
	if err != nil {
		panic(err)
	}
	for _, p := range h.PauliList(ising.BigEndian) {
		fmt.Printf("%s %+g\n", p.Label, p.Coeff)
	}
	fmt.Println("offset", h.Offset)
	// Output:
	// ZZ -0.5
	// offset 0.5
}
