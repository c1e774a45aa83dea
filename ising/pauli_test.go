package ising_test

import (
	"testing"

	"github.com/katalvlaran/lvqubo/ising"
	"github.com/stretchr/testify/require"
)

// TestPauliList renders both bit orders.
func TestPauliList(t *testing.T) {
	h := ising.Hamiltonian{NumQubits: 3, Terms: []ising.Term{{0, 0, 1}, {2, 2, 2}, {0, 1, 3}}}

	require.Equal(t, []ising.PauliTerm{
		{Label: "ZII", Coeff: 1},
		{Label: "IIZ", Coeff: 2},
		{Label: "ZZI", Coeff: 3},
	}, h.PauliList(ising.BigEndian))

	require.Equal(t, []ising.PauliTerm{
		{Label: "IIZ", Coeff: 1},
		{Label: "ZII", Coeff: 2},
		{Label: "IZZ", Coeff: 3},
	}, h.PauliList(ising.LittleEndian))

	require.Equal(t, "III", h.IdentityLabel())
	require.Equal(t, "little-endian", ising.LittleEndian.String())
}
