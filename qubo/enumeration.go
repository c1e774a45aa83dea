package qubo

import (
	"cmp"
	"fmt"
	"slices"
)

// Entry is one (assignment, cost) pair of the search space.
type Entry struct {
	Assignment Assignment
	Cost       float64
}

// Enumeration is the full assignment→cost table of a model, in enumeration
// order. It stores one float64 per index; assignments are decoded on demand,
// so the table of a 24-variable model costs 128 MiB rather than gigabytes.
//
// An Enumeration is read-only after Solve returns.
type Enumeration struct {
	n     int
	costs []float64
}

// N returns the number of variables.
func (e *Enumeration) N() int { return e.n }

// Len returns 2ⁿ, the number of entries.
func (e *Enumeration) Len() int { return len(e.costs) }

// Cost returns the cost at enumeration index k.
func (e *Enumeration) Cost(k int) float64 { return e.costs[k] }

// At returns the entry at enumeration index k.
// Errors: ErrInvalidAssignment when k is outside [0, Len()).
func (e *Enumeration) At(k int) (Entry, error) {
	if k < 0 || k >= len(e.costs) {
		return Entry{}, fmt.Errorf("Enumeration.At: %w: index %d of %d", ErrInvalidAssignment, k, len(e.costs))
	}

	return Entry{Assignment: AssignmentFromIndex(uint64(k), e.n), Cost: e.costs[k]}, nil
}

// Costs returns a copy of the cost column.
func (e *Enumeration) Costs() []float64 {
	cp := make([]float64, len(e.costs))
	copy(cp, e.costs)

	return cp
}

// Entries materializes every (assignment, cost) pair.
// Allocates O(2ⁿ·n); intended for small n and diagnostics.
func (e *Enumeration) Entries() []Entry {
	out := make([]Entry, len(e.costs))
	for k, c := range e.costs {
		out[k] = Entry{Assignment: AssignmentFromIndex(uint64(k), e.n), Cost: c}
	}

	return out
}

// Bitstrings returns the bitstring labels in enumeration order
// ("00", "01", "10", "11" for n = 2), the x-axis of an energy landscape.
func (e *Enumeration) Bitstrings() []string {
	out := make([]string, len(e.costs))
	for k := range e.costs {
		out[k] = Bitstring(uint64(k), e.n)
	}

	return out
}

// Rank returns the tie-aware rank of every entry; see Rank.
func (e *Enumeration) Rank(tol float64) []int {
	return Rank(e.costs, tol)
}

// Rank returns, for each position, the number of values strictly cheaper than
// it. Values within tol of the first value of their group count as tied and
// share a rank, so two cost columns order the search space identically (ties
// preserved) exactly when their Rank slices are equal.
// Complexity: O(m log m) for m values.
func Rank(values []float64, tol float64) []int {
	if tol < 0 {
		tol = -tol
	}
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})

	ranks := make([]int, len(values))
	var (
		groupStart float64
		groupRank  int
	)
	for pos, idx := range order {
		if pos == 0 || values[idx]-groupStart > tol {
			groupStart = values[idx]
			groupRank = pos
		}
		ranks[idx] = groupRank
	}

	return ranks
}
