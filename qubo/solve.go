package qubo

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Outcome is the optimum reported by Solve.
type Outcome struct {
	// Best is the first minimum-cost assignment in enumeration order.
	Best Assignment

	// MinCost is the minimum of xᵀQx over {0,1}ⁿ.
	MinCost float64

	// Index is the enumeration index of Best.
	Index uint64

	// Ties counts the assignments whose cost equals MinCost exactly (≥ 1).
	Ties int
}

// incumbent is the running best of one enumeration chunk.
type incumbent struct {
	index uint64
	cost  float64
	ties  int
}

// better reports whether c beats the incumbent: strictly smaller cost, or
// equal cost at a lower index. Used only for merging chunk results; inside a
// chunk indices ascend, so a strict comparison alone keeps the first minimum.
func (inc incumbent) better(c incumbent) bool {
	if c.cost != inc.cost {
		return c.cost < inc.cost
	}

	return c.index < inc.index
}

// Solve enumerates all 2ⁿ assignments of m and returns the global minimum and,
// unless WithoutTable is given, the full table in enumeration order.
//
// Contract:
//   - m must be a non-nil model with n ≥ 1 (ErrInvalidModel otherwise).
//   - n must not exceed the configured cap, nor MaxTableVariables while the
//     table is recorded (ErrSearchSpaceTooLarge), checked before any allocation.
//   - The incumbent starts at +Inf and is replaced only on a strictly smaller
//     cost, so the lowest index wins ties; the parallel path merges chunk
//     incumbents with the same rule and is bit-identical to the serial path.
//
// Complexity: O(2ⁿ·n²) time, O(2ⁿ) memory with the table, O(n·workers) without.
func Solve(m *Model, opts ...Option) (Outcome, *Enumeration, error) {
	if err := validModel(m); err != nil {
		return Outcome{}, nil, quboErrorf("Solve", err)
	}
	o := gatherOptions(opts...)
	if m.n > o.MaxVariables {
		return Outcome{}, nil, fmt.Errorf("Solve: %w: n=%d exceeds cap %d", ErrSearchSpaceTooLarge, m.n, o.MaxVariables)
	}
	if o.RecordTable && m.n > MaxTableVariables {
		return Outcome{}, nil, fmt.Errorf("Solve: %w: n=%d exceeds table cap %d, use WithoutTable",
			ErrSearchSpaceTooLarge, m.n, MaxTableVariables)
	}

	total := uint64(1) << uint(m.n)
	var costs []float64
	if o.RecordTable {
		costs = make([]float64, total)
	}

	workers := uint64(o.Workers)
	if workers > total {
		workers = total
	}

	var best incumbent
	if workers <= 1 {
		best = m.scan(0, total, costs)
	} else {
		best = m.scanParallel(total, workers, costs)
	}

	out := Outcome{
		Best:    AssignmentFromIndex(best.index, m.n),
		MinCost: best.cost,
		Index:   best.index,
		Ties:    best.ties,
	}
	if costs == nil {
		return out, nil, nil
	}

	return out, &Enumeration{n: m.n, costs: costs}, nil
}

// scan evaluates indices [lo, hi) in ascending order. When costs is non-nil
// every cost is recorded at its own index.
func (m *Model) scan(lo, hi uint64, costs []float64) incumbent {
	buf := make([]int, 0, m.n)
	inc := incumbent{index: lo, cost: math.Inf(1)}
	var (
		k uint64
		c float64
	)
	for k = lo; k < hi; k++ {
		c = m.costOfIndex(k, buf)
		if costs != nil {
			costs[k] = c
		}
		switch {
		case c < inc.cost: // strict: first occurrence wins
			inc = incumbent{index: k, cost: c, ties: 1}
		case c == inc.cost:
			inc.ties++
		}
	}

	return inc
}

// scanParallel splits [0, total) into contiguous chunks, scans them on an
// errgroup and merges the chunk incumbents by (cost, index).
// Chunks write disjoint ranges of costs, so no locking is needed.
func (m *Model) scanParallel(total, workers uint64, costs []float64) incumbent {
	chunk := (total + workers - 1) / workers
	results := make([]incumbent, workers)

	var g errgroup.Group
	var w uint64
	for w = 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		slot := w
		if lo >= hi {
			results[slot] = incumbent{index: lo, cost: math.Inf(1)}
			continue
		}
		g.Go(func() error {
			results[slot] = m.scan(lo, hi, costs)
			return nil
		})
	}
	_ = g.Wait() // chunk scans cannot fail

	best := results[0]
	for _, r := range results[1:] {
		if best.better(r) {
			best = r
		}
	}
	ties := 0
	for _, r := range results {
		if r.cost == best.cost {
			ties += r.ties
		}
	}
	best.ties = ties

	return best
}

// Minimize is a convenience wrapper: NewModel followed by Solve without a table.
func Minimize(rows [][]float64, opts ...Option) (Outcome, error) {
	m, err := NewModel(rows)
	if err != nil {
		return Outcome{}, err
	}
	opts = append(opts, WithoutTable())
	out, _, err := Solve(m, opts...)

	return out, err
}
