package eigen

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvqubo/ising"
	"github.com/katalvlaran/lvqubo/qubo"
)

// MaxDenseQubits is the hard cap of DenseSolver, equal to DefaultMaxQubits.
// At 10 qubits the operator is 1024×1024 (8 MiB); each extra qubit multiplies
// memory by 4 and the O(N³) EigenSym time by 8.
const MaxDenseQubits = DefaultMaxQubits

// DenseSolver diagonalizes the full 2ⁿ×2ⁿ operator with gonum's EigenSym.
// It is exact and serves as the reference that other backends are checked
// against. The zero value is ready to use.
type DenseSolver struct{}

var _ Eigensolver = DenseSolver{}

// NewDenseSolver returns a DenseSolver.
func NewDenseSolver() DenseSolver { return DenseSolver{} }

// MinimumEigenvalue implements Eigensolver.
//
// The best measurement is the basis state of largest |amplitude|² in the
// ground eigenvector, lowest index first on ties. With cfg.Shots > 0 the
// ground state is sampled instead, seeded by cfg.Seed, and the most frequent
// outcome is reported with probability count/shots.
//
// Errors: ErrInvalidConfig, ErrInvalidHamiltonian, ErrTooManyQubits when
// NumQubits exceeds min(cfg.MaxQubits, MaxDenseQubits), ErrNotConverged,
// or ctx.Err().
func (DenseSolver) MinimumEigenvalue(ctx context.Context, h ising.Hamiltonian, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, eigenErrorf("DenseSolver", err)
	}
	if err := h.Validate(); err != nil {
		return Result{}, fmt.Errorf("DenseSolver: %w: %w", ErrInvalidHamiltonian, err)
	}
	limit := min(cfg.MaxQubits, MaxDenseQubits)
	if h.NumQubits > limit {
		return Result{}, fmt.Errorf("DenseSolver: %w: %d > %d", ErrTooManyQubits, h.NumQubits, limit)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	diag, err := h.Spectrum(limit)
	if err != nil {
		return Result{}, fmt.Errorf("DenseSolver: %w: %w", ErrInvalidHamiltonian, err)
	}
	dim := len(diag)
	op := mat.NewSymDense(dim, nil)
	for k, e := range diag {
		op.SetSym(k, k, e)
	}

	var es mat.EigenSym
	if ok := es.Factorize(op, true); !ok {
		return Result{}, eigenErrorf("DenseSolver", ErrNotConverged)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	values := es.Values(nil) // ascending
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	probs := make([]float64, dim)
	for k := range probs {
		a := vecs.At(k, 0)
		probs[k] = a * a
	}

	var (
		best int
		p    float64
	)
	if cfg.Shots > 0 {
		best, p = sampleMostFrequent(probs, cfg.Shots, cfg.Seed)
	} else {
		best, p = argmax(probs)
	}

	return Result{
		Eigenvalue: values[0],
		Best: Measurement{
			Bitstring:   qubo.Bitstring(uint64(best), h.NumQubits),
			Probability: p,
		},
		Backend: BackendDense,
	}, nil
}

// argmax returns the first index of the largest value.
func argmax(xs []float64) (int, float64) {
	best := 0
	for k, v := range xs {
		if v > xs[best] {
			best = k
		}
	}

	return best, xs[best]
}

// sampleMostFrequent draws shots outcomes from probs and returns the most
// frequent one (lowest index on ties) with its empirical probability.
func sampleMostFrequent(probs []float64, shots int, seed int64) (int, float64) {
	cdf := make([]float64, len(probs))
	var acc float64
	for k, p := range probs {
		acc += p
		cdf[k] = acc
	}

	rng := rngFromSeed(seed)
	counts := make([]int, len(probs))
	last := len(probs) - 1
	for s := 0; s < shots; s++ {
		u := rng.Float64() * acc
		k := sort.Search(len(cdf), func(i int) bool { return cdf[i] > u })
		if k > last {
			k = last
		}
		counts[k]++
	}

	best := 0
	for k, c := range counts {
		if c > counts[best] {
			best = k
		}
	}

	return best, float64(counts[best]) / float64(shots)
}
