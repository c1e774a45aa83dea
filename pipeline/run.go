package pipeline

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvqubo/eigen"
	"github.com/katalvlaran/lvqubo/ising"
	"github.com/katalvlaran/lvqubo/qubo"
)

// LandscapeMaxVariables bounds the landscape kept in a Report: 2¹⁰ rows.
const LandscapeMaxVariables = 10

// LandscapeRow is one point of the energy landscape: both cost scales for a
// single assignment.
type LandscapeRow struct {
	Bitstring string  `json:"bitstring"`
	Cost      float64 `json:"cost"`
	Energy    float64 `json:"energy"` // Ising energy + offset
}

// Report collects both paths of a run.
type Report struct {
	N           int
	Outcome     qubo.Outcome
	Hamiltonian ising.Hamiltonian
	Eigen       *eigen.Result     // nil when no eigensolver ran or it failed
	Comparison  *eigen.Comparison // nil unless both paths produced an answer
	Landscape   []LandscapeRow    // nil without a table or above LandscapeMaxVariables

	// EigenErr holds the eigensolver or comparison failure. The exact and
	// encoder sections stay valid when it is set.
	EigenErr error
}

// Run enumerates m, encodes it and, when solver is non-nil, asks solver for
// the minimum eigenvalue and compares both answers. A nil logger is treated
// as NoopLogger.
//
// A disagreement between the paths is reported, not returned as an error.
// So is a failing eigensolver (for instance ErrTooManyQubits on a model the
// exact solver still handles): the report keeps the exact result and carries
// the failure in EigenErr. Only cancellation of ctx aborts the run.
func Run(ctx context.Context, m *qubo.Model, cfg Config, solver eigen.Eigensolver, log *Logger) (Report, error) {
	if log == nil {
		log = NoopLogger()
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("Run: %w", err)
	}
	if m == nil {
		return Report{}, fmt.Errorf("Run: %w", qubo.ErrInvalidModel)
	}

	out, table, err := qubo.Solve(m, cfg.SolverOptions()...)
	log.LogSolve(ctx, m.N(), out, err)
	if err != nil {
		return Report{}, fmt.Errorf("Run: %w", err)
	}

	h, err := ising.Encode(m, cfg.EncoderOptions()...)
	log.LogEncode(ctx, h, err)
	if err != nil {
		return Report{}, fmt.Errorf("Run: %w", err)
	}

	rep := Report{N: m.N(), Outcome: out, Hamiltonian: h}
	if table != nil && m.N() <= LandscapeMaxVariables {
		if rep.Landscape, err = landscape(table, h); err != nil {
			return Report{}, fmt.Errorf("Run: %w", err)
		}
	}
	if solver == nil {
		return rep, nil
	}

	res, err := solver.MinimumEigenvalue(ctx, h, cfg.Eigensolver)
	log.LogEigen(ctx, res, err)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Report{}, fmt.Errorf("Run: %w", ctxErr)
		}
		rep.EigenErr = err
		return rep, nil
	}
	rep.Eigen = &res

	cmp, err := eigen.Compare(m, out, h, res, cfg.Compare.Tolerance)
	if err != nil {
		log.WarnContext(ctx, "comparison skipped", "error", err)
		rep.EigenErr = err
		return rep, nil
	}
	log.LogCompare(ctx, cmp)
	rep.Comparison = &cmp

	return rep, nil
}

func landscape(table *qubo.Enumeration, h ising.Hamiltonian) ([]LandscapeRow, error) {
	rows := make([]LandscapeRow, table.Len())
	labels := table.Bitstrings()
	for k := range rows {
		e, err := h.EnergyOfIndex(uint64(k))
		if err != nil {
			return nil, err
		}
		rows[k] = LandscapeRow{Bitstring: labels[k], Cost: table.Cost(k), Energy: e + h.Offset}
	}

	return rows, nil
}
