package qubo

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxVariables is the exact-enumeration cap: 2²⁴ ≈ 16.7M assignments,
	// 128 MiB of table.
	DefaultMaxVariables = 24

	// DefaultWorkers runs the enumeration on the calling goroutine.
	DefaultWorkers = 1

	// DefaultRecordTable keeps the full assignment→cost table.
	DefaultRecordTable = true

	// MaxTableVariables caps n whenever the table is recorded: 2²⁸ costs are
	// 2 GiB. Larger caps need WithoutTable.
	MaxTableVariables = 28

	// hardMaxVariables keeps enumeration indices and shifts inside uint64.
	hardMaxVariables = 62
)

const (
	panicMaxVariablesInvalid = "qubo: WithMaxVariables: cap must be in [1, 62]"
	panicWorkersInvalid      = "qubo: WithWorkers: workers must be >= 1"
)

// Option configures Solve. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved Solve configuration.
type Options struct {
	MaxVariables int  // enumeration cap, checked before any allocation
	Workers      int  // goroutines sharing the index range
	RecordTable  bool // materialize the 2ⁿ cost table
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxVariables: DefaultMaxVariables,
		Workers:      DefaultWorkers,
		RecordTable:  DefaultRecordTable,
	}
}

// WithMaxVariables sets the exact-enumeration cap. Above MaxTableVariables
// Solve also requires WithoutTable.
func WithMaxVariables(limit int) Option {
	if limit < 1 || limit > hardMaxVariables {
		panic(panicMaxVariablesInvalid)
	}

	return func(o *Options) { o.MaxVariables = limit }
}

// WithWorkers splits the enumeration across w goroutines.
// Results are identical to the serial run for any w.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.Workers = w }
}

// WithAutoWorkers uses one worker per available CPU (runtime.GOMAXPROCS).
func WithAutoWorkers() Option {
	return func(o *Options) { o.Workers = runtime.GOMAXPROCS(0) }
}

// WithoutTable skips the 2ⁿ table; Solve then returns a nil *Enumeration.
// Useful near the cap where only the optimum matters.
func WithoutTable() Option {
	return func(o *Options) { o.RecordTable = false }
}

func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
