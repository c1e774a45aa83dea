package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvqubo/eigen"
	"github.com/katalvlaran/lvqubo/ising"
	"github.com/katalvlaran/lvqubo/qubo"
)

// ErrInvalidConfig is returned by ParseConfig, LoadConfig and Validate.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
	LogFormatNone = "none"
)

// Config is the YAML document driving a run:
//
//	matrix: [[1, -2], [-2, 4]]     # or matrix_file: problem.qubo
//	solver: {max_variables: 20, workers: 4}
//	encoder: {keep_zeros: false}
//	eigensolver: {backend: dense, shots: 1024, seed: 7}
//	adapter: {retries: 3, initial_backoff: 100ms}
//	compare: {tolerance: 1e-6}
//	log: {format: json, level: debug}
type Config struct {
	Matrix      [][]float64   `yaml:"matrix,omitempty"`
	MatrixFile  string        `yaml:"matrix_file,omitempty"`
	Solver      SolverConfig  `yaml:"solver"`
	Encoder     EncoderConfig `yaml:"encoder"`
	Eigensolver eigen.Config  `yaml:"eigensolver"`
	Adapter     AdapterConfig `yaml:"adapter"`
	Compare     CompareConfig `yaml:"compare"`
	Log         LogConfig     `yaml:"log"`
}

// SolverConfig maps onto qubo.Option.
type SolverConfig struct {
	MaxVariables int  `yaml:"max_variables"`
	Workers      int  `yaml:"workers"` // 0 uses one worker per CPU
	RecordTable  bool `yaml:"record_table"`
}

// EncoderConfig maps onto ising.Option.
type EncoderConfig struct {
	KeepZeros bool    `yaml:"keep_zeros"`
	Tolerance float64 `yaml:"tolerance"`
}

// AdapterConfig selects the decorators around the eigensolver backend.
// Zero values disable the corresponding decorator.
type AdapterConfig struct {
	Retries        uint64        `yaml:"retries"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	RatePerSecond  float64       `yaml:"rate_per_second"`
	Burst          int           `yaml:"burst"`
	BreakerTrips   uint32        `yaml:"breaker_trips"`
	BreakerTimeout time.Duration `yaml:"breaker_timeout"`
}

// CompareConfig sets the cross-check tolerance.
type CompareConfig struct {
	Tolerance float64 `yaml:"tolerance"`
}

// LogConfig selects the handler and level of the run logger.
type LogConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// DefaultConfig returns the documented defaults; no matrix is set.
func DefaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			MaxVariables: qubo.DefaultMaxVariables,
			Workers:      qubo.DefaultWorkers,
			RecordTable:  qubo.DefaultRecordTable,
		},
		Encoder:     EncoderConfig{KeepZeros: ising.DefaultKeepZeros, Tolerance: ising.DefaultTolerance},
		Eigensolver: eigen.DefaultConfig(),
		Adapter:     AdapterConfig{InitialBackoff: 100 * time.Millisecond, Burst: 1},
		Compare:     CompareConfig{Tolerance: eigen.DefaultCompareTolerance},
		Log:         LogConfig{Format: LogFormatText, Level: "info"},
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("ParseConfig: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML file. A relative matrix_file is
// resolved against the directory of path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig %s: %w", path, err)
	}
	if cfg.MatrixFile != "" && !filepath.IsAbs(cfg.MatrixFile) {
		cfg.MatrixFile = filepath.Join(filepath.Dir(path), cfg.MatrixFile)
	}

	return cfg, nil
}

// Validate checks ranges so that the option constructors never panic.
func (c Config) Validate() error {
	switch {
	case len(c.Matrix) > 0 && c.MatrixFile != "":
		return fmt.Errorf("%w: matrix and matrix_file are exclusive", ErrInvalidConfig)
	case c.Solver.MaxVariables < 1 || c.Solver.MaxVariables > 62:
		return fmt.Errorf("%w: solver.max_variables=%d", ErrInvalidConfig, c.Solver.MaxVariables)
	case c.Solver.RecordTable && c.Solver.MaxVariables > qubo.MaxTableVariables:
		return fmt.Errorf("%w: solver.max_variables=%d needs record_table: false above %d",
			ErrInvalidConfig, c.Solver.MaxVariables, qubo.MaxTableVariables)
	case c.Solver.Workers < 0:
		return fmt.Errorf("%w: solver.workers=%d", ErrInvalidConfig, c.Solver.Workers)
	case c.Encoder.Tolerance < 0 || math.IsNaN(c.Encoder.Tolerance) || math.IsInf(c.Encoder.Tolerance, 0):
		return fmt.Errorf("%w: encoder.tolerance=%g", ErrInvalidConfig, c.Encoder.Tolerance)
	case c.Compare.Tolerance < 0 || math.IsNaN(c.Compare.Tolerance) || math.IsInf(c.Compare.Tolerance, 0):
		return fmt.Errorf("%w: compare.tolerance=%g", ErrInvalidConfig, c.Compare.Tolerance)
	case c.Adapter.RatePerSecond < 0 || (c.Adapter.RatePerSecond > 0 && c.Adapter.Burst < 1):
		return fmt.Errorf("%w: adapter rate %g/s burst %d", ErrInvalidConfig, c.Adapter.RatePerSecond, c.Adapter.Burst)
	}
	switch c.Log.Format {
	case LogFormatText, LogFormatJSON, LogFormatNone:
	default:
		return fmt.Errorf("%w: log.format=%q", ErrInvalidConfig, c.Log.Format)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Eigensolver.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// SolverOptions converts the solver section into qubo options.
func (c Config) SolverOptions() []qubo.Option {
	opts := []qubo.Option{qubo.WithMaxVariables(c.Solver.MaxVariables)}
	if c.Solver.Workers == 0 {
		opts = append(opts, qubo.WithAutoWorkers())
	} else {
		opts = append(opts, qubo.WithWorkers(c.Solver.Workers))
	}
	if !c.Solver.RecordTable {
		opts = append(opts, qubo.WithoutTable())
	}

	return opts
}

// EncoderOptions converts the encoder section into ising options.
func (c Config) EncoderOptions() []ising.Option {
	opts := []ising.Option{ising.WithTolerance(c.Encoder.Tolerance)}
	if c.Encoder.KeepZeros {
		opts = append(opts, ising.WithKeepZeros())
	}

	return opts
}

// Model builds the cost model from matrix or matrix_file (qbsolv format).
func (c Config) Model() (*qubo.Model, error) {
	if c.MatrixFile == "" {
		if len(c.Matrix) == 0 {
			return nil, fmt.Errorf("Model: %w: no matrix given", ErrInvalidConfig)
		}
		return qubo.NewModel(c.Matrix)
	}
	f, err := os.Open(c.MatrixFile)
	if err != nil {
		return nil, fmt.Errorf("Model: %w", err)
	}
	defer f.Close()

	return qubo.ReadQBSolv(f)
}

// BuildEigensolver builds the configured backend and wraps it, innermost first,
// in RateLimit, Breaker and Retry as the adapter section asks.
func (c Config) BuildEigensolver() (eigen.Eigensolver, error) {
	s, err := eigen.New(c.Eigensolver)
	if err != nil {
		return nil, fmt.Errorf("BuildEigensolver: %w", err)
	}
	a := c.Adapter
	if a.RatePerSecond > 0 {
		s = eigen.RateLimit(s, rate.NewLimiter(rate.Limit(a.RatePerSecond), a.Burst))
	}
	if a.BreakerTrips > 0 {
		st := eigen.DefaultBreakerSettings()
		trips := a.BreakerTrips
		st.ReadyToTrip = func(n gobreaker.Counts) bool { return n.ConsecutiveFailures >= trips }
		if a.BreakerTimeout > 0 {
			st.Timeout = a.BreakerTimeout
		}
		s = eigen.Breaker(s, st)
	}
	if a.Retries > 0 {
		s = eigen.Retry(s, a.Retries, a.InitialBackoff)
	}

	return s, nil
}
