package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvqubo/eigen"
	"github.com/katalvlaran/lvqubo/ising"
	"github.com/katalvlaran/lvqubo/qubo"
)

// Logger wraps slog.Logger with pipeline-specific helpers.
// The core packages never log; everything observable happens here.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))
}

// NewLoggerFromConfig builds the logger described by the log section.
func NewLoggerFromConfig(c LogConfig, w io.Writer) (*Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	switch c.Format {
	case LogFormatJSON:
		return NewJSONLogger(w, level), nil
	case LogFormatText, "":
		return NewTextLogger(w, level), nil
	case LogFormatNone:
		return NoopLogger(), nil
	default:
		return nil, fmt.Errorf("%w: log.format=%q", ErrInvalidConfig, c.Format)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log.level=%q: %w", s, err)
	}

	return level, nil
}

// LogSolve logs an exact enumeration.
func (l *Logger) LogSolve(ctx context.Context, n int, out qubo.Outcome, err error) {
	if err != nil {
		l.ErrorContext(ctx, "solve failed",
			"n", n,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "solve completed",
			"n", n,
			"best", out.Best.String(),
			"min_cost", out.MinCost,
			"ties", out.Ties,
		)
	}
}

// LogEncode logs an Ising encoding.
func (l *Logger) LogEncode(ctx context.Context, h ising.Hamiltonian, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encode completed",
			"qubits", h.NumQubits,
			"terms", len(h.Terms),
			"offset", h.Offset,
		)
	}
}

// LogEigen logs an eigensolver call.
func (l *Logger) LogEigen(ctx context.Context, res eigen.Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "eigensolver failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "eigensolver completed",
			"backend", res.Backend,
			"eigenvalue", res.Eigenvalue,
			"bitstring", res.Best.Bitstring,
			"probability", res.Best.Probability,
		)
	}
}

// LogCompare logs the cross-check between the two paths.
func (l *Logger) LogCompare(ctx context.Context, c eigen.Comparison) {
	if c.Agrees() {
		l.InfoContext(ctx, "paths agree",
			"exact_cost", c.ExactCost,
			"adapter_cost", c.AdapterCost,
			"same_bitstring", c.SameBitstring,
		)
	} else {
		l.WarnContext(ctx, "paths disagree",
			"exact_cost", c.ExactCost,
			"adapter_cost", c.AdapterCost,
			"measured_cost", c.MeasuredCost,
		)
	}
}
