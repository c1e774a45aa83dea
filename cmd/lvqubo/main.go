// Command lvqubo solves a small QUBO exactly, encodes it as an Ising
// Hamiltonian, runs an eigensolver on the Hamiltonian and prints both answers
// side by side.
//
// Usage:
//
//	lvqubo [options] [problem.yaml | problem.qubo]
//
// Without a file the two-variable problem x0 + x1 − 2·x0·x1 is solved.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/lvqubo/eigen"
	"github.com/katalvlaran/lvqubo/ising"
	"github.com/katalvlaran/lvqubo/pipeline"
	"github.com/katalvlaran/lvqubo/qubo"
)

var demoMatrix = [][]float64{
	{1, -1},
	{-1, 1},
}

type options struct {
	workers     int
	maxVars     int
	shots       int
	seed        int64
	timeout     time.Duration
	jsonOut     bool
	noEigen     bool
	hamiltonian bool
	writeQubo   string
	logFormat   string
	logLevel    string
}

func main() {
	var o options
	flag.IntVar(&o.workers, "workers", -1, "enumeration goroutines (0 = one per CPU, -1 = config value)")
	flag.IntVar(&o.maxVars, "max-vars", 0, "exact enumeration cap (0 = config value)")
	flag.IntVar(&o.shots, "shots", -1, "eigensolver measurement shots (-1 = config value)")
	flag.Int64Var(&o.seed, "seed", 0, "sampling seed (0 = config value)")
	flag.DurationVar(&o.timeout, "timeout", time.Minute, "overall deadline")
	flag.BoolVar(&o.jsonOut, "json", false, "print the report as JSON")
	flag.BoolVar(&o.noEigen, "no-eigen", false, "skip the eigensolver path")
	flag.BoolVar(&o.hamiltonian, "hamiltonian", false, "print only the Ising Hamiltonian as JSON")
	flag.StringVar(&o.writeQubo, "write-qubo", "", "also write the model to this path in qbsolv format")
	flag.StringVar(&o.logFormat, "log-format", "", "text, json or none (default: config value)")
	flag.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error (default: config value)")
	flag.Parse()
	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] [problem.yaml|problem.qubo]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(o, flag.Arg(0), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "lvqubo: %v\n", err)
		os.Exit(1)
	}
}

func run(o options, path string, stdout, stderr io.Writer) error {
	cfg, m, err := load(path)
	if err != nil {
		return err
	}
	if err = o.apply(&cfg); err != nil {
		return err
	}
	if m == nil {
		if m, err = cfg.Model(); err != nil {
			return err
		}
	}

	if o.writeQubo != "" {
		if err = writeQubo(o.writeQubo, m); err != nil {
			return err
		}
	}
	if o.hamiltonian {
		h, err := ising.Encode(m, cfg.EncoderOptions()...)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(h)
	}

	logger, err := pipeline.NewLoggerFromConfig(cfg.Log, stderr)
	if err != nil {
		return err
	}
	var solver eigen.Eigensolver
	if !o.noEigen {
		if solver, err = cfg.BuildEigensolver(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()
	rep, err := pipeline.Run(ctx, m, cfg, solver, logger)
	if err != nil {
		return err
	}
	if o.jsonOut {
		return rep.RenderJSON(stdout)
	}

	return rep.Render(stdout)
}

// load returns the configuration and, for a .qubo file, the model.
func load(path string) (pipeline.Config, *qubo.Model, error) {
	switch {
	case path == "":
		cfg := pipeline.DefaultConfig()
		cfg.Matrix = demoMatrix
		return cfg, nil, nil
	case strings.HasSuffix(path, ".qubo"):
		f, err := os.Open(path)
		if err != nil {
			return pipeline.Config{}, nil, err
		}
		defer f.Close()
		m, err := qubo.ReadQBSolv(f)
		if err != nil {
			return pipeline.Config{}, nil, fmt.Errorf("%s: %w", path, err)
		}
		return pipeline.DefaultConfig(), m, nil
	default:
		cfg, err := pipeline.LoadConfig(path)
		return cfg, nil, err
	}
}

// apply overrides config fields with the flags that were set.
func (o options) apply(cfg *pipeline.Config) error {
	if o.workers >= 0 {
		cfg.Solver.Workers = o.workers
	}
	if o.maxVars > 0 {
		cfg.Solver.MaxVariables = o.maxVars
	}
	if o.shots >= 0 {
		cfg.Eigensolver.Shots = o.shots
	}
	if o.seed != 0 {
		cfg.Eigensolver.Seed = o.seed
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	return cfg.Validate()
}

func writeQubo(path string, m *qubo.Model) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = qubo.WriteQBSolv(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
