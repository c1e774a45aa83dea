package qubo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// qbsolv ".qubo" text format:
//
//	c <comment>
//	p qubo <topology> <maxNodes> <nNodes> <nCouplers>
//	<i> <i> <value>      nNodes diagonal lines
//	<i> <j> <value>      nCouplers off-diagonal lines
//
// Lines may come in any order after the header. Repeated (i, j) pairs are
// summed. An off-diagonal entry is stored where it is written, so a lower
// triangle entry keeps its position in the bilinear form.

// MaxQBSolvNodes bounds the maxNodes field of a qbsolv header. The dense
// model is allocated from the header, so larger files are rejected up front.
const MaxQBSolvNodes = hardMaxVariables

const (
	qbsolvComment = "c"
	qbsolvProgram = "p"
	qbsolvFormat  = "qubo"
	qbsolvTopo    = "0" // unconstrained target
)

// ReadQBSolv parses a qbsolv .qubo stream into a Model of maxNodes variables.
//
// Errors: ErrMalformedFile for a missing/duplicate header, maxNodes above
// MaxQBSolvNodes, header counts that cannot fit maxNodes, unparsable tokens,
// indices outside [0, maxNodes), or line counts that disagree with the header;
// ErrInvalidModel when maxNodes is zero or a value is not finite.
func ReadQBSolv(r io.Reader) (*Model, error) {
	sc := bufio.NewScanner(r)
	var (
		rows                  [][]float64
		haveHeader            bool
		maxNodes              int
		wantNodes, wantCouple int
		gotNodes, gotCouple   int
		lineNo                int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] == qbsolvComment {
			continue
		}
		if fields[0] == qbsolvProgram {
			if haveHeader {
				return nil, malformedf(lineNo, "duplicate header")
			}
			if len(fields) != 6 || fields[1] != qbsolvFormat {
				return nil, malformedf(lineNo, "want \"p qubo <topology> <maxNodes> <nNodes> <nCouplers>\"")
			}
			ints, err := atois(fields[3:])
			if err != nil {
				return nil, malformedf(lineNo, err.Error())
			}
			maxNodes, wantNodes, wantCouple = ints[0], ints[1], ints[2]
			if maxNodes <= 0 {
				return nil, fmt.Errorf("ReadQBSolv: %w: maxNodes=%d", ErrInvalidModel, maxNodes)
			}
			if maxNodes > MaxQBSolvNodes {
				return nil, malformedf(lineNo, fmt.Sprintf("maxNodes %d exceeds %d", maxNodes, MaxQBSolvNodes))
			}
			if wantNodes < 0 || wantCouple < 0 {
				return nil, malformedf(lineNo, "negative line counts")
			}
			if wantNodes > maxNodes || wantCouple > maxNodes*(maxNodes-1) {
				return nil, malformedf(lineNo, fmt.Sprintf("%d nodes/%d couplers impossible for maxNodes %d",
					wantNodes, wantCouple, maxNodes))
			}
			rows = make([][]float64, maxNodes)
			for i := range rows {
				rows[i] = make([]float64, maxNodes)
			}
			haveHeader = true
			continue
		}
		if !haveHeader {
			return nil, malformedf(lineNo, "entry before header")
		}
		if len(fields) != 3 {
			return nil, malformedf(lineNo, "want \"<i> <j> <value>\"")
		}
		ij, err := atois(fields[:2])
		if err != nil {
			return nil, malformedf(lineNo, err.Error())
		}
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, malformedf(lineNo, err.Error())
		}
		i, j := ij[0], ij[1]
		if i < 0 || i >= maxNodes || j < 0 || j >= maxNodes {
			return nil, malformedf(lineNo, fmt.Sprintf("index (%d,%d) outside [0,%d)", i, j, maxNodes))
		}
		rows[i][j] += v
		if i == j {
			gotNodes++
		} else {
			gotCouple++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadQBSolv: %w", err)
	}
	if !haveHeader {
		return nil, fmt.Errorf("ReadQBSolv: %w: missing header", ErrMalformedFile)
	}
	if gotNodes != wantNodes || gotCouple != wantCouple {
		return nil, fmt.Errorf("ReadQBSolv: %w: header declares %d nodes/%d couplers, found %d/%d",
			ErrMalformedFile, wantNodes, wantCouple, gotNodes, gotCouple)
	}

	return NewModel(rows)
}

// WriteQBSolv writes m in qbsolv format using its upper-triangular form, so
// the file reproduces every cost of m. Zero coefficients are omitted.
func WriteQBSolv(w io.Writer, m *Model) error {
	if err := validModel(m); err != nil {
		return quboErrorf("WriteQBSolv", err)
	}
	up, err := m.UpperTriangular()
	if err != nil {
		return quboErrorf("WriteQBSolv", err)
	}
	u := up.rows
	n := m.n

	var nodes, couplers int
	for i := 0; i < n; i++ {
		if u[i][i] != 0 {
			nodes++
		}
		for j := i + 1; j < n; j++ {
			if u[i][j] != 0 {
				couplers++
			}
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %d-variable QUBO\n", qbsolvComment, n)
	fmt.Fprintf(bw, "%s %s %s %d %d %d\n", qbsolvProgram, qbsolvFormat, qbsolvTopo, n, nodes, couplers)
	for i := 0; i < n; i++ {
		if u[i][i] != 0 {
			fmt.Fprintf(bw, "%d %d %s\n", i, i, formatCoeff(u[i][i]))
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if u[i][j] != 0 {
				fmt.Fprintf(bw, "%d %d %s\n", i, j, formatCoeff(u[i][j]))
			}
		}
	}

	return bw.Flush()
}

func formatCoeff(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func atois(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func malformedf(line int, msg string) error {
	return fmt.Errorf("ReadQBSolv: %w: line %d: %s", ErrMalformedFile, line, msg)
}
