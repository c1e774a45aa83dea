package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/lvqubo/eigen"
	"github.com/katalvlaran/lvqubo/ising"
)

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) }

// Render writes a human-readable report: the exact optimum, the Hamiltonian
// as a Pauli list, the eigensolver result and the landscape table.
func (r Report) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "exact solver\t\n")
	fmt.Fprintf(tw, "  best\t%s\n", r.Outcome.Best)
	fmt.Fprintf(tw, "  min cost\t%s\n", formatFloat(r.Outcome.MinCost))
	fmt.Fprintf(tw, "  ties\t%d\n", r.Outcome.Ties)

	fmt.Fprintf(tw, "ising hamiltonian\t\n")
	fmt.Fprintf(tw, "  qubits\t%d\n", r.Hamiltonian.NumQubits)
	fmt.Fprintf(tw, "  offset\t%s\n", formatFloat(r.Hamiltonian.Offset))
	for _, p := range r.Hamiltonian.PauliList(ising.BigEndian) {
		fmt.Fprintf(tw, "  %s\t%s\n", p.Label, formatFloat(p.Coeff))
	}

	if r.Eigen != nil {
		fmt.Fprintf(tw, "eigensolver (%s)\t\n", r.Eigen.Backend)
		fmt.Fprintf(tw, "  eigenvalue\t%s\n", formatFloat(r.Eigen.Eigenvalue))
		fmt.Fprintf(tw, "  best bitstring\t%s\n", r.Eigen.Best.Bitstring)
		fmt.Fprintf(tw, "  probability\t%s\n", formatFloat(r.Eigen.Best.Probability))
	}
	if r.EigenErr != nil {
		fmt.Fprintf(tw, "eigensolver\tfailed: %v\n", r.EigenErr)
	}
	if r.Comparison != nil {
		verdict := "agree"
		if !r.Comparison.Agrees() {
			verdict = "DISAGREE"
		}
		fmt.Fprintf(tw, "comparison\t%s\n", verdict)
		fmt.Fprintf(tw, "  eigenvalue + offset\t%s\n", formatFloat(r.Comparison.AdapterCost))
		fmt.Fprintf(tw, "  measured cost\t%s\n", formatFloat(r.Comparison.MeasuredCost))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Landscape) == 0 {
		return nil
	}
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\nbitstring\tqubo cost\tising energy\t\n")
	for _, row := range r.Landscape {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", row.Bitstring, formatFloat(row.Cost), formatFloat(row.Energy))
	}

	return tw.Flush()
}

type jsonOutcome struct {
	Best    string  `json:"best"`
	MinCost float64 `json:"min_cost"`
	Index   uint64  `json:"index"`
	Ties    int     `json:"ties"`
}

type jsonReport struct {
	N           int               `json:"n"`
	Exact       jsonOutcome       `json:"exact"`
	Hamiltonian ising.Hamiltonian `json:"hamiltonian"`
	Pauli       []ising.PauliTerm `json:"pauli"`
	Eigen       *eigen.Result     `json:"eigensolver,omitempty"`
	EigenErr    string            `json:"eigensolver_error,omitempty"`
	Comparison  *eigen.Comparison `json:"comparison,omitempty"`
	Landscape   []LandscapeRow    `json:"landscape,omitempty"`
}

// RenderJSON writes the report as one indented JSON document.
func (r Report) RenderJSON(w io.Writer) error {
	doc := jsonReport{
		N: r.N,
		Exact: jsonOutcome{
			Best:    r.Outcome.Best.String(),
			MinCost: r.Outcome.MinCost,
			Index:   r.Outcome.Index,
			Ties:    r.Outcome.Ties,
		},
		Hamiltonian: r.Hamiltonian,
		Pauli:       r.Hamiltonian.PauliList(ising.BigEndian),
		Eigen:       r.Eigen,
		Comparison:  r.Comparison,
		Landscape:   r.Landscape,
	}
	if r.EigenErr != nil {
		doc.EigenErr = r.EigenErr.Error()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
