package qubo

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is; call sites add context with %w.
var (
	// ErrInvalidModel is returned for nil, empty, non-square or non-finite coefficient matrices.
	ErrInvalidModel = errors.New("qubo: invalid model")

	// ErrInvalidAssignment is returned when an assignment has the wrong length
	// or holds a value outside {0,1}.
	ErrInvalidAssignment = errors.New("qubo: invalid assignment")

	// ErrSearchSpaceTooLarge is returned when n exceeds the exact-enumeration cap.
	ErrSearchSpaceTooLarge = errors.New("qubo: search space too large for exact enumeration")

	// ErrInvalidBitstring is returned by ParseBitstring for characters other than '0'/'1'.
	ErrInvalidBitstring = errors.New("qubo: invalid bitstring")

	// ErrMalformedFile is returned by ReadQBSolv for syntax or header violations.
	ErrMalformedFile = errors.New("qubo: malformed qubo file")
)

// quboErrorf tags a sentinel with the operation that detected it.
func quboErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
