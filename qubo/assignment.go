package qubo

import (
	"fmt"
	"strings"
)

// Assignment is a binary vector; index i holds x_i ∈ {0,1}.
type Assignment []uint8

// AssignmentFromIndex decodes enumeration index k into an n-variable
// assignment, x_0 being the most significant bit of k.
// It does not validate k against 2ⁿ; bits above n-1 are ignored.
func AssignmentFromIndex(k uint64, n int) Assignment {
	x := make(Assignment, n)
	var i int
	for i = 0; i < n; i++ {
		x[i] = uint8((k >> uint(n-1-i)) & 1)
	}

	return x
}

// Index returns the enumeration index of x (inverse of AssignmentFromIndex).
// Values other than 0 are read as 1; call Validate first for strict input.
func (x Assignment) Index() uint64 {
	var k uint64
	for _, v := range x {
		k <<= 1
		if v != 0 {
			k |= 1
		}
	}

	return k
}

// Validate checks len(x) == n and every value is 0 or 1.
func (x Assignment) Validate(n int) error {
	if len(x) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidAssignment, len(x), n)
	}
	for i, v := range x {
		if v > 1 {
			return fmt.Errorf("%w: x[%d]=%d", ErrInvalidAssignment, i, v)
		}
	}

	return nil
}

// Clone returns an independent copy of x.
func (x Assignment) Clone() Assignment {
	if x == nil {
		return nil
	}
	cp := make(Assignment, len(x))
	copy(cp, x)

	return cp
}

// Equal reports element-wise equality.
func (x Assignment) Equal(y Assignment) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}

// String renders x as a bitstring, x_0 first.
func (x Assignment) String() string {
	var b strings.Builder
	b.Grow(len(x))
	for _, v := range x {
		if v == 0 {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}

	return b.String()
}

// Bitstring renders enumeration index k as an n-character bitstring.
func Bitstring(k uint64, n int) string {
	return AssignmentFromIndex(k, n).String()
}

// ParseBitstring parses a string of '0'/'1' characters, x_0 first.
// An empty string is rejected.
func ParseBitstring(s string) (Assignment, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidBitstring)
	}
	x := make(Assignment, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			x[i] = 0
		case '1':
			x[i] = 1
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidBitstring, s[i], i)
		}
	}

	return x, nil
}
