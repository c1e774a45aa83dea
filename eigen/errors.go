package eigen

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrInvalidHamiltonian is returned when the Hamiltonian fails validation
	// or does not match the model it is compared against.
	ErrInvalidHamiltonian = errors.New("eigen: invalid hamiltonian")

	// ErrTooManyQubits is returned when the Hamiltonian exceeds the backend cap.
	ErrTooManyQubits = errors.New("eigen: too many qubits")

	// ErrInvalidConfig is returned by Config.Validate and New.
	ErrInvalidConfig = errors.New("eigen: invalid config")

	// ErrInvalidMeasurement is returned by Compare for a bitstring that does
	// not describe an assignment of the model.
	ErrInvalidMeasurement = errors.New("eigen: invalid measurement")

	// ErrNotConverged is returned when the backend fails to converge. It is
	// the one backend error Retry treats as transient by default.
	ErrNotConverged = errors.New("eigen: not converged")
)

func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// permanent reports errors that no retry can fix.
func permanent(err error) bool {
	return errors.Is(err, ErrInvalidHamiltonian) ||
		errors.Is(err, ErrTooManyQubits) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
