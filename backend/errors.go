package backend

import "errors"

// Sentinel errors for the three failure classes a harness may want to match
// with errors.Is. Run wraps each with detail naming the offending value.
var (
	// ErrInvalidInput marks run input that is neither a circuit, a schedule,
	// nor a non-empty homogeneous list of either.
	ErrInvalidInput = errors.New("invalid run input")

	// ErrPulseUnsupported marks a pulse submission on a backend whose
	// statevector engine is not linked in.
	ErrPulseUnsupported = errors.New("pulse schedules require the statevector engine")

	// ErrUnsupportedInstruction marks a circuit instruction outside the
	// configured basis gate set.
	ErrUnsupportedInstruction = errors.New("instruction not natively supported")
)
