package adapters

import "errors"

// Sentinel errors for the adapters package.
var (
	// ErrExecutableNotFound is returned when neither a located build
	// artifact nor a PATH lookup yields a boa executable.
	ErrExecutableNotFound = errors.New("boa executable not found")

	// ErrNoLaunchConfig is returned when an adapter is created without a
	// resolved launch configuration.
	ErrNoLaunchConfig = errors.New("no launch configuration")
)

// ExecutableNotFoundMessage is the user-facing text reported when the debug
// session cannot start because no boa executable exists.
const ExecutableNotFoundMessage = "Cannot start debugging: the boa executable was not found. Build the Boa CLI (cargo build) or add boa to your PATH."
