package launch

import "errors"

// Sentinel errors for the launch package.
var (
	// ErrProgramNotSpecified is returned when resolution cannot produce a
	// configuration with a program to debug.
	ErrProgramNotSpecified = errors.New("no program specified in launch configuration")

	// ErrInvalidConfiguration is returned when the candidate configuration
	// is not a JSON object.
	ErrInvalidConfiguration = errors.New("launch configuration is not a JSON object")
)

// ProgramNotSpecifiedMessage is the user-facing text reported when a debug
// session cannot start because no program was given.
const ProgramNotSpecifiedMessage = "Cannot start debugging: no program specified. Open a JavaScript file or set \"program\" in your launch configuration."
