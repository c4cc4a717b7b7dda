package process

import "errors"

// Sentinel errors for the process package.
var (
	// ErrNotStarted is returned for operations that require a running
	// process.
	ErrNotStarted = errors.New("process not started")

	// ErrAlreadyStarted is returned when starting a process twice.
	ErrAlreadyStarted = errors.New("process already started")

	// ErrSupervisorShutdown is returned when the supervisor is shutting
	// down.
	ErrSupervisorShutdown = errors.New("supervisor is shutting down")
)
