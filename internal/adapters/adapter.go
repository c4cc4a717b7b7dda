// Package adapters turns a located executable and a resolved launch
// configuration into a runnable debug adapter command.
//
// The adapter does not speak the Debug Adapter Protocol itself; the external
// executable does. This package only prepares the command line, working
// directory, and launch-request arguments handed to the process supervisor.
package adapters

import (
	"fmt"
	"os/exec"
)

// AdapterType identifies a debug adapter.
type AdapterType string

// AdapterBoa is the Boa JavaScript engine debugger. The type matches the
// "type" field of launch configurations routed to this adapter.
const AdapterBoa AdapterType = "boa-debugger"

// ConnectionStdio marks adapters that communicate over standard input/output.
const ConnectionStdio = "stdio"

// Adapter provides configuration and launch capabilities for a debug adapter.
type Adapter interface {
	// Type returns the adapter type.
	Type() AdapterType

	// Name returns a human-readable adapter name.
	Name() string

	// Validate validates the configuration.
	Validate() error

	// GetCommand returns the command to start the adapter.
	GetCommand() (*exec.Cmd, error)

	// GetLaunchArgs returns the arguments for the DAP launch request.
	GetLaunchArgs() (any, error)

	// GetConnectionType returns how the adapter communicates ("stdio").
	GetConnectionType() string
}

// Registry maps adapter types to factories.
type Registry struct {
	adapters map[AdapterType]func(Config) (Adapter, error)
}

// NewRegistry creates a registry with the built-in Boa adapter registered.
func NewRegistry() *Registry {
	r := &Registry{
		adapters: make(map[AdapterType]func(Config) (Adapter, error)),
	}
	r.Register(AdapterBoa, NewBoaAdapter)
	return r
}

// Register registers an adapter factory.
func (r *Registry) Register(adapterType AdapterType, factory func(Config) (Adapter, error)) {
	r.adapters[adapterType] = factory
}

// Create creates an adapter from configuration.
func (r *Registry) Create(adapterType AdapterType, config Config) (Adapter, error) {
	factory, ok := r.adapters[adapterType]
	if !ok {
		return nil, fmt.Errorf("unknown adapter type: %s", adapterType)
	}
	return factory(config)
}

// AvailableAdapters returns the registered adapter types.
func (r *Registry) AvailableAdapters() []AdapterType {
	result := make([]AdapterType, 0, len(r.adapters))
	for t := range r.adapters {
		result = append(result, t)
	}
	return result
}

// FindExecutable searches for an executable in PATH.
func FindExecutable(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	return path, nil
}
