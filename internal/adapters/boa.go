package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/tidwall/gjson"

	"github.com/dshills/boadap/internal/locator"
	"github.com/dshills/boadap/internal/notify"
)

// DebuggerFlag switches the boa CLI into debug-adapter server mode,
// speaking DAP over standard input/output.
const DebuggerFlag = "--debugger"

// Config carries everything needed to construct an adapter command.
type Config struct {
	// Location is the locator's outcome for the boa executable.
	Location locator.Result

	// Launch is the resolved launch configuration JSON.
	Launch []byte

	// ExtraArgs are appended to the adapter command line after the
	// debugger flag.
	ExtraArgs []string

	// FallbackName overrides the executable name used for PATH lookup
	// when Location is deferred. Defaults to locator.FallbackName.
	FallbackName string

	// Reporter receives user-facing messages. Defaults to discard.
	Reporter notify.Reporter
}

// BoaAdapter launches the Boa CLI as a DAP server over stdio.
type BoaAdapter struct {
	config Config
}

// NewBoaAdapter creates a Boa adapter from configuration.
func NewBoaAdapter(config Config) (Adapter, error) {
	if config.FallbackName == "" {
		config.FallbackName = locator.FallbackName
	}
	if config.Reporter == nil {
		config.Reporter = notify.Discard{}
	}
	return &BoaAdapter{config: config}, nil
}

// Type returns the adapter type.
func (a *BoaAdapter) Type() AdapterType {
	return AdapterBoa
}

// Name returns a human-readable adapter name.
func (a *BoaAdapter) Name() string {
	return "Boa Debugger"
}

// Validate validates the configuration.
func (a *BoaAdapter) Validate() error {
	if len(a.config.Launch) == 0 {
		return ErrNoLaunchConfig
	}

	request := gjson.GetBytes(a.config.Launch, "request").String()
	if request != "launch" {
		return fmt.Errorf("unsupported request type: %q (boa supports launch only)", request)
	}

	if gjson.GetBytes(a.config.Launch, "program").String() == "" {
		return fmt.Errorf("launch configuration has no program")
	}

	return nil
}

// GetCommand returns the command to start the adapter.
//
// A located path is used verbatim; a deferred location falls back to PATH
// lookup here. When neither yields an executable the failure is reported and
// the session never starts.
func (a *BoaAdapter) GetCommand() (*exec.Cmd, error) {
	path := a.config.Location.Path
	if !a.config.Location.Resolved() {
		found, err := FindExecutable(a.config.FallbackName)
		if err != nil {
			a.config.Reporter.Warn(ExecutableNotFoundMessage)
			return nil, fmt.Errorf("%w: %v", ErrExecutableNotFound, err)
		}
		path = found
	}

	args := append([]string{DebuggerFlag}, a.config.ExtraArgs...)
	cmd := exec.Command(path, args...)

	if cwd := gjson.GetBytes(a.config.Launch, "cwd").String(); cwd != "" {
		cmd.Dir = cwd
	}
	cmd.Env = os.Environ()

	return cmd, nil
}

// GetLaunchArgs returns the resolved launch configuration for the host to
// forward as the DAP launch request arguments.
func (a *BoaAdapter) GetLaunchArgs() (any, error) {
	if len(a.config.Launch) == 0 {
		return nil, ErrNoLaunchConfig
	}
	return json.RawMessage(a.config.Launch), nil
}

// GetConnectionType returns how the adapter communicates.
func (a *BoaAdapter) GetConnectionType() string {
	return ConnectionStdio
}
