package launch

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/boadap/internal/notify"
)

// DebugType is the configuration type for Boa debug sessions.
const DebugType = "boa-debugger"

// defaultConfigName is the display name of a synthesized configuration.
const defaultConfigName = "Debug Current File"

// Resolver normalizes launch configurations before a session starts.
//
// Resolver is stateless apart from its reporter and is safe for concurrent
// use.
type Resolver struct {
	reporter notify.Reporter
}

// NewResolver creates a Resolver reporting through the given Reporter.
// A nil reporter discards all messages.
func NewResolver(reporter notify.Reporter) *Resolver {
	if reporter == nil {
		reporter = notify.Discard{}
	}
	return &Resolver{reporter: reporter}
}

// Resolve normalizes a candidate launch configuration.
//
// raw is the user's configuration as a JSON object; nil or empty input is
// treated as the empty object (the user pressed debug with no launch entry).
// When the candidate has none of type, request, or name and the active
// document is JavaScript, a default configuration for that document is
// synthesized. After synthesis the configuration must name a program;
// otherwise Resolve reports the failure and returns ErrProgramNotSpecified.
// An unset cwd is inherited from workspaceFolder when one is known.
//
// All other keys pass through byte-for-byte.
func (r *Resolver) Resolve(raw []byte, doc *Document, workspaceFolder string) ([]byte, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return nil, ErrInvalidConfiguration
	}

	empty := !gjson.GetBytes(raw, "type").Exists() &&
		!gjson.GetBytes(raw, "request").Exists() &&
		!gjson.GetBytes(raw, "name").Exists()

	if empty && doc.IsJavaScript() {
		var err error
		raw, err = synthesizeDefault(raw, doc.Path)
		if err != nil {
			return nil, err
		}
	}

	program := gjson.GetBytes(raw, "program")
	if program.Type != gjson.String || program.String() == "" {
		r.reporter.Warn(ProgramNotSpecifiedMessage)
		return nil, ErrProgramNotSpecified
	}

	if gjson.GetBytes(raw, "cwd").String() == "" && workspaceFolder != "" {
		var err error
		raw, err = sjson.SetBytes(raw, "cwd", workspaceFolder)
		if err != nil {
			return nil, fmt.Errorf("set cwd: %w", err)
		}
	}

	return raw, nil
}

// synthesizeDefault merges the default debug-current-file configuration over
// the candidate.
func synthesizeDefault(raw []byte, program string) ([]byte, error) {
	defaults := []struct {
		path  string
		value any
	}{
		{"type", DebugType},
		{"name", defaultConfigName},
		{"request", "launch"},
		{"program", program},
		{"stopOnEntry", false},
	}

	var err error
	for _, d := range defaults {
		raw, err = sjson.SetBytes(raw, d.path, d.value)
		if err != nil {
			return nil, fmt.Errorf("set %s: %w", d.path, err)
		}
	}
	return raw, nil
}
