package adapters

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/boadap/internal/locator"
	"github.com/dshills/boadap/internal/notify"
)

// writeFakeExecutable drops an executable stub named name into dir and
// returns its path.
func writeFakeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func newBoa(t *testing.T, config Config) *BoaAdapter {
	t.Helper()
	adapter, err := NewBoaAdapter(config)
	if err != nil {
		t.Fatalf("NewBoaAdapter failed: %v", err)
	}
	return adapter.(*BoaAdapter)
}

func TestBoaAdapter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		launch  string
		wantErr bool
	}{
		{"valid launch", `{"request":"launch","program":"/p/a.js"}`, false},
		{"attach unsupported", `{"request":"attach","program":"/p/a.js"}`, true},
		{"missing request", `{"program":"/p/a.js"}`, true},
		{"missing program", `{"request":"launch"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newBoa(t, Config{Launch: []byte(tt.launch)})
			err := a.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestBoaAdapter_Validate_NoConfig(t *testing.T) {
	a := newBoa(t, Config{})
	if err := a.Validate(); !errors.Is(err, ErrNoLaunchConfig) {
		t.Errorf("expected ErrNoLaunchConfig, got %v", err)
	}
}

func TestBoaAdapter_GetCommand_ResolvedPath(t *testing.T) {
	exe := writeFakeExecutable(t, t.TempDir(), "boa")

	a := newBoa(t, Config{
		Location: locator.Result{Kind: locator.KindResolved, Path: exe},
		Launch:   []byte(`{"request":"launch","program":"/p/a.js","cwd":"/p"}`),
	})

	cmd, err := a.GetCommand()
	if err != nil {
		t.Fatalf("GetCommand failed: %v", err)
	}

	if cmd.Path != exe {
		t.Errorf("Path = %q, expected %q", cmd.Path, exe)
	}
	if len(cmd.Args) != 2 || cmd.Args[1] != DebuggerFlag {
		t.Errorf("Args = %v, expected [%s %s]", cmd.Args, exe, DebuggerFlag)
	}
	if cmd.Dir != "/p" {
		t.Errorf("Dir = %q, expected /p from launch cwd", cmd.Dir)
	}
}

func TestBoaAdapter_GetCommand_DeferredUsesPath(t *testing.T) {
	dir := t.TempDir()
	writeFakeExecutable(t, dir, "boa")
	t.Setenv("PATH", dir)

	a := newBoa(t, Config{
		Location: locator.Result{Kind: locator.KindDeferred},
		Launch:   []byte(`{"request":"launch","program":"/p/a.js"}`),
	})

	cmd, err := a.GetCommand()
	if err != nil {
		t.Fatalf("GetCommand failed: %v", err)
	}
	if filepath.Base(cmd.Path) != "boa" {
		t.Errorf("expected PATH-resolved boa, got %q", cmd.Path)
	}
	if cmd.Dir != "" {
		t.Errorf("Dir should be unset without cwd, got %q", cmd.Dir)
	}
}

func TestBoaAdapter_GetCommand_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	n := notify.NewNotifier()
	var messages []notify.Message
	n.Subscribe(func(msg notify.Message) {
		messages = append(messages, msg)
	})

	a := newBoa(t, Config{
		Location: locator.Result{Kind: locator.KindDeferred},
		Launch:   []byte(`{"request":"launch","program":"/p/a.js"}`),
		Reporter: n,
	})

	_, err := a.GetCommand()
	if !errors.Is(err, ErrExecutableNotFound) {
		t.Fatalf("expected ErrExecutableNotFound, got %v", err)
	}

	if len(messages) != 1 || messages[0].Severity != notify.SeverityWarn {
		t.Fatalf("expected a single warning, got %+v", messages)
	}
	if messages[0].Text != ExecutableNotFoundMessage {
		t.Errorf("unexpected message text: %q", messages[0].Text)
	}
}

func TestBoaAdapter_GetCommand_ExtraArgs(t *testing.T) {
	exe := writeFakeExecutable(t, t.TempDir(), "boa")

	a := newBoa(t, Config{
		Location:  locator.Result{Kind: locator.KindResolved, Path: exe},
		Launch:    []byte(`{"request":"launch","program":"/p/a.js"}`),
		ExtraArgs: []string{"--debug-output"},
	})

	cmd, err := a.GetCommand()
	if err != nil {
		t.Fatalf("GetCommand failed: %v", err)
	}
	joined := strings.Join(cmd.Args, " ")
	if !strings.Contains(joined, DebuggerFlag+" --debug-output") {
		t.Errorf("extra args not appended after debugger flag: %v", cmd.Args)
	}
}

func TestBoaAdapter_GetLaunchArgs(t *testing.T) {
	launch := []byte(`{"request":"launch","program":"/p/a.js","trace":true}`)
	a := newBoa(t, Config{Launch: launch})

	args, err := a.GetLaunchArgs()
	if err != nil {
		t.Fatalf("GetLaunchArgs failed: %v", err)
	}

	raw, ok := args.(json.RawMessage)
	if !ok {
		t.Fatalf("expected json.RawMessage, got %T", args)
	}
	if string(raw) != string(launch) {
		t.Errorf("launch args were altered: %s", raw)
	}
}

func TestBoaAdapter_Metadata(t *testing.T) {
	a := newBoa(t, Config{})
	if a.Type() != AdapterBoa {
		t.Errorf("Type = %v", a.Type())
	}
	if a.Name() != "Boa Debugger" {
		t.Errorf("Name = %q", a.Name())
	}
}
