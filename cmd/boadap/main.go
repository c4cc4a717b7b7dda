// Package main is the entry point for boadap, the editor-integration shim
// for the Boa JavaScript engine's debug adapter.
//
// boadap locates a built boa executable in the workspace, normalizes the
// launch configuration, and runs the executable in debug-adapter mode with
// its protocol stream bridged to boadap's own standard input/output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/tidwall/sjson"

	"github.com/dshills/boadap/internal/adapters"
	"github.com/dshills/boadap/internal/config"
	"github.com/dshills/boadap/internal/launch"
	"github.com/dshills/boadap/internal/locator"
	"github.com/dshills/boadap/internal/notify"
	"github.com/dshills/boadap/internal/process"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// shutdownGrace is how long a terminated adapter gets before SIGKILL.
const shutdownGrace = 5 * time.Second

type options struct {
	ConfigPath  string
	Workspace   string
	LaunchPath  string
	Program     string
	Cwd         string
	StopOnEntry bool
	File        string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	reporter := notify.NewConsole(os.Stderr)

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	roots := workspaceRoots(opts, settings)

	location := locateAdapter(opts, settings, roots, reporter)

	resolved, err := resolveLaunch(opts, roots, reporter)
	if err != nil {
		// Resolver failures already went through the reporter; surface
		// anything else plainly.
		if !errors.Is(err, launch.ErrProgramNotSpecified) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}

	adapter, err := adapters.NewRegistry().Create(adapters.AdapterBoa, adapters.Config{
		Location:     location,
		Launch:       resolved,
		ExtraArgs:    settings.AdapterArgs,
		FallbackName: settings.FallbackName,
		Reporter:     reporter,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := adapter.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid launch configuration: %v\n", err)
		return 1
	}

	cmd, err := adapter.GetCommand()
	if err != nil {
		// Executable-not-found was already reported.
		return 1
	}

	supervisor := process.NewSupervisor()
	proc, err := supervisor.Start(adapter.Name(), cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start adapter: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		supervisor.Shutdown(shutdownGrace)
	}()

	process.Bridge(proc, os.Stdin, os.Stdout, os.Stderr)
	<-proc.Done()

	if code := proc.ExitCode(); code > 0 {
		return code
	}
	return 0
}

// workspaceRoots decides the roots handed to the locator: the flag wins,
// then the config file, then the current directory.
func workspaceRoots(opts options, settings *config.Settings) []string {
	if opts.Workspace != "" {
		return []string{opts.Workspace}
	}
	if len(settings.WorkspaceRoots) > 0 {
		return settings.WorkspaceRoots
	}
	if cwd, err := os.Getwd(); err == nil {
		return []string{cwd}
	}
	return nil
}

// locateAdapter returns the adapter location: an explicit configured path
// skips workspace discovery entirely.
func locateAdapter(opts options, settings *config.Settings, roots []string, reporter notify.Reporter) locator.Result {
	if settings.AdapterPath != "" {
		return locator.Result{Kind: locator.KindResolved, Path: settings.AdapterPath}
	}
	return locator.New(reporter).Locate(roots, locator.CurrentPlatform())
}

// resolveLaunch builds the candidate configuration from the launch file and
// flag overrides, then normalizes it.
func resolveLaunch(opts options, roots []string, reporter notify.Reporter) ([]byte, error) {
	candidate := []byte("{}")
	if opts.LaunchPath != "" {
		data, err := os.ReadFile(opts.LaunchPath)
		if err != nil {
			return nil, fmt.Errorf("reading launch configuration %s: %w", opts.LaunchPath, err)
		}
		candidate = data
	}

	var err error
	if opts.Program != "" {
		for _, kv := range []struct {
			path  string
			value any
		}{
			{"type", launch.DebugType},
			{"request", "launch"},
			{"name", "Debug " + filepath.Base(opts.Program)},
			{"program", opts.Program},
		} {
			candidate, err = sjson.SetBytes(candidate, kv.path, kv.value)
			if err != nil {
				return nil, fmt.Errorf("building launch configuration: %w", err)
			}
		}
	}
	if opts.StopOnEntry {
		candidate, err = sjson.SetBytes(candidate, "stopOnEntry", true)
		if err != nil {
			return nil, fmt.Errorf("building launch configuration: %w", err)
		}
	}
	if opts.Cwd != "" {
		candidate, err = sjson.SetBytes(candidate, "cwd", opts.Cwd)
		if err != nil {
			return nil, fmt.Errorf("building launch configuration: %w", err)
		}
	}

	var doc *launch.Document
	if opts.File != "" {
		abs, err := filepath.Abs(opts.File)
		if err != nil {
			abs = opts.File
		}
		doc = launch.NewDocument(abs, "")
	}

	workspaceFolder := ""
	if len(roots) > 0 {
		workspaceFolder = roots[0]
	}

	// The resolver reports its own failure; run() maps the error to the
	// exit code.
	return launch.NewResolver(reporter).Resolve(candidate, doc, workspaceFolder)
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to boadap configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to boadap configuration file (shorthand)")
	flag.StringVar(&opts.Workspace, "workspace", "", "Workspace root to search for a Boa checkout")
	flag.StringVar(&opts.Workspace, "w", "", "Workspace root (shorthand)")
	flag.StringVar(&opts.LaunchPath, "launch", "", "Path to a launch configuration JSON file")
	flag.StringVar(&opts.Program, "program", "", "JavaScript program to debug")
	flag.StringVar(&opts.Cwd, "cwd", "", "Working directory for the debugged program")
	flag.BoolVar(&opts.StopOnEntry, "stop-on-entry", false, "Stop at the first statement")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "boadap - debug adapter launcher for the Boa JavaScript engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: boadap [options] [file.js]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  boadap app.js                    Debug a file with the default configuration\n")
		fmt.Fprintf(os.Stderr, "  boadap -w ~/src/boa app.js       Use the boa build from a checkout\n")
		fmt.Fprintf(os.Stderr, "  boadap -launch launch.json       Use an explicit launch configuration\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("boadap %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if args := flag.Args(); len(args) > 0 {
		opts.File = args[0]
	}

	return opts
}
