// Package launch normalizes debug launch configurations for Boa sessions.
//
// A launch configuration is a free-form JSON object. The resolver only
// interprets the fields it needs (type, name, request, program, stopOnEntry,
// cwd) and passes every other user-supplied key through untouched. When the
// user starts debugging without any configuration, a default one is
// synthesized from the active JavaScript document.
//
// Resolution is a pure, single pass: it either produces a configuration with
// a non-empty program, or it rejects the session start with
// ErrProgramNotSpecified. No state survives a call.
package launch
