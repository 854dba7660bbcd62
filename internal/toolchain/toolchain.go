package toolchain

import (
	"context"
	"os/exec"
)

// Tool names the bootstrapper cares about.
const (
	ToolGit = "git"
	ToolUV  = "uv"
	ToolADB = "adb"
)

// LookupFunc resolves an executable name to a path, exec.LookPath-style.
// Tests substitute a fake.
type LookupFunc func(name string) (string, error)

// Runner executes a binary with arguments and returns its combined output.
type Runner func(ctx context.Context, bin string, args ...string) ([]byte, error)

// ExecRunner is the production Runner.
func ExecRunner(ctx context.Context, bin string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, bin, args...).CombinedOutput()
}

// Status describes one probed tool.
type Status struct {
	Name    string
	Path    string // resolved path when found
	Found   bool
	Version string // parsed version when the tool reports one, else ""
}

// Probe looks up a tool on the host. A nil lookup uses exec.LookPath.
func Probe(lookup LookupFunc, name string) Status {
	if lookup == nil {
		lookup = exec.LookPath
	}
	path, err := lookup(name)
	if err != nil {
		return Status{Name: name}
	}
	return Status{Name: name, Path: path, Found: true}
}

// ProbeVersion looks up a tool and, when present, asks it for its version.
// A tool whose version output cannot be parsed is still reported as found.
func ProbeVersion(ctx context.Context, lookup LookupFunc, run Runner, name string) Status {
	st := Probe(lookup, name)
	if !st.Found {
		return st
	}
	if run == nil {
		run = ExecRunner
	}
	output, err := run(ctx, st.Path, "--version")
	if err != nil {
		return st
	}
	if v, err := ParseVersionOutput(string(output)); err == nil {
		st.Version = v
	}
	return st
}
