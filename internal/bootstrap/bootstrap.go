// Package bootstrap implements the setup checklist: locate or acquire the
// kernel working copy, gate on the uv package manager, sync dependencies,
// check the device bridge (advisory), and print the follow-up guidance.
//
// Every step that fails aborts the run except the device-bridge check,
// which is deliberately tolerated so setup succeeds on machines without an
// Android device attached.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/aak-labs/aak/internal/branding"
	"github.com/aak-labs/aak/internal/toolchain"
	"github.com/aak-labs/aak/internal/workspace"
)

// DeviceLister is the slice of the adb client setup needs.
type DeviceLister interface {
	ListRaw(ctx context.Context, w io.Writer) error
}

// Options configures a setup run. Zero values select the production
// collaborators; tests inject fakes.
type Options struct {
	TargetDir string // clone destination; empty means the branding default
	RepoURL   string // kernel repository; empty means the branding default

	Stdout io.Writer
	Stderr io.Writer

	Lookup  toolchain.LookupFunc // tool resolution
	Git     workspace.GitRunner  // clone execution
	Run     toolchain.Runner     // uv invocation
	Devices DeviceLister         // adb device listing; nil disables injection
	Chdir   func(string) error   // working-directory change
	GOOS    string               // install-hint platform; empty means runtime.GOOS

	// NewDeviceLister builds the production lister for a resolved adb path
	// when Devices is nil.
	NewDeviceLister func(path string) DeviceLister
}

func (o *Options) defaults() {
	if o.TargetDir == "" {
		o.TargetDir = branding.TargetDir()
	}
	if o.RepoURL == "" {
		o.RepoURL = branding.KernelRepoURL()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Git == nil {
		o.Git = workspace.ExecGit
	}
	if o.Run == nil {
		o.Run = toolchain.ExecRunner
	}
	if o.Chdir == nil {
		o.Chdir = os.Chdir
	}
	if o.GOOS == "" {
		o.GOOS = runtime.GOOS
	}
}

// Run executes the setup checklist. The returned error wraps the failing
// tool's exec error where one exists, so callers can propagate its exit code.
func Run(ctx context.Context, opts Options) error {
	opts.defaults()

	// Step 1: root detection.
	if workspace.IsProjectRoot(".") {
		fmt.Fprintf(opts.Stdout, "Already inside the %s project root.\n", branding.DisplayName())
	} else {
		// Step 2: repository acquisition.
		acq, err := workspace.Acquire(ctx, opts.Git, opts.RepoURL, opts.TargetDir)
		if err != nil {
			return err
		}
		if acq.Cloned {
			fmt.Fprintf(opts.Stdout, "Cloned %s into %s\n", opts.RepoURL, acq.Dir)
		} else {
			fmt.Fprintf(opts.Stdout, "Reusing existing checkout at %s\n", acq.Dir)
		}

		// Step 3: all later steps resolve relative to the repo.
		if err := opts.Chdir(acq.Dir); err != nil {
			return fmt.Errorf("entering %s: %w", acq.Dir, err)
		}
	}

	// Step 4: required-tool gate.
	uv := toolchain.Probe(opts.Lookup, toolchain.ToolUV)
	if !uv.Found {
		fmt.Fprintf(opts.Stderr, "uv is not installed. Install it with:\n  %s\n",
			toolchain.InstallHintFor(toolchain.ToolUV, opts.GOOS))
		return fmt.Errorf("%s is required but not found in PATH", toolchain.ToolUV)
	}

	// Step 5: dependency sync.
	fmt.Fprintln(opts.Stdout, "Syncing dependencies with uv...")
	output, err := opts.Run(ctx, uv.Path, "sync")
	if len(output) > 0 {
		fmt.Fprintln(opts.Stdout, strings.TrimRight(string(output), "\n"))
	}
	if err != nil {
		return fmt.Errorf("uv sync: %w", err)
	}

	// Step 6: advisory device-bridge check.
	checkDeviceBridge(ctx, &opts)

	// Step 7: final guidance.
	printGuidance(opts.Stdout)
	return nil
}

// checkDeviceBridge never fails the run. A present adb gets a best-effort
// device listing; a missing one gets a platform-appropriate install hint.
func checkDeviceBridge(ctx context.Context, opts *Options) {
	st := toolchain.Probe(opts.Lookup, toolchain.ToolADB)
	if !st.Found {
		fmt.Fprintf(opts.Stdout, "adb not found. To talk to a device later, install it with:\n  %s\n",
			toolchain.InstallHintFor(toolchain.ToolADB, opts.GOOS))
		return
	}

	lister := opts.Devices
	if lister == nil && opts.NewDeviceLister != nil {
		lister = opts.NewDeviceLister(st.Path)
	}
	if lister == nil {
		return
	}

	fmt.Fprintln(opts.Stdout, "Attached devices:")
	if err := lister.ListRaw(ctx, opts.Stdout); err != nil {
		fmt.Fprintf(opts.Stdout, "Device listing failed (%v) — continuing; connect a device before running the kernel.\n", err)
	}
}

func printGuidance(w io.Writer) {
	fmt.Fprintf(w, `
Setup complete. Next steps:

  1. Export your API key:
       export GROQ_API_KEY=...

  2. Optionally pick a provider (groq, openai, bedrock):
       export LLM_PROVIDER=groq

  3. Start the kernel:
       %s
`, branding.RunCommand())
}
