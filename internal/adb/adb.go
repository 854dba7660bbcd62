// Package adb wraps the Android Debug Bridge client for the one concern the
// bootstrapper has: enumerating attached devices. The binary path is
// configurable (ADB_PATH / adb.path) and command execution is injectable
// for tests.
package adb

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// runner executes the adb binary with arguments and returns combined output.
type runner func(ctx context.Context, path string, args ...string) ([]byte, error)

func execRun(ctx context.Context, path string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, path, args...).CombinedOutput()
}

// Client drives a local adb binary.
type Client struct {
	path string
	run  runner
}

// New returns a Client for the adb binary at path. An empty path means "adb"
// resolved via PATH.
func New(path string) *Client {
	if path == "" {
		path = "adb"
	}
	return &Client{path: path, run: execRun}
}

// Path returns the binary path the client was configured with.
func (c *Client) Path() string { return c.path }

// Available reports whether the configured binary can be resolved.
func (c *Client) Available() bool {
	_, err := exec.LookPath(c.path)
	return err == nil
}

// Device is one row of `adb devices -l` output.
type Device struct {
	Serial     string
	State      string // "device", "unauthorized", "offline", ...
	Properties map[string]string
}

// Devices lists attached devices with their -l properties.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	output, err := c.run(ctx, c.path, "devices", "-l")
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w\n%s", err, strings.TrimSpace(string(output)))
	}
	return parseDevices(string(output)), nil
}

// ListRaw runs the plain `adb devices` listing and copies its output to w.
// The caller decides whether a failure matters; during setup it does not.
func (c *Client) ListRaw(ctx context.Context, w io.Writer) error {
	output, err := c.run(ctx, c.path, "devices")
	if len(output) > 0 {
		fmt.Fprintln(w, strings.TrimRight(string(output), "\n"))
	}
	if err != nil {
		return fmt.Errorf("listing devices: %w", err)
	}
	return nil
}

// parseDevices parses `adb devices -l` output. Header, daemon-startup, and
// blank lines are skipped.
func parseDevices(output string) []Device {
	var devices []Device
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" ||
			strings.HasPrefix(line, "List of devices") ||
			strings.HasPrefix(line, "*") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		dev := Device{Serial: fields[0], State: fields[1]}
		for _, f := range fields[2:] {
			key, value, found := strings.Cut(f, ":")
			if !found {
				continue
			}
			if dev.Properties == nil {
				dev.Properties = make(map[string]string)
			}
			dev.Properties[key] = value
		}
		devices = append(devices, dev)
	}
	return devices
}
