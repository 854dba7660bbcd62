// Package toolchain probes the host for the external tools the bootstrapper
// drives (git, uv, adb), parses their reported versions, and supplies
// per-platform install guidance for anything missing.
package toolchain
