// Package cli defines the aak command tree: setup (the bootstrap checklist),
// doctor (environment diagnostics), devices, env, status, config, and
// version.
package cli
