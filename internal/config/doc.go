// Package config manages the two configuration surfaces of the bootstrapper:
// user-level tool settings stored at ~/.aak/config.yaml (clone URL, target
// directory, adb path) and the kernel's runtime environment contract
// (provider selection, API keys, step limits) resolved from process env plus
// an optional .env file in the workspace root.
package config
