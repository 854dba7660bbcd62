package toolchain

import "runtime"

// fallbackOS keys the generic hint in the tables below.
const fallbackOS = ""

// installHints maps tool name → GOOS → one-line install command. The empty
// GOOS key is the generic fallback for platforms without a dedicated hint.
var installHints = map[string]map[string]string{
	ToolUV: {
		fallbackOS: "curl -LsSf https://astral.sh/uv/install.sh | sh",
	},
	ToolADB: {
		"darwin":   "brew install android-platform-tools",
		"linux":    "sudo apt-get install -y adb",
		fallbackOS: "download platform-tools from https://developer.android.com/tools/releases/platform-tools and add it to PATH",
	},
	ToolGit: {
		"darwin":   "xcode-select --install",
		"linux":    "sudo apt-get install -y git",
		fallbackOS: "install git from https://git-scm.com/downloads",
	},
}

// InstallHint returns the install command for a tool on the current platform.
func InstallHint(tool string) string {
	return InstallHintFor(tool, runtime.GOOS)
}

// InstallHintFor returns the install command for a tool on the given GOOS,
// falling back to the generic hint when the platform has no dedicated one.
// Unknown tools yield an empty string.
func InstallHintFor(tool, goos string) string {
	hints, ok := installHints[tool]
	if !ok {
		return ""
	}
	if hint, ok := hints[goos]; ok {
		return hint
	}
	return hints[fallbackOS]
}
