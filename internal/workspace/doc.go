// Package workspace locates and acquires the kernel working copy. It decides
// whether the current directory already is the project root (marker files),
// reuses an existing checkout when the target directory holds git metadata,
// clones the kernel repository otherwise, and reports checkout state
// (branch, HEAD) for existing working copies.
package workspace
