//go:build debug

package debug

// Debug enables the expensive whole-heap invariant checks and full stack
// traces. Build with -tags=debug to set it.
const Debug = true
