//go:build !amd64 && !arm64

package cpu

func init() {
	// No vector feature flags to probe; selection resolves to Generic
	// unless MEMALIGN_SIMD forces an ISA (which cannot be available here).
	initCapabilities()
}
