package stamp

import "github.com/jonboulle/clockwork"

// Now captures the current UTC instant from clk. The clock is the only
// impure seam in the package; tests pass a clockwork fake for determinism.
func Now(clk clockwork.Clock) Instant {
	return Instant{t: clk.Now().UTC()}
}

// SystemNow captures the current UTC instant from the system clock.
func SystemNow() Instant {
	return Now(clockwork.NewRealClock())
}
