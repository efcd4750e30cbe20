package d3d

// DefaultTimeoutMs is the wait bound applied to AcquireNextFrame when no
// other value is configured.
const DefaultTimeoutMs = 500

// Options configures an OutputDuplicator.
type Options struct {
	// Adapter and Output select the display to duplicate. Both are
	// zero-based; invalid indices produce a ConfigurationError.
	Adapter int
	Output  int

	// TimeoutMs bounds the per-call wait for a new frame. Zero selects
	// DefaultTimeoutMs.
	TimeoutMs uint

	// EmitRGBA swizzles the output image (and decoded color cursor shapes)
	// from the native BGRA layout to RGBA.
	EmitRGBA bool

	// Pointer optionally shares one cursor state between several
	// per-output duplicators, so the output that saw the most recent
	// mouse update wins. Nil gets a private instance.
	Pointer *PointerState
}

// DefaultOptions returns options for the primary output of the primary
// adapter with the default wait bound.
func DefaultOptions() Options {
	return Options{TimeoutMs: DefaultTimeoutMs}
}

// timeout returns the effective wait bound, falling back to the default for
// a zero-valued Options.
func (o Options) timeout() uint {
	if o.TimeoutMs == 0 {
		return DefaultTimeoutMs
	}
	return o.TimeoutMs
}
