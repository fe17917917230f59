package analysis

import "errors"

// Sentinel errors for per-frame analysis failures. All of these are local to
// a single frame: callers analyzing many frames should flag or skip the frame
// and continue with the next one.
var (
	// ErrInvalidInput indicates an empty signal, a non-positive sample rate,
	// or a window length below 2 samples.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoPeriodicityFound indicates the autocorrelation search range
	// contained no local maximum, so no reliable pitch exists for the frame.
	ErrNoPeriodicityFound = errors.New("no periodicity found")

	// ErrDegenerateLPC indicates the Levinson-Durbin recursion hit
	// non-positive residual energy before reaching the requested order.
	ErrDegenerateLPC = errors.New("degenerate LPC recursion")

	// ErrEnvelopeSingularity indicates a zero spectral magnitude would make
	// the envelope reciprocal unbounded and no floor guard was configured.
	ErrEnvelopeSingularity = errors.New("envelope singularity")
)
