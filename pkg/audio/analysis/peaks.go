package analysis

// Peak is a local maximum of a spectral envelope. Formant candidates are the
// lowest few peaks below roughly half the sample rate; filtering peaks near
// Nyquist (created by conjugate mirroring) is a caller concern, this
// component reports raw local maxima.
type Peak struct {
	Index     int     `json:"index"`
	Value     float64 `json:"value"`
	Frequency float64 `json:"frequency"`
}

// PeakExtractorOptions tune the optional refinements on top of the baseline
// three-point local-maximum scan. Zero values leave the baseline behavior
// unchanged.
type PeakExtractorOptions struct {
	// MinProminence drops peaks whose value is below this fraction of the
	// strongest detected peak.
	MinProminence float64

	// MinSeparation drops a peak closer than this many bins to a previously
	// accepted stronger peak.
	MinSeparation int
}

// PeakExtractor scans an envelope for local maxima.
type PeakExtractor struct {
	opts PeakExtractorOptions
}

// NewPeakExtractor creates a baseline extractor with no refinement filtering.
func NewPeakExtractor() *PeakExtractor {
	return &PeakExtractor{}
}

// NewPeakExtractorWithOptions creates an extractor with prominence and
// separation refinements enabled.
func NewPeakExtractorWithOptions(opts PeakExtractorOptions) *PeakExtractor {
	return &PeakExtractor{opts: opts}
}

// FindPeaks reports every interior index where the envelope is non-decreasing
// from the left neighbor and non-increasing to the right neighbor, inclusive
// of plateaus on the rising side. Peaks arrive in ascending frequency order.
func (pe *PeakExtractor) FindPeaks(env *Envelope) []Peak {
	if env == nil || len(env.Values) < 3 {
		return nil
	}

	values := env.Values
	peaks := make([]Peak, 0, 8)
	for i := 1; i <= len(values)-2; i++ {
		if values[i] >= values[i-1] && values[i] >= values[i+1] {
			peaks = append(peaks, Peak{
				Index:     i,
				Value:     values[i],
				Frequency: env.Frequencies[i],
			})
		}
	}

	if pe.opts.MinProminence > 0 || pe.opts.MinSeparation > 0 {
		peaks = pe.refine(peaks)
	}

	return peaks
}

// refine applies the configured prominence and separation filters while
// preserving ascending frequency order.
func (pe *PeakExtractor) refine(peaks []Peak) []Peak {
	if len(peaks) == 0 {
		return peaks
	}

	maxValue := peaks[0].Value
	for _, p := range peaks[1:] {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}
	threshold := pe.opts.MinProminence * maxValue

	kept := make([]Peak, 0, len(peaks))
	for _, p := range peaks {
		if p.Value < threshold {
			continue
		}

		if pe.opts.MinSeparation > 0 {
			conflict := false
			for i, q := range kept {
				if p.Index-q.Index < pe.opts.MinSeparation {
					if p.Value > q.Value {
						kept[i] = p
					}
					conflict = true
					break
				}
			}
			if conflict {
				continue
			}
		}

		kept = append(kept, p)
	}

	return kept
}
