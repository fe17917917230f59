package report

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/speech-analyzer/pkg/audio/analysis"
	"github.com/RyanBlaney/speech-analyzer/pkg/logging"
)

// MaxFormants bounds how many envelope peaks are reported as formant
// candidates per frame.
const MaxFormants = 4

// Stats represents statistical measures of a per-frame quantity.
type Stats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P95    float64 `json:"p95"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
	Count  int     `json:"count"`
}

// AnalysisSummary aggregates per-frame results for one recording.
type AnalysisSummary struct {
	TotalFrames  int            `json:"total_frames"`
	VoicedFrames int            `json:"voiced_frames"`
	VoicedRate   float64        `json:"voiced_rate"`
	Pitch        *Stats         `json:"pitch,omitempty"`         // F0 in Hz over voiced frames
	FirstFormant *Stats         `json:"first_formant,omitempty"` // F1 candidates in Hz
	ErrorCounts  map[string]int `json:"error_counts,omitempty"`  // per error kind
}

// SummaryCalculator aggregates frame results into recording-level statistics.
type SummaryCalculator struct {
	sampleRate int
	logger     logging.Logger
}

// NewSummaryCalculator creates a new summary calculator.
func NewSummaryCalculator(sampleRate int, logger logging.Logger) *SummaryCalculator {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &SummaryCalculator{
		sampleRate: sampleRate,
		logger:     logger,
	}
}

// FormantCandidates applies the caller-side peak filtering the extractor
// leaves open: the lowest few peaks below half the sample rate. Peaks beyond
// that, including the conjugate mirror near Nyquist, are not formants.
func (sc *SummaryCalculator) FormantCandidates(peaks []analysis.Peak) []analysis.Peak {
	nyquist := float64(sc.sampleRate) / 2.0

	candidates := make([]analysis.Peak, 0, MaxFormants)
	for _, p := range peaks {
		if p.Frequency >= nyquist {
			break
		}
		candidates = append(candidates, p)
		if len(candidates) == MaxFormants {
			break
		}
	}
	return candidates
}

// Summarize computes recording-level statistics over per-frame results.
// Frames with failed paths contribute to the error tallies and are excluded
// from the corresponding statistic.
func (sc *SummaryCalculator) Summarize(results []*analysis.FrameResult) *AnalysisSummary {
	summary := &AnalysisSummary{
		TotalFrames: len(results),
		ErrorCounts: make(map[string]int),
	}

	var pitches []float64
	var firstFormants []float64

	for _, r := range results {
		if r.PitchError != nil {
			summary.ErrorCounts[errorKind(r.PitchError)]++
		} else if r.Pitch != nil {
			summary.VoicedFrames++
			pitches = append(pitches, r.Pitch.F0)
		}

		if r.LPCError != nil {
			summary.ErrorCounts[errorKind(r.LPCError)]++
			continue
		}
		if candidates := sc.FormantCandidates(r.Peaks); len(candidates) > 0 {
			firstFormants = append(firstFormants, candidates[0].Frequency)
		}
	}

	if summary.TotalFrames > 0 {
		summary.VoicedRate = float64(summary.VoicedFrames) / float64(summary.TotalFrames)
	}
	summary.Pitch = calculateStats(pitches)
	summary.FirstFormant = calculateStats(firstFormants)

	sc.logger.Debug("analysis summary computed", logging.Fields{
		"total_frames":  summary.TotalFrames,
		"voiced_frames": summary.VoicedFrames,
		"error_kinds":   len(summary.ErrorCounts),
	})

	return summary
}

// calculateStats computes statistical measures for a slice of values.
func calculateStats(values []float64) *Stats {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	stddev := 0.0
	if len(sorted) > 1 {
		stddev = stat.StdDev(sorted, nil)
	}

	return &Stats{
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		StdDev: stddev,
		Count:  len(sorted),
	}
}

// errorKind maps a per-frame error to its tally bucket.
func errorKind(err error) string {
	switch {
	case errors.Is(err, analysis.ErrNoPeriodicityFound):
		return "no_periodicity"
	case errors.Is(err, analysis.ErrDegenerateLPC):
		return "degenerate_lpc"
	case errors.Is(err, analysis.ErrEnvelopeSingularity):
		return "envelope_singularity"
	case errors.Is(err, analysis.ErrInvalidInput):
		return "invalid_input"
	default:
		return "other"
	}
}
