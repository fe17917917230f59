package report

import (
	"fmt"

	"github.com/RyanBlaney/speech-analyzer/pkg/audio/analysis"
)

// FrameTable renders per-frame results as rows for the CSV and table
// formatters.
type FrameTable struct {
	results    []*analysis.FrameResult
	calculator *SummaryCalculator
	precision  int
}

// NewFrameTable creates a tabular view over frame results. precision controls
// the number of fractional digits in numeric cells.
func NewFrameTable(results []*analysis.FrameResult, calculator *SummaryCalculator, precision int) *FrameTable {
	if precision <= 0 {
		precision = 2
	}

	return &FrameTable{
		results:    results,
		calculator: calculator,
		precision:  precision,
	}
}

// Headers implements output.Tabular.
func (t *FrameTable) Headers() []string {
	return []string{"frame", "f0_hz", "period_s", "lag", "f1_hz", "f2_hz", "f3_hz", "status"}
}

// Rows implements output.Tabular.
func (t *FrameTable) Rows() [][]string {
	rows := make([][]string, 0, len(t.results))
	for i, r := range t.results {
		row := []string{fmt.Sprintf("%d", i), "", "", "", "", "", "", "ok"}

		if r.Pitch != nil {
			row[1] = t.float(r.Pitch.F0)
			row[2] = fmt.Sprintf("%.*f", t.precision+3, r.Pitch.Period)
			row[3] = fmt.Sprintf("%d", r.Pitch.Lag)
		}

		candidates := t.calculator.FormantCandidates(r.Peaks)
		for j := 0; j < 3 && j < len(candidates); j++ {
			row[4+j] = t.float(candidates[j].Frequency)
		}

		switch {
		case r.PitchError != nil && r.LPCError != nil:
			row[7] = "failed"
		case r.PitchError != nil:
			row[7] = "unvoiced"
		case r.LPCError != nil:
			row[7] = "lpc_failed"
		}

		rows = append(rows, row)
	}
	return rows
}

func (t *FrameTable) float(v float64) string {
	return fmt.Sprintf("%.*f", t.precision, v)
}
