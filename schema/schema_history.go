package schema

import "time"

// RunRecord represents one completed scoring run in the history store.
type RunRecord struct {
	RunID      int64     `json:"run_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	GroupID    string    `json:"group_id"`
	ArtifactID string    `json:"artifact_id"`

	TotalAmounts     int     `json:"total_amounts"`
	TotalScore       float64 `json:"total_score"`
	MinorAmounts     int     `json:"minor_amounts"`
	MinorScore       float64 `json:"minor_score"`
	PatchAmounts     int     `json:"patch_amounts"`
	PatchScore       float64 `json:"patch_score"`
	IrregularAmounts int     `json:"irregular_amounts"`
	IrregularScore   float64 `json:"irregular_score"`

	ScorecardScore   float64 `json:"scorecard_score"`
	HasScorecard     bool    `json:"has_scorecard"`
	ReleaseFrequency float64 `json:"release_frequency_days"`
}

// NewRunRecord flattens a TrustReport into a history row.
func NewRunRecord(report *TrustReport, start, end time.Time) RunRecord {
	rec := RunRecord{
		StartTime:        start,
		EndTime:          end,
		GroupID:          report.Coordinate.GroupID,
		ArtifactID:       report.Coordinate.ArtifactID,
		TotalAmounts:     report.Compatibility.TotalAmounts,
		TotalScore:       report.Compatibility.TotalScore,
		MinorAmounts:     report.Compatibility.MinorAmounts,
		MinorScore:       report.Compatibility.MinorScore,
		PatchAmounts:     report.Compatibility.PatchAmounts,
		PatchScore:       report.Compatibility.PatchScore,
		IrregularAmounts: report.Compatibility.IrregularAmounts,
		IrregularScore:   report.Compatibility.IrregularScore,
		HasScorecard:     report.Scorecard.Available,
		ReleaseFrequency: report.ReleaseFrequencyDays,
	}
	if report.Scorecard.Available {
		rec.ScorecardScore = report.Scorecard.Score
	}
	return rec
}
