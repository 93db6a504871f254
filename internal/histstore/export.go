package histstore

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/schema"
	"github.com/parquet-go/parquet-go"
)

// ScoringRun maps one history row to a Parquet record. The schema is derived
// from the struct tags by the generic writer.
type ScoringRun struct {
	RunID      int64     `parquet:"run_id,snappy"`
	StartTime  time.Time `parquet:"start_time,snappy"`
	EndTime    time.Time `parquet:"end_time,snappy"`
	GroupID    string    `parquet:"group_id,snappy"`
	ArtifactID string    `parquet:"artifact_id,snappy"`

	TotalAmounts     int32   `parquet:"total_amounts,snappy"`
	TotalScore       float64 `parquet:"total_score,snappy"`
	MinorAmounts     int32   `parquet:"minor_amounts,snappy"`
	MinorScore       float64 `parquet:"minor_score,snappy"`
	PatchAmounts     int32   `parquet:"patch_amounts,snappy"`
	PatchScore       float64 `parquet:"patch_score,snappy"`
	IrregularAmounts int32   `parquet:"irregular_amounts,snappy"`
	IrregularScore   float64 `parquet:"irregular_score,snappy"`

	ScorecardScore   float64 `parquet:"scorecard_score,snappy"`
	HasScorecard     bool    `parquet:"has_scorecard,snappy"`
	ReleaseFrequency float64 `parquet:"release_frequency_days,snappy"`
}

// ConvertRunRecords converts schema.RunRecord rows into Parquet records.
func ConvertRunRecords(records []schema.RunRecord) []ScoringRun {
	result := make([]ScoringRun, len(records))
	for i, record := range records {
		result[i] = ScoringRun{
			RunID:            record.RunID,
			StartTime:        record.StartTime,
			EndTime:          record.EndTime,
			GroupID:          record.GroupID,
			ArtifactID:       record.ArtifactID,
			TotalAmounts:     int32(record.TotalAmounts),
			TotalScore:       record.TotalScore,
			MinorAmounts:     int32(record.MinorAmounts),
			MinorScore:       record.MinorScore,
			PatchAmounts:     int32(record.PatchAmounts),
			PatchScore:       record.PatchScore,
			IrregularAmounts: int32(record.IrregularAmounts),
			IrregularScore:   record.IrregularScore,
			ScorecardScore:   record.ScorecardScore,
			HasScorecard:     record.HasScorecard,
			ReleaseFrequency: record.ReleaseFrequency,
		}
	}
	return result
}

// WriteRunsParquet writes scoring runs to a Parquet file.
func WriteRunsParquet(data []ScoringRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the ScoringRun struct tags
	writer := parquet.NewGenericWriter[ScoringRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ExecuteExport dumps the full run history to a Parquet file.
func ExecuteExport(store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export")
	}

	count, err := store.CountRuns()
	if err != nil {
		return fmt.Errorf("failed to get run count: %w", err)
	}
	if count == 0 {
		return errors.New("no run history found to export")
	}

	runs, err := store.ListRuns(count)
	if err != nil {
		return fmt.Errorf("failed to retrieve run history: %w", err)
	}

	parquetFile := outputFile + ".runs.parquet"
	if err := WriteRunsParquet(ConvertRunRecords(runs), parquetFile); err != nil {
		return fmt.Errorf("failed to write run history: %w", err)
	}

	fmt.Printf("Exported %d runs from %s backend to: %s\n", len(runs), store.Backend(), parquetFile)
	return nil
}
