package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRunHistory outputs stored scoring runs, newest first, dispatching
// based on the output format configured.
func WriteRunHistory(runs []schema.RunRecord, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryCSV(w, runs, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(w, runs, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeHistoryTable generates the human-readable run history table.
func writeHistoryTable(w io.Writer, runs []schema.RunRecord, cfg *contract.Config, fmtFloat func(float64) string) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No scoring runs recorded yet")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Run", "When", "Coordinate", "Score", "Label", "Scorecard"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxCoordinateWidth()
	var data [][]string
	for _, run := range runs {
		coord := run.GroupID + ":" + run.ArtifactID
		scorecard := "n/a"
		if run.HasScorecard {
			scorecard = fmtFloat(run.ScorecardScore)
		}
		data = append(data, []string{
			strconv.FormatInt(run.RunID, 10),
			run.EndTime.Format(contract.DateTimeFormat),
			truncateCoordinate(coord, maxWidth),
			fmtFloat(run.TotalScore),
			labelFor(run.TotalScore, cfg.UseColors),
			scorecard,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d runs\n", len(runs))
	return err
}

// writeHistoryCSV writes the run history in CSV format.
func writeHistoryCSV(w io.Writer, runs []schema.RunRecord, fmtFloat func(float64) string) error {
	header := []string{
		"run_id", "start_time", "end_time", "group_id", "artifact_id",
		"total_amounts", "total_score", "label",
		"minor_score", "patch_score", "irregular_score",
		"scorecard_score", "release_frequency_days",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, run := range runs {
			rec := []string{
				strconv.FormatInt(run.RunID, 10),
				run.StartTime.Format(contract.DateTimeFormat),
				run.EndTime.Format(contract.DateTimeFormat),
				run.GroupID,
				run.ArtifactID,
				strconv.Itoa(run.TotalAmounts),
				fmtFloat(run.TotalScore),
				contract.GetPlainLabel(run.TotalScore),
				fmtFloat(run.MinorScore),
				fmtFloat(run.PatchScore),
				fmtFloat(run.IrregularScore),
				fmtFloat(run.ScorecardScore),
				fmtFloat(run.ReleaseFrequency),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
