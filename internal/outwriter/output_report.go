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

// maxScorecardScore is the top of the OpenSSF scorecard scale.
const maxScorecardScore = 10.0

// WriteTrustReport outputs a full trust report, dispatching based on the
// output format configured.
func WriteTrustReport(report *schema.TrustReport, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, report, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, report, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeReportTable generates the human-readable trust report table.
func writeReportTable(w io.Writer, report *schema.TrustReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Trust report for %s\n", report.Coordinate); err != nil {
		return err
	}
	if report.RepositoryURL != "" {
		if _, err := fmt.Fprintf(w, "Repository: %s\n", report.RepositoryURL); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Signal", "Value", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	compat := report.Compatibility
	data := [][]string{
		{"Compatibility", fmtFloat(compat.TotalScore), labelFor(compat.TotalScore, cfg.UseColors)},
		{"Minor updates", scoreCell(compat.MinorScore, compat.MinorAmounts, fmtFloat), classLabel(compat.MinorScore, compat.MinorAmounts, cfg.UseColors)},
		{"Patch updates", scoreCell(compat.PatchScore, compat.PatchAmounts, fmtFloat), classLabel(compat.PatchScore, compat.PatchAmounts, cfg.UseColors)},
		{"Irregular updates", scoreCell(compat.IrregularScore, compat.IrregularAmounts, fmtFloat), classLabel(compat.IrregularScore, compat.IrregularAmounts, cfg.UseColors)},
		{"Scorecard", scorecardCell(report.Scorecard, fmtFloat), scorecardLabel(report.Scorecard, cfg.UseColors)},
		{"Release cadence", cadenceCell(report.ReleaseFrequencyDays, fmtFloat), ""},
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Scored %d versions across %d transitions\n",
		compat.TotalAmounts, compat.TransitionCount()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Completed in %v with %d workers\n", report.Duration.Round(timeRounding), cfg.Workers); err != nil {
		return err
	}

	if report.Scorecard.RawOutput != "" {
		if _, err := fmt.Fprintf(w, "\nScorecard output:\n%s\n", report.Scorecard.RawOutput); err != nil {
			return err
		}
	}
	return nil
}

// writeReportCSV writes the trust report as a single CSV row.
func writeReportCSV(w io.Writer, report *schema.TrustReport, fmtFloat func(float64) string) error {
	header := []string{
		"group_id", "artifact_id", "repository_url",
		"total_amounts", "total_score", "label",
		"minor_amounts", "minor_score",
		"patch_amounts", "patch_score",
		"irregular_amounts", "irregular_score",
		"scorecard_score", "release_frequency_days",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		compat := report.Compatibility
		rec := []string{
			report.Coordinate.GroupID,
			report.Coordinate.ArtifactID,
			report.RepositoryURL,
			strconv.Itoa(compat.TotalAmounts),
			fmtFloat(compat.TotalScore),
			contract.GetPlainLabel(compat.TotalScore),
			strconv.Itoa(compat.MinorAmounts),
			fmtFloat(compat.MinorScore),
			strconv.Itoa(compat.PatchAmounts),
			fmtFloat(compat.PatchScore),
			strconv.Itoa(compat.IrregularAmounts),
			fmtFloat(compat.IrregularScore),
			fmtFloat(report.Scorecard.Score),
			fmtFloat(report.ReleaseFrequencyDays),
		}
		return cw.Write(rec)
	})
}

// writeReportJSON writes the trust report in JSON format with a label added.
func writeReportJSON(w io.Writer, report *schema.TrustReport) error {
	type JSONTrustReport struct {
		Label string `json:"label"`
		*schema.TrustReport
	}
	return writeJSON(w, JSONTrustReport{
		Label:       contract.GetPlainLabel(report.Compatibility.TotalScore),
		TrustReport: report,
	})
}

// scoreCell renders a per-classification score, or a dash when no update of
// that class exists in the history.
func scoreCell(score float64, amount int, fmtFloat func(float64) string) string {
	if amount == 0 {
		return "-"
	}
	return fmt.Sprintf("%s (%d)", fmtFloat(score), amount)
}

// classLabel labels a per-classification score, blank when not applicable.
func classLabel(score float64, amount int, useColors bool) string {
	if amount == 0 {
		return ""
	}
	return labelFor(score, useColors)
}

// scorecardCell renders the scorecard score on its native 0-10 scale.
func scorecardCell(result schema.ScorecardResult, fmtFloat func(float64) string) string {
	if !result.Available {
		return "n/a"
	}
	return fmtFloat(result.Score) + "/10"
}

// scorecardLabel labels the scorecard score after normalizing to [0,1].
func scorecardLabel(result schema.ScorecardResult, useColors bool) string {
	if !result.Available {
		return ""
	}
	return labelFor(result.Score/maxScorecardScore, useColors)
}

// cadenceCell renders the average days between releases.
func cadenceCell(days float64, fmtFloat func(float64) string) string {
	if days == 0 {
		return "n/a"
	}
	return fmtFloat(days) + " days"
}
