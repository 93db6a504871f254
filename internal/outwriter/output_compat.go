package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteScoreRecord outputs a standalone compatibility score, dispatching
// based on the output format configured.
func WriteScoreRecord(record schema.ScoreRecord, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreJSON(w, record)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreCSV(w, record, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTable(w, record, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeScoreTable generates the human-readable compatibility table.
func writeScoreTable(w io.Writer, record schema.ScoreRecord, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "Compatibility score for %s\n", record.Coordinate); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Class", "Transitions", "Score", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Total", strconv.Itoa(record.TransitionCount()), fmtFloat(record.TotalScore), labelFor(record.TotalScore, cfg.UseColors)},
		{"Minor", strconv.Itoa(record.MinorAmounts), scoreCell(record.MinorScore, record.MinorAmounts, fmtFloat), classLabel(record.MinorScore, record.MinorAmounts, cfg.UseColors)},
		{"Patch", strconv.Itoa(record.PatchAmounts), scoreCell(record.PatchScore, record.PatchAmounts, fmtFloat), classLabel(record.PatchScore, record.PatchAmounts, cfg.UseColors)},
		{"Irregular", strconv.Itoa(record.IrregularAmounts), scoreCell(record.IrregularScore, record.IrregularAmounts, fmtFloat), classLabel(record.IrregularScore, record.IrregularAmounts, cfg.UseColors)},
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Scored %d versions in %v with %d workers\n",
		record.TotalAmounts, duration.Round(timeRounding), cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeScoreCSV writes the compatibility record as a single CSV row.
func writeScoreCSV(w io.Writer, record schema.ScoreRecord, fmtFloat func(float64) string) error {
	header := []string{
		"group_id", "artifact_id",
		"total_amounts", "total_score", "label",
		"minor_amounts", "minor_score",
		"patch_amounts", "patch_score",
		"irregular_amounts", "irregular_score",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		rec := []string{
			record.Coordinate.GroupID,
			record.Coordinate.ArtifactID,
			strconv.Itoa(record.TotalAmounts),
			fmtFloat(record.TotalScore),
			contract.GetPlainLabel(record.TotalScore),
			strconv.Itoa(record.MinorAmounts),
			fmtFloat(record.MinorScore),
			strconv.Itoa(record.PatchAmounts),
			fmtFloat(record.PatchScore),
			strconv.Itoa(record.IrregularAmounts),
			fmtFloat(record.IrregularScore),
		}
		return cw.Write(rec)
	})
}

// writeScoreJSON writes the compatibility record in JSON format with a label added.
func writeScoreJSON(w io.Writer, record schema.ScoreRecord) error {
	type JSONScoreRecord struct {
		Label string `json:"label"`
		schema.ScoreRecord
	}
	return writeJSON(w, JSONScoreRecord{
		Label:       contract.GetPlainLabel(record.TotalScore),
		ScoreRecord: record,
	})
}
