package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/schema"
)

// WriteVersions outputs the filtered release history for a coordinate,
// dispatching based on the output format configured.
func WriteVersions(coord schema.Coordinate, versions []string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeVersionsJSON(w, coord, versions)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeVersionsCSV(w, versions)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeVersionsText(w, coord, versions)
		}, "Wrote versions")
	}
}

// writeVersionsText lists versions one per line, oldest first.
func writeVersionsText(w io.Writer, coord schema.Coordinate, versions []string) error {
	if _, err := fmt.Fprintf(w, "Release history for %s (%d versions)\n", coord, len(versions)); err != nil {
		return err
	}
	for _, v := range versions {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// writeVersionsCSV writes the release history in CSV format.
func writeVersionsCSV(w io.Writer, versions []string) error {
	return writeCSVWithHeader(w, []string{"order", "version"}, func(cw *csv.Writer) error {
		for i, v := range versions {
			if err := cw.Write([]string{strconv.Itoa(i + 1), v}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeVersionsJSON writes the release history in JSON format.
func writeVersionsJSON(w io.Writer, coord schema.Coordinate, versions []string) error {
	return writeJSON(w, struct {
		Coordinate schema.Coordinate `json:"coordinate"`
		Versions   []string          `json:"versions"`
	}{Coordinate: coord, Versions: versions})
}
