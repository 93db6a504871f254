// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/trustscore/internal/contract"
	"golang.org/x/term"
)

// timeRounding keeps durations readable in table footers.
const timeRounding = time.Millisecond

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatter creates the float formatter closure shared by all writers.
func createFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}

// labelFor renders a trust label for a ratio, colored for terminal tables.
func labelFor(ratio float64, useColors bool) string {
	if useColors {
		return contract.GetColorLabel(ratio)
	}
	return contract.GetPlainLabel(ratio)
}

// getMaxCoordinateWidth calculates the width available for artifact
// coordinates in table output based on terminal width.
func getMaxCoordinateWidth() int {
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Fallback to conservative default for narrow terminals and CI
		detectedWidth = 80
	}

	// Reserve space for score, label, and timestamp columns with padding
	available := detectedWidth - 50
	if available < 20 {
		return 20
	}
	if available > 60 {
		return 60
	}
	return available
}

// truncateCoordinate shortens long coordinates from the left, keeping the
// artifact id visible since it carries the most signal.
func truncateCoordinate(coord string, maxWidth int) string {
	if len(coord) <= maxWidth {
		return coord
	}
	return "…" + coord[len(coord)-maxWidth+1:]
}
