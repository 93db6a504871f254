package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Trust label constants.
const (
	StrongValue   = "Strong"   // Strong trust signal
	ModerateValue = "Moderate" // Moderate trust signal
	WeakValue     = "Weak"     // Weak trust signal
	PoorValue     = "Poor"     // Poor trust signal
)

// Color variables for console output.
var (
	StrongColor   = color.New(color.FgGreen, color.Bold) // strongColor represents a healthy signal.
	ModerateColor = color.New(color.FgCyan)              // moderateColor represents an acceptable signal.
	WeakColor     = color.New(color.FgYellow)            // weakColor represents standard caution.
	PoorColor     = color.New(color.FgRed, color.Bold)   // poorColor represents standard danger.
)

// GetPlainLabel returns a plain text label for a compatibility ratio in [0,1].
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(ratio float64) string {
	switch {
	case ratio >= 0.9:
		return StrongValue
	case ratio >= 0.7:
		return ModerateValue
	case ratio >= 0.4:
		return WeakValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(ratio float64) string {
	text := GetPlainLabel(ratio)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	case WeakValue:
		return WeakColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for empty paths.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr. A nil error logs the message alone.
func LogWarn(msg string, err error) {
	if err == nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warn %s\n", msg)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogInfo logs an informational message to stderr.
func LogInfo(msg string) {
	_, _ = fmt.Fprintf(os.Stderr, "Info %s\n", msg)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".trustscore_history.db"
	}
	return filepath.Join(homeDir, ".trustscore_history.db")
}

// GetJapicmpJarPath returns the default on-disk location for the japicmp jar.
func GetJapicmpJarPath(version string) string {
	name := fmt.Sprintf("japicmp-%s-jar-with-dependencies.jar", version)
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return name
	}
	return filepath.Join(cacheDir, "trustscore", name)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
