package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/trustscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScoreRecord() schema.ScoreRecord {
	return schema.ScoreRecord{
		Coordinate:       schema.Coordinate{GroupID: "org.example", ArtifactID: "widget"},
		TotalAmounts:     10,
		TotalScore:       0.4,
		MinorAmounts:     4,
		MinorScore:       0.5,
		PatchAmounts:     3,
		PatchScore:       1.0,
		IrregularAmounts: 1,
		IrregularScore:   0,
	}
}

func TestWriteScoreTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeScoreTable(&buf, sampleScoreRecord(), plainConfig(), createFormatter(2), 2*time.Second)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Compatibility score for org.example:widget")
	assert.Contains(t, out, "0.40")
	assert.Contains(t, out, "Weak")
	assert.Contains(t, out, "Scored 10 versions")
}

func TestWriteScoreJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeScoreJSON(&buf, sampleScoreRecord())
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "Weak", result["label"])
	assert.Equal(t, 0.4, result["total_score"])
	assert.Equal(t, float64(4), result["minor_amounts"])
}

func TestWriteScoreCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeScoreCSV(&buf, sampleScoreRecord(), createFormatter(2))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "org.example,widget")
	assert.Contains(t, lines[1], "0.40")
	assert.Contains(t, lines[1], "Weak")
}
