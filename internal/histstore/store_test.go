package histstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/trustscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *HistoryStoreImpl {
	t.Helper()
	store, err := NewHistoryStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*HistoryStoreImpl)
}

func sampleRun(artifact string, score float64) schema.RunRecord {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return schema.RunRecord{
		StartTime:        now.Add(-2 * time.Second),
		EndTime:          now,
		GroupID:          "org.example",
		ArtifactID:       artifact,
		TotalAmounts:     10,
		TotalScore:       score,
		MinorAmounts:     3,
		MinorScore:       0.66,
		PatchAmounts:     5,
		PatchScore:       1.0,
		IrregularAmounts: 1,
		IrregularScore:   0,
		ScorecardScore:   6.5,
		HasScorecard:     true,
		ReleaseFrequency: 42.5,
	}
}

// TestRecordAndListRuns round-trips records through SQLite, newest first.
func TestRecordAndListRuns(t *testing.T) {
	store := openTestStore(t)

	first, err := store.RecordRun(sampleRun("widget", 0.5))
	require.NoError(t, err)
	second, err := store.RecordRun(sampleRun("gadget", 0.8))
	require.NoError(t, err)
	assert.Greater(t, second, first)

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "gadget", runs[0].ArtifactID)
	assert.Equal(t, "widget", runs[1].ArtifactID)
	assert.InDelta(t, 0.8, runs[0].TotalScore, 1e-9)
	assert.True(t, runs[0].HasScorecard)
	assert.InDelta(t, 42.5, runs[0].ReleaseFrequency, 1e-9)
	assert.False(t, runs[0].StartTime.IsZero())
}

// TestListRunsHonorsLimit caps the returned rows.
func TestListRunsHonorsLimit(t *testing.T) {
	store := openTestStore(t)
	for range 5 {
		_, err := store.RecordRun(sampleRun("widget", 0.5))
		require.NoError(t, err)
	}

	runs, err := store.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

// TestCountAndClear counts rows and wipes the table.
func TestCountAndClear(t *testing.T) {
	store := openTestStore(t)
	for range 3 {
		_, err := store.RecordRun(sampleRun("widget", 0.5))
		require.NoError(t, err)
	}

	count, err := store.CountRuns()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, store.Clear())
	count, err = store.CountRuns()
	require.NoError(t, err)
	assert.Zero(t, count)
}

// TestNoneBackendIsNoOp ignores every operation when history is disabled.
func TestNoneBackendIsNoOp(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	id, err := store.RecordRun(sampleRun("widget", 0.5))
	require.NoError(t, err)
	assert.Zero(t, id)

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	count, err := store.CountRuns()
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.NoError(t, store.Clear())
	assert.Equal(t, schema.NoneBackend, store.Backend())
}

// TestUnsupportedBackend rejects unknown backend names.
func TestUnsupportedBackend(t *testing.T) {
	_, err := NewHistoryStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}
