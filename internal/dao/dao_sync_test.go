package dao

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haierkeys/memos-mirror/internal/memos"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()
	d, err := New(Config{
		Path:            filepath.Join(t.TempDir(), "test.db"),
		ConnMaxLifetime: "30m",
	})
	require.NoError(t, err)
	return d
}

func TestRunLifecycle(t *testing.T) {
	d := newTestDao(t)

	id, err := d.CreateRun(time.Now())
	require.NoError(t, err)
	require.NotZero(t, id)

	require.NoError(t, d.FinishRun(id, 10, 10, 3, "ok", ""))

	runs, err := d.RecentRuns(5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "ok", runs[0].Status)
	assert.Equal(t, 10, runs[0].Total)
	assert.Equal(t, 3, runs[0].Downloaded)
}

func TestUpsertMemoState(t *testing.T) {
	d := newTestDao(t)

	m := &memos.Memo{
		Name:       "memos/1",
		Content:    "first",
		Visibility: "PRIVATE",
		CreateTime: "2024-01-01T00:00:00Z",
	}
	require.NoError(t, d.UpsertMemoState(m, "memos/2024/01/first (2024-01-01 00-00).md"))

	// Same name again replaces, never duplicates.
	m.Content = "edited"
	require.NoError(t, d.UpsertMemoState(m, "memos/2024/01/edited (2024-01-01 00-00).md"))

	states, err := d.MemoStates()
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "edited", states[0].Content)
	assert.Contains(t, states[0].DocPath, "edited")
}
