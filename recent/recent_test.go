package recent

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []Entry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.Name
	}
	return result
}

func TestPush(t *testing.T) {
	var entries []Entry
	for i := 1; i <= 7; i++ {
		entries = Push(entries, Entry{Name: fmt.Sprintf("f%d.csv", i)})
	}

	assert.Equal(t, []string{"f7.csv", "f6.csv", "f5.csv", "f4.csv", "f3.csv"}, names(entries))
}

func TestPushDeduplicates(t *testing.T) {
	entries := []Entry{{Name: "a", Size: 1}, {Name: "b"}, {Name: "c"}}

	entries = Push(entries, Entry{Name: "b", Size: 9})

	assert.Equal(t, []string{"b", "a", "c"}, names(entries))
	assert.Equal(t, int64(9), entries[0].Size)
}

func TestPushDoesNotMutate(t *testing.T) {
	entries := []Entry{{Name: "a"}, {Name: "b"}}

	_ = Push(entries, Entry{Name: "c"})

	assert.Equal(t, []string{"a", "b"}, names(entries))
}

func TestStoreRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(filepath.Join(t.TempDir(), "nested", "recent.yaml"), logr.Discard())
	store.Now = func() time.Time { return now }

	entries, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)

	modified := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err = store.Record("a.csv", 120, modified)
	require.NoError(t, err)
	_, err = store.Record("b.csv", 2048, modified)
	require.NoError(t, err)

	entries, err = store.Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b.csv", entries[0].Name)
	assert.Equal(t, int64(2048), entries[0].Size)
	assert.True(t, modified.Equal(entries[0].LastModified))
	assert.True(t, now.Equal(entries[0].Timestamp))
}

func TestStoreReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("recent: [unterminated"), 0o644))
	store := NewStore(path, logr.Discard())

	_, err := store.Load()
	assert.Error(t, err)

	entries, err := store.Record("a.csv", 1, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.csv"}, names(entries))
}
