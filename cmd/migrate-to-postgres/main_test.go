package main

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawnchairsociety/dungeonforge/internal/database"
)

func openDB(t *testing.T, name string) *database.Database {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), name))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedRuns(t *testing.T, db *database.Database, n int) {
	t.Helper()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		require.NoError(t, db.SaveRun(&database.Run{
			Seed:        int64(100 + i),
			Mode:        "rooms_first",
			Fingerprint: fmt.Sprintf("fp-%d", i),
			Rooms:       i + 1,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}
}

func TestMigrateRuns_CopiesAll(t *testing.T) {
	src := openDB(t, "src.db")
	dst := openDB(t, "dst.db")
	seedRuns(t, src, 3)

	copied, skipped, err := migrateRuns(src, dst, false)
	require.NoError(t, err)
	assert.Equal(t, 3, copied)
	assert.Equal(t, 0, skipped)

	runs, err := dst.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, int64(102), runs[0].Seed)
	assert.Equal(t, int64(100), runs[2].Seed)
	assert.True(t, runs[2].CreatedAt.Equal(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestMigrateRuns_SkipsExisting(t *testing.T) {
	src := openDB(t, "src.db")
	dst := openDB(t, "dst.db")
	seedRuns(t, src, 2)

	_, _, err := migrateRuns(src, dst, false)
	require.NoError(t, err)

	copied, skipped, err := migrateRuns(src, dst, false)
	require.NoError(t, err)
	assert.Equal(t, 0, copied)
	assert.Equal(t, 2, skipped)
}

func TestMigrateRuns_DryRun(t *testing.T) {
	src := openDB(t, "src.db")
	dst := openDB(t, "dst.db")
	seedRuns(t, src, 2)

	copied, _, err := migrateRuns(src, dst, true)
	require.NoError(t, err)
	assert.Equal(t, 2, copied)

	n, err := dst.CountRuns()
	require.NoError(t, err)
	assert.Zero(t, n)
}
