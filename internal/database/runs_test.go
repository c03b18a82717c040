package database

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun(seed int64, fingerprint string, created time.Time) *Run {
	return &Run{
		Seed:            seed,
		Mode:            "rooms_first",
		Fingerprint:     fingerprint,
		Rooms:           9,
		FloorTiles:      612,
		CorridorTiles:   140,
		Props:           31,
		Enemies:         22,
		CorridorEnemies: 3,
		Duration:        42 * time.Millisecond,
		CreatedAt:       created,
	}
}

func TestSaveRun_AssignsID(t *testing.T) {
	db := openTestDB(t)

	run := sampleRun(1234, "f1", time.Time{})
	require.NoError(t, db.SaveRun(run))

	assert.NotZero(t, run.ID)
	assert.False(t, run.CreatedAt.IsZero())

	got, err := db.GetRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Seed, got.Seed)
	assert.Equal(t, "rooms_first", got.Mode)
	assert.Equal(t, "f1", got.Fingerprint)
	assert.Equal(t, 9, got.Rooms)
	assert.Equal(t, 612, got.FloorTiles)
	assert.Equal(t, 140, got.CorridorTiles)
	assert.Equal(t, 31, got.Props)
	assert.Equal(t, 22, got.Enemies)
	assert.Equal(t, 3, got.CorridorEnemies)
	assert.Equal(t, 42*time.Millisecond, got.Duration)
}

func TestSaveRun_DuplicateSeedAndFingerprint(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SaveRun(sampleRun(5, "same", time.Time{})))

	err := db.SaveRun(sampleRun(5, "same", time.Time{}))
	assert.True(t, errors.Is(err, ErrRunExists), "got %v", err)

	// A different config for the same seed is a different dungeon.
	assert.NoError(t, db.SaveRun(sampleRun(5, "other", time.Time{})))
}

func TestGetRun_NotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := db.GetRun(999)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestListRuns_NewestFirstWithLimit(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, db.SaveRun(sampleRun(int64(100+i), "f", base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := db.ListRuns(3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, int64(104), runs[0].Seed)
	assert.Equal(t, int64(103), runs[1].Seed)
	assert.Equal(t, int64(102), runs[2].Seed)

	all, err := db.ListRuns(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	count, err := db.CountRuns()
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestFindRunsBySeed(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.SaveRun(sampleRun(77, "a", base)))
	require.NoError(t, db.SaveRun(sampleRun(77, "b", base.Add(time.Hour))))
	require.NoError(t, db.SaveRun(sampleRun(78, "a", base)))

	runs, err := db.FindRunsBySeed(77)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "b", runs[0].Fingerprint)
	assert.Equal(t, "a", runs[1].Fingerprint)

	none, err := db.FindRunsBySeed(1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteRun(t *testing.T) {
	db := openTestDB(t)

	run := sampleRun(9, "f", time.Time{})
	require.NoError(t, db.SaveRun(run))
	require.NoError(t, db.DeleteRun(run.ID))

	_, err := db.GetRun(run.ID)
	assert.ErrorIs(t, err, ErrRunNotFound)
	assert.ErrorIs(t, db.DeleteRun(run.ID), ErrRunNotFound)
}
