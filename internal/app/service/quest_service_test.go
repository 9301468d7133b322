package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestRotatesOnlyWhenWindowExpired(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t)
	svc := NewQuestService(f.globals, f.rng)

	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	rotated, err := svc.RotateIfExpired(now)
	require.NoError(t, err)
	assert.True(t, rotated, "missing record starts a window")

	rec, err := f.globals.Quest()
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), rec.StartTimestamp)
	assert.NotEmpty(t, rec.QuestBoarIDs)

	rotated, err = svc.RotateIfExpired(now.Add(6 * 24 * time.Hour))
	require.NoError(t, err)
	assert.False(t, rotated, "window still open")

	rotated, err = svc.RotateIfExpired(now.Add(questWindow))
	require.NoError(t, err)
	assert.True(t, rotated, "start + 7 days regenerates")

	rec, err = f.globals.Quest()
	require.NoError(t, err)
	assert.Equal(t, now.Add(questWindow).UnixMilli(), rec.StartTimestamp)
}
