package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/queue"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := Open(dir)
	require.NoError(t, err)
	return st, dir
}

func TestRecordRoundTrip(t *testing.T) {
	st, dir := newTestStore(t)
	q := queue.New()
	users := NewUserRepo(st, q)

	require.NoError(t, users.Update("123", func(u *UserRecord) error {
		u.Boars["common_boar"] = 3
		u.Score = 42
		u.Streak = 7
		u.Notifications = true
		return nil
	}))

	got, err := users.Get("123")
	require.NoError(t, err)
	assert.Equal(t, 42, got.Score)
	assert.Equal(t, 7, got.Streak)
	assert.Equal(t, 3, got.Boars["common_boar"])
	assert.True(t, got.Notifications)

	// restart simulation: a fresh store over the same directory
	st2, err := Open(dir)
	require.NoError(t, err)
	got2, err := NewUserRepo(st2, queue.New()).Get("123")
	require.NoError(t, err)
	assert.Equal(t, got, got2)
}

func TestGetReturnsDefaultShapeWhenMissing(t *testing.T) {
	st, _ := newTestStore(t)
	users := NewUserRepo(st, queue.New())

	rec, err := users.Get("nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", rec.UserID)
	assert.NotNil(t, rec.Boars)
	assert.Zero(t, rec.Score)
}

func TestMalformedJSONIsIsolated(t *testing.T) {
	st, dir := newTestStore(t)
	q := queue.New()
	users := NewUserRepo(st, q)

	require.NoError(t, users.Update("good", func(u *UserRecord) error {
		u.Score = 1
		return nil
	}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "userData", "bad.json"), []byte("{nope"), 0o644))

	_, err := users.Get("bad")
	require.Error(t, err)

	// the sibling record is untouched
	good, err := users.Get("good")
	require.NoError(t, err)
	assert.Equal(t, 1, good.Score)
}

func TestGuildSweepKeepsOnlyFullySetup(t *testing.T) {
	st, _ := newTestStore(t)
	q := queue.New()
	guilds := NewGuildRepo(st, q)

	require.NoError(t, guilds.Update("A", func(g *GuildRecord) error {
		g.FullySetup = false
		return nil
	}))
	require.NoError(t, guilds.Update("B", func(g *GuildRecord) error {
		g.FullySetup = true
		g.DefaultChannelID = "chan"
		return nil
	}))

	removed, err := guilds.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	ids, err := guilds.IDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	st, dir := newTestStore(t)
	q := queue.New()
	globals := NewGlobalRepo(st, q)

	require.NoError(t, globals.UpdateItems(func(c *ItemsCatalog) error {
		c.Boars = []BoarItem{
			{ID: "zeta", Rarity: 2},
			{ID: "alpha", Rarity: 1},
			{ID: "beta", Rarity: 1},
		}
		return nil
	}))

	require.NoError(t, globals.Normalize())
	first, err := os.ReadFile(filepath.Join(dir, "global", "items.json"))
	require.NoError(t, err)

	require.NoError(t, globals.Normalize())
	second, err := os.ReadFile(filepath.Join(dir, "global", "items.json"))
	require.NoError(t, err)

	assert.Equal(t, first, second)

	cat, err := globals.Items()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "zeta"}, []string{cat.Boars[0].ID, cat.Boars[1].ID, cat.Boars[2].ID})
}

func TestPowerupCountdownReadViaQueue(t *testing.T) {
	st, _ := newTestStore(t)
	q := queue.New()
	globals := NewGlobalRepo(st, q)

	require.NoError(t, globals.UpdatePowerups(func(p *PowerupRecord) error {
		p.NextPowerupMS = 5000
		return nil
	}))

	var countdown int64
	err := q.Do(PowerupsIdentity.Key(), func() error {
		rec, err := globals.Powerups()
		if err != nil {
			return err
		}
		countdown = rec.NextPowerupMS
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), countdown)
}

func TestLeaderboardTop(t *testing.T) {
	l := NewLeaderboardRecord()
	l.Scores["u1"] = 10
	l.Scores["u2"] = 30
	l.Scores["u3"] = 30
	l.Scores["u4"] = 5

	top := l.Top(3)
	require.Len(t, top, 3)
	assert.Equal(t, "u2", top[0].UserID)
	assert.Equal(t, "u3", top[1].UserID)
	assert.Equal(t, "u1", top[2].UserID)
}
