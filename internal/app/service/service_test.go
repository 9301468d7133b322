package service

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/adapters/github"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/config"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/queue"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/storage"
)

// shared test fixtures for the service package

type fixture struct {
	ctx     *config.Context
	q       *queue.Queue
	store   *storage.Store
	users   *storage.UserRepo
	guilds  *storage.GuildRepo
	globals *storage.GlobalRepo
	rng     *rand.Rand
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	body := "channels:\n  default: \"chan-default\"\nfeed:\n  owner: o\n  repo: r\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))
	ctx, err := config.LoadContext(config.Env{ConfigPath: cfgPath})
	require.NoError(t, err)

	st, err := storage.Open(t.TempDir())
	require.NoError(t, err)

	q := queue.New()
	return &fixture{
		ctx:     ctx,
		q:       q,
		store:   st,
		users:   storage.NewUserRepo(st, q),
		guilds:  storage.NewGuildRepo(st, q),
		globals: storage.NewGlobalRepo(st, q),
		rng:     rand.New(rand.NewSource(1)),
	}
}

func (f *fixture) seedCatalog(t *testing.T) {
	t.Helper()
	require.NoError(t, f.globals.UpdateItems(func(c *storage.ItemsCatalog) error {
		c.Boars = []storage.BoarItem{
			{ID: "common_boar", Name: "Common Boar", Rarity: 1, Weight: 90, Score: 1},
			{ID: "rare_boar", Name: "Rare Boar", Rarity: 2, Weight: 10, Score: 10},
		}
		return nil
	}))
}

type fakeMessenger struct {
	mu       sync.Mutex
	channel  []string // "channelID|content"
	dms      []string // "userID|content"
	failNext bool
}

func (m *fakeMessenger) SendChannel(channelID, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		m.failNext = false
		return os.ErrDeadlineExceeded
	}
	m.channel = append(m.channel, channelID+"|"+content)
	return nil
}

func (m *fakeMessenger) SendDM(userID, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		m.failNext = false
		return os.ErrDeadlineExceeded
	}
	m.dms = append(m.dms, userID+"|"+content)
	return nil
}

type fakeFeed struct {
	pull *github.Pull
	err  error
}

func (f *fakeFeed) LatestClosedPull(ctx context.Context, owner, repo string) (*github.Pull, error) {
	return f.pull, f.err
}
