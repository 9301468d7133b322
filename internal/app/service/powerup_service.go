package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/config"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/queue"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/storage"
)

// PowerupService owns the spawn side effect and the countdown record. The
// scheduler only holds the timer; everything it does on firing is delegated
// here.
type PowerupService struct {
	ctx     *config.Context
	q       *queue.Queue
	globals *storage.GlobalRepo
	guilds  *storage.GuildRepo
	msgr    Messenger
	rng     *rand.Rand
}

func NewPowerupService(ctx *config.Context, q *queue.Queue, globals *storage.GlobalRepo, guilds *storage.GuildRepo, msgr Messenger, rng *rand.Rand) *PowerupService {
	return &PowerupService{ctx: ctx, q: q, globals: globals, guilds: guilds, msgr: msgr, rng: rng}
}

// InitialDelay reads the persisted countdown, serialized under the powerup
// record's own queue key so it cannot race other boot-time writes to the
// record.
func (s *PowerupService) InitialDelay() (time.Duration, error) {
	var ms int64
	err := s.q.Do(storage.PowerupsIdentity.Key(), func() error {
		rec, err := s.globals.Powerups()
		if err != nil {
			return err
		}
		ms = rec.NextPowerupMS
		return nil
	})
	if err != nil {
		return 0, err
	}
	if ms <= 0 {
		return s.randomDelay(), nil
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// Spawn announces a powerup in every fully set up guild. A guild that fails
// delivery is logged and skipped.
func (s *PowerupService) Spawn() {
	ids, err := s.guilds.IDs()
	if err != nil {
		log.Error().Err(err).Msg("powerup: list guilds")
		return
	}
	for _, gid := range ids {
		g, err := s.guilds.Get(gid)
		if err != nil || !g.FullySetup {
			continue
		}
		channels := g.SpawnChannelIDs
		if len(channels) == 0 && g.DefaultChannelID != "" {
			channels = []string{g.DefaultChannelID}
		}
		for _, ch := range channels {
			if err := s.msgr.SendChannel(ch, "⚡ A powerup appeared! First to `/boar daily` gets a bonus."); err != nil {
				log.Warn().Err(err).Str("guild", gid).Str("channel", ch).Msg("powerup: send failed")
			}
		}
	}
}

// NextDelay computes a fresh countdown inside the configured band and
// persists it before the timer is rearmed.
func (s *PowerupService) NextDelay() (time.Duration, error) {
	d := s.randomDelay()
	err := s.globals.UpdatePowerups(func(p *storage.PowerupRecord) error {
		p.NextPowerupMS = d.Milliseconds()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("powerup: persist countdown: %w", err)
	}
	return d, nil
}

func (s *PowerupService) randomDelay() time.Duration {
	cfg := s.ctx.Config()
	min := time.Duration(cfg.Powerup.MinMinutes) * time.Minute
	max := time.Duration(cfg.Powerup.MaxMinutes) * time.Minute
	if max <= min {
		return min
	}
	return min + time.Duration(s.rng.Int63n(int64(max-min)))
}
