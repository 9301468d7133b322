package service

import (
	"math/rand"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/config"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/storage"
)

// NotifyService sends the daily notification DMs and the "daily ready"
// broadcast. One user failing to receive never stops the loop.
type NotifyService struct {
	ctx     *config.Context
	users   *storage.UserRepo
	guilds  *storage.GuildRepo
	globals *storage.GlobalRepo
	msgr    Messenger
	rng     *rand.Rand
}

func NewNotifyService(ctx *config.Context, users *storage.UserRepo, guilds *storage.GuildRepo, globals *storage.GlobalRepo, msgr Messenger, rng *rand.Rand) *NotifyService {
	return &NotifyService{ctx: ctx, users: users, guilds: guilds, globals: globals, msgr: msgr, rng: rng}
}

// SendAll DMs every user with notifications enabled and then posts the
// broadcast to the default channel.
func (s *NotifyService) SendAll() {
	ids, err := s.users.IDs()
	if err != nil {
		log.Error().Err(err).Msg("notify: list users")
		return
	}

	sent := 0
	for _, uid := range ids {
		rec, err := s.users.Get(uid)
		if err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("notify: skip unreadable record")
			continue
		}
		if !rec.Notifications {
			continue
		}

		idx := s.rng.Intn(len(notificationTemplates))
		msg := notificationTemplates[idx]
		if st := statFor(idx); st != statNone {
			msg = Substitute(msg, strconv.Itoa(s.statValue(st, rec)))
		}

		if err := s.msgr.SendDM(uid, msg); err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("notify: dm failed")
			continue
		}
		sent++
	}
	log.Info().Int("sent", sent).Msg("notify: daily notifications done")

	cfg := s.ctx.Config()
	if cfg.Channels.Default != "" {
		if err := s.msgr.SendChannel(cfg.Channels.Default, "Dailies are ready! Claim yours with `/boar daily`."); err != nil {
			log.Error().Err(err).Msg("notify: daily-ready broadcast failed")
		}
	}
}

func (s *NotifyService) statValue(st stat, rec storage.UserRecord) int {
	switch st {
	case statCatalogSize:
		cat, err := s.globals.Items()
		if err != nil {
			return 0
		}
		return len(cat.Boars)
	case statActiveUsers:
		ids, err := s.users.IDs()
		if err != nil {
			return 0
		}
		return len(ids)
	case statActiveGuilds:
		ids, err := s.guilds.IDs()
		if err != nil {
			return 0
		}
		return len(ids)
	case statUserStreak:
		return rec.Streak
	default:
		return 0
	}
}

// SetNotifications flips a user's opt-in flag.
func (s *NotifyService) SetNotifications(userID string, on bool) (string, error) {
	err := s.users.Update(userID, func(u *storage.UserRecord) error {
		u.Notifications = on
		return nil
	})
	if err != nil {
		return "", err
	}
	if on {
		return "Daily notifications are **on**.", nil
	}
	return "Daily notifications are **off**.", nil
}
