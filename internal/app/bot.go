// Package app wires the process together and owns the startup sequence.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/adapters/discord"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/adapters/github"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/app/sched"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/app/service"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/config"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/queue"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/storage"
)

// Bot is the process context: connection, live config, registries and the
// spawner handle, built once and passed around instead of package globals.
type Bot struct {
	Ctx     *config.Context
	Session *discordgo.Session
	Queue   *queue.Queue
	Store   *storage.Store
	Router  *discord.Router

	users   *storage.UserRepo
	guilds  *storage.GuildRepo
	globals *storage.GlobalRepo

	reporter  *discord.Reporter
	scheduler *sched.Scheduler

	notify   *service.NotifyService
	feed     *service.FeedService
	quests   *service.QuestService
	Powerups *service.PowerupService
}

// New performs the in-memory part of startup: session construction, store
// and service wiring, command/listener registration. Nothing here touches
// the network.
func New(ctx *config.Context) (*Bot, error) {
	auth := strings.TrimSpace(ctx.Env.DiscordToken)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	s, err := discordgo.New(auth)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages

	st, err := storage.Open(ctx.Env.DataDir)
	if err != nil {
		return nil, err
	}

	q := queue.New()
	users := storage.NewUserRepo(st, q)
	guilds := storage.NewGuildRepo(st, q)
	globals := storage.NewGlobalRepo(st, q)

	// one source per service: rand.Rand is not safe for concurrent use and
	// the services run on different goroutines
	newRNG := func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) }
	msgr := discord.NewMessenger(s)
	reporter := discord.NewReporter(s, func() string { return ctx.Config().Channels.Log })

	gh := github.New(ctx.Env.GitHubToken)

	b := &Bot{
		Ctx:       ctx,
		Session:   s,
		Queue:     q,
		Store:     st,
		users:     users,
		guilds:    guilds,
		globals:   globals,
		reporter:  reporter,
		scheduler: sched.New(),
		notify:    service.NewNotifyService(ctx, users, guilds, globals, msgr, newRNG()),
		feed:      service.NewFeedService(ctx, gh, globals, msgr),
		quests:    service.NewQuestService(globals, newRNG()),
		Powerups:  service.NewPowerupService(ctx, q, globals, guilds, msgr, newRNG()),
	}

	b.Router = discord.NewRouter(
		s,
		reporter,
		service.NewDailyService(users, globals, newRNG()),
		service.NewCollectionService(users, globals),
		service.NewSetupService(guilds),
		service.NewBanService(globals),
		b.notify,
	)
	b.Router.Register()

	return b, nil
}

// Start runs the ordered network-facing boot steps: sweep stale guild data,
// open the gateway, normalize global records, then the startup hooks.
func (b *Bot) Start() error {
	removed, err := b.guilds.Sweep()
	if err != nil {
		return fmt.Errorf("guild sweep: %w", err)
	}
	if removed > 0 {
		log.Info().Int("removed", removed).Msg("purged incomplete guild setups")
	}

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	log.Info().Str("user", b.Session.State.User.Username).Str("id", b.Session.State.User.ID).Msg("connected")

	if err := b.Router.Deploy(); err != nil {
		return fmt.Errorf("deploy commands: %w", err)
	}

	if err := b.globals.Normalize(); err != nil {
		return fmt.Errorf("normalize globals: %w", err)
	}

	return b.startupHooks()
}

func (b *Bot) startupHooks() error {
	cfg := b.Ctx.Config()

	if err := b.scheduler.StartDaily(cfg.Daily.Time, b.notify.SendAll); err != nil {
		return err
	}

	b.scheduler.StartPoller(cfg.PollInterval(), b.pollTick)

	initial, err := b.Powerups.InitialDelay()
	if err != nil {
		return fmt.Errorf("powerup countdown: %w", err)
	}
	b.scheduler.ArmPowerup(initial, b.firePowerup)

	if cfg.Presence != "" {
		if err := b.Session.UpdateGameStatus(0, cfg.Presence); err != nil {
			log.Warn().Err(err).Msg("set presence")
		}
	}

	go b.warmUserCache()

	log.Info().Msg("boar bot ready")
	return nil
}

// pollTick is one fixed-interval cycle: config reload on fingerprint
// change, feed poll, quest rotation. Every failure is caught here — a bad
// cycle never kills the poller.
func (b *Bot) pollTick() {
	changed, err := b.Ctx.Reload()
	if err != nil {
		b.reporter.Error("config reload", err)
	} else if changed {
		log.Info().Str("fingerprint", b.Ctx.Fingerprint()).Msg("config changed, reloaded")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := b.feed.Poll(ctx); err != nil {
		b.reporter.Error("feed poll", err)
	}

	if rotated, err := b.quests.RotateIfExpired(time.Now()); err != nil {
		b.reporter.Error("quest rotation", err)
	} else if rotated {
		log.Info().Msg("quest window rotated")
	}
}

func (b *Bot) firePowerup() time.Duration {
	b.Powerups.Spawn()
	d, err := b.Powerups.NextDelay()
	if err != nil {
		b.reporter.Error("powerup rearm", err)
		return time.Duration(b.Ctx.Config().Powerup.MinMinutes) * time.Minute
	}
	return d
}

// warmUserCache fetches every known user so their profiles are cached
// before the first notification run. Paced to stay clear of rate limits;
// individual failures are logged and skipped.
func (b *Bot) warmUserCache() {
	ids, err := b.users.IDs()
	if err != nil {
		log.Warn().Err(err).Msg("cache warm: list users")
		return
	}
	limiter := rate.NewLimiter(rate.Every(300*time.Millisecond), 1)
	warmed := 0
	for _, uid := range ids {
		_ = limiter.Wait(context.Background())
		if _, err := b.Session.User(uid); err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("cache warm: fetch failed")
			continue
		}
		warmed++
	}
	log.Info().Int("warmed", warmed).Int("total", len(ids)).Msg("user cache warmed")
}

func (b *Bot) Close() {
	_ = b.Session.Close()
	b.Queue.Wait()
}
