package discord

import (
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/app/service"
)

type Router struct {
	s        *discordgo.Session
	reporter *Reporter

	daily      *service.DailyService
	collection *service.CollectionService
	setup      *service.SetupService
	bans       *service.BanService
	notify     *service.NotifyService

	registry map[string]*discordgo.ApplicationCommand
}

func NewRouter(
	s *discordgo.Session,
	reporter *Reporter,
	daily *service.DailyService,
	collection *service.CollectionService,
	setup *service.SetupService,
	bans *service.BanService,
	notify *service.NotifyService,
) *Router {
	return &Router{
		s:          s,
		reporter:   reporter,
		daily:      daily,
		collection: collection,
		setup:      setup,
		bans:       bans,
		notify:     notify,
		registry:   map[string]*discordgo.ApplicationCommand{},
	}
}

// Register fills the in-memory registry and attaches listeners. No network
// here — Deploy pushes the commands once the session is open.
func (r *Router) Register() {
	for _, cmd := range Commands {
		r.registry[cmd.Name] = cmd
	}
	r.s.AddHandler(r.handleInteraction)
}

// Deploy creates the registered commands globally. Requires an open session
// (the application id comes from the gateway handshake).
func (r *Router) Deploy() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, "", cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Get(name string) (*discordgo.ApplicationCommand, bool) {
	cmd, ok := r.registry[name]
	return cmd, ok
}

func (r *Router) handleInteraction(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := ic.ApplicationCommandData()
	var userID string
	if ic.Member != nil && ic.Member.User != nil {
		userID = ic.Member.User.ID
	} else if ic.User != nil {
		userID = ic.User.ID
	}
	log.Info().Str("cmd", data.Name).Str("user", userID).Str("guild", ic.GuildID).Msg("slash")

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Str("cmd", data.Name).Msg("panic in slash handler")
			ReplyEphemeral(s, ic, "⚠️ Something went wrong.")
		}
	}()

	_ = DeferEphemeral(s, ic)

	switch data.Name {
	case "ping":
		ReplyEphemeral(s, ic, "🏓 pong")

	case "boar":
		r.handleBoar(s, ic, userID)

	case "boar-manage":
		r.handleManage(s, ic)
	}
}

func (r *Router) handleBoar(s *discordgo.Session, ic *discordgo.InteractionCreate, userID string) {
	sub, ok := subcmd(ic)
	if !ok {
		ReplyEphemeral(s, ic, "Use `/boar daily`, `/boar collection` or `/boar top`.")
		return
	}
	switch sub.Name {
	case "daily":
		msg, err := r.daily.Claim(userID, time.Now())
		if errors.Is(err, service.ErrBanned) {
			ReplyEphemeral(s, ic, "You are banned from claiming boars.")
			return
		}
		if err != nil {
			r.reporter.Error("boar daily", err)
			msg = "⚠️ Could not claim your daily boar. Try again later."
		}
		ReplyEphemeral(s, ic, msg)

	case "collection":
		msg, err := r.collection.Collection(userID)
		if err != nil {
			r.reporter.Error("boar collection", err)
			msg = "⚠️ Could not load your collection."
		}
		ReplyEphemeral(s, ic, msg)

	case "top":
		msg, err := r.collection.Top(10)
		if err != nil {
			r.reporter.Error("boar top", err)
			msg = "⚠️ Could not load the leaderboard."
		}
		ReplyEphemeral(s, ic, msg)

	case "notifications":
		on, _ := optBool(sub, "enabled")
		msg, err := r.notify.SetNotifications(userID, on)
		if err != nil {
			r.reporter.Error("boar notifications", err)
			msg = "⚠️ Could not update your notification settings."
		}
		ReplyEphemeral(s, ic, msg)
	}
}

func (r *Router) handleManage(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	if !isAdmin(ic) {
		ReplyEphemeral(s, ic, "You need the Manage Server permission for this.")
		return
	}
	sub, ok := subcmd(ic)
	if !ok {
		ReplyEphemeral(s, ic, "Use `/boar-manage setup`, `channel`, `finish`, `ban` or `unban`.")
		return
	}

	var msg string
	var err error
	switch sub.Name {
	case "setup":
		msg, err = r.setup.Begin(ic.GuildID)
	case "channel":
		ch, ok := optChannel(sub, "channel")
		if !ok {
			ReplyEphemeral(s, ic, "Pick a channel.")
			return
		}
		msg, err = r.setup.AddChannel(ic.GuildID, ch)
	case "finish":
		msg, err = r.setup.Finish(ic.GuildID)
	case "ban":
		uid, ok := optUser(sub, "user")
		if !ok {
			ReplyEphemeral(s, ic, "Pick a user.")
			return
		}
		days, _ := optInt(sub, "days")
		msg, err = r.bans.Ban(uid, days, time.Now())
	case "unban":
		uid, ok := optUser(sub, "user")
		if !ok {
			ReplyEphemeral(s, ic, "Pick a user.")
			return
		}
		msg, err = r.bans.Unban(uid)
	}
	if err != nil {
		r.reporter.Error("boar-manage "+sub.Name, err)
		msg = "⚠️ That didn't work. Check the logs."
	}
	ReplyEphemeral(s, ic, msg)
}
