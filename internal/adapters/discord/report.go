package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Reporter is the single error reporting path: always to the operator
// console, best effort to the configured log channel. A failed mirror is
// swallowed — console output already happened.
type Reporter struct {
	s         *discordgo.Session
	channelID func() string // resolved per call so config reloads take effect
}

func NewReporter(s *discordgo.Session, channelID func() string) *Reporter {
	return &Reporter{s: s, channelID: channelID}
}

func (r *Reporter) Error(scope string, err error) {
	log.Error().Err(err).Str("scope", scope).Msg("operation failed")
	r.mirror(fmt.Sprintf("⚠️ `%s`: %v", scope, err))
}

func (r *Reporter) Warn(scope, msg string) {
	log.Warn().Str("scope", scope).Msg(msg)
	r.mirror(fmt.Sprintf("`%s`: %s", scope, msg))
}

func (r *Reporter) mirror(content string) {
	ch := r.channelID()
	if ch == "" || r.s == nil {
		return
	}
	if _, err := r.s.ChannelMessageSend(ch, content); err != nil {
		log.Debug().Err(err).Msg("report: mirror to log channel failed")
	}
}
