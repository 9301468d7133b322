package service

import (
	"fmt"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/storage"
)

// SetupService drives the per-guild setup flow. A record exists from the
// moment setup begins, but only Finish marks it FullySetup — anything left
// half-done is purged by the boot sweep.
type SetupService struct {
	guilds *storage.GuildRepo
}

func NewSetupService(guilds *storage.GuildRepo) *SetupService {
	return &SetupService{guilds: guilds}
}

func (s *SetupService) Begin(guildID string) (string, error) {
	err := s.guilds.Update(guildID, func(g *storage.GuildRecord) error {
		g.FullySetup = false
		g.DefaultChannelID = ""
		g.SpawnChannelIDs = nil
		return nil
	})
	if err != nil {
		return "", err
	}
	return "Setup started. Pick channels with `/boar-manage setup channel` and finish with `/boar-manage setup finish`.", nil
}

func (s *SetupService) AddChannel(guildID, channelID string) (string, error) {
	err := s.guilds.Update(guildID, func(g *storage.GuildRecord) error {
		if g.DefaultChannelID == "" {
			g.DefaultChannelID = channelID
		}
		for _, id := range g.SpawnChannelIDs {
			if id == channelID {
				return nil
			}
		}
		g.SpawnChannelIDs = append(g.SpawnChannelIDs, channelID)
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Added <#%s> as a boar channel.", channelID), nil
}

func (s *SetupService) Finish(guildID string) (string, error) {
	var incomplete bool
	err := s.guilds.Update(guildID, func(g *storage.GuildRecord) error {
		if g.DefaultChannelID == "" {
			incomplete = true
			return nil
		}
		g.FullySetup = true
		return nil
	})
	if err != nil {
		return "", err
	}
	if incomplete {
		return "Setup is missing a channel. Add one with `/boar-manage setup channel` first.", nil
	}
	return "Setup complete! Boars will spawn here from now on.", nil
}
