package service

import (
	"context"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/adapters/github"
)

// Implemented by internal/adapters/discord.Messenger.
type Messenger interface {
	SendChannel(channelID, content string) error
	SendDM(userID, content string) error
}

// Implemented by internal/adapters/github.Client.
type FeedAPI interface {
	LatestClosedPull(ctx context.Context, owner, repo string) (*github.Pull, error)
}
