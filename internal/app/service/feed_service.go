package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/adapters/github"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/config"
	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/storage"
)

const feedBodyLimit = 300

// FeedService announces newly merged upstream pull requests. The cursor
// record remembers the last announced URL so a pull is announced exactly
// once, across restarts.
type FeedService struct {
	ctx     *config.Context
	api     FeedAPI
	globals *storage.GlobalRepo
	msgr    Messenger
}

func NewFeedService(ctx *config.Context, api FeedAPI, globals *storage.GlobalRepo, msgr Messenger) *FeedService {
	return &FeedService{ctx: ctx, api: api, globals: globals, msgr: msgr}
}

// Poll runs one cycle. All errors are returned for logging; none of them
// are fatal to the poller.
func (s *FeedService) Poll(ctx context.Context) error {
	cfg := s.ctx.Config()
	if cfg.Feed.Owner == "" || cfg.Feed.Repo == "" || cfg.Channels.Default == "" {
		return nil
	}

	pull, err := s.api.LatestClosedPull(ctx, cfg.Feed.Owner, cfg.Feed.Repo)
	if errors.Is(err, github.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("feed: poll: %w", err)
	}
	if pull.MergedAt == nil {
		return nil
	}

	// persist-then-announce, decided inside the cursor's queue chain so two
	// overlapping cycles can't both see "new"
	fresh := false
	err = s.globals.UpdateFeedCursor(func(c *storage.FeedCursor) error {
		if c.LastURL == pull.HTMLURL {
			return nil
		}
		c.LastURL = pull.HTMLURL
		fresh = true
		return nil
	})
	if err != nil {
		return fmt.Errorf("feed: cursor: %w", err)
	}
	if !fresh {
		return nil
	}

	body := pull.Body
	if len(body) > feedBodyLimit {
		body = body[:feedBodyLimit] + "…"
	}
	msg := fmt.Sprintf("**Update merged:** %s\n%s\n%s", pull.Title, body, pull.HTMLURL)
	if err := s.msgr.SendChannel(cfg.Channels.Default, msg); err != nil {
		return fmt.Errorf("feed: announce: %w", err)
	}
	return nil
}
