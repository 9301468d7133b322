package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/storage"
)

// CollectionService renders read-only views: a user's collection and the
// global leaderboard. Reads here skip the queue on purpose — non-critical
// reporting.
type CollectionService struct {
	users   *storage.UserRepo
	globals *storage.GlobalRepo
}

func NewCollectionService(users *storage.UserRepo, globals *storage.GlobalRepo) *CollectionService {
	return &CollectionService{users: users, globals: globals}
}

func (s *CollectionService) Collection(userID string) (string, error) {
	rec, err := s.users.Get(userID)
	if err != nil {
		return "", err
	}
	if len(rec.Boars) == 0 {
		return "You have no boars yet. Use `/boar daily` to claim your first one!", nil
	}

	catalog, err := s.globals.Items()
	if err != nil {
		return "", err
	}
	names := map[string]string{}
	for _, b := range catalog.Boars {
		names[b.ID] = b.Name
	}

	ids := make([]string, 0, len(rec.Boars))
	for id := range rec.Boars {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Your collection** (score %d, streak %d)\n", rec.Score, rec.Streak)
	for _, id := range ids {
		name := names[id]
		if name == "" {
			name = id
		}
		fmt.Fprintf(&sb, "• %s ×%d\n", name, rec.Boars[id])
	}
	return sb.String(), nil
}

func (s *CollectionService) Top(n int) (string, error) {
	lb, err := s.globals.Leaderboard()
	if err != nil {
		return "", err
	}
	top := lb.Top(n)
	if len(top) == 0 {
		return "The leaderboard is empty. Nobody has claimed a boar yet.", nil
	}

	var sb strings.Builder
	sb.WriteString("**Top collectors**\n")
	for i, e := range top {
		fmt.Fprintf(&sb, "%d. <@%s> — %d\n", i+1, e.UserID, e.Score)
	}
	return sb.String(), nil
}
