package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/storage"
)

// DailyService handles the daily claim: one weighted-random boar per UTC
// day, a streak that survives consecutive days, and a leaderboard update.
type DailyService struct {
	users   *storage.UserRepo
	globals *storage.GlobalRepo

	// rngMu guards rng: claims for different users run concurrently
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewDailyService(users *storage.UserRepo, globals *storage.GlobalRepo, rng *rand.Rand) *DailyService {
	return &DailyService{users: users, globals: globals, rng: rng}
}

var ErrBanned = fmt.Errorf("user is banned")

func (s *DailyService) Claim(userID string, now time.Time) (string, error) {
	banned, err := s.globals.Banned()
	if err != nil {
		return "", err
	}
	if until, ok := banned.Users[userID]; ok && (until == 0 || now.UnixMilli() < until) {
		return "", ErrBanned
	}

	catalog, err := s.globals.Items()
	if err != nil {
		return "", err
	}
	if len(catalog.Boars) == 0 {
		return "", fmt.Errorf("boar catalog is empty")
	}

	var claimed storage.BoarItem
	var streak int
	alreadyClaimed := false

	err = s.users.Update(userID, func(u *storage.UserRecord) error {
		last := time.UnixMilli(u.LastDaily).UTC()
		if u.LastDaily != 0 && sameDay(last, now.UTC()) {
			alreadyClaimed = true
			return nil
		}

		s.rngMu.Lock()
		claimed = pickWeighted(catalog.Boars, s.rng)
		s.rngMu.Unlock()
		if u.LastDaily != 0 && sameDay(last.AddDate(0, 0, 1), now.UTC()) {
			u.Streak++
		} else {
			u.Streak = 1
		}
		u.Boars[claimed.ID]++
		u.Score += claimed.Score
		u.LastDaily = now.UnixMilli()
		if u.FirstDaily == 0 {
			u.FirstDaily = now.UnixMilli()
		}
		streak = u.Streak
		return nil
	})
	if err != nil {
		return "", err
	}
	if alreadyClaimed {
		return "You already claimed your boar today. Come back tomorrow!", nil
	}

	// leaderboard lives under its own queue key
	err = s.globals.UpdateLeaderboard(func(l *storage.LeaderboardRecord) error {
		l.Scores[userID] += claimed.Score
		return nil
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("You got **%s**! (+%d score, streak %d)", claimed.Name, claimed.Score, streak), nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func pickWeighted(boars []storage.BoarItem, rng *rand.Rand) storage.BoarItem {
	total := 0
	for _, b := range boars {
		if b.Weight > 0 {
			total += b.Weight
		}
	}
	if total == 0 {
		return boars[rng.Intn(len(boars))]
	}
	n := rng.Intn(total)
	for _, b := range boars {
		if b.Weight <= 0 {
			continue
		}
		if n < b.Weight {
			return b
		}
		n -= b.Weight
	}
	return boars[len(boars)-1]
}
