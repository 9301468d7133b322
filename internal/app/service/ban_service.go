package service

import (
	"fmt"
	"time"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/storage"
)

type BanService struct {
	globals *storage.GlobalRepo
}

func NewBanService(globals *storage.GlobalRepo) *BanService {
	return &BanService{globals: globals}
}

// Ban blocks a user from claiming; days <= 0 means permanent.
func (s *BanService) Ban(userID string, days int, now time.Time) (string, error) {
	var until int64
	if days > 0 {
		until = now.AddDate(0, 0, days).UnixMilli()
	}
	err := s.globals.UpdateBanned(func(b *storage.BannedRecord) error {
		b.Users[userID] = until
		return nil
	})
	if err != nil {
		return "", err
	}
	if until == 0 {
		return fmt.Sprintf("<@%s> is banned permanently.", userID), nil
	}
	return fmt.Sprintf("<@%s> is banned for %d day(s).", userID, days), nil
}

func (s *BanService) Unban(userID string) (string, error) {
	err := s.globals.UpdateBanned(func(b *storage.BannedRecord) error {
		delete(b.Users, userID)
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<@%s> is no longer banned.", userID), nil
}
