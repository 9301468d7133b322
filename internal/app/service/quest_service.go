package service

import (
	"math/rand"
	"time"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/storage"
)

const questWindow = 7 * 24 * time.Hour

// QuestService rotates the 7-day quest window: when the stored start is
// older than a week (or absent), a fresh window with new quest boars begins.
type QuestService struct {
	globals *storage.GlobalRepo
	rng     *rand.Rand
}

func NewQuestService(globals *storage.GlobalRepo, rng *rand.Rand) *QuestService {
	return &QuestService{globals: globals, rng: rng}
}

func (s *QuestService) RotateIfExpired(now time.Time) (bool, error) {
	catalog, err := s.globals.Items()
	if err != nil {
		return false, err
	}

	rotated := false
	err = s.globals.UpdateQuest(func(q *storage.QuestRecord) error {
		start := time.UnixMilli(q.StartTimestamp)
		if q.StartTimestamp != 0 && now.Before(start.Add(questWindow)) {
			return nil
		}
		q.StartTimestamp = now.UnixMilli()
		q.QuestBoarIDs = s.pickQuestBoars(catalog, 3)
		rotated = true
		return nil
	})
	return rotated, err
}

func (s *QuestService) pickQuestBoars(catalog storage.ItemsCatalog, n int) []string {
	if len(catalog.Boars) == 0 {
		return nil
	}
	perm := s.rng.Perm(len(catalog.Boars))
	if n > len(perm) {
		n = len(perm)
	}
	ids := make([]string, 0, n)
	for _, i := range perm[:n] {
		ids = append(ids, catalog.Boars[i].ID)
	}
	return ids
}
