package storage

import (
	"errors"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/queue"
)

// GlobalRepo covers the global singleton records. Same rules as the other
// repos: reads may skip the queue, read-modify-writes may not.
type GlobalRepo struct {
	st *Store
	q  *queue.Queue
}

func NewGlobalRepo(st *Store, q *queue.Queue) *GlobalRepo {
	return &GlobalRepo{st: st, q: q}
}

func getRecord[T any](r *GlobalRepo, id Identity, def func() T) (T, error) {
	rec := def()
	err := r.st.Read(id, &rec)
	if errors.Is(err, ErrNotFound) {
		return def(), nil
	}
	return rec, err
}

func updateRecord[T any](r *GlobalRepo, id Identity, def func() T, fn func(*T) error) error {
	return r.q.Do(id.Key(), func() error {
		rec := def()
		if err := r.st.Read(id, &rec); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		if err := fn(&rec); err != nil {
			return err
		}
		return r.st.Write(id, rec)
	})
}

func (r *GlobalRepo) Items() (ItemsCatalog, error) {
	return getRecord(r, ItemsIdentity, func() ItemsCatalog { return ItemsCatalog{} })
}

func (r *GlobalRepo) UpdateItems(fn func(*ItemsCatalog) error) error {
	return updateRecord(r, ItemsIdentity, func() ItemsCatalog { return ItemsCatalog{} }, fn)
}

func (r *GlobalRepo) Leaderboard() (LeaderboardRecord, error) {
	return getRecord(r, LeaderboardIdentity, NewLeaderboardRecord)
}

func (r *GlobalRepo) UpdateLeaderboard(fn func(*LeaderboardRecord) error) error {
	return updateRecord(r, LeaderboardIdentity, NewLeaderboardRecord, func(l *LeaderboardRecord) error {
		if l.Scores == nil {
			l.Scores = map[string]int{}
		}
		return fn(l)
	})
}

func (r *GlobalRepo) Banned() (BannedRecord, error) {
	return getRecord(r, BannedIdentity, NewBannedRecord)
}

func (r *GlobalRepo) UpdateBanned(fn func(*BannedRecord) error) error {
	return updateRecord(r, BannedIdentity, NewBannedRecord, func(b *BannedRecord) error {
		if b.Users == nil {
			b.Users = map[string]int64{}
		}
		return fn(b)
	})
}

func (r *GlobalRepo) Powerups() (PowerupRecord, error) {
	return getRecord(r, PowerupsIdentity, func() PowerupRecord { return PowerupRecord{} })
}

func (r *GlobalRepo) UpdatePowerups(fn func(*PowerupRecord) error) error {
	return updateRecord(r, PowerupsIdentity, func() PowerupRecord { return PowerupRecord{} }, fn)
}

func (r *GlobalRepo) Quest() (QuestRecord, error) {
	return getRecord(r, QuestIdentity, func() QuestRecord { return QuestRecord{} })
}

func (r *GlobalRepo) UpdateQuest(fn func(*QuestRecord) error) error {
	return updateRecord(r, QuestIdentity, func() QuestRecord { return QuestRecord{} }, fn)
}

func (r *GlobalRepo) FeedCursor() (FeedCursor, error) {
	return getRecord(r, FeedCursorIdentity, func() FeedCursor { return FeedCursor{} })
}

func (r *GlobalRepo) UpdateFeedCursor(fn func(*FeedCursor) error) error {
	return updateRecord(r, FeedCursorIdentity, func() FeedCursor { return FeedCursor{} }, fn)
}

// Normalize puts global records that survived older versions back into
// canonical shape. Safe to run any number of times.
func (r *GlobalRepo) Normalize() error {
	return r.UpdateItems(func(c *ItemsCatalog) error {
		c.Normalize()
		return nil
	})
}
