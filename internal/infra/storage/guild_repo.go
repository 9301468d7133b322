package storage

import (
	"errors"
	"fmt"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/queue"
)

type GuildRepo struct {
	st *Store
	q  *queue.Queue
}

func NewGuildRepo(st *Store, q *queue.Queue) *GuildRepo {
	return &GuildRepo{st: st, q: q}
}

func (r *GuildRepo) Get(guildID string) (GuildRecord, error) {
	rec := NewGuildRecord(guildID)
	err := r.st.Read(GuildIdentity(guildID), &rec)
	if errors.Is(err, ErrNotFound) {
		return NewGuildRecord(guildID), nil
	}
	return rec, err
}

func (r *GuildRepo) Update(guildID string, fn func(*GuildRecord) error) error {
	id := GuildIdentity(guildID)
	return r.q.Do(id.Key(), func() error {
		rec := NewGuildRecord(guildID)
		if err := r.st.Read(id, &rec); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		if err := fn(&rec); err != nil {
			return err
		}
		return r.st.Write(id, rec)
	})
}

func (r *GuildRepo) IDs() ([]string, error) {
	return r.st.ListIDs(ClassGuild)
}

// Sweep deletes every guild record whose setup flow never finished. It runs
// once at boot, before any handler can touch the store, so it reads the
// files directly instead of going through the queue.
func (r *GuildRepo) Sweep() (removed int, err error) {
	ids, err := r.st.ListIDs(ClassGuild)
	if err != nil {
		return 0, err
	}
	for _, gid := range ids {
		var rec GuildRecord
		if err := r.st.Read(GuildIdentity(gid), &rec); err != nil {
			return removed, fmt.Errorf("sweep guild %s: %w", gid, err)
		}
		if rec.FullySetup {
			continue
		}
		if err := r.st.Delete(GuildIdentity(gid)); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
