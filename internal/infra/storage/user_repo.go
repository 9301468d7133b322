package storage

import (
	"errors"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/queue"
)

// UserRepo gives typed access to per-user records. Every mutation goes
// through the task queue keyed on the user's identity, so concurrent
// handlers touching the same user never lose updates.
type UserRepo struct {
	st *Store
	q  *queue.Queue
}

func NewUserRepo(st *Store, q *queue.Queue) *UserRepo {
	return &UserRepo{st: st, q: q}
}

// Get reads the record, returning a default shape when the user has never
// been seen. Plain reads are fine outside the queue; anything that writes
// back must use Update.
func (r *UserRepo) Get(userID string) (UserRecord, error) {
	rec := NewUserRecord(userID)
	err := r.st.Read(UserIdentity(userID), &rec)
	if errors.Is(err, ErrNotFound) {
		return NewUserRecord(userID), nil
	}
	if rec.Boars == nil {
		rec.Boars = map[string]int{}
	}
	return rec, err
}

// Update runs a queue-serialized read-modify-write. Returning an error from
// the mutator aborts without touching disk.
func (r *UserRepo) Update(userID string, fn func(*UserRecord) error) error {
	id := UserIdentity(userID)
	return r.q.Do(id.Key(), func() error {
		rec := NewUserRecord(userID)
		if err := r.st.Read(id, &rec); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		// older files may predate some fields
		if rec.Boars == nil {
			rec.Boars = map[string]int{}
		}
		if err := fn(&rec); err != nil {
			return err
		}
		return r.st.Write(id, rec)
	})
}

// IDs lists every known user id.
func (r *UserRepo) IDs() ([]string, error) {
	return r.st.ListIDs(ClassUser)
}
