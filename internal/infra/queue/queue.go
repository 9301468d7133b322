// Package queue serializes units of work by string key: work sharing a key
// runs strictly FIFO in submission order, one at a time; work on distinct
// keys interleaves freely. It is the only synchronization layer in front of
// the on-disk record store — every read-modify-write of a record must go
// through here keyed on that record's identity.
package queue

import (
	"fmt"
	"sync"
)

type Queue struct {
	mu    sync.Mutex
	tails map[string]chan struct{}
	wg    sync.WaitGroup
}

func New() *Queue {
	return &Queue{tails: map[string]chan struct{}{}}
}

// Go enqueues fn behind all previously submitted work for key and returns
// immediately. The channel receives fn's own outcome exactly once; a failing
// (or panicking) fn settles its link in the chain and does not poison the
// key — later work for the same key still runs.
func (q *Queue) Go(key string, fn func() error) <-chan error {
	out := make(chan error, 1)
	done := make(chan struct{})

	q.mu.Lock()
	prev := q.tails[key]
	q.tails[key] = done
	q.wg.Add(1)
	q.mu.Unlock()

	go func() {
		if prev != nil {
			<-prev
		}
		err := run(fn)

		close(done)
		q.mu.Lock()
		// drop the map entry once the chain is fully drained
		if q.tails[key] == done {
			delete(q.tails, key)
		}
		q.mu.Unlock()
		q.wg.Done()

		out <- err
	}()
	return out
}

// Do is the blocking form of Go: it waits for fn's turn on key, runs it, and
// returns fn's error.
func (q *Queue) Do(key string, fn func() error) error {
	return <-q.Go(key, fn)
}

// Wait blocks until every submitted unit of work has settled.
func (q *Queue) Wait() {
	q.wg.Wait()
}

// run converts a panic inside a unit of work into an error so the chain
// always settles.
func run(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("queue: task panic: %v", r)
		}
	}()
	return fn()
}
