package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("not found")

// Store is the file-backed record store: one JSON file per identity, one
// directory per entity class. It only does raw reads and writes — the
// serialization of conflicting accesses is the caller's job (see the repos,
// which route every mutation through the task queue).
type Store struct {
	root string
}

// Open ensures the directory layout exists under root.
func Open(root string) (*Store, error) {
	for _, c := range []Class{ClassUser, ClassGuild, ClassGlobal} {
		if err := os.MkdirAll(filepath.Join(root, dirFor(c)), 0o755); err != nil {
			return nil, fmt.Errorf("storage: create %s dir: %w", c, err)
		}
	}
	return &Store{root: root}, nil
}

func dirFor(c Class) string {
	switch c {
	case ClassUser:
		return "userData"
	case ClassGuild:
		return "guildData"
	default:
		return "global"
	}
}

func (s *Store) path(id Identity) string {
	return filepath.Join(s.root, dirFor(id.Class), id.ID+".json")
}

// Read unmarshals the record into out. Missing file is ErrNotFound so
// callers can fall back to a default shape; malformed JSON is an error for
// this identity only.
func (s *Store) Read(id Identity, out any) error {
	b, err := os.ReadFile(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("storage: read %s: %w", id.Key(), err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("storage: decode %s: %w", id.Key(), err)
	}
	return nil
}

// Write atomically replaces the on-disk representation (temp file + rename),
// creating the class directory if it was removed out from under us.
func (s *Store) Write(id Identity, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", id.Key(), err)
	}

	dest := s.path(id)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("storage: write %s: %w", id.Key(), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+id.ID+"-*")
	if err != nil {
		return fmt.Errorf("storage: write %s: %w", id.Key(), err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: write %s: %w", id.Key(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: write %s: %w", id.Key(), err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: write %s: %w", id.Key(), err)
	}
	return nil
}

func (s *Store) Delete(id Identity) error {
	if err := os.Remove(s.path(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: delete %s: %w", id.Key(), err)
	}
	return nil
}

// ListIDs returns the identifiers of every record in a class, in directory
// order.
func (s *Store) ListIDs(c Class) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, dirFor(c)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: list %s: %w", c, err)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}
