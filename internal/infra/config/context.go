package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
)

// fingerprint is a stable hash of the raw config bytes. Equality comparison
// only — one flipped byte is a "changed" signal, whatever it means.
func fingerprint(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Fingerprint hashes the config file as it currently sits on disk.
func Fingerprint(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("config: fingerprint %s: %w", path, err)
	}
	return fingerprint(b), nil
}

// Context owns the live config for the whole process: one object built at
// boot and handed to every component. Reload swaps the parsed config and
// fingerprint together, never field by field.
type Context struct {
	Env  Env
	path string

	mu   sync.RWMutex
	cfg  *BotConfig
	hash string
}

func LoadContext(env Env) (*Context, error) {
	cfg, hash, err := loadBotConfig(env.ConfigPath)
	if err != nil {
		return nil, err
	}
	return &Context{Env: env, path: env.ConfigPath, cfg: cfg, hash: hash}, nil
}

func (c *Context) Config() *BotConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

func (c *Context) Fingerprint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hash
}

// Reload recomputes the fingerprint and, when it differs from the last seen
// value, parses and atomically swaps in the new config. Returns whether a
// swap happened.
func (c *Context) Reload() (bool, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		return false, fmt.Errorf("config: reload %s: %w", c.path, err)
	}
	hash := fingerprint(b)

	c.mu.RLock()
	same := hash == c.hash
	c.mu.RUnlock()
	if same {
		return false, nil
	}

	cfg, err := parseBotConfig(b)
	if err != nil {
		return false, err
	}
	c.mu.Lock()
	c.cfg = cfg
	c.hash = hash
	c.mu.Unlock()
	return true, nil
}
