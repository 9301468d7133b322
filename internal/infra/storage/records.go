package storage

import "sort"

// UserRecord is the per-user profile: owned boars, score, daily streak and
// notification opt-in. Field names match the historical on-disk format.
type UserRecord struct {
	UserID        string         `json:"userID"`
	Boars         map[string]int `json:"boars"`
	Score         int            `json:"score"`
	Streak        int            `json:"streak"`
	FirstDaily    int64          `json:"firstDaily"`
	LastDaily     int64          `json:"lastDaily"` // unix ms
	Notifications bool           `json:"notifications"`
}

func NewUserRecord(userID string) UserRecord {
	return UserRecord{UserID: userID, Boars: map[string]int{}}
}

// GuildRecord is the per-guild configuration written by the setup flow.
// Records with FullySetup=false are abandoned setups and get purged at boot.
type GuildRecord struct {
	GuildID          string   `json:"guildID"`
	FullySetup       bool     `json:"fullySetup"`
	DefaultChannelID string   `json:"defaultChannelID"`
	SpawnChannelIDs  []string `json:"spawnChannelIDs"`
}

func NewGuildRecord(guildID string) GuildRecord {
	return GuildRecord{GuildID: guildID}
}

type BoarItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rarity int    `json:"rarity"`
	Weight int    `json:"weight"`
	Score  int    `json:"score"`
}

// ItemsCatalog is the global boar catalog. Normalize puts it in the
// canonical order (rarity, then id) so migrated catalogs from older versions
// converge to one deterministic shape.
type ItemsCatalog struct {
	Boars []BoarItem `json:"boars"`
}

func (c *ItemsCatalog) Normalize() {
	sort.SliceStable(c.Boars, func(i, j int) bool {
		if c.Boars[i].Rarity != c.Boars[j].Rarity {
			return c.Boars[i].Rarity < c.Boars[j].Rarity
		}
		return c.Boars[i].ID < c.Boars[j].ID
	})
}

type LeaderboardRecord struct {
	Scores map[string]int `json:"scores"`
}

func NewLeaderboardRecord() LeaderboardRecord {
	return LeaderboardRecord{Scores: map[string]int{}}
}

type LeaderboardEntry struct {
	UserID string
	Score  int
}

// Top returns the n highest scores, ties broken by user id for stable
// output.
func (l LeaderboardRecord) Top(n int) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(l.Scores))
	for id, score := range l.Scores {
		entries = append(entries, LeaderboardEntry{UserID: id, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].UserID < entries[j].UserID
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// BannedRecord maps user id to unban time in unix ms; 0 means permanent.
type BannedRecord struct {
	Users map[string]int64 `json:"users"`
}

func NewBannedRecord() BannedRecord {
	return BannedRecord{Users: map[string]int64{}}
}

// PowerupRecord holds the milliseconds until the next powerup spawn. The
// scheduler reads it once at boot and writes it back after every firing.
type PowerupRecord struct {
	NextPowerupMS int64 `json:"nextPowerup"`
}

// QuestRecord marks the start of the current 7-day quest window.
type QuestRecord struct {
	StartTimestamp int64    `json:"startTimestamp"` // unix ms
	QuestBoarIDs   []string `json:"questBoarIDs"`
}

// FeedCursor remembers the last announced pull request so a poll cycle can
// tell "new" from "already seen".
type FeedCursor struct {
	LastURL string `json:"lastURL"`
}
