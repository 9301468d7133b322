package storage

// Class is the entity class a record belongs to; it decides which directory
// the record's file lives in.
type Class string

const (
	ClassUser   Class = "user"
	ClassGuild  Class = "guild"
	ClassGlobal Class = "global"
)

// Identity names exactly one record. Its Key is also the task-queue key that
// serializes every read-modify-write of that record — the delimiter keeps
// unrelated identities from colliding into the same queue chain.
type Identity struct {
	Class Class
	ID    string
}

func (id Identity) Key() string { return string(id.Class) + "/" + id.ID }

func UserIdentity(userID string) Identity   { return Identity{ClassUser, userID} }
func GuildIdentity(guildID string) Identity { return Identity{ClassGuild, guildID} }

// Global singleton records, one fixed filename per concern.
var (
	ItemsIdentity       = Identity{ClassGlobal, "items"}
	LeaderboardIdentity = Identity{ClassGlobal, "leaderboard"}
	BannedIdentity      = Identity{ClassGlobal, "bannedusers"}
	PowerupsIdentity    = Identity{ClassGlobal, "powerups"}
	QuestIdentity       = Identity{ClassGlobal, "quest"}
	FeedCursorIdentity  = Identity{ClassGlobal, "feedcursor"}
)
