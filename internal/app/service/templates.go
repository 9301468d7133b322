package service

import "strings"

// Notification templates, in fixed order. Placeholders are consumed
// left-to-right by Substitute; the indices listed in statFor need a live
// statistic interpolated before send.
var notificationTemplates = []string{
	"Your daily boar is ready! Use /boar daily to claim it.",
	"A wild boar waits for you. Don't lose your streak!",
	"There are %@ boars in the catalog and one of them is yours today.",
	"You and %@ other collectors are hunting boars right now.",
	"Boars are roaming across %@ servers. Claim yours!",
	"Your streak is at %@ days. Keep it going with /boar daily.",
	"The boars miss you.",
}

// stat identifies the live statistic a template index interpolates.
type stat int

const (
	statNone stat = iota
	statCatalogSize
	statActiveUsers
	statActiveGuilds
	statUserStreak
)

func statFor(templateIndex int) stat {
	switch templateIndex {
	case 2:
		return statCatalogSize
	case 3:
		return statActiveUsers
	case 4:
		return statActiveGuilds
	case 5:
		return statUserStreak
	default:
		return statNone
	}
}

// Substitute replaces %@ placeholders positionally with values, left to
// right. Extra values are ignored; missing values leave the placeholder as
// is.
func Substitute(template string, values ...string) string {
	out := template
	for _, v := range values {
		i := strings.Index(out, "%@")
		if i < 0 {
			break
		}
		out = out[:i] + v + out[i+2:]
	}
	return out
}
