package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteConsumesPlaceholdersLeftToRight(t *testing.T) {
	assert.Equal(t, "a 1 b 2", Substitute("a %@ b %@", "1", "2"))
	assert.Equal(t, "a 1 b %@", Substitute("a %@ b %@", "1"))
	assert.Equal(t, "no placeholders", Substitute("no placeholders", "1", "2"))
	assert.Equal(t, "plain", Substitute("plain"))
}

func TestStatForMapsIndexedTemplates(t *testing.T) {
	assert.Equal(t, statNone, statFor(0))
	assert.Equal(t, statNone, statFor(1))
	assert.Equal(t, statCatalogSize, statFor(2))
	assert.Equal(t, statActiveUsers, statFor(3))
	assert.Equal(t, statActiveGuilds, statFor(4))
	assert.Equal(t, statUserStreak, statFor(5))
	assert.Equal(t, statNone, statFor(6))
}

func TestEveryStatTemplateHasAPlaceholder(t *testing.T) {
	for i, tpl := range notificationTemplates {
		if statFor(i) != statNone {
			assert.Contains(t, tpl, "%@", "template %d interpolates a stat", i)
		}
	}
}
