package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixelatedFace/BoarBotCommunityEdition/internal/infra/storage"
)

func TestSendAllSkipsOptedOutUsers(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t)

	require.NoError(t, f.users.Update("on", func(u *storage.UserRecord) error {
		u.Notifications = true
		return nil
	}))
	require.NoError(t, f.users.Update("off", func(u *storage.UserRecord) error {
		u.Notifications = false
		return nil
	}))

	msgr := &fakeMessenger{}
	svc := NewNotifyService(f.ctx, f.users, f.guilds, f.globals, msgr, f.rng)
	svc.SendAll()

	for _, dm := range msgr.dms {
		assert.True(t, strings.HasPrefix(dm, "on|"), "only opted-in users get DMs, got %q", dm)
	}
	require.Len(t, msgr.dms, 1)

	// the daily-ready broadcast still goes out
	require.Len(t, msgr.channel, 1)
	assert.True(t, strings.HasPrefix(msgr.channel[0], "chan-default|"))
}

func TestSendAllSurvivesDeliveryFailure(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t)

	for _, uid := range []string{"a", "b"} {
		require.NoError(t, f.users.Update(uid, func(u *storage.UserRecord) error {
			u.Notifications = true
			return nil
		}))
	}

	msgr := &fakeMessenger{failNext: true}
	svc := NewNotifyService(f.ctx, f.users, f.guilds, f.globals, msgr, f.rng)
	svc.SendAll()

	// one DM failed, the loop kept going
	assert.Len(t, msgr.dms, 1)
	assert.Len(t, msgr.channel, 1)
}

func TestSetNotifications(t *testing.T) {
	f := newFixture(t)
	svc := NewNotifyService(f.ctx, f.users, f.guilds, f.globals, &fakeMessenger{}, f.rng)

	msg, err := svc.SetNotifications("u1", true)
	require.NoError(t, err)
	assert.Contains(t, msg, "on")

	rec, err := f.users.Get("u1")
	require.NoError(t, err)
	assert.True(t, rec.Notifications)
}
