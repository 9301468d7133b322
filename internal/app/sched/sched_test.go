package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronSpec(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"09:00", "0 9 * * *", true},
		{"00:00", "0 0 * * *", true},
		{"23:59", "59 23 * * *", true},
		{"24:00", "", false},
		{"12:60", "", false},
		{"noon", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := cronSpec(c.in)
		if c.ok {
			require.NoError(t, err, c.in)
			assert.Equal(t, c.want, got)
		} else {
			assert.Error(t, err, c.in)
		}
	}
}

func TestArmPowerupRearmsWithReturnedDelay(t *testing.T) {
	s := New()

	fired := make(chan time.Time, 3)
	s.ArmPowerup(5*time.Millisecond, func() time.Duration {
		fired <- time.Now()
		return 5 * time.Millisecond
	})

	deadline := time.After(2 * time.Second)
	for i := 0; i < 3; i++ {
		select {
		case <-fired:
		case <-deadline:
			t.Fatalf("timer fired %d times, want 3", i)
		}
	}
}
