//go:build unit

package timeslot_test

import (
	"testing"
	"time"

	"padel-booking/internal/domain/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	valid := map[string]int{"00:00": 0, "09:30": 570, "23:59": 1439}
	for in, want := range valid {
		ct, err := timeslot.ParseClockTime(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, ct.Minutes())
		assert.Equal(t, in, ct.String())
	}

	for _, in := range []string{"", "9:30", "24:00", "12:60", "12-30", "12:30:00"} {
		_, err := timeslot.ParseClockTime(in)
		assert.ErrorIs(t, err, timeslot.ErrInvalidClockTime, in)
	}
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("valid slot", func(t *testing.T) {
		ts, err := timeslot.NewTimeSlot("18:00", "19:30", "", true)
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, ts.Duration())
		assert.Equal(t, "18:00 - 19:30", ts.Label())
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := timeslot.NewTimeSlot("19:30", "19:30", "", true)
		assert.ErrorIs(t, err, timeslot.ErrStartNotBeforeEnd)

		_, err = timeslot.NewTimeSlot("20:00", "19:00", "", true)
		assert.ErrorIs(t, err, timeslot.ErrStartNotBeforeEnd)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := timeslot.NewTimeSlot("7pm", "20:00", "", true)
		assert.ErrorIs(t, err, timeslot.ErrInvalidClockTime)
	})
}

func TestClockTimeOn(t *testing.T) {
	ct, err := timeslot.ParseClockTime("18:30")
	require.NoError(t, err)

	day := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 7, 4, 18, 30, 0, 0, time.UTC), ct.On(day, time.UTC))
}
