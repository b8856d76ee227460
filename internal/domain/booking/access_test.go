//go:build unit

package booking_test

import (
	"testing"
	"time"

	"padel-booking/internal/domain/booking"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateAccess(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	paidFacts := func(paidAt time.Time) booking.AccessFacts {
		return booking.AccessFacts{
			Status:        booking.StatusPaid,
			PaidAt:        lo.ToPtr(paidAt),
			CustomerEmail: "ana@example.com",
			BookingRef:    "PB-ABCDEFGH23",
		}
	}

	t.Run("denies without payment regardless of status", func(t *testing.T) {
		for _, status := range booking.AllStatuses() {
			facts := booking.AccessFacts{Status: status}
			assert.False(t, booking.EvaluateAccess(facts, now), status.String())
		}
	})

	t.Run("denies any status other than paid regardless of paid_at", func(t *testing.T) {
		paidAts := []time.Time{now, now.Add(-time.Minute), now.Add(-23 * time.Hour), now.Add(-48 * time.Hour)}
		for _, status := range booking.AllStatuses() {
			if status == booking.StatusPaid {
				continue
			}
			for _, paidAt := range paidAts {
				facts := paidFacts(paidAt)
				facts.Status = status
				assert.False(t, booking.EvaluateAccess(facts, now), "%s paid %s ago", status, now.Sub(paidAt))
			}
		}
	})

	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{name: "just paid", elapsed: 0, want: true},
		{name: "23h59m", elapsed: 23*time.Hour + 59*time.Minute, want: true},
		{name: "one nanosecond before the boundary", elapsed: 24*time.Hour - time.Nanosecond, want: true},
		{name: "exactly 24h", elapsed: 24 * time.Hour, want: false},
		{name: "25h", elapsed: 25 * time.Hour, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.EvaluateAccess(paidFacts(now.Add(-tt.elapsed)), now))
		})
	}

	t.Run("fractional hours use real elapsed time across zones", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		paidAt := now.Add(-(23*time.Hour + 30*time.Minute)).In(tokyo)
		assert.True(t, booking.EvaluateAccess(paidFacts(paidAt), now))
	})

	t.Run("same inputs give the same result", func(t *testing.T) {
		facts := paidFacts(now.Add(-10 * time.Hour))
		first := booking.EvaluateAccess(facts, now)
		second := booking.EvaluateAccess(facts, now)
		assert.Equal(t, first, second)
	})
}
