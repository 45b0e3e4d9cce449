package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierAmounts(t *testing.T) {
	const rate = 2000 // 20 € per hour

	tests := []struct {
		name        string
		durationMin int
		want        int64
	}{
		{name: "half hour still flat", durationMin: 30, want: 2000},
		{name: "exactly one hour", durationMin: 60, want: 2000},
		{name: "75 min adds one block", durationMin: 75, want: 2500},
		{name: "90 min still one block", durationMin: 90, want: 2500},
		{name: "91 min starts second block", durationMin: 91, want: 3000},
		{name: "two hours adds two blocks", durationMin: 120, want: 3000},
		{name: "three hours adds four blocks", durationMin: 180, want: 4000},
		{name: "zero duration", durationMin: 0, want: 0},
		{name: "negative duration", durationMin: -30, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IncomeCents(tt.durationMin, rate))
			// Debt uses the same tiering over the base rate.
			assert.Equal(t, tt.want, DebtCents(tt.durationMin, rate))
		})
	}
}

func TestTierZeroRate(t *testing.T) {
	assert.Zero(t, IncomeCents(60, 0))
	assert.Zero(t, IncomeCents(60, -500))
	assert.Zero(t, DebtCents(90, 0))
}

func TestTierRuleCustomParameters(t *testing.T) {
	rule := TierRule{FirstTierMinutes: 45, BlockMinutes: 15, SurchargeCents: 300}

	assert.Equal(t, int64(1000), rule.AmountCents(45, 1000))
	assert.Equal(t, int64(1300), rule.AmountCents(46, 1000))
	assert.Equal(t, int64(1600), rule.AmountCents(75, 1000))
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{name: "one hour", start: "09:00", end: "10:00", want: 60},
		{name: "ninety minutes", start: "16:30", end: "18:00", want: 90},
		{name: "across noon", start: "11:45", end: "12:15", want: 30},
		{name: "zero length", start: "09:00", end: "09:00", want: 0},
		{name: "end before start clamps", start: "10:00", end: "09:00", want: 0},
		{name: "malformed start", start: "morning", end: "10:00", want: 0},
		{name: "malformed end", start: "09:00", end: "", want: 0},
		{name: "out of range hour", start: "25:00", end: "26:00", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationMinutes(tt.start, tt.end))
		})
	}
}
