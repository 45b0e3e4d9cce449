// Package billing turns lesson durations into euro-cent amounts using
// the tutor's tiered rate: the first hour costs the flat rate, then
// every commenced half-hour adds a fixed surcharge. Income (paid
// lessons, profile hourly rate) and debt (unpaid lessons, per-student
// base rate) share the same arithmetic and differ only in which rate
// they are fed.
package billing

import (
	"strconv"
	"strings"
)

// TierRule parameterizes the tiered amount. Both the income and the
// debt views run on DefaultTier; keeping a single rule struct is what
// stops the two from drifting apart.
type TierRule struct {
	FirstTierMinutes int
	BlockMinutes     int
	SurchargeCents   int64
}

// DefaultTier: first hour flat, +5 € per commenced 30 minutes after it.
var DefaultTier = TierRule{
	FirstTierMinutes: 60,
	BlockMinutes:     30,
	SurchargeCents:   500,
}

// AmountCents computes the tiered amount for a lesson of durationMin
// minutes at the given rate. Non-positive duration or rate means "not
// billable" and yields 0. Partial blocks past the first tier round up.
func (r TierRule) AmountCents(durationMin int, rateCents int64) int64 {
	if durationMin <= 0 || rateCents <= 0 {
		return 0
	}
	if durationMin <= r.FirstTierMinutes {
		return rateCents
	}
	extra := durationMin - r.FirstTierMinutes
	blocks := (extra + r.BlockMinutes - 1) / r.BlockMinutes
	return rateCents + int64(blocks)*r.SurchargeCents
}

// IncomeCents is the amount earned for a lesson, at the profile's
// hourly rate.
func IncomeCents(durationMin int, hourlyRateCents int64) int64 {
	return DefaultTier.AmountCents(durationMin, hourlyRateCents)
}

// DebtCents is the amount owed for a lesson, at the base rate.
func DebtCents(durationMin int, baseRateCents int64) int64 {
	return DefaultTier.AmountCents(durationMin, baseRateCents)
}

// DurationMinutes computes end-start for two HH:MM strings. Malformed
// input or a non-positive span clamps to 0, which makes the amount 0
// further down; a corrupt record must never break a sum.
func DurationMinutes(start, end string) int {
	startMin, ok := minutesOfDay(start)
	if !ok {
		return 0
	}
	endMin, ok := minutesOfDay(end)
	if !ok {
		return 0
	}
	d := endMin - startMin
	if d < 0 {
		return 0
	}
	return d
}

func minutesOfDay(s string) (int, bool) {
	h, m, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	min, err := strconv.Atoi(m)
	if err != nil || min < 0 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}
