package model

import "time"

// Profile holds the tutor's billing settings. All rates are euro cents.
// Zero values mean "not configured": money computations over a zero rate
// must come out as 0, never as an error.
type Profile struct {
	ID               int64     `json:"id"`
	ChatID           int64     `json:"chat_id"`
	HourlyRateCents  int64     `json:"hourly_rate_cents"`
	BaseRateCents    int64     `json:"base_rate_cents"`
	MetaHoursMonthly int       `json:"meta_hours_monthly"`
	UpdatedAt        time.Time `json:"updated_at"`
}
