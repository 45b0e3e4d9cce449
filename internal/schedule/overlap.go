// Package schedule detects booking conflicts between lessons on the
// same calendar day. Times are compared as zero-padded HH:MM strings,
// which orders correctly without parsing.
package schedule

import (
	"regexp"

	"github.com/luciafdez/clases_bot/internal/calendar"
	"github.com/luciafdez/clases_bot/internal/model"
)

// Candidate is the lesson being created or edited, reduced to the
// fields the conflict check needs.
type Candidate struct {
	Date      string
	StartTime string
	EndTime   string
}

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeOfDay reports whether s is a well-formed 24h HH:MM string.
func ValidTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// DetectOverlap returns the first lesson in existing that occupies the
// same date and an intersecting time range as the candidate, or nil.
// The lesson with id excludeID is ignored so an edit never conflicts
// with itself; pass "" when creating.
//
// Malformed existing records are skipped: one corrupt row must not
// block every save. A malformed candidate yields nil, since no
// meaningful comparison is possible; the service layer validates the
// candidate's shape before calling, so in practice that path only
// fires for internal callers.
func DetectOverlap(candidate Candidate, existing []model.Lesson, excludeID string) *model.Lesson {
	if !calendar.ValidDateKey(candidate.Date) ||
		!ValidTimeOfDay(candidate.StartTime) ||
		!ValidTimeOfDay(candidate.EndTime) {
		return nil
	}

	for i := range existing {
		lesson := &existing[i]
		if excludeID != "" && lesson.ID == excludeID {
			continue
		}
		if lesson.Date != candidate.Date {
			continue
		}
		if !ValidTimeOfDay(lesson.StartTime) || !ValidTimeOfDay(lesson.EndTime) {
			continue
		}
		if Overlaps(candidate.StartTime, candidate.EndTime, lesson.StartTime, lesson.EndTime) {
			return lesson
		}
	}

	return nil
}
