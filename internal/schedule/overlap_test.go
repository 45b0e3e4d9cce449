package schedule

import (
	"testing"

	"github.com/luciafdez/clases_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lesson(id, date, start, end string) model.Lesson {
	return model.Lesson{
		ID:          id,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Subject:     "Matemáticas",
		StudentName: "Lucía",
	}
}

func TestValidTimeOfDay(t *testing.T) {
	assert.True(t, ValidTimeOfDay("00:00"))
	assert.True(t, ValidTimeOfDay("09:30"))
	assert.True(t, ValidTimeOfDay("23:59"))
	assert.False(t, ValidTimeOfDay("24:00"))
	assert.False(t, ValidTimeOfDay("9:30"))
	assert.False(t, ValidTimeOfDay("09:60"))
	assert.False(t, ValidTimeOfDay("0930"))
	assert.False(t, ValidTimeOfDay(""))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{name: "partial overlap", aStart: "09:00", aEnd: "10:00", bStart: "09:30", bEnd: "10:30", want: true},
		{name: "contained", aStart: "09:00", aEnd: "11:00", bStart: "09:30", bEnd: "10:00", want: true},
		{name: "identical", aStart: "09:00", aEnd: "10:00", bStart: "09:00", bEnd: "10:00", want: true},
		{name: "touching end to start", aStart: "09:00", aEnd: "10:00", bStart: "10:00", bEnd: "11:00", want: false},
		{name: "touching start to end", aStart: "10:00", aEnd: "11:00", bStart: "09:00", bEnd: "10:00", want: false},
		{name: "disjoint", aStart: "09:00", aEnd: "10:00", bStart: "12:00", bEnd: "13:00", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd), "overlap must be symmetric")
		})
	}
}

func TestDetectOverlap(t *testing.T) {
	existing := []model.Lesson{
		lesson("a", "2025-03-10", "09:00", "10:00"),
		lesson("b", "2025-03-10", "12:00", "13:00"),
		lesson("c", "2025-03-11", "09:00", "10:00"),
	}

	t.Run("overlapping candidate conflicts", func(t *testing.T) {
		got := DetectOverlap(Candidate{Date: "2025-03-10", StartTime: "09:45", EndTime: "10:30"}, existing, "")
		require.NotNil(t, got)
		assert.Equal(t, "a", got.ID)
	})

	t.Run("touching endpoints do not conflict", func(t *testing.T) {
		got := DetectOverlap(Candidate{Date: "2025-03-10", StartTime: "10:00", EndTime: "11:00"}, existing, "")
		assert.Nil(t, got)
	})

	t.Run("same time other day does not conflict", func(t *testing.T) {
		got := DetectOverlap(Candidate{Date: "2025-03-12", StartTime: "09:00", EndTime: "10:00"}, existing, "")
		assert.Nil(t, got)
	})

	t.Run("editing a lesson never conflicts with itself", func(t *testing.T) {
		got := DetectOverlap(Candidate{Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00"}, existing, "a")
		assert.Nil(t, got)
	})

	t.Run("exclude still catches other lessons", func(t *testing.T) {
		got := DetectOverlap(Candidate{Date: "2025-03-10", StartTime: "09:30", EndTime: "12:30"}, existing, "a")
		require.NotNil(t, got)
		assert.Equal(t, "b", got.ID)
	})

	t.Run("first conflict in input order wins", func(t *testing.T) {
		got := DetectOverlap(Candidate{Date: "2025-03-10", StartTime: "09:30", EndTime: "12:30"}, existing, "")
		require.NotNil(t, got)
		assert.Equal(t, "a", got.ID)
	})

	t.Run("empty collection", func(t *testing.T) {
		got := DetectOverlap(Candidate{Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00"}, nil, "")
		assert.Nil(t, got)
	})
}

func TestDetectOverlapMalformedInput(t *testing.T) {
	existing := []model.Lesson{
		lesson("a", "2025-03-10", "09:00", "10:00"),
	}

	t.Run("malformed candidate time fails open", func(t *testing.T) {
		got := DetectOverlap(Candidate{Date: "2025-03-10", StartTime: "nine", EndTime: "10:00"}, existing, "")
		assert.Nil(t, got)
	})

	t.Run("malformed candidate date fails open", func(t *testing.T) {
		got := DetectOverlap(Candidate{Date: "10/03/2025", StartTime: "09:00", EndTime: "10:00"}, existing, "")
		assert.Nil(t, got)
	})

	t.Run("malformed existing record is skipped", func(t *testing.T) {
		mixed := []model.Lesson{
			lesson("bad", "2025-03-10", "morning", "10:00"),
			lesson("good", "2025-03-10", "09:00", "10:00"),
		}
		got := DetectOverlap(Candidate{Date: "2025-03-10", StartTime: "09:30", EndTime: "10:30"}, mixed, "")
		require.NotNil(t, got)
		assert.Equal(t, "good", got.ID)
	})
}

// The end-to-end scenario: one saved lesson, two candidates.
func TestDetectOverlapScenario(t *testing.T) {
	existing := []model.Lesson{lesson("l1", "2025-03-10", "09:00", "10:00")}

	conflicting := DetectOverlap(Candidate{Date: "2025-03-10", StartTime: "09:45", EndTime: "10:30"}, existing, "")
	require.NotNil(t, conflicting)
	assert.Equal(t, "l1", conflicting.ID)

	free := DetectOverlap(Candidate{Date: "2025-03-10", StartTime: "10:00", EndTime: "11:00"}, existing, "")
	assert.Nil(t, free)
}
