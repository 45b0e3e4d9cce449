package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestToDateKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "plain date", in: day(2025, time.March, 10), want: "2025-03-10"},
		{name: "zero padded", in: day(2025, time.January, 2), want: "2025-01-02"},
		{name: "time of day ignored", in: time.Date(2025, time.March, 10, 23, 59, 59, 0, time.Local), want: "2025-03-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDateKey(tt.in))
		})
	}
}

func TestToDateKeyZeroFallsBackToNow(t *testing.T) {
	assert.Equal(t, ToDateKey(time.Now()), ToDateKey(time.Time{}))
}

func TestParseDateKey(t *testing.T) {
	got, err := ParseDateKey("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, day(2025, time.March, 10), got)

	_, err = ParseDateKey("10/03/2025")
	assert.Error(t, err)

	_, err = ParseDateKey("")
	assert.Error(t, err)
}

func TestValidDateKey(t *testing.T) {
	assert.True(t, ValidDateKey("2024-02-29"))
	assert.False(t, ValidDateKey("2023-02-29"))
	assert.False(t, ValidDateKey("2025-13-01"))
	assert.False(t, ValidDateKey("not-a-date"))
}

func TestStartOfWeekAlwaysMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "monday stays", in: day(2025, time.March, 10), want: day(2025, time.March, 10)},
		{name: "wednesday", in: day(2025, time.March, 12), want: day(2025, time.March, 10)},
		{name: "saturday", in: day(2025, time.March, 15), want: day(2025, time.March, 10)},
		{name: "sunday goes six back", in: day(2025, time.March, 16), want: day(2025, time.March, 10)},
		{name: "crosses month boundary", in: day(2025, time.May, 1), want: day(2025, time.April, 28)},
		{name: "crosses year boundary", in: day(2026, time.January, 1), want: day(2025, time.December, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.in)
			assert.Equal(t, time.Monday, got.Weekday())
			assert.False(t, got.After(Midnight(tt.in)))
			assert.Equal(t, ToDateKey(tt.want), ToDateKey(got))
		})
	}
}

func TestAddDaysRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
	}{
		{name: "forward week", in: day(2025, time.March, 10), n: 7},
		{name: "backward week", in: day(2025, time.March, 10), n: -7},
		{name: "month boundary", in: day(2024, time.January, 31), n: 1},
		{name: "leap day", in: day(2024, time.February, 28), n: 1},
		{name: "across year", in: day(2025, time.December, 31), n: 45},
		{name: "zero", in: day(2025, time.June, 15), n: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			there := AddDays(tt.in, tt.n)
			back := AddDays(there, -tt.n)
			assert.Equal(t, ToDateKey(tt.in), ToDateKey(back))
		})
	}
}

func TestAddDaysKnownBoundaries(t *testing.T) {
	assert.Equal(t, "2024-02-01", ToDateKey(AddDays(day(2024, time.January, 31), 1)))
	assert.Equal(t, "2024-02-29", ToDateKey(AddDays(day(2024, time.February, 28), 1)))
	assert.Equal(t, "2023-03-01", ToDateKey(AddDays(day(2023, time.February, 28), 1)))
}

func TestMonthMatrix(t *testing.T) {
	for _, ref := range []time.Time{
		day(2025, time.March, 15),
		day(2024, time.February, 1),  // leap February
		day(2025, time.June, 30),     // month starting on Sunday
		day(2025, time.September, 1), // month starting on Monday
		day(2025, time.December, 25),
	} {
		t.Run(ToDateKey(ref), func(t *testing.T) {
			days := MonthMatrix(ref)
			require.Len(t, days, MonthMatrixDays)

			assert.Equal(t, time.Monday, days[0].Weekday())

			first := FirstOfMonth(ref)
			assert.False(t, days[0].After(first))

			foundFirst := false
			for i, d := range days {
				if i > 0 {
					assert.Equal(t, ToDateKey(AddDays(days[i-1], 1)), ToDateKey(d), "days must be consecutive")
				}
				if ToDateKey(d) == ToDateKey(first) {
					foundFirst = true
					assert.True(t, SameMonth(d, ref))
				}
			}
			assert.True(t, foundFirst, "the 1st of the month must be in the grid")
		})
	}
}

func TestMonthMatrixInMonthFlags(t *testing.T) {
	ref := day(2025, time.March, 15)
	for _, d := range MonthMatrix(ref) {
		assert.Equal(t, d.Month() == ref.Month() && d.Year() == ref.Year(), SameMonth(d, ref))
	}
}

func TestFormatDisplay(t *testing.T) {
	d := day(2025, time.March, 10) // a Monday

	tests := []struct {
		name   string
		fields DisplayFields
		want   string
	}{
		{name: "full", fields: DisplayFields{Weekday: true, Day: true, Month: true, Year: true}, want: "lunes, 10 de marzo de 2025"},
		{name: "month and year", fields: DisplayFields{Month: true, Year: true}, want: "marzo de 2025"},
		{name: "weekday only", fields: DisplayFields{Weekday: true}, want: "lunes"},
		{name: "day and month", fields: DisplayFields{Day: true, Month: true}, want: "10 de marzo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDisplay(d, tt.fields))
		})
	}
}

func TestWeekdayNames(t *testing.T) {
	assert.Equal(t, "lunes", WeekdayName(day(2025, time.March, 10)))
	assert.Equal(t, "domingo", WeekdayName(day(2025, time.March, 16)))
	assert.Equal(t, "X", WeekdayShort(day(2025, time.March, 12)))
}
