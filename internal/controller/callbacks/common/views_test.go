package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildMonthKeyboardNavRow(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		prev string
		next string
	}{
		{
			name: "first of month",
			ref:  time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local),
			prev: "cal_mes:2025-02",
			next: "cal_mes:2025-04",
		},
		{
			name: "end of month",
			ref:  time.Date(2025, time.March, 31, 14, 0, 0, 0, time.Local),
			prev: "cal_mes:2025-02",
			next: "cal_mes:2025-04",
		},
		{
			name: "january 31 crosses year back",
			ref:  time.Date(2025, time.January, 31, 0, 0, 0, 0, time.Local),
			prev: "cal_mes:2024-12",
			next: "cal_mes:2025-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := BuildMonthKeyboard(tt.ref)
			require.NotNil(t, kb)

			nav := kb.InlineKeyboard[len(kb.InlineKeyboard)-1]
			require.Len(t, nav, 2)
			require.Equal(t, tt.prev, nav[0].CallbackData)
			require.Equal(t, tt.next, nav[1].CallbackData)
		})
	}
}

func TestBuildMonthKeyboardGridRows(t *testing.T) {
	kb := BuildMonthKeyboard(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local))
	require.NotNil(t, kb)

	// 6 week rows plus the navigation row.
	require.Len(t, kb.InlineKeyboard, 7)
	for _, row := range kb.InlineKeyboard[:6] {
		require.Len(t, row, 7)
	}
}
