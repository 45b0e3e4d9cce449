// Renders a sample month grid to month.png for eyeballing layout
// changes without running the bot.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/luciafdez/clases_bot/internal/calendar"
	"github.com/luciafdez/clases_bot/internal/controller/callbacks/common"
)

func main() {
	now := time.Now()

	counts := map[string]int{
		calendar.ToDateKey(now):                          2,
		calendar.ToDateKey(calendar.AddDays(now, 1)):     1,
		calendar.ToDateKey(calendar.AddDays(now, 3)):     3,
		calendar.ToDateKey(calendar.AddDays(now, 7)):     1,
		calendar.ToDateKey(calendar.FirstOfMonth(now)):   1,
		calendar.ToDateKey(calendar.LastOfMonth(now)):    2,
		calendar.ToDateKey(calendar.AddDays(now, -10)):   1,
	}

	image, err := common.GenerateMonthImage(now, now, counts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile("month.png", image, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("wrote month.png")
}
