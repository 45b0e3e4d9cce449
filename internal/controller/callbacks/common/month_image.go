package common

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"github.com/luciafdez/clases_bot/internal/calendar"
	"golang.org/x/image/font/basicfont"
)

// Layout constants for the month grid image.
const (
	imageWidth    = 1120
	imageHeight   = 860
	headerHeight  = 80
	weekdayHeight = 40
	gridColumns   = 7
	gridRows      = 6
	cellPadding   = 8.0
)

// Color scheme.
var (
	bgColor         = color.RGBA{245, 246, 248, 255}
	headerTextColor = color.RGBA{60, 64, 70, 255}
	weekdayColor    = color.RGBA{110, 115, 120, 255}
	gridLineColor   = color.NRGBA{200, 202, 206, 255}
	inMonthColor    = color.RGBA{255, 255, 255, 255}
	outMonthColor   = color.RGBA{232, 233, 236, 255}
	todayColor      = color.NRGBA{255, 99, 71, 60}
	dayNumberColor  = color.RGBA{60, 64, 70, 255}
	dimNumberColor  = color.RGBA{160, 163, 168, 255}
	lessonsColor    = color.RGBA{46, 125, 50, 255}
)

// Weekday labels in grid order, Monday first.
var weekdayLabels = []string{"L", "M", "X", "J", "V", "S", "D"}

// GenerateMonthImage renders the 42-day month view of ref as a PNG.
// lessonsPerDay maps date keys to how many lessons that day holds;
// days outside ref's month are dimmed and today is tinted.
func GenerateMonthImage(ref, today time.Time, lessonsPerDay map[string]int) ([]byte, error) {
	days := calendar.MonthMatrix(ref)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	// Header: "marzo de 2025".
	title := fmt.Sprintf("%s de %d", calendar.MonthName(ref), ref.Year())
	dc.SetColor(headerTextColor)
	dc.DrawStringAnchored(title, imageWidth/2, headerHeight/2, 0.5, 0.5)

	cellWidth := float64(imageWidth) / gridColumns
	cellHeight := float64(imageHeight-headerHeight-weekdayHeight) / gridRows
	gridTop := float64(headerHeight + weekdayHeight)

	// Weekday row.
	dc.SetColor(weekdayColor)
	for i, label := range weekdayLabels {
		x := float64(i)*cellWidth + cellWidth/2
		dc.DrawStringAnchored(label, x, float64(headerHeight)+weekdayHeight/2, 0.5, 0.5)
	}

	todayKey := calendar.ToDateKey(today)

	for i, day := range days {
		col := i % gridColumns
		row := i / gridColumns
		x := float64(col) * cellWidth
		y := gridTop + float64(row)*cellHeight

		cellColor := inMonthColor
		if !calendar.SameMonth(day, ref) {
			cellColor = outMonthColor
		}
		dc.SetColor(cellColor)
		dc.DrawRectangle(x, y, cellWidth, cellHeight)
		dc.Fill()

		key := calendar.ToDateKey(day)
		if key == todayKey {
			dc.SetColor(todayColor)
			dc.DrawRectangle(x, y, cellWidth, cellHeight)
			dc.Fill()
		}

		numberColor := dayNumberColor
		if !calendar.SameMonth(day, ref) {
			numberColor = dimNumberColor
		}
		dc.SetColor(numberColor)
		dc.DrawString(fmt.Sprintf("%d", day.Day()), x+cellPadding, y+cellPadding+10)

		if count := lessonsPerDay[key]; count > 0 {
			label := fmt.Sprintf("%d clase", count)
			if count > 1 {
				label += "s"
			}
			dc.SetColor(lessonsColor)
			dc.DrawString(label, x+cellPadding, y+cellHeight-cellPadding)
		}
	}

	// Grid lines on top of the cells.
	dc.SetColor(gridLineColor)
	dc.SetLineWidth(1)
	for i := 0; i <= gridColumns; i++ {
		x := float64(i) * cellWidth
		dc.DrawLine(x, gridTop, x, float64(imageHeight))
	}
	for i := 0; i <= gridRows; i++ {
		y := gridTop + float64(i)*cellHeight
		dc.DrawLine(0, y, float64(imageWidth), y)
	}
	dc.Stroke()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode month image: %w", err)
	}
	return buf.Bytes(), nil
}
