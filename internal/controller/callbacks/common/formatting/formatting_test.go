package formatting

import (
	"testing"

	"github.com/luciafdez/clases_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "20.00 €", FormatPrice(2000))
	assert.Equal(t, "20 €", FormatPriceShort(2000))
	assert.Equal(t, "20.50 €", FormatPriceShort(2050))
	assert.Equal(t, "0.00 €", FormatPrice(0))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 min", FormatDuration(45))
	assert.Equal(t, "1 h", FormatDuration(60))
	assert.Equal(t, "1 h 30 min", FormatDuration(90))
}

func TestFormatConflict(t *testing.T) {
	lesson := &model.Lesson{
		Subject:     "Matemáticas",
		StudentName: "Lucía",
		StartTime:   "09:00",
		EndTime:     "10:00",
	}
	assert.Equal(t, "Matemáticas (Lucía) de 09:00 a 10:00", FormatConflict(lesson))
}
