package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestText(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		totalCents int64
		want       string
	}{
		{
			name:       "whole euros",
			count:      3,
			totalCents: 4500,
			want:       "💶 Tienes 3 clases sin cobrar por un total de 45.00 €.\nUsa /deudas para ver el detalle.",
		},
		{
			name:       "cents survive",
			count:      1,
			totalCents: 1250,
			want:       "💶 Tienes 1 clases sin cobrar por un total de 12.50 €.\nUsa /deudas para ver el detalle.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, digestText(tt.count, tt.totalCents))
		})
	}
}
