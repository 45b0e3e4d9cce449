package formatting

import "fmt"

// FormatPrice renders euro cents as a price.
func FormatPrice(priceInCents int64) string {
	return fmt.Sprintf("%.2f €", float64(priceInCents)/100)
}

// FormatPriceShort drops the decimals when they are zero.
func FormatPriceShort(priceInCents int64) string {
	if priceInCents%100 == 0 {
		return fmt.Sprintf("%.0f €", float64(priceInCents)/100)
	}
	return FormatPrice(priceInCents)
}
