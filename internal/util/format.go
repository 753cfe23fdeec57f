package util

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatNumber formats an int64 with K/M suffix for readability.
// Examples: 500 -> "500", 1500 -> "1.5K", 1500000 -> "1.5M"
func FormatNumber(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}

// FormatKg formats a payload mass with thousands separators.
// Examples: 0 -> "0 kg", 9600 -> "9,600 kg"
func FormatKg(kg float64) string {
	return printer.Sprintf("%.0f kg", kg)
}

// FormatPercent formats part/total as a percentage with one decimal.
// A zero total yields "n/a".
func FormatPercent(part, total int) string {
	if total == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", float64(part)*100/float64(total))
}
