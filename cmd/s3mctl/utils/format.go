package utils

import (
	"fmt"
)

const (
	secondsPerHour = 3600
	secondsPerDay  = 86400
)

// FormatLifetime renders a remaining cluster lifetime given in seconds.
// Values of a day or more are shown in days, anything shorter in hours, both
// with two decimals: 90000 -> "1.04 days", 3600 -> "1.00 hours".
func FormatLifetime(seconds float64) string {
	if seconds >= secondsPerDay {
		return fmt.Sprintf("%.2f days", seconds/secondsPerDay)
	}
	return fmt.Sprintf("%.2f hours", seconds/secondsPerHour)
}
