// Package timeutil provides helpers for formatting countdown values.
package timeutil

import (
	"fmt"
	"math"
)

const secondsInAMinute = 60

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	if val < 0 {
		val = 0
	}

	mins = val / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// FormatClock formats a number of seconds as "M:SS".
func FormatClock(secs int) string {
	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%d:%02d", m, s)
}

