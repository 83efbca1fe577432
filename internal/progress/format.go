// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package progress

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Time unit boundaries for the remaining-time rendering.
const (
	msPerSecond    = 1000
	secondsPerMin  = 60
	minutesPerHour = 60
	hoursPerDay    = 24
	daysPerYear    = 365
)

// SizeInKB renders a byte count as kilobytes with thousands separators.
func SizeInKB(amount int64) string {
	return humanize.Comma(amount/1024) + " KB"
}

// FormatRemaining renders an estimated remaining time in milliseconds as
// a coarse human-readable duration. The unit count is rounded and the
// singular form is used only when it is exactly 1.
func FormatRemaining(milliseconds float64) string {
	seconds := int64(milliseconds/msPerSecond + 0.5)
	if seconds < secondsPerMin {
		return pluralize(seconds, "sec")
	}

	minutes := (seconds + secondsPerMin/2) / secondsPerMin
	if minutes < minutesPerHour {
		return pluralize(minutes, "min")
	}

	hours := (minutes + minutesPerHour/2) / minutesPerHour
	if hours < hoursPerDay {
		return pluralize(hours, "hr")
	}

	days := (hours + hoursPerDay/2) / hoursPerDay
	if days < daysPerYear {
		return pluralize(days, "day")
	}

	years := (days + daysPerYear/2) / daysPerYear

	return pluralize(years, "year")
}

func pluralize(count int64, unit string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", unit)
	}

	return fmt.Sprintf("%d %ss", count, unit)
}
