package common

import (
	"fmt"
	"strings"
	"time"

	iso8601 "github.com/senseyeio/duration"
)

// ParseDuration accepts either a Go duration string ("15m") or an ISO 8601
// duration ("PT15M").
func ParseDuration(duration string) (time.Duration, error) {

	duration = strings.TrimSpace(duration)

	if parsedDuration, err := time.ParseDuration(duration); err == nil {
		return parsedDuration, nil
	} else if isoDuration, err := iso8601.ParseISO8601(duration); err == nil {
		referenceTime := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		shiftedTime := isoDuration.Shift(referenceTime)
		return shiftedTime.Sub(referenceTime), nil
	}

	return 0, fmt.Errorf("invalid duration format: %s. Expect ISO 8601 or duration string", duration)
}

// ParseMinimumDuration parses a duration and rejects anything below minimum.
func ParseMinimumDuration(duration string, minimum time.Duration) (time.Duration, error) {
	d, err := ParseDuration(duration)
	if err != nil {
		return 0, err
	}
	if d < minimum {
		return 0, fmt.Errorf("duration must be at least %s", minimum)
	}
	return d, nil
}

// FormatUptime formats a duration as "2 days, 3 hours, 4 minutes, 5 seconds".
func FormatUptime(d time.Duration) string {
	if d < time.Second {
		return "0 seconds"
	}

	units := []struct {
		name  string
		value int
	}{
		{"day", int(d.Hours()) / 24},
		{"hour", int(d.Hours()) % 24},
		{"minute", int(d.Minutes()) % 60},
		{"second", int(d.Seconds()) % 60},
	}

	var parts []string
	for _, unit := range units {
		switch {
		case unit.value == 1:
			parts = append(parts, "1 "+unit.name)
		case unit.value > 1:
			parts = append(parts, fmt.Sprintf("%d %ss", unit.value, unit.name))
		}
	}

	return strings.Join(parts, ", ")
}
