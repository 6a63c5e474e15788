package common

import (
	"net/url"
	"strconv"
)

// IsValidURL reports whether rawurl is an absolute http(s) URL.
func IsValidURL(rawurl string) bool {
	u, err := url.ParseRequestURI(rawurl)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && len(u.Host) > 0
}

// IsAllDigits checks if a string contains only digits (0-9)
func IsAllDigits(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// ParseStepCount parses a non negative step count from a query value.
func ParseStepCount(value string) (int, bool) {
	if !IsAllDigits(value) {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}
