package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllDigits(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"12345", true},
		{"000", true},
		{"", false},
		{"12a", false},
		{"-1", false},
		{"1 ", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsAllDigits(tt.input), "IsAllDigits(%q)", tt.input)
	}
}

func TestParseStepCount(t *testing.T) {
	n, ok := ParseStepCount("3")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = ParseStepCount("0")
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	_, ok = ParseStepCount("-2")
	assert.False(t, ok)

	_, ok = ParseStepCount("")
	assert.False(t, ok)

	_, ok = ParseStepCount("99999999999999999999999")
	assert.False(t, ok)
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"https://localhost:9443", true},
		{"http://example.com/t/carbon.super", true},
		{"localhost:9443", false},
		{"ftp://example.com", false},
		{"", false},
		{"https://", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsValidURL(tt.input), "IsValidURL(%q)", tt.input)
	}
}
