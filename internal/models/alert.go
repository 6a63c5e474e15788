package models

import "time"

type AlertLevel string

const (
	AlertLevelSuccess AlertLevel = "success"
	AlertLevelInfo    AlertLevel = "info"
	AlertLevelWarning AlertLevel = "warning"
	AlertLevelError   AlertLevel = "error"
)

// Alert is a transient, dismissable message shown to the administrator.
type Alert struct {
	Level       AlertLevel `json:"level"`
	Message     string     `json:"message"`
	Description string     `json:"description"`
	Time        time.Time  `json:"time"`
}
