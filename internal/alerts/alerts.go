// Package alerts keeps the recent user facing alerts raised while editing.
package alerts

import (
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/client"
	"github.com/thand-io/console/internal/common"
	"github.com/thand-io/console/internal/models"
)

const (
	DefaultBufferSize = 50

	RetrievalErrorMessage = "Retrieval error"
)

// Buffer is a fixed size ring of alerts, oldest first.
type Buffer struct {
	alerts     []*models.Alert
	maxSize    int
	currentPos int
	isFull     bool
	mu         sync.RWMutex
}

func NewBuffer(size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Buffer{
		alerts:  make([]*models.Alert, size),
		maxSize: size,
	}
}

// Push stores an alert, overwriting the oldest one once the buffer is full.
// A nil buffer only logs the alert.
func (b *Buffer) Push(alert models.Alert) {
	if alert.Time.IsZero() {
		alert.Time = time.Now().UTC()
	}

	entry := logrus.WithFields(logrus.Fields{
		"level":       alert.Level,
		"description": alert.Description,
	})
	switch alert.Level {
	case models.AlertLevelError:
		entry.Errorln(alert.Message)
	case models.AlertLevelWarning:
		entry.Warnln(alert.Message)
	default:
		entry.Infoln(alert.Message)
	}

	if b == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.alerts[b.currentPos] = &alert
	b.currentPos = (b.currentPos + 1) % b.maxSize

	if b.currentPos == 0 {
		b.isFull = true
	}
}

func (b *Buffer) Error(message, description string) {
	b.Push(models.Alert{Level: models.AlertLevelError, Message: message, Description: description})
}

func (b *Buffer) Success(message, description string) {
	b.Push(models.Alert{Level: models.AlertLevelSuccess, Message: message, Description: description})
}

// All returns every stored alert in chronological order.
func (b *Buffer) All() []models.Alert {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.all()
}

func (b *Buffer) Recent(count int) []models.Alert {
	all := b.All()
	if count <= 0 || len(all) <= count {
		return all
	}
	return all[len(all)-count:]
}

func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.isFull {
		return b.maxSize
	}
	return b.currentPos
}

// AlertFilter narrows the alerts returned by Filter.
type AlertFilter struct {
	// Levels to include. Empty means all levels.
	Levels []models.AlertLevel `json:"levels,omitempty"`
	Since  *time.Time          `json:"since,omitempty"`
	// Query matches message or description, case insensitive.
	Query string `json:"query,omitempty"`
	// Limit of 0 means no limit.
	Limit int `json:"limit,omitempty"`
}

func (b *Buffer) Filter(filter AlertFilter) []models.Alert {
	var filtered []models.Alert

	for _, alert := range b.All() {
		if len(filter.Levels) > 0 && !slices.Contains(filter.Levels, alert.Level) {
			continue
		}
		if filter.Since != nil && alert.Time.Before(*filter.Since) {
			continue
		}
		if len(filter.Query) > 0 &&
			!common.ContainsInsensitive(alert.Message, filter.Query) &&
			!common.ContainsInsensitive(alert.Description, filter.Query) {
			continue
		}

		filtered = append(filtered, alert)

		if filter.Limit > 0 && len(filtered) >= filter.Limit {
			break
		}
	}

	return filtered
}

// Dismiss removes the alert at index, counted in the order returned by All.
func (b *Buffer) Dismiss(index int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := b.all()
	if index < 0 || index >= len(all) {
		return false
	}
	all = slices.Delete(all, index, index+1)

	b.alerts = make([]*models.Alert, b.maxSize)
	for i := range all {
		b.alerts[i] = &all[i]
	}
	b.currentPos = len(all) % b.maxSize
	b.isFull = false

	return true
}

func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.alerts = make([]*models.Alert, b.maxSize)
	b.currentPos = 0
	b.isFull = false
}

// all assumes the caller holds the lock.
func (b *Buffer) all() []models.Alert {
	var ordered []*models.Alert
	if !b.isFull {
		ordered = b.alerts[:b.currentPos]
	} else {
		ordered = append(slices.Clone(b.alerts[b.currentPos:]), b.alerts[:b.currentPos]...)
	}

	result := make([]models.Alert, 0, len(ordered))
	for _, alert := range ordered {
		result = append(result, *alert)
	}
	return result
}

// FromFetchError builds the alert shown when a backend fetch fails. The
// server description is preferred over the fallback when one is present.
func FromFetchError(err error, fallbackDescription string) models.Alert {
	description := fallbackDescription
	if serverDescription, ok := client.Description(err); ok {
		description = serverDescription
	}
	return models.Alert{
		Level:       models.AlertLevelError,
		Message:     RetrievalErrorMessage,
		Description: description,
		Time:        time.Now().UTC(),
	}
}
