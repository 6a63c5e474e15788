// Package audit records console events in a gorm backed store.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/thand-io/console/internal/common"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const DefaultDSN = "file::memory:?cache=shared"

// instanceApp scopes the hashed machine id to the console.
const instanceApp = "thand-console"

type EventType string

const (
	EventScriptReset            EventType = "script.reset"
	EventScriptTemplateSelected EventType = "script.template_selected"
	EventRolesSubmitted         EventType = "roles.submitted"
	EventRolesMappingChanged    EventType = "roles.mapping_changed"
)

// Event is a single recorded console action. Details holds the JSON encoded
// payload of the action.
type Event struct {
	ID         string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	Type       EventType      `gorm:"index;size:64" json:"type"`
	Subject    string         `gorm:"index" json:"subject"`
	InstanceID string         `gorm:"size:36" json:"instance_id"`
	Details    string         `json:"-"`
	Payload    map[string]any `gorm:"-" json:"details,omitempty"`
}

func (e *Event) BeforeCreate(_ *gorm.DB) error {
	if len(e.ID) == 0 {
		e.ID = uuid.NewString()
	}
	if len(e.Payload) > 0 && len(e.Details) == 0 {
		data, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("failed to encode event details: %w", err)
		}
		e.Details = string(data)
	}
	return nil
}

func (e *Event) AfterFind(_ *gorm.DB) error {
	if len(e.Details) == 0 {
		return nil
	}
	return json.Unmarshal([]byte(e.Details), &e.Payload)
}

type Store struct {
	db         *gorm.DB
	instanceID string
}

// Open connects to the sqlite database at dsn and migrates the schema. An
// empty dsn opens a shared in-memory database.
func Open(dsn string) (*Store, error) {
	if len(dsn) == 0 {
		dsn = DefaultDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open audit store: %w", err)
	}

	if err := db.AutoMigrate(&Event{}); err != nil {
		return nil, fmt.Errorf("failed to migrate audit store: %w", err)
	}

	logrus.WithField("dsn", dsn).Debugln("Opened audit store")

	return &Store{
		db:         db,
		instanceID: common.InstanceID(instanceApp).String(),
	}, nil
}

// Record stores an event. Nil stores discard events so that callers can run
// without auditing.
func (s *Store) Record(ctx context.Context, event Event) error {
	if s == nil {
		return nil
	}
	if len(event.Type) == 0 {
		return errors.New("event type is required")
	}
	if len(event.InstanceID) == 0 {
		event.InstanceID = s.instanceID
	}

	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"type":    event.Type,
			"subject": event.Subject,
		}).Errorln("Failed to record audit event")
		return fmt.Errorf("failed to record event: %w", err)
	}

	return nil
}

type ListOptions struct {
	Type    EventType  `form:"type"`
	Subject string     `form:"subject"`
	Since   *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit   int        `form:"limit"`
}

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// List returns matching events, newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Event, error) {
	if s == nil {
		return nil, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	query := s.db.WithContext(ctx).Model(&Event{})
	if len(opts.Type) > 0 {
		query = query.Where("type = ?", opts.Type)
	}
	if len(opts.Subject) > 0 {
		query = query.Where("subject = ?", opts.Subject)
	}
	if opts.Since != nil {
		query = query.Where("created_at >= ?", *opts.Since)
	}

	var events []Event
	if err := query.Order("created_at desc").Limit(limit).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
