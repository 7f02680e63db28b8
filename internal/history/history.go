// Package history persists a log of evaluated expressions for the
// interactive calculator.
//
// The default backend is an in-memory SQLite database, so nothing survives
// the process unless the caller opts into a file path or a PostgreSQL DSN.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InMemoryDSN is the default backend: a private in-memory SQLite database.
const InMemoryDSN = "file::memory:?cache=shared"

// Entry is one recorded evaluation.
type Entry struct {
	ID         uint   `gorm:"primaryKey"`
	SessionID  string `gorm:"index;size:36"`
	Expression string
	Result     string
	ErrorKind  string
	CreatedAt  time.Time
}

// Store records and retrieves calculation history.
type Store struct {
	db *gorm.DB
}

// Open connects to the history backend selected by dsn and migrates the
// schema. PostgreSQL DSNs (postgres:// URLs or key=value strings) use the
// postgres driver; everything else, including the empty string, is treated
// as a SQLite path.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = InMemoryDSN
	}

	var dialector gorm.Dialector
	if isPostgresDSN(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening history store: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrating history schema: %w", err)
	}

	return &Store{db: db}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// NewSessionID mints an identifier for one interactive session.
func NewSessionID() string {
	return uuid.NewString()
}

// Record appends one evaluation to the log. result and errorKind are
// mutually exclusive: exactly one of them is non-empty.
func (s *Store) Record(sessionID, expression, result, errorKind string) error {
	entry := Entry{
		SessionID:  sessionID,
		Expression: expression,
		Result:     result,
		ErrorKind:  errorKind,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("recording history entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries for the session, newest first.
func (s *Store) Recent(sessionID string, limit int) ([]Entry, error) {
	if limit < 1 {
		limit = 10
	}

	var entries []Entry
	err := s.db.
		Where("session_id = ?", sessionID).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("loading history entries: %w", err)
	}
	return entries, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
