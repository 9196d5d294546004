package store

import (
	"context"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"roni/models"
	"roni/pkg/config"
)

// Store persists the conversation log. It exposes exactly the two
// operations the rest of the system needs: append a record and read the
// whole log in order.
type Store struct {
	db *gorm.DB
}

// Open connects using the configured driver and migrates the schema.
func Open() (*Store, error) {
	var dial gorm.Dialector
	switch config.DatabaseDriver {
	case "sqlite":
		dial = sqlite.Open(config.DatabaseDSN)
	case "mysql":
		if config.DatabaseDSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required for mysql")
		}
		dial = mysql.Open(config.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", config.DatabaseDriver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Printf("[store] connected driver=%s", config.DatabaseDriver)
	return New(db)
}

// New wraps an already-open connection and migrates the schema.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&models.Message{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Insert appends one message row.
func (s *Store) Insert(ctx context.Context, m *models.Message) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListOrdered returns every message, oldest first. Seq disambiguates
// identical timestamps so reloads never reorder a conversation.
func (s *Store) ListOrdered(ctx context.Context) ([]models.Message, error) {
	var msgs []models.Message
	if err := s.db.WithContext(ctx).Order("timestamp asc, seq asc").Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}
