package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cvalchemist/resume-analyzer/internal/models"
)

type cachedResult struct {
	ID        string    `gorm:"type:text;primary_key"`
	Payload   string    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (cachedResult) TableName() string {
	return "analysis_results"
}

// PostgresStore keeps results in a shared database so a lookup can be
// routed to any instance. Same insert-only contract as MemoryStore.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&cachedResult{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Put(id string, result models.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	record := cachedResult{ID: id, Payload: string(payload)}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to store result %s: %w", id, err)
	}
	return nil
}

func (s *PostgresStore) Get(id string) (models.AnalysisResult, error) {
	var record cachedResult
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load result %s: %w", id, err)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(record.Payload), &result); err != nil {
		return nil, fmt.Errorf("failed to decode result %s: %w", id, err)
	}
	return result, nil
}
