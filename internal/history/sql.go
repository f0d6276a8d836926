package history

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLStore keeps records in a sqlite database through gorm.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(path string) (*SQLStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Init() error {
	if err := s.db.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("failed to migrate history database: %w", err)
	}
	return nil
}

func (s *SQLStore) Save(r *Record) error {
	stamp(r)
	if err := s.db.Create(r).Error; err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

func (s *SQLStore) List(limit int) ([]Record, error) {
	q := s.db.Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var records []Record
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

func (s *SQLStore) Load(id string) (*Record, error) {
	var r Record
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	return &r, nil
}

func (s *SQLStore) Clear() error {
	if err := s.db.Where("1 = 1").Delete(&Record{}).Error; err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
