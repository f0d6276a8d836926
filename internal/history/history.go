// Package history keeps a log of solved equations.
package history

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/physcalc/internal/config"
)

var ErrNotFound = errors.New("history: record not found")

// Record is one successful calculation.
type Record struct {
	ID        string             `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time          `gorm:"index" json:"created_at"`
	Chapter   string             `gorm:"size:32;not null" json:"chapter"`
	Equation  string             `gorm:"not null" json:"equation"`
	Solver    string             `gorm:"size:64" json:"solver"`
	Symbol    string             `json:"symbol"`
	Param     string             `json:"param"`
	Value     float64            `json:"value"`
	Inputs    map[string]float64 `gorm:"serializer:json" json:"inputs"`
}

func (Record) TableName() string {
	return "history"
}

// Store persists records. List returns the newest records first; a limit
// of zero or less returns everything.
type Store interface {
	Init() error
	Save(r *Record) error
	List(limit int) ([]Record, error)
	Load(id string) (*Record, error)
	Clear() error
	Close() error
}

// stamp fills in the ID and timestamp of a record about to be saved.
func stamp(r *Record) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
}

// Open returns the store selected by cfg, initialized and ready.
func Open(cfg *config.Config) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.History.Backend {
	case "", "file":
		s = NewFileStore(filepath.Join(cfg.DataDir, "history"))
	case "sqlite":
		s, err = NewSQLStore(filepath.Join(cfg.DataDir, "history.db"))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown history backend: %s", cfg.History.Backend)
	}
	if err := s.Init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
