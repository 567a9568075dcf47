package domain

import (
	"time"

	"github.com/google/uuid"
)

type ImportStats struct {
	Total     int       `json:"total"`
	Imported  int       `json:"imported"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  string    `json:"duration"`
}

func (s ImportStats) Processed() int {
	return s.Imported + s.Skipped + s.Failed
}

// Report es el documento final de una corrida de importación.
type Report struct {
	Agent         string      `json:"agent"`
	ImportSummary ImportStats `json:"import_summary"`
	Timestamp     string      `json:"timestamp"`
	DataSource    string      `json:"data_source"`
}

type ImportRun struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Vendor     string    `gorm:"size:60;index"`
	Agent      string    `gorm:"size:140"`
	DataSource string    `gorm:"size:255"`
	Total      int
	Imported   int
	Skipped    int
	Failed     int
	StartedAt  time.Time
	FinishedAt time.Time
	CreatedAt  time.Time
}
