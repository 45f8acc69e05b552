package progress

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScoreRecord is one finished quiz run. Records are append-only: nothing in
// the application mutates or removes them.
type ScoreRecord struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Date        time.Time      `gorm:"not null;index" json:"date"`
	Score       int            `gorm:"not null" json:"score"`
	Total       int            `gorm:"not null" json:"total"`
	Proficiency string         `gorm:"type:text;not null" json:"proficiency"`
	Answers     datatypes.JSON `gorm:"type:jsonb" json:"answers,omitempty"`
}

// Answer is one row of the per-question breakdown stored in Answers.
type Answer struct {
	Question string `json:"question"`
	Selected string `json:"selected,omitempty"`
	Correct  string `json:"correct"`
}

// Summary aggregates the whole history.
type Summary struct {
	Attempts int     `json:"attempts"`
	Best     int     `json:"best"`
	Average  float64 `json:"average"`
}
