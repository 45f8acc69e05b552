package setting

import "time"

// Setting is one slot of the key-value store the popup persists small state
// in: proficiency level, encrypted API key. Keys are independent; there is no
// schema versioning.
type Setting struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
