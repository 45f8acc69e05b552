package courseplan

import (
	"time"

	"gorm.io/datatypes"
)

// TodoList is the persisted todo list for one proficiency level. Each new
// conversion overwrites the list for its level; lists are never merged.
type TodoList struct {
	Proficiency string         `gorm:"primaryKey" json:"proficiency"`
	Items       datatypes.JSON `gorm:"type:jsonb;not null" json:"items"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// PlanView is what the popup renders after generating a roadmap.
type PlanView struct {
	Proficiency string `json:"proficiency"`
	HTML        string `json:"html"`
}
