package model

import "time"

// TaskProgress is an append-only log entry written by a task's assigned provider.
type TaskProgress struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	TaskID      string    `gorm:"size:36;not null;index" json:"taskId"`
	ProviderID  string    `gorm:"size:36;not null" json:"providerId"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Timestamp   time.Time `gorm:"not null;index" json:"timestamp"`

	Provider *User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (TaskProgress) TableName() string {
	return "task_progress"
}
