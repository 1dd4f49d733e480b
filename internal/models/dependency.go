package models

import "time"

type DependencyType string

const (
	DependencyBlocks    DependencyType = "blocks"
	DependencyBlockedBy DependencyType = "is_blocked_by"
	DependencyRelated   DependencyType = "related_to"
)

// TaskDependency links two tasks in the same project. Self references are
// never generated.
type TaskDependency struct {
	DependencyID    string         `gorm:"type:varchar(36);primarykey" json:"dependency_id"`
	TaskID          string         `gorm:"type:varchar(36);not null;index" json:"task_id"`
	DependsOnTaskID string         `gorm:"type:varchar(36);not null;index" json:"depends_on_task_id"`
	DependencyType  DependencyType `gorm:"type:varchar(20);not null" json:"dependency_type"`
	CreatedAt       time.Time      `json:"created_at"`
}
