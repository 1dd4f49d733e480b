package models

import "time"

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "not_started"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusOnHold     TaskStatus = "on_hold"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// Task is the main unit of work. DueDate, StartDate and TargetEndDate are
// civil dates stored as midnight-UTC timestamps.
type Task struct {
	TaskID          string       `gorm:"type:varchar(36);primarykey" json:"task_id"`
	ProjectID       string       `gorm:"type:varchar(36);not null;index" json:"project_id"`
	SectionID       string       `gorm:"type:varchar(36);not null;index" json:"section_id"`
	Name            string       `gorm:"type:varchar(512);not null" json:"name"`
	Description     *string      `gorm:"type:text" json:"description"`
	AssigneeID      *string      `gorm:"type:varchar(36);index" json:"assignee_id"`
	CreatedByUserID string       `gorm:"type:varchar(36);not null" json:"created_by_user_id"`
	CreatedAt       time.Time    `gorm:"index" json:"created_at"`
	DueDate         *time.Time   `gorm:"index" json:"due_date"`
	StartDate       *time.Time   `json:"start_date"`
	Priority        TaskPriority `gorm:"type:varchar(20)" json:"priority"`
	Status          TaskStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	IsCompleted     bool         `json:"is_completed"`
	CompletedAt     *time.Time   `json:"completed_at"`
	EstimatedHours  *float64     `json:"estimated_hours"`
	ActualHours     *float64     `json:"actual_hours"`

	// Relations
	Subtasks []Subtask `gorm:"foreignKey:TaskID;references:TaskID" json:"subtasks,omitempty"`
	Comments []Comment `gorm:"foreignKey:TaskID;references:TaskID" json:"comments,omitempty"`
}

// Subtask mirrors its parent task's due date and completion state.
type Subtask struct {
	SubtaskID   string     `gorm:"type:varchar(36);primarykey" json:"subtask_id"`
	TaskID      string     `gorm:"type:varchar(36);not null;index" json:"task_id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	AssigneeID  *string    `gorm:"type:varchar(36)" json:"assignee_id"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

type Comment struct {
	CommentID string     `gorm:"type:varchar(36);primarykey" json:"comment_id"`
	TaskID    string     `gorm:"type:varchar(36);not null;index" json:"task_id"`
	UserID    string     `gorm:"type:varchar(36);not null" json:"user_id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
	IsEdited  bool       `json:"is_edited"`
}
