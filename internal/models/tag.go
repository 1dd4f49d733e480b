package models

import "time"

type Tag struct {
	TagID     string    `gorm:"type:varchar(36);primarykey" json:"tag_id"`
	OrgID     string    `gorm:"type:varchar(36);not null;index" json:"org_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Color     string    `gorm:"type:varchar(20)" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

type TaskTag struct {
	TaskTagID string    `gorm:"type:varchar(36);primarykey" json:"task_tag_id"`
	TaskID    string    `gorm:"type:varchar(36);not null;index" json:"task_id"`
	TagID     string    `gorm:"type:varchar(36);not null;index" json:"tag_id"`
	AddedAt   time.Time `json:"added_at"`
}
