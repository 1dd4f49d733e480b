package models

import "time"

type Attachment struct {
	AttachmentID     string    `gorm:"type:varchar(36);primarykey" json:"attachment_id"`
	TaskID           string    `gorm:"type:varchar(36);not null;index" json:"task_id"`
	FileName         string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileSize         int64     `json:"file_size"`
	FileURL          string    `gorm:"type:varchar(512)" json:"file_url"`
	UploadedByUserID string    `gorm:"type:varchar(36);not null" json:"uploaded_by_user_id"`
	CreatedAt        time.Time `json:"created_at"`
}
