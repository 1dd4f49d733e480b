package models

import "time"

type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeNumber      FieldType = "number"
	FieldTypeDropdown    FieldType = "dropdown"
	FieldTypeDate        FieldType = "date"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeMultiSelect FieldType = "multi_select"
)

type CustomFieldDefinition struct {
	FieldID     string    `gorm:"type:varchar(36);primarykey" json:"field_id"`
	ProjectID   string    `gorm:"type:varchar(36);not null;index" json:"project_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	FieldType   FieldType `gorm:"type:varchar(20);not null" json:"field_type"`
	Description string    `gorm:"type:text" json:"description"`
	IsRequired  bool      `json:"is_required"`
	CreatedAt   time.Time `json:"created_at"`
}

type CustomFieldValue struct {
	ValueID   string     `gorm:"type:varchar(36);primarykey" json:"value_id"`
	TaskID    string     `gorm:"type:varchar(36);not null;index" json:"task_id"`
	FieldID   string     `gorm:"type:varchar(36);not null;index" json:"field_id"`
	Value     string     `gorm:"type:text" json:"value"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
