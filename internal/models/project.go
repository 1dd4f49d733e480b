package models

import "time"

type ProjectType string

const (
	ProjectProductDevelopment ProjectType = "product_development"
	ProjectMarketingCampaign  ProjectType = "marketing_campaign"
	ProjectOperations         ProjectType = "operations"
	ProjectInfrastructure     ProjectType = "infrastructure"
	ProjectProduct            ProjectType = "product"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusArchived  ProjectStatus = "archived"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type Project struct {
	ProjectID     string        `gorm:"type:varchar(36);primarykey" json:"project_id"`
	OrgID         string        `gorm:"type:varchar(36);not null;index" json:"org_id"`
	TeamID        string        `gorm:"type:varchar(36);not null;index" json:"team_id"`
	Name          string        `gorm:"type:varchar(255);not null" json:"name"`
	Description   string        `gorm:"type:text" json:"description"`
	ProjectType   ProjectType   `gorm:"type:varchar(32);not null" json:"project_type"`
	Status        ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	StartDate     time.Time     `json:"start_date"`
	TargetEndDate time.Time     `json:"target_end_date"`
	OwnerUserID   string        `gorm:"type:varchar(36);not null" json:"owner_user_id"`
	Visibility    string        `gorm:"type:varchar(20);not null" json:"visibility"`

	// Relations
	Sections []Section `gorm:"foreignKey:ProjectID;references:ProjectID" json:"sections,omitempty"`
}

// Section is a workflow column within a project board.
type Section struct {
	SectionID    string    `gorm:"type:varchar(36);primarykey" json:"section_id"`
	ProjectID    string    `gorm:"type:varchar(36);not null;index" json:"project_id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	DisplayOrder int       `gorm:"not null" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
