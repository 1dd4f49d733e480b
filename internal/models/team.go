package models

import "time"

type TeamType string

const (
	TeamEngineering TeamType = "engineering"
	TeamMarketing   TeamType = "marketing"
	TeamOperations  TeamType = "operations"
	TeamSales       TeamType = "sales"
	TeamDesign      TeamType = "design"
	TeamLeadership  TeamType = "leadership"
	TeamProduct     TeamType = "product"
	TeamData        TeamType = "data"
)

type Team struct {
	TeamID      string    `gorm:"type:varchar(36);primarykey" json:"team_id"`
	OrgID       string    `gorm:"type:varchar(36);not null;index" json:"org_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	TeamType    TeamType  `gorm:"type:varchar(32);not null" json:"team_type"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`

	// Relations
	Memberships []TeamMembership `gorm:"foreignKey:TeamID;references:TeamID" json:"memberships,omitempty"`
}

type TeamMembership struct {
	MembershipID string    `gorm:"type:varchar(36);primarykey" json:"membership_id"`
	TeamID       string    `gorm:"type:varchar(36);not null;index" json:"team_id"`
	UserID       string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	JoinedAt     time.Time `json:"joined_at"`
	IsLead       bool      `json:"is_lead"`
	RoleInTeam   string    `gorm:"type:varchar(20)" json:"role_in_team"`
}
