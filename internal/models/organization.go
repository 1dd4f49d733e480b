package models

import "time"

type Organization struct {
	OrgID         string    `gorm:"type:varchar(36);primarykey" json:"org_id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Domain        string    `gorm:"type:varchar(255);not null" json:"domain"`
	IsVerified    bool      `json:"is_verified"`
	CreatedAt     time.Time `json:"created_at"`
	EmployeeCount int       `gorm:"not null" json:"employee_count"`
	Industry      string    `gorm:"type:varchar(100)" json:"industry"`

	// Relations
	Users []User `gorm:"foreignKey:OrgID;references:OrgID" json:"users,omitempty"`
	Teams []Team `gorm:"foreignKey:OrgID;references:OrgID" json:"teams,omitempty"`
	Tags  []Tag  `gorm:"foreignKey:OrgID;references:OrgID" json:"tags,omitempty"`
}
