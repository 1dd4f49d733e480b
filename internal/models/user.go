package models

import "time"

type UserRole string

const (
	RoleIndividualContributor UserRole = "individual_contributor"
	RoleLead                  UserRole = "lead"
	RoleManager               UserRole = "manager"
	RoleDirector              UserRole = "director"
	RoleExecutive             UserRole = "executive"
)

type SeniorityLevel string

const (
	SeniorityIntern    SeniorityLevel = "intern"
	SeniorityJunior    SeniorityLevel = "junior"
	SeniorityMid       SeniorityLevel = "mid"
	SenioritySenior    SeniorityLevel = "senior"
	SeniorityStaff     SeniorityLevel = "staff"
	SeniorityPrincipal SeniorityLevel = "principal"
)

type User struct {
	UserID            string         `gorm:"type:varchar(36);primarykey" json:"user_id"`
	OrgID             string         `gorm:"type:varchar(36);not null;index" json:"org_id"`
	Email             string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName          string         `gorm:"type:varchar(255);not null" json:"full_name"`
	FirstName         string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName          string         `gorm:"type:varchar(100);not null" json:"last_name"`
	PasswordHash      string         `gorm:"type:varchar(255);not null" json:"-"`
	ProfilePictureURL *string        `gorm:"type:varchar(512)" json:"profile_picture_url"`
	Role              UserRole       `gorm:"type:varchar(32);not null" json:"role"`
	SeniorityLevel    SeniorityLevel `gorm:"type:varchar(20);not null" json:"seniority_level"`
	CreatedAt         time.Time      `json:"created_at"`
	IsActive          bool           `json:"is_active"`
	Department        string         `gorm:"type:varchar(100)" json:"department"`
}
