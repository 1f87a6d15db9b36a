package models

import "time"

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleAdvisor UserRole = "ADVISOR"
	RoleStudent UserRole = "STUDENT"
	RolePanel   UserRole = "PANEL"
)

// User represents an account of any role stored in the users table.
// Department is set for advisors and panel staff; RegistrationID only
// for students.
type User struct {
	ID             string    `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	FullName       string    `db:"full_name" json:"full_name"`
	Role           UserRole  `db:"role" json:"role"`
	Department     *string   `db:"department" json:"department,omitempty"`
	RegistrationID *string   `db:"registration_id" json:"registration_id,omitempty"`
	InPanel        bool      `db:"in_panel" json:"in_panel"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// AdvisorSummary is the public directory entry for an advisor.
type AdvisorSummary struct {
	ID         string  `db:"id" json:"id"`
	FullName   string  `db:"full_name" json:"full_name"`
	Department *string `db:"department" json:"department,omitempty"`
}

// StaffSummary is the directory entry for panel-eligible staff.
type StaffSummary struct {
	ID         string  `db:"id" json:"id"`
	FullName   string  `db:"full_name" json:"full_name"`
	Department *string `db:"department" json:"department,omitempty"`
}

// StudentSummary is the directory entry for a student.
type StudentSummary struct {
	ID             string  `db:"id" json:"id"`
	FullName       string  `db:"full_name" json:"full_name"`
	RegistrationID *string `db:"registration_id" json:"registration_id,omitempty"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
