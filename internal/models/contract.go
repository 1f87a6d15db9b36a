package models

import "time"

// AcceptanceStatus is the advisor's response state on a contract.
type AcceptanceStatus string

const (
	AcceptanceNotResponded AcceptanceStatus = "NOT_RESPONDED"
	AcceptanceAccepted     AcceptanceStatus = "ACCEPTED"
	AcceptanceRejected     AcceptanceStatus = "REJECTED"
)

// IsValidAcceptanceStatus reports whether s is a known status value.
func IsValidAcceptanceStatus(s AcceptanceStatus) bool {
	switch s {
	case AcceptanceNotResponded, AcceptanceAccepted, AcceptanceRejected:
		return true
	}
	return false
}

// GroupMember is the denormalized identity of a group member, stored on
// the contract so the one-active-contract-per-student check works even
// for the partner who never authenticated.
type GroupMember struct {
	Name           string `json:"name" validate:"required"`
	RegistrationID string `json:"registration_id" validate:"required"`
}

// Contract represents one supervision request/agreement between a
// student group and an advisor. Closure is a terminal flag orthogonal
// to the acceptance status.
type Contract struct {
	ID                 string           `db:"id" json:"id"`
	StudentID          string           `db:"student_id" json:"student_id"`
	AdvisorID          string           `db:"advisor_id" json:"advisor_id"`
	ProjectName        string           `db:"project_name" json:"project_name"`
	ProjectDescription *string          `db:"project_description" json:"project_description,omitempty"`
	StudentOneName     string           `db:"student_one_name" json:"-"`
	StudentOneRegID    string           `db:"student_one_reg_id" json:"-"`
	StudentTwoName     string           `db:"student_two_name" json:"-"`
	StudentTwoRegID    string           `db:"student_two_reg_id" json:"-"`
	Acceptance         AcceptanceStatus `db:"acceptance" json:"acceptance"`
	IsClosed           bool             `db:"is_closed" json:"is_closed"`

	FormDesignation   *string `db:"form_designation" json:"form_designation,omitempty"`
	FormDepartment    *string `db:"form_department" json:"form_department,omitempty"`
	FormQualification *string `db:"form_qualification" json:"form_qualification,omitempty"`
	FormCompensation  *int    `db:"form_compensation" json:"form_compensation,omitempty"`
	FormTools         *string `db:"form_tools" json:"form_tools,omitempty"`

	PanelID *string `db:"panel_id" json:"panel_id,omitempty"`

	AdvisorMarks *int `db:"advisor_marks" json:"advisor_marks,omitempty"`
	MidMarks     *int `db:"mid_marks" json:"mid_marks,omitempty"`
	FinalMarks   *int `db:"final_marks" json:"final_marks,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// StudentOne returns the first group member.
func (c *Contract) StudentOne() GroupMember {
	return GroupMember{Name: c.StudentOneName, RegistrationID: c.StudentOneRegID}
}

// StudentTwo returns the second group member.
func (c *Contract) StudentTwo() GroupMember {
	return GroupMember{Name: c.StudentTwoName, RegistrationID: c.StudentTwoRegID}
}

// AdvisorForm groups the advisor-filled contract metadata. Its lifecycle
// is independent of the acceptance status.
type AdvisorForm struct {
	Designation   string  `json:"designation" validate:"required"`
	Department    string  `json:"department" validate:"required"`
	Qualification string  `json:"qualification" validate:"required"`
	Compensation  *int    `json:"compensation,omitempty"`
	Tools         *string `json:"tools,omitempty"`
}

// MarksPatch is a partial marks update; nil fields are left untouched.
type MarksPatch struct {
	Advisor *int `json:"advisor,omitempty"`
	Mid     *int `json:"mid,omitempty"`
	Final   *int `json:"final,omitempty"`
}

// IsEmpty reports whether the patch carries no values.
func (p MarksPatch) IsEmpty() bool {
	return p.Advisor == nil && p.Mid == nil && p.Final == nil
}
