// Package dto contains the role-scoped projections returned by the API.
// Projections are pure: they are built from stored contracts after the
// state machine has run, never before.
package dto

import "github.com/AliAzlanAziz/fyp-portal-api/internal/models"

// PartySummary identifies the counterpart shown in a contract view.
type PartySummary struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	Department     *string `json:"department,omitempty"`
	RegistrationID *string `json:"registration_id,omitempty"`
}

// GroupMemberView exposes a denormalized group member.
type GroupMemberView struct {
	Name           string `json:"name"`
	RegistrationID string `json:"registration_id"`
}

// ContractCore carries the fields every viewer may see.
type ContractCore struct {
	ID                 string                  `json:"id"`
	ProjectName        string                  `json:"project_name"`
	ProjectDescription *string                 `json:"project_description,omitempty"`
	Acceptance         models.AcceptanceStatus `json:"acceptance"`
	IsClosed           bool                    `json:"is_closed"`
	AdvisorMarks       *int                    `json:"advisor_marks,omitempty"`
	MidMarks           *int                    `json:"mid_marks,omitempty"`
	FinalMarks         *int                    `json:"final_marks,omitempty"`
}

// StudentContractView is the student-facing list entry: the advisor is
// shown, the owning student id and group identities are omitted.
type StudentContractView struct {
	ContractCore
	Advisor *PartySummary `json:"advisor,omitempty"`
}

// AdvisorContractView is the advisor-facing list entry: the requesting
// student is shown, the advisor id and group identities are omitted.
type AdvisorContractView struct {
	ContractCore
	Student *PartySummary `json:"student,omitempty"`
}

// StudentContractDetail is the single-contract view for students: group
// members are visible, only the reverse-direction student id is redacted.
type StudentContractDetail struct {
	ContractCore
	Advisor    *PartySummary   `json:"advisor,omitempty"`
	StudentOne GroupMemberView `json:"student_one"`
	StudentTwo GroupMemberView `json:"student_two"`
}

// AdvisorContractDetail is the single-contract view for advisors: group
// members are visible, the advisor id is redacted.
type AdvisorContractDetail struct {
	ContractCore
	Student    *PartySummary   `json:"student,omitempty"`
	StudentOne GroupMemberView `json:"student_one"`
	StudentTwo GroupMemberView `json:"student_two"`
}

// AdvisorFormView exposes the advisor-filled contract metadata.
type AdvisorFormView struct {
	ContractID    string  `json:"contract_id"`
	Designation   *string `json:"designation,omitempty"`
	Department    *string `json:"department,omitempty"`
	Qualification *string `json:"qualification,omitempty"`
	Compensation  *int    `json:"compensation,omitempty"`
	Tools         *string `json:"tools,omitempty"`
}

func coreOf(c *models.Contract) ContractCore {
	return ContractCore{
		ID:                 c.ID,
		ProjectName:        c.ProjectName,
		ProjectDescription: c.ProjectDescription,
		Acceptance:         c.Acceptance,
		IsClosed:           c.IsClosed,
		AdvisorMarks:       c.AdvisorMarks,
		MidMarks:           c.MidMarks,
		FinalMarks:         c.FinalMarks,
	}
}

// NewStudentContractView projects a contract for the owning student.
func NewStudentContractView(c *models.Contract, advisor *PartySummary) StudentContractView {
	return StudentContractView{ContractCore: coreOf(c), Advisor: advisor}
}

// NewAdvisorContractView projects a contract for the target advisor.
func NewAdvisorContractView(c *models.Contract, student *PartySummary) AdvisorContractView {
	return AdvisorContractView{ContractCore: coreOf(c), Student: student}
}

// NewStudentContractDetail projects the detail view for students.
func NewStudentContractDetail(c *models.Contract, advisor *PartySummary) StudentContractDetail {
	return StudentContractDetail{
		ContractCore: coreOf(c),
		Advisor:      advisor,
		StudentOne:   GroupMemberView{Name: c.StudentOneName, RegistrationID: c.StudentOneRegID},
		StudentTwo:   GroupMemberView{Name: c.StudentTwoName, RegistrationID: c.StudentTwoRegID},
	}
}

// NewAdvisorContractDetail projects the detail view for advisors.
func NewAdvisorContractDetail(c *models.Contract, student *PartySummary) AdvisorContractDetail {
	return AdvisorContractDetail{
		ContractCore: coreOf(c),
		Student:      student,
		StudentOne:   GroupMemberView{Name: c.StudentOneName, RegistrationID: c.StudentOneRegID},
		StudentTwo:   GroupMemberView{Name: c.StudentTwoName, RegistrationID: c.StudentTwoRegID},
	}
}

// NewAdvisorFormView projects the advisor form fields of a contract.
func NewAdvisorFormView(c *models.Contract) AdvisorFormView {
	return AdvisorFormView{
		ContractID:    c.ID,
		Designation:   c.FormDesignation,
		Department:    c.FormDepartment,
		Qualification: c.FormQualification,
		Compensation:  c.FormCompensation,
		Tools:         c.FormTools,
	}
}
