package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/AliAzlanAziz/fyp-portal-api/internal/dto"
	"github.com/AliAzlanAziz/fyp-portal-api/internal/models"
	appErrors "github.com/AliAzlanAziz/fyp-portal-api/pkg/errors"
)

type contractRepository interface {
	FindByID(ctx context.Context, id string) (*models.Contract, error)
	FindActiveByRegistrationID(ctx context.Context, regID string) (*models.Contract, error)
	CountActiveAccepted(ctx context.Context, advisorID string) (int, error)
	ListByStudent(ctx context.Context, studentID string, status models.AcceptanceStatus) ([]models.Contract, error)
	ListByAdvisor(ctx context.Context, advisorID string, status models.AcceptanceStatus) ([]models.Contract, error)
	Create(ctx context.Context, contract *models.Contract) error
	UpdateAcceptanceIf(ctx context.Context, id string, expected, next models.AcceptanceStatus) (*models.Contract, error)
	CloseIf(ctx context.Context, id string, expected models.AcceptanceStatus) (*models.Contract, error)
	UpdateAdvisorForm(ctx context.Context, id string, form models.AdvisorForm) (*models.Contract, error)
	UpdateMarks(ctx context.Context, id string, patch models.MarksPatch) (*models.Contract, error)
}

type panelMembership interface {
	MemberIDs(ctx context.Context, panelID string) ([]string, error)
}

type partyReader interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// ContractPolicy carries the configurable lifecycle limits: the advisor
// capacity K and the valid range for each mark.
type ContractPolicy struct {
	AdvisorCapacity int
	MarksMin        int
	AdvisorMarksMax int
	MidMarksMax     int
	FinalMarksMax   int
}

// SelectAdvisorRequest is the student's supervision request payload.
type SelectAdvisorRequest struct {
	AdvisorID          string             `json:"advisor_id" validate:"required"`
	ProjectName        string             `json:"project_name" validate:"required"`
	ProjectDescription *string            `json:"project_description" validate:"omitempty,max=512"`
	StudentOne         models.GroupMember `json:"student_one" validate:"required"`
	StudentTwo         models.GroupMember `json:"student_two" validate:"required"`
}

// PanelMarksRequest carries the panel-submitted evaluation marks.
type PanelMarksRequest struct {
	Mid   *int `json:"mid,omitempty"`
	Final *int `json:"final,omitempty"`
}

// ContractService enforces the contract lifecycle: legal status
// transitions, ownership guards, and the cross-record uniqueness
// invariants checked on creation. All status changes go through the
// store's conditional update so concurrent requests cannot produce a
// lost update.
type ContractService struct {
	repo      contractRepository
	panels    panelMembership
	parties   partyReader
	policy    ContractPolicy
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContractService constructs ContractService.
func NewContractService(repo contractRepository, panels panelMembership, parties partyReader, policy ContractPolicy, validate *validator.Validate, logger *zap.Logger) *ContractService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContractService{repo: repo, panels: panels, parties: parties, policy: policy, validator: validate, logger: logger}
}

// SelectAdvisor creates a new supervision request after the uniqueness
// and capacity checks pass. The requesting student must be exactly one
// of the named group members.
func (s *ContractService) SelectAdvisor(ctx context.Context, principal *models.JWTClaims, req SelectAdvisorRequest) (*models.Contract, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid supervision request payload")
	}

	oneIsRequester := req.StudentOne.RegistrationID == principal.RegistrationID
	twoIsRequester := req.StudentTwo.RegistrationID == principal.RegistrationID
	if oneIsRequester == twoIsRequester {
		return nil, appErrors.ErrInvalidParticipant
	}

	if _, err := s.parties.FindByID(ctx, req.AdvisorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "advisor not found")
		}
		return nil, s.storeFailure(err, "failed to load advisor")
	}

	count, err := s.repo.CountActiveAccepted(ctx, req.AdvisorID)
	if err != nil {
		return nil, s.storeFailure(err, "failed to count advisor contracts")
	}
	if count >= s.policy.AdvisorCapacity {
		return nil, appErrors.ErrCapacityExceeded
	}

	if err := s.checkNoActiveContract(ctx, principal.RegistrationID, "you already have an active supervision request or agreement"); err != nil {
		return nil, err
	}
	partnerID := req.StudentOne.RegistrationID
	if oneIsRequester {
		partnerID = req.StudentTwo.RegistrationID
	}
	if err := s.checkNoActiveContract(ctx, partnerID, "your group member already has an active supervision request or agreement"); err != nil {
		return nil, err
	}

	contract := &models.Contract{
		StudentID:          principal.UserID,
		AdvisorID:          req.AdvisorID,
		ProjectName:        req.ProjectName,
		ProjectDescription: req.ProjectDescription,
		StudentOneName:     req.StudentOne.Name,
		StudentOneRegID:    req.StudentOne.RegistrationID,
		StudentTwoName:     req.StudentTwo.Name,
		StudentTwoRegID:    req.StudentTwo.RegistrationID,
		Acceptance:         models.AcceptanceNotResponded,
	}
	if err := s.repo.Create(ctx, contract); err != nil {
		return nil, s.storeFailure(err, "failed to create contract")
	}
	s.logger.Info("supervision request created",
		zap.String("contract_id", contract.ID),
		zap.String("advisor_id", contract.AdvisorID))
	return contract, nil
}

// Accept transitions NOT_RESPONDED to ACCEPTED for the contract's advisor.
func (s *ContractService) Accept(ctx context.Context, principal *models.JWTClaims, contractID string) (*models.Contract, error) {
	if _, err := s.advisorContract(ctx, principal, contractID); err != nil {
		return nil, err
	}
	return s.transition(ctx, contractID, models.AcceptanceNotResponded, models.AcceptanceAccepted)
}

// Reject transitions NOT_RESPONDED to REJECTED for the contract's advisor.
func (s *ContractService) Reject(ctx context.Context, principal *models.JWTClaims, contractID string) (*models.Contract, error) {
	if _, err := s.advisorContract(ctx, principal, contractID); err != nil {
		return nil, err
	}
	return s.transition(ctx, contractID, models.AcceptanceNotResponded, models.AcceptanceRejected)
}

// CloseByStudent withdraws a request that the advisor has not yet
// responded to.
func (s *ContractService) CloseByStudent(ctx context.Context, principal *models.JWTClaims, contractID string) (*models.Contract, error) {
	if _, err := s.studentContract(ctx, principal, contractID); err != nil {
		return nil, err
	}
	contract, err := s.repo.CloseIf(ctx, contractID, models.AcceptanceNotResponded)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidState
		}
		return nil, s.storeFailure(err, "failed to close contract")
	}
	return contract, nil
}

// CloseByAdvisor ends an accepted agreement.
func (s *ContractService) CloseByAdvisor(ctx context.Context, principal *models.JWTClaims, contractID string) (*models.Contract, error) {
	if _, err := s.advisorContract(ctx, principal, contractID); err != nil {
		return nil, err
	}
	contract, err := s.repo.CloseIf(ctx, contractID, models.AcceptanceAccepted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidState
		}
		return nil, s.storeFailure(err, "failed to close contract")
	}
	return contract, nil
}

// SubmitAdvisorForm replaces the advisor form fields. The write is
// intentionally permitted in any lifecycle state, matching the portal's
// established behaviour.
func (s *ContractService) SubmitAdvisorForm(ctx context.Context, principal *models.JWTClaims, contractID string, form models.AdvisorForm) (*models.Contract, error) {
	if err := s.validator.Struct(form); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid advisor form payload")
	}
	if _, err := s.advisorContract(ctx, principal, contractID); err != nil {
		return nil, err
	}
	contract, err := s.repo.UpdateAdvisorForm(ctx, contractID, form)
	if err != nil {
		return nil, s.storeFailure(err, "failed to update advisor form")
	}
	return contract, nil
}

// SubmitAdvisorMarks records the supervising advisor's score.
func (s *ContractService) SubmitAdvisorMarks(ctx context.Context, principal *models.JWTClaims, contractID string, marks int) (*models.Contract, error) {
	if _, err := s.advisorContract(ctx, principal, contractID); err != nil {
		return nil, err
	}
	if marks < s.policy.MarksMin || marks > s.policy.AdvisorMarksMax {
		return nil, appErrors.ErrInvalidMarks
	}
	contract, err := s.repo.UpdateMarks(ctx, contractID, models.MarksPatch{Advisor: &marks})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidState
		}
		return nil, s.storeFailure(err, "failed to record advisor marks")
	}
	return contract, nil
}

// SubmitPanelMarks records mid and/or final evaluation marks from a
// member of the panel assigned to the contract.
func (s *ContractService) SubmitPanelMarks(ctx context.Context, principal *models.JWTClaims, contractID string, req PanelMarksRequest) (*models.Contract, error) {
	contract, err := s.repo.FindByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUnauthorized
		}
		return nil, s.storeFailure(err, "failed to load contract")
	}
	var memberIDs []string
	if contract.PanelID != nil {
		memberIDs, err = s.panels.MemberIDs(ctx, *contract.PanelID)
		if err != nil {
			return nil, s.storeFailure(err, "failed to load panel membership")
		}
	}
	if !IsPanelMember(principal, contract, memberIDs) {
		return nil, appErrors.ErrUnauthorized
	}

	patch := models.MarksPatch{Mid: req.Mid, Final: req.Final}
	if patch.IsEmpty() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no marks provided")
	}
	if req.Mid != nil && (*req.Mid < s.policy.MarksMin || *req.Mid > s.policy.MidMarksMax) {
		return nil, appErrors.ErrInvalidMarks
	}
	if req.Final != nil && (*req.Final < s.policy.MarksMin || *req.Final > s.policy.FinalMarksMax) {
		return nil, appErrors.ErrInvalidMarks
	}

	updated, err := s.repo.UpdateMarks(ctx, contractID, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidState
		}
		return nil, s.storeFailure(err, "failed to record panel marks")
	}
	return updated, nil
}

// ListForStudent returns the student's contracts in the given status,
// projected for the student role.
func (s *ContractService) ListForStudent(ctx context.Context, principal *models.JWTClaims, status models.AcceptanceStatus) ([]dto.StudentContractView, error) {
	if !models.IsValidAcceptanceStatus(status) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid request status")
	}
	contracts, err := s.repo.ListByStudent(ctx, principal.UserID, status)
	if err != nil {
		return nil, s.storeFailure(err, "failed to list contracts")
	}
	views := make([]dto.StudentContractView, 0, len(contracts))
	for i := range contracts {
		c := &contracts[i]
		views = append(views, dto.NewStudentContractView(c, s.advisorSummary(ctx, c.AdvisorID)))
	}
	return views, nil
}

// GetForStudent returns the student-facing detail view of one contract.
func (s *ContractService) GetForStudent(ctx context.Context, principal *models.JWTClaims, contractID string) (*dto.StudentContractDetail, error) {
	contract, err := s.studentContract(ctx, principal, contractID)
	if err != nil {
		return nil, err
	}
	detail := dto.NewStudentContractDetail(contract, s.advisorSummary(ctx, contract.AdvisorID))
	return &detail, nil
}

// ListForAdvisor returns the advisor's contracts in the given status,
// projected for the advisor role.
func (s *ContractService) ListForAdvisor(ctx context.Context, principal *models.JWTClaims, status models.AcceptanceStatus) ([]dto.AdvisorContractView, error) {
	if !models.IsValidAcceptanceStatus(status) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid request status")
	}
	contracts, err := s.repo.ListByAdvisor(ctx, principal.UserID, status)
	if err != nil {
		return nil, s.storeFailure(err, "failed to list contracts")
	}
	views := make([]dto.AdvisorContractView, 0, len(contracts))
	for i := range contracts {
		c := &contracts[i]
		views = append(views, dto.NewAdvisorContractView(c, s.studentSummary(ctx, c.StudentID)))
	}
	return views, nil
}

// GetForAdvisor returns the advisor-facing detail view of one contract.
func (s *ContractService) GetForAdvisor(ctx context.Context, principal *models.JWTClaims, contractID string) (*dto.AdvisorContractDetail, error) {
	contract, err := s.advisorContract(ctx, principal, contractID)
	if err != nil {
		return nil, err
	}
	detail := dto.NewAdvisorContractDetail(contract, s.studentSummary(ctx, contract.StudentID))
	return &detail, nil
}

// GetAdvisorForm returns the advisor form of the advisor's contract.
func (s *ContractService) GetAdvisorForm(ctx context.Context, principal *models.JWTClaims, contractID string) (*dto.AdvisorFormView, error) {
	contract, err := s.advisorContract(ctx, principal, contractID)
	if err != nil {
		return nil, err
	}
	view := dto.NewAdvisorFormView(contract)
	return &view, nil
}

// ActiveByRegistrationID returns the active contract, if any, naming the
// given registration id. Used by the admin console.
func (s *ContractService) ActiveByRegistrationID(ctx context.Context, regID string) (*models.Contract, error) {
	contract, err := s.repo.FindActiveByRegistrationID(ctx, regID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no active supervision request for this registration id")
		}
		return nil, s.storeFailure(err, "failed to load contract")
	}
	return contract, nil
}

func (s *ContractService) checkNoActiveContract(ctx context.Context, regID, message string) error {
	existing, err := s.repo.FindActiveByRegistrationID(ctx, regID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return s.storeFailure(err, "failed to check existing contracts")
	}
	if existing != nil {
		return appErrors.Clone(appErrors.ErrDuplicateRequest, message)
	}
	return nil
}

// advisorContract loads the contract and applies the advisor-ownership
// guard. An unknown id and a foreign contract yield the same error.
func (s *ContractService) advisorContract(ctx context.Context, principal *models.JWTClaims, contractID string) (*models.Contract, error) {
	contract, err := s.repo.FindByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUnauthorized
		}
		return nil, s.storeFailure(err, "failed to load contract")
	}
	if !IsContractAdvisor(principal, contract) {
		return nil, appErrors.ErrUnauthorized
	}
	return contract, nil
}

// studentContract loads the contract and applies the student-ownership
// guard, with the same non-leaking behaviour.
func (s *ContractService) studentContract(ctx context.Context, principal *models.JWTClaims, contractID string) (*models.Contract, error) {
	contract, err := s.repo.FindByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUnauthorized
		}
		return nil, s.storeFailure(err, "failed to load contract")
	}
	if !IsContractStudent(principal, contract) {
		return nil, appErrors.ErrUnauthorized
	}
	return contract, nil
}

func (s *ContractService) transition(ctx context.Context, contractID string, expected, next models.AcceptanceStatus) (*models.Contract, error) {
	contract, err := s.repo.UpdateAcceptanceIf(ctx, contractID, expected, next)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The precondition genuinely no longer holds; not retried.
			return nil, appErrors.ErrInvalidState
		}
		return nil, s.storeFailure(err, "failed to update contract status")
	}
	return contract, nil
}

func (s *ContractService) advisorSummary(ctx context.Context, advisorID string) *dto.PartySummary {
	user, err := s.parties.FindByID(ctx, advisorID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("failed to load advisor summary", zap.Error(err))
		}
		return nil
	}
	return &dto.PartySummary{ID: user.ID, FullName: user.FullName, Department: user.Department}
}

func (s *ContractService) studentSummary(ctx context.Context, studentID string) *dto.PartySummary {
	user, err := s.parties.FindByID(ctx, studentID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("failed to load student summary", zap.Error(err))
		}
		return nil
	}
	return &dto.PartySummary{ID: user.ID, FullName: user.FullName, RegistrationID: user.RegistrationID}
}

func (s *ContractService) storeFailure(err error, message string) error {
	s.logger.Error("contract store failure", zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, message)
}
