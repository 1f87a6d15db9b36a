package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/AliAzlanAziz/fyp-portal-api/internal/models"
	appErrors "github.com/AliAzlanAziz/fyp-portal-api/pkg/errors"
)

type panelRepository interface {
	FindByID(ctx context.Context, id string) (*models.Panel, error)
	List(ctx context.Context) ([]models.Panel, error)
	Create(ctx context.Context, panel *models.Panel, memberIDs []string) error
	Close(ctx context.Context, id string) error
	Members(ctx context.Context, panelID string) ([]models.StaffSummary, error)
	PanelIDForMember(ctx context.Context, userID string) (string, error)
}

type panelStaffRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	ListStaffNotInPanel(ctx context.Context) ([]models.StaffSummary, error)
	SetInPanel(ctx context.Context, userIDs []string, inPanel bool) error
}

type panelContractWriter interface {
	FindByID(ctx context.Context, id string) (*models.Contract, error)
	AssignPanel(ctx context.Context, id, panelID string) error
	ListByPanel(ctx context.Context, panelID string) ([]models.Contract, error)
}

// CreatePanelRequest is the admin payload for seating a new panel.
type CreatePanelRequest struct {
	Name        string   `json:"name" validate:"required"`
	MemberIDs   []string `json:"member_ids" validate:"required,min=1,dive,required"`
	ContractIDs []string `json:"contract_ids" validate:"omitempty,dive,required"`
}

// PanelService manages evaluation panels: seating members, assigning
// contracts, and closing panels when evaluation ends.
type PanelService struct {
	panels    panelRepository
	staff     panelStaffRepository
	contracts panelContractWriter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPanelService constructs PanelService.
func NewPanelService(panels panelRepository, staff panelStaffRepository, contracts panelContractWriter, validate *validator.Validate, logger *zap.Logger) *PanelService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PanelService{panels: panels, staff: staff, contracts: contracts, validator: validate, logger: logger}
}

// Create seats a panel from available staff and optionally assigns it to
// contracts.
func (s *PanelService) Create(ctx context.Context, req CreatePanelRequest) (*models.PanelDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid panel payload")
	}

	for _, memberID := range req.MemberIDs {
		member, err := s.staff.FindByID(ctx, memberID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "panel member not found")
			}
			return nil, s.storeFailure(err, "failed to load panel member")
		}
		if member.Role != models.RolePanel {
			return nil, appErrors.Clone(appErrors.ErrValidation, "panel members must hold the panel role")
		}
		if member.InPanel {
			return nil, appErrors.Clone(appErrors.ErrConflict, "staff member already seated on a panel")
		}
	}

	for _, contractID := range req.ContractIDs {
		contract, err := s.contracts.FindByID(ctx, contractID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "contract not found")
			}
			return nil, s.storeFailure(err, "failed to load contract")
		}
		if contract.Acceptance != models.AcceptanceAccepted || contract.IsClosed {
			return nil, appErrors.Clone(appErrors.ErrInvalidState, "only open accepted contracts can be assigned to a panel")
		}
	}

	panel := &models.Panel{Name: req.Name}
	if err := s.panels.Create(ctx, panel, req.MemberIDs); err != nil {
		return nil, s.storeFailure(err, "failed to create panel")
	}
	if err := s.staff.SetInPanel(ctx, req.MemberIDs, true); err != nil {
		return nil, s.storeFailure(err, "failed to mark staff as seated")
	}
	for _, contractID := range req.ContractIDs {
		if err := s.contracts.AssignPanel(ctx, contractID, panel.ID); err != nil {
			return nil, s.storeFailure(err, "failed to assign panel to contract")
		}
	}

	s.logger.Info("panel created", zap.String("panel_id", panel.ID), zap.Int("members", len(req.MemberIDs)))
	return s.Detail(ctx, panel.ID)
}

// Detail returns a panel with its members.
func (s *PanelService) Detail(ctx context.Context, id string) (*models.PanelDetail, error) {
	panel, err := s.panels.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "panel not found")
		}
		return nil, s.storeFailure(err, "failed to load panel")
	}
	members, err := s.panels.Members(ctx, id)
	if err != nil {
		return nil, s.storeFailure(err, "failed to load panel members")
	}
	return &models.PanelDetail{Panel: *panel, Members: members}, nil
}

// List returns all panels.
func (s *PanelService) List(ctx context.Context) ([]models.Panel, error) {
	panels, err := s.panels.List(ctx)
	if err != nil {
		return nil, s.storeFailure(err, "failed to list panels")
	}
	return panels, nil
}

// Close ends a panel and frees its members for future panels.
func (s *PanelService) Close(ctx context.Context, id string) error {
	panel, err := s.panels.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "panel not found")
		}
		return s.storeFailure(err, "failed to load panel")
	}
	if panel.IsClosed {
		return appErrors.Clone(appErrors.ErrInvalidState, "panel already closed")
	}
	if err := s.panels.Close(ctx, id); err != nil {
		return s.storeFailure(err, "failed to close panel")
	}
	members, err := s.panels.Members(ctx, id)
	if err != nil {
		return s.storeFailure(err, "failed to load panel members")
	}
	memberIDs := make([]string, 0, len(members))
	for _, member := range members {
		memberIDs = append(memberIDs, member.ID)
	}
	if err := s.staff.SetInPanel(ctx, memberIDs, false); err != nil {
		return s.storeFailure(err, "failed to release panel members")
	}
	return nil
}

// Contracts returns the contracts assigned to a panel.
func (s *PanelService) Contracts(ctx context.Context, panelID string) ([]models.Contract, error) {
	if _, err := s.panels.FindByID(ctx, panelID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "panel not found")
		}
		return nil, s.storeFailure(err, "failed to load panel")
	}
	contracts, err := s.contracts.ListByPanel(ctx, panelID)
	if err != nil {
		return nil, s.storeFailure(err, "failed to list panel contracts")
	}
	return contracts, nil
}

// AssignedContracts returns the contracts assigned to the caller's panel.
func (s *PanelService) AssignedContracts(ctx context.Context, principal *models.JWTClaims) ([]models.Contract, error) {
	panelID, err := s.panels.PanelIDForMember(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "you are not seated on an open panel")
		}
		return nil, s.storeFailure(err, "failed to resolve panel membership")
	}
	contracts, err := s.contracts.ListByPanel(ctx, panelID)
	if err != nil {
		return nil, s.storeFailure(err, "failed to list panel contracts")
	}
	return contracts, nil
}

// AvailableStaff returns panel-role accounts not yet seated.
func (s *PanelService) AvailableStaff(ctx context.Context) ([]models.StaffSummary, error) {
	staff, err := s.staff.ListStaffNotInPanel(ctx)
	if err != nil {
		return nil, s.storeFailure(err, "failed to list available staff")
	}
	return staff, nil
}

func (s *PanelService) storeFailure(err error, message string) error {
	s.logger.Error("panel store failure", zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, message)
}
