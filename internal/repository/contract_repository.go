package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AliAzlanAziz/fyp-portal-api/internal/models"
)

const contractColumns = `id, student_id, advisor_id, project_name, project_description,
        student_one_name, student_one_reg_id, student_two_name, student_two_reg_id,
        acceptance, is_closed, form_designation, form_department, form_qualification,
        form_compensation, form_tools, panel_id, advisor_marks, mid_marks, final_marks,
        created_at, updated_at`

// ContractRepository handles persistence of supervision contracts. The
// conditional updates are single UPDATE .. WHERE statements so the
// current-state check and the write happen atomically in the store.
type ContractRepository struct {
	db *sqlx.DB
}

// NewContractRepository constructs the repository.
func NewContractRepository(db *sqlx.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// FindByID returns a contract by its ID.
func (r *ContractRepository) FindByID(ctx context.Context, id string) (*models.Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM contracts WHERE id = $1`, contractColumns)
	var contract models.Contract
	if err := r.db.GetContext(ctx, &contract, query, id); err != nil {
		return nil, err
	}
	return &contract, nil
}

// FindActiveByRegistrationID returns the open NOT_RESPONDED or ACCEPTED
// contract naming the registration ID as either group member, if any.
func (r *ContractRepository) FindActiveByRegistrationID(ctx context.Context, regID string) (*models.Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM contracts
        WHERE (student_one_reg_id = $1 OR student_two_reg_id = $1)
          AND acceptance IN ($2, $3) AND is_closed = FALSE
        LIMIT 1`, contractColumns)
	var contract models.Contract
	if err := r.db.GetContext(ctx, &contract, query, regID, models.AcceptanceNotResponded, models.AcceptanceAccepted); err != nil {
		return nil, err
	}
	return &contract, nil
}

// CountActiveAccepted returns how many open accepted contracts the
// advisor currently holds.
func (r *ContractRepository) CountActiveAccepted(ctx context.Context, advisorID string) (int, error) {
	const query = `SELECT COUNT(*) FROM contracts WHERE advisor_id = $1 AND acceptance = $2 AND is_closed = FALSE`
	var count int
	if err := r.db.GetContext(ctx, &count, query, advisorID, models.AcceptanceAccepted); err != nil {
		return 0, fmt.Errorf("count accepted contracts: %w", err)
	}
	return count, nil
}

// ListByStudent returns the student's contracts filtered by status.
func (r *ContractRepository) ListByStudent(ctx context.Context, studentID string, status models.AcceptanceStatus) ([]models.Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM contracts WHERE student_id = $1 AND acceptance = $2 ORDER BY created_at`, contractColumns)
	var contracts []models.Contract
	if err := r.db.SelectContext(ctx, &contracts, query, studentID, status); err != nil {
		return nil, fmt.Errorf("list student contracts: %w", err)
	}
	return contracts, nil
}

// ListByAdvisor returns the advisor's contracts filtered by status.
func (r *ContractRepository) ListByAdvisor(ctx context.Context, advisorID string, status models.AcceptanceStatus) ([]models.Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM contracts WHERE advisor_id = $1 AND acceptance = $2 ORDER BY created_at`, contractColumns)
	var contracts []models.Contract
	if err := r.db.SelectContext(ctx, &contracts, query, advisorID, status); err != nil {
		return nil, fmt.Errorf("list advisor contracts: %w", err)
	}
	return contracts, nil
}

// ListByPanel returns the contracts assigned to a panel.
func (r *ContractRepository) ListByPanel(ctx context.Context, panelID string) ([]models.Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM contracts WHERE panel_id = $1 ORDER BY created_at`, contractColumns)
	var contracts []models.Contract
	if err := r.db.SelectContext(ctx, &contracts, query, panelID); err != nil {
		return nil, fmt.Errorf("list panel contracts: %w", err)
	}
	return contracts, nil
}

// Create persists a new contract record.
func (r *ContractRepository) Create(ctx context.Context, contract *models.Contract) error {
	if contract.ID == "" {
		contract.ID = uuid.NewString()
	}
	if contract.Acceptance == "" {
		contract.Acceptance = models.AcceptanceNotResponded
	}
	now := time.Now().UTC()
	if contract.CreatedAt.IsZero() {
		contract.CreatedAt = now
	}
	contract.UpdatedAt = now
	const query = `INSERT INTO contracts (id, student_id, advisor_id, project_name, project_description,
        student_one_name, student_one_reg_id, student_two_name, student_two_reg_id,
        acceptance, is_closed, created_at, updated_at)
        VALUES (:id, :student_id, :advisor_id, :project_name, :project_description,
        :student_one_name, :student_one_reg_id, :student_two_name, :student_two_reg_id,
        :acceptance, :is_closed, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, contract); err != nil {
		return fmt.Errorf("create contract: %w", err)
	}
	return nil
}

// UpdateAcceptanceIf transitions acceptance from expected to next only if
// the contract currently holds the expected status and is not closed.
// sql.ErrNoRows signals that the precondition did not hold.
func (r *ContractRepository) UpdateAcceptanceIf(ctx context.Context, id string, expected, next models.AcceptanceStatus) (*models.Contract, error) {
	query := fmt.Sprintf(`UPDATE contracts SET acceptance = $3, updated_at = $4
        WHERE id = $1 AND acceptance = $2 AND is_closed = FALSE
        RETURNING %s`, contractColumns)
	var contract models.Contract
	if err := r.db.GetContext(ctx, &contract, query, id, expected, next, time.Now().UTC()); err != nil {
		return nil, err
	}
	return &contract, nil
}

// CloseIf sets is_closed only if the contract currently holds the
// expected acceptance status and is still open.
func (r *ContractRepository) CloseIf(ctx context.Context, id string, expected models.AcceptanceStatus) (*models.Contract, error) {
	query := fmt.Sprintf(`UPDATE contracts SET is_closed = TRUE, updated_at = $3
        WHERE id = $1 AND acceptance = $2 AND is_closed = FALSE
        RETURNING %s`, contractColumns)
	var contract models.Contract
	if err := r.db.GetContext(ctx, &contract, query, id, expected, time.Now().UTC()); err != nil {
		return nil, err
	}
	return &contract, nil
}

// UpdateAdvisorForm replaces the advisor form fields of a contract.
func (r *ContractRepository) UpdateAdvisorForm(ctx context.Context, id string, form models.AdvisorForm) (*models.Contract, error) {
	query := fmt.Sprintf(`UPDATE contracts SET form_designation = $2, form_department = $3,
        form_qualification = $4, form_compensation = $5, form_tools = $6, updated_at = $7
        WHERE id = $1
        RETURNING %s`, contractColumns)
	var contract models.Contract
	if err := r.db.GetContext(ctx, &contract, query, id, form.Designation, form.Department,
		form.Qualification, form.Compensation, form.Tools, time.Now().UTC()); err != nil {
		return nil, err
	}
	return &contract, nil
}

// UpdateMarks applies a partial marks patch; nil fields keep their
// stored value.
func (r *ContractRepository) UpdateMarks(ctx context.Context, id string, patch models.MarksPatch) (*models.Contract, error) {
	query := fmt.Sprintf(`UPDATE contracts SET
        advisor_marks = COALESCE($2, advisor_marks),
        mid_marks = COALESCE($3, mid_marks),
        final_marks = COALESCE($4, final_marks),
        updated_at = $5
        WHERE id = $1 AND is_closed = FALSE
        RETURNING %s`, contractColumns)
	var contract models.Contract
	if err := r.db.GetContext(ctx, &contract, query, id, patch.Advisor, patch.Mid, patch.Final, time.Now().UTC()); err != nil {
		return nil, err
	}
	return &contract, nil
}

// AssignPanel links a contract to an evaluation panel.
func (r *ContractRepository) AssignPanel(ctx context.Context, id, panelID string) error {
	const query = `UPDATE contracts SET panel_id = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, panelID, time.Now().UTC()); err != nil {
		return fmt.Errorf("assign panel: %w", err)
	}
	return nil
}
