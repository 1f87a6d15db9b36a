package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AliAzlanAziz/fyp-portal-api/internal/models"
)

// UserRepository handles persistence of accounts across all roles.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs the repository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the account registered under the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT id, email, password_hash, full_name, role, department, registration_id, in_panel, created_at, updated_at
        FROM users WHERE email = $1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the account by id.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	const query = `SELECT id, email, password_hash, full_name, role, department, registration_id, in_panel, created_at, updated_at
        FROM users WHERE id = $1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether an account already uses the email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT 1 FROM users WHERE email = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check email: %w", err)
	}
	return true, nil
}

// Create persists a new account.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	const query = `INSERT INTO users (id, email, password_hash, full_name, role, department, registration_id, in_panel, created_at, updated_at)
        VALUES (:id, :email, :password_hash, :full_name, :role, :department, :registration_id, :in_panel, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// ListAdvisors returns the advisor directory.
func (r *UserRepository) ListAdvisors(ctx context.Context) ([]models.AdvisorSummary, error) {
	const query = `SELECT id, full_name, department FROM users WHERE role = $1 ORDER BY full_name`
	var advisors []models.AdvisorSummary
	if err := r.db.SelectContext(ctx, &advisors, query, models.RoleAdvisor); err != nil {
		return nil, fmt.Errorf("list advisors: %w", err)
	}
	return advisors, nil
}

// ListStudents returns the student directory.
func (r *UserRepository) ListStudents(ctx context.Context) ([]models.StudentSummary, error) {
	const query = `SELECT id, full_name, registration_id FROM users WHERE role = $1 ORDER BY full_name`
	var students []models.StudentSummary
	if err := r.db.SelectContext(ctx, &students, query, models.RoleStudent); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// ListStaffNotInPanel returns panel-role accounts not yet seated.
func (r *UserRepository) ListStaffNotInPanel(ctx context.Context) ([]models.StaffSummary, error) {
	const query = `SELECT id, full_name, department FROM users WHERE role = $1 AND in_panel = FALSE ORDER BY full_name`
	var staff []models.StaffSummary
	if err := r.db.SelectContext(ctx, &staff, query, models.RolePanel); err != nil {
		return nil, fmt.Errorf("list available panel staff: %w", err)
	}
	return staff, nil
}

// SetInPanel flips the seated flag for the given staff accounts.
func (r *UserRepository) SetInPanel(ctx context.Context, userIDs []string, inPanel bool) error {
	if len(userIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`UPDATE users SET in_panel = ?, updated_at = ? WHERE id IN (?)`, inPanel, time.Now().UTC(), userIDs)
	if err != nil {
		return fmt.Errorf("build in_panel update: %w", err)
	}
	query = r.db.Rebind(query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update in_panel flag: %w", err)
	}
	return nil
}
