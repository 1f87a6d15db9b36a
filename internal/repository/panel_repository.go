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

// PanelRepository handles persistence of evaluation panels and their
// membership.
type PanelRepository struct {
	db *sqlx.DB
}

// NewPanelRepository constructs the repository.
func NewPanelRepository(db *sqlx.DB) *PanelRepository {
	return &PanelRepository{db: db}
}

// FindByID returns a panel by id.
func (r *PanelRepository) FindByID(ctx context.Context, id string) (*models.Panel, error) {
	const query = `SELECT id, name, is_closed, created_at FROM panels WHERE id = $1`
	var panel models.Panel
	if err := r.db.GetContext(ctx, &panel, query, id); err != nil {
		return nil, err
	}
	return &panel, nil
}

// List returns all panels in creation order.
func (r *PanelRepository) List(ctx context.Context) ([]models.Panel, error) {
	const query = `SELECT id, name, is_closed, created_at FROM panels ORDER BY created_at`
	var panels []models.Panel
	if err := r.db.SelectContext(ctx, &panels, query); err != nil {
		return nil, fmt.Errorf("list panels: %w", err)
	}
	return panels, nil
}

// Create persists a panel and its member links.
func (r *PanelRepository) Create(ctx context.Context, panel *models.Panel, memberIDs []string) error {
	if panel.ID == "" {
		panel.ID = uuid.NewString()
	}
	if panel.CreatedAt.IsZero() {
		panel.CreatedAt = time.Now().UTC()
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin panel tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insertPanel = `INSERT INTO panels (id, name, is_closed, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, insertPanel, panel.ID, panel.Name, panel.IsClosed, panel.CreatedAt); err != nil {
		return fmt.Errorf("create panel: %w", err)
	}
	const insertMember = `INSERT INTO panel_members (panel_id, user_id) VALUES ($1, $2)`
	for _, memberID := range memberIDs {
		if _, err := tx.ExecContext(ctx, insertMember, panel.ID, memberID); err != nil {
			return fmt.Errorf("add panel member: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit panel tx: %w", err)
	}
	return nil
}

// Close marks the panel as closed.
func (r *PanelRepository) Close(ctx context.Context, id string) error {
	const query = `UPDATE panels SET is_closed = TRUE WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("close panel: %w", err)
	}
	return nil
}

// Members returns the staff seated on the panel.
func (r *PanelRepository) Members(ctx context.Context, panelID string) ([]models.StaffSummary, error) {
	const query = `SELECT u.id, u.full_name, u.department FROM panel_members pm
        JOIN users u ON u.id = pm.user_id WHERE pm.panel_id = $1 ORDER BY u.full_name`
	var members []models.StaffSummary
	if err := r.db.SelectContext(ctx, &members, query, panelID); err != nil {
		return nil, fmt.Errorf("list panel members: %w", err)
	}
	return members, nil
}

// MemberIDs returns the ids of the staff seated on the panel.
func (r *PanelRepository) MemberIDs(ctx context.Context, panelID string) ([]string, error) {
	const query = `SELECT user_id FROM panel_members WHERE panel_id = $1`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, panelID); err != nil {
		return nil, fmt.Errorf("list panel member ids: %w", err)
	}
	return ids, nil
}

// PanelIDForMember returns the open panel the user currently sits on.
func (r *PanelRepository) PanelIDForMember(ctx context.Context, userID string) (string, error) {
	const query = `SELECT pm.panel_id FROM panel_members pm
        JOIN panels p ON p.id = pm.panel_id
        WHERE pm.user_id = $1 AND p.is_closed = FALSE LIMIT 1`
	var id string
	if err := r.db.GetContext(ctx, &id, query, userID); err != nil {
		return "", err
	}
	return id, nil
}

// IsMember reports whether the user sits on the panel.
func (r *PanelRepository) IsMember(ctx context.Context, panelID, userID string) (bool, error) {
	const query = `SELECT 1 FROM panel_members WHERE panel_id = $1 AND user_id = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, panelID, userID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check panel membership: %w", err)
	}
	return true, nil
}
