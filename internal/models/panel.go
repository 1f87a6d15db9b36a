package models

import "time"

// Panel is an evaluation committee assigned to one or more contracts.
type Panel struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	IsClosed  bool      `db:"is_closed" json:"is_closed"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PanelDetail combines a panel with its members.
type PanelDetail struct {
	Panel
	Members []StaffSummary `json:"members"`
}
