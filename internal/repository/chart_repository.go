package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jengzang/chartwheel-backend-go/internal/models"
)

// ErrChartNotFound reports a lookup for a chart id that is not stored
var ErrChartNotFound = errors.New("chart not found")

// ChartRepository handles database operations for stored chart snapshots.
// Snapshots are immutable: there is no update, only save, read and delete.
type ChartRepository struct {
	db *sql.DB
}

// NewChartRepository creates a new chart repository
func NewChartRepository(db *sql.DB) *ChartRepository {
	return &ChartRepository{db: db}
}

// Save stores a snapshot as a JSON payload. When the snapshot carries no id
// one is generated and written back before storing.
func (r *ChartRepository) Save(snapshot *models.ChartSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = r.db.Exec(
		"INSERT INTO charts (id, name, payload) VALUES (?, ?, ?)",
		snapshot.ID, snapshot.Name, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to insert chart %s: %w", snapshot.ID, err)
	}

	return nil
}

// Get loads one snapshot by id
func (r *ChartRepository) Get(id string) (*models.ChartSnapshot, error) {
	var payload string
	err := r.db.QueryRow("SELECT payload FROM charts WHERE id = ?", id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrChartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query chart %s: %w", id, err)
	}

	var snapshot models.ChartSnapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chart %s: %w", id, err)
	}

	return &snapshot, nil
}

// List returns stored charts, newest first
func (r *ChartRepository) List(limit, offset int) ([]models.ChartListEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		"SELECT id, name, created_at FROM charts ORDER BY created_at DESC LIMIT ? OFFSET ?",
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list charts: %w", err)
	}
	defer rows.Close()

	var entries []models.ChartListEntry
	for rows.Next() {
		var e models.ChartListEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chart row: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Delete removes one stored chart
func (r *ChartRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM charts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete chart %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrChartNotFound
	}

	return nil
}
