package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"wireframe-to-code-backend/internal/models"
)

var (
	// ErrNotFound is returned when no wireframe record matches the given uid.
	ErrNotFound = errors.New("wireframe not found")
	// ErrDuplicateUID is returned when an insert collides with an existing uid.
	// The uid column carries a hard unique constraint, so a duplicate is a
	// real failure rather than a best-effort warning.
	ErrDuplicateUID = errors.New("wireframe uid already exists")
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// CreateWireframe inserts a new record and returns the internal row id. The
// row id is never used as a lookup key; all reads go through the uid.
func (d *DatabaseClient) CreateWireframe(w *models.Wireframe) (int64, error) {
	var id int64
	err := d.db.QueryRow(`
		INSERT INTO wireframes (uid, image_url, model, description, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, w.UID, w.ImageURL, w.Model, w.Description, w.CreatedBy).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateUID, w.UID)
		}
		return 0, fmt.Errorf("failed to create wireframe: %w", err)
	}

	return id, nil
}

func (d *DatabaseClient) GetWireframeByUID(uid string) (*models.Wireframe, error) {
	var w models.Wireframe
	err := d.db.QueryRow(`
		SELECT id, uid, image_url, model, description, code, created_by, created_at, updated_at
		FROM wireframes
		WHERE uid = $1
	`, uid).Scan(
		&w.ID, &w.UID, &w.ImageURL, &w.Model,
		&w.Description, &w.Code, &w.CreatedBy, &w.CreatedAt, &w.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, uid)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wireframe: %w", err)
	}

	return &w, nil
}

func (d *DatabaseClient) ListWireframesByCreator(email string) ([]models.Wireframe, error) {
	rows, err := d.db.Query(`
		SELECT id, uid, image_url, model, description, code, created_by, created_at, updated_at
		FROM wireframes
		WHERE created_by = $1
		ORDER BY created_at DESC
	`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list wireframes: %w", err)
	}
	defer rows.Close()

	var wireframes []models.Wireframe
	for rows.Next() {
		var w models.Wireframe
		err := rows.Scan(
			&w.ID, &w.UID, &w.ImageURL, &w.Model,
			&w.Description, &w.Code, &w.CreatedBy, &w.CreatedAt, &w.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wireframe: %w", err)
		}
		wireframes = append(wireframes, w)
	}

	return wireframes, rows.Err()
}

// UpdateWireframeCode overwrites the stored code unconditionally. There is no
// optimistic-concurrency check: concurrent regenerations for the same uid are
// last-writer-wins, which matches the single-user-per-record usage pattern.
func (d *DatabaseClient) UpdateWireframeCode(uid, code string) error {
	result, err := d.db.Exec(`
		UPDATE wireframes
		SET code = $1, updated_at = NOW()
		WHERE uid = $2
	`, code, uid)
	if err != nil {
		return fmt.Errorf("failed to update code: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, uid)
	}

	return nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
