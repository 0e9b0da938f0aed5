package models

import (
	"database/sql"
	"time"
)

type Wireframe struct {
	ID          int64
	UID         string
	ImageURL    string
	Model       string
	Description string
	Code        sql.NullString
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasCode reports whether a generation has completed for this record.
// A record with no code is still pending its first generation.
func (w *Wireframe) HasCode() bool {
	return w.Code.Valid && w.Code.String != ""
}
