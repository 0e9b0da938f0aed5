package models

import "time"

type WireframeResponse struct {
	// ID is the internal row identifier. Informational only: every lookup
	// goes through the uid.
	ID          int64     `json:"id"`
	UID         string    `json:"uid"`
	ImageURL    string    `json:"image_url"`
	Model       string    `json:"model"`
	Description string    `json:"description"`
	Code        string    `json:"code,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type WireframeListResponse struct {
	Wireframes []WireframeSummary `json:"wireframes"`
}

type WireframeSummary struct {
	UID         string    `json:"uid"`
	ImageURL    string    `json:"image_url"`
	Model       string    `json:"model"`
	Description string    `json:"description"`
	HasCode     bool      `json:"has_code"`
	CreatedAt   time.Time `json:"created_at"`
}

type GenerateCodeResponse struct {
	UID  string `json:"uid"`
	Code string `json:"code"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// NewWireframeResponse flattens the database record into the API shape.
// A NULL code column is omitted from the JSON entirely so clients can
// distinguish "not generated yet" from an empty string.
func NewWireframeResponse(w *Wireframe) WireframeResponse {
	resp := WireframeResponse{
		ID:          w.ID,
		UID:         w.UID,
		ImageURL:    w.ImageURL,
		Model:       w.Model,
		Description: w.Description,
		CreatedBy:   w.CreatedBy,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
	if w.Code.Valid {
		resp.Code = w.Code.String
	}
	return resp
}

func NewWireframeSummary(w *Wireframe) WireframeSummary {
	return WireframeSummary{
		UID:         w.UID,
		ImageURL:    w.ImageURL,
		Model:       w.Model,
		Description: w.Description,
		HasCode:     w.HasCode(),
		CreatedAt:   w.CreatedAt,
	}
}
