package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"wireframe-to-code-backend/internal/models"
	"wireframe-to-code-backend/internal/supabase"
)

// ImageStore uploads raw image bytes and returns the storage path and a
// publicly fetchable URL.
type ImageStore interface {
	UploadWireframeImage(data []byte, contentType string) (string, string, error)
}

// RecordStore is the typed CRUD surface over wireframe records, keyed by uid.
type RecordStore interface {
	CreateWireframe(w *models.Wireframe) (int64, error)
	GetWireframeByUID(uid string) (*models.Wireframe, error)
	ListWireframesByCreator(email string) ([]models.Wireframe, error)
	UpdateWireframeCode(uid, code string) error
}

// CodeGenerator performs one blocking completion call against the AI service.
type CodeGenerator interface {
	GenerateCode(ctx context.Context, description, imageURL, modelID string) (string, error)
}

// EventPublisher announces generation lifecycle events. Publishing is
// advisory: a publish failure never fails the workflow.
type EventPublisher interface {
	PublishWireframeEvent(uid string, event string, payload map[string]interface{}) error
}

// GenerationService orchestrates the wireframe-to-code workflow: store the
// image, create the record, and later run the completion call and persist the
// returned code. It holds no state of its own; everything durable lives in
// the record store and object store.
type GenerationService struct {
	imageStore ImageStore
	records    RecordStore
	generator  CodeGenerator
	events     EventPublisher
}

func NewGenerationService(
	imageStore ImageStore,
	records RecordStore,
	generator CodeGenerator,
	events EventPublisher,
) *GenerationService {
	return &GenerationService{
		imageStore: imageStore,
		records:    records,
		generator:  generator,
		events:     events,
	}
}

// SubmitWireframe stores the image, then creates the record with a fresh
// random uid and no code. Image storage strictly precedes record creation: a
// storage failure aborts before any record exists. If record creation fails
// after a successful upload the stored image is orphaned; there is no
// compensating delete.
func (s *GenerationService) SubmitWireframe(ctx context.Context, imageBytes []byte, contentType, description, modelID, email string) (*models.Wireframe, error) {
	if len(imageBytes) == 0 {
		return nil, fmt.Errorf("image data is required")
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if modelID == "" {
		return nil, fmt.Errorf("model is required")
	}
	if email == "" {
		return nil, fmt.Errorf("requester email is required")
	}

	_, imageURL, err := s.imageStore.UploadWireframeImage(imageBytes, contentType)
	if err != nil {
		return nil, err
	}

	w := &models.Wireframe{
		UID:         uuid.New().String(),
		ImageURL:    imageURL,
		Model:       modelID,
		Description: description,
		CreatedBy:   email,
	}

	id, err := s.records.CreateWireframe(w)
	if err != nil {
		return nil, err
	}
	w.ID = id

	return w, nil
}

// FetchWireframe is a pure read; an unknown uid surfaces the store's
// not-found error unchanged.
func (s *GenerationService) FetchWireframe(ctx context.Context, uid string) (*models.Wireframe, error) {
	return s.records.GetWireframeByUID(uid)
}

func (s *GenerationService) ListWireframes(ctx context.Context, email string) ([]models.Wireframe, error) {
	return s.records.ListWireframesByCreator(email)
}

// GenerateCode looks up the record, runs the completion call with the
// record's own description/model/image, and persists the returned code before
// handing it back. On any adapter failure the record is left untouched and
// the error kind propagates unchanged. Regeneration goes through the exact
// same path and overwrites the previous code; no history is kept.
func (s *GenerationService) GenerateCode(ctx context.Context, uid string) (string, error) {
	w, err := s.records.GetWireframeByUID(uid)
	if err != nil {
		return "", err
	}

	s.events.PublishWireframeEvent(uid, "generation_started",
		supabase.GenerationStartedPayload(uid, w.Model))

	code, err := s.generator.GenerateCode(ctx, w.Description, w.ImageURL, w.Model)
	if err != nil {
		s.events.PublishWireframeEvent(uid, "generation_failed",
			supabase.GenerationFailedPayload(uid, err.Error()))
		return "", err
	}

	if err := s.records.UpdateWireframeCode(uid, code); err != nil {
		s.events.PublishWireframeEvent(uid, "generation_failed",
			supabase.GenerationFailedPayload(uid, err.Error()))
		return "", err
	}

	s.events.PublishWireframeEvent(uid, "generation_completed",
		supabase.GenerationCompletedPayload(uid, len(code)))

	return code, nil
}
