package services

import (
	"context"
	"time"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
)

// ===========================================================================
// Interaction Service Interface
// Nhật ký hoạt động gắn với Client
// ===========================================================================

// CreateInteractionInput input để ghi một tương tác
type CreateInteractionInput struct {
	ClientID       uuid.UUID
	Type           models.InteractionType
	Title          string
	Description    string
	Date           time.Time
	Duration       int
	Location       string
	AssignedTo     string
	Outcome        string
	NextAction     string
	NextActionDate *time.Time
	Attachments    []string
	CreatedBy      *uuid.UUID
}

// UpdateInteractionInput input để sửa một tương tác; trường nil = giữ nguyên
type UpdateInteractionInput struct {
	Type           *models.InteractionType
	Title          *string
	Description    *string
	Date           *time.Time
	Duration       *int
	Location       *string
	AssignedTo     *string
	Outcome        *string
	NextAction     *string
	NextActionDate *time.Time
	Attachments    *[]string
}

// InteractionService interface cho interaction operations
type InteractionService interface {
	// Create ghi tương tác mới; client phải tồn tại
	Create(ctx context.Context, input CreateInteractionInput) (*models.Interaction, error)

	// Get tìm interaction theo ID
	Get(ctx context.Context, id uuid.UUID) (*models.Interaction, error)

	// ListByClient lấy nhật ký của một client, mới nhất trước
	ListByClient(ctx context.Context, clientID uuid.UUID, page, limit int) ([]models.Interaction, int64, error)

	// Update sửa tương tác đã ghi
	Update(ctx context.Context, id uuid.UUID, input UpdateInteractionInput) (*models.Interaction, error)
}
