package services

import (
	"context"
	"time"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===========================================================================
// Deal Service Interface
// Thương vụ đàm phán gắn với Client
// ===========================================================================

// CreateDealInput input để tạo deal mới
type CreateDealInput struct {
	ClientID          uuid.UUID
	ProjectID         *uuid.UUID
	Title             string
	Value             decimal.Decimal
	Stage             models.DealStage
	Probability       *int
	ExpectedCloseDate *time.Time
	Description       string
	Terms             string
	Notes             string
	AssignedTo        *uuid.UUID
	CreatedBy         *uuid.UUID
}

// UpdateDealInput input để cập nhật deal; trường nil = giữ nguyên
// Stage không đổi qua Update, dùng TransitionStage
type UpdateDealInput struct {
	Title             *string
	Value             *decimal.Decimal
	Probability       *int
	ExpectedCloseDate *time.Time
	ActualCloseDate   *time.Time
	Description       *string
	Terms             *string
	Notes             *string
	AssignedTo        *uuid.UUID
}

// TransitionDealInput input để chuyển stage
type TransitionDealInput struct {
	Stage           models.DealStage
	LostReason      string
	ActualCloseDate *time.Time
}

// DealService interface cho deal operations
type DealService interface {
	// Create tạo deal mới; value phải > 0, client phải tồn tại
	Create(ctx context.Context, input CreateDealInput) (*models.Deal, error)

	// Get tìm deal theo ID
	Get(ctx context.Context, id uuid.UUID) (*models.Deal, error)

	// ListByClient lấy các deals của một client
	ListByClient(ctx context.Context, clientID uuid.UUID, page, limit int) ([]models.Deal, int64, error)

	// ListByStage lấy các deals đang ở một stage
	ListByStage(ctx context.Context, stage models.DealStage, page, limit int) ([]models.Deal, int64, error)

	// Update cập nhật deal (không đổi stage)
	Update(ctx context.Context, id uuid.UUID, input UpdateDealInput) (*models.Deal, error)

	// TransitionStage chuyển deal sang stage khác
	// Chuyển tự do giữa các stage; riêng "lost" bắt buộc có lost_reason
	TransitionStage(ctx context.Context, id uuid.UUID, input TransitionDealInput) (*models.Deal, error)
}
