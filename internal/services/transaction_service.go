package services

import (
	"context"
	"time"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===========================================================================
// Transaction Service Interface
// Sổ thu chi của khách hàng với rollup tự động lên Client
// ===========================================================================

// RecordTransactionInput input để ghi một giao dịch
type RecordTransactionInput struct {
	ClientID    uuid.UUID
	Title       string
	Description string
	Amount      decimal.Decimal
	Type        models.TransactionType
	Status      models.TransactionStatus
	PaymentDate *time.Time
	Notes       string
}

// TransactionService interface cho transaction operations
type TransactionService interface {
	// Record ghi giao dịch và cập nhật rollup của Client trong một đơn vị atomic
	// Status mặc định "completed", payment_date mặc định thời điểm ghi
	Record(ctx context.Context, input RecordTransactionInput) (*models.Transaction, error)

	// Get tìm transaction theo ID
	Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error)

	// ListByClient lấy lịch sử giao dịch của một client, mới nhất trước
	ListByClient(ctx context.Context, clientID uuid.UUID, page, limit int) ([]models.Transaction, int64, error)
}
