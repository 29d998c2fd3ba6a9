package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "noithat-backend/internal/errors"
	"noithat-backend/internal/models"
	"noithat-backend/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Transaction Service Implementation
// ===========================================================================

// transactionServiceImpl implements TransactionService
type transactionServiceImpl struct {
	transactionRepo repositories.TransactionRepository
	clientRepo      repositories.ClientRepository
	logger          *zap.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactionRepo repositories.TransactionRepository,
	clientRepo repositories.ClientRepository,
	logger *zap.Logger,
) TransactionService {
	return &transactionServiceImpl{
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
		logger:          logger,
	}
}

// Record ghi giao dịch và cập nhật rollup của Client
func (s *transactionServiceImpl) Record(ctx context.Context, input RecordTransactionInput) (*models.Transaction, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "title is required")
	}
	if !input.Amount.IsPositive() {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !input.Type.IsValid() {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "invalid transaction type")
	}

	status := input.Status
	if status == "" {
		status = models.TransactionCompleted
	}
	if !status.IsValid() {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "invalid status")
	}

	paymentDate := time.Now()
	if input.PaymentDate != nil {
		paymentDate = *input.PaymentDate
	}

	// Client phải tồn tại trước khi ghi sổ
	if _, err := s.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrNotFound, "client not found")
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	txn := &models.Transaction{
		ClientID:    input.ClientID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		Status:      status,
		PaymentDate: paymentDate,
		Notes:       input.Notes,
	}

	// Ghi ledger + rollup là một đơn vị atomic ở tầng repository
	if err := s.transactionRepo.RecordWithRollup(ctx, txn); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrNotFound, "client not found")
		}
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	s.logger.Info("transaction recorded",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("client_id", txn.ClientID.String()),
		zap.String("type", string(txn.Type)),
		zap.String("amount", txn.Amount.String()),
	)

	return txn, nil
}

// Get tìm transaction theo ID
func (s *transactionServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	txn, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return txn, nil
}

// ListByClient lấy lịch sử giao dịch của một client
func (s *transactionServiceImpl) ListByClient(ctx context.Context, clientID uuid.UUID, page, limit int) ([]models.Transaction, int64, error) {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperrors.New(apperrors.ErrNotFound, "client not found")
		}
		return nil, 0, fmt.Errorf("find client: %w", err)
	}

	txns, total, err := s.transactionRepo.FindByClient(ctx, clientID, pageOptions(page, limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	return txns, total, nil
}
