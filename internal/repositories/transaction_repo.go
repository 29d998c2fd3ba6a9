package repositories

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Transaction Repository GORM Implementation
// Điểm duy nhất trong hệ thống có yêu cầu consistency thật sự:
// ghi ledger và cập nhật rollup của Client phải là một đơn vị atomic
// ===========================================================================

// transactionRepo triển khai TransactionRepository với GORM
type transactionRepo struct {
	db *gorm.DB
}

// NewTransactionRepository tạo transaction repository mới
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

// FindByID tìm transaction theo ID
func (r *transactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// FindByClient lấy các transactions của một client, mới nhất trước
func (r *transactionRepo) FindByClient(ctx context.Context, clientID uuid.UUID, opts FindOptions) ([]models.Transaction, int64, error) {
	var txns []models.Transaction
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("client_id = ?", clientID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	opts.SetDefaults()
	if opts.OrderBy == "created_at" {
		opts.OrderBy = "payment_date"
	}
	err := query.
		Order(opts.GetOrderClause()).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&txns).Error
	if err != nil {
		return nil, 0, err
	}

	return txns, total, nil
}

// RecordWithRollup ghi transaction và cập nhật rollup của Client
// Toàn bộ nằm trong MỘT database transaction:
// 1. Lock row client (SELECT ... FOR UPDATE) - serialize concurrent writes
// 2. Insert transaction
// 3. Increment rollup field theo type bằng SQL expression
// Hai write cùng commit hoặc cùng rollback - không có partial state
func (r *transactionRepo) RecordWithRollup(ctx context.Context, txn *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		client, err := lockClientForUpdate(tx, txn.ClientID)
		if err != nil {
			return err
		}

		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		// Giao dịch pending/cancelled không được tính vào rollup
		if !txn.CountsTowardRollup() {
			return nil
		}

		changes := map[string]interface{}{}
		switch txn.Type {
		case models.TransactionPayment:
			changes["total_spending"] = gorm.Expr("total_spending + ?", txn.Amount)
			changes["order_count"] = gorm.Expr("order_count + 1")
		case models.TransactionRefund:
			changes["refund_amount"] = gorm.Expr("refund_amount + ?", txn.Amount)
		case models.TransactionCommission:
			changes["commission"] = gorm.Expr("commission + ?", txn.Amount)
		}

		if err := tx.Model(&models.Client{}).
			Where("id = ?", client.ID).
			Updates(changes).Error; err != nil {
			return err
		}

		// Doanh thu từ khách được giới thiệu cộng dồn cho người giới thiệu
		if txn.Type == models.TransactionPayment && client.ReferredByID != nil {
			if err := tx.Model(&models.Client{}).
				Where("id = ?", *client.ReferredByID).
				Update("referral_revenue", gorm.Expr("referral_revenue + ?", txn.Amount)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
