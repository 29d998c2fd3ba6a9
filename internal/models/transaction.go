package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===========================================================================
// Transaction (Sổ thu chi)
// Ledger append-only các khoản thanh toán/hoàn tiền/hoa hồng của Client
// Các trường rollup trên Client được suy ra từ ledger này - mỗi lần ghi
// transaction phải cập nhật rollup trong CÙNG một database transaction
// ===========================================================================

// TransactionType loại giao dịch
type TransactionType string

const (
	TransactionPayment    TransactionType = "payment"
	TransactionRefund     TransactionType = "refund"
	TransactionCommission TransactionType = "commission"
)

// IsValid kiểm tra type có hợp lệ không
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionPayment, TransactionRefund, TransactionCommission:
		return true
	}
	return false
}

// TransactionStatus trạng thái giao dịch
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionCancelled TransactionStatus = "cancelled"
)

// IsValid kiểm tra status có hợp lệ không
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionPending, TransactionCompleted, TransactionCancelled:
		return true
	}
	return false
}

// Transaction đại diện cho một giao dịch tài chính của khách hàng
type Transaction struct {
	BaseModel

	// ClientID khách hàng liên quan (bắt buộc)
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	// Title tiêu đề giao dịch (VD: "Đợt 1 hợp đồng thi công")
	Title string `gorm:"size:255;not null" json:"title"`

	// Description mô tả chi tiết
	Description string `gorm:"type:text" json:"description"`

	// Amount số tiền (phải > 0)
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`

	// Type loại giao dịch: payment, refund, commission
	Type TransactionType `gorm:"size:50;not null;index" json:"type"`

	// Status trạng thái: pending, completed, cancelled
	// Chỉ giao dịch completed mới được tính vào rollup
	Status TransactionStatus `gorm:"size:50;not null;default:'completed'" json:"status"`

	// PaymentDate ngày thanh toán
	PaymentDate time.Time `gorm:"not null" json:"payment_date"`

	// Notes ghi chú
	Notes string `gorm:"type:text" json:"notes"`

	// Relations
	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// TableName trả về tên bảng
func (Transaction) TableName() string {
	return "transactions"
}

// CountsTowardRollup kiểm tra giao dịch có được tính vào rollup của Client không
func (t *Transaction) CountsTowardRollup() bool {
	return t.Status == TransactionCompleted
}
