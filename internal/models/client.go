package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===========================================================================
// Client (Khách hàng CRM)
// Record trung tâm của CRM: thông tin liên hệ, vị trí pipeline, hạng,
// các trường tài chính tổng hợp (rollup) và liên kết giới thiệu
// KHÔNG phải người dùng hệ thống (người dùng là User)
// ===========================================================================

// WarrantyStatus trạng thái bảo hành công trình
type WarrantyStatus string

const (
	// WarrantyNone chưa có bảo hành
	WarrantyNone WarrantyStatus = "none"

	// WarrantyActive đang trong thời gian bảo hành
	WarrantyActive WarrantyStatus = "active"

	// WarrantyExpired đã hết hạn bảo hành
	WarrantyExpired WarrantyStatus = "expired"
)

// Giá trị mặc định khi tạo client mới
const (
	DefaultClientStage  = "lead"
	DefaultClientTier   = "silver"
	DefaultClientStatus = "active"
)

// Client đại diện cho một khách hàng trong CRM
type Client struct {
	BaseModel

	// FirstName tên
	FirstName string `gorm:"size:100;not null" json:"first_name"`

	// LastName họ
	LastName string `gorm:"size:100;not null" json:"last_name"`

	// Email địa chỉ email (không enforce unique)
	Email string `gorm:"size:255;not null;index" json:"email"`

	// Phone số điện thoại
	Phone string `gorm:"size:20" json:"phone"`

	// Company tên công ty (nếu là khách doanh nghiệp)
	Company string `gorm:"size:255" json:"company"`

	// Address địa chỉ
	Address string `gorm:"size:500" json:"address"`

	// DateOfBirth ngày sinh
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`

	// Stage vị trí trong pipeline, tham chiếu PipelineStage.Value
	// Lưu dạng chuỗi tự do, KHÔNG phải foreign key
	Stage string `gorm:"size:100;not null;default:'lead';index" json:"stage"`

	// Tier hạng khách hàng, tham chiếu CustomerTier.Value
	Tier string `gorm:"size:100;not null;default:'silver';index" json:"tier"`

	// Status trạng thái, tham chiếu CrmStatus.Value
	Status string `gorm:"size:100;not null;default:'active';index" json:"status"`

	// TotalSpending tổng chi tiêu - rollup từ transactions type=payment
	TotalSpending decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_spending"`

	// RefundAmount tổng hoàn tiền - rollup từ transactions type=refund
	RefundAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"refund_amount"`

	// Commission tổng hoa hồng - rollup từ transactions type=commission
	Commission decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"commission"`

	// OrderCount số đơn - tăng theo mỗi transaction type=payment
	OrderCount int `gorm:"not null;default:0" json:"order_count"`

	// ReferredByID khách hàng đã giới thiệu khách này (self-reference, nullable)
	// Invariant: không được trỏ về chính mình, không tạo chu trình
	ReferredByID *uuid.UUID `gorm:"type:uuid;index" json:"referred_by_id,omitempty"`

	// ReferralCount số khách đã giới thiệu được
	ReferralCount int `gorm:"not null;default:0" json:"referral_count"`

	// ReferralRevenue tổng doanh thu từ các khách được giới thiệu
	ReferralRevenue decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"referral_revenue"`

	// WarrantyStatus trạng thái bảo hành: none, active, expired
	WarrantyStatus WarrantyStatus `gorm:"size:20;not null;default:'none'" json:"warranty_status"`

	// WarrantyExpiry thời điểm hết hạn bảo hành
	WarrantyExpiry *time.Time `json:"warranty_expiry,omitempty"`

	// Notes ghi chú tự do
	Notes string `gorm:"type:text" json:"notes"`

	// Tags danh sách nhãn phân loại linh hoạt (giữ thứ tự, không unique)
	Tags []string `gorm:"type:jsonb;serializer:json" json:"tags"`

	// Relations
	ReferredBy   *Client       `gorm:"foreignKey:ReferredByID" json:"referred_by,omitempty"`
	Referrals    []Client      `gorm:"foreignKey:ReferredByID" json:"referrals,omitempty"`
	Interactions []Interaction `gorm:"foreignKey:ClientID" json:"interactions,omitempty"`
	Deals        []Deal        `gorm:"foreignKey:ClientID" json:"deals,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:ClientID" json:"transactions,omitempty"`
}

// TableName trả về tên bảng
func (Client) TableName() string {
	return "clients"
}

// FullName trả về họ tên đầy đủ
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
