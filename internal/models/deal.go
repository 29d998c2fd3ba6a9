package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===========================================================================
// Deal (Thương vụ)
// Record đàm phán gắn với Client (và optionally một Project)
// Theo dõi stage và xác suất chốt; không phải state machine chặt chẽ
// ===========================================================================

// DealStage giai đoạn của thương vụ
type DealStage string

const (
	DealStageProposal    DealStage = "proposal"
	DealStageNegotiation DealStage = "negotiation"
	DealStageContract    DealStage = "contract"
	DealStageDelivery    DealStage = "delivery"
	DealStageCompleted   DealStage = "completed"
	DealStageLost        DealStage = "lost"
)

// IsValid kiểm tra stage có hợp lệ không
func (s DealStage) IsValid() bool {
	switch s {
	case DealStageProposal, DealStageNegotiation, DealStageContract,
		DealStageDelivery, DealStageCompleted, DealStageLost:
		return true
	}
	return false
}

// IsTerminal kiểm tra stage có phải trạng thái kết thúc không
func (s DealStage) IsTerminal() bool {
	return s == DealStageCompleted || s == DealStageLost
}

// Deal đại diện cho một thương vụ đang đàm phán
type Deal struct {
	BaseModel

	// ClientID khách hàng liên quan (bắt buộc)
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	// ProjectID dự án liên quan (optional)
	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"project_id,omitempty"`

	// Title tên thương vụ
	Title string `gorm:"size:255;not null" json:"title"`

	// Value giá trị thương vụ (phải > 0)
	Value decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"value"`

	// Stage giai đoạn: proposal, negotiation, contract, delivery, completed, lost
	// Cho phép chuyển tự do giữa các stage (công cụ hỗ trợ, không phải máy trạng thái)
	Stage DealStage `gorm:"size:50;not null;default:'proposal';index" json:"stage"`

	// Probability xác suất chốt deal, 0-100
	// Không ràng buộc tương quan với stage
	Probability int `gorm:"not null;default:50" json:"probability"`

	// ExpectedCloseDate ngày dự kiến chốt
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`

	// ActualCloseDate ngày chốt thực tế
	// Chỉ nên set khi stage ∈ {completed, lost}; do caller đặt, không tự động
	ActualCloseDate *time.Time `json:"actual_close_date,omitempty"`

	// Description mô tả thương vụ
	Description string `gorm:"type:text" json:"description"`

	// Terms điều khoản hợp đồng
	Terms string `gorm:"type:text" json:"terms"`

	// Notes ghi chú nội bộ
	Notes string `gorm:"type:text" json:"notes"`

	// LostReason lý do thua (chỉ có ý nghĩa khi stage = lost)
	LostReason string `gorm:"size:500" json:"lost_reason"`

	// AssignedTo nhân viên phụ trách (User FK)
	AssignedTo *uuid.UUID `gorm:"type:uuid" json:"assigned_to,omitempty"`

	// CreatedBy người tạo record (User FK)
	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`

	// Relations
	Client   Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Project  *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Assignee *User    `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
	Creator  *User    `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

// TableName trả về tên bảng
func (Deal) TableName() string {
	return "deals"
}
