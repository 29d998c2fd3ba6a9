package models

import (
	"time"

	"github.com/google/uuid"
)

// ===========================================================================
// Interaction (Nhật ký tương tác)
// Lịch sử hoạt động gắn với một Client: gặp mặt, khảo sát, thiết kế...
// Thiết kế dạng log: chỉ tạo và sửa, không có lifecycle transitions
// ===========================================================================

// InteractionType loại tương tác với khách hàng
type InteractionType string

const (
	InteractionVisit      InteractionType = "visit"
	InteractionMeeting    InteractionType = "meeting"
	InteractionSiteSurvey InteractionType = "site_survey"
	InteractionDesign     InteractionType = "design"
	InteractionAcceptance InteractionType = "acceptance"
	InteractionCall       InteractionType = "call"
	InteractionEmail      InteractionType = "email"
)

// IsValid kiểm tra type có hợp lệ không
func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionVisit, InteractionMeeting, InteractionSiteSurvey,
		InteractionDesign, InteractionAcceptance, InteractionCall, InteractionEmail:
		return true
	}
	return false
}

// Interaction đại diện cho một hoạt động với khách hàng
type Interaction struct {
	BaseModel

	// ClientID khách hàng liên quan (bắt buộc)
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	// Type loại tương tác: visit, meeting, site_survey, design, acceptance, call, email
	Type InteractionType `gorm:"size:50;not null" json:"type"`

	// Title tiêu đề ngắn gọn
	Title string `gorm:"size:255;not null" json:"title"`

	// Description mô tả chi tiết
	Description string `gorm:"type:text" json:"description"`

	// Date thời điểm diễn ra
	Date time.Time `gorm:"not null;index" json:"date"`

	// Duration thời lượng (phút)
	Duration int `gorm:"default:0" json:"duration"`

	// Location địa điểm
	Location string `gorm:"size:255" json:"location"`

	// AssignedTo tên nhân viên phụ trách (chuỗi tự do, không phải User FK)
	AssignedTo string `gorm:"size:255" json:"assigned_to"`

	// Outcome kết quả buổi làm việc
	Outcome string `gorm:"type:text" json:"outcome"`

	// NextAction việc cần làm tiếp theo
	NextAction string `gorm:"size:500" json:"next_action"`

	// NextActionDate hạn cho việc tiếp theo
	NextActionDate *time.Time `json:"next_action_date,omitempty"`

	// Attachments danh sách URL tài liệu đính kèm
	Attachments []string `gorm:"type:jsonb;serializer:json" json:"attachments"`

	// CreatedBy người tạo record (User FK)
	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`

	// Relations
	Client  Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Creator *User  `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

// TableName trả về tên bảng
func (Interaction) TableName() string {
	return "interactions"
}
