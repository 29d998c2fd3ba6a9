package models

import (
	"github.com/google/uuid"
)

// ===========================================================================
// Inquiry (Yêu cầu tư vấn)
// Tạo từ form liên hệ công khai, admin xử lý và có thể chuyển thành Client
// ===========================================================================

// ProjectType loại dự án khách quan tâm
type ProjectType string

const (
	ProjectTypeResidential  ProjectType = "residential"
	ProjectTypeCommercial   ProjectType = "commercial"
	ProjectTypeArchitecture ProjectType = "architecture"
	ProjectTypeConsultation ProjectType = "consultation"
)

// IsValid kiểm tra project type có nằm trong enum cho phép không
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeResidential, ProjectTypeCommercial, ProjectTypeArchitecture, ProjectTypeConsultation:
		return true
	}
	return false
}

// InquiryStatus trạng thái xử lý inquiry
// Tiến trình gợi ý: new → reviewed → contacted → converted
// Không enforce state machine, admin đặt giá trị nào cũng được
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusReviewed  InquiryStatus = "reviewed"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusConverted InquiryStatus = "converted"
)

// IsValid kiểm tra status có hợp lệ không
func (s InquiryStatus) IsValid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusReviewed, InquiryStatusContacted, InquiryStatusConverted:
		return true
	}
	return false
}

// Inquiry đại diện cho một yêu cầu tư vấn từ website
type Inquiry struct {
	BaseModel

	// FirstName tên người gửi
	FirstName string `gorm:"size:100;not null" json:"first_name"`

	// LastName họ người gửi
	LastName string `gorm:"size:100;not null" json:"last_name"`

	// Email địa chỉ email liên hệ
	Email string `gorm:"size:255;not null" json:"email"`

	// Phone số điện thoại
	Phone string `gorm:"size:20" json:"phone"`

	// ProjectType loại dự án: residential, commercial, architecture, consultation
	ProjectType ProjectType `gorm:"size:50;not null" json:"project_type"`

	// Budget khoảng ngân sách dự kiến (optional, VD: "under-500m", "500m-1b")
	Budget string `gorm:"size:50" json:"budget"`

	// Message nội dung yêu cầu
	Message string `gorm:"type:text" json:"message"`

	// Status trạng thái xử lý: new, reviewed, contacted, converted
	Status InquiryStatus `gorm:"size:50;not null;default:'new';index" json:"status"`

	// ClientID liên kết tới Client khi inquiry được convert
	ClientID *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`

	// Relations
	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// TableName trả về tên bảng
func (Inquiry) TableName() string {
	return "inquiries"
}

// IsConverted kiểm tra inquiry đã được chuyển thành client chưa
func (i *Inquiry) IsConverted() bool {
	return i.ClientID != nil
}
