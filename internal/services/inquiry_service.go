package services

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
)

// ===========================================================================
// Inquiry Service Interface
// Xử lý yêu cầu tư vấn từ form liên hệ công khai
// ===========================================================================

// CreateInquiryInput input từ form liên hệ
type CreateInquiryInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	ProjectType models.ProjectType
	Budget      string
	Message     string
}

// ListInquiriesInput filter và phân trang cho danh sách inquiries
type ListInquiriesInput struct {
	Status string
	Page   int
	Limit  int
}

// InquiryService interface cho inquiry operations
type InquiryService interface {
	// Create tạo inquiry mới từ form công khai; status luôn bắt đầu là "new"
	Create(ctx context.Context, input CreateInquiryInput) (*models.Inquiry, error)

	// Get tìm inquiry theo ID
	Get(ctx context.Context, id uuid.UUID) (*models.Inquiry, error)

	// List lấy danh sách inquiries với filter status
	List(ctx context.Context, input ListInquiriesInput) ([]models.Inquiry, int64, error)

	// UpdateStatus đổi trạng thái xử lý (không enforce thứ tự chuyển)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.InquiryStatus) (*models.Inquiry, error)

	// Convert chuyển inquiry thành Client mới và đánh dấu converted
	// Từ chối nếu inquiry đã được convert trước đó
	Convert(ctx context.Context, id uuid.UUID) (*models.Client, error)
}
