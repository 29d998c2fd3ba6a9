package services

import (
	"context"

	"github.com/google/uuid"
)

// ===========================================================================
// Content Service Interface
// Generic service cho các CMS resource đơn giản
// (Category, ServiceOffering, Partner, HomepageBlock, About*)
// ===========================================================================

// ContentService interface generic cho content operations
type ContentService[T any] interface {
	// List trả về tất cả resources theo thứ tự ổn định
	// filters lọc theo cột (VD: is_active, kind); nil = lấy tất cả
	List(ctx context.Context, filters map[string]interface{}) ([]T, error)

	// Get tìm resource theo ID
	Get(ctx context.Context, id uuid.UUID) (*T, error)

	// Create tạo resource mới
	Create(ctx context.Context, entity *T) error

	// Update cập nhật resource từ struct đã bind
	Update(ctx context.Context, id uuid.UUID, entity *T) (*T, error)

	// Delete xóa resource (soft delete)
	Delete(ctx context.Context, id uuid.UUID) error
}
