package services

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
)

// ===========================================================================
// Registry Service Interface
// Quản lý ba registry CRM (PipelineStage, CustomerTier, CrmStatus)
// qua một generic service duy nhất
// ===========================================================================

// InUseCounter đếm số Client đang tham chiếu một registry value
// Dùng để chặn xóa entry đang được sử dụng
type InUseCounter func(ctx context.Context, value string) (int64, error)

// RegistryService interface generic cho registry operations
type RegistryService[T models.RegistryEntry] interface {
	// List trả về tất cả entries theo sort order
	List(ctx context.Context) ([]T, error)

	// Get tìm entry theo ID
	Get(ctx context.Context, id uuid.UUID) (*T, error)

	// Create tạo entry mới; value rỗng hoặc trùng bị từ chối
	Create(ctx context.Context, entry *T) error

	// Update cập nhật một phần entry; đổi value sang giá trị trùng bị từ chối
	Update(ctx context.Context, id uuid.UUID, patch models.RegistryPatch) (*T, error)

	// Delete xóa entry; từ chối nếu còn Client tham chiếu value
	Delete(ctx context.Context, id uuid.UUID) error
}
