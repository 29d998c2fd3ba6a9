package repositories

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Registry Repository GORM Implementation
// Generic cho cả ba registries: PipelineStage, CustomerTier, CrmStatus
// ===========================================================================

// registryRepo triển khai RegistryRepository với GORM
type registryRepo[T models.RegistryEntry] struct {
	db *gorm.DB
}

// NewRegistryRepository tạo instance mới của RegistryRepository
func NewRegistryRepository[T models.RegistryEntry](db *gorm.DB) RegistryRepository[T] {
	return &registryRepo[T]{db: db}
}

// List trả về tất cả entries, sort_order ASC
// created_at ASC làm tie-break để thứ tự ổn định khi sort_order trùng nhau
func (r *registryRepo[T]) List(ctx context.Context) ([]T, error) {
	var entries []T
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

// FindByID tìm entry theo ID
func (r *registryRepo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entry T
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByValue tìm entry theo value (case-sensitive)
func (r *registryRepo[T]) FindByValue(ctx context.Context, value string) (*T, error) {
	var entry T
	if err := r.db.WithContext(ctx).First(&entry, "value = ?", value).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Create tạo entry mới
// Unique index trên value bắt duplicate ở DB level (chống TOCTOU race)
func (r *registryRepo[T]) Create(ctx context.Context, entry *T) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// UpdateColumns cập nhật một phần entry
func (r *registryRepo[T]) UpdateColumns(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete xóa cứng entry (registries không giữ record đã xóa)
func (r *registryRepo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
