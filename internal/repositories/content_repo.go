package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Content Repository GORM Implementation
// Generic implementation cho các CMS resource đơn giản
// (Category, ServiceOffering, Partner, HomepageBlock, About*)
// ===========================================================================

// contentRepo triển khai ContentRepository với GORM
type contentRepo[T any] struct {
	db *gorm.DB

	// orderClause thứ tự mặc định khi List, ví dụ "sort_order ASC, created_at ASC"
	orderClause string
}

// NewContentRepository tạo content repository mới với thứ tự List mặc định
func NewContentRepository[T any](db *gorm.DB, orderClause string) ContentRepository[T] {
	if orderClause == "" {
		orderClause = "sort_order ASC, created_at ASC"
	}
	return &contentRepo[T]{db: db, orderClause: orderClause}
}

// FindByID tìm resource theo ID
func (r *contentRepo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// List trả về tất cả resources theo thứ tự ổn định
func (r *contentRepo[T]) List(ctx context.Context, opts FindOptions) ([]T, error) {
	var entities []T

	query := r.db.WithContext(ctx).Model(new(T))
	for column, value := range opts.Filters {
		query = query.Where(column+" = ?", value)
	}

	if err := query.Order(r.orderClause).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Create tạo resource mới
func (r *contentRepo[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Update cập nhật resource từ struct
// GORM Updates với struct chỉ ghi các trường non-zero; trường pointer
// (VD IsActive *bool) vẫn set được giá trị false
func (r *contentRepo[T]) Update(ctx context.Context, id uuid.UUID, entity *T) error {
	result := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete soft delete resource
func (r *contentRepo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
