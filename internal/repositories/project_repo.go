package repositories

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Project Repository GORM Implementation
// ===========================================================================

// projectRepo triển khai ProjectRepository với GORM
type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepository tạo project repository mới
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

// FindByID tìm project theo ID
func (r *projectRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug tìm project theo slug
func (r *projectRepo) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&project, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List lấy danh sách projects với filter và phân trang
func (r *projectRepo) List(ctx context.Context, opts FindOptions) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Project{})
	for column, value := range opts.Filters {
		query = query.Where(column+" = ?", value)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	opts.SetDefaults()
	if opts.OrderBy == "created_at" {
		opts.OrderBy = "sort_order"
		opts.OrderDir = "asc"
	}
	err := query.
		Preload("Category").
		Order(opts.GetOrderClause()).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Create tạo project mới
func (r *projectRepo) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update cập nhật project
func (r *projectRepo) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete soft delete project
func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
