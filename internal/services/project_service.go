package services

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
)

// ===========================================================================
// Project Service Interface
// Portfolio dự án của studio
// ===========================================================================

// CreateProjectInput input để tạo project mới
type CreateProjectInput struct {
	Slug          string
	TitleEn       string
	TitleVi       string
	DescriptionEn string
	DescriptionVi string
	CategoryID    *uuid.UUID
	Location      string
	Area          string
	Year          int
	CoverImageURL string
	Images        []string
	IsFeatured    bool
	IsPublished   bool
	SortOrder     int
}

// UpdateProjectInput input để cập nhật project; trường nil = giữ nguyên
type UpdateProjectInput struct {
	Slug          *string
	TitleEn       *string
	TitleVi       *string
	DescriptionEn *string
	DescriptionVi *string
	CategoryID    *uuid.UUID
	Location      *string
	Area          *string
	Year          *int
	CoverImageURL *string
	Images        *[]string
	IsFeatured    *bool
	IsPublished   *bool
	SortOrder     *int
}

// ListProjectsInput filter cho danh sách projects
type ListProjectsInput struct {
	CategoryID    *uuid.UUID
	FeaturedOnly  bool
	PublishedOnly bool
	Page          int
	Limit         int
}

// ProjectService interface cho project operations
type ProjectService interface {
	// Create tạo project mới; slug tự sinh từ tiêu đề nếu không truyền
	Create(ctx context.Context, input CreateProjectInput) (*models.Project, error)

	// Get tìm project theo ID
	Get(ctx context.Context, id uuid.UUID) (*models.Project, error)

	// GetBySlug tìm project theo slug; publishedOnly cho trang public
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Project, error)

	// List lấy danh sách projects
	List(ctx context.Context, input ListProjectsInput) ([]models.Project, int64, error)

	// Update cập nhật project
	Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*models.Project, error)

	// Delete xóa project (soft delete)
	Delete(ctx context.Context, id uuid.UUID) error
}
