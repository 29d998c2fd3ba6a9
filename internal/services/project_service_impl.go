package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "noithat-backend/internal/errors"
	"noithat-backend/internal/models"
	"noithat-backend/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Project Service Implementation
// ===========================================================================

// projectServiceImpl implements ProjectService
type projectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	logger      *zap.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repositories.ProjectRepository, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Create tạo project mới
func (s *projectServiceImpl) Create(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.TitleEn) == "" && strings.TrimSpace(input.TitleVi) == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "title is required")
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		title := input.TitleVi
		if title == "" {
			title = input.TitleEn
		}
		slug = models.Slugify(title)
	}
	if slug == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "slug is required")
	}

	project := &models.Project{
		Slug:          slug,
		TitleEn:       input.TitleEn,
		TitleVi:       input.TitleVi,
		DescriptionEn: input.DescriptionEn,
		DescriptionVi: input.DescriptionVi,
		CategoryID:    input.CategoryID,
		Location:      input.Location,
		Area:          input.Area,
		Year:          input.Year,
		CoverImageURL: input.CoverImageURL,
		Images:        input.Images,
		IsFeatured:    input.IsFeatured,
		IsPublished:   input.IsPublished,
		SortOrder:     input.SortOrder,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.New(apperrors.ErrDuplicateEntry, "slug already exists")
		}
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("slug", project.Slug),
	)

	return project, nil
}

// Get tìm project theo ID
func (s *projectServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

// GetBySlug tìm project theo slug
func (s *projectServiceImpl) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Project, error) {
	project, err := s.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	// Trang public không thấy draft
	if publishedOnly && !project.IsPublished {
		return nil, apperrors.ErrNotFound
	}
	return project, nil
}

// List lấy danh sách projects
func (s *projectServiceImpl) List(ctx context.Context, input ListProjectsInput) ([]models.Project, int64, error) {
	filters := map[string]interface{}{}
	if input.CategoryID != nil {
		filters["category_id"] = *input.CategoryID
	}
	if input.FeaturedOnly {
		filters["is_featured"] = true
	}
	if input.PublishedOnly {
		filters["is_published"] = true
	}

	opts := pageOptions(input.Page, input.Limit)
	opts.Filters = filters

	projects, total, err := s.projectRepo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	return projects, total, nil
}

// Update cập nhật project
func (s *projectServiceImpl) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil {
		slug := strings.TrimSpace(*input.Slug)
		if slug == "" {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "slug is required")
		}
		project.Slug = slug
	}
	if input.TitleEn != nil {
		project.TitleEn = *input.TitleEn
	}
	if input.TitleVi != nil {
		project.TitleVi = *input.TitleVi
	}
	if input.DescriptionEn != nil {
		project.DescriptionEn = *input.DescriptionEn
	}
	if input.DescriptionVi != nil {
		project.DescriptionVi = *input.DescriptionVi
	}
	if input.CategoryID != nil {
		project.CategoryID = input.CategoryID
	}
	if input.Location != nil {
		project.Location = *input.Location
	}
	if input.Area != nil {
		project.Area = *input.Area
	}
	if input.Year != nil {
		project.Year = *input.Year
	}
	if input.CoverImageURL != nil {
		project.CoverImageURL = *input.CoverImageURL
	}
	if input.Images != nil {
		project.Images = *input.Images
	}
	if input.IsFeatured != nil {
		project.IsFeatured = *input.IsFeatured
	}
	if input.IsPublished != nil {
		project.IsPublished = *input.IsPublished
	}
	if input.SortOrder != nil {
		project.SortOrder = *input.SortOrder
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.New(apperrors.ErrDuplicateEntry, "slug already exists")
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// Delete xóa project
func (s *projectServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
