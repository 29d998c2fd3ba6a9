package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "noithat-backend/internal/errors"
	"noithat-backend/internal/models"
	"noithat-backend/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Article Service Implementation
// ===========================================================================

// articleServiceImpl implements ArticleService
type articleServiceImpl struct {
	articleRepo repositories.ArticleRepository
	logger      *zap.Logger
}

// NewArticleService creates a new ArticleService
func NewArticleService(articleRepo repositories.ArticleRepository, logger *zap.Logger) ArticleService {
	return &articleServiceImpl{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

// Create tạo article mới
func (s *articleServiceImpl) Create(ctx context.Context, input CreateArticleInput) (*models.Article, error) {
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

	article := &models.Article{
		Slug:          slug,
		TitleEn:       input.TitleEn,
		TitleVi:       input.TitleVi,
		ExcerptEn:     input.ExcerptEn,
		ExcerptVi:     input.ExcerptVi,
		BodyEn:        input.BodyEn,
		BodyVi:        input.BodyVi,
		CoverImageURL: input.CoverImageURL,
		CategoryID:    input.CategoryID,
		AuthorID:      input.AuthorID,
		IsPublished:   input.IsPublished,
	}
	if article.IsPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.New(apperrors.ErrDuplicateEntry, "slug already exists")
		}
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.logger.Info("article created",
		zap.String("article_id", article.ID.String()),
		zap.String("slug", article.Slug),
	)

	return article, nil
}

// Get tìm article theo ID
func (s *articleServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return article, nil
}

// GetBySlug tìm article theo slug
func (s *articleServiceImpl) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Article, error) {
	article, err := s.articleRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	if publishedOnly && !article.IsPublished {
		return nil, apperrors.ErrNotFound
	}
	return article, nil
}

// List lấy danh sách articles
func (s *articleServiceImpl) List(ctx context.Context, input ListArticlesInput) ([]models.Article, int64, error) {
	filters := map[string]interface{}{}
	if input.CategoryID != nil {
		filters["category_id"] = *input.CategoryID
	}
	if input.PublishedOnly {
		filters["is_published"] = true
	}

	opts := pageOptions(input.Page, input.Limit)
	opts.Filters = filters

	articles, total, err := s.articleRepo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	return articles, total, nil
}

// Update cập nhật article
func (s *articleServiceImpl) Update(ctx context.Context, id uuid.UUID, input UpdateArticleInput) (*models.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil {
		slug := strings.TrimSpace(*input.Slug)
		if slug == "" {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "slug is required")
		}
		article.Slug = slug
	}
	if input.TitleEn != nil {
		article.TitleEn = *input.TitleEn
	}
	if input.TitleVi != nil {
		article.TitleVi = *input.TitleVi
	}
	if input.ExcerptEn != nil {
		article.ExcerptEn = *input.ExcerptEn
	}
	if input.ExcerptVi != nil {
		article.ExcerptVi = *input.ExcerptVi
	}
	if input.BodyEn != nil {
		article.BodyEn = *input.BodyEn
	}
	if input.BodyVi != nil {
		article.BodyVi = *input.BodyVi
	}
	if input.CoverImageURL != nil {
		article.CoverImageURL = *input.CoverImageURL
	}
	if input.CategoryID != nil {
		article.CategoryID = input.CategoryID
	}
	if input.IsPublished != nil {
		// Publish lần đầu ghi lại thời điểm
		if *input.IsPublished && article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
		article.IsPublished = *input.IsPublished
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.New(apperrors.ErrDuplicateEntry, "slug already exists")
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

// Delete xóa article
func (s *articleServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
