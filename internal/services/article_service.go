package services

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
)

// ===========================================================================
// Article Service Interface
// Bài viết blog/tin tức song ngữ
// ===========================================================================

// CreateArticleInput input để tạo article mới
type CreateArticleInput struct {
	Slug          string
	TitleEn       string
	TitleVi       string
	ExcerptEn     string
	ExcerptVi     string
	BodyEn        string
	BodyVi        string
	CoverImageURL string
	CategoryID    *uuid.UUID
	AuthorID      *uuid.UUID
	IsPublished   bool
}

// UpdateArticleInput input để cập nhật article; trường nil = giữ nguyên
type UpdateArticleInput struct {
	Slug          *string
	TitleEn       *string
	TitleVi       *string
	ExcerptEn     *string
	ExcerptVi     *string
	BodyEn        *string
	BodyVi        *string
	CoverImageURL *string
	CategoryID    *uuid.UUID
	IsPublished   *bool
}

// ListArticlesInput filter cho danh sách articles
type ListArticlesInput struct {
	CategoryID    *uuid.UUID
	PublishedOnly bool
	Page          int
	Limit         int
}

// ArticleService interface cho article operations
type ArticleService interface {
	// Create tạo article mới; slug tự sinh từ tiêu đề nếu không truyền
	// PublishedAt được set khi tạo với is_published = true
	Create(ctx context.Context, input CreateArticleInput) (*models.Article, error)

	// Get tìm article theo ID
	Get(ctx context.Context, id uuid.UUID) (*models.Article, error)

	// GetBySlug tìm article theo slug; publishedOnly cho trang public
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Article, error)

	// List lấy danh sách articles, mới nhất trước
	List(ctx context.Context, input ListArticlesInput) ([]models.Article, int64, error)

	// Update cập nhật article; publish lần đầu set PublishedAt
	Update(ctx context.Context, id uuid.UUID, input UpdateArticleInput) (*models.Article, error)

	// Delete xóa article (soft delete)
	Delete(ctx context.Context, id uuid.UUID) error
}
