package repositories

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Article Repository GORM Implementation
// ===========================================================================

// articleRepo triển khai ArticleRepository với GORM
type articleRepo struct {
	db *gorm.DB
}

// NewArticleRepository tạo article repository mới
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// FindByID tìm article theo ID
func (r *articleRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// FindBySlug tìm article theo slug
func (r *articleRepo) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&article, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// List lấy danh sách articles, mới nhất trước
func (r *articleRepo) List(ctx context.Context, opts FindOptions) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Article{})
	for column, value := range opts.Filters {
		query = query.Where(column+" = ?", value)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	opts.SetDefaults()
	err := query.
		Preload("Category").
		Order(opts.GetOrderClause()).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// Create tạo article mới
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// Update cập nhật article
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// Delete soft delete article
func (r *articleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Article{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
