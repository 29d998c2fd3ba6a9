package repositories

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Inquiry Repository GORM Implementation
// ===========================================================================

// inquiryRepo triển khai InquiryRepository với GORM
type inquiryRepo struct {
	db *gorm.DB
}

// NewInquiryRepository tạo inquiry repository mới
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepo{db: db}
}

// FindByID tìm inquiry theo ID
func (r *inquiryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := r.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// List lấy danh sách inquiries, mới nhất trước
func (r *inquiryRepo) List(ctx context.Context, opts FindOptions) ([]models.Inquiry, int64, error) {
	var inquiries []models.Inquiry
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Inquiry{})
	for column, value := range opts.Filters {
		query = query.Where(column+" = ?", value)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	opts.SetDefaults()
	err := query.
		Order(opts.GetOrderClause()).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&inquiries).Error
	if err != nil {
		return nil, 0, err
	}

	return inquiries, total, nil
}

// Create tạo inquiry mới
func (r *inquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

// Update cập nhật inquiry
func (r *inquiryRepo) Update(ctx context.Context, inquiry *models.Inquiry) error {
	return r.db.WithContext(ctx).Save(inquiry).Error
}
