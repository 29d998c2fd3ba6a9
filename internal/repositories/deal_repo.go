package repositories

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Deal Repository GORM Implementation
// ===========================================================================

// dealRepo triển khai DealRepository với GORM
type dealRepo struct {
	db *gorm.DB
}

// NewDealRepository tạo deal repository mới
func NewDealRepository(db *gorm.DB) DealRepository {
	return &dealRepo{db: db}
}

// FindByID tìm deal theo ID
func (r *dealRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Deal, error) {
	var deal models.Deal
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&deal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &deal, nil
}

// FindByClient lấy các deals của một client
func (r *dealRepo) FindByClient(ctx context.Context, clientID uuid.UUID, opts FindOptions) ([]models.Deal, int64, error) {
	return r.findWhere(ctx, "client_id = ?", clientID, opts)
}

// FindByStage lấy các deals đang ở một stage
func (r *dealRepo) FindByStage(ctx context.Context, stage models.DealStage, opts FindOptions) ([]models.Deal, int64, error) {
	return r.findWhere(ctx, "stage = ?", stage, opts)
}

func (r *dealRepo) findWhere(ctx context.Context, cond string, value interface{}, opts FindOptions) ([]models.Deal, int64, error) {
	var deals []models.Deal
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Deal{}).
		Where(cond, value)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	opts.SetDefaults()
	err := query.
		Order(opts.GetOrderClause()).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&deals).Error
	if err != nil {
		return nil, 0, err
	}

	return deals, total, nil
}

// Create tạo deal mới
func (r *dealRepo) Create(ctx context.Context, deal *models.Deal) error {
	return r.db.WithContext(ctx).Create(deal).Error
}

// Update cập nhật deal
func (r *dealRepo) Update(ctx context.Context, deal *models.Deal) error {
	return r.db.WithContext(ctx).Save(deal).Error
}
