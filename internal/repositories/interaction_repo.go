package repositories

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Interaction Repository GORM Implementation
// ===========================================================================

// interactionRepo triển khai InteractionRepository với GORM
type interactionRepo struct {
	db *gorm.DB
}

// NewInteractionRepository tạo interaction repository mới
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepo{db: db}
}

// FindByID tìm interaction theo ID
func (r *interactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Interaction, error) {
	var interaction models.Interaction
	if err := r.db.WithContext(ctx).First(&interaction, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &interaction, nil
}

// FindByClient lấy nhật ký tương tác của client, mới nhất trước
func (r *interactionRepo) FindByClient(ctx context.Context, clientID uuid.UUID, opts FindOptions) ([]models.Interaction, int64, error) {
	var interactions []models.Interaction
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Interaction{}).
		Where("client_id = ?", clientID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	opts.SetDefaults()
	if opts.OrderBy == "created_at" {
		opts.OrderBy = "date"
	}
	err := query.
		Order(opts.GetOrderClause()).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&interactions).Error
	if err != nil {
		return nil, 0, err
	}

	return interactions, total, nil
}

// Create tạo interaction mới
func (r *interactionRepo) Create(ctx context.Context, interaction *models.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

// Update cập nhật interaction
func (r *interactionRepo) Update(ctx context.Context, interaction *models.Interaction) error {
	return r.db.WithContext(ctx).Save(interaction).Error
}
