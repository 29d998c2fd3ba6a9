package repositories

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ===========================================================================
// Client Repository GORM Implementation
// ===========================================================================

// clientRepo triển khai ClientRepository với GORM
type clientRepo struct {
	db *gorm.DB
}

// NewClientRepository tạo client repository mới
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepo{db: db}
}

// FindByID tìm client theo ID
func (r *clientRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).
		Preload("ReferredBy").
		First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// List lấy danh sách clients với filter và phân trang
func (r *clientRepo) List(ctx context.Context, opts FindOptions) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Client{})
	for column, value := range opts.Filters {
		query = query.Where(column+" = ?", value)
	}

	// Count total trước khi phân trang
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	opts.SetDefaults()
	err := query.
		Order(opts.GetOrderClause()).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// Create tạo client mới
func (r *clientRepo) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// Update cập nhật client
func (r *clientRepo) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// UpdateColumns cập nhật một phần client
func (r *clientRepo) UpdateColumns(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetReferredBy gán người giới thiệu cho client
// Các write (referred_by_id + referral_count hai phía) nằm trong một
// transaction, client bị lock để đọc referrer hiện tại không bị đua
func (r *clientRepo) SetReferredBy(ctx context.Context, clientID, referrerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		client, err := lockClientForUpdate(tx, clientID)
		if err != nil {
			return err
		}

		// Gọi lặp với cùng referrer là no-op, count không tăng thêm
		if client.ReferredByID != nil && *client.ReferredByID == referrerID {
			return nil
		}

		// Đổi referrer: trả lại count cho người giới thiệu cũ
		if client.ReferredByID != nil {
			result := tx.Model(&models.Client{}).
				Where("id = ? AND referral_count > 0", *client.ReferredByID).
				Update("referral_count", gorm.Expr("referral_count - 1"))
			if result.Error != nil {
				return result.Error
			}
		}

		result := tx.Model(&models.Client{}).
			Where("id = ?", clientID).
			Update("referred_by_id", referrerID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		result = tx.Model(&models.Client{}).
			Where("id = ?", referrerID).
			Update("referral_count", gorm.Expr("referral_count + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

// CountByStage đếm clients theo pipeline stage
func (r *clientRepo) CountByStage(ctx context.Context, stage string) (int64, error) {
	return r.countByColumn(ctx, "stage", stage)
}

// CountByTier đếm clients theo tier
func (r *clientRepo) CountByTier(ctx context.Context, tier string) (int64, error) {
	return r.countByColumn(ctx, "tier", tier)
}

// CountByStatus đếm clients theo status
func (r *clientRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.countByColumn(ctx, "status", status)
}

func (r *clientRepo) countByColumn(ctx context.Context, column, value string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where(column+" = ?", value).
		Count(&count).Error
	return count, err
}

// lockClientForUpdate load client với row-level lock (FOR UPDATE)
// Dùng trong transaction để serialize các write vào rollup fields
func lockClientForUpdate(tx *gorm.DB, clientID uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&client, "id = ?", clientID).Error; err != nil {
		return nil, err
	}
	return &client, nil
}
