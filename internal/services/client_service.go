package services

import (
	"context"
	"time"

	"noithat-backend/internal/models"
	"noithat-backend/internal/repositories"

	"github.com/google/uuid"
)

// ===========================================================================
// Client Service Interface
// Business logic cho khách hàng CRM: tạo/sửa, phân loại, liên kết giới thiệu
// ===========================================================================

// CreateClientInput input để tạo client mới
type CreateClientInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Company        string
	Address        string
	DateOfBirth    *time.Time
	Stage          string
	Tier           string
	Status         string
	WarrantyStatus models.WarrantyStatus
	WarrantyExpiry *time.Time
	Notes          string
	Tags           []string
	ReferredByID   *uuid.UUID
}

// UpdateClientInput input để cập nhật client; trường nil = giữ nguyên
type UpdateClientInput struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	Company        *string
	Address        *string
	DateOfBirth    *time.Time
	Stage          *string
	Tier           *string
	Status         *string
	WarrantyStatus *models.WarrantyStatus
	WarrantyExpiry *time.Time
	Notes          *string
	Tags           *[]string
}

// ListClientsInput filter và phân trang cho danh sách clients
type ListClientsInput struct {
	Stage  string
	Tier   string
	Status string
	Page   int
	Limit  int
}

// ClientService interface cho client operations
type ClientService interface {
	// Create tạo client mới với defaults (stage=lead, tier=silver, status=active)
	Create(ctx context.Context, input CreateClientInput) (*models.Client, error)

	// Get tìm client theo ID
	Get(ctx context.Context, id uuid.UUID) (*models.Client, error)

	// List lấy danh sách clients với filter và phân trang
	List(ctx context.Context, input ListClientsInput) ([]models.Client, int64, error)

	// Update cập nhật một phần client
	Update(ctx context.Context, id uuid.UUID, input UpdateClientInput) (*models.Client, error)

	// SetReferrer gán người giới thiệu cho client
	// Từ chối tự giới thiệu và chu trình giới thiệu
	SetReferrer(ctx context.Context, clientID, referrerID uuid.UUID) (*models.Client, error)

	// CountByStage đếm clients theo pipeline stage (cho registry in-use check)
	CountByStage(ctx context.Context, stage string) (int64, error)

	// CountByTier đếm clients theo tier (cho registry in-use check)
	CountByTier(ctx context.Context, tier string) (int64, error)

	// CountByStatus đếm clients theo status (cho registry in-use check)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// ListOptions chuyển ListClientsInput thành FindOptions cho repository
func (i ListClientsInput) ListOptions() repositories.FindOptions {
	filters := map[string]interface{}{}
	if i.Stage != "" {
		filters["stage"] = i.Stage
	}
	if i.Tier != "" {
		filters["tier"] = i.Tier
	}
	if i.Status != "" {
		filters["status"] = i.Status
	}

	page := i.Page
	if page < 1 {
		page = 1
	}
	limit := i.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return repositories.FindOptions{
		Offset:  (page - 1) * limit,
		Limit:   limit,
		Filters: filters,
	}
}
