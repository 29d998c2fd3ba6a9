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
// Client Service Implementation
// ===========================================================================

// maxReferralDepth giới hạn số bước khi kiểm tra chu trình giới thiệu
// Chuỗi giới thiệu thực tế không bao giờ sâu đến mức này
const maxReferralDepth = 16

// clientServiceImpl implements ClientService
type clientServiceImpl struct {
	clientRepo repositories.ClientRepository
	logger     *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo repositories.ClientRepository, logger *zap.Logger) ClientService {
	return &clientServiceImpl{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create tạo client mới
func (s *clientServiceImpl) Create(ctx context.Context, input CreateClientInput) (*models.Client, error) {
	if strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" ||
		strings.TrimSpace(input.Email) == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "first_name, last_name and email are required")
	}

	if input.WarrantyStatus != "" && !isValidWarrantyStatus(input.WarrantyStatus) {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "invalid warranty_status")
	}

	// Referrer phải tồn tại TRƯỚC khi insert - lỗi ở bước liên kết giới
	// thiệu không được để lại client mồ côi
	if input.ReferredByID != nil {
		if _, err := s.Get(ctx, *input.ReferredByID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.New(apperrors.ErrNotFound, "referrer not found")
			}
			return nil, err
		}
	}

	client := &models.Client{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Email:          strings.TrimSpace(input.Email),
		Phone:          input.Phone,
		Company:        input.Company,
		Address:        input.Address,
		DateOfBirth:    input.DateOfBirth,
		Stage:          input.Stage,
		Tier:           input.Tier,
		Status:         input.Status,
		WarrantyStatus: input.WarrantyStatus,
		WarrantyExpiry: input.WarrantyExpiry,
		Notes:          input.Notes,
		Tags:           input.Tags,
	}

	// Defaults khi không truyền
	if client.Stage == "" {
		client.Stage = models.DefaultClientStage
	}
	if client.Tier == "" {
		client.Tier = models.DefaultClientTier
	}
	if client.Status == "" {
		client.Status = models.DefaultClientStatus
	}
	if client.WarrantyStatus == "" {
		client.WarrantyStatus = models.WarrantyNone
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	// Liên kết giới thiệu đi qua SetReferrer để dùng chung validation
	if input.ReferredByID != nil {
		return s.SetReferrer(ctx, client.ID, *input.ReferredByID)
	}

	s.logger.Info("client created",
		zap.String("client_id", client.ID.String()),
		zap.String("stage", client.Stage),
	)

	return client, nil
}

// Get tìm client theo ID
func (s *clientServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return client, nil
}

// List lấy danh sách clients với filter và phân trang
func (s *clientServiceImpl) List(ctx context.Context, input ListClientsInput) ([]models.Client, int64, error) {
	clients, total, err := s.clientRepo.List(ctx, input.ListOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	return clients, total, nil
}

// Update cập nhật một phần client
// Chỉ ghi các cột được sửa qua UpdateColumns: ghi nguyên struct (Save) sẽ
// chép đè rollup fields từ bản đọc cũ khi có RecordWithRollup chạy song song
func (s *clientServiceImpl) Update(ctx context.Context, id uuid.UUID, input UpdateClientInput) (*models.Client, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if input.FirstName != nil {
		if strings.TrimSpace(*input.FirstName) == "" {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "first_name is required")
		}
		changes["first_name"] = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		if strings.TrimSpace(*input.LastName) == "" {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "last_name is required")
		}
		changes["last_name"] = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		if strings.TrimSpace(*input.Email) == "" {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "email is required")
		}
		changes["email"] = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		changes["phone"] = *input.Phone
	}
	if input.Company != nil {
		changes["company"] = *input.Company
	}
	if input.Address != nil {
		changes["address"] = *input.Address
	}
	if input.DateOfBirth != nil {
		changes["date_of_birth"] = input.DateOfBirth
	}
	// Stage/Tier/Status lưu chuỗi tự do, không validate với registry
	// Value bị xóa khỏi registry vẫn nằm lại trên Client (inert)
	if input.Stage != nil {
		changes["stage"] = *input.Stage
	}
	if input.Tier != nil {
		changes["tier"] = *input.Tier
	}
	if input.Status != nil {
		changes["status"] = *input.Status
	}
	if input.WarrantyStatus != nil {
		if !isValidWarrantyStatus(*input.WarrantyStatus) {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "invalid warranty_status")
		}
		changes["warranty_status"] = *input.WarrantyStatus
	}
	if input.WarrantyExpiry != nil {
		changes["warranty_expiry"] = input.WarrantyExpiry
	}
	if input.Notes != nil {
		changes["notes"] = *input.Notes
	}
	if input.Tags != nil {
		changes["tags"] = *input.Tags
	}

	if len(changes) > 0 {
		if err := s.clientRepo.UpdateColumns(ctx, id, changes); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("update client: %w", err)
		}
	}

	return s.Get(ctx, id)
}

// SetReferrer gán người giới thiệu cho client
func (s *clientServiceImpl) SetReferrer(ctx context.Context, clientID, referrerID uuid.UUID) (*models.Client, error) {
	if clientID == referrerID {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "client cannot refer themselves")
	}

	// Cả hai phía phải tồn tại
	if _, err := s.Get(ctx, clientID); err != nil {
		return nil, err
	}
	referrer, err := s.Get(ctx, referrerID)
	if err != nil {
		return nil, err
	}

	// Đi ngược chuỗi giới thiệu từ referrer; nếu gặp lại clientID thì gán
	// này sẽ tạo chu trình
	current := referrer
	for depth := 0; current.ReferredByID != nil && depth < maxReferralDepth; depth++ {
		if *current.ReferredByID == clientID {
			return nil, apperrors.New(apperrors.ErrConflict, "referral would create a cycle")
		}
		current, err = s.Get(ctx, *current.ReferredByID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.SetReferredBy(ctx, clientID, referrerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("set referrer: %w", err)
	}

	s.logger.Info("client referrer set",
		zap.String("client_id", clientID.String()),
		zap.String("referrer_id", referrerID.String()),
	)

	return s.Get(ctx, clientID)
}

// CountByStage đếm clients theo pipeline stage
func (s *clientServiceImpl) CountByStage(ctx context.Context, stage string) (int64, error) {
	return s.clientRepo.CountByStage(ctx, stage)
}

// CountByTier đếm clients theo tier
func (s *clientServiceImpl) CountByTier(ctx context.Context, tier string) (int64, error) {
	return s.clientRepo.CountByTier(ctx, tier)
}

// CountByStatus đếm clients theo status
func (s *clientServiceImpl) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.clientRepo.CountByStatus(ctx, status)
}

func isValidWarrantyStatus(status models.WarrantyStatus) bool {
	switch status {
	case models.WarrantyNone, models.WarrantyActive, models.WarrantyExpired:
		return true
	}
	return false
}
