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
// Inquiry Service Implementation
// ===========================================================================

// inquiryServiceImpl implements InquiryService
type inquiryServiceImpl struct {
	inquiryRepo   repositories.InquiryRepository
	clientService ClientService
	logger        *zap.Logger
}

// NewInquiryService creates a new InquiryService
func NewInquiryService(
	inquiryRepo repositories.InquiryRepository,
	clientService ClientService,
	logger *zap.Logger,
) InquiryService {
	return &inquiryServiceImpl{
		inquiryRepo:   inquiryRepo,
		clientService: clientService,
		logger:        logger,
	}
}

// Create tạo inquiry mới từ form công khai
func (s *inquiryServiceImpl) Create(ctx context.Context, input CreateInquiryInput) (*models.Inquiry, error) {
	if strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" ||
		strings.TrimSpace(input.Email) == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "first_name, last_name and email are required")
	}
	if !input.ProjectType.IsValid() {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "invalid project_type")
	}

	inquiry := &models.Inquiry{
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Email:       strings.TrimSpace(input.Email),
		Phone:       input.Phone,
		ProjectType: input.ProjectType,
		Budget:      input.Budget,
		Message:     input.Message,
		Status:      models.InquiryStatusNew,
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	s.logger.Info("inquiry received",
		zap.String("inquiry_id", inquiry.ID.String()),
		zap.String("project_type", string(inquiry.ProjectType)),
	)

	return inquiry, nil
}

// Get tìm inquiry theo ID
func (s *inquiryServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	inquiry, err := s.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find inquiry: %w", err)
	}
	return inquiry, nil
}

// List lấy danh sách inquiries với filter status
func (s *inquiryServiceImpl) List(ctx context.Context, input ListInquiriesInput) ([]models.Inquiry, int64, error) {
	filters := map[string]interface{}{}
	if input.Status != "" {
		filters["status"] = input.Status
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	inquiries, total, err := s.inquiryRepo.List(ctx, repositories.FindOptions{
		Offset:  (page - 1) * limit,
		Limit:   limit,
		Filters: filters,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list inquiries: %w", err)
	}
	return inquiries, total, nil
}

// UpdateStatus đổi trạng thái xử lý
func (s *inquiryServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status models.InquiryStatus) (*models.Inquiry, error) {
	if !status.IsValid() {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "invalid status")
	}

	inquiry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	inquiry.Status = status
	if err := s.inquiryRepo.Update(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("update inquiry: %w", err)
	}
	return inquiry, nil
}

// Convert chuyển inquiry thành Client mới
func (s *inquiryServiceImpl) Convert(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	inquiry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry.IsConverted() {
		return nil, apperrors.New(apperrors.ErrConflict, "inquiry already converted")
	}

	client, err := s.clientService.Create(ctx, CreateClientInput{
		FirstName: inquiry.FirstName,
		LastName:  inquiry.LastName,
		Email:     inquiry.Email,
		Phone:     inquiry.Phone,
		Notes:     inquiry.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("convert inquiry: %w", err)
	}

	inquiry.ClientID = &client.ID
	inquiry.Status = models.InquiryStatusConverted
	if err := s.inquiryRepo.Update(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("link converted inquiry: %w", err)
	}

	s.logger.Info("inquiry converted",
		zap.String("inquiry_id", inquiry.ID.String()),
		zap.String("client_id", client.ID.String()),
	)

	return client, nil
}
