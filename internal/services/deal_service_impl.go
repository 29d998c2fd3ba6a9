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
// Deal Service Implementation
// ===========================================================================

// dealServiceImpl implements DealService
type dealServiceImpl struct {
	dealRepo   repositories.DealRepository
	clientRepo repositories.ClientRepository
	logger     *zap.Logger
}

// NewDealService creates a new DealService
func NewDealService(
	dealRepo repositories.DealRepository,
	clientRepo repositories.ClientRepository,
	logger *zap.Logger,
) DealService {
	return &dealServiceImpl{
		dealRepo:   dealRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create tạo deal mới
func (s *dealServiceImpl) Create(ctx context.Context, input CreateDealInput) (*models.Deal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "title is required")
	}
	if !input.Value.IsPositive() {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "value must be greater than zero")
	}

	stage := input.Stage
	if stage == "" {
		stage = models.DealStageProposal
	}
	if !stage.IsValid() {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "invalid stage")
	}

	probability := 50
	if input.Probability != nil {
		probability = *input.Probability
	}
	if probability < 0 || probability > 100 {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "probability must be between 0 and 100")
	}

	// Client phải tồn tại
	if _, err := s.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrNotFound, "client not found")
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	deal := &models.Deal{
		ClientID:          input.ClientID,
		ProjectID:         input.ProjectID,
		Title:             strings.TrimSpace(input.Title),
		Value:             input.Value,
		Stage:             stage,
		Probability:       probability,
		ExpectedCloseDate: input.ExpectedCloseDate,
		Description:       input.Description,
		Terms:             input.Terms,
		Notes:             input.Notes,
		AssignedTo:        input.AssignedTo,
		CreatedBy:         input.CreatedBy,
	}

	if err := s.dealRepo.Create(ctx, deal); err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}

	s.logger.Info("deal created",
		zap.String("deal_id", deal.ID.String()),
		zap.String("client_id", deal.ClientID.String()),
		zap.String("value", deal.Value.String()),
	)

	return deal, nil
}

// Get tìm deal theo ID
func (s *dealServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Deal, error) {
	deal, err := s.dealRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find deal: %w", err)
	}
	return deal, nil
}

// ListByClient lấy các deals của một client
func (s *dealServiceImpl) ListByClient(ctx context.Context, clientID uuid.UUID, page, limit int) ([]models.Deal, int64, error) {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperrors.New(apperrors.ErrNotFound, "client not found")
		}
		return nil, 0, fmt.Errorf("find client: %w", err)
	}

	deals, total, err := s.dealRepo.FindByClient(ctx, clientID, pageOptions(page, limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list deals: %w", err)
	}
	return deals, total, nil
}

// ListByStage lấy các deals đang ở một stage
func (s *dealServiceImpl) ListByStage(ctx context.Context, stage models.DealStage, page, limit int) ([]models.Deal, int64, error) {
	if !stage.IsValid() {
		return nil, 0, apperrors.New(apperrors.ErrInvalidInput, "invalid stage")
	}

	deals, total, err := s.dealRepo.FindByStage(ctx, stage, pageOptions(page, limit))
	if err != nil {
		return nil, 0, fmt.Errorf("list deals: %w", err)
	}
	return deals, total, nil
}

// Update cập nhật deal
func (s *dealServiceImpl) Update(ctx context.Context, id uuid.UUID, input UpdateDealInput) (*models.Deal, error) {
	deal, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "title is required")
		}
		deal.Title = strings.TrimSpace(*input.Title)
	}
	if input.Value != nil {
		if !input.Value.IsPositive() {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "value must be greater than zero")
		}
		deal.Value = *input.Value
	}
	if input.Probability != nil {
		if *input.Probability < 0 || *input.Probability > 100 {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "probability must be between 0 and 100")
		}
		deal.Probability = *input.Probability
	}
	if input.ExpectedCloseDate != nil {
		deal.ExpectedCloseDate = input.ExpectedCloseDate
	}
	if input.ActualCloseDate != nil {
		deal.ActualCloseDate = input.ActualCloseDate
	}
	if input.Description != nil {
		deal.Description = *input.Description
	}
	if input.Terms != nil {
		deal.Terms = *input.Terms
	}
	if input.Notes != nil {
		deal.Notes = *input.Notes
	}
	if input.AssignedTo != nil {
		deal.AssignedTo = input.AssignedTo
	}

	if err := s.dealRepo.Update(ctx, deal); err != nil {
		return nil, fmt.Errorf("update deal: %w", err)
	}
	return deal, nil
}

// TransitionStage chuyển deal sang stage khác
func (s *dealServiceImpl) TransitionStage(ctx context.Context, id uuid.UUID, input TransitionDealInput) (*models.Deal, error) {
	if !input.Stage.IsValid() {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "invalid stage")
	}
	if input.Stage == models.DealStageLost && strings.TrimSpace(input.LostReason) == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "lost_reason is required when marking a deal lost")
	}

	deal, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	deal.Stage = input.Stage
	if input.Stage == models.DealStageLost {
		deal.LostReason = strings.TrimSpace(input.LostReason)
	}
	// ActualCloseDate do caller đặt, không tự suy ra từ stage
	if input.ActualCloseDate != nil {
		deal.ActualCloseDate = input.ActualCloseDate
	}

	if err := s.dealRepo.Update(ctx, deal); err != nil {
		return nil, fmt.Errorf("transition deal: %w", err)
	}

	s.logger.Info("deal stage changed",
		zap.String("deal_id", deal.ID.String()),
		zap.String("stage", string(deal.Stage)),
	)

	return deal, nil
}

// pageOptions chuyển page/limit thành FindOptions
func pageOptions(page, limit int) repositories.FindOptions {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return repositories.FindOptions{
		Offset: (page - 1) * limit,
		Limit:  limit,
	}
}
