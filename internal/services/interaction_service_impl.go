package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "noithat-backend/internal/errors"
	"noithat-backend/internal/models"
	"noithat-backend/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Interaction Service Implementation
// ===========================================================================

// interactionServiceImpl implements InteractionService
type interactionServiceImpl struct {
	interactionRepo repositories.InteractionRepository
	clientRepo      repositories.ClientRepository
	logger          *zap.Logger
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(
	interactionRepo repositories.InteractionRepository,
	clientRepo repositories.ClientRepository,
	logger *zap.Logger,
) InteractionService {
	return &interactionServiceImpl{
		interactionRepo: interactionRepo,
		clientRepo:      clientRepo,
		logger:          logger,
	}
}

// Create ghi tương tác mới
func (s *interactionServiceImpl) Create(ctx context.Context, input CreateInteractionInput) (*models.Interaction, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "title is required")
	}
	if !input.Type.IsValid() {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "invalid interaction type")
	}

	// Client phải tồn tại
	if _, err := s.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrNotFound, "client not found")
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	interaction := &models.Interaction{
		ClientID:       input.ClientID,
		Type:           input.Type,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Date:           input.Date,
		Duration:       input.Duration,
		Location:       input.Location,
		AssignedTo:     input.AssignedTo,
		Outcome:        input.Outcome,
		NextAction:     input.NextAction,
		NextActionDate: input.NextActionDate,
		Attachments:    input.Attachments,
		CreatedBy:      input.CreatedBy,
	}
	if interaction.Date.IsZero() {
		interaction.Date = time.Now()
	}

	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, fmt.Errorf("create interaction: %w", err)
	}

	s.logger.Info("interaction logged",
		zap.String("interaction_id", interaction.ID.String()),
		zap.String("client_id", interaction.ClientID.String()),
		zap.String("type", string(interaction.Type)),
	)

	return interaction, nil
}

// Get tìm interaction theo ID
func (s *interactionServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Interaction, error) {
	interaction, err := s.interactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find interaction: %w", err)
	}
	return interaction, nil
}

// ListByClient lấy nhật ký của một client
func (s *interactionServiceImpl) ListByClient(ctx context.Context, clientID uuid.UUID, page, limit int) ([]models.Interaction, int64, error) {
	// 404 khi client không tồn tại, thay vì trả list rỗng gây hiểu nhầm
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperrors.New(apperrors.ErrNotFound, "client not found")
		}
		return nil, 0, fmt.Errorf("find client: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	interactions, total, err := s.interactionRepo.FindByClient(ctx, clientID, repositories.FindOptions{
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list interactions: %w", err)
	}
	return interactions, total, nil
}

// Update sửa tương tác đã ghi
func (s *interactionServiceImpl) Update(ctx context.Context, id uuid.UUID, input UpdateInteractionInput) (*models.Interaction, error) {
	interaction, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "invalid interaction type")
		}
		interaction.Type = *input.Type
	}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "title is required")
		}
		interaction.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		interaction.Description = *input.Description
	}
	if input.Date != nil {
		interaction.Date = *input.Date
	}
	if input.Duration != nil {
		interaction.Duration = *input.Duration
	}
	if input.Location != nil {
		interaction.Location = *input.Location
	}
	if input.AssignedTo != nil {
		interaction.AssignedTo = *input.AssignedTo
	}
	if input.Outcome != nil {
		interaction.Outcome = *input.Outcome
	}
	if input.NextAction != nil {
		interaction.NextAction = *input.NextAction
	}
	if input.NextActionDate != nil {
		interaction.NextActionDate = input.NextActionDate
	}
	if input.Attachments != nil {
		interaction.Attachments = *input.Attachments
	}

	if err := s.interactionRepo.Update(ctx, interaction); err != nil {
		return nil, fmt.Errorf("update interaction: %w", err)
	}
	return interaction, nil
}
