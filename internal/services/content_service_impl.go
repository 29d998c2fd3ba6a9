package services

import (
	"context"
	"errors"
	"fmt"

	apperrors "noithat-backend/internal/errors"
	"noithat-backend/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Content Service Implementation
// ===========================================================================

// contentServiceImpl implements ContentService
type contentServiceImpl[T any] struct {
	repo   repositories.ContentRepository[T]
	logger *zap.Logger
	kind   string // tên resource cho log ("category", "partner", ...)
}

// NewContentService creates a new ContentService
func NewContentService[T any](
	repo repositories.ContentRepository[T],
	logger *zap.Logger,
	kind string,
) ContentService[T] {
	return &contentServiceImpl[T]{
		repo:   repo,
		logger: logger,
		kind:   kind,
	}
}

// List trả về tất cả resources
func (s *contentServiceImpl[T]) List(ctx context.Context, filters map[string]interface{}) ([]T, error) {
	entities, err := s.repo.List(ctx, repositories.FindOptions{Filters: filters})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	return entities, nil
}

// Get tìm resource theo ID
func (s *contentServiceImpl[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", s.kind, err)
	}
	return entity, nil
}

// Create tạo resource mới
func (s *contentServiceImpl[T]) Create(ctx context.Context, entity *T) error {
	if err := s.repo.Create(ctx, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.New(apperrors.ErrDuplicateEntry, "resource already exists")
		}
		return fmt.Errorf("create %s: %w", s.kind, err)
	}

	s.logger.Info("content resource created", zap.String("resource", s.kind))
	return nil
}

// Update cập nhật resource
func (s *contentServiceImpl[T]) Update(ctx context.Context, id uuid.UUID, entity *T) (*T, error) {
	if err := s.repo.Update(ctx, id, entity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.New(apperrors.ErrDuplicateEntry, "resource already exists")
		}
		return nil, fmt.Errorf("update %s: %w", s.kind, err)
	}
	return s.Get(ctx, id)
}

// Delete xóa resource
func (s *contentServiceImpl[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("delete %s: %w", s.kind, err)
	}

	s.logger.Info("content resource deleted",
		zap.String("resource", s.kind),
		zap.String("id", id.String()),
	)
	return nil
}
