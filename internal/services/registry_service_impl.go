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
// Registry Service Implementation
// ===========================================================================

// registryServiceImpl implements RegistryService
type registryServiceImpl[T models.RegistryEntry] struct {
	repo   repositories.RegistryRepository[T]
	inUse  InUseCounter
	logger *zap.Logger
	kind   string // tên registry cho log ("pipeline_stage", ...)
}

// NewRegistryService creates a new RegistryService
// inUse có thể nil nếu registry không bị Client tham chiếu
func NewRegistryService[T models.RegistryEntry](
	repo repositories.RegistryRepository[T],
	inUse InUseCounter,
	logger *zap.Logger,
	kind string,
) RegistryService[T] {
	return &registryServiceImpl[T]{
		repo:   repo,
		inUse:  inUse,
		logger: logger,
		kind:   kind,
	}
}

// List trả về tất cả entries theo sort order
func (s *registryServiceImpl[T]) List(ctx context.Context) ([]T, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	return entries, nil
}

// Get tìm entry theo ID
func (s *registryServiceImpl[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", s.kind, err)
	}
	return entry, nil
}

// Create tạo entry mới
func (s *registryServiceImpl[T]) Create(ctx context.Context, entry *T) error {
	value := (*entry).GetValue()
	if strings.TrimSpace(value) == "" {
		return apperrors.New(apperrors.ErrInvalidInput, "value is required")
	}

	// Pre-check duplicate để trả lỗi rõ ràng; unique index vẫn là chốt chặn cuối
	if _, err := s.repo.FindByValue(ctx, value); err == nil {
		return apperrors.New(apperrors.ErrDuplicateEntry, "value already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check %s value: %w", s.kind, err)
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.New(apperrors.ErrDuplicateEntry, "value already exists")
		}
		return fmt.Errorf("create %s: %w", s.kind, err)
	}

	s.logger.Info("registry entry created",
		zap.String("registry", s.kind),
		zap.String("value", value),
	)
	return nil
}

// Update cập nhật một phần entry theo patch
func (s *registryServiceImpl[T]) Update(ctx context.Context, id uuid.UUID, patch models.RegistryPatch) (*T, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if patch.Value != nil {
		newValue := strings.TrimSpace(*patch.Value)
		if newValue == "" {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "value is required")
		}
		if newValue != (*current).GetValue() {
			if _, err := s.repo.FindByValue(ctx, newValue); err == nil {
				return nil, apperrors.New(apperrors.ErrDuplicateEntry, "value already exists")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("check %s value: %w", s.kind, err)
			}
		}
		changes["value"] = newValue
	}
	if patch.LabelEn != nil {
		changes["label_en"] = *patch.LabelEn
	}
	if patch.LabelVi != nil {
		changes["label_vi"] = *patch.LabelVi
	}
	if patch.SortOrder != nil {
		changes["sort_order"] = *patch.SortOrder
	}
	if patch.IsActive != nil {
		changes["is_active"] = *patch.IsActive
	}

	if len(changes) > 0 {
		if err := s.repo.UpdateColumns(ctx, id, changes); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.New(apperrors.ErrDuplicateEntry, "value already exists")
			}
			return nil, fmt.Errorf("update %s: %w", s.kind, err)
		}
	}

	return s.Get(ctx, id)
}

// Delete xóa entry; từ chối nếu còn Client tham chiếu value
// Client đang giữ value bị xóa vẫn giữ chuỗi cũ (inert, không lỗi)
func (s *registryServiceImpl[T]) Delete(ctx context.Context, id uuid.UUID) error {
	entry, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if s.inUse != nil {
		count, err := s.inUse(ctx, (*entry).GetValue())
		if err != nil {
			return fmt.Errorf("count %s usage: %w", s.kind, err)
		}
		if count > 0 {
			return apperrors.New(apperrors.ErrConflict,
				fmt.Sprintf("value is in use by %d clients", count))
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("delete %s: %w", s.kind, err)
	}

	s.logger.Info("registry entry deleted",
		zap.String("registry", s.kind),
		zap.String("value", (*entry).GetValue()),
	)
	return nil
}
