package services

import (
	"context"
	"sort"
	"testing"

	apperrors "noithat-backend/internal/errors"
	"noithat-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Fake registry repository (in-memory)
// ===========================================================================

type fakeStageRepo struct {
	entries []*models.PipelineStage
}

func newFakeStageRepo() *fakeStageRepo {
	return &fakeStageRepo{}
}

func (f *fakeStageRepo) List(ctx context.Context) ([]models.PipelineStage, error) {
	// sort_order ASC, tie-break theo thứ tự tạo
	sorted := make([]*models.PipelineStage, len(f.entries))
	copy(sorted, f.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	result := make([]models.PipelineStage, 0, len(sorted))
	for _, e := range sorted {
		result = append(result, *e)
	}
	return result, nil
}

func (f *fakeStageRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.PipelineStage, error) {
	for _, e := range f.entries {
		if e.ID == id {
			entry := *e
			return &entry, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStageRepo) FindByValue(ctx context.Context, value string) (*models.PipelineStage, error) {
	for _, e := range f.entries {
		if e.Value == value {
			entry := *e
			return &entry, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStageRepo) Create(ctx context.Context, entry *models.PipelineStage) error {
	for _, e := range f.entries {
		if e.Value == entry.Value {
			return gorm.ErrDuplicatedKey
		}
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	stored := *entry
	f.entries = append(f.entries, &stored)
	return nil
}

func (f *fakeStageRepo) UpdateColumns(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error {
	for _, e := range f.entries {
		if e.ID != id {
			continue
		}
		if v, ok := changes["value"]; ok {
			e.Value = v.(string)
		}
		if v, ok := changes["label_en"]; ok {
			e.LabelEn = v.(string)
		}
		if v, ok := changes["label_vi"]; ok {
			e.LabelVi = v.(string)
		}
		if v, ok := changes["sort_order"]; ok {
			e.SortOrder = v.(int)
		}
		if v, ok := changes["is_active"]; ok {
			active := v.(bool)
			e.IsActive = &active
		}
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func newStageService(repo *fakeStageRepo, inUse InUseCounter) RegistryService[models.PipelineStage] {
	return NewRegistryService[models.PipelineStage](repo, inUse, zap.NewNop(), "pipeline_stage")
}

// ===========================================================================
// Tests
// ===========================================================================

func TestRegistryServiceCreateRequiresValue(t *testing.T) {
	svc := newStageService(newFakeStageRepo(), nil)

	err := svc.Create(context.Background(), &models.PipelineStage{Value: "   "})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestRegistryServiceCreateRejectsDuplicateValue(t *testing.T) {
	repo := newFakeStageRepo()
	svc := newStageService(repo, nil)

	require.NoError(t, svc.Create(context.Background(), &models.PipelineStage{Value: "lead", LabelEn: "Lead"}))

	err := svc.Create(context.Background(), &models.PipelineStage{Value: "lead", LabelEn: "Lead again"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEntry)
}

func TestRegistryServiceListOrderedBySortOrder(t *testing.T) {
	repo := newFakeStageRepo()
	svc := newStageService(repo, nil)
	ctx := context.Background()

	// Tạo không theo thứ tự, hai entry trùng sort_order
	require.NoError(t, svc.Create(ctx, &models.PipelineStage{Value: "contract", SortOrder: 3}))
	require.NoError(t, svc.Create(ctx, &models.PipelineStage{Value: "lead", SortOrder: 1}))
	require.NoError(t, svc.Create(ctx, &models.PipelineStage{Value: "prospect", SortOrder: 1}))

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// sort_order ASC, trùng thì theo thứ tự tạo ("lead" trước "prospect")
	assert.Equal(t, "lead", entries[0].Value)
	assert.Equal(t, "prospect", entries[1].Value)
	assert.Equal(t, "contract", entries[2].Value)
}

func TestRegistryServiceUpdatePatchesOnlyGivenFields(t *testing.T) {
	repo := newFakeStageRepo()
	svc := newStageService(repo, nil)
	ctx := context.Background()

	entry := &models.PipelineStage{Value: "lead", LabelEn: "Lead", LabelVi: "Khách tiềm năng", SortOrder: 1}
	require.NoError(t, svc.Create(ctx, entry))

	newLabel := "Khách mới"
	newOrder := 9
	updated, err := svc.Update(ctx, entry.ID, models.RegistryPatch{
		LabelVi:   &newLabel,
		SortOrder: &newOrder,
	})
	require.NoError(t, err)

	assert.Equal(t, "lead", updated.Value)
	assert.Equal(t, "Lead", updated.LabelEn)
	assert.Equal(t, "Khách mới", updated.LabelVi)
	assert.Equal(t, 9, updated.SortOrder)
}

func TestRegistryServiceUpdateRejectsDuplicateValue(t *testing.T) {
	repo := newFakeStageRepo()
	svc := newStageService(repo, nil)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &models.PipelineStage{Value: "lead"}))
	second := &models.PipelineStage{Value: "prospect"}
	require.NoError(t, svc.Create(ctx, second))

	taken := "lead"
	_, err := svc.Update(ctx, second.ID, models.RegistryPatch{Value: &taken})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEntry)
}

func TestRegistryServiceDeleteRestrictedWhenInUse(t *testing.T) {
	repo := newFakeStageRepo()
	inUse := func(ctx context.Context, value string) (int64, error) {
		if value == "lead" {
			return 3, nil
		}
		return 0, nil
	}
	svc := newStageService(repo, inUse)
	ctx := context.Background()

	entry := &models.PipelineStage{Value: "lead"}
	require.NoError(t, svc.Create(ctx, entry))

	err := svc.Delete(ctx, entry.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// Entry vẫn còn sau khi delete bị từ chối
	_, err = svc.Get(ctx, entry.ID)
	assert.NoError(t, err)
}

func TestRegistryServiceDeleteUnusedValue(t *testing.T) {
	repo := newFakeStageRepo()
	inUse := func(ctx context.Context, value string) (int64, error) {
		return 0, nil
	}
	svc := newStageService(repo, inUse)
	ctx := context.Background()

	entry := &models.PipelineStage{Value: "aftercare"}
	require.NoError(t, svc.Create(ctx, entry))

	require.NoError(t, svc.Delete(ctx, entry.ID))

	_, err := svc.Get(ctx, entry.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRegistryServiceGetUnknownIDReturnsNotFound(t *testing.T) {
	svc := newStageService(newFakeStageRepo(), nil)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
