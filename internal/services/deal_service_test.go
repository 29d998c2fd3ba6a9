package services

import (
	"context"
	"testing"

	apperrors "noithat-backend/internal/errors"
	"noithat-backend/internal/models"
	"noithat-backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Fake deal repository (in-memory)
// ===========================================================================

type fakeDealRepo struct {
	deals map[uuid.UUID]*models.Deal
}

func newFakeDealRepo() *fakeDealRepo {
	return &fakeDealRepo{deals: make(map[uuid.UUID]*models.Deal)}
}

func (f *fakeDealRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Deal, error) {
	if d, ok := f.deals[id]; ok {
		deal := *d
		return &deal, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDealRepo) FindByClient(ctx context.Context, clientID uuid.UUID, opts repositories.FindOptions) ([]models.Deal, int64, error) {
	var result []models.Deal
	for _, d := range f.deals {
		if d.ClientID == clientID {
			result = append(result, *d)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeDealRepo) FindByStage(ctx context.Context, stage models.DealStage, opts repositories.FindOptions) ([]models.Deal, int64, error) {
	var result []models.Deal
	for _, d := range f.deals {
		if d.Stage == stage {
			result = append(result, *d)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeDealRepo) Create(ctx context.Context, deal *models.Deal) error {
	if deal.ID == uuid.Nil {
		deal.ID = uuid.New()
	}
	stored := *deal
	f.deals[deal.ID] = &stored
	return nil
}

func (f *fakeDealRepo) Update(ctx context.Context, deal *models.Deal) error {
	if _, ok := f.deals[deal.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *deal
	f.deals[deal.ID] = &stored
	return nil
}

func newDealFixture(t *testing.T) (DealService, *fakeDealRepo, *models.Client) {
	t.Helper()
	clientRepo := newFakeClientRepo()
	client := clientRepo.add(&models.Client{FirstName: "An", LastName: "Nguyễn", Email: "an@example.com"})
	dealRepo := newFakeDealRepo()
	return NewDealService(dealRepo, clientRepo, zap.NewNop()), dealRepo, client
}

// ===========================================================================
// Tests
// ===========================================================================

func TestDealServiceCreateAppliesDefaults(t *testing.T) {
	svc, _, client := newDealFixture(t)

	deal, err := svc.Create(context.Background(), CreateDealInput{
		ClientID: client.ID,
		Title:    "Thi công căn hộ Quận 7",
		Value:    decimal.NewFromInt(250_000_000),
	})
	require.NoError(t, err)

	assert.Equal(t, models.DealStageProposal, deal.Stage)
	assert.Equal(t, 50, deal.Probability)
}

func TestDealServiceCreateRequiresPositiveValue(t *testing.T) {
	svc, _, client := newDealFixture(t)

	_, err := svc.Create(context.Background(), CreateDealInput{
		ClientID: client.ID,
		Title:    "Deal",
		Value:    decimal.Zero,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestDealServiceCreateRejectsProbabilityOutOfRange(t *testing.T) {
	svc, _, client := newDealFixture(t)

	probability := 120
	_, err := svc.Create(context.Background(), CreateDealInput{
		ClientID:    client.ID,
		Title:       "Deal",
		Value:       decimal.NewFromInt(1000),
		Probability: &probability,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestDealServiceCreateUnknownClient(t *testing.T) {
	svc, _, _ := newDealFixture(t)

	_, err := svc.Create(context.Background(), CreateDealInput{
		ClientID: uuid.New(),
		Title:    "Deal",
		Value:    decimal.NewFromInt(1000),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDealServiceTransitionToLostRequiresReason(t *testing.T) {
	svc, _, client := newDealFixture(t)
	ctx := context.Background()

	deal, err := svc.Create(ctx, CreateDealInput{
		ClientID: client.ID,
		Title:    "Deal",
		Value:    decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	_, err = svc.TransitionStage(ctx, deal.ID, TransitionDealInput{Stage: models.DealStageLost})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestDealServiceTransitionToLostStoresReason(t *testing.T) {
	svc, _, client := newDealFixture(t)
	ctx := context.Background()

	deal, err := svc.Create(ctx, CreateDealInput{
		ClientID: client.ID,
		Title:    "Deal",
		Value:    decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	lost, err := svc.TransitionStage(ctx, deal.ID, TransitionDealInput{
		Stage:      models.DealStageLost,
		LostReason: "Khách chọn đơn vị khác",
	})
	require.NoError(t, err)

	assert.Equal(t, models.DealStageLost, lost.Stage)
	assert.Equal(t, "Khách chọn đơn vị khác", lost.LostReason)
	assert.Nil(t, lost.ActualCloseDate)
}

func TestDealServiceTransitionRejectsUnknownStage(t *testing.T) {
	svc, _, client := newDealFixture(t)
	ctx := context.Background()

	deal, err := svc.Create(ctx, CreateDealInput{
		ClientID: client.ID,
		Title:    "Deal",
		Value:    decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	_, err = svc.TransitionStage(ctx, deal.ID, TransitionDealInput{Stage: "stalled"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestDealServiceListByStageRejectsInvalidStage(t *testing.T) {
	svc, _, _ := newDealFixture(t)

	_, _, err := svc.ListByStage(context.Background(), "stalled", 1, 20)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestDealServiceListByClientUnknownClient(t *testing.T) {
	svc, _, _ := newDealFixture(t)

	_, _, err := svc.ListByClient(context.Background(), uuid.New(), 1, 20)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
