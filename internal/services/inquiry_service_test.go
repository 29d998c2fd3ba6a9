package services

import (
	"context"
	"testing"

	apperrors "noithat-backend/internal/errors"
	"noithat-backend/internal/models"
	"noithat-backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Fake inquiry repository (in-memory)
// ===========================================================================

type fakeInquiryRepo struct {
	inquiries map[uuid.UUID]*models.Inquiry
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: make(map[uuid.UUID]*models.Inquiry)}
}

func (f *fakeInquiryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	if i, ok := f.inquiries[id]; ok {
		stored := *i
		return &stored, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeInquiryRepo) List(ctx context.Context, opts repositories.FindOptions) ([]models.Inquiry, int64, error) {
	var result []models.Inquiry
	for _, i := range f.inquiries {
		if v, ok := opts.Filters["status"]; ok && string(i.Status) != v.(string) {
			continue
		}
		result = append(result, *i)
	}
	return result, int64(len(result)), nil
}

func (f *fakeInquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.ID == uuid.Nil {
		inquiry.ID = uuid.New()
	}
	stored := *inquiry
	f.inquiries[inquiry.ID] = &stored
	return nil
}

func (f *fakeInquiryRepo) Update(ctx context.Context, inquiry *models.Inquiry) error {
	if _, ok := f.inquiries[inquiry.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *inquiry
	f.inquiries[inquiry.ID] = &stored
	return nil
}

func newInquiryFixture(t *testing.T) (InquiryService, *fakeInquiryRepo, *fakeClientRepo) {
	t.Helper()
	inquiryRepo := newFakeInquiryRepo()
	clientRepo := newFakeClientRepo()
	clientService := NewClientService(clientRepo, zap.NewNop())
	return NewInquiryService(inquiryRepo, clientService, zap.NewNop()), inquiryRepo, clientRepo
}

// ===========================================================================
// Tests
// ===========================================================================

func TestInquiryServiceCreateStartsAsNew(t *testing.T) {
	svc, _, _ := newInquiryFixture(t)

	inquiry, err := svc.Create(context.Background(), CreateInquiryInput{
		FirstName:   "An",
		LastName:    "Nguyễn",
		Email:       "an@example.com",
		ProjectType: models.ProjectTypeResidential,
		Message:     "Cần tư vấn thiết kế căn hộ 2PN",
	})
	require.NoError(t, err)

	assert.Equal(t, models.InquiryStatusNew, inquiry.Status)
	assert.False(t, inquiry.IsConverted())
}

func TestInquiryServiceCreateRejectsUnknownProjectType(t *testing.T) {
	svc, _, _ := newInquiryFixture(t)

	_, err := svc.Create(context.Background(), CreateInquiryInput{
		FirstName:   "An",
		LastName:    "Nguyễn",
		Email:       "an@example.com",
		ProjectType: "landscaping",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestInquiryServiceUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newInquiryFixture(t)
	ctx := context.Background()

	inquiry, err := svc.Create(ctx, CreateInquiryInput{
		FirstName: "An", LastName: "Nguyễn", Email: "an@example.com",
		ProjectType: models.ProjectTypeCommercial,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, inquiry.ID, "spam")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestInquiryServiceConvertCreatesClient(t *testing.T) {
	svc, inquiryRepo, clientRepo := newInquiryFixture(t)
	ctx := context.Background()

	inquiry, err := svc.Create(ctx, CreateInquiryInput{
		FirstName:   "An",
		LastName:    "Nguyễn",
		Email:       "an@example.com",
		Phone:       "0901234567",
		ProjectType: models.ProjectTypeResidential,
		Message:     "Cần tư vấn",
	})
	require.NoError(t, err)

	client, err := svc.Convert(ctx, inquiry.ID)
	require.NoError(t, err)

	// Client kế thừa thông tin liên hệ và nhận defaults CRM
	assert.Equal(t, "An", client.FirstName)
	assert.Equal(t, "an@example.com", client.Email)
	assert.Equal(t, "Cần tư vấn", client.Notes)
	assert.Equal(t, models.DefaultClientStage, client.Stage)
	assert.Contains(t, clientRepo.clients, client.ID)

	// Inquiry được liên kết và đánh dấu converted
	linked := inquiryRepo.inquiries[inquiry.ID]
	require.NotNil(t, linked.ClientID)
	assert.Equal(t, client.ID, *linked.ClientID)
	assert.Equal(t, models.InquiryStatusConverted, linked.Status)
}

func TestInquiryServiceConvertTwiceConflicts(t *testing.T) {
	svc, _, _ := newInquiryFixture(t)
	ctx := context.Background()

	inquiry, err := svc.Create(ctx, CreateInquiryInput{
		FirstName: "An", LastName: "Nguyễn", Email: "an@example.com",
		ProjectType: models.ProjectTypeConsultation,
	})
	require.NoError(t, err)

	_, err = svc.Convert(ctx, inquiry.ID)
	require.NoError(t, err)

	_, err = svc.Convert(ctx, inquiry.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestInquiryServiceListFiltersByStatus(t *testing.T) {
	svc, _, _ := newInquiryFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateInquiryInput{
		FirstName: "An", LastName: "Nguyễn", Email: "an@example.com",
		ProjectType: models.ProjectTypeResidential,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInquiryInput{
		FirstName: "Bình", LastName: "Trần", Email: "binh@example.com",
		ProjectType: models.ProjectTypeArchitecture,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, first.ID, models.InquiryStatusContacted)
	require.NoError(t, err)

	contacted, total, err := svc.List(ctx, ListInquiriesInput{Status: "contacted"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, contacted, 1)
	assert.Equal(t, first.ID, contacted[0].ID)
}
