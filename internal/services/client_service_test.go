package services

import (
	"context"
	"testing"
	"time"

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
// Fake client repository (in-memory)
// Dùng chung cho client/deal/transaction/inquiry service tests
// ===========================================================================

type fakeClientRepo struct {
	clients map[uuid.UUID]*models.Client

	// saveCalls đếm số lần Update (ghi nguyên struct) được gọi
	saveCalls int

	// lastChanges giữ map cột của lần UpdateColumns gần nhất
	lastChanges map[string]interface{}
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]*models.Client)}
}

// add chèn client trực tiếp, bỏ qua service layer (setup cho tests)
func (f *fakeClientRepo) add(client *models.Client) *models.Client {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	f.clients[client.ID] = client
	return client
}

func (f *fakeClientRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	if c, ok := f.clients[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeClientRepo) List(ctx context.Context, opts repositories.FindOptions) ([]models.Client, int64, error) {
	var result []models.Client
	for _, c := range f.clients {
		if v, ok := opts.Filters["stage"]; ok && c.Stage != v.(string) {
			continue
		}
		if v, ok := opts.Filters["tier"]; ok && c.Tier != v.(string) {
			continue
		}
		if v, ok := opts.Filters["status"]; ok && c.Status != v.(string) {
			continue
		}
		result = append(result, *c)
	}
	return result, int64(len(result)), nil
}

func (f *fakeClientRepo) Create(ctx context.Context, client *models.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) Update(ctx context.Context, client *models.Client) error {
	f.saveCalls++
	if _, ok := f.clients[client.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) UpdateColumns(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error {
	client, ok := f.clients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	f.lastChanges = changes
	for column, value := range changes {
		switch column {
		case "first_name":
			client.FirstName = value.(string)
		case "last_name":
			client.LastName = value.(string)
		case "email":
			client.Email = value.(string)
		case "phone":
			client.Phone = value.(string)
		case "company":
			client.Company = value.(string)
		case "address":
			client.Address = value.(string)
		case "date_of_birth":
			client.DateOfBirth = value.(*time.Time)
		case "stage":
			client.Stage = value.(string)
		case "tier":
			client.Tier = value.(string)
		case "status":
			client.Status = value.(string)
		case "warranty_status":
			client.WarrantyStatus = value.(models.WarrantyStatus)
		case "warranty_expiry":
			client.WarrantyExpiry = value.(*time.Time)
		case "notes":
			client.Notes = value.(string)
		case "tags":
			client.Tags = value.([]string)
		}
	}
	return nil
}

func (f *fakeClientRepo) SetReferredBy(ctx context.Context, clientID, referrerID uuid.UUID) error {
	client, ok := f.clients[clientID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	referrer, ok := f.clients[referrerID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if client.ReferredByID != nil && *client.ReferredByID == referrerID {
		return nil
	}
	if client.ReferredByID != nil {
		if old, ok := f.clients[*client.ReferredByID]; ok && old.ReferralCount > 0 {
			old.ReferralCount--
		}
	}
	client.ReferredByID = &referrerID
	referrer.ReferralCount++
	return nil
}

func (f *fakeClientRepo) CountByStage(ctx context.Context, stage string) (int64, error) {
	var count int64
	for _, c := range f.clients {
		if c.Stage == stage {
			count++
		}
	}
	return count, nil
}

func (f *fakeClientRepo) CountByTier(ctx context.Context, tier string) (int64, error) {
	var count int64
	for _, c := range f.clients {
		if c.Tier == tier {
			count++
		}
	}
	return count, nil
}

func (f *fakeClientRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	for _, c := range f.clients {
		if c.Status == status {
			count++
		}
	}
	return count, nil
}

// ===========================================================================
// Tests
// ===========================================================================

func TestClientServiceCreateAppliesDefaults(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, zap.NewNop())

	client, err := svc.Create(context.Background(), CreateClientInput{
		FirstName: "An",
		LastName:  "Nguyễn",
		Email:     "an@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultClientStage, client.Stage)
	assert.Equal(t, models.DefaultClientTier, client.Tier)
	assert.Equal(t, models.DefaultClientStatus, client.Status)
	assert.Equal(t, models.WarrantyNone, client.WarrantyStatus)
	assert.True(t, client.TotalSpending.IsZero())
}

func TestClientServiceCreateRequiresNameAndEmail(t *testing.T) {
	svc := NewClientService(newFakeClientRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateClientInput{
		FirstName: "An",
		LastName:  "Nguyễn",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestClientServiceCreateRejectsInvalidWarrantyStatus(t *testing.T) {
	svc := NewClientService(newFakeClientRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateClientInput{
		FirstName:      "An",
		LastName:       "Nguyễn",
		Email:          "an@example.com",
		WarrantyStatus: "lifetime",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestClientServiceCreateUnknownReferrerInsertsNothing(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, zap.NewNop())

	ghost := uuid.New()
	_, err := svc.Create(context.Background(), CreateClientInput{
		FirstName:    "An",
		LastName:     "Nguyễn",
		Email:        "an@example.com",
		ReferredByID: &ghost,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Referrer không tồn tại thì không được để lại client mồ côi
	assert.Empty(t, repo.clients)
}

func TestClientServiceUpdateAllowsUnregisteredStage(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, zap.NewNop())

	client := repo.add(&models.Client{
		FirstName: "An", LastName: "Nguyễn", Email: "an@example.com",
		Stage: "lead", Tier: "silver", Status: "active",
	})

	// Stage là chuỗi tự do: value không còn trong registry vẫn hợp lệ
	orphanStage := "legacy-stage"
	updated, err := svc.Update(context.Background(), client.ID, UpdateClientInput{Stage: &orphanStage})
	require.NoError(t, err)
	assert.Equal(t, "legacy-stage", updated.Stage)
}

func TestClientServiceUpdateWritesOnlyEditedColumns(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, zap.NewNop())

	client := repo.add(&models.Client{
		FirstName: "An", LastName: "Nguyễn", Email: "an@example.com",
		TotalSpending: decimal.NewFromInt(100),
		OrderCount:    3,
	})

	name := "Bình"
	updated, err := svc.Update(context.Background(), client.ID, UpdateClientInput{FirstName: &name})
	require.NoError(t, err)

	// Chỉ cột được sửa đi xuống repo; ghi nguyên struct (Save) sẽ chép đè
	// rollup fields mà một RecordWithRollup song song vừa cập nhật
	assert.Zero(t, repo.saveCalls)
	require.Len(t, repo.lastChanges, 1)
	assert.Equal(t, "Bình", repo.lastChanges["first_name"])
	assert.Equal(t, "Bình", updated.FirstName)
	assert.True(t, updated.TotalSpending.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 3, updated.OrderCount)
}

func TestClientServiceSetReferrerRejectsSelf(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, zap.NewNop())

	client := repo.add(&models.Client{FirstName: "An", LastName: "Nguyễn", Email: "an@example.com"})

	_, err := svc.SetReferrer(context.Background(), client.ID, client.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestClientServiceSetReferrerRejectsCycle(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, zap.NewNop())
	ctx := context.Background()

	a := repo.add(&models.Client{FirstName: "A", LastName: "A", Email: "a@example.com"})
	b := repo.add(&models.Client{FirstName: "B", LastName: "B", Email: "b@example.com"})
	c := repo.add(&models.Client{FirstName: "C", LastName: "C", Email: "c@example.com"})

	// a ← b ← c (b giới thiệu bởi a, c giới thiệu bởi b)
	_, err := svc.SetReferrer(ctx, b.ID, a.ID)
	require.NoError(t, err)
	_, err = svc.SetReferrer(ctx, c.ID, b.ID)
	require.NoError(t, err)

	// a giới thiệu bởi c sẽ đóng chu trình a → b → c → a
	_, err = svc.SetReferrer(ctx, a.ID, c.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestClientServiceSetReferrerIncrementsReferralCount(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, zap.NewNop())
	ctx := context.Background()

	referrer := repo.add(&models.Client{FirstName: "A", LastName: "A", Email: "a@example.com"})
	client := repo.add(&models.Client{FirstName: "B", LastName: "B", Email: "b@example.com"})

	updated, err := svc.SetReferrer(ctx, client.ID, referrer.ID)
	require.NoError(t, err)

	require.NotNil(t, updated.ReferredByID)
	assert.Equal(t, referrer.ID, *updated.ReferredByID)
	assert.Equal(t, 1, repo.clients[referrer.ID].ReferralCount)
}

func TestClientServiceSetReferrerRepeatedCallIsNoOp(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, zap.NewNop())
	ctx := context.Background()

	referrer := repo.add(&models.Client{FirstName: "A", LastName: "A", Email: "a@example.com"})
	client := repo.add(&models.Client{FirstName: "B", LastName: "B", Email: "b@example.com"})

	_, err := svc.SetReferrer(ctx, client.ID, referrer.ID)
	require.NoError(t, err)
	_, err = svc.SetReferrer(ctx, client.ID, referrer.ID)
	require.NoError(t, err)

	// Gán lại cùng referrer không được tính thêm lượt giới thiệu
	assert.Equal(t, 1, repo.clients[referrer.ID].ReferralCount)
}

func TestClientServiceSetReferrerReassignMovesCount(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, zap.NewNop())
	ctx := context.Background()

	a := repo.add(&models.Client{FirstName: "A", LastName: "A", Email: "a@example.com"})
	b := repo.add(&models.Client{FirstName: "B", LastName: "B", Email: "b@example.com"})
	client := repo.add(&models.Client{FirstName: "C", LastName: "C", Email: "c@example.com"})

	_, err := svc.SetReferrer(ctx, client.ID, a.ID)
	require.NoError(t, err)

	// Đổi referrer từ a sang b: count của a quay về 0, b lên 1
	updated, err := svc.SetReferrer(ctx, client.ID, b.ID)
	require.NoError(t, err)

	require.NotNil(t, updated.ReferredByID)
	assert.Equal(t, b.ID, *updated.ReferredByID)
	assert.Equal(t, 0, repo.clients[a.ID].ReferralCount)
	assert.Equal(t, 1, repo.clients[b.ID].ReferralCount)
}

func TestClientServiceSetReferrerUnknownReferrer(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, zap.NewNop())

	client := repo.add(&models.Client{FirstName: "A", LastName: "A", Email: "a@example.com"})

	_, err := svc.SetReferrer(context.Background(), client.ID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClientServiceListFiltersByStage(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, zap.NewNop())

	repo.add(&models.Client{FirstName: "A", LastName: "A", Email: "a@example.com", Stage: "lead"})
	repo.add(&models.Client{FirstName: "B", LastName: "B", Email: "b@example.com", Stage: "contract"})

	clients, total, err := svc.List(context.Background(), ListClientsInput{Stage: "contract"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, clients, 1)
	assert.Equal(t, "contract", clients[0].Stage)
}
