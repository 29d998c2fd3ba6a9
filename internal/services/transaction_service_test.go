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
// Fake transaction repository (in-memory)
// RecordWithRollup áp dụng đúng contract rollup của bản GORM:
// payment → total_spending + order_count, refund → refund_amount,
// commission → commission; chỉ tính khi status = completed; payment của
// khách được giới thiệu cộng referral_revenue cho người giới thiệu
// ===========================================================================

type fakeTransactionRepo struct {
	clients *fakeClientRepo
	txns    map[uuid.UUID]*models.Transaction
}

func newFakeTransactionRepo(clients *fakeClientRepo) *fakeTransactionRepo {
	return &fakeTransactionRepo{
		clients: clients,
		txns:    make(map[uuid.UUID]*models.Transaction),
	}
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	if txn, ok := f.txns[id]; ok {
		stored := *txn
		return &stored, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTransactionRepo) FindByClient(ctx context.Context, clientID uuid.UUID, opts repositories.FindOptions) ([]models.Transaction, int64, error) {
	var result []models.Transaction
	for _, txn := range f.txns {
		if txn.ClientID == clientID {
			result = append(result, *txn)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeTransactionRepo) RecordWithRollup(ctx context.Context, txn *models.Transaction) error {
	client, ok := f.clients.clients[txn.ClientID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	stored := *txn
	f.txns[txn.ID] = &stored

	if !txn.CountsTowardRollup() {
		return nil
	}

	switch txn.Type {
	case models.TransactionPayment:
		client.TotalSpending = client.TotalSpending.Add(txn.Amount)
		client.OrderCount++
		if client.ReferredByID != nil {
			if referrer, ok := f.clients.clients[*client.ReferredByID]; ok {
				referrer.ReferralRevenue = referrer.ReferralRevenue.Add(txn.Amount)
			}
		}
	case models.TransactionRefund:
		client.RefundAmount = client.RefundAmount.Add(txn.Amount)
	case models.TransactionCommission:
		client.Commission = client.Commission.Add(txn.Amount)
	}
	return nil
}

func newTransactionFixture(t *testing.T) (TransactionService, *fakeClientRepo, *models.Client) {
	t.Helper()
	clientRepo := newFakeClientRepo()
	client := clientRepo.add(&models.Client{FirstName: "An", LastName: "Nguyễn", Email: "an@example.com"})
	txnRepo := newFakeTransactionRepo(clientRepo)
	return NewTransactionService(txnRepo, clientRepo, zap.NewNop()), clientRepo, client
}

// ===========================================================================
// Tests
// ===========================================================================

func TestTransactionServiceRecordAppliesDefaults(t *testing.T) {
	svc, _, client := newTransactionFixture(t)

	before := time.Now()
	txn, err := svc.Record(context.Background(), RecordTransactionInput{
		ClientID: client.ID,
		Title:    "Đợt 1 hợp đồng thi công",
		Amount:   decimal.NewFromInt(50_000_000),
		Type:     models.TransactionPayment,
	})
	require.NoError(t, err)

	assert.Equal(t, models.TransactionCompleted, txn.Status)
	assert.False(t, txn.PaymentDate.Before(before))
}

func TestTransactionServiceRecordRejectsInvalidInput(t *testing.T) {
	svc, _, client := newTransactionFixture(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input RecordTransactionInput
	}{
		{
			name:  "empty title",
			input: RecordTransactionInput{ClientID: client.ID, Title: " ", Amount: decimal.NewFromInt(1), Type: models.TransactionPayment},
		},
		{
			name:  "zero amount",
			input: RecordTransactionInput{ClientID: client.ID, Title: "x", Amount: decimal.Zero, Type: models.TransactionPayment},
		},
		{
			name:  "negative amount",
			input: RecordTransactionInput{ClientID: client.ID, Title: "x", Amount: decimal.NewFromInt(-10), Type: models.TransactionRefund},
		},
		{
			name:  "unknown type",
			input: RecordTransactionInput{ClientID: client.ID, Title: "x", Amount: decimal.NewFromInt(10), Type: "gift"},
		},
		{
			name:  "unknown status",
			input: RecordTransactionInput{ClientID: client.ID, Title: "x", Amount: decimal.NewFromInt(10), Type: models.TransactionPayment, Status: "draft"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(ctx, tc.input)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestTransactionServiceRecordUnknownClient(t *testing.T) {
	svc, _, _ := newTransactionFixture(t)

	_, err := svc.Record(context.Background(), RecordTransactionInput{
		ClientID: uuid.New(),
		Title:    "x",
		Amount:   decimal.NewFromInt(10),
		Type:     models.TransactionPayment,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransactionServiceRollupArithmetic(t *testing.T) {
	svc, clientRepo, client := newTransactionFixture(t)
	ctx := context.Background()

	record := func(txnType models.TransactionType, amount int64, status models.TransactionStatus) {
		t.Helper()
		_, err := svc.Record(ctx, RecordTransactionInput{
			ClientID: client.ID,
			Title:    "txn",
			Amount:   decimal.NewFromInt(amount),
			Type:     txnType,
			Status:   status,
		})
		require.NoError(t, err)
	}

	record(models.TransactionPayment, 100, models.TransactionCompleted)
	record(models.TransactionPayment, 250, models.TransactionCompleted)
	record(models.TransactionRefund, 40, models.TransactionCompleted)
	record(models.TransactionCommission, 15, models.TransactionCompleted)

	// Giao dịch pending nằm trong ledger nhưng không vào rollup
	record(models.TransactionPayment, 999, models.TransactionPending)

	updated := clientRepo.clients[client.ID]
	assert.True(t, updated.TotalSpending.Equal(decimal.NewFromInt(350)),
		"total_spending = %s", updated.TotalSpending)
	assert.True(t, updated.RefundAmount.Equal(decimal.NewFromInt(40)))
	assert.True(t, updated.Commission.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 2, updated.OrderCount)
}

func TestTransactionServiceRollupCreditsReferrer(t *testing.T) {
	clientRepo := newFakeClientRepo()
	referrer := clientRepo.add(&models.Client{FirstName: "A", LastName: "A", Email: "a@example.com"})
	client := clientRepo.add(&models.Client{
		FirstName: "B", LastName: "B", Email: "b@example.com",
		ReferredByID: &referrer.ID,
	})
	svc := NewTransactionService(newFakeTransactionRepo(clientRepo), clientRepo, zap.NewNop())

	_, err := svc.Record(context.Background(), RecordTransactionInput{
		ClientID: client.ID,
		Title:    "Đợt 1",
		Amount:   decimal.NewFromInt(500),
		Type:     models.TransactionPayment,
	})
	require.NoError(t, err)

	assert.True(t, clientRepo.clients[referrer.ID].ReferralRevenue.Equal(decimal.NewFromInt(500)))

	// Refund không ảnh hưởng referral_revenue
	_, err = svc.Record(context.Background(), RecordTransactionInput{
		ClientID: client.ID,
		Title:    "Hoàn tiền",
		Amount:   decimal.NewFromInt(100),
		Type:     models.TransactionRefund,
	})
	require.NoError(t, err)
	assert.True(t, clientRepo.clients[referrer.ID].ReferralRevenue.Equal(decimal.NewFromInt(500)))
}
