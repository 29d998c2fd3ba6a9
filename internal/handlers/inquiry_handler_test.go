package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"noithat-backend/internal/dto"
	"noithat-backend/internal/models"
	"noithat-backend/internal/repositories"
	"noithat-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// In-memory repos để chạy service thật phía sau handler
// ===========================================================================

type memInquiryRepo struct {
	inquiries map[uuid.UUID]*models.Inquiry
}

func (m *memInquiryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	if i, ok := m.inquiries[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memInquiryRepo) List(ctx context.Context, opts repositories.FindOptions) ([]models.Inquiry, int64, error) {
	var result []models.Inquiry
	for _, i := range m.inquiries {
		result = append(result, *i)
	}
	return result, int64(len(result)), nil
}

func (m *memInquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.ID == uuid.Nil {
		inquiry.ID = uuid.New()
	}
	m.inquiries[inquiry.ID] = inquiry
	return nil
}

func (m *memInquiryRepo) Update(ctx context.Context, inquiry *models.Inquiry) error {
	if _, ok := m.inquiries[inquiry.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.inquiries[inquiry.ID] = inquiry
	return nil
}

type memClientRepo struct {
	clients map[uuid.UUID]*models.Client
}

func (m *memClientRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	if c, ok := m.clients[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memClientRepo) List(ctx context.Context, opts repositories.FindOptions) ([]models.Client, int64, error) {
	var result []models.Client
	for _, c := range m.clients {
		result = append(result, *c)
	}
	return result, int64(len(result)), nil
}

func (m *memClientRepo) Create(ctx context.Context, client *models.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	m.clients[client.ID] = client
	return nil
}

func (m *memClientRepo) Update(ctx context.Context, client *models.Client) error {
	m.clients[client.ID] = client
	return nil
}

func (m *memClientRepo) UpdateColumns(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error {
	return nil
}

func (m *memClientRepo) SetReferredBy(ctx context.Context, clientID, referrerID uuid.UUID) error {
	client, ok := m.clients[clientID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	client.ReferredByID = &referrerID
	return nil
}

func (m *memClientRepo) CountByStage(ctx context.Context, stage string) (int64, error)   { return 0, nil }
func (m *memClientRepo) CountByTier(ctx context.Context, tier string) (int64, error)     { return 0, nil }
func (m *memClientRepo) CountByStatus(ctx context.Context, status string) (int64, error) { return 0, nil }

func newHandlerInquiryFixture(t *testing.T) (services.InquiryService, *memInquiryRepo, *memClientRepo) {
	t.Helper()
	inquiryRepo := &memInquiryRepo{inquiries: make(map[uuid.UUID]*models.Inquiry)}
	clientRepo := &memClientRepo{clients: make(map[uuid.UUID]*models.Client)}
	clientService := services.NewClientService(clientRepo, zap.NewNop())
	return services.NewInquiryService(inquiryRepo, clientService, zap.NewNop()), inquiryRepo, clientRepo
}

// inquiryRouter dựng router tối thiểu với route public POST /api/inquiries
func inquiryRouter(svc services.InquiryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewInquiryHandler(svc, zap.NewNop()).RegisterRoutes(api)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestInquiryHandlerCreateAcceptsValidForm(t *testing.T) {
	svc, _, _ := newHandlerInquiryFixture(t)
	router := inquiryRouter(svc)

	w := postJSON(t, router, "/api/inquiries", gin.H{
		"first_name":   "An",
		"last_name":    "Nguyễn",
		"email":        "an@example.com",
		"project_type": "residential",
		"message":      "Cần tư vấn thiết kế",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestInquiryHandlerCreateRejectsUnknownProjectType(t *testing.T) {
	svc, _, _ := newHandlerInquiryFixture(t)
	router := inquiryRouter(svc)

	w := postJSON(t, router, "/api/inquiries", gin.H{
		"first_name":   "An",
		"last_name":    "Nguyễn",
		"email":        "an@example.com",
		"project_type": "landscaping",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestInquiryHandlerCreateRejectsMissingFields(t *testing.T) {
	svc, _, _ := newHandlerInquiryFixture(t)
	router := inquiryRouter(svc)

	// Thiếu email và project_type, binding từ chối trước khi tới service
	w := postJSON(t, router, "/api/inquiries", gin.H{
		"first_name": "An",
		"last_name":  "Nguyễn",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
