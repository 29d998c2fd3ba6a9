package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"noithat-backend/internal/models"
	"noithat-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ===========================================================================
// Stub registry service ghi lại entry được Create
// ===========================================================================

type stubStageService struct {
	created *models.PipelineStage
}

func (s *stubStageService) List(ctx context.Context) ([]models.PipelineStage, error) {
	return nil, nil
}

func (s *stubStageService) Get(ctx context.Context, id uuid.UUID) (*models.PipelineStage, error) {
	return nil, nil
}

func (s *stubStageService) Create(ctx context.Context, entry *models.PipelineStage) error {
	s.created = entry
	return nil
}

func (s *stubStageService) Update(ctx context.Context, id uuid.UUID, patch models.RegistryPatch) (*models.PipelineStage, error) {
	return nil, nil
}

func (s *stubStageService) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

var _ services.RegistryService[models.PipelineStage] = (*stubStageService)(nil)

func registryRouter(svc services.RegistryService[models.PipelineStage]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewRegistryHandler(svc, zap.NewNop()).RegisterRoutes(api, "/crm-pipeline-stages")
	return router
}

func TestRegistryHandlerCreateBuildsEntryFromRequest(t *testing.T) {
	svc := &stubStageService{}
	router := registryRouter(svc)

	w := postJSON(t, router, "/api/crm-pipeline-stages", gin.H{
		"value":    "lead",
		"label_en": "Lead",
		"label_vi": "Tiềm năng",
		"order":    1,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "lead", svc.created.Value)
	assert.Equal(t, "Tiềm năng", svc.created.LabelVi)
	assert.Equal(t, 1, svc.created.SortOrder)
}

func TestRegistryHandlerCreateIgnoresServerFields(t *testing.T) {
	svc := &stubStageService{}
	router := registryRouter(svc)

	// id và created_at do server sinh; gửi trong body phải bị bỏ qua
	w := postJSON(t, router, "/api/crm-pipeline-stages", gin.H{
		"id":         uuid.New().String(),
		"created_at": time.Now().Add(-24 * time.Hour).Format(time.RFC3339),
		"value":      "lead",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, uuid.Nil, svc.created.ID)
	assert.True(t, svc.created.CreatedAt.IsZero())
}

func TestRegistryHandlerCreateRequiresValue(t *testing.T) {
	svc := &stubStageService{}
	router := registryRouter(svc)

	w := postJSON(t, router, "/api/crm-pipeline-stages", gin.H{
		"label_en": "Lead",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.created)

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
