package handlers

import (
	"net/http"

	"noithat-backend/internal/dto"
	"noithat-backend/internal/models"
	"noithat-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Registry Handler
// Generic CRUD cho ba registry CRM; mount tại
// /crm-pipeline-stages, /crm-customer-tiers, /crm-statuses
// ===========================================================================

// RegistryHandler xử lý endpoints cho một registry
type RegistryHandler[T models.RegistryEntry] struct {
	service services.RegistryService[T]
	logger  *zap.Logger
}

// NewRegistryHandler tạo registry handler mới
func NewRegistryHandler[T models.RegistryEntry](
	service services.RegistryService[T],
	logger *zap.Logger,
) *RegistryHandler[T] {
	return &RegistryHandler[T]{
		service: service,
		logger:  logger,
	}
}

// List trả về tất cả entries theo sort order
// GET /api/crm-pipeline-stages (và tương tự)
func (h *RegistryHandler[T]) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(entries))
}

// ===========================================================================
// Request DTOs
// ===========================================================================

// CreateRegistryEntryRequest body để tạo registry entry
// Bind qua DTO thay vì model để client không inject được id/timestamps
type CreateRegistryEntryRequest struct {
	Value     string `json:"value" binding:"required"`
	LabelEn   string `json:"label_en"`
	LabelVi   string `json:"label_vi"`
	SortOrder int    `json:"order"`
	IsActive  *bool  `json:"active"`
}

// newRegistryEntry dựng entry T từ request; T là một trong ba registry model
func newRegistryEntry[T models.RegistryEntry](req CreateRegistryEntryRequest) T {
	var entry T
	switch e := any(&entry).(type) {
	case *models.PipelineStage:
		e.Value = req.Value
		e.LabelEn = req.LabelEn
		e.LabelVi = req.LabelVi
		e.SortOrder = req.SortOrder
		e.IsActive = req.IsActive
	case *models.CustomerTier:
		e.Value = req.Value
		e.LabelEn = req.LabelEn
		e.LabelVi = req.LabelVi
		e.SortOrder = req.SortOrder
		e.IsActive = req.IsActive
	case *models.CrmStatus:
		e.Value = req.Value
		e.LabelEn = req.LabelEn
		e.LabelVi = req.LabelVi
		e.SortOrder = req.SortOrder
		e.IsActive = req.IsActive
	}
	return entry
}

// Create tạo entry mới
// POST /api/crm-pipeline-stages (và tương tự)
func (h *RegistryHandler[T]) Create(c *gin.Context) {
	var req CreateRegistryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	entry := newRegistryEntry[T](req)
	if err := h.service.Create(c.Request.Context(), &entry); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success(entry))
}

// Update cập nhật một phần entry
// PUT /api/crm-pipeline-stages/:id (và tương tự)
func (h *RegistryHandler[T]) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch models.RegistryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	entry, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(entry))
}

// Delete xóa entry; 409 nếu value đang được Client sử dụng
// DELETE /api/crm-pipeline-stages/:id (và tương tự)
func (h *RegistryHandler[T]) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"message": "Đã xóa"}))
}

// RegisterRoutes đăng ký routes cho registry tại path cho trước
// Tất cả đều yêu cầu admin
func (h *RegistryHandler[T]) RegisterRoutes(rg *gin.RouterGroup, path string, mws ...gin.HandlerFunc) {
	group := rg.Group(path, mws...)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
