package handlers

import (
	"net/http"

	"noithat-backend/internal/dto"
	"noithat-backend/internal/middleware"
	"noithat-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Content Handler
// Generic CRUD cho các CMS resource đơn giản; mount tại
// /categories, /services, /partners, /homepage-content, /about-*
// Đọc public, ghi yêu cầu đăng nhập
// ===========================================================================

// ContentHandlerOptions tùy biến handler theo shape của resource
type ContentHandlerOptions[T any] struct {
	// HasActive resource có cột is_active; khách vãng lai chỉ thấy active
	HasActive bool

	// HasKind resource có cột kind lọc được qua query (?kind=project)
	HasKind bool

	// Normalize chỉnh entity trước khi ghi (VD: sinh slug cho Category)
	Normalize func(*T)
}

// ContentHandler xử lý endpoints cho một content resource
type ContentHandler[T any] struct {
	service services.ContentService[T]
	opts    ContentHandlerOptions[T]
	logger  *zap.Logger
}

// NewContentHandler tạo content handler mới
func NewContentHandler[T any](
	service services.ContentService[T],
	opts ContentHandlerOptions[T],
	logger *zap.Logger,
) *ContentHandler[T] {
	return &ContentHandler[T]{
		service: service,
		opts:    opts,
		logger:  logger,
	}
}

// List trả về tất cả resources theo thứ tự hiển thị
// GET /api/<resource>
func (h *ContentHandler[T]) List(c *gin.Context) {
	filters := map[string]interface{}{}

	// Khách vãng lai chỉ thấy resource đang bật
	if h.opts.HasActive {
		if _, authenticated := middleware.GetUserID(c); !authenticated {
			filters["is_active"] = true
		}
	}
	if h.opts.HasKind {
		if kind := c.Query("kind"); kind != "" {
			filters["kind"] = kind
		}
	}

	entities, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(entities))
}

// Get lấy chi tiết resource
// GET /api/<resource>/:id
func (h *ContentHandler[T]) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entity, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(entity))
}

// Create tạo resource mới
// POST /api/<resource>
func (h *ContentHandler[T]) Create(c *gin.Context) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}
	if h.opts.Normalize != nil {
		h.opts.Normalize(&entity)
	}

	if err := h.service.Create(c.Request.Context(), &entity); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success(entity))
}

// Update cập nhật resource
// PUT /api/<resource>/:id
func (h *ContentHandler[T]) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}
	if h.opts.Normalize != nil {
		h.opts.Normalize(&entity)
	}

	updated, err := h.service.Update(c.Request.Context(), id, &entity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(updated))
}

// Delete xóa resource
// DELETE /api/<resource>/:id
func (h *ContentHandler[T]) Delete(c *gin.Context) {
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

// RegisterRoutes đăng ký routes cho resource tại path cho trước
func (h *ContentHandler[T]) RegisterRoutes(rg *gin.RouterGroup, path string, optionalAuth, authMiddleware gin.HandlerFunc) {
	group := rg.Group(path)
	{
		group.GET("", optionalAuth, h.List)
		group.GET("/:id", optionalAuth, h.Get)
		group.POST("", authMiddleware, h.Create)
		group.PUT("/:id", authMiddleware, h.Update)
		group.DELETE("/:id", authMiddleware, h.Delete)
	}
}
