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
// Inquiry Handler
// Form liên hệ công khai + xử lý inquiry của admin
// ===========================================================================

// InquiryHandler xử lý các endpoint inquiry
type InquiryHandler struct {
	inquiryService services.InquiryService
	logger         *zap.Logger
}

// NewInquiryHandler tạo inquiry handler mới
func NewInquiryHandler(inquiryService services.InquiryService, logger *zap.Logger) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
		logger:         logger,
	}
}

// ===========================================================================
// Request DTOs
// ===========================================================================

// CreateInquiryRequest body từ form liên hệ công khai
type CreateInquiryRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"project_type" binding:"required"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
}

// UpdateInquiryRequest body để đổi trạng thái xử lý
type UpdateInquiryRequest struct {
	Status string `json:"status" binding:"required"`
}

// ===========================================================================
// Handlers
// ===========================================================================

// Create nhận inquiry từ form liên hệ (public, không cần auth)
// POST /api/inquiries
func (h *InquiryHandler) Create(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	inquiry, err := h.inquiryService.Create(c.Request.Context(), services.CreateInquiryInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: models.ProjectType(req.ProjectType),
		Budget:      req.Budget,
		Message:     req.Message,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success(inquiry))
}

// Get lấy chi tiết inquiry
// GET /api/inquiries/:id
func (h *InquiryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	inquiry, err := h.inquiryService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(inquiry))
}

// List lấy danh sách inquiries với filter status
// GET /api/inquiries?status=&page=&limit=
func (h *InquiryHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	inquiries, total, err := h.inquiryService.List(c.Request.Context(), services.ListInquiriesInput{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessWithMeta(inquiries, dto.NewMeta(page, limit, total)))
}

// Update đổi trạng thái xử lý
// PUT /api/inquiries/:id
func (h *InquiryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	inquiry, err := h.inquiryService.UpdateStatus(c.Request.Context(), id, models.InquiryStatus(req.Status))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(inquiry))
}

// Convert chuyển inquiry thành client
// POST /api/inquiries/:id/convert
func (h *InquiryHandler) Convert(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	client, err := h.inquiryService.Convert(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success(client))
}

// ===========================================================================
// Route Registration
// ===========================================================================

// RegisterRoutes đăng ký routes cho inquiries
// POST collection là public (form liên hệ), còn lại yêu cầu admin
func (h *InquiryHandler) RegisterRoutes(rg *gin.RouterGroup, mws ...gin.HandlerFunc) {
	rg.POST("/inquiries", h.Create)

	inquiries := rg.Group("/inquiries", mws...)
	{
		inquiries.GET("", h.List)
		inquiries.GET("/:id", h.Get)
		inquiries.PUT("/:id", h.Update)
		inquiries.POST("/:id/convert", h.Convert)
	}
}
