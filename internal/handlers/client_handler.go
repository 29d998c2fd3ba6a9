package handlers

import (
	"net/http"

	"noithat-backend/internal/dto"
	"noithat-backend/internal/models"
	"noithat-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ===========================================================================
// Client Handler
// CRUD khách hàng CRM và liên kết giới thiệu
// ===========================================================================

// ClientHandler xử lý các endpoint client
type ClientHandler struct {
	clientService services.ClientService
	logger        *zap.Logger
}

// NewClientHandler tạo client handler mới
func NewClientHandler(clientService services.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		logger:        logger,
	}
}

// ===========================================================================
// Request DTOs
// ===========================================================================

// CreateClientRequest body để tạo client
type CreateClientRequest struct {
	FirstName      string   `json:"first_name" binding:"required"`
	LastName       string   `json:"last_name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone"`
	Company        string   `json:"company"`
	Address        string   `json:"address"`
	DateOfBirth    string   `json:"date_of_birth"`
	Stage          string   `json:"stage"`
	Tier           string   `json:"tier"`
	Status         string   `json:"status"`
	WarrantyStatus string   `json:"warranty_status"`
	WarrantyExpiry string   `json:"warranty_expiry"`
	Notes          string   `json:"notes"`
	Tags           []string `json:"tags"`
	ReferredByID   *string  `json:"referred_by_id"`
}

// UpdateClientRequest body để cập nhật client; trường vắng = giữ nguyên
type UpdateClientRequest struct {
	FirstName      *string   `json:"first_name"`
	LastName       *string   `json:"last_name"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	Company        *string   `json:"company"`
	Address        *string   `json:"address"`
	DateOfBirth    *string   `json:"date_of_birth"`
	Stage          *string   `json:"stage"`
	Tier           *string   `json:"tier"`
	Status         *string   `json:"status"`
	WarrantyStatus *string   `json:"warranty_status"`
	WarrantyExpiry *string   `json:"warranty_expiry"`
	Notes          *string   `json:"notes"`
	Tags           *[]string `json:"tags"`
}

// SetReferrerRequest body để gán người giới thiệu
type SetReferrerRequest struct {
	ReferrerID string `json:"referrer_id" binding:"required,uuid"`
}

// ===========================================================================
// Handlers
// ===========================================================================

// Create tạo client mới
// POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "date_of_birth không hợp lệ"))
		return
	}
	warrantyExpiry, err := parseDate(req.WarrantyExpiry)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "warranty_expiry không hợp lệ"))
		return
	}

	var referredByID *uuid.UUID
	if req.ReferredByID != nil && *req.ReferredByID != "" {
		id, err := uuid.Parse(*req.ReferredByID)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "referred_by_id không hợp lệ"))
			return
		}
		referredByID = &id
	}

	client, err := h.clientService.Create(c.Request.Context(), services.CreateClientInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Company:        req.Company,
		Address:        req.Address,
		DateOfBirth:    dateOfBirth,
		Stage:          req.Stage,
		Tier:           req.Tier,
		Status:         req.Status,
		WarrantyStatus: models.WarrantyStatus(req.WarrantyStatus),
		WarrantyExpiry: warrantyExpiry,
		Notes:          req.Notes,
		Tags:           req.Tags,
		ReferredByID:   referredByID,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success(client))
}

// Get lấy chi tiết client
// GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(client))
}

// List lấy danh sách clients với filter stage/tier/status
// GET /api/clients?stage=&tier=&status=&page=&limit=
func (h *ClientHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	clients, total, err := h.clientService.List(c.Request.Context(), services.ListClientsInput{
		Stage:  c.Query("stage"),
		Tier:   c.Query("tier"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessWithMeta(clients, dto.NewMeta(page, limit, total)))
}

// Update cập nhật client
// PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	input := services.UpdateClientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Address:   req.Address,
		Stage:     req.Stage,
		Tier:      req.Tier,
		Status:    req.Status,
		Notes:     req.Notes,
		Tags:      req.Tags,
	}

	if req.DateOfBirth != nil {
		date, err := parseDate(*req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "date_of_birth không hợp lệ"))
			return
		}
		input.DateOfBirth = date
	}
	if req.WarrantyExpiry != nil {
		date, err := parseDate(*req.WarrantyExpiry)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "warranty_expiry không hợp lệ"))
			return
		}
		input.WarrantyExpiry = date
	}
	if req.WarrantyStatus != nil {
		status := models.WarrantyStatus(*req.WarrantyStatus)
		input.WarrantyStatus = &status
	}

	client, err := h.clientService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(client))
}

// SetReferrer gán người giới thiệu
// PUT /api/clients/:id/referrer
func (h *ClientHandler) SetReferrer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SetReferrerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}
	referrerID, err := uuid.Parse(req.ReferrerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "referrer_id không hợp lệ"))
		return
	}

	client, err := h.clientService.SetReferrer(c.Request.Context(), id, referrerID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(client))
}

// ===========================================================================
// Route Registration
// ===========================================================================

// RegisterRoutes đăng ký routes cho clients
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup, mws ...gin.HandlerFunc) {
	clients := rg.Group("/clients", mws...)
	{
		clients.GET("", h.List)
		clients.POST("", h.Create)
		clients.GET("/:id", h.Get)
		clients.PUT("/:id", h.Update)
		clients.PUT("/:id/referrer", h.SetReferrer)
	}
}
