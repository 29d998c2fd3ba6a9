package handlers

import (
	"net/http"

	"noithat-backend/internal/dto"
	"noithat-backend/internal/middleware"
	"noithat-backend/internal/models"
	"noithat-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Interaction Handler
// Nhật ký tương tác của client
// ===========================================================================

// InteractionHandler xử lý các endpoint interaction
type InteractionHandler struct {
	interactionService services.InteractionService
	logger             *zap.Logger
}

// NewInteractionHandler tạo interaction handler mới
func NewInteractionHandler(interactionService services.InteractionService, logger *zap.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
		logger:             logger,
	}
}

// ===========================================================================
// Request DTOs
// ===========================================================================

// CreateInteractionRequest body để ghi tương tác
type CreateInteractionRequest struct {
	Type           string   `json:"type" binding:"required"`
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Date           string   `json:"date"`
	Duration       int      `json:"duration"`
	Location       string   `json:"location"`
	AssignedTo     string   `json:"assigned_to"`
	Outcome        string   `json:"outcome"`
	NextAction     string   `json:"next_action"`
	NextActionDate string   `json:"next_action_date"`
	Attachments    []string `json:"attachments"`
}

// UpdateInteractionRequest body để sửa tương tác; trường vắng = giữ nguyên
type UpdateInteractionRequest struct {
	Type           *string   `json:"type"`
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Date           *string   `json:"date"`
	Duration       *int      `json:"duration"`
	Location       *string   `json:"location"`
	AssignedTo     *string   `json:"assigned_to"`
	Outcome        *string   `json:"outcome"`
	NextAction     *string   `json:"next_action"`
	NextActionDate *string   `json:"next_action_date"`
	Attachments    *[]string `json:"attachments"`
}

// ===========================================================================
// Handlers
// ===========================================================================

// Create ghi tương tác mới cho client
// POST /api/clients/:id/interactions
func (h *InteractionHandler) Create(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "date không hợp lệ"))
		return
	}
	nextActionDate, err := parseDate(req.NextActionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "next_action_date không hợp lệ"))
		return
	}

	input := services.CreateInteractionInput{
		ClientID:       clientID,
		Type:           models.InteractionType(req.Type),
		Title:          req.Title,
		Description:    req.Description,
		Duration:       req.Duration,
		Location:       req.Location,
		AssignedTo:     req.AssignedTo,
		Outcome:        req.Outcome,
		NextAction:     req.NextAction,
		NextActionDate: nextActionDate,
		Attachments:    req.Attachments,
	}
	if date != nil {
		input.Date = *date
	}
	if userID, ok := middleware.GetUserID(c); ok {
		input.CreatedBy = &userID
	}

	interaction, err := h.interactionService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success(interaction))
}

// ListByClient lấy nhật ký của client, mới nhất trước
// GET /api/clients/:id/interactions?page=&limit=
func (h *InteractionHandler) ListByClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, limit := parsePagination(c)

	interactions, total, err := h.interactionService.ListByClient(c.Request.Context(), clientID, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessWithMeta(interactions, dto.NewMeta(page, limit, total)))
}

// Get lấy chi tiết interaction
// GET /api/interactions/:id
func (h *InteractionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	interaction, err := h.interactionService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(interaction))
}

// Update sửa tương tác đã ghi
// PUT /api/interactions/:id
func (h *InteractionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	input := services.UpdateInteractionInput{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Location:    req.Location,
		AssignedTo:  req.AssignedTo,
		Outcome:     req.Outcome,
		NextAction:  req.NextAction,
		Attachments: req.Attachments,
	}
	if req.Type != nil {
		t := models.InteractionType(*req.Type)
		input.Type = &t
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "date không hợp lệ"))
			return
		}
		input.Date = date
	}
	if req.NextActionDate != nil {
		date, err := parseDate(*req.NextActionDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "next_action_date không hợp lệ"))
			return
		}
		input.NextActionDate = date
	}

	interaction, err := h.interactionService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(interaction))
}

// ===========================================================================
// Route Registration
// ===========================================================================

// RegisterRoutes đăng ký routes cho interactions
func (h *InteractionHandler) RegisterRoutes(rg *gin.RouterGroup, mws ...gin.HandlerFunc) {
	group := rg.Group("", mws...)
	{
		group.GET("/clients/:id/interactions", h.ListByClient)
		group.POST("/clients/:id/interactions", h.Create)
		group.GET("/interactions/:id", h.Get)
		group.PUT("/interactions/:id", h.Update)
	}
}
