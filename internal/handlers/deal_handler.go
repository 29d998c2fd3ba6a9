package handlers

import (
	"net/http"

	"noithat-backend/internal/dto"
	"noithat-backend/internal/middleware"
	"noithat-backend/internal/models"
	"noithat-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ===========================================================================
// Deal Handler
// Thương vụ đàm phán gắn với client
// ===========================================================================

// DealHandler xử lý các endpoint deal
type DealHandler struct {
	dealService services.DealService
	logger      *zap.Logger
}

// NewDealHandler tạo deal handler mới
func NewDealHandler(dealService services.DealService, logger *zap.Logger) *DealHandler {
	return &DealHandler{
		dealService: dealService,
		logger:      logger,
	}
}

// ===========================================================================
// Request DTOs
// ===========================================================================

// CreateDealRequest body để tạo deal
type CreateDealRequest struct {
	ProjectID         *string         `json:"project_id"`
	Title             string          `json:"title" binding:"required"`
	Value             decimal.Decimal `json:"value" binding:"required"`
	Stage             string          `json:"stage"`
	Probability       *int            `json:"probability"`
	ExpectedCloseDate string          `json:"expected_close_date"`
	Description       string          `json:"description"`
	Terms             string          `json:"terms"`
	Notes             string          `json:"notes"`
	AssignedTo        *string         `json:"assigned_to"`
}

// UpdateDealRequest body để cập nhật deal; trường vắng = giữ nguyên
type UpdateDealRequest struct {
	Title             *string          `json:"title"`
	Value             *decimal.Decimal `json:"value"`
	Probability       *int             `json:"probability"`
	ExpectedCloseDate *string          `json:"expected_close_date"`
	ActualCloseDate   *string          `json:"actual_close_date"`
	Description       *string          `json:"description"`
	Terms             *string          `json:"terms"`
	Notes             *string          `json:"notes"`
	AssignedTo        *string          `json:"assigned_to"`
}

// TransitionDealRequest body để chuyển stage
type TransitionDealRequest struct {
	Stage           string `json:"stage" binding:"required"`
	LostReason      string `json:"lost_reason"`
	ActualCloseDate string `json:"actual_close_date"`
}

func parseOptionalUUID(value *string) (*uuid.UUID, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// ===========================================================================
// Handlers
// ===========================================================================

// Create tạo deal mới cho client
// POST /api/clients/:id/deals
func (h *DealHandler) Create(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	projectID, ok := parseOptionalUUID(req.ProjectID)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "project_id không hợp lệ"))
		return
	}
	assignedTo, ok := parseOptionalUUID(req.AssignedTo)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "assigned_to không hợp lệ"))
		return
	}
	expectedCloseDate, err := parseDate(req.ExpectedCloseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "expected_close_date không hợp lệ"))
		return
	}

	input := services.CreateDealInput{
		ClientID:          clientID,
		ProjectID:         projectID,
		Title:             req.Title,
		Value:             req.Value,
		Stage:             models.DealStage(req.Stage),
		Probability:       req.Probability,
		ExpectedCloseDate: expectedCloseDate,
		Description:       req.Description,
		Terms:             req.Terms,
		Notes:             req.Notes,
		AssignedTo:        assignedTo,
	}
	if userID, ok := middleware.GetUserID(c); ok {
		input.CreatedBy = &userID
	}

	deal, err := h.dealService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success(deal))
}

// ListByClient lấy các deals của client
// GET /api/clients/:id/deals?page=&limit=
func (h *DealHandler) ListByClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, limit := parsePagination(c)

	deals, total, err := h.dealService.ListByClient(c.Request.Context(), clientID, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessWithMeta(deals, dto.NewMeta(page, limit, total)))
}

// ListByStage lấy các deals theo stage (pipeline view)
// GET /api/deals?stage=proposal&page=&limit=
func (h *DealHandler) ListByStage(c *gin.Context) {
	stage := c.Query("stage")
	if stage == "" {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "stage là bắt buộc"))
		return
	}
	page, limit := parsePagination(c)

	deals, total, err := h.dealService.ListByStage(c.Request.Context(), models.DealStage(stage), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessWithMeta(deals, dto.NewMeta(page, limit, total)))
}

// Get lấy chi tiết deal
// GET /api/deals/:id
func (h *DealHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deal, err := h.dealService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(deal))
}

// Update cập nhật deal (không đổi stage)
// PUT /api/deals/:id
func (h *DealHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	input := services.UpdateDealInput{
		Title:       req.Title,
		Value:       req.Value,
		Probability: req.Probability,
		Description: req.Description,
		Terms:       req.Terms,
		Notes:       req.Notes,
	}
	if req.ExpectedCloseDate != nil {
		date, err := parseDate(*req.ExpectedCloseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "expected_close_date không hợp lệ"))
			return
		}
		input.ExpectedCloseDate = date
	}
	if req.ActualCloseDate != nil {
		date, err := parseDate(*req.ActualCloseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "actual_close_date không hợp lệ"))
			return
		}
		input.ActualCloseDate = date
	}
	if req.AssignedTo != nil {
		assignedTo, ok := parseOptionalUUID(req.AssignedTo)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "assigned_to không hợp lệ"))
			return
		}
		input.AssignedTo = assignedTo
	}

	deal, err := h.dealService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(deal))
}

// TransitionStage chuyển deal sang stage khác
// PUT /api/deals/:id/stage
func (h *DealHandler) TransitionStage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TransitionDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	actualCloseDate, err := parseDate(req.ActualCloseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "actual_close_date không hợp lệ"))
		return
	}

	deal, err := h.dealService.TransitionStage(c.Request.Context(), id, services.TransitionDealInput{
		Stage:           models.DealStage(req.Stage),
		LostReason:      req.LostReason,
		ActualCloseDate: actualCloseDate,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(deal))
}

// ===========================================================================
// Route Registration
// ===========================================================================

// RegisterRoutes đăng ký routes cho deals
func (h *DealHandler) RegisterRoutes(rg *gin.RouterGroup, mws ...gin.HandlerFunc) {
	group := rg.Group("", mws...)
	{
		group.GET("/clients/:id/deals", h.ListByClient)
		group.POST("/clients/:id/deals", h.Create)
		group.GET("/deals", h.ListByStage)
		group.GET("/deals/:id", h.Get)
		group.PUT("/deals/:id", h.Update)
		group.PUT("/deals/:id/stage", h.TransitionStage)
	}
}
