package handlers

import (
	"net/http"

	"noithat-backend/internal/dto"
	"noithat-backend/internal/models"
	"noithat-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ===========================================================================
// Transaction Handler
// Sổ thu chi của client
// ===========================================================================

// TransactionHandler xử lý các endpoint transaction
type TransactionHandler struct {
	transactionService services.TransactionService
	logger             *zap.Logger
}

// NewTransactionHandler tạo transaction handler mới
func NewTransactionHandler(transactionService services.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// ===========================================================================
// Request DTOs
// ===========================================================================

// RecordTransactionRequest body để ghi giao dịch
type RecordTransactionRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Status      string          `json:"status"`
	PaymentDate string          `json:"payment_date"`
	Notes       string          `json:"notes"`
}

// ===========================================================================
// Handlers
// ===========================================================================

// Record ghi giao dịch mới cho client, rollup cập nhật atomic
// POST /api/clients/:id/transactions
func (h *TransactionHandler) Record(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "payment_date không hợp lệ"))
		return
	}

	txn, err := h.transactionService.Record(c.Request.Context(), services.RecordTransactionInput{
		ClientID:    clientID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        models.TransactionType(req.Type),
		Status:      models.TransactionStatus(req.Status),
		PaymentDate: paymentDate,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success(txn))
}

// ListByClient lấy lịch sử giao dịch của client, mới nhất trước
// GET /api/clients/:id/transactions?page=&limit=
func (h *TransactionHandler) ListByClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, limit := parsePagination(c)

	txns, total, err := h.transactionService.ListByClient(c.Request.Context(), clientID, page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessWithMeta(txns, dto.NewMeta(page, limit, total)))
}

// Get lấy chi tiết transaction
// GET /api/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	txn, err := h.transactionService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(txn))
}

// ===========================================================================
// Route Registration
// ===========================================================================

// RegisterRoutes đăng ký routes cho transactions
func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup, mws ...gin.HandlerFunc) {
	group := rg.Group("", mws...)
	{
		group.GET("/clients/:id/transactions", h.ListByClient)
		group.POST("/clients/:id/transactions", h.Record)
		group.GET("/transactions/:id", h.Get)
	}
}
