package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"noithat-backend/internal/dto"
	apperrors "noithat-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Handler helpers
// Các hàm dùng chung cho mọi handler: map error sang response, parse param
// ===========================================================================

// respondError map error sang HTTP status + error code chuẩn
// AppError và sentinel errors giữ nguyên status của chúng;
// lỗi GORM lọt qua service được map phòng hờ; còn lại là 500
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, dto.Error(appErr.Code, appErr.Message))
		return
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, dto.Error("NOT_FOUND", "Resource không tồn tại"))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, dto.Error("DUPLICATE_ENTRY", "Dữ liệu đã tồn tại"))
	default:
		status := apperrors.StatusCode(err)
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				zap.Error(err),
				zap.String("path", c.FullPath()),
			)
			c.JSON(status, dto.Error("INTERNAL_ERROR", "Đã có lỗi xảy ra"))
			return
		}
		c.JSON(status, dto.Error(apperrors.ErrorCode(err), err.Error()))
	}
}

// parseIDParam parse UUID từ path param; trả false nếu không hợp lệ
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "ID không hợp lệ"))
		return uuid.Nil, false
	}
	return id, true
}

// parseDate parse ngày từ request, chấp nhận RFC3339 hoặc "2006-01-02"
// Chuỗi rỗng trả về nil
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parsePagination đọc page/limit từ query string
func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
