package handlers

import (
	"net/http"

	"noithat-backend/internal/dto"
	"noithat-backend/internal/middleware"
	"noithat-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ===========================================================================
// Article Handler
// Bài viết: đọc public, ghi yêu cầu đăng nhập
// Khách vãng lai chỉ thấy bài đã publish
// ===========================================================================

// ArticleHandler xử lý các endpoint article
type ArticleHandler struct {
	articleService services.ArticleService
	logger         *zap.Logger
}

// NewArticleHandler tạo article handler mới
func NewArticleHandler(articleService services.ArticleService, logger *zap.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		logger:         logger,
	}
}

// ===========================================================================
// Request DTOs
// ===========================================================================

// CreateArticleRequest body để tạo article
type CreateArticleRequest struct {
	Slug          string  `json:"slug"`
	TitleEn       string  `json:"title_en"`
	TitleVi       string  `json:"title_vi"`
	ExcerptEn     string  `json:"excerpt_en"`
	ExcerptVi     string  `json:"excerpt_vi"`
	BodyEn        string  `json:"body_en"`
	BodyVi        string  `json:"body_vi"`
	CoverImageURL string  `json:"cover_image_url"`
	CategoryID    *string `json:"category_id"`
	IsPublished   bool    `json:"is_published"`
}

// UpdateArticleRequest body để cập nhật article; trường vắng = giữ nguyên
type UpdateArticleRequest struct {
	Slug          *string `json:"slug"`
	TitleEn       *string `json:"title_en"`
	TitleVi       *string `json:"title_vi"`
	ExcerptEn     *string `json:"excerpt_en"`
	ExcerptVi     *string `json:"excerpt_vi"`
	BodyEn        *string `json:"body_en"`
	BodyVi        *string `json:"body_vi"`
	CoverImageURL *string `json:"cover_image_url"`
	CategoryID    *string `json:"category_id"`
	IsPublished   *bool   `json:"is_published"`
}

// ===========================================================================
// Handlers
// ===========================================================================

// Create tạo article mới
// POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	categoryID, ok := parseOptionalUUID(req.CategoryID)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "category_id không hợp lệ"))
		return
	}

	input := services.CreateArticleInput{
		Slug:          req.Slug,
		TitleEn:       req.TitleEn,
		TitleVi:       req.TitleVi,
		ExcerptEn:     req.ExcerptEn,
		ExcerptVi:     req.ExcerptVi,
		BodyEn:        req.BodyEn,
		BodyVi:        req.BodyVi,
		CoverImageURL: req.CoverImageURL,
		CategoryID:    categoryID,
		IsPublished:   req.IsPublished,
	}
	if userID, ok := middleware.GetUserID(c); ok {
		input.AuthorID = &userID
	}

	article, err := h.articleService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success(article))
}

// List lấy danh sách articles, mới nhất trước
// GET /api/articles?category_id=&page=&limit=
// Khách vãng lai chỉ thấy articles đã publish
func (h *ArticleHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	_, authenticated := middleware.GetUserID(c)

	input := services.ListArticlesInput{
		PublishedOnly: !authenticated,
		Page:          page,
		Limit:         limit,
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "category_id không hợp lệ"))
			return
		}
		input.CategoryID = &id
	}

	articles, total, err := h.articleService.List(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessWithMeta(articles, dto.NewMeta(page, limit, total)))
}

// Get lấy chi tiết article theo ID hoặc slug
// GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	param := c.Param("id")
	_, authenticated := middleware.GetUserID(c)

	if id, err := uuid.Parse(param); err == nil {
		article, err := h.articleService.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		if !authenticated && !article.IsPublished {
			c.JSON(http.StatusNotFound, dto.Error("NOT_FOUND", "Bài viết không tồn tại"))
			return
		}
		c.JSON(http.StatusOK, dto.Success(article))
		return
	}

	article, err := h.articleService.GetBySlug(c.Request.Context(), param, !authenticated)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(article))
}

// Update cập nhật article
// PUT /api/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	input := services.UpdateArticleInput{
		Slug:          req.Slug,
		TitleEn:       req.TitleEn,
		TitleVi:       req.TitleVi,
		ExcerptEn:     req.ExcerptEn,
		ExcerptVi:     req.ExcerptVi,
		BodyEn:        req.BodyEn,
		BodyVi:        req.BodyVi,
		CoverImageURL: req.CoverImageURL,
		IsPublished:   req.IsPublished,
	}
	if req.CategoryID != nil {
		categoryID, ok := parseOptionalUUID(req.CategoryID)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "category_id không hợp lệ"))
			return
		}
		input.CategoryID = categoryID
	}

	article, err := h.articleService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(article))
}

// Delete xóa article
// DELETE /api/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"message": "Đã xóa"}))
}

// ===========================================================================
// Route Registration
// ===========================================================================

// RegisterRoutes đăng ký routes cho articles
func (h *ArticleHandler) RegisterRoutes(rg *gin.RouterGroup, optionalAuth, authMiddleware gin.HandlerFunc) {
	articles := rg.Group("/articles")
	{
		articles.GET("", optionalAuth, h.List)
		articles.GET("/:id", optionalAuth, h.Get)
		articles.POST("", authMiddleware, h.Create)
		articles.PUT("/:id", authMiddleware, h.Update)
		articles.DELETE("/:id", authMiddleware, h.Delete)
	}
}
