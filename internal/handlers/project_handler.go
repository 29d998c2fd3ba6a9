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
// Project Handler
// Portfolio dự án: đọc public, ghi yêu cầu đăng nhập
// Khách vãng lai chỉ thấy dự án đã publish
// ===========================================================================

// ProjectHandler xử lý các endpoint project
type ProjectHandler struct {
	projectService services.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler tạo project handler mới
func NewProjectHandler(projectService services.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// ===========================================================================
// Request DTOs
// ===========================================================================

// CreateProjectRequest body để tạo project
type CreateProjectRequest struct {
	Slug          string   `json:"slug"`
	TitleEn       string   `json:"title_en"`
	TitleVi       string   `json:"title_vi"`
	DescriptionEn string   `json:"description_en"`
	DescriptionVi string   `json:"description_vi"`
	CategoryID    *string  `json:"category_id"`
	Location      string   `json:"location"`
	Area          string   `json:"area"`
	Year          int      `json:"year"`
	CoverImageURL string   `json:"cover_image_url"`
	Images        []string `json:"images"`
	IsFeatured    bool     `json:"is_featured"`
	IsPublished   bool     `json:"is_published"`
	SortOrder     int      `json:"order"`
}

// UpdateProjectRequest body để cập nhật project; trường vắng = giữ nguyên
type UpdateProjectRequest struct {
	Slug          *string   `json:"slug"`
	TitleEn       *string   `json:"title_en"`
	TitleVi       *string   `json:"title_vi"`
	DescriptionEn *string   `json:"description_en"`
	DescriptionVi *string   `json:"description_vi"`
	CategoryID    *string   `json:"category_id"`
	Location      *string   `json:"location"`
	Area          *string   `json:"area"`
	Year          *int      `json:"year"`
	CoverImageURL *string   `json:"cover_image_url"`
	Images        *[]string `json:"images"`
	IsFeatured    *bool     `json:"is_featured"`
	IsPublished   *bool     `json:"is_published"`
	SortOrder     *int      `json:"order"`
}

// ===========================================================================
// Handlers
// ===========================================================================

// Create tạo project mới
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	categoryID, ok := parseOptionalUUID(req.CategoryID)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "category_id không hợp lệ"))
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), services.CreateProjectInput{
		Slug:          req.Slug,
		TitleEn:       req.TitleEn,
		TitleVi:       req.TitleVi,
		DescriptionEn: req.DescriptionEn,
		DescriptionVi: req.DescriptionVi,
		CategoryID:    categoryID,
		Location:      req.Location,
		Area:          req.Area,
		Year:          req.Year,
		CoverImageURL: req.CoverImageURL,
		Images:        req.Images,
		IsFeatured:    req.IsFeatured,
		IsPublished:   req.IsPublished,
		SortOrder:     req.SortOrder,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success(project))
}

// List lấy danh sách projects
// GET /api/projects?category_id=&featured=true&page=&limit=
// Khách vãng lai chỉ thấy projects đã publish
func (h *ProjectHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	_, authenticated := middleware.GetUserID(c)

	input := services.ListProjectsInput{
		FeaturedOnly:  c.Query("featured") == "true",
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

	projects, total, err := h.projectService.List(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessWithMeta(projects, dto.NewMeta(page, limit, total)))
}

// Get lấy chi tiết project theo ID hoặc slug
// GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	param := c.Param("id")
	_, authenticated := middleware.GetUserID(c)

	// Param là UUID thì tìm theo ID, ngược lại coi như slug
	if id, err := uuid.Parse(param); err == nil {
		project, err := h.projectService.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		if !authenticated && !project.IsPublished {
			c.JSON(http.StatusNotFound, dto.Error("NOT_FOUND", "Dự án không tồn tại"))
			return
		}
		c.JSON(http.StatusOK, dto.Success(project))
		return
	}

	project, err := h.projectService.GetBySlug(c.Request.Context(), param, !authenticated)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(project))
}

// Update cập nhật project
// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	input := services.UpdateProjectInput{
		Slug:          req.Slug,
		TitleEn:       req.TitleEn,
		TitleVi:       req.TitleVi,
		DescriptionEn: req.DescriptionEn,
		DescriptionVi: req.DescriptionVi,
		Location:      req.Location,
		Area:          req.Area,
		Year:          req.Year,
		CoverImageURL: req.CoverImageURL,
		Images:        req.Images,
		IsFeatured:    req.IsFeatured,
		IsPublished:   req.IsPublished,
		SortOrder:     req.SortOrder,
	}
	if req.CategoryID != nil {
		categoryID, ok := parseOptionalUUID(req.CategoryID)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.Error("INVALID_INPUT", "category_id không hợp lệ"))
			return
		}
		input.CategoryID = categoryID
	}

	project, err := h.projectService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(project))
}

// Delete xóa project
// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"message": "Đã xóa"}))
}

// ===========================================================================
// Route Registration
// ===========================================================================

// RegisterRoutes đăng ký routes cho projects
// GET dùng optional auth (admin thấy draft), ghi yêu cầu auth đầy đủ
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup, optionalAuth, authMiddleware gin.HandlerFunc) {
	projects := rg.Group("/projects")
	{
		projects.GET("", optionalAuth, h.List)
		projects.GET("/:id", optionalAuth, h.Get)
		projects.POST("", authMiddleware, h.Create)
		projects.PUT("/:id", authMiddleware, h.Update)
		projects.DELETE("/:id", authMiddleware, h.Delete)
	}
}
