package models

import (
	"github.com/google/uuid"
)

// ===========================================================================
// Project (Dự án)
// Công trình trong portfolio của studio, nội dung song ngữ
// ===========================================================================

// Project đại diện cho một dự án thiết kế/thi công
type Project struct {
	BaseModel

	// Slug định danh trên URL, unique
	Slug string `gorm:"size:255;not null;uniqueIndex" json:"slug"`

	// TitleEn / TitleVi tiêu đề song ngữ
	TitleEn string `gorm:"size:255;not null" json:"title_en"`
	TitleVi string `gorm:"size:255;not null" json:"title_vi"`

	// DescriptionEn / DescriptionVi mô tả song ngữ
	DescriptionEn string `gorm:"type:text" json:"description_en"`
	DescriptionVi string `gorm:"type:text" json:"description_vi"`

	// CategoryID danh mục dự án
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`

	// Location địa điểm công trình
	Location string `gorm:"size:255" json:"location"`

	// Area diện tích (m2)
	Area string `gorm:"size:50" json:"area"`

	// Year năm hoàn thành
	Year int `gorm:"default:0" json:"year"`

	// CoverImageURL ảnh đại diện
	CoverImageURL string `gorm:"size:500" json:"cover_image_url"`

	// Images danh sách URL ảnh của dự án
	Images []string `gorm:"type:jsonb;serializer:json" json:"images"`

	// IsFeatured hiển thị nổi bật trên trang chủ
	IsFeatured bool `gorm:"default:false" json:"is_featured"`

	// IsPublished đã công khai trên website chưa
	IsPublished bool `gorm:"default:false;index" json:"is_published"`

	// SortOrder thứ tự hiển thị
	SortOrder int `gorm:"column:sort_order;not null;default:0" json:"order"`

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName trả về tên bảng
func (Project) TableName() string {
	return "projects"
}
