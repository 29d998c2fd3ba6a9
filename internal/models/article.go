package models

import (
	"time"

	"github.com/google/uuid"
)

// ===========================================================================
// Article (Bài viết)
// Bài blog/tin tức song ngữ của studio
// ===========================================================================

// Article đại diện cho một bài viết
type Article struct {
	BaseModel

	// Slug định danh trên URL, unique
	Slug string `gorm:"size:255;not null;uniqueIndex" json:"slug"`

	// TitleEn / TitleVi tiêu đề song ngữ
	TitleEn string `gorm:"size:255;not null" json:"title_en"`
	TitleVi string `gorm:"size:255;not null" json:"title_vi"`

	// ExcerptEn / ExcerptVi tóm tắt song ngữ
	ExcerptEn string `gorm:"size:500" json:"excerpt_en"`
	ExcerptVi string `gorm:"size:500" json:"excerpt_vi"`

	// BodyEn / BodyVi nội dung song ngữ
	BodyEn string `gorm:"type:text" json:"body_en"`
	BodyVi string `gorm:"type:text" json:"body_vi"`

	// CoverImageURL ảnh đại diện
	CoverImageURL string `gorm:"size:500" json:"cover_image_url"`

	// CategoryID danh mục bài viết
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`

	// AuthorID người viết (User FK)
	AuthorID *uuid.UUID `gorm:"type:uuid" json:"author_id,omitempty"`

	// IsPublished đã công khai chưa
	IsPublished bool `gorm:"default:false;index" json:"is_published"`

	// PublishedAt thời điểm công khai
	PublishedAt *time.Time `json:"published_at,omitempty"`

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName trả về tên bảng
func (Article) TableName() string {
	return "articles"
}
