package models

// ===========================================================================
// Category (Danh mục)
// Phân loại chung cho projects và articles, song ngữ
// ===========================================================================

// CategoryKind loại danh mục
type CategoryKind string

const (
	CategoryKindProject CategoryKind = "project"
	CategoryKindArticle CategoryKind = "article"
)

// Category đại diện cho một danh mục nội dung
type Category struct {
	BaseModel

	// Slug định danh trên URL, unique
	Slug string `gorm:"size:255;not null;uniqueIndex" json:"slug"`

	// NameEn tên tiếng Anh
	NameEn string `gorm:"size:255;not null" json:"name_en"`

	// NameVi tên tiếng Việt
	NameVi string `gorm:"size:255;not null" json:"name_vi"`

	// Kind áp dụng cho loại nội dung nào: project, article
	Kind CategoryKind `gorm:"size:50;not null;default:'project';index" json:"kind"`

	// SortOrder thứ tự hiển thị
	SortOrder int `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// TableName trả về tên bảng
func (Category) TableName() string {
	return "categories"
}
