package models

// ===========================================================================
// Content blocks (Khối nội dung website)
// Các resource nhỏ cấu thành trang chủ, trang dịch vụ và trang giới thiệu
// Tất cả đều song ngữ, admin CRUD qua dashboard
// ===========================================================================

// ServiceOffering một dịch vụ studio cung cấp (thiết kế nội thất, kiến trúc...)
type ServiceOffering struct {
	BaseModel

	TitleEn       string `gorm:"size:255;not null" json:"title_en"`
	TitleVi       string `gorm:"size:255;not null" json:"title_vi"`
	DescriptionEn string `gorm:"type:text" json:"description_en"`
	DescriptionVi string `gorm:"type:text" json:"description_vi"`

	// Icon tên icon hiển thị kèm dịch vụ
	Icon string `gorm:"size:100" json:"icon"`

	SortOrder int   `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive  *bool `gorm:"not null;default:true" json:"active"`
}

// TableName trả về tên bảng
func (ServiceOffering) TableName() string {
	return "service_offerings"
}

// Partner đối tác/nhà cung cấp hiển thị trên website
type Partner struct {
	BaseModel

	Name       string `gorm:"size:255;not null" json:"name"`
	LogoURL    string `gorm:"size:500" json:"logo_url"`
	WebsiteURL string `gorm:"size:500" json:"website_url"`

	SortOrder int   `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive  *bool `gorm:"not null;default:true" json:"active"`
}

// TableName trả về tên bảng
func (Partner) TableName() string {
	return "partners"
}

// HomepageBlock một section trên trang chủ, định danh bằng SectionKey
type HomepageBlock struct {
	BaseModel

	// SectionKey khóa section, unique (VD: "hero", "featured", "cta")
	SectionKey string `gorm:"size:100;not null;uniqueIndex" json:"section_key"`

	HeadingEn string `gorm:"size:500" json:"heading_en"`
	HeadingVi string `gorm:"size:500" json:"heading_vi"`
	BodyEn    string `gorm:"type:text" json:"body_en"`
	BodyVi    string `gorm:"type:text" json:"body_vi"`

	// MediaURL ảnh/video của section
	MediaURL string `gorm:"size:500" json:"media_url"`

	SortOrder int   `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive  *bool `gorm:"not null;default:true" json:"active"`
}

// TableName trả về tên bảng
func (HomepageBlock) TableName() string {
	return "homepage_blocks"
}

// ===========================================================================
// Trang giới thiệu (About page)
// Gồm nhiều khối: hero, nguyên tắc, showcase, quy trình, đội ngũ
// ===========================================================================

// AboutHero khối mở đầu trang giới thiệu (thường chỉ có một row)
type AboutHero struct {
	BaseModel

	TitleEn    string `gorm:"size:500" json:"title_en"`
	TitleVi    string `gorm:"size:500" json:"title_vi"`
	SubtitleEn string `gorm:"type:text" json:"subtitle_en"`
	SubtitleVi string `gorm:"type:text" json:"subtitle_vi"`
	ImageURL   string `gorm:"size:500" json:"image_url"`
}

// TableName trả về tên bảng
func (AboutHero) TableName() string {
	return "about_heroes"
}

// AboutPrinciple một nguyên tắc làm việc của studio
type AboutPrinciple struct {
	BaseModel

	TitleEn string `gorm:"size:255;not null" json:"title_en"`
	TitleVi string `gorm:"size:255;not null" json:"title_vi"`
	BodyEn  string `gorm:"type:text" json:"body_en"`
	BodyVi  string `gorm:"type:text" json:"body_vi"`

	SortOrder int `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// TableName trả về tên bảng
func (AboutPrinciple) TableName() string {
	return "about_principles"
}

// AboutShowcase một công trình tiêu biểu trên trang giới thiệu
type AboutShowcase struct {
	BaseModel

	TitleEn   string `gorm:"size:255" json:"title_en"`
	TitleVi   string `gorm:"size:255" json:"title_vi"`
	ImageURL  string `gorm:"size:500;not null" json:"image_url"`
	SortOrder int    `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// TableName trả về tên bảng
func (AboutShowcase) TableName() string {
	return "about_showcases"
}

// AboutProcessStep một bước trong quy trình làm việc
type AboutProcessStep struct {
	BaseModel

	// StepNumber số thứ tự bước hiển thị (VD: "01")
	StepNumber string `gorm:"size:10" json:"step_number"`

	TitleEn string `gorm:"size:255;not null" json:"title_en"`
	TitleVi string `gorm:"size:255;not null" json:"title_vi"`
	BodyEn  string `gorm:"type:text" json:"body_en"`
	BodyVi  string `gorm:"type:text" json:"body_vi"`

	SortOrder int `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// TableName trả về tên bảng
func (AboutProcessStep) TableName() string {
	return "about_process_steps"
}

// AboutTeamMember một thành viên đội ngũ
type AboutTeamMember struct {
	BaseModel

	Name     string `gorm:"size:255;not null" json:"name"`
	RoleEn   string `gorm:"size:255" json:"role_en"`
	RoleVi   string `gorm:"size:255" json:"role_vi"`
	BioEn    string `gorm:"type:text" json:"bio_en"`
	BioVi    string `gorm:"type:text" json:"bio_vi"`
	PhotoURL string `gorm:"size:500" json:"photo_url"`

	SortOrder int `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// TableName trả về tên bảng
func (AboutTeamMember) TableName() string {
	return "about_team_members"
}
