package models

// ===========================================================================
// CRM Registries (Bảng cấu hình)
// Ba bảng lookup nhỏ do admin quản lý: PipelineStage, CustomerTier, CrmStatus
// Chúng parameterize việc phân loại khách hàng mà không cần sửa code
// Client.Stage/Tier/Status lưu Value dưới dạng chuỗi tự do (không FK)
// ===========================================================================

// PipelineStage vị trí trong phễu bán hàng (lead → prospect → contract → ...)
type PipelineStage struct {
	BaseModel

	// Value khóa nội bộ, unique trong bảng (VD: "lead")
	Value string `gorm:"size:100;not null;uniqueIndex" json:"value"`

	// LabelEn nhãn hiển thị tiếng Anh
	LabelEn string `gorm:"size:255;not null" json:"label_en"`

	// LabelVi nhãn hiển thị tiếng Việt
	LabelVi string `gorm:"size:255;not null" json:"label_vi"`

	// SortOrder thứ tự hiển thị, không unique (tie-break theo thứ tự tạo)
	SortOrder int `gorm:"column:sort_order;not null;default:0" json:"order"`

	// IsActive tắt mềm mà không cần xóa
	IsActive *bool `gorm:"not null;default:true" json:"active"`
}

// TableName trả về tên bảng
func (PipelineStage) TableName() string {
	return "crm_pipeline_stages"
}

// CustomerTier hạng khách hàng theo mức chi tiêu (silver/gold/vip/platinum)
type CustomerTier struct {
	BaseModel

	Value     string `gorm:"size:100;not null;uniqueIndex" json:"value"`
	LabelEn   string `gorm:"size:255;not null" json:"label_en"`
	LabelVi   string `gorm:"size:255;not null" json:"label_vi"`
	SortOrder int    `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive  *bool  `gorm:"not null;default:true" json:"active"`
}

// TableName trả về tên bảng
func (CustomerTier) TableName() string {
	return "crm_customer_tiers"
}

// CrmStatus trạng thái khách hàng (active/inactive/archived)
type CrmStatus struct {
	BaseModel

	Value     string `gorm:"size:100;not null;uniqueIndex" json:"value"`
	LabelEn   string `gorm:"size:255;not null" json:"label_en"`
	LabelVi   string `gorm:"size:255;not null" json:"label_vi"`
	SortOrder int    `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive  *bool  `gorm:"not null;default:true" json:"active"`
}

// TableName trả về tên bảng
func (CrmStatus) TableName() string {
	return "crm_statuses"
}

// GetValue trả về khóa nội bộ (cho generic registry service)
func (s PipelineStage) GetValue() string { return s.Value }

// GetValue trả về khóa nội bộ (cho generic registry service)
func (t CustomerTier) GetValue() string { return t.Value }

// GetValue trả về khóa nội bộ (cho generic registry service)
func (s CrmStatus) GetValue() string { return s.Value }

// RegistryEntry constraint cho generic registry repository/service
// Union + method: chỉ dùng được làm type constraint
type RegistryEntry interface {
	PipelineStage | CustomerTier | CrmStatus
	GetValue() string
}

// RegistryPatch input cho partial update một registry entry
// Trường nil = giữ nguyên giá trị cũ
type RegistryPatch struct {
	Value     *string `json:"value"`
	LabelEn   *string `json:"label_en"`
	LabelVi   *string `json:"label_vi"`
	SortOrder *int    `json:"order"`
	IsActive  *bool   `json:"active"`
}
