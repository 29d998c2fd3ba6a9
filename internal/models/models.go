package models

// ===========================================================================
// Models Index
// Cung cấp danh sách tất cả models cho GORM AutoMigrate
// ===========================================================================

// AllModels trả về danh sách tất cả models
// Dùng cho database.AutoMigrate() để tự động tạo/update tables
func AllModels() []interface{} {
	return []interface{}{
		&User{},             // Người dùng dashboard
		&PipelineStage{},    // Registry: giai đoạn pipeline
		&CustomerTier{},     // Registry: hạng khách hàng
		&CrmStatus{},        // Registry: trạng thái khách hàng
		&Client{},           // Khách hàng CRM
		&Inquiry{},          // Yêu cầu tư vấn từ website
		&Interaction{},      // Nhật ký tương tác
		&Deal{},             // Thương vụ
		&Transaction{},      // Sổ thu chi
		&Category{},         // Danh mục nội dung
		&Project{},          // Dự án portfolio
		&Article{},          // Bài viết
		&ServiceOffering{},  // Dịch vụ
		&Partner{},          // Đối tác
		&HomepageBlock{},    // Khối trang chủ
		&AboutHero{},        // Trang giới thiệu: hero
		&AboutPrinciple{},   // Trang giới thiệu: nguyên tắc
		&AboutShowcase{},    // Trang giới thiệu: công trình tiêu biểu
		&AboutProcessStep{}, // Trang giới thiệu: quy trình
		&AboutTeamMember{},  // Trang giới thiệu: đội ngũ
	}
}
