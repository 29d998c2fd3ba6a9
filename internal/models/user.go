package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ===========================================================================
// User (Người dùng hệ thống)
// Đại diện cho admin và editor của dashboard quản trị
// KHÔNG phải khách hàng (khách hàng là Client)
// ===========================================================================

// UserRole các vai trò người dùng
type UserRole string

const (
	// RoleAdmin quản trị viên, có toàn quyền (CRM + nội dung + settings)
	RoleAdmin UserRole = "admin"

	// RoleEditor biên tập viên, quản lý nội dung website
	RoleEditor UserRole = "editor"
)

// User đại diện cho người dùng hệ thống
type User struct {
	BaseModel

	// Username tên đăng nhập (unique)
	Username string `gorm:"size:100;not null;uniqueIndex" json:"username"`

	// PasswordHash mật khẩu đã hash (KHÔNG bao giờ trả về trong JSON)
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// RefreshTokenHash hash của refresh token hiện tại (KHÔNG trả về trong JSON)
	// Dùng để validate và revoke refresh token
	RefreshTokenHash *string `gorm:"size:255" json:"-"`

	// Name tên hiển thị
	Name string `gorm:"size:255;not null" json:"name"`

	// Email địa chỉ email
	Email string `gorm:"size:255" json:"email"`

	// Role vai trò: admin, editor
	Role UserRole `gorm:"size:50;not null;default:'editor'" json:"role"`

	// IsActive tài khoản có active không
	IsActive bool `gorm:"default:true" json:"is_active"`

	// LastSeenAt lần cuối online
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
}

// TableName trả về tên bảng
func (User) TableName() string {
	return "users"
}

// SetPassword hash và set password
// Sử dụng bcrypt với cost mặc định
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword kiểm tra password có đúng không
// Trả về true nếu đúng, false nếu sai
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// IsAdmin kiểm tra user có quyền admin không
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpdateLastSeen cập nhật thời gian online gần nhất
func (u *User) UpdateLastSeen() {
	now := time.Now()
	u.LastSeenAt = &now
}
