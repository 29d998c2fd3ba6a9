package repositories

import (
	"context"

	"noithat-backend/internal/models"

	"github.com/google/uuid"
)

// ===========================================================================
// Repository Interfaces
// Data access contracts cho services và handlers
// Implementations dùng GORM; tests dùng fakes
// ===========================================================================

// UserRepository interface cho user data access
type UserRepository interface {
	// FindByID tìm user theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByUsername tìm user theo username (cho login)
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// Create tạo user mới
	Create(ctx context.Context, user *models.User) error

	// Update cập nhật user
	Update(ctx context.Context, user *models.User) error
}

// ===========================================================================
// CRM Registry Repository
// Ba registry (PipelineStage, CustomerTier, CrmStatus) có shape giống hệt
// nhau nên dùng chung một generic implementation
// ===========================================================================

// RegistryRepository interface generic cho registry data access
type RegistryRepository[T models.RegistryEntry] interface {
	// List trả về tất cả entries theo sort_order ASC
	// Tie-break theo created_at ASC để thứ tự ổn định giữa các lần gọi
	List(ctx context.Context) ([]T, error)

	// FindByID tìm entry theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)

	// FindByValue tìm entry theo value (case-sensitive)
	FindByValue(ctx context.Context, value string) (*T, error)

	// Create tạo entry mới; unique constraint trên value bắt duplicate
	Create(ctx context.Context, entry *T) error

	// UpdateColumns cập nhật một phần entry theo map cột
	UpdateColumns(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error

	// Delete xóa cứng entry (registries không dùng soft delete)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ===========================================================================
// Client Repository
// ===========================================================================

// ClientRepository interface cho client data access
type ClientRepository interface {
	// FindByID tìm client theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error)

	// List lấy danh sách clients với filter (status, stage, tier) và phân trang
	List(ctx context.Context, opts FindOptions) ([]models.Client, int64, error)

	// Create tạo client mới
	Create(ctx context.Context, client *models.Client) error

	// Update cập nhật toàn bộ client
	Update(ctx context.Context, client *models.Client) error

	// UpdateColumns cập nhật một phần client theo map cột
	UpdateColumns(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error

	// SetReferredBy gán người giới thiệu và cập nhật referral_count cả hai
	// phía trong cùng một database transaction: gọi lặp với cùng referrer là
	// no-op, đổi referrer giảm count của người cũ trước khi tăng người mới
	SetReferredBy(ctx context.Context, clientID, referrerID uuid.UUID) error

	// CountByStage đếm clients đang ở một pipeline stage
	CountByStage(ctx context.Context, stage string) (int64, error)

	// CountByTier đếm clients đang ở một tier
	CountByTier(ctx context.Context, tier string) (int64, error)

	// CountByStatus đếm clients đang ở một status
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// ===========================================================================
// Inquiry Repository
// ===========================================================================

// InquiryRepository interface cho inquiry data access
type InquiryRepository interface {
	// FindByID tìm inquiry theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error)

	// List lấy danh sách inquiries với filter status và phân trang
	List(ctx context.Context, opts FindOptions) ([]models.Inquiry, int64, error)

	// Create tạo inquiry mới (từ form liên hệ công khai)
	Create(ctx context.Context, inquiry *models.Inquiry) error

	// Update cập nhật inquiry
	Update(ctx context.Context, inquiry *models.Inquiry) error
}

// ===========================================================================
// Interaction Repository
// ===========================================================================

// InteractionRepository interface cho interaction data access
type InteractionRepository interface {
	// FindByID tìm interaction theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Interaction, error)

	// FindByClient lấy nhật ký tương tác của một client, mới nhất trước
	FindByClient(ctx context.Context, clientID uuid.UUID, opts FindOptions) ([]models.Interaction, int64, error)

	// Create tạo interaction mới
	Create(ctx context.Context, interaction *models.Interaction) error

	// Update cập nhật interaction (log cho phép sửa, không phải event store)
	Update(ctx context.Context, interaction *models.Interaction) error
}

// ===========================================================================
// Deal Repository
// ===========================================================================

// DealRepository interface cho deal data access
type DealRepository interface {
	// FindByID tìm deal theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Deal, error)

	// FindByClient lấy các deals của một client
	FindByClient(ctx context.Context, clientID uuid.UUID, opts FindOptions) ([]models.Deal, int64, error)

	// FindByStage lấy các deals đang ở một stage
	FindByStage(ctx context.Context, stage models.DealStage, opts FindOptions) ([]models.Deal, int64, error)

	// Create tạo deal mới
	Create(ctx context.Context, deal *models.Deal) error

	// Update cập nhật deal
	Update(ctx context.Context, deal *models.Deal) error
}

// ===========================================================================
// Transaction Repository
// ===========================================================================

// TransactionRepository interface cho transaction data access
type TransactionRepository interface {
	// FindByID tìm transaction theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)

	// FindByClient lấy các transactions của một client
	FindByClient(ctx context.Context, clientID uuid.UUID, opts FindOptions) ([]models.Transaction, int64, error)

	// RecordWithRollup ghi transaction VÀ cập nhật rollup trên Client trong
	// cùng một database transaction, lock row client để tránh lost update:
	// - payment    → total_spending += amount, order_count += 1
	// - refund     → refund_amount += amount
	// - commission → commission += amount
	// Nếu client có người giới thiệu và type = payment thì cộng thêm
	// referral_revenue của người giới thiệu
	// Chỉ áp dụng rollup khi status = completed
	RecordWithRollup(ctx context.Context, txn *models.Transaction) error
}

// ===========================================================================
// CMS Repositories
// ===========================================================================

// ProjectRepository interface cho project portfolio data access
type ProjectRepository interface {
	// FindByID tìm project theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)

	// FindBySlug tìm project theo slug (cho trang public)
	FindBySlug(ctx context.Context, slug string) (*models.Project, error)

	// List lấy danh sách projects với filter và phân trang
	List(ctx context.Context, opts FindOptions) ([]models.Project, int64, error)

	// Create tạo project mới
	Create(ctx context.Context, project *models.Project) error

	// Update cập nhật project
	Update(ctx context.Context, project *models.Project) error

	// Delete soft delete project
	Delete(ctx context.Context, id uuid.UUID) error
}

// ArticleRepository interface cho article data access
type ArticleRepository interface {
	// FindByID tìm article theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Article, error)

	// FindBySlug tìm article theo slug (cho trang public)
	FindBySlug(ctx context.Context, slug string) (*models.Article, error)

	// List lấy danh sách articles với filter và phân trang
	List(ctx context.Context, opts FindOptions) ([]models.Article, int64, error)

	// Create tạo article mới
	Create(ctx context.Context, article *models.Article) error

	// Update cập nhật article
	Update(ctx context.Context, article *models.Article) error

	// Delete soft delete article
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContentRepository interface generic cho các CMS resource đơn giản
// (Category, ServiceOffering, Partner, HomepageBlock, About*)
// Tất cả đều là list-sắp-xếp-được với CRUD giống hệt nhau
type ContentRepository[T any] interface {
	// FindByID tìm resource theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)

	// List trả về tất cả resources theo thứ tự ổn định
	List(ctx context.Context, opts FindOptions) ([]T, error)

	// Create tạo resource mới
	Create(ctx context.Context, entity *T) error

	// Update cập nhật resource từ struct (chỉ các trường non-zero)
	Update(ctx context.Context, id uuid.UUID, entity *T) error

	// Delete soft delete resource
	Delete(ctx context.Context, id uuid.UUID) error
}
