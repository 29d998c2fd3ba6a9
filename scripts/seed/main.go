//go:build ignore

// ===========================================================================
// Script tạo seed data: tài khoản admin + registries CRM mặc định
// Chạy: go run scripts/seed/main.go
// Idempotent: chạy lại nhiều lần không tạo bản ghi trùng
// ===========================================================================

package main

import (
	"fmt"
	"log"

	"noithat-backend/internal/config"
	"noithat-backend/internal/database"
	"noithat-backend/internal/models"
	"noithat-backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	fmt.Println("🌱 Bắt đầu seed data...")

	// Load config
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Không thể load config: %v", err)
	}

	// Khởi tạo logger
	zapLog, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Không thể tạo logger: %v", err)
	}

	// Kết nối database
	db, err := database.NewConnection(&cfg.Database, zapLog)
	if err != nil {
		log.Fatalf("Không thể kết nối database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Không thể migrate: %v", err)
	}

	fmt.Println("✅ Đã kết nối database")

	// =========================================================================
	// 1. Tạo tài khoản admin
	// =========================================================================
	if cfg.Seed.AdminPassword == "" {
		log.Fatal("SEED_ADMIN_PASSWORD chưa được set")
	}

	var existingAdmin models.User
	if err := db.Where("username = ?", cfg.Seed.AdminUsername).First(&existingAdmin).Error; err == nil {
		fmt.Printf("⚠️  User '%s' đã tồn tại\n", cfg.Seed.AdminUsername)
	} else {
		admin := &models.User{
			Username: cfg.Seed.AdminUsername,
			Name:     "Administrator",
			Role:     models.RoleAdmin,
			IsActive: true,
		}
		if err := admin.SetPassword(cfg.Seed.AdminPassword); err != nil {
			log.Fatalf("Không thể set password: %v", err)
		}
		if err := db.Create(admin).Error; err != nil {
			zapLog.Fatal("Không thể tạo admin", zap.Error(err))
		}
		fmt.Printf("✅ Đã tạo admin: %s (ID: %s)\n", admin.Username, admin.ID)
	}

	// =========================================================================
	// 2. Pipeline stages mặc định
	// =========================================================================
	stages := []models.PipelineStage{
		{Value: "lead", LabelEn: "Lead", LabelVi: "Khách tiềm năng", SortOrder: 1},
		{Value: "prospect", LabelEn: "Prospect", LabelVi: "Đang tư vấn", SortOrder: 2},
		{Value: "contract", LabelEn: "Contract", LabelVi: "Đã ký hợp đồng", SortOrder: 3},
		{Value: "delivery", LabelEn: "Delivery", LabelVi: "Đang thi công", SortOrder: 4},
		{Value: "aftercare", LabelEn: "Aftercare", LabelVi: "Chăm sóc sau bàn giao", SortOrder: 5},
	}
	for _, stage := range stages {
		var existing models.PipelineStage
		if err := db.Where("value = ?", stage.Value).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&stage).Error; err != nil {
			zapLog.Warn("Không thể tạo pipeline stage", zap.String("value", stage.Value), zap.Error(err))
		} else {
			fmt.Printf("✅ Đã tạo pipeline stage: %s\n", stage.Value)
		}
	}

	// =========================================================================
	// 3. Customer tiers mặc định
	// =========================================================================
	tiers := []models.CustomerTier{
		{Value: "silver", LabelEn: "Silver", LabelVi: "Bạc", SortOrder: 1},
		{Value: "gold", LabelEn: "Gold", LabelVi: "Vàng", SortOrder: 2},
		{Value: "vip", LabelEn: "VIP", LabelVi: "VIP", SortOrder: 3},
		{Value: "platinum", LabelEn: "Platinum", LabelVi: "Bạch kim", SortOrder: 4},
	}
	for _, tier := range tiers {
		var existing models.CustomerTier
		if err := db.Where("value = ?", tier.Value).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&tier).Error; err != nil {
			zapLog.Warn("Không thể tạo customer tier", zap.String("value", tier.Value), zap.Error(err))
		} else {
			fmt.Printf("✅ Đã tạo customer tier: %s\n", tier.Value)
		}
	}

	// =========================================================================
	// 4. CRM statuses mặc định
	// =========================================================================
	statuses := []models.CrmStatus{
		{Value: "active", LabelEn: "Active", LabelVi: "Đang hoạt động", SortOrder: 1},
		{Value: "inactive", LabelEn: "Inactive", LabelVi: "Ngưng hoạt động", SortOrder: 2},
		{Value: "archived", LabelEn: "Archived", LabelVi: "Đã lưu trữ", SortOrder: 3},
	}
	for _, status := range statuses {
		var existing models.CrmStatus
		if err := db.Where("value = ?", status.Value).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&status).Error; err != nil {
			zapLog.Warn("Không thể tạo crm status", zap.String("value", status.Value), zap.Error(err))
		} else {
			fmt.Printf("✅ Đã tạo crm status: %s\n", status.Value)
		}
	}

	fmt.Println("🎉 Seed hoàn tất!")
}
