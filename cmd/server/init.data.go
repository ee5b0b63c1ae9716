package main

import (
	"context"
	"time"

	comsvc "github.com/wiselake/inspig-repo-sub000/internal/api/com/service"
	"github.com/wiselake/inspig-repo-sub000/internal/logger"
)

// InitDefaultData nạp cache bảng mã dùng chung khi khởi động.
// Nạp thất bại không chặn server, tên mã sẽ hiển thị dạng mã thô
// cho đến khi gọi lại POST /api/v1/com/codes/reload.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	codeService, err := comsvc.NewCodeService()
	if err != nil {
		log.Fatalf("Failed to initialize code service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := codeService.Reload(ctx); err != nil {
		log.WithError(err).Error("❌ [INIT] Failed to load code cache")
		log.Warn("Cache bảng mã trống, tên mã sẽ hiển thị dạng mã thô")
		return
	}

	log.Info("✅ [INIT] Code cache loaded successfully")
}
