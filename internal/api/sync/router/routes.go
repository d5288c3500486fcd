// Package router đăng ký các route thuộc domain Sync: trigger/complete/last.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "debt_recovery/internal/api/router"
	synchdl "debt_recovery/internal/api/sync/handler"
)

// Register đăng ký tất cả route sync lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	syncHandler, err := synchdl.NewSyncHandler()
	if err != nil {
		return fmt.Errorf("tạo SyncHandler: %w", err)
	}

	// POST /sync/trigger — gọi webhook Make.com bắt đầu sync Xero
	apirouter.RegisterRouteWithMiddleware(v1, "/sync", "POST", "/trigger", nil, syncHandler.HandleTriggerSync)

	// POST /sync/complete — automation báo sync đã hoàn tất
	apirouter.RegisterRouteWithMiddleware(v1, "/sync", "POST", "/complete", nil, syncHandler.HandleCompleteSync)

	// GET /sync/last — thời điểm sync gần nhất và trạng thái in-progress
	apirouter.RegisterRouteWithMiddleware(v1, "/sync", "GET", "/last", nil, syncHandler.HandleLastSync)

	return nil
}
