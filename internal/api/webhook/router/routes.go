// Package router đăng ký các route thuộc domain Webhook: inbound từ Make.com (bảo vệ bằng API key) và đọc webhook log.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"debt_recovery/internal/api/middleware"
	apirouter "debt_recovery/internal/api/router"
	webhookhdl "debt_recovery/internal/api/webhook/handler"
)

// Register đăng ký tất cả route webhook lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	debtWebhookHandler, err := webhookhdl.NewDebtWebhookHandler()
	if err != nil {
		return fmt.Errorf("tạo DebtWebhookHandler: %w", err)
	}

	webhookAuth := []fiber.Handler{middleware.WebhookAuthMiddleware()}

	// POST /webhooks/sync-clients — bulk upsert client từ Xero
	apirouter.RegisterRouteWithMiddleware(v1, "/webhooks", "POST", "/sync-clients", webhookAuth, debtWebhookHandler.HandleSyncClients)

	// POST /webhooks/update-payment — ghi nhận thanh toán
	apirouter.RegisterRouteWithMiddleware(v1, "/webhooks", "POST", "/update-payment", webhookAuth, debtWebhookHandler.HandleUpdatePayment)

	// POST /webhooks/log-activity — ghi hoạt động thu hồi
	apirouter.RegisterRouteWithMiddleware(v1, "/webhooks", "POST", "/log-activity", webhookAuth, debtWebhookHandler.HandleLogActivity)

	webhookLogHandler, err := webhookhdl.NewWebhookLogHandler()
	if err != nil {
		return fmt.Errorf("tạo WebhookLogHandler: %w", err)
	}

	// GET /webhook-logs — webhook log phân trang (debug).
	// Prefix riêng để không dính API key middleware của group /webhooks.
	apirouter.RegisterRouteWithMiddleware(v1, "/webhook-logs", "GET", "/", nil, webhookLogHandler.HandleListLogs)

	return nil
}
