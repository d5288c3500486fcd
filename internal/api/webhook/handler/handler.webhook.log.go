// Package webhookhdl chứa HTTP handler cho domain Webhook (log).
// File: handler.webhook.log.go
package webhookhdl

import (
	"errors"
	"fmt"

	basehdl "debt_recovery/internal/api/base/handler"
	webhookdto "debt_recovery/internal/api/webhook/dto"
	webhookmodels "debt_recovery/internal/api/webhook/models"
	webhooksvc "debt_recovery/internal/api/webhook/service"
	"debt_recovery/internal/common"

	"github.com/gofiber/fiber/v3"
)

// WebhookLogHandler xử lý route đọc webhook log (debug webhook inbound)
type WebhookLogHandler struct {
	*basehdl.BaseHandler[webhookmodels.WebhookLog, webhookdto.WebhookLogCreateInput, webhookdto.WebhookLogUpdateInput]

	webhookLogService *webhooksvc.WebhookLogService
}

// NewWebhookLogHandler tạo mới WebhookLogHandler
func NewWebhookLogHandler() (*WebhookLogHandler, error) {
	webhookLogService, err := webhooksvc.NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("tạo WebhookLogService: %w", err)
	}

	return &WebhookLogHandler{
		BaseHandler:       basehdl.NewBaseHandler[webhookmodels.WebhookLog, webhookdto.WebhookLogCreateInput, webhookdto.WebhookLogUpdateInput](webhookLogService.BaseServiceMongoImpl),
		webhookLogService: webhookLogService,
	}, nil
}

// HandleListLogs xử lý GET /webhooks/logs — webhook log phân trang, mới nhất trước.
// Query: page, limit, eventType (optional).
func (h *WebhookLogHandler) HandleListLogs(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		page, limit := h.ParsePagination(c)
		eventType := c.Query("eventType", "")

		result, err := h.webhookLogService.FindRecent(c.Context(), eventType, page, limit)
		if err != nil {
			var customErr *common.Error
			if errors.As(err, &customErr) {
				c.Status(customErr.StatusCode).JSON(fiber.Map{
					"code": customErr.Code.Code, "message": customErr.Message, "status": "error",
				})
				return nil
			}
			c.Status(common.StatusInternalServerError).JSON(fiber.Map{
				"code": common.ErrCodeDatabase.Code, "message": err.Error(), "status": "error",
			})
			return nil
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": result, "status": "success",
		})
		return nil
	})
}
