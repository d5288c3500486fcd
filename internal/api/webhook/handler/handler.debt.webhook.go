// Package webhookhdl - handler webhook từ automation Make.com (sync-clients, update-payment, log-activity).
package webhookhdl

import (
	"context"
	"errors"
	"fmt"
	"time"

	basehdl "debt_recovery/internal/api/base/handler"
	clientsvc "debt_recovery/internal/api/client/service"
	webhookdto "debt_recovery/internal/api/webhook/dto"
	webhookmodels "debt_recovery/internal/api/webhook/models"
	webhooksvc "debt_recovery/internal/api/webhook/service"
	"debt_recovery/internal/common"
	"debt_recovery/internal/global"
	"debt_recovery/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// webhookSource là giá trị source cho mọi webhook inbound từ Make.com.
const webhookSource = "make"

// DebtWebhookHandler xử lý các webhook thu hồi nợ từ Make.com.
// Mọi webhook đều được lưu log trước khi xử lý; lỗi xử lý trả về trong envelope
// với HTTP 200 để automation không retry vô hạn.
type DebtWebhookHandler struct {
	clientService     *clientsvc.ClientService
	webhookLogService *webhooksvc.WebhookLogService
}

// NewDebtWebhookHandler tạo mới DebtWebhookHandler
func NewDebtWebhookHandler() (*DebtWebhookHandler, error) {
	clientService, err := clientsvc.NewClientService()
	if err != nil {
		return nil, fmt.Errorf("tạo ClientService: %w", err)
	}
	webhookLogService, err := webhooksvc.NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("tạo WebhookLogService: %w", err)
	}
	return &DebtWebhookHandler{
		clientService:     clientService,
		webhookLogService: webhookLogService,
	}, nil
}

// HandleSyncClients xử lý POST /webhooks/sync-clients — bulk upsert client theo xeroContactId.
func (h *DebtWebhookHandler) HandleSyncClients(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		log := logger.GetAppLogger()
		rawBody := string(c.Body())
		ctx := c.Context()

		var req webhookdto.SyncClientsRequest
		parseErr := c.Bind().Body(&req)
		if parseErr == nil {
			parseErr = global.Validate.Struct(req)
		}

		webhookLog, logErr := h.saveWebhookLog(ctx, c, "sync-clients", "", rawBody, parseErr)
		if logErr != nil {
			log.WithError(logErr).Warn("🔔 [MAKE WEBHOOK] Không thể lưu webhook log")
		}

		if parseErr != nil {
			return writeWebhookError(c, webhookLog, parseErr)
		}

		inputs := make([]clientsvc.SyncClientInput, 0, len(req.Clients))
		for _, item := range req.Clients {
			inputs = append(inputs, clientsvc.SyncClientInput{
				XeroContactId:  item.XeroContactId,
				Name:           item.Name,
				Email:          item.Email,
				Phone:          item.Phone,
				Company:        item.Company,
				CurrentBalance: item.CurrentBalance,
			})
		}

		processed, processErr := h.clientService.UpsertFromSync(ctx, inputs)
		h.markProcessed(ctx, webhookLog, processErr)
		if processErr != nil {
			log.WithError(processErr).Error("🔔 [MAKE WEBHOOK] Lỗi khi xử lý sync-clients")
			return writeWebhookError(c, webhookLog, processErr)
		}

		logger.LogWebhook("sync_clients", c, map[string]interface{}{
			"received": len(req.Clients), "processed": processed,
		})
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess,
			"data": fiber.Map{"processed": processed}, "status": "success",
		})
		return nil
	})
}

// HandleUpdatePayment xử lý POST /webhooks/update-payment — ghi nhận thanh toán và cập nhật streak/status.
func (h *DebtWebhookHandler) HandleUpdatePayment(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		log := logger.GetAppLogger()
		rawBody := string(c.Body())
		ctx := c.Context()

		var req webhookdto.UpdatePaymentRequest
		parseErr := c.Bind().Body(&req)
		if parseErr == nil {
			parseErr = global.Validate.Struct(req)
		}

		webhookLog, logErr := h.saveWebhookLog(ctx, c, "update-payment", req.XeroContactId, rawBody, parseErr)
		if logErr != nil {
			log.WithError(logErr).Warn("🔔 [MAKE WEBHOOK] Không thể lưu webhook log")
		}

		if parseErr != nil {
			return writeWebhookError(c, webhookLog, parseErr)
		}

		client, processErr := h.clientService.ApplyPaymentUpdate(ctx, req.XeroContactId, req.NewBalance, req.PaymentAmount)
		h.markProcessed(ctx, webhookLog, processErr)
		if processErr != nil {
			log.WithError(processErr).WithField("xeroContactId", req.XeroContactId).Error("🔔 [MAKE WEBHOOK] Lỗi khi xử lý update-payment")
			return writeWebhookError(c, webhookLog, processErr)
		}

		logger.LogWebhook("update_payment", c, map[string]interface{}{
			"xeroContactId": req.XeroContactId, "newBalance": req.NewBalance, "paymentAmount": req.PaymentAmount,
		})
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": client, "status": "success",
		})
		return nil
	})
}

// HandleLogActivity xử lý POST /webhooks/log-activity — ghi hoạt động thu hồi (call/sms/email/suspension).
func (h *DebtWebhookHandler) HandleLogActivity(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		log := logger.GetAppLogger()
		rawBody := string(c.Body())
		ctx := c.Context()

		var req webhookdto.LogActivityRequest
		parseErr := c.Bind().Body(&req)
		if parseErr == nil {
			parseErr = global.Validate.Struct(req)
		}

		webhookLog, logErr := h.saveWebhookLog(ctx, c, "log-activity", req.XeroContactId, rawBody, parseErr)
		if logErr != nil {
			log.WithError(logErr).Warn("🔔 [MAKE WEBHOOK] Không thể lưu webhook log")
		}

		if parseErr != nil {
			return writeWebhookError(c, webhookLog, parseErr)
		}

		activity, processErr := h.clientService.RecordActivity(ctx, req.XeroContactId, req.ActivityType, req.Outcome, req.RecordingUrl, req.Notes)
		h.markProcessed(ctx, webhookLog, processErr)
		if processErr != nil {
			log.WithError(processErr).WithField("xeroContactId", req.XeroContactId).Error("🔔 [MAKE WEBHOOK] Lỗi khi xử lý log-activity")
			return writeWebhookError(c, webhookLog, processErr)
		}

		logger.LogWebhook("log_activity", c, map[string]interface{}{
			"xeroContactId": req.XeroContactId, "activityType": req.ActivityType,
		})
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": activity, "status": "success",
		})
		return nil
	})
}

// markProcessed cập nhật trạng thái xử lý của webhook log (nếu log lưu được).
func (h *DebtWebhookHandler) markProcessed(ctx context.Context, webhookLog *webhookmodels.WebhookLog, processErr error) {
	if webhookLog == nil {
		return
	}
	errorMsg := ""
	if processErr != nil {
		errorMsg = processErr.Error()
	}
	_ = h.webhookLogService.UpdateProcessedStatus(ctx, webhookLog.ID, processErr == nil, errorMsg)
}

// saveWebhookLog lưu webhook log trước khi xử lý để mọi request đều có vết.
func (h *DebtWebhookHandler) saveWebhookLog(ctx context.Context, c fiber.Ctx, eventType, xeroContactId, rawBody string, parseErr error) (*webhookmodels.WebhookLog, error) {
	now := time.Now().UnixMilli()
	requestHeaders := make(map[string]string)
	c.Request().Header.VisitAll(func(key, value []byte) {
		requestHeaders[string(key)] = string(value)
	})
	requestBody := map[string]interface{}{"raw": rawBody}
	webhookLog := webhookmodels.WebhookLog{
		Source: webhookSource, EventType: eventType, XeroContactId: xeroContactId,
		RequestHeaders: requestHeaders, RequestBody: requestBody, RawBody: rawBody,
		Processed: false,
		ProcessError: func() string {
			if parseErr != nil {
				return fmt.Sprintf("Parse error: %v", parseErr)
			}
			return ""
		}(),
		IPAddress: c.IP(), UserAgent: c.Get("User-Agent"), ReceivedAt: now, CreatedAt: now, UpdatedAt: now,
	}
	return h.webhookLogService.CreateWebhookLog(ctx, webhookLog)
}

// writeWebhookError trả lỗi xử lý trong envelope với HTTP 200.
// Webhook luôn trả 200 khi request đã được nhận và lưu log, automation đọc status trong body.
func writeWebhookError(c fiber.Ctx, webhookLog *webhookmodels.WebhookLog, err error) error {
	details := fiber.Map{}
	if webhookLog != nil {
		details["logId"] = webhookLog.ID
	}
	var customErr *common.Error
	if errors.As(err, &customErr) {
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": customErr.Code.Code, "message": customErr.Message, "details": details, "status": "error",
		})
		return nil
	}
	c.Status(common.StatusOK).JSON(fiber.Map{
		"code": common.ErrCodeValidationInput.Code, "message": err.Error(), "details": details, "status": "error",
	})
	return nil
}
