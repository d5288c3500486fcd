// Package synchdl - Handler các endpoint sync.
package synchdl

import (
	"errors"
	"fmt"

	basehdl "debt_recovery/internal/api/base/handler"
	"debt_recovery/internal/api/sync/dto"
	syncsvc "debt_recovery/internal/api/sync/service"
	"debt_recovery/internal/common"
	"debt_recovery/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// SyncHandler xử lý API trigger/complete/last sync.
type SyncHandler struct {
	SyncService *syncsvc.SyncService
}

// NewSyncHandler tạo SyncHandler mới.
func NewSyncHandler() (*SyncHandler, error) {
	svc, err := syncsvc.GetSyncService()
	if err != nil {
		return nil, fmt.Errorf("tạo SyncService: %w", err)
	}
	return &SyncHandler{SyncService: svc}, nil
}

// HandleTriggerSync xử lý POST /sync/trigger — gọi webhook Make.com bắt đầu sync Xero.
func (h *SyncHandler) HandleTriggerSync(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := h.SyncService.TriggerSync(c.Context()); err != nil {
			return writeError(c, err)
		}

		logger.LogSync("sync_triggered", c, nil)
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Sync started", "status": "success",
		})
		return nil
	})
}

// HandleCompleteSync xử lý POST /sync/complete — automation báo sync đã xong.
func (h *SyncHandler) HandleCompleteSync(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		marker, err := h.SyncService.CompleteSync(c.Context())
		if err != nil {
			return writeError(c, err)
		}

		logger.LogSync("sync_completed", c, map[string]interface{}{
			"completedAt": marker.CompletedAt,
		})
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess,
			"data": fiber.Map{"completedAt": marker.CompletedAt}, "status": "success",
		})
		return nil
	})
}

// HandleLastSync xử lý GET /sync/last — thời điểm sync gần nhất và trạng thái in-progress.
func (h *SyncHandler) HandleLastSync(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		lastSync, inProgress, err := h.SyncService.LastSync(c.Context())
		if err != nil {
			return writeError(c, err)
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess,
			"data": dto.LastSyncResponse{LastSync: lastSync, InProgress: inProgress}, "status": "success",
		})
		return nil
	})
}

// writeError ghi error envelope theo common.Error (fallback internal server error).
func writeError(c fiber.Ctx, err error) error {
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
