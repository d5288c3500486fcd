// Package clienthdl - Handler dashboard khách nợ.
package clienthdl

import (
	"errors"
	"fmt"

	basehdl "debt_recovery/internal/api/base/handler"
	clientsvc "debt_recovery/internal/api/client/service"
	"debt_recovery/internal/common"
	"debt_recovery/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientHandler xử lý API dashboard khách nợ.
type ClientHandler struct {
	ClientService *clientsvc.ClientService
}

// NewClientHandler tạo ClientHandler mới.
func NewClientHandler() (*ClientHandler, error) {
	svc, err := clientsvc.NewClientService()
	if err != nil {
		return nil, fmt.Errorf("tạo ClientService: %w", err)
	}
	return &ClientHandler{ClientService: svc}, nil
}

// HandleListClients xử lý GET /clients — danh sách client theo status/search, sắp theo streakDays giảm dần.
// Query: status=all|current|warning|critical|suspended, search=<substring>
func (h *ClientHandler) HandleListClients(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		status := c.Query("status", "all")
		search := c.Query("search", "")

		if err := global.Validate.Var(status, "client_status"); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": "status không hợp lệ: " + status, "status": "error",
			})
			return nil
		}

		clients, err := h.ClientService.ListClients(c.Context(), status, search)
		if err != nil {
			return writeError(c, err)
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": clients, "status": "success",
		})
		return nil
	})
}

// HandleGetStats xử lý GET /clients/stats — số liệu tổng hợp dashboard.
func (h *ClientHandler) HandleGetStats(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		stats, err := h.ClientService.GetStats(c.Context())
		if err != nil {
			return writeError(c, err)
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": stats, "status": "success",
		})
		return nil
	})
}

// HandleGetClientDetail xử lý GET /clients/:id — client kèm activity log và weekly snapshot.
func (h *ClientHandler) HandleGetClientDetail(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": "id không hợp lệ", "status": "error",
			})
			return nil
		}

		detail, err := h.ClientService.GetClientDetail(c.Context(), id)
		if err != nil {
			return writeError(c, err)
		}

		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": detail, "status": "success",
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
