// Package router đăng ký các route thuộc domain Client: dashboard khách nợ.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	clienthdl "debt_recovery/internal/api/client/handler"
	apirouter "debt_recovery/internal/api/router"
)

// Register đăng ký tất cả route client lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	clientHandler, err := clienthdl.NewClientHandler()
	if err != nil {
		return fmt.Errorf("tạo ClientHandler: %w", err)
	}

	// GET /clients — danh sách client. Query: status, search
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/", nil, clientHandler.HandleListClients)

	// GET /clients/stats — số liệu tổng hợp dashboard
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/stats", nil, clientHandler.HandleGetStats)

	// GET /clients/:id — chi tiết client kèm lịch sử
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/:id", nil, clientHandler.HandleGetClientDetail)

	return nil
}
