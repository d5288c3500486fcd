// Package middleware - Test xác thực API key cho webhook inbound.
package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt_recovery/config"
	"debt_recovery/internal/global"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	// Fiber v3 chạy handler trước middleware khi truyền trực tiếp vào Post,
	// phải đăng ký middleware qua Group + Use (xem routes.go).
	group := app.Group("/webhooks")
	group.Use(WebhookAuthMiddleware())
	group.Post("/test", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestWebhookAuth_KhongCauHinhKey_ChoQua(t *testing.T) {
	global.MongoDB_ServerConfig = &config.Configuration{WebhookAPIKey: ""}
	defer func() { global.MongoDB_ServerConfig = nil }()

	app := newTestApp()
	req := httptest.NewRequest("POST", "/webhooks/test", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode, "không cấu hình key phải cho qua")
}

func TestWebhookAuth_ThieuHeader_Tra401(t *testing.T) {
	global.MongoDB_ServerConfig = &config.Configuration{WebhookAPIKey: "secret"}
	defer func() { global.MongoDB_ServerConfig = nil }()

	app := newTestApp()
	req := httptest.NewRequest("POST", "/webhooks/test", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode, "thiếu X-Api-Key phải trả 401")
}

func TestWebhookAuth_KeySai_Tra401(t *testing.T) {
	global.MongoDB_ServerConfig = &config.Configuration{WebhookAPIKey: "secret"}
	defer func() { global.MongoDB_ServerConfig = nil }()

	app := newTestApp()
	req := httptest.NewRequest("POST", "/webhooks/test", nil)
	req.Header.Set("X-Api-Key", "wrong")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode, "X-Api-Key sai phải trả 401")
}

func TestWebhookAuth_KeyDung_ChoQua(t *testing.T) {
	global.MongoDB_ServerConfig = &config.Configuration{WebhookAPIKey: "secret"}
	defer func() { global.MongoDB_ServerConfig = nil }()

	app := newTestApp()
	req := httptest.NewRequest("POST", "/webhooks/test", nil)
	req.Header.Set("X-Api-Key", "secret")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode, "X-Api-Key đúng phải cho qua")
}
