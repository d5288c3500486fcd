package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"debt_recovery/internal/common"
	"debt_recovery/internal/global"
	"debt_recovery/internal/logger"
)

// WebhookAuthMiddleware xác thực các request webhook bằng API key trong header X-Api-Key.
// Nếu WEBHOOK_API_KEY không được cấu hình thì bỏ qua xác thực (môi trường dev/local).
func WebhookAuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		expectedKey := ""
		if global.MongoDB_ServerConfig != nil {
			expectedKey = global.MongoDB_ServerConfig.WebhookAPIKey
		}

		// Không cấu hình key: cho qua
		if expectedKey == "" {
			return c.Next()
		}

		apiKey := c.Get("X-Api-Key")
		if apiKey == "" {
			// Chỉ log khi thiếu key (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [WEBHOOK] Missing X-Api-Key header")
			HandleErrorResponse(c, common.ErrApiKeyMissing)
			return nil
		}

		// So sánh constant-time để tránh timing attack
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expectedKey)) != 1 {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [WEBHOOK] Invalid X-Api-Key")
			HandleErrorResponse(c, common.ErrApiKeyInvalid)
			return nil
		}

		return c.Next()
	}
}
