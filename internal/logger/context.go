package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về log entry kèm thông tin request (method, path, ip, request id)
func WithRequest(c fiber.Ctx) *logrus.Entry {
	fields := logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	}
	if reqID := c.Get("X-Request-ID"); reqID != "" {
		fields["request_id"] = reqID
	}
	return GetAppLogger().WithFields(fields)
}
