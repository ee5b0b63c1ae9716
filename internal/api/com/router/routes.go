// Package router đăng ký các route thuộc domain Com: bảng mã dùng chung, trợ giúp.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/wiselake/inspig-repo-sub000/internal/api/base/handler"
	comhdl "github.com/wiselake/inspig-repo-sub000/internal/api/com/handler"
	"github.com/wiselake/inspig-repo-sub000/internal/api/middleware"
	apirouter "github.com/wiselake/inspig-repo-sub000/internal/api/router"
)

// Register đăng ký route com lên v1: reload cache bảng mã, tra trợ giúp,
// health check hệ thống.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	comHandler, err := comhdl.NewComHandler()
	if err != nil {
		return fmt.Errorf("create com handler: %w", err)
	}
	memberAuth := middleware.MemberAuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/com", "POST", "/codes/reload", []fiber.Handler{memberAuth}, comHandler.HandleReloadCodes)
	apirouter.RegisterRouteWithMiddleware(v1, "/com", "GET", "/help/:key", nil, comHandler.HandleHelpMessage)

	systemHandler := basehdl.NewSystemHandler()
	apirouter.RegisterRouteWithMiddleware(v1, "/system", "GET", "/health", nil, systemHandler.HandleHealth)
	return nil
}
