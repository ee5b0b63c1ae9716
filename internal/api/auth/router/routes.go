// Package router đăng ký các route thuộc domain Auth: share link và mở báo cáo qua link.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/wiselake/inspig-repo-sub000/internal/api/auth/handler"
	"github.com/wiselake/inspig-repo-sub000/internal/api/middleware"
	apirouter "github.com/wiselake/inspig-repo-sub000/internal/api/router"
)

// Register đăng ký route auth lên v1: sinh/tra share token (cần đăng nhập)
// và mở báo cáo qua share link (công khai).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	tokenHandler, err := authhdl.NewTokenHandler()
	if err != nil {
		return fmt.Errorf("create token handler: %w", err)
	}
	memberAuth := middleware.MemberAuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/share/generate", []fiber.Handler{memberAuth}, tokenHandler.HandleGenerateShareToken)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/share", []fiber.Handler{memberAuth}, tokenHandler.HandleGetShareToken)

	// Link chia sẻ là URL công khai, kiểm soát bằng chính share token
	apirouter.RegisterRouteWithMiddleware(v1, "/view", "GET", "/:token", nil, tokenHandler.HandleViewByToken)
	return nil
}
