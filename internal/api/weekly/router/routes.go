// Package router đăng ký các route thuộc domain Weekly: báo cáo tuần và popup chi tiết.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	weeklyhdl "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/handler"
	"github.com/wiselake/inspig-repo-sub000/internal/api/middleware"
	apirouter "github.com/wiselake/inspig-repo-sub000/internal/api/router"
)

// Register đăng ký route weekly lên v1. Báo cáo và popup đi qua phiên xem
// từ share link, danh sách báo cáo dành cho thành viên đã đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	weeklyHandler, err := weeklyhdl.NewWeeklyHandler()
	if err != nil {
		return fmt.Errorf("create weekly handler: %w", err)
	}
	session := middleware.ShareSessionMiddleware()
	memberAuth := middleware.MemberAuthMiddleware()

	apirouter.RegisterRouteWithMiddleware(v1, "/weekly", "GET", "/report", []fiber.Handler{session}, weeklyHandler.HandleGetReport)
	apirouter.RegisterRouteWithMiddleware(v1, "/weekly", "GET", "/popup/:type", []fiber.Handler{session}, weeklyHandler.HandleGetPopup)
	apirouter.RegisterRouteWithMiddleware(v1, "/weekly", "GET", "/auction", []fiber.Handler{session}, weeklyHandler.HandleAuctionByGrade)
	apirouter.RegisterRouteWithMiddleware(v1, "/weekly", "GET", "/weather/hourly", []fiber.Handler{session}, weeklyHandler.HandleWeatherHourly)
	apirouter.RegisterRouteWithMiddleware(v1, "/weekly", "GET", "/mgmt/:seq", []fiber.Handler{session}, weeklyHandler.HandleMgmtDetail)
	apirouter.RegisterRouteWithMiddleware(v1, "/weekly", "GET", "/productivity", []fiber.Handler{session}, weeklyHandler.HandleProductivity)
	apirouter.RegisterRouteWithMiddleware(v1, "/weekly", "GET", "/reports", []fiber.Handler{memberAuth}, weeklyHandler.HandleReportList)
	return nil
}
