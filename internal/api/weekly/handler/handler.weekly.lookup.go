// Package weeklyhdl - handler cho các endpoint tra cứu lẻ kèm báo cáo tuần:
// giá đấu giá theo cấp, thời tiết theo giờ, nội dung quản lý, năng suất.
// File: handler.weekly.lookup.go
package weeklyhdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/wiselake/inspig-repo-sub000/internal/api/base/handler"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
)

// HandleAuctionByGrade xử lý GET /weekly/auction - popup giá đấu giá theo cấp thịt
// trong khoảng ngày của báo cáo gắn với phiên.
// URL: GET /api/v1/weekly/auction
func (h *WeeklyHandler) HandleAuctionByGrade(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		masterSeq, farmNo, _, ok := sessionScope(c)
		if !ok {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		master, err := h.Assembler.Weekly().FetchMaster(c.Context(), masterSeq, farmNo)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		groups, err := h.Assembler.Auction().ByGrade(c.Context(), master.DtFrom, master.DtTo)
		basehdl.HandleResponse(c, groups, err)
		return nil
	})
}

// HandleWeatherHourly xử lý GET /weekly/weather/hourly - popup dự báo theo giờ
// tại tọa độ lưới của trại gắn với phiên. Không truyền dt thì lấy hôm nay.
// URL: GET /api/v1/weekly/weather/hourly?dt=20250607
func (h *WeeklyHandler) HandleWeatherHourly(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		_, farmNo, _, ok := sessionScope(c)
		if !ok {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		farm, err := h.Assembler.Weekly().FetchFarm(c.Context(), farmNo)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		hours, err := h.Assembler.Weather().HourlyForDate(c.Context(), farm.Nx, farm.Ny, c.Query("dt"))
		basehdl.HandleResponse(c, hours, err)
		return nil
	})
}

// HandleMgmtDetail xử lý GET /weekly/mgmt/:seq - nội dung quản lý đầy đủ
// kèm file đính kèm.
// URL: GET /api/v1/weekly/mgmt/1234
func (h *WeeklyHandler) HandleMgmtDetail(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		mgmtSeq, _ := strconv.ParseInt(c.Params("seq"), 10, 64)
		if mgmtSeq == 0 {
			basehdl.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		board, err := h.Assembler.Mgmt().Detail(c.Context(), mgmtSeq)
		basehdl.HandleResponse(c, board, err)
		return nil
	})
}

// HandleProductivity xử lý GET /weekly/productivity - chỉ số năng suất
// các tháng gần nhất của trại gắn với phiên.
// URL: GET /api/v1/weekly/productivity?months=6
func (h *WeeklyHandler) HandleProductivity(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		_, farmNo, _, ok := sessionScope(c)
		if !ok {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		months, _ := strconv.Atoi(c.Query("months"))
		items, err := h.Assembler.Weekly().FetchProductivity(c.Context(), farmNo, months)
		basehdl.HandleResponse(c, items, err)
		return nil
	})
}
