// Package weeklyhdl chứa HTTP handler của báo cáo tuần.
package weeklyhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/wiselake/inspig-repo-sub000/internal/api/base/handler"
	weeklydto "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/dto"
	weeklysvc "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/service"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
	"github.com/wiselake/inspig-repo-sub000/internal/global"
)

// WeeklyHandler xử lý API báo cáo tuần: báo cáo tổng hợp, popup chi tiết,
// danh sách báo cáo của trại.
type WeeklyHandler struct {
	Assembler *weeklysvc.AssemblerService
}

// NewWeeklyHandler tạo mới WeeklyHandler.
func NewWeeklyHandler() (*WeeklyHandler, error) {
	assembler, err := weeklysvc.NewAssemblerService()
	if err != nil {
		return nil, fmt.Errorf("tạo AssemblerService: %w", err)
	}
	return &WeeklyHandler{Assembler: assembler}, nil
}

// sessionScope đọc phạm vi báo cáo từ phiên xem đã được middleware xác thực
func sessionScope(c fiber.Ctx) (masterSeq, farmNo int64, lang string, ok bool) {
	masterSeq, okSeq := c.Locals("session_master_seq").(int64)
	farmNo, okFarm := c.Locals("session_farm_no").(int64)
	lang, _ = c.Locals("session_lang").(string)
	if lang == "" {
		lang = global.MongoDB_ServerConfig.DefaultLang
	}
	return masterSeq, farmNo, lang, okSeq && okFarm
}

// HandleGetReport xử lý GET /weekly/report - báo cáo tuần tổng hợp.
// Phạm vi báo cáo (masterSeq, farmNo) lấy từ session token, không nhận từ query
// để người cầm link không đổi được sang báo cáo khác.
// URL: GET /api/v1/weekly/report
func (h *WeeklyHandler) HandleGetReport(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		masterSeq, farmNo, lang, ok := sessionScope(c)
		if !ok {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		report, err := h.Assembler.GetWeeklyReport(c.Context(), masterSeq, farmNo, lang)
		basehdl.HandleResponse(c, report, err)
		return nil
	})
}

// HandleGetPopup xử lý GET /weekly/popup/:type - popup chi tiết một khối.
// Loại popup: modon, mating, farrowing, weaning, accident, culling, shipment.
// URL: GET /api/v1/weekly/popup/culling
func (h *WeeklyHandler) HandleGetPopup(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		masterSeq, _, lang, ok := sessionScope(c)
		if !ok {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		popup, err := h.Assembler.Weekly().GetPopup(c.Context(), c.Params("type"), masterSeq, lang)
		basehdl.HandleResponse(c, popup, err)
		return nil
	})
}

// HandleReportList xử lý GET /weekly/reports - danh sách báo cáo tuần của trại.
// Endpoint cho thành viên đã đăng nhập, chỉ xem được trại của mình.
// URL: GET /api/v1/weekly/reports?farmNo=55&dtFrom=20250101&limit=10
func (h *WeeklyHandler) HandleReportList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		farmNo, _ := strconv.ParseInt(c.Query("farmNo"), 10, 64)
		limit, _ := strconv.Atoi(c.Query("limit"))
		query := weeklydto.ReportListQuery{
			FarmNo: farmNo,
			DtFrom: c.Query("dtFrom"),
			DtTo:   c.Query("dtTo"),
			Limit:  limit,
		}
		if query.FarmNo == 0 {
			basehdl.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}
		if err := global.Validate.Struct(&query); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Dữ liệu đầu vào không hợp lệ",
				common.StatusBadRequest,
				err.Error(),
			))
			return nil
		}
		if memberFarmNo, ok := c.Locals("member_farm_no").(int64); ok && memberFarmNo != query.FarmNo {
			basehdl.HandleResponse(c, nil, common.ErrFarmMismatch)
			return nil
		}

		items, err := h.Assembler.Weekly().ReportList(c.Context(), &query)
		basehdl.HandleResponse(c, items, err)
		return nil
	})
}
