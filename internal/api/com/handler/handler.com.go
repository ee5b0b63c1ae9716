// Package comhdl chứa HTTP handler cho domain Com (bảng mã, trợ giúp).
package comhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/wiselake/inspig-repo-sub000/internal/api/base/handler"
	comsvc "github.com/wiselake/inspig-repo-sub000/internal/api/com/service"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
	"github.com/wiselake/inspig-repo-sub000/internal/global"
)

// ComHandler xử lý API bảng mã dùng chung: reload cache, tra trợ giúp.
type ComHandler struct {
	CodeService *comsvc.CodeService
}

// NewComHandler tạo mới ComHandler.
func NewComHandler() (*ComHandler, error) {
	svc, err := comsvc.NewCodeService()
	if err != nil {
		return nil, fmt.Errorf("tạo CodeService: %w", err)
	}
	return &ComHandler{CodeService: svc}, nil
}

// HandleReloadCodes xử lý POST /com/codes/reload - nạp lại cache bảng mã từ MongoDB.
// URL: POST /api/v1/com/codes/reload
func (h *ComHandler) HandleReloadCodes(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := h.CodeService.Reload(c.Context()); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeDatabase,
				"Nạp lại cache bảng mã thất bại",
				common.StatusInternalServerError,
				err.Error(),
			))
			return nil
		}
		basehdl.HandleResponse(c, fiber.Map{"reloaded": true}, nil)
		return nil
	})
}

// HandleHelpMessage xử lý GET /com/help/:key - tra nội dung trợ giúp theo ngôn ngữ.
// URL: GET /api/v1/com/help/calendar?lang=vi
func (h *ComHandler) HandleHelpMessage(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		helpKey := c.Params("key")
		lang := c.Query("lang")
		if lang == "" {
			lang = comsvc.ParseAcceptLanguage(c.Get("Accept-Language"), global.MongoDB_ServerConfig.DefaultLang)
		}
		msg := h.CodeService.HelpMessage(helpKey, lang)
		if msg == nil {
			basehdl.HandleResponse(c, nil, common.ErrNotFound)
			return nil
		}
		basehdl.HandleResponse(c, msg, nil)
		return nil
	})
}
