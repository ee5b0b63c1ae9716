// Package authhdl chứa HTTP handler cho domain Auth (share link, phiên xem báo cáo).
package authhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/wiselake/inspig-repo-sub000/internal/api/base/handler"
	authdto "github.com/wiselake/inspig-repo-sub000/internal/api/auth/dto"
	authsvc "github.com/wiselake/inspig-repo-sub000/internal/api/auth/service"
	comsvc "github.com/wiselake/inspig-repo-sub000/internal/api/com/service"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
	"github.com/wiselake/inspig-repo-sub000/internal/global"
)

// TokenHandler xử lý API share link: sinh token, tra token, mở báo cáo qua link.
type TokenHandler struct {
	TokenService *authsvc.TokenService
}

// NewTokenHandler tạo mới TokenHandler.
func NewTokenHandler() (*TokenHandler, error) {
	svc, err := authsvc.NewTokenService()
	if err != nil {
		return nil, fmt.Errorf("tạo TokenService: %w", err)
	}
	return &TokenHandler{TokenService: svc}, nil
}

// HandleGenerateShareToken xử lý POST /auth/share/generate - sinh share token mới.
// URL: POST /api/v1/auth/share/generate
// Body: {masterSeq, farmNo, reportType, expireDays?}
func (h *TokenHandler) HandleGenerateShareToken(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.GenerateShareTokenInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Dữ liệu đầu vào không hợp lệ",
				common.StatusBadRequest,
				err.Error(),
			))
			return nil
		}

		// Chỉ cho sinh token với báo cáo thuộc trại của thành viên đang đăng nhập
		if farmNo, ok := c.Locals("member_farm_no").(int64); ok && farmNo != input.FarmNo {
			basehdl.HandleResponse(c, nil, common.ErrFarmMismatch)
			return nil
		}

		info, err := h.TokenService.GenerateShareToken(c.Context(), &input)
		basehdl.HandleResponse(c, info, err)
		return nil
	})
}

// HandleGetShareToken xử lý GET /auth/share - tra share token hiện tại của báo cáo.
// URL: GET /api/v1/auth/share?masterSeq=1001&farmNo=55
func (h *TokenHandler) HandleGetShareToken(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		masterSeq, _ := strconv.ParseInt(c.Query("masterSeq"), 10, 64)
		farmNo, _ := strconv.ParseInt(c.Query("farmNo"), 10, 64)
		if masterSeq == 0 || farmNo == 0 {
			basehdl.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}
		if memberFarmNo, ok := c.Locals("member_farm_no").(int64); ok && memberFarmNo != farmNo {
			basehdl.HandleResponse(c, nil, common.ErrFarmMismatch)
			return nil
		}

		info, err := h.TokenService.GetShareToken(c.Context(), masterSeq, farmNo)
		basehdl.HandleResponse(c, info, err)
		return nil
	})
}

// HandleViewByToken xử lý GET /view/:token - mở báo cáo qua share link.
// Endpoint công khai. JWT thành viên (nếu có) gửi kèm header Authorization,
// đăng nhập đúng trại thì xem được cả link đã hết hạn.
// URL: GET /api/v1/view/:token
func (h *TokenHandler) HandleViewByToken(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		token := c.Params("token")
		acceptLang := comsvc.ParseAcceptLanguage(c.Get("Accept-Language"), global.MongoDB_ServerConfig.DefaultLang)

		session, err := h.TokenService.ViewByToken(c.Context(), token, c.Get("Authorization"), acceptLang)
		basehdl.HandleResponse(c, session, err)
		return nil
	})
}
