package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/wiselake/inspig-repo-sub000/internal/api/auth/models"
	authsvc "github.com/wiselake/inspig-repo-sub000/internal/api/auth/service"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
	"github.com/wiselake/inspig-repo-sub000/internal/global"
	"github.com/wiselake/inspig-repo-sub000/internal/logger"
	"github.com/wiselake/inspig-repo-sub000/internal/utility"
)

// memberCache giảm truy vấn thành viên lặp lại trong cửa sổ ngắn.
// TTL ngắn để khóa tài khoản có hiệu lực nhanh.
var memberCache = utility.NewCache(time.Minute, 5*time.Minute)

// MemberAuthMiddleware xác thực JWT đăng nhập của thành viên.
// Thành viên hợp lệ được lưu memberId, farmNo, lang vào context.
func MemberAuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Thiếu header Authorization")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims := &authmodels.MemberClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
		})
		if err != nil || !token.Valid {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra thành viên còn tồn tại và không bị khóa
		var member authmodels.Member
		if cached, ok := memberCache.Get(claims.MemberID); ok {
			member = cached.(authmodels.Member)
		} else {
			memberColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Members)
			if !ok {
				HandleErrorResponse(c, common.ErrConnection)
				return nil
			}
			if err := memberColl.FindOne(context.Background(), bson.M{"memberId": claims.MemberID}).Decode(&member); err != nil {
				logger.GetAppLogger().WithFields(logrus.Fields{
					"path":     c.Path(),
					"memberId": claims.MemberID,
				}).Warn("❌ [AUTH] Không tìm thấy thành viên của token")
				HandleErrorResponse(c, common.ErrTokenInvalid)
				return nil
			}
			memberCache.Set(claims.MemberID, member)
		}
		if member.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthToken,
				"Tài khoản đã bị khóa",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		c.Locals("member_id", claims.MemberID)
		c.Locals("member_farm_no", member.FarmNo)
		c.Locals("member_lang", member.Lang)
		return c.Next()
	}
}

// ShareSessionMiddleware xác thực token phiên xem báo cáo qua share link.
// Phiên hợp lệ được lưu masterSeq, farmNo, lang, shareToken vào context,
// handler phía sau chỉ được đọc đúng báo cáo gắn với phiên.
func ShareSessionMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims, err := authsvc.ParseSessionToken(global.MongoDB_ServerConfig.JwtSecret, parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path": c.Path(),
			}).Warn("❌ [AUTH] Token phiên xem báo cáo không hợp lệ")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		c.Locals("session_master_seq", claims.MasterSeq)
		c.Locals("session_farm_no", claims.FarmNo)
		c.Locals("session_lang", claims.Lang)
		c.Locals("session_share_token", claims.ShareToken)
		return c.Next()
	}
}
