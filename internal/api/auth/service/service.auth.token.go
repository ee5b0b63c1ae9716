// Package authsvc - service share token và phiên xem báo cáo.
// File: service.auth.token.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package authsvc

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	authdto "github.com/wiselake/inspig-repo-sub000/internal/api/auth/dto"
	models "github.com/wiselake/inspig-repo-sub000/internal/api/auth/models"
	weekmodels "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
	"github.com/wiselake/inspig-repo-sub000/internal/global"
	"github.com/wiselake/inspig-repo-sub000/internal/logger"
	"github.com/wiselake/inspig-repo-sub000/internal/utility"
)

// Share token luôn là SHA-256 hex 64 ký tự. Kiểm tra định dạng trước khi
// chạm database để chặn input rác từ URL công khai.
var shareTokenPattern = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)

// TokenService xử lý sinh, kiểm tra share token và phát hành phiên xem báo cáo.
type TokenService struct {
	masterColl *mongo.Collection
	memberColl *mongo.Collection
}

// NewTokenService tạo mới TokenService.
func NewTokenService() (*TokenService, error) {
	masterColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.WeekMasters)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.WeekMasters, common.ErrNotFound)
	}
	memberColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Members)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Members, common.ErrNotFound)
	}
	return &TokenService{
		masterColl: masterColl,
		memberColl: memberColl,
	}, nil
}

// GenerateShareToken sinh share token mới cho một báo cáo tuần và lưu vào master.
// Token cũ (nếu có) bị thay thế, link cũ mất hiệu lực ngay.
// Chỉ hỗ trợ reportType weekly.
func (s *TokenService) GenerateShareToken(ctx context.Context, input *authdto.GenerateShareTokenInput) (*authdto.ShareTokenInfo, error) {
	if input.ReportType != authdto.ReportTypeWeekly {
		return nil, common.ErrReportTypeUnsupport
	}

	filter := bson.M{"masterSeq": input.MasterSeq, "farmNo": input.FarmNo}
	var master weekmodels.WeekMaster
	if err := s.masterColl.FindOne(ctx, filter).Decode(&master); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, common.ErrNotFound
		}
		return nil, common.ConvertMongoError(err)
	}

	token, err := newShareToken(input.MasterSeq, input.FarmNo)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Sinh share token thất bại", common.StatusInternalServerError, err.Error())
	}

	expireDays := input.ExpireDays
	if expireDays <= 0 {
		expireDays = global.MongoDB_ServerConfig.ShareTokenExpireDays
	}
	expireDt := utility.AddDaysYYYYMMDD(utility.TodayKST(), expireDays)

	update := bson.M{"$set": bson.M{
		"shareToken":    token,
		"tokenExpireDt": expireDt,
		"updatedAt":     time.Now(),
	}}
	if _, err := s.masterColl.UpdateOne(ctx, filter, update); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"masterSeq": input.MasterSeq,
		"farmNo":    input.FarmNo,
		"expireDt":  expireDt,
	}).Info("Đã sinh share token báo cáo tuần")

	return &authdto.ShareTokenInfo{ShareToken: token, TokenExpireDt: expireDt}, nil
}

// GetShareToken trả về share token hiện tại của một báo cáo tuần.
// Báo cáo chưa sinh token trả về ErrNotFound.
func (s *TokenService) GetShareToken(ctx context.Context, masterSeq, farmNo int64) (*authdto.ShareTokenInfo, error) {
	filter := bson.M{"masterSeq": masterSeq, "farmNo": farmNo}
	var master weekmodels.WeekMaster
	if err := s.masterColl.FindOne(ctx, filter).Decode(&master); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, common.ErrNotFound
		}
		return nil, common.ConvertMongoError(err)
	}
	if master.ShareToken == "" {
		return nil, common.ErrNotFound
	}
	return &authdto.ShareTokenInfo{ShareToken: master.ShareToken, TokenExpireDt: master.TokenExpireDt}, nil
}

// newShareToken sinh token SHA-256 hex từ định danh báo cáo, thời điểm và 16 byte ngẫu nhiên
func newShareToken(masterSeq, farmNo int64) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	raw := fmt.Sprintf("%d:%d:%d:%s", masterSeq, farmNo, time.Now().UnixNano(), hex.EncodeToString(buf))
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:]), nil
}

// shareTokenFilter dựng filter tra token. Chỉ báo cáo COMPLETE được mở qua
// share link, báo cáo đang dựng dở không lộ ra ngoài dù token đúng.
func shareTokenFilter(token string) bson.M {
	return bson.M{
		"shareToken": strings.ToLower(token),
		"status":     weekmodels.StatusComplete,
	}
}

// ValidateShareToken kiểm tra share token.
// skipExpiryCheck = true khi người xem đã đăng nhập đúng trại của báo cáo,
// chủ trại được xem lại báo cáo của mình kể cả khi link đã hết hạn.
func (s *TokenService) ValidateShareToken(ctx context.Context, token string, skipExpiryCheck bool) (*models.ShareTokenResult, error) {
	if !shareTokenPattern.MatchString(token) {
		return &models.ShareTokenResult{Valid: false, Message: "Share token không đúng định dạng"}, nil
	}

	var master weekmodels.WeekMaster
	err := s.masterColl.FindOne(ctx, shareTokenFilter(token)).Decode(&master)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.ShareTokenResult{Valid: false, Message: "Share token không tồn tại"}, nil
		}
		return nil, common.ConvertMongoError(err)
	}

	result := evaluateShareToken(&master, utility.NowKST(), skipExpiryCheck)
	return &result, nil
}

// evaluateShareToken đánh giá hiệu lực của token đã tra được master.
// Hết hạn tính theo cuối ngày KST của tokenExpireDt. Báo cáo không đặt
// ngày hết hạn thì link có hiệu lực vô thời hạn.
func evaluateShareToken(master *weekmodels.WeekMaster, now time.Time, skipExpiryCheck bool) models.ShareTokenResult {
	result := models.ShareTokenResult{
		MasterSeq: master.MasterSeq,
		FarmNo:    master.FarmNo,
		FarmNm:    master.FarmNm,
	}
	if !skipExpiryCheck && master.TokenExpireDt != "" {
		expireAt := utility.ParseExpireDateKST(master.TokenExpireDt)
		if now.After(expireAt) {
			result.Expired = true
			result.Message = "Share link đã hết hạn"
			return result
		}
	}
	result.Valid = true
	return result
}

// expiredShareTokenError trả lỗi link hết hạn. Người xem đăng nhập trại khác
// nhận kèm cờ farmMismatch để client biết bỏ phiên đăng nhập cũ.
func expiredShareTokenError(farmMismatch bool) error {
	if !farmMismatch {
		return common.ErrShareTokenExpired
	}
	return common.NewError(
		common.ErrCodeShareToken,
		"Link chia sẻ đã hết hạn",
		common.StatusGone,
		map[string]any{"farmMismatch": true},
	)
}

// ViewByToken mở báo cáo qua share link và phát hành token phiên 1 giờ.
//
// Trình tự:
//  1. Người xem có JWT thành viên hợp lệ và đúng trại của báo cáo thì bỏ qua
//     kiểm tra hết hạn, ngôn ngữ lấy theo tài khoản.
//  2. JWT thành viên của trại khác bị bỏ, link bị kiểm tra hết hạn như khách.
//  3. Token không tồn tại trả 401, token hết hạn trả 410.
func (s *TokenService) ViewByToken(ctx context.Context, token, memberAuthHeader, acceptLang string) (*authdto.ViewSessionOutput, error) {
	cfg := global.MongoDB_ServerConfig
	lang := cfg.DefaultLang
	if acceptLang != "" {
		lang = acceptLang
	}

	skipExpiryCheck := false
	farmMismatch := false
	var memberClaims *models.MemberClaims

	if memberAuthHeader != "" {
		if claims, err := parseMemberToken(memberAuthHeader, cfg.JwtSecret); err == nil {
			memberClaims = claims
		}
		// JWT lỗi coi như khách vãng lai, không chặn việc xem qua link
	}

	// Vòng 1: kiểm tra token, tạm bỏ qua hết hạn nếu có đăng nhập
	if memberClaims != nil {
		skipExpiryCheck = true
		if memberClaims.Lang != "" {
			lang = memberClaims.Lang
		}
	}
	result, err := s.ValidateShareToken(ctx, token, skipExpiryCheck)
	if err != nil {
		return nil, err
	}
	if !result.Valid && !result.Expired {
		return nil, common.ErrShareTokenInvalid
	}

	// Đăng nhập bằng thành viên trại khác: bỏ đặc quyền đăng nhập,
	// kiểm tra lại hết hạn như khách vãng lai
	if memberClaims != nil && memberClaims.FarmNo != result.FarmNo {
		farmMismatch = true
		lang = cfg.DefaultLang
		if acceptLang != "" {
			lang = acceptLang
		}
		result, err = s.ValidateShareToken(ctx, token, false)
		if err != nil {
			return nil, err
		}
	}

	if result.Expired {
		return nil, expiredShareTokenError(farmMismatch)
	}
	if !result.Valid {
		return nil, common.ErrShareTokenInvalid
	}

	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	sessionToken, err := CreateSessionToken(cfg.JwtSecret, strings.ToLower(token), result.MasterSeq, result.FarmNo, lang, ttl)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Phát hành token phiên thất bại", common.StatusInternalServerError, err.Error())
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"masterSeq":    result.MasterSeq,
		"farmNo":       result.FarmNo,
		"farmMismatch": farmMismatch,
		"loggedIn":     memberClaims != nil,
	}).Info("Mở báo cáo tuần qua share link")

	return &authdto.ViewSessionOutput{
		SessionToken: sessionToken,
		ExpiresIn:    int(ttl.Seconds()),
		MasterSeq:    result.MasterSeq,
		FarmNo:       result.FarmNo,
		FarmNm:       result.FarmNm,
		Lang:         lang,
		FarmMismatch: farmMismatch,
	}, nil
}

// CreateSessionToken phát hành JWT phiên xem báo cáo với claim type share_session
func CreateSessionToken(secret, shareToken string, masterSeq, farmNo int64, lang string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := models.ShareSessionClaims{
		Type:       models.SessionTokenType,
		ShareToken: shareToken,
		FarmNo:     farmNo,
		MasterSeq:  masterSeq,
		Lang:       lang,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken kiểm tra JWT phiên xem báo cáo.
// Token sai chữ ký, hết hạn hoặc sai type đều trả về ErrTokenInvalid.
func ParseSessionToken(secret, tokenStr string) (*models.ShareSessionClaims, error) {
	claims := &models.ShareSessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("thuật toán ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	if claims.Type != models.SessionTokenType {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// parseMemberToken kiểm tra JWT đăng nhập của thành viên từ header Authorization
func parseMemberToken(authHeader, secret string) (*models.MemberClaims, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, common.ErrTokenInvalid
	}
	claims := &models.MemberClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("thuật toán ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
