// Package comsvc chứa service dữ liệu dùng chung: cache bảng mã và nội dung trợ giúp.
// File: service.com.code.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package comsvc

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	commodels "github.com/wiselake/inspig-repo-sub000/internal/api/com/models"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
	"github.com/wiselake/inspig-repo-sub000/internal/global"
	"github.com/wiselake/inspig-repo-sub000/internal/logger"
)

// Các pcode nghiệp vụ đang dùng trong báo cáo tuần
const (
	PcodeSowStatus   = "01"  // Trạng thái nái (nhóm đối tượng công việc)
	PcodeTask        = "02"  // Công việc định kỳ
	PcodeCullReason  = "031" // Lý do đào thải (mã theo hợp tác xã)
	CKeyCountryLang  = "941" // Quốc gia -> ngôn ngữ
	CKeyCountryLang2 = "942" // Bảng phụ, tra khi 941 không có
)

// Ngôn ngữ hỗ trợ
const (
	LangKo = "ko"
	LangEn = "en"
	LangVi = "vi"
)

// codeSnapshot là một bản chụp bất biến của toàn bộ bảng mã.
// Đọc không cần lock, Reload thay thế nguyên khối qua atomic.Pointer.
type codeSnapshot struct {
	codes       map[string]string // key "pcode:code:lang" -> tên mã
	countryLang map[string]string // mã quốc gia -> ngôn ngữ
	help        map[string]commodels.HelpMessage
}

// CodeService cache bảng mã hệ thống, mã hợp tác xã, CValue và nội dung trợ giúp.
type CodeService struct {
	sysColl    *mongo.Collection
	johapColl  *mongo.Collection
	cvalueColl *mongo.Collection
	helpColl   *mongo.Collection

	snapshot atomic.Pointer[codeSnapshot]
}

// NewCodeService tạo mới CodeService.
func NewCodeService() (*CodeService, error) {
	sysColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.CodeSys)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CodeSys, common.ErrNotFound)
	}
	johapColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.CodeJohap)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CodeJohap, common.ErrNotFound)
	}
	cvalueColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.CodeCValues)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CodeCValues, common.ErrNotFound)
	}
	helpColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.HelpMessages)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.HelpMessages, common.ErrNotFound)
	}

	s := &CodeService{
		sysColl:    sysColl,
		johapColl:  johapColl,
		cvalueColl: cvalueColl,
		helpColl:   helpColl,
	}
	s.snapshot.Store(&codeSnapshot{
		codes:       map[string]string{},
		countryLang: map[string]string{},
		help:        map[string]commodels.HelpMessage{},
	})
	return s, nil
}

// codeKey tạo key tra cứu thống nhất cho cache
func codeKey(pcode, code, lang string) string {
	return pcode + ":" + code + ":" + lang
}

// Reload nạp lại toàn bộ bảng mã từ MongoDB và thay thế cache nguyên khối.
// Bốn bảng được nạp song song. Một bảng lỗi thì giữ nguyên cache cũ.
func (s *CodeService) Reload(ctx context.Context) error {
	next := &codeSnapshot{
		codes:       make(map[string]string),
		countryLang: make(map[string]string),
		help:        make(map[string]commodels.HelpMessage),
	}

	var sysRows []commodels.CodeSys
	var johapRows []commodels.CodeJohap
	var cvalueRows []commodels.CodeCValue
	var helpRows []commodels.HelpMessage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.findAll(gctx, s.sysColl, &sysRows)
	})
	g.Go(func() error {
		return s.findAll(gctx, s.johapColl, &johapRows)
	})
	g.Go(func() error {
		return s.findAll(gctx, s.cvalueColl, &cvalueRows)
	})
	g.Go(func() error {
		return s.findAll(gctx, s.helpColl, &helpRows)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("nạp bảng mã thất bại: %w", err)
	}

	for _, row := range sysRows {
		next.codes[codeKey(row.Pcode, row.Code, row.Lang)] = row.CodeNm
	}
	for _, row := range johapRows {
		next.codes[codeKey(row.Pcode, row.Code, row.Lang)] = row.CodeNm
	}
	for _, row := range cvalueRows {
		if row.CKey == CKeyCountryLang || row.CKey == CKeyCountryLang2 {
			// Bảng 941 ưu tiên, 942 chỉ bổ sung mã chưa có
			if _, exists := next.countryLang[row.Code]; !exists || row.CKey == CKeyCountryLang {
				next.countryLang[row.Code] = row.CValue
			}
		}
	}
	for _, row := range helpRows {
		next.help[row.HelpKey+":"+row.Lang] = row
	}

	s.snapshot.Store(next)
	logger.GetAppLogger().WithFields(map[string]interface{}{
		"codes":       len(next.codes),
		"countryLang": len(next.countryLang),
		"help":        len(next.help),
	}).Info("Đã nạp lại cache bảng mã")
	return nil
}

// findAll đọc toàn bộ document của một collection vào slice đích
func (s *CodeService) findAll(ctx context.Context, coll *mongo.Collection, dest interface{}) error {
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, dest); err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// CodeName tra tên mã theo pcode, code và ngôn ngữ.
// Không có trong cache thì trả về chính mã gốc để báo cáo vẫn hiển thị được.
func (s *CodeService) CodeName(pcode, code, lang string) string {
	if code == "" {
		return ""
	}
	snap := s.snapshot.Load()
	if name, ok := snap.codes[codeKey(pcode, code, lang)]; ok {
		return name
	}
	// Fallback về tiếng Hàn trước khi trả mã gốc
	if lang != LangKo {
		if name, ok := snap.codes[codeKey(pcode, code, LangKo)]; ok {
			return name
		}
	}
	return code
}

// LangFromCountry tra ngôn ngữ hiển thị từ mã quốc gia qua bảng CValue 941/942.
// Không có thì trả về ngôn ngữ mặc định truyền vào.
func (s *CodeService) LangFromCountry(countryCode, defaultLang string) string {
	if countryCode == "" {
		return defaultLang
	}
	snap := s.snapshot.Load()
	if lang, ok := snap.countryLang[countryCode]; ok && lang != "" {
		return lang
	}
	return defaultLang
}

// HelpMessage tra nội dung trợ giúp theo key và ngôn ngữ, fallback tiếng Hàn.
// Không có trả về nil.
func (s *CodeService) HelpMessage(helpKey, lang string) *commodels.HelpMessage {
	snap := s.snapshot.Load()
	if msg, ok := snap.help[helpKey+":"+lang]; ok {
		return &msg
	}
	if lang != LangKo {
		if msg, ok := snap.help[helpKey+":"+LangKo]; ok {
			return &msg
		}
	}
	return nil
}

// ParseAcceptLanguage rút ngôn ngữ hỗ trợ đầu tiên từ header Accept-Language.
// Chỉ nhận ko/en/vi, còn lại trả về ngôn ngữ mặc định truyền vào.
func ParseAcceptLanguage(header, defaultLang string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(part)
		if idx := strings.Index(tag, ";"); idx >= 0 {
			tag = tag[:idx]
		}
		tag = strings.ToLower(strings.TrimSpace(tag))
		if idx := strings.Index(tag, "-"); idx >= 0 {
			tag = tag[:idx]
		}
		switch tag {
		case LangKo, LangEn, LangVi:
			return tag
		}
	}
	return defaultLang
}
