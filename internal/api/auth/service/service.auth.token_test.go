package authsvc

import (
	"errors"
	"testing"
	"time"

	weekmodels "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
)

func TestShareTokenPattern(t *testing.T) {
	valid, err := newShareToken(1001, 55)
	if err != nil {
		t.Fatalf("newShareToken lỗi: %v", err)
	}
	if !shareTokenPattern.MatchString(valid) {
		t.Errorf("token vừa sinh phải khớp định dạng: %s", valid)
	}
	// Chữ hoa vẫn hợp lệ
	if !shareTokenPattern.MatchString("ABCDEF0123456789abcdef0123456789ABCDEF0123456789abcdef0123456789"[:64]) {
		t.Error("hex chữ hoa phải được chấp nhận")
	}

	invalid := []string{
		"",
		"abc",
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", // không phải hex
		valid + "0", // 65 ký tự
		valid[:63],  // 63 ký tự
	}
	for _, s := range invalid {
		if shareTokenPattern.MatchString(s) {
			t.Errorf("chuỗi %q không được khớp định dạng token", s)
		}
	}
}

func TestNewShareToken_KhongTrung(t *testing.T) {
	a, _ := newShareToken(1, 1)
	b, _ := newShareToken(1, 1)
	if a == b {
		t.Error("hai token sinh liên tiếp không được trùng nhau")
	}
}

func TestEvaluateShareToken_HetHanCuoiNgayKST(t *testing.T) {
	master := &weekmodels.WeekMaster{
		MasterSeq:     1001,
		FarmNo:        55,
		FarmNm:        "농장A",
		TokenExpireDt: "20250110",
	}
	kst := time.FixedZone("KST", 9*60*60)

	// 23:59:00 ngày hết hạn vẫn còn hiệu lực
	stillValid := time.Date(2025, 1, 10, 23, 59, 0, 0, kst)
	if got := evaluateShareToken(master, stillValid, false); !got.Valid || got.Expired {
		t.Errorf("trước 23:59:59 ngày hết hạn phải còn hiệu lực: %+v", got)
	}

	// 00:00:01 ngày hôm sau là hết hạn
	expired := time.Date(2025, 1, 11, 0, 0, 1, 0, kst)
	got := evaluateShareToken(master, expired, false)
	if got.Valid || !got.Expired {
		t.Errorf("sau ngày hết hạn phải báo expired: %+v", got)
	}
	if got.MasterSeq != 1001 || got.FarmNo != 55 {
		t.Errorf("kết quả hết hạn vẫn phải giữ định danh báo cáo: %+v", got)
	}

	// Đăng nhập đúng trại bỏ qua kiểm tra hết hạn
	if got := evaluateShareToken(master, expired, true); !got.Valid || got.Expired {
		t.Errorf("skipExpiryCheck phải bỏ qua hết hạn: %+v", got)
	}
}

func TestEvaluateShareToken_KhongDatNgayHetHan(t *testing.T) {
	// Báo cáo không đặt tokenExpireDt thì link có hiệu lực vô thời hạn
	master := &weekmodels.WeekMaster{
		MasterSeq: 1001,
		FarmNo:    55,
	}
	got := evaluateShareToken(master, time.Now(), false)
	if !got.Valid || got.Expired {
		t.Errorf("token không có ngày hết hạn phải còn hiệu lực: %+v", got)
	}
}

func TestEvaluateShareToken_NgayHetHanSaiDinhDang(t *testing.T) {
	master := &weekmodels.WeekMaster{TokenExpireDt: "bad-date"}
	got := evaluateShareToken(master, time.Now(), false)
	if !got.Expired {
		t.Errorf("ngày hết hạn sai định dạng phải coi là đã hết hạn: %+v", got)
	}
}

func TestShareTokenFilter_ChiBaoCaoComplete(t *testing.T) {
	filter := shareTokenFilter("ABCDEF00" + "abcdef0123456789abcdef0123456789abcdef0123456789abcdef01")
	if filter["status"] != weekmodels.StatusComplete {
		t.Errorf("filter tra token phải giới hạn báo cáo COMPLETE: %+v", filter)
	}
	if filter["shareToken"] != "abcdef00"+"abcdef0123456789abcdef0123456789abcdef0123456789abcdef01" {
		t.Errorf("token phải được đưa về chữ thường trước khi tra: %+v", filter)
	}
}

func TestExpiredShareTokenError_KemCoFarmMismatch(t *testing.T) {
	if err := expiredShareTokenError(false); err != common.ErrShareTokenExpired {
		t.Errorf("không lệch trại phải trả lỗi hết hạn chuẩn: %v", err)
	}

	err := expiredShareTokenError(true)
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("lỗi hết hạn lệch trại phải là *common.Error: %v", err)
	}
	if appErr.StatusCode != common.StatusGone {
		t.Errorf("status phải là 410: %d", appErr.StatusCode)
	}
	details, ok := appErr.Details.(map[string]any)
	if !ok || details["farmMismatch"] != true {
		t.Errorf("details phải mang cờ farmMismatch để client bỏ phiên cũ: %+v", appErr.Details)
	}
}

func TestSessionToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	tokenStr, err := CreateSessionToken(secret, "aabb", 1001, 55, "vi", time.Hour)
	if err != nil {
		t.Fatalf("CreateSessionToken lỗi: %v", err)
	}

	claims, err := ParseSessionToken(secret, tokenStr)
	if err != nil {
		t.Fatalf("ParseSessionToken lỗi: %v", err)
	}
	if claims.Type != "share_session" {
		t.Errorf("claim type sai: %s", claims.Type)
	}
	if claims.MasterSeq != 1001 || claims.FarmNo != 55 || claims.Lang != "vi" || claims.ShareToken != "aabb" {
		t.Errorf("claims không khớp: %+v", claims)
	}

	// Sai secret phải bị từ chối
	if _, err := ParseSessionToken("wrong-secret", tokenStr); err == nil {
		t.Error("token ký sai secret phải bị từ chối")
	}
}

func TestParseSessionToken_HetHan(t *testing.T) {
	secret := "test-secret"
	tokenStr, err := CreateSessionToken(secret, "aabb", 1, 1, "ko", -time.Minute)
	if err != nil {
		t.Fatalf("CreateSessionToken lỗi: %v", err)
	}
	if _, err := ParseSessionToken(secret, tokenStr); err == nil {
		t.Error("token phiên hết hạn phải bị từ chối")
	}
}
