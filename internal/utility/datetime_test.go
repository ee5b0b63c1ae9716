package utility

import (
	"testing"
	"time"
)

func TestParseExpireDateKST_CuoiNgayKST(t *testing.T) {
	got := ParseExpireDateKST("20250115")
	if got.Hour() != 23 || got.Minute() != 59 || got.Second() != 59 {
		t.Errorf("ParseExpireDateKST phải trả về 23:59:59, có %v", got)
	}
	// 23:59:59 KST = 14:59:59 UTC cùng ngày
	utc := got.UTC()
	if utc.Hour() != 14 || utc.Day() != 15 {
		t.Errorf("quy đổi UTC sai: %v", utc)
	}
}

func TestParseExpireDateKST_SaiDinhDang(t *testing.T) {
	for _, s := range []string{"", "2025", "2025-01-15", "abcdefgh"} {
		got := ParseExpireDateKST(s)
		if !got.Equal(time.Unix(0, 0)) {
			t.Errorf("chuỗi %q phải trả về mốc 0, có %v", s, got)
		}
	}
}

func TestAddDaysYYYYMMDD(t *testing.T) {
	tests := []struct {
		in   string
		days int
		want string
	}{
		{"20241229", 7, "20250105"},  // qua năm mới
		{"20250101", -7, "20241225"}, // lùi về năm trước
		{"20240228", 1, "20240229"},  // năm nhuận
		{"20250110", 0, "20250110"},
	}
	for _, tt := range tests {
		if got := AddDaysYYYYMMDD(tt.in, tt.days); got != tt.want {
			t.Errorf("AddDaysYYYYMMDD(%s, %d) = %s, muốn %s", tt.in, tt.days, got, tt.want)
		}
	}
}

func TestAddDaysYYYYMMDD_SaiDinhDangGiuNguyen(t *testing.T) {
	if got := AddDaysYYYYMMDD("xx", 3); got != "xx" {
		t.Errorf("chuỗi sai định dạng phải giữ nguyên, có %s", got)
	}
}

func TestFormatMMDD(t *testing.T) {
	if got := FormatMMDD("20241229"); got != "12.29" {
		t.Errorf("FormatMMDD = %s, muốn 12.29", got)
	}
	if got := FormatMMDD("bad"); got != "" {
		t.Errorf("chuỗi sai định dạng phải trả về rỗng, có %s", got)
	}
}
