package weeklysvc

import (
	"testing"

	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
)

func TestCalcRate(t *testing.T) {
	tests := []struct {
		actual  int
		planned int
		want    string
	}{
		{5, 10, "50.0%"},
		{1, 3, "33.3%"},
		{0, 10, "0.0%"},
		{5, 0, "-"},  // kế hoạch 0 không chia
		{5, -1, "-"}, // kế hoạch âm cũng không chia
	}
	for _, tt := range tests {
		if got := CalcRate(tt.actual, tt.planned); got != tt.want {
			t.Errorf("CalcRate(%d, %d) = %s, muốn %s", tt.actual, tt.planned, got, tt.want)
		}
	}
}

func TestDecodeModon_DuDongVaPhanBietNullVoiZero(t *testing.T) {
	rows := []models.WeekSub{
		{Gubun: GubunModon, Code1: "1산", Cnt1: models.IntPtr(0), Cnt2: models.IntPtr(3)},
		{Gubun: GubunModon, Code1: "후보돈", Cnt1: models.IntPtr(12)},
	}
	out := decodeModon(rows)

	if len(out.Table) != 10 {
		t.Fatalf("bảng tồn nái phải đủ 10 lứa, có %d", len(out.Table))
	}

	// Lứa có dòng nguồn: 0 là giá trị thật, nil là cột vắng
	row1 := out.Table[2] // '1산'
	if row1.Hubo == nil || *row1.Hubo != 0 {
		t.Errorf("cột có giá trị 0 phải giữ 0, có %v", row1.Hubo)
	}
	if row1.Poyu != nil {
		t.Errorf("cột vắng dữ liệu phải là nil, có %v", row1.Poyu)
	}

	// Lứa không có dòng nguồn: mọi ô đều nil
	row2 := out.Table[3] // '2산'
	if row2.Hubo != nil || row2.Imsin != nil || row2.Change != nil {
		t.Errorf("lứa không có dòng nguồn phải toàn nil: %+v", row2)
	}

	// Biểu đồ: nil tính là 0 khi cộng dồn
	if len(out.Chart) != 10 {
		t.Fatalf("biểu đồ phải đủ 10 cột, có %d", len(out.Chart))
	}
	if out.Chart[0].Value != 12 {
		t.Errorf("tổng lứa 후보돈 = %v, muốn 12", out.Chart[0].Value)
	}
	if out.Chart[2].Value != 3 {
		t.Errorf("tổng lứa 1산 = %v, muốn 3 (0+3)", out.Chart[2].Value)
	}
	if out.Chart[3].Value != 0 {
		t.Errorf("lứa không có dòng nguồn thì tổng = 0, có %v", out.Chart[3].Value)
	}
}

func TestDecodeMating_TongThucHienUuTienCnt1(t *testing.T) {
	rows := []models.WeekSub{
		{
			Gubun: GubunMating, SubGubun: SubGubunStat,
			Cnt1: models.IntPtr(20), // tổng thực hiện từ nguồn
			Cnt4: models.IntPtr(5), Cnt7: models.IntPtr(10), // phối đầu
			Cnt6: models.IntPtr(8), Cnt8: models.IntPtr(10), // phối thường
			Cnt5: models.IntPtr(4), Cnt9: models.IntPtr(0), // phối lại, không kế hoạch
		},
		{Gubun: GubunMating, SubGubun: SubGubunChart, SortNo: 1, Code1: "~7", Cnt1: models.IntPtr(6)},
		{Gubun: GubunMating, SubGubun: SubGubunChart, SortNo: 2, Code1: "10", Cnt1: nil},
	}
	out := decodeMating(rows)

	if len(out.Table) != 3 {
		t.Fatalf("bảng phối giống phải có 3 loại, có %d", len(out.Table))
	}
	if out.Table[0].Rate != "50.0%" {
		t.Errorf("tỷ lệ phối đầu = %s, muốn 50.0%%", out.Table[0].Rate)
	}
	if out.Table[2].Rate != "-" {
		t.Errorf("kế hoạch 0 phải ra '-', có %s", out.Table[2].Rate)
	}

	// Tổng thực hiện lấy Cnt1 của dòng STAT thay vì cộng bảng
	if out.Total.Actual != 20 {
		t.Errorf("tổng thực hiện = %d, muốn 20", out.Total.Actual)
	}
	if out.Total.Planned != 20 {
		t.Errorf("tổng kế hoạch = %d, muốn 20", out.Total.Planned)
	}

	if len(out.Chart) != 2 || out.Chart[0].Label != "~7" || out.Chart[0].Value != 6 {
		t.Errorf("biểu đồ sai: %+v", out.Chart)
	}
	if out.Chart[1].Value != 0 {
		t.Errorf("cột biểu đồ nil phải tính là 0, có %v", out.Chart[1].Value)
	}
}

func TestDecodeAccident_HaiDongStatTheoSortNo(t *testing.T) {
	rows := []models.WeekSub{
		{Gubun: GubunAccident, SubGubun: SubGubunStat, SortNo: 1, Cnt1: models.IntPtr(2), Val1: models.FloatPtr(40)},
		{Gubun: GubunAccident, SubGubun: SubGubunStat, SortNo: 2, Cnt1: models.IntPtr(7), Val1: models.FloatPtr(35)},
		{Gubun: GubunAccident, SubGubun: SubGubunChart, Cnt1: models.IntPtr(1), Cnt8: models.IntPtr(3)},
	}
	out := decodeAccident(rows)

	if len(out.Table) != 8 {
		t.Fatalf("bảng sự cố phải đủ 8 nguyên nhân, có %d", len(out.Table))
	}
	first := out.Table[0]
	if first.LastWeek == nil || *first.LastWeek != 2 || first.LastWeekPct == nil || *first.LastWeekPct != 40 {
		t.Errorf("dòng tuần trước sai: %+v", first)
	}
	if first.LastMonth == nil || *first.LastMonth != 7 || first.LastMonthPct == nil || *first.LastMonthPct != 35 {
		t.Errorf("dòng tháng gần nhất sai: %+v", first)
	}

	if len(out.Chart) != 8 {
		t.Fatalf("biểu đồ phải đủ 8 khoảng ngày, có %d", len(out.Chart))
	}
	if out.Chart[0].Value != 1 || out.Chart[7].Value != 3 {
		t.Errorf("giá trị biểu đồ sai: %+v", out.Chart)
	}
	if out.Chart[1].Value != 0 {
		t.Errorf("khoảng không có dữ liệu phải là 0, có %v", out.Chart[1].Value)
	}
}

func TestDecodeAccident_PhanBietNullVoiZero(t *testing.T) {
	// Chỉ có dòng tuần trước, trong đó Cnt1 lưu 0 thật còn Cnt2 vắng
	rows := []models.WeekSub{
		{Gubun: GubunAccident, SubGubun: SubGubunStat, SortNo: 1, Cnt1: models.IntPtr(0)},
	}
	out := decodeAccident(rows)

	first := out.Table[0]
	if first.LastWeek == nil || *first.LastWeek != 0 {
		t.Errorf("số 0 lưu thật phải giữ nguyên là 0, có %+v", first.LastWeek)
	}
	second := out.Table[1]
	if second.LastWeek != nil || second.LastWeekPct != nil {
		t.Errorf("cột vắng dữ liệu phải là nil, có %+v", second)
	}
	// Không có dòng tháng gần nhất thì toàn bộ cột tháng là nil
	for i, row := range out.Table {
		if row.LastMonth != nil || row.LastMonthPct != nil {
			t.Errorf("thiếu dòng STAT sortNo 2 thì ô tháng dòng %d phải là nil: %+v", i, row)
		}
	}
}

func TestDecodeWeaning_Str1SaiDinhDangBoQua(t *testing.T) {
	rows := []models.WeekSub{
		{Gubun: GubunWeaning, SubGubun: SubGubunStat, Str1: "n/a", Cnt1: models.IntPtr(5), Cnt5: models.IntPtr(5)},
	}
	out := decodeWeaning(rows)
	if out.FarrowingBased.TotalBirth != 0 {
		t.Errorf("Str1 không phải số thì tổng sinh là 0, có %d", out.FarrowingBased.TotalBirth)
	}

	rows[0].Str1 = " 12 "
	out = decodeWeaning(rows)
	if out.FarrowingBased.TotalBirth != 12 {
		t.Errorf("Str1 là số có khoảng trắng phải đọc được, có %d", out.FarrowingBased.TotalBirth)
	}
}

func TestDecodeFarrowing_KhongCoDong(t *testing.T) {
	out := decodeFarrowing(nil)
	if out.Rate != "-" {
		t.Errorf("không có dữ liệu thì tỷ lệ phải là '-', có %s", out.Rate)
	}
	if len(out.Stats) != 0 {
		t.Errorf("không có dữ liệu thì stats rỗng, có %+v", out.Stats)
	}
}

func TestDecodeAlertMd_NoiTheoThuTu(t *testing.T) {
	rows := []models.WeekSub{
		{Gubun: GubunAlertMd, SortNo: 1, Str1: "모돈 ", Str2: "123번"},
		{Gubun: GubunAlertMd, SortNo: 2, Str1: "재발 확인 필요"},
		{Gubun: GubunAlertMd, SortNo: 3},
	}
	got := decodeAlertMd(rows)
	want := "모돈 123번\n재발 확인 필요"
	if got != want {
		t.Errorf("decodeAlertMd = %q, muốn %q", got, want)
	}
}
