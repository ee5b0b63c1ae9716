package weeklysvc

import (
	"testing"

	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
)

func TestDecodeCalendar_TuanVatQuaNamMoi(t *testing.T) {
	master := &models.WeekMaster{DtFrom: "20241222", DtTo: "20241228"}
	rows := []models.WeekSub{
		{Gubun: GubunSchedule, SubGubun: "-", Str1: "12.29", Str2: "01.04", Cnt7: models.IntPtr(52)},
	}
	out := decodeCalendar(rows, master)

	if out.PeriodFrom != "20241229" {
		t.Errorf("PeriodFrom = %s, muốn 20241229", out.PeriodFrom)
	}
	if out.PeriodTo != "20250104" {
		t.Errorf("PeriodTo = %s, muốn 20250104 (năm sau)", out.PeriodTo)
	}
	if out.PeriodLabel != "12.29 - 01.04" {
		t.Errorf("PeriodLabel = %s, muốn '12.29 - 01.04'", out.PeriodLabel)
	}
	if out.WeekNum != 52 {
		t.Errorf("WeekNum = %d, muốn 52", out.WeekNum)
	}
}

func TestDecodeCalendar_NhanThangMotKhiDtToConThangMuoiHai(t *testing.T) {
	master := &models.WeekMaster{DtFrom: "20241225", DtTo: "20241231"}
	rows := []models.WeekSub{
		{Gubun: GubunSchedule, SubGubun: "-", Str1: "01.01", Str2: "01.07"},
	}
	out := decodeCalendar(rows, master)

	if out.PeriodFrom != "20250101" {
		t.Errorf("PeriodFrom = %s, muốn 20250101", out.PeriodFrom)
	}
	if out.PeriodTo != "20250107" {
		t.Errorf("PeriodTo = %s, muốn 20250107", out.PeriodTo)
	}
}

func TestDecodeCalendar_ThieuNhanThiTinhTuDtTo(t *testing.T) {
	master := &models.WeekMaster{DtFrom: "20241222", DtTo: "20241228"}
	out := decodeCalendar(nil, master)

	// Không có dòng tóm tắt: khoảng suy từ DtTo, cộng ngày qua năm mới vẫn đúng
	if out.PeriodFrom != "20241229" || out.PeriodTo != "20250104" {
		t.Errorf("khoảng suy từ DtTo sai: %s - %s", out.PeriodFrom, out.PeriodTo)
	}

	// Nhãn ngày suy từ DtTo+1..+7, bỏ số 0 đầu
	want := []string{"29", "30", "31", "1", "2", "3", "4"}
	if len(out.DayHeaders) != 7 {
		t.Fatalf("phải có 7 nhãn ngày, có %d", len(out.DayHeaders))
	}
	for i, w := range want {
		if out.DayHeaders[i] != w {
			t.Errorf("nhãn ngày [%d] = %s, muốn %s", i, out.DayHeaders[i], w)
		}
	}
}

func TestDecodeCalendar_HaiCachThaiKiemLoaiTruNhau(t *testing.T) {
	master := &models.WeekMaster{DtFrom: "20250601", DtTo: "20250607"}

	rowCodes := func(out []string, rows []models.WeekSub) []string {
		dec := decodeCalendar(rows, master)
		for _, r := range dec.Rows {
			out = append(out, r.Code)
		}
		return out
	}

	// Cấu hình công việc nái: chỉ dòng IMSIN
	withImsin := rowCodes(nil, []models.WeekSub{
		{Gubun: GubunSchedule, SubGubun: SubGubunCal, Code1: "IMSIN", Cnt1: models.IntPtr(3)},
	})
	for _, code := range withImsin {
		if code == "IMSIN_3W" || code == "IMSIN_4W" {
			t.Errorf("có IMSIN thì không được hiện %s", code)
		}
	}
	if len(withImsin) != 5 {
		t.Errorf("lưới IMSIN phải có 5 dòng, có %d: %v", len(withImsin), withImsin)
	}

	// Mặc định trang trại: hai dòng 3 tuần và 4 tuần
	withDefault := rowCodes(nil, nil)
	for _, code := range withDefault {
		if code == "IMSIN" {
			t.Error("không cấu hình thì không được hiện dòng IMSIN")
		}
	}
	if len(withDefault) != 6 {
		t.Errorf("lưới mặc định phải có 6 dòng, có %d: %v", len(withDefault), withDefault)
	}
}

func TestDecodeCalendar_AnSoKhongTrongO(t *testing.T) {
	master := &models.WeekMaster{DtFrom: "20250601", DtTo: "20250607"}
	rows := []models.WeekSub{
		{
			Gubun: GubunSchedule, SubGubun: SubGubunCal, Code1: "GB",
			Cnt1: models.IntPtr(2), Cnt2: models.IntPtr(0),
		},
	}
	out := decodeCalendar(rows, master)

	var gb *struct {
		Cells []*int
	}
	for _, r := range out.Rows {
		if r.Code == "GB" {
			gb = &struct{ Cells []*int }{Cells: r.Cells}
		}
	}
	if gb == nil {
		t.Fatal("thiếu dòng GB trong lưới")
	}
	if gb.Cells[0] == nil || *gb.Cells[0] != 2 {
		t.Errorf("ô có việc = %v, muốn 2", gb.Cells[0])
	}
	if gb.Cells[1] != nil {
		t.Errorf("ô 0 việc phải ẩn (nil), có %v", gb.Cells[1])
	}
	if gb.Cells[6] != nil {
		t.Errorf("ô không dữ liệu phải nil, có %v", gb.Cells[6])
	}
}

func TestDecodeScheduleHelp_NhanBietGiaTriMacDinhTrangTrai(t *testing.T) {
	rows := []models.WeekSub{
		{
			Gubun: GubunSchedule, SubGubun: SubGubunHelp,
			Str1: "농장기본값 : 재발확인 21일",
			Str2: "임신기간 : 114일",
		},
	}
	help := decodeScheduleHelp(rows)
	if help == nil {
		t.Fatal("có dòng HELP thì phải trả thuyết minh")
	}
	if !help.IsFarmMating {
		t.Error("chuỗi chứa 농장기본값 phải đánh dấu là mặc định trang trại")
	}
	if help.IsFarmFarrowing {
		t.Error("chuỗi không chứa 농장기본값 thì không được đánh dấu")
	}

	if decodeScheduleHelp(nil) != nil {
		t.Error("không có dòng HELP thì trả nil")
	}
}
