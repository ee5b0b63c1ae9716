package weeklysvc

import (
	"testing"

	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
)

func TestDecodeShipment_Du13DongVaDongVangToanNil(t *testing.T) {
	svc := &WeeklyService{}
	rows := []models.WeekSub{
		{
			Gubun: GubunShipment, SubGubun: SubGubunStat,
			Cnt1: models.IntPtr(100), Val1: models.FloatPtr(80),
			Val2: models.FloatPtr(88.4), Val3: models.FloatPtr(21.2),
		},
		{
			Gubun: GubunShipment, SubGubun: SubGubunRow, SortNo: 1,
			Str1: "23", Str2: "24", Str3: "25",
			Cnt1: models.IntPtr(30), Cnt2: models.IntPtr(0), Cnt3: models.IntPtr(70),
			Val1: models.FloatPtr(100),
		},
	}
	out := svc.decodeShipment(rows)

	if len(out.Table.Rows) != 13 {
		t.Fatalf("bảng chéo phải đủ 13 dòng, có %d", len(out.Table.Rows))
	}
	if len(out.Table.Days) != 3 {
		t.Fatalf("nhãn ngày phải là 3, có %d", len(out.Table.Days))
	}

	first := out.Table.Rows[0]
	if len(first.Data) != 3 {
		t.Fatalf("số ô mỗi dòng phải khớp số ngày, có %d", len(first.Data))
	}
	if first.Data[0] == nil || *first.Data[0] != 30 {
		t.Errorf("ô ngày đầu = %v, muốn 30", first.Data[0])
	}
	if first.Data[1] == nil || *first.Data[1] != 0 {
		t.Errorf("giá trị 0 trong bảng chéo phải giữ 0, có %v", first.Data[1])
	}
	if first.Sum == nil || *first.Sum != 100 {
		t.Errorf("tổng dòng = %v, muốn 100", first.Sum)
	}

	// Dòng không có nguồn: mọi ô và tổng đều nil
	second := out.Table.Rows[1]
	if second.Sum != nil || second.Data[0] != nil {
		t.Errorf("dòng vắng nguồn phải toàn nil: %+v", second)
	}
}

func TestDecodeShipment_TyLeCap1UuTienDongHopCachRoiStat(t *testing.T) {
	svc := &WeeklyService{}

	// Có dòng sortNo 4 thì lấy Val3 của dòng đó
	rows := []models.WeekSub{
		{Gubun: GubunShipment, SubGubun: SubGubunStat, Cnt1: models.IntPtr(100), Val1: models.FloatPtr(80)},
		{Gubun: GubunShipment, SubGubun: SubGubunRow, SortNo: 4, Val3: models.FloatPtr(92.5)},
	}
	out := svc.decodeShipment(rows)
	if out.Metrics.Grade1Rate != 92.5 {
		t.Errorf("tỷ lệ cấp 1 = %v, muốn 92.5 từ dòng bảng chéo", out.Metrics.Grade1Rate)
	}

	// Không có dòng sortNo 4 thì lùi về STAT.Val1
	out = svc.decodeShipment(rows[:1])
	if out.Metrics.Grade1Rate != 80 {
		t.Errorf("tỷ lệ cấp 1 = %v, muốn 80 từ dòng STAT", out.Metrics.Grade1Rate)
	}
}

func TestDecodeShipment_BieuDoCapThemDangNgoai(t *testing.T) {
	svc := &WeeklyService{}
	rows := []models.WeekSub{
		{Gubun: GubunShipment, SubGubun: SubGubunStat, Cnt1: models.IntPtr(100)},
		{Gubun: GubunShipment, SubGubun: SubGubunRow, SortNo: 5, Val1: models.FloatPtr(50)},
		{Gubun: GubunShipment, SubGubun: SubGubunRow, SortNo: 6, Val1: models.FloatPtr(30)},
		{Gubun: GubunShipment, SubGubun: SubGubunRow, SortNo: 7, Val1: models.FloatPtr(10)},
	}
	out := svc.decodeShipment(rows)

	if len(out.GradeChart) != 4 {
		t.Fatalf("biểu đồ cấp phải có 4 cột khi còn dư 등외, có %d", len(out.GradeChart))
	}
	last := out.GradeChart[3]
	if last.Label != "등외" || last.Value != 10 {
		t.Errorf("cột 등외 = %+v, muốn 10", last)
	}

	// Tổng cấp bằng tổng xuất thì không thêm 등외
	rows[1].Val1 = models.FloatPtr(60)
	out = svc.decodeShipment(rows)
	if len(out.GradeChart) != 3 {
		t.Errorf("không dư thì chỉ 3 cột cấp, có %d", len(out.GradeChart))
	}
}

func TestDecodeShipment_CauHinhNuoiSongMacDinh(t *testing.T) {
	svc := &WeeklyService{}
	rows := []models.WeekSub{
		{Gubun: GubunShipment, SubGubun: SubGubunStat, Cnt1: models.IntPtr(10)},
	}
	out := svc.decodeShipment(rows)

	cfg := out.RearingConfig
	if cfg.ShipDay != 180 || cfg.WeanPeriod != 21 {
		t.Errorf("cấu hình mặc định sai: %+v", cfg)
	}
	if cfg.EuDays != 159 {
		t.Errorf("số ngày nuôi thịt = %d, muốn 180-21=159", cfg.EuDays)
	}
}
