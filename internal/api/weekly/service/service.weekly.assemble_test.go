package weeklysvc

import (
	"testing"

	weeklydto "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/dto"
	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
)

func TestBuildKpi_RutChiSoTuPopupDaGiaiMa(t *testing.T) {
	popups := map[string]interface{}{
		"modon": &weeklydto.ModonOutput{Chart: []weeklydto.ChartItem{
			{Label: "후보돈", Value: 12},
			{Label: "1산", Value: 8},
		}},
		"mating": &weeklydto.MatingOutput{
			Total: weeklydto.MatingRow{Type: "계", Planned: 20, Actual: 18, Rate: "90.0"},
		},
		"farrowing": &weeklydto.FarrowingOutput{Planned: 10, Actual: 9, Rate: "90.0"},
		"accident": &weeklydto.AccidentOutput{Table: []weeklydto.AccidentRow{
			{Type: "유산", LastWeek: models.IntPtr(2)},
			{Type: "재발", LastWeek: models.IntPtr(3)},
			{Type: "공태"},
		}},
		"shipment": &weeklydto.ShipmentOutput{
			Metrics: weeklydto.ShipmentMetrics{TotalCount: 150},
		},
	}

	kpi := buildKpi(popups)

	if kpi.SowTotal != 20 {
		t.Errorf("Tổng tồn nái phải là tổng biểu đồ modon, mong 20, nhận %v", kpi.SowTotal)
	}
	if kpi.Mating == nil || kpi.Mating.Planned != 20 || kpi.Mating.Actual != 18 || kpi.Mating.Rate != "90.0" {
		t.Errorf("Chỉ số phối giống sai: %+v", kpi.Mating)
	}
	if kpi.Farrowing == nil || kpi.Farrowing.Actual != 9 {
		t.Errorf("Chỉ số đẻ sai: %+v", kpi.Farrowing)
	}
	if kpi.AccidentLastWeek != 5 {
		t.Errorf("Sự cố tuần trước phải cộng dồn các dòng, ô nil tính 0, mong 5, nhận %d", kpi.AccidentLastWeek)
	}
	if kpi.ShipmentCount != 150 {
		t.Errorf("Số xuất chuồng mong 150, nhận %d", kpi.ShipmentCount)
	}
}

func TestBuildLastWeek_TuBoDemTrenMaster(t *testing.T) {
	master := &models.WeekMaster{
		ReportWeekNo:   24,
		DtFrom:         "20250602",
		DtTo:           "20250608",
		ModonRegCnt:    310,
		ModonSangsiCnt: 290,
		ModonRegChg:    models.IntPtr(-3),
		LastGbCnt:      18,
		LastGbSum:      402,
		LastBmCnt:      15,
		LastBmAvgLive:  11.4,
		LastEuJdCnt:    160,
		LastEuChgKg:    models.FloatPtr(0.2),
		LastShCnt:      120,
		LastShAvgKg:    88.5,
	}

	got := buildLastWeek(master)

	if got.WeekNum != 24 || got.From != "06.02" || got.To != "06.08" {
		t.Errorf("khoảng tuần trước sai: %+v", got)
	}
	if got.Modon.RegCnt != 310 || got.Modon.SangsiCnt != 290 {
		t.Errorf("tồn nái tuần trước sai: %+v", got.Modon)
	}
	if got.Modon.RegChange == nil || *got.Modon.RegChange != -3 {
		t.Errorf("biến động đăng ký phải giữ giá trị âm: %+v", got.Modon.RegChange)
	}
	if got.Modon.SangsiChange != nil {
		t.Errorf("biến động không lưu trên master phải là nil để client ẩn mũi tên: %+v", got.Modon.SangsiChange)
	}
	if got.Mating.Cnt != 18 || got.Mating.Sum != 402 {
		t.Errorf("số phối tuần trước sai: %+v", got.Mating)
	}
	if got.Farrowing.Cnt != 15 || got.Farrowing.AvgLive != 11.4 {
		t.Errorf("kết quả đẻ tuần trước sai: %+v", got.Farrowing)
	}
	if got.Weaning.PigletCnt != 160 || got.Weaning.ChangeWeight == nil || *got.Weaning.ChangeWeight != 0.2 {
		t.Errorf("kết quả cai sữa tuần trước sai: %+v", got.Weaning)
	}
	if got.Shipment.Cnt != 120 || got.Shipment.Avg != 88.5 {
		t.Errorf("xuất chuồng tuần trước sai: %+v", got.Shipment)
	}
}

func TestBuildKpi_PopupLoiKhongChanChiSoKhac(t *testing.T) {
	// Popup cai sữa giải mã lỗi nên không có trong map, các chỉ số khác vẫn dựng được
	popups := map[string]interface{}{
		"farrowing": &weeklydto.FarrowingOutput{Planned: 7, Actual: 7, Rate: "100.0"},
	}

	kpi := buildKpi(popups)

	if kpi.Weaning != nil {
		t.Errorf("Popup cai sữa không có thì chỉ số cai sữa phải bỏ trống, nhận %+v", kpi.Weaning)
	}
	if kpi.Farrowing == nil || kpi.Farrowing.Rate != "100.0" {
		t.Errorf("Chỉ số đẻ phải dựng được dù thiếu popup khác: %+v", kpi.Farrowing)
	}
	if kpi.SowTotal != 0 {
		t.Errorf("Thiếu popup modon thì tổng tồn nái là 0, nhận %v", kpi.SowTotal)
	}
}
