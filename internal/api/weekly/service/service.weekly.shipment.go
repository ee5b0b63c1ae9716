// Package weeklysvc - giải mã popup xuất chuồng.
// File: service.weekly.shipment.go
package weeklysvc

import (
	weeklydto "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/dto"
	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
)

// 13 dòng cố định của bảng chéo xuất chuồng, tra dòng nguồn theo sortNo.
// Dòng nguồn vắng thì mọi ô là null, bảng vẫn đủ 13 dòng.
var shipmentRowDefs = []struct {
	SortNo   int
	Category string
	Sub      string
	GradeRow bool
}{
	{1, "출하두수", "두", false},
	{2, "이유두수", "두", false},
	{3, "육성율", "%", false},
	{4, "1등급", "합격율", false},
	{5, "등급", "1+", true},
	{6, "", "1", true},
	{7, "", "2", true},
	{8, "성별", "암", true},
	{9, "", "수", true},
	{10, "", "거세", true},
	{11, "총지육", "체중(Kg)", false},
	{12, "두당평균", "지육체중(Kg)", false},
	{13, "", "등지방두께", false},
}

// Sắp thứ tự sortNo trong shipmentRowDefs của các dòng đưa vào biểu đồ cấp thịt
const (
	shipmentSortGrade1Plus = 5
	shipmentSortGrade1     = 6
	shipmentSortGrade2     = 7
)

// decodeShipment dựng popup xuất chuồng từ nhóm SHIP:
// STAT (tóm tắt), ROW (bảng chéo), CHART (phân tích theo ngày), SCATTER (thân thịt).
func (s *WeeklyService) decodeShipment(rows []models.WeekSub) *weeklydto.ShipmentOutput {
	out := &weeklydto.ShipmentOutput{}

	stat := findSub(rows, SubGubunStat)

	rowMap := make(map[int]*models.WeekSub)
	for _, r := range filterSubs(rows, SubGubunRow) {
		r := r
		rowMap[r.SortNo] = &r
	}

	// Tỷ lệ đạt cấp 1 ưu tiên giá trị bình quân của dòng 합격율 (sortNo 4)
	grade1Rate := 0.0
	if oneRatioRow, ok := rowMap[4]; ok && oneRatioRow.Val3 != nil {
		grade1Rate = *oneRatioRow.Val3
	} else if stat != nil {
		grade1Rate = models.ValOrZero(stat.Val1)
	}

	if stat != nil {
		out.Metrics = weeklydto.ShipmentMetrics{
			TotalCount:    models.CntOrZero(stat.Cnt1),
			YearTotal:     models.CntOrZero(stat.Cnt2),
			Grade1Cnt:     models.CntOrZero(stat.Cnt3),
			Grade1Rate:    grade1Rate,
			AvgCarcass:    models.ValOrZero(stat.Val2),
			AvgBackfat:    models.ValOrZero(stat.Val3),
			FarmPrice:     models.ValOrZero(stat.Val4),
			NationalPrice: models.ValOrZero(stat.Val5),
		}
		// Cấu hình tính tỷ lệ nuôi sống, thiếu thì dùng mặc định 180/21 ngày
		shipDay := models.CntOrZero(stat.Cnt4)
		if shipDay == 0 {
			shipDay = 180
		}
		weanPeriod := models.CntOrZero(stat.Cnt5)
		if weanPeriod == 0 {
			weanPeriod = 21
		}
		euDays := models.CntOrZero(stat.Cnt6)
		if euDays == 0 {
			euDays = shipDay - weanPeriod
		}
		out.RearingConfig = weeklydto.ShipmentRearingConfig{
			ShipDay:    shipDay,
			WeanPeriod: weanPeriod,
			EuDays:     euDays,
			EuDateFrom: stat.Str1,
			EuDateTo:   stat.Str2,
		}
	}

	// Nhãn ngày lấy từ dòng đầu của bảng chéo
	var days []string
	if firstRow, ok := rowMap[1]; ok {
		for i := 1; i <= 7; i++ {
			if d := firstRow.StrAt(i); d != "" {
				days = append(days, d)
			}
		}
	}
	out.Table.Days = days

	out.Table.Rows = make([]weeklydto.ShipmentRow, 0, len(shipmentRowDefs))
	for _, def := range shipmentRowDefs {
		row := weeklydto.ShipmentRow{
			Category: def.Category,
			Sub:      def.Sub,
			GradeRow: def.GradeRow,
			Data:     make([]*int, len(days)),
		}
		if src, ok := rowMap[def.SortNo]; ok {
			for i := 0; i < len(days) && i < 7; i++ {
				row.Data[i] = src.CntAt(i + 1)
			}
			row.Sum = src.Val1
			row.Rate = src.Val2
			row.Avg = src.Val3
		}
		out.Table.Rows = append(out.Table.Rows, row)
	}

	// Biểu đồ cấp thịt: 1+, 1, 2 từ tổng các dòng cấp, thêm 등외 khi còn dư
	gradeSum := 0.0
	grades := []struct {
		name   string
		sortNo int
	}{
		{"1+", shipmentSortGrade1Plus},
		{"1", shipmentSortGrade1},
		{"2", shipmentSortGrade2},
	}
	for _, g := range grades {
		value := 0.0
		if src, ok := rowMap[g.sortNo]; ok {
			value = models.ValOrZero(src.Val1)
		}
		gradeSum += value
		out.GradeChart = append(out.GradeChart, weeklydto.ChartItem{Label: g.name, Value: value})
	}
	if gradeOut := float64(out.Metrics.TotalCount) - gradeSum; gradeOut > 0 {
		out.GradeChart = append(out.GradeChart, weeklydto.ChartItem{Label: "등외", Value: gradeOut})
	}

	// Biểu đồ phân tích theo ngày xuất
	for _, r := range filterSubs(rows, SubGubunChart) {
		out.AnalysisChart.Dates = append(out.AnalysisChart.Dates, r.Str1)
		out.AnalysisChart.ShipCount = append(out.AnalysisChart.ShipCount, models.CntOrZero(r.Cnt1))
		out.AnalysisChart.AvgWeight = append(out.AnalysisChart.AvgWeight, models.ValOrZero(r.Val1))
		out.AnalysisChart.AvgBackfat = append(out.AnalysisChart.AvgBackfat, models.ValOrZero(r.Val2))
	}

	// Phân bố thân thịt: trọng lượng x mỡ lưng x số con, truyền thẳng cho frontend
	for _, r := range filterSubs(rows, SubGubunScatter) {
		out.Scatter = append(out.Scatter, weeklydto.ScatterPoint{
			X:   models.ValOrZero(r.Val1),
			Y:   models.ValOrZero(r.Val2),
			Cnt: models.CntOrZero(r.Cnt1),
		})
	}
	return out
}
