// Package weeklysvc - giải mã dữ liệu dòng rộng thành popup chi tiết.
// File: service.weekly.decoder.go
//
// Mỗi popup đọc một nhóm gubun trong week_subs và dựng cấu trúc hiển thị
// riêng. Quy ước chung: ô đếm nil là không có dữ liệu (frontend hiển thị '-'),
// còn khi cộng dồn cho biểu đồ thì nil tính là 0.
package weeklysvc

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	weeklydto "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/dto"
	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
)

// Loại popup hỗ trợ, ánh xạ sang gubun nguồn
var popupGubunMap = map[string]string{
	"modon":     GubunModon,
	"mating":    GubunMating,
	"farrowing": GubunFarrow,
	"weaning":   GubunWeaning,
	"accident":  GubunAccident,
	"culling":   GubunCulling,
	"shipment":  GubunShipment,
}

// GetPopup giải mã một popup chi tiết theo loại.
// Loại không hỗ trợ trả về ErrInvalidOperation.
func (s *WeeklyService) GetPopup(ctx context.Context, popupType string, masterSeq int64, lang string) (interface{}, error) {
	gubun, ok := popupGubunMap[popupType]
	if !ok {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Loại popup không hỗ trợ: %s", popupType),
			common.StatusBadRequest,
			nil,
		)
	}
	rows, err := s.FetchSubs(ctx, masterSeq, gubun)
	if err != nil {
		return nil, err
	}

	switch popupType {
	case "modon":
		return decodeModon(rows), nil
	case "mating":
		return decodeMating(rows), nil
	case "farrowing":
		return decodeFarrowing(rows), nil
	case "weaning":
		return decodeWeaning(rows), nil
	case "accident":
		return decodeAccident(rows), nil
	case "culling":
		return s.decodeCulling(rows, lang), nil
	default:
		return s.decodeShipment(rows), nil
	}
}

// CalcRate tính chuỗi phần trăm thực hiện so với kế hoạch.
// Kế hoạch <= 0 trả về '-' thay vì chia cho 0.
func CalcRate(actual, planned int) string {
	if planned <= 0 {
		return "-"
	}
	return strconv.FormatFloat(float64(actual)/float64(planned)*100, 'f', 1, 64) + "%"
}

// findSub tìm dòng đầu tiên theo subGubun, không có trả về nil
func findSub(rows []models.WeekSub, subGubun string) *models.WeekSub {
	for i := range rows {
		if rows[i].SubGubun == subGubun {
			return &rows[i]
		}
	}
	return nil
}

// findSubAt tìm dòng theo subGubun và sortNo
func findSubAt(rows []models.WeekSub, subGubun string, sortNo int) *models.WeekSub {
	for i := range rows {
		if rows[i].SubGubun == subGubun && rows[i].SortNo == sortNo {
			return &rows[i]
		}
	}
	return nil
}

// filterSubs lấy các dòng theo subGubun, giữ thứ tự sortNo đã sắp từ query
func filterSubs(rows []models.WeekSub, subGubun string) []models.WeekSub {
	var out []models.WeekSub
	for _, r := range rows {
		if r.SubGubun == subGubun {
			out = append(out, r)
		}
	}
	return out
}

// 10 lứa đẻ cố định của bảng tồn nái. Dòng nguồn tra theo Code1.
var modonParities = []struct {
	Parity string
	Group  string
}{
	{"후보돈", "hubo"},
	{"0산", "current"},
	{"1산", "current"},
	{"2산", "current"},
	{"3산", "current"},
	{"4산", "current"},
	{"5산", "current"},
	{"6산", "current"},
	{"7산", "current"},
	{"8산↑", "current"},
}

// decodeModon dựng popup tồn nái theo lứa đẻ.
// Bảng luôn đủ 10 lứa: lứa không có dòng nguồn thì mọi ô là null.
// Biểu đồ là tổng 5 trạng thái theo lứa, nil tính là 0.
func decodeModon(rows []models.WeekSub) *weeklydto.ModonOutput {
	byParity := make(map[string]*models.WeekSub, len(rows))
	for i := range rows {
		if rows[i].Code1 != "" {
			byParity[rows[i].Code1] = &rows[i]
		}
	}

	out := &weeklydto.ModonOutput{
		Table: make([]weeklydto.ModonRow, 0, len(modonParities)),
		Chart: make([]weeklydto.ChartItem, 0, len(modonParities)),
	}
	for _, p := range modonParities {
		row := weeklydto.ModonRow{Parity: p.Parity, Group: p.Group}
		sum := 0
		if src, ok := byParity[p.Parity]; ok {
			row.Hubo = src.Cnt1
			row.Imsin = src.Cnt2
			row.Poyu = src.Cnt3
			row.Eumo = src.Cnt4
			row.Sago = src.Cnt5
			row.Change = src.Cnt6
			sum = models.CntOrZero(src.Cnt1) + models.CntOrZero(src.Cnt2) +
				models.CntOrZero(src.Cnt3) + models.CntOrZero(src.Cnt4) + models.CntOrZero(src.Cnt5)
		}
		out.Table = append(out.Table, row)
		out.Chart = append(out.Chart, weeklydto.ChartItem{Label: p.Parity, Value: float64(sum)})
	}
	return out
}

// decodeMating dựng popup phối giống từ GB/STAT (tóm tắt) và GB/CHART
// (số phối theo khoảng ngày động dục lại).
//
// GB/STAT: Cnt1 tổng thực hiện, Cnt4/6/5 thực hiện phối đầu/thường/phối lại,
// Cnt7/8/9 kế hoạch tương ứng, Cnt2 sự cố, Cnt3 đẻ, Val1/2 bình quân ngày.
func decodeMating(rows []models.WeekSub) *weeklydto.MatingOutput {
	out := &weeklydto.MatingOutput{}
	stat := findSub(rows, SubGubunStat)

	if stat != nil {
		types := []struct {
			name    string
			planned *int
			actual  *int
		}{
			{"초교배", stat.Cnt7, stat.Cnt4},
			{"정상교배", stat.Cnt8, stat.Cnt6},
			{"재발교배", stat.Cnt9, stat.Cnt5},
		}
		for _, t := range types {
			planned := models.CntOrZero(t.planned)
			actual := models.CntOrZero(t.actual)
			out.Table = append(out.Table, weeklydto.MatingRow{
				Type:    t.name,
				Planned: planned,
				Actual:  actual,
				Rate:    CalcRate(actual, planned),
			})
		}
	}

	totalPlanned := 0
	totalActual := 0
	for _, r := range out.Table {
		totalPlanned += r.Planned
		totalActual += r.Actual
	}
	if stat != nil && stat.Cnt1 != nil {
		totalActual = *stat.Cnt1
	}
	out.Total = weeklydto.MatingRow{
		Type:    "합계",
		Planned: totalPlanned,
		Actual:  totalActual,
		Rate:    CalcRate(totalActual, totalPlanned),
	}

	for _, r := range filterSubs(rows, SubGubunChart) {
		out.Chart = append(out.Chart, weeklydto.ChartItem{
			Label: r.Code1,
			Value: float64(models.CntOrZero(r.Cnt1)),
		})
	}

	if stat != nil {
		out.Summary = &weeklydto.MatingSummary{
			TotalActual:   models.CntOrZero(stat.Cnt1),
			TotalPlanned:  models.CntOrZero(stat.Cnt7) + models.CntOrZero(stat.Cnt8),
			AccidentCnt:   models.CntOrZero(stat.Cnt2),
			FarrowingCnt:  models.CntOrZero(stat.Cnt3),
			AvgReturnDay:  models.ValOrZero(stat.Val1),
			AvgFirstGbDay: models.ValOrZero(stat.Val2),
		}
	}
	return out
}

// decodeFarrowing dựng popup đẻ từ dòng BM duy nhất.
// Tỷ lệ từng loại heo con tính trên tổng đẻ, riêng loại bỏ sơ sinh và
// gửi nuôi tính trên số đẻ sống.
func decodeFarrowing(rows []models.WeekSub) *weeklydto.FarrowingOutput {
	var stat *models.WeekSub
	if len(rows) > 0 {
		stat = &rows[0]
	}

	planned := 0
	actual := 0
	totalBorn := 0
	bornAlive := 0
	if stat != nil {
		planned = models.CntOrZero(stat.Cnt7)
		actual = models.CntOrZero(stat.Cnt1)
		totalBorn = models.CntOrZero(stat.Cnt2)
		bornAlive = models.CntOrZero(stat.Cnt3)
	}

	rateOfTotal := func(v int) string { return CalcRate(v, totalBorn) }
	rateOfLive := func(v int) string { return CalcRate(v, bornAlive) }

	out := &weeklydto.FarrowingOutput{
		Planned: planned,
		Actual:  actual,
		Rate:    CalcRate(actual, planned),
		Stats:   map[string]weeklydto.StatCell{},
	}
	if stat == nil {
		return out
	}

	out.Stats["totalBorn"] = weeklydto.StatCell{Sum: totalBorn, Avg: models.ValOrZero(stat.Val1)}
	out.Stats["bornAlive"] = weeklydto.StatCell{Sum: bornAlive, Avg: models.ValOrZero(stat.Val2), Rate: rateOfTotal(bornAlive)}
	out.Stats["stillborn"] = weeklydto.StatCell{Sum: models.CntOrZero(stat.Cnt4), Avg: models.ValOrZero(stat.Val3), Rate: rateOfTotal(models.CntOrZero(stat.Cnt4))}
	out.Stats["mummy"] = weeklydto.StatCell{Sum: models.CntOrZero(stat.Cnt5), Avg: models.ValOrZero(stat.Val4), Rate: rateOfTotal(models.CntOrZero(stat.Cnt5))}
	out.Stats["culling"] = weeklydto.StatCell{Sum: models.CntOrZero(stat.Cnt8), Avg: models.ValOrZero(stat.Val6), Rate: rateOfLive(models.CntOrZero(stat.Cnt8))}
	out.Stats["foster"] = weeklydto.StatCell{Sum: models.CntOrZero(stat.Cnt9), Avg: models.ValOrZero(stat.Val7), Rate: rateOfLive(models.CntOrZero(stat.Cnt9))}
	out.Stats["nursingStart"] = weeklydto.StatCell{Sum: models.CntOrZero(stat.Cnt6), Avg: models.ValOrZero(stat.Val5), Rate: rateOfTotal(models.CntOrZero(stat.Cnt6))}
	return out
}

// decodeWeaning dựng popup cai sữa từ dòng EU duy nhất
func decodeWeaning(rows []models.WeekSub) *weeklydto.WeaningOutput {
	var stat *models.WeekSub
	if len(rows) > 0 {
		stat = &rows[0]
	}

	out := &weeklydto.WeaningOutput{Stats: map[string]weeklydto.StatCell{}}
	if stat == nil {
		out.Rate = "-"
		return out
	}

	out.Planned = models.CntOrZero(stat.Cnt5)
	out.Actual = models.CntOrZero(stat.Cnt1)
	out.Rate = CalcRate(out.Actual, out.Planned)

	out.FarrowingBased = weeklydto.WeaningFarrowingBase{
		LiveBirth:    models.CntOrZero(stat.Cnt3),
		NursingStart: models.ValOrZero(stat.Val5),
	}
	if totalBirth, err := strconv.Atoi(strings.TrimSpace(stat.Str1)); err == nil {
		out.FarrowingBased.TotalBirth = totalBirth
	}

	out.Stats["weanPigs"] = weeklydto.StatCell{Sum: models.CntOrZero(stat.Cnt2), Avg: models.ValOrZero(stat.Val1)}
	out.Stats["nursingDays"] = weeklydto.StatCell{Sum: models.CntOrZero(stat.Cnt4), Avg: models.ValOrZero(stat.Val4)}
	out.Stats["avgWeight"] = weeklydto.StatCell{Avg: models.ValOrZero(stat.Val2)}
	survival := "-"
	if stat.Val3 != nil {
		survival = strconv.FormatFloat(*stat.Val3, 'f', 1, 64) + "%"
	}
	out.Stats["survivalRate"] = weeklydto.StatCell{Rate: survival}

	out.PigletChanges = weeklydto.WeaningPigletChanges{
		Dead:        models.CntOrZero(stat.Cnt6),
		PartialWean: models.CntOrZero(stat.Cnt7),
		FosterIn:    models.CntOrZero(stat.Cnt8),
		FosterOut:   models.CntOrZero(stat.Cnt9),
	}
	return out
}

// Tên 8 nguyên nhân sự cố mang thai, theo thứ tự cột Cnt1..8 / Val1..8
var accidentTypes = []string{"재발", "불임", "공태", "유산", "도태", "폐사", "임돈전출", "임돈판매"}

// Nhãn khoảng ngày mang thai của biểu đồ sự cố
var accidentChartLabels = []string{"~7", "8~10", "11~15", "16~20", "21~35", "36~40", "41~45", "46~"}

// decodeAccident dựng popup sự cố mang thai.
// SG/STAT sortNo 1 là tuần trước, sortNo 2 là một tháng gần nhất.
func decodeAccident(rows []models.WeekSub) *weeklydto.AccidentOutput {
	lastWeek := findSubAt(rows, SubGubunStat, 1)
	lastMonth := findSubAt(rows, SubGubunStat, 2)

	out := &weeklydto.AccidentOutput{
		Table: make([]weeklydto.AccidentRow, 0, len(accidentTypes)),
		Chart: make([]weeklydto.ChartItem, 0, len(accidentChartLabels)),
	}
	for i, name := range accidentTypes {
		row := weeklydto.AccidentRow{Type: name}
		if lastWeek != nil {
			row.LastWeek = lastWeek.CntAt(i + 1)
			row.LastWeekPct = lastWeek.ValAt(i + 1)
		}
		if lastMonth != nil {
			row.LastMonth = lastMonth.CntAt(i + 1)
			row.LastMonthPct = lastMonth.ValAt(i + 1)
		}
		out.Table = append(out.Table, row)
	}

	chartSub := findSub(rows, SubGubunChart)
	for i, label := range accidentChartLabels {
		value := 0
		if chartSub != nil {
			value = models.CntOrZero(chartSub.CntAt(i + 1))
		}
		out.Chart = append(out.Chart, weeklydto.ChartItem{Label: label, Value: float64(value)})
	}
	return out
}

// decodeCulling dựng popup đào thải.
// DOPE/LIST pivot 15 slot một dòng: StrN mã nguyên nhân, CntN tuần trước,
// ValN một tháng gần nhất. Slot không có mã thì bỏ qua.
func (s *WeeklyService) decodeCulling(rows []models.WeekSub, lang string) *weeklydto.CullingOutput {
	out := &weeklydto.CullingOutput{}

	if summary := findSubAt(rows, SubGubunStat, 1); summary != nil {
		out.Stats = weeklydto.CullingStats{
			Dotae:    models.CntOrZero(summary.Cnt1),
			Dead:     models.CntOrZero(summary.Cnt2),
			Transfer: models.CntOrZero(summary.Cnt3),
			Sale:     models.CntOrZero(summary.Cnt4),
		}
	}

	for _, listRow := range filterSubs(rows, SubGubunList) {
		for i := 1; i <= 15; i++ {
			reasonCd := listRow.StrAt(i)
			if reasonCd == "" {
				continue
			}
			out.Table = append(out.Table, weeklydto.CullingRow{
				Reason:    s.codeService.CodeName("031", reasonCd, lang),
				LastWeek:  models.CntOrZero(listRow.CntAt(i)),
				LastMonth: models.ValOrZero(listRow.ValAt(i)),
			})
		}
	}

	// Biểu đồ tồn theo trạng thái nái: StrN mã trạng thái (pcode 01), CntN số con
	if chartSub := findSub(rows, SubGubunChart); chartSub != nil {
		for i := 1; i <= 7; i++ {
			statusCd := chartSub.StrAt(i)
			if statusCd == "" {
				continue
			}
			out.Chart = append(out.Chart, weeklydto.ChartItem{
				Label: s.codeService.CodeName("01", statusCd, lang),
				Value: float64(models.CntOrZero(chartSub.CntAt(i))),
			})
		}
	}
	return out
}

// decodeAlertMd ghép nội dung cảnh báo mô đỡ từ các dòng ALERT_MD.
// Mỗi dòng nối các cột Str theo thứ tự, các dòng nối nhau bằng xuống dòng.
func decodeAlertMd(rows []models.WeekSub) string {
	var lines []string
	for _, row := range rows {
		var parts []string
		for i := 1; i <= 15; i++ {
			if s := row.StrAt(i); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, ""))
		}
	}
	return strings.Join(lines, "\n")
}
