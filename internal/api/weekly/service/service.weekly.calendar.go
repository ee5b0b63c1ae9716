// Package weeklysvc - lưới lịch và lịch công việc chi tiết tuần kế tiếp.
// File: service.weekly.calendar.go
package weeklysvc

import (
	"strconv"
	"strings"

	weeklydto "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/dto"
	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
	"github.com/wiselake/inspig-repo-sub000/internal/utility"
)

// Các dòng cố định của lưới lịch, tra dòng nguồn theo Code1.
// IMSIN có khi cấu hình công việc nái, IMSIN_3W/IMSIN_4W khi dùng mặc định
// trang trại. Hai cách loại trừ nhau, lưới chỉ hiển thị một trong hai.
var calendarRowDefs = []struct {
	Code  string
	Title string
}{
	{"GB", "교배"},
	{"IMSIN", "임신감정"},
	{"IMSIN_3W", "재발확인(3주)"},
	{"IMSIN_4W", "임신진단(4주)"},
	{"BM", "분만"},
	{"EU", "이유"},
	{"VACCINE", "백신"},
}

// decodeCalendar dựng lưới lịch tuần kế tiếp từ nhóm SCHEDULE:
// subGubun '-' là dòng tóm tắt, CAL là các dòng lưới theo Code1.
func decodeCalendar(rows []models.WeekSub, master *models.WeekMaster) *weeklydto.CalendarOutput {
	summary := findSub(rows, "-")
	calRows := filterSubs(rows, SubGubunCal)

	byCode := make(map[string]*models.WeekSub, len(calRows))
	for i := range calRows {
		if calRows[i].Code1 != "" {
			byCode[calRows[i].Code1] = &calRows[i]
		}
	}

	isModonPregnancy := byCode["IMSIN"] != nil

	out := &weeklydto.CalendarOutput{
		IsModonPregnancy: isModonPregnancy,
		Sums:             map[string]int{},
	}

	if summary != nil {
		out.WeekNum = models.CntOrZero(summary.Cnt7)
		out.Sums["gb"] = models.CntOrZero(summary.Cnt1)
		out.Sums["imsin"] = models.CntOrZero(summary.Cnt2)
		out.Sums["bm"] = models.CntOrZero(summary.Cnt3)
		out.Sums["eu"] = models.CntOrZero(summary.Cnt4)
		out.Sums["vaccine"] = models.CntOrZero(summary.Cnt5)
		out.Sums["ship"] = models.CntOrZero(summary.Cnt6)
	}

	// Nhãn ngày: dòng lưới đầu tiên có Str1..7, thiếu thì suy từ DtTo + 1..7
	out.DayHeaders = calendarDayHeaders(calRows, master.DtTo)

	// Khoảng thời gian: dòng tóm tắt mang nhãn MM.DD, thiếu thì tính từ DtTo.
	// DtTo là ngày cuối tuần báo cáo nên tuần kế tiếp là +1 đến +7,
	// cộng ngày bằng time chuẩn nên qua năm mới vẫn đúng.
	fromRaw := utility.AddDaysYYYYMMDD(master.DtTo, 1)
	toRaw := utility.AddDaysYYYYMMDD(master.DtTo, 7)
	if summary != nil && summary.Str1 != "" && summary.Str2 != "" {
		fromRaw = rawFromMMDDLabel(summary.Str1, summary.Str2, master.DtTo, true)
		toRaw = rawFromMMDDLabel(summary.Str1, summary.Str2, master.DtTo, false)
	}
	out.PeriodFrom = fromRaw
	out.PeriodTo = toRaw
	out.PeriodLabel = utility.FormatMMDD(fromRaw) + " - " + utility.FormatMMDD(toRaw)

	for _, def := range calendarRowDefs {
		// Cách tính thai kiểm không dùng thì ẩn dòng tương ứng
		if def.Code == "IMSIN" && !isModonPregnancy {
			continue
		}
		if (def.Code == "IMSIN_3W" || def.Code == "IMSIN_4W") && isModonPregnancy {
			continue
		}
		row := weeklydto.CalendarRow{
			Code:  def.Code,
			Title: def.Title,
			Cells: make([]*int, 7),
		}
		if src, ok := byCode[def.Code]; ok {
			for i := 0; i < 7; i++ {
				// Lưới lịch ẩn số 0, chỉ hiện ô có việc
				row.Cells[i] = models.NullIfZeroCnt(src.CntAt(i + 1))
			}
		}
		out.Rows = append(out.Rows, row)
	}

	out.Help = decodeScheduleHelp(rows)
	return out
}

// calendarDayHeaders lấy 7 nhãn ngày từ dòng lưới đầu tiên có nhãn,
// thiếu thì sinh từ DtTo (ngày dd của DtTo+1 đến DtTo+7)
func calendarDayHeaders(calRows []models.WeekSub, dtTo string) []string {
	for i := range calRows {
		if calRows[i].Str1 == "" {
			continue
		}
		headers := make([]string, 0, 7)
		for j := 1; j <= 7; j++ {
			headers = append(headers, calRows[i].StrAt(j))
		}
		return headers
	}

	headers := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		d := utility.AddDaysYYYYMMDD(dtTo, i)
		if len(d) == 8 {
			headers = append(headers, strings.TrimPrefix(d[6:8], "0"))
		} else {
			headers = append(headers, "")
		}
	}
	return headers
}

// rawFromMMDDLabel chuyển nhãn MM.DD của dòng tóm tắt thành YYYYMMDD.
// Năm lấy từ DtTo của báo cáo, có xử lý tuần vắt qua năm mới:
// from tháng 12, to tháng 1 thì to thuộc năm sau; from tháng 1 mà
// DtTo còn ở tháng 12 thì cả khoảng thuộc năm sau.
func rawFromMMDDLabel(fromLabel, toLabel, dtToRaw string, wantFrom bool) string {
	fromParts := strings.Split(fromLabel, ".")
	toParts := strings.Split(toLabel, ".")
	if len(fromParts) != 2 || len(toParts) != 2 || len(dtToRaw) != 8 {
		return ""
	}
	year, err := strconv.Atoi(dtToRaw[0:4])
	if err != nil {
		return ""
	}
	fromMonth, _ := strconv.Atoi(fromParts[0])
	toMonth, _ := strconv.Atoi(toParts[0])
	dtToMonth, _ := strconv.Atoi(dtToRaw[4:6])

	fromYear := year
	toYear := year
	if fromMonth == 12 && toMonth == 1 {
		toYear = fromYear + 1
	} else if fromMonth == 1 && dtToMonth == 12 {
		fromYear = year + 1
		toYear = fromYear
	}

	if wantFrom {
		return strconv.Itoa(fromYear) + fromParts[0] + fromParts[1]
	}
	return strconv.Itoa(toYear) + toParts[0] + toParts[1]
}

// decodeScheduleHelp đọc dòng SCHEDULE/HELP thành thuyết minh cách tính
func decodeScheduleHelp(rows []models.WeekSub) *weeklydto.ScheduleHelp {
	helpSub := findSub(rows, SubGubunHelp)
	if helpSub == nil {
		return nil
	}
	isFarmDefault := func(s string) bool {
		return strings.Contains(s, "농장기본값")
	}
	return &weeklydto.ScheduleHelp{
		Mating:          helpSub.Str1,
		Farrowing:       helpSub.Str2,
		Weaning:         helpSub.Str3,
		Vaccine:         helpSub.Str4,
		Shipment:        helpSub.Str5,
		Pregnancy3w:     helpSub.Str6,
		Pregnancy4w:     helpSub.Str7,
		Pregnancy:       helpSub.Str6,
		IsFarmMating:    isFarmDefault(helpSub.Str1),
		IsFarmFarrowing: isFarmDefault(helpSub.Str2),
		IsFarmWeaning:   isFarmDefault(helpSub.Str3),
	}
}

// decodeSchedule dựng lịch công việc chi tiết từ các dòng SCHEDULE
// subGubun GB/BM/EU/VACCINE. Mã công việc và mã nhóm đối tượng tra sang
// tên qua cache bảng mã.
func (s *WeeklyService) decodeSchedule(rows []models.WeekSub, lang string) *weeklydto.ScheduleOutput {
	out := &weeklydto.ScheduleOutput{
		Sections: map[string][]weeklydto.ScheduleRow{
			"gb":      {},
			"bm":      {},
			"eu":      {},
			"vaccine": {},
		},
	}

	sections := []struct {
		subGubun string
		key      string
	}{
		{"GB", "gb"},
		{"BM", "bm"},
		{"EU", "eu"},
		{"VACCINE", "vaccine"},
	}
	for _, sec := range sections {
		for _, r := range filterSubs(rows, sec.subGubun) {
			row := weeklydto.ScheduleRow{
				TaskNm:      r.Str1,
				ElapsedDays: r.Str4,
				Total:       r.Cnt1,
				Days:        make([]*int, 7),
			}
			if r.Str2 != "" {
				row.BaseTask = s.codeService.CodeName("02", r.Str2, lang)
			}
			if r.Str3 != "" {
				row.TargetGroup = s.codeService.CodeName("01", r.Str3, lang)
			}
			if sec.subGubun == "VACCINE" {
				row.VaccineNm = r.Str5
			}
			// Phân bố theo thứ: Cnt2..Cnt8 là thứ 2 đến chủ nhật
			for i := 0; i < 7; i++ {
				row.Days[i] = r.CntAt(i + 2)
			}
			out.Sections[sec.key] = append(out.Sections[sec.key], row)
		}
	}

	out.Help = decodeScheduleHelp(rows)
	return out
}
