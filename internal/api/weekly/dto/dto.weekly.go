// Package weeklydto - DTO cho báo cáo tuần: query, dòng hiển thị đã giải mã,
// popup chi tiết và báo cáo tổng hợp.
package weeklydto

// WeeklyReportQuery là query chung của các endpoint báo cáo tuần
type WeeklyReportQuery struct {
	Lang string `json:"lang" validate:"omitempty,oneof=ko en vi"`
}

// ReportListQuery là query của GET /weekly/reports
type ReportListQuery struct {
	FarmNo int64  `json:"farmNo" validate:"required"`
	DtFrom string `json:"dtFrom" validate:"omitempty,yyyymmdd"`
	DtTo   string `json:"dtTo" validate:"omitempty,yyyymmdd"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

// ReportListItem là một dòng trong danh sách báo cáo tuần của trang trại
type ReportListItem struct {
	MasterSeq int64  `json:"masterSeq"`
	FarmNo    int64  `json:"farmNo"`
	FarmNm    string `json:"farmNm"`
	DtFrom    string `json:"dtFrom"`
	DtTo      string `json:"dtTo"`
	Status    string `json:"status"`
	HasToken  bool   `json:"hasToken"`
}

// ChartItem là một cột/điểm của biểu đồ
type ChartItem struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ScatterPoint là một điểm của biểu đồ phân tán thân thịt:
// trọng lượng x mỡ lưng, Cnt là số con tại điểm đó.
type ScatterPoint struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Cnt int     `json:"cnt"`
}

// CalendarRow là một dòng của lưới lịch công việc tuần tới.
// Cells luôn đủ 7 phần tử (thứ 2 đến chủ nhật), ô không có việc là null.
type CalendarRow struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Cells []*int `json:"cells"`
}

// ScheduleHelp là phần thuyết minh cách tính của lịch công việc.
// Giá trị '농장기본값' nghĩa là dùng mặc định trang trại, không có popup chi tiết.
type ScheduleHelp struct {
	Mating      string `json:"mating"`
	Farrowing   string `json:"farrowing"`
	Weaning     string `json:"weaning"`
	Vaccine     string `json:"vaccine"`
	Shipment    string `json:"shipment"`
	Pregnancy3w string `json:"pregnancy3w"`
	Pregnancy4w string `json:"pregnancy4w"`
	Pregnancy   string `json:"pregnancy"`

	IsFarmMating    bool `json:"isFarmMating"`
	IsFarmFarrowing bool `json:"isFarmFarrowing"`
	IsFarmWeaning   bool `json:"isFarmWeaning"`
}

// CalendarOutput là lưới lịch công việc tuần kế tiếp của báo cáo
type CalendarOutput struct {
	WeekNum          int            `json:"weekNum"`
	PeriodFrom       string         `json:"periodFrom"` // YYYYMMDD
	PeriodTo         string         `json:"periodTo"`   // YYYYMMDD
	PeriodLabel      string         `json:"periodLabel"`
	DayHeaders       []string       `json:"dayHeaders"` // 7 nhãn ngày
	IsModonPregnancy bool           `json:"isModonPregnancy"`
	Sums             map[string]int `json:"sums"` // gb, imsin, bm, eu, vaccine, ship
	Rows             []CalendarRow  `json:"rows"`
	Help             *ScheduleHelp  `json:"help,omitempty"`
}

// ScheduleRow là một công việc trong lịch chi tiết tuần tới
type ScheduleRow struct {
	TaskNm      string `json:"taskNm"`
	BaseTask    string `json:"baseTask,omitempty"`
	TargetGroup string `json:"targetGroup,omitempty"`
	ElapsedDays string `json:"elapsedDays,omitempty"`
	VaccineNm   string `json:"vaccineNm,omitempty"`
	Total       *int   `json:"total"`
	Days        []*int `json:"days"` // 7 ô, thứ 2 đến chủ nhật
}

// ScheduleOutput là lịch công việc chi tiết tuần kế tiếp
type ScheduleOutput struct {
	Sections map[string][]ScheduleRow `json:"sections"` // Theo subGubun: gb, bm, eu, vaccine
	Help     *ScheduleHelp            `json:"help,omitempty"`
}

// WeatherDayOutput là thời tiết một ngày hiển thị trên báo cáo
type WeatherDayOutput struct {
	Dt       string   `json:"dt"` // YYYYMMDD
	MinTemp  *float64 `json:"minTemp,omitempty"`
	MaxTemp  *float64 `json:"maxTemp,omitempty"`
	Temp     *float64 `json:"temp,omitempty"`
	Sky      string   `json:"sky,omitempty"`
	RainProb *int     `json:"rainProb,omitempty"`
}

// WeatherOutput là khối thời tiết của báo cáo.
// Tuần quá khứ trả min/max theo ngày, tuần hiện tại trả dự báo theo tọa độ trại.
type WeatherOutput struct {
	Region  string             `json:"region,omitempty"`
	IsPast  bool               `json:"isPast"`
	Days    []WeatherDayOutput `json:"days,omitempty"`
	Current *WeatherDayOutput  `json:"current,omitempty"`
}

// AuctionItem là giá đấu giá một ngày trên biểu đồ giá
type AuctionItem struct {
	Dt        string   `json:"dt"`
	GradeCode string   `json:"gradeCode"`
	GradeNm   string   `json:"gradeNm,omitempty"`
	AvgPrice  *float64 `json:"avgPrice,omitempty"`
}

// MgmtItem là một nội dung quản lý hiển thị kèm báo cáo
type MgmtItem struct {
	MgmtSeq  int64  `json:"mgmtSeq"`
	MgmtType string `json:"mgmtType"`
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	LinkURL  string `json:"linkUrl,omitempty"`
	Dt       string `json:"dt"`
}

// MgmtOutput là khối nội dung quản lý, chia theo loại
type MgmtOutput struct {
	Quiz     []MgmtItem `json:"quiz,omitempty"`
	Channel  []MgmtItem `json:"channel,omitempty"`
	PorkNews []MgmtItem `json:"porkNews,omitempty"`
}

// ReportHeader là phần đầu của báo cáo tổng hợp
type ReportHeader struct {
	MasterSeq   int64  `json:"masterSeq"`
	FarmNo      int64  `json:"farmNo"`
	FarmNm      string `json:"farmNm"`
	DtFrom      string `json:"dtFrom"`
	DtTo        string `json:"dtTo"`
	PeriodLabel string `json:"periodLabel"`
}

// AlertSummary là khối đếm cảnh báo của báo cáo, lấy thẳng từ master
type AlertSummary struct {
	Count      int `json:"count"`
	EuMiCnt    int `json:"euMiCnt"`
	SgMiCnt    int `json:"sgMiCnt"`
	BmDelayCnt int `json:"bmDelayCnt"`
	EuDelayCnt int `json:"euDelayCnt"`
}

// LastWeekModon là tồn nái cuối tuần trước.
// Cột biến động nil thì client không hiển thị mũi tên tăng giảm.
type LastWeekModon struct {
	RegCnt       int  `json:"regCnt"`
	SangsiCnt    int  `json:"sangsiCnt"`
	RegChange    *int `json:"regCntChange,omitempty"`
	SangsiChange *int `json:"sangsiCntChange,omitempty"`
}

// LastWeekMating là số phối tuần trước và lũy kế năm
type LastWeekMating struct {
	Cnt int `json:"cnt"`
	Sum int `json:"sum"`
}

// LastWeekFarrowing là kết quả đẻ tuần trước: số nái, heo con, bình quân và lũy kế
type LastWeekFarrowing struct {
	Cnt         int      `json:"cnt"`
	TotalCnt    int      `json:"totalCnt"`
	LiveCnt     int      `json:"liveCnt"`
	DeadCnt     int      `json:"deadCnt"`
	MummyCnt    int      `json:"mummyCnt"`
	SumCnt      int      `json:"sumCnt"`
	SumTotalCnt int      `json:"sumTotalCnt"`
	SumLiveCnt  int      `json:"sumLiveCnt"`
	AvgTotal    float64  `json:"avgTotal"`
	AvgLive     float64  `json:"avgLive"`
	SumAvgTotal float64  `json:"sumAvgTotal"`
	SumAvgLive  float64  `json:"sumAvgLive"`
	ChangeTotal *float64 `json:"changeTotal,omitempty"`
	ChangeLive  *float64 `json:"changeLive,omitempty"`
}

// LastWeekWeaning là kết quả cai sữa tuần trước
type LastWeekWeaning struct {
	Cnt          int      `json:"cnt"`
	PigletCnt    int      `json:"pigletCnt"`
	AvgWeight    float64  `json:"avgWeight"`
	AvgPiglet    float64  `json:"avgJdCnt"`
	SumCnt       int      `json:"sumCnt"`
	SumPiglet    int      `json:"sumJdCnt"`
	SumAvgPiglet float64  `json:"sumAvgJdCnt"`
	ChangePiglet *float64 `json:"changeJdCnt,omitempty"`
	ChangeWeight *float64 `json:"changeWeight,omitempty"`
}

// LastWeekAccident là sự cố mang thai tuần trước và bình quân ngày kinh qua
type LastWeekAccident struct {
	Cnt           int     `json:"cnt"`
	AvgGyungil    float64 `json:"avgGyungil"`
	Sum           int     `json:"sum"`
	SumAvgGyungil float64 `json:"sumAvgGyungil"`
}

// LastWeekCulling là số đào thải tuần trước và lũy kế năm
type LastWeekCulling struct {
	Cnt int `json:"cnt"`
	Sum int `json:"sum"`
}

// LastWeekShipment là xuất chuồng tuần trước: số con, thể trọng bình quân, lũy kế
type LastWeekShipment struct {
	Cnt    int     `json:"cnt"`
	Avg    float64 `json:"avg"`
	Sum    int     `json:"sum"`
	AvgSum float64 `json:"avgSum"`
}

// LastWeekOutput là khối tóm tắt tuần trước của báo cáo,
// dựng từ các bộ đếm trên master
type LastWeekOutput struct {
	WeekNum   int               `json:"weekNum"`
	From      string            `json:"from"` // MM.DD
	To        string            `json:"to"`   // MM.DD
	Modon     LastWeekModon     `json:"modon"`
	Mating    LastWeekMating    `json:"mating"`
	Farrowing LastWeekFarrowing `json:"farrowing"`
	Weaning   LastWeekWeaning   `json:"weaning"`
	Accident  LastWeekAccident  `json:"accident"`
	Culling   LastWeekCulling   `json:"culling"`
	Shipment  LastWeekShipment  `json:"shipment"`
}

// ThisWeekSums là tổng số việc dự kiến tuần này theo loại
type ThisWeekSums struct {
	GbSum      int `json:"gbSum"`
	ImsinSum   int `json:"imsinSum"`
	BmSum      int `json:"bmSum"`
	EuSum      int `json:"euSum"`
	VaccineSum int `json:"vaccineSum"`
	ShipSum    int `json:"shipSum"`
}

// AuctionStatsOutput là thống kê giá đấu giá trong tuần báo cáo
type AuctionStatsOutput struct {
	Avg    float64 `json:"avg"`
	Max    float64 `json:"max"`
	Min    float64 `json:"min"`
	Source string  `json:"source"`
}

// KpiItem là một cặp kế hoạch/thực hiện của tuần
type KpiItem struct {
	Planned int    `json:"planned"`
	Actual  int    `json:"actual"`
	Rate    string `json:"rate"`
}

// KpiBlock là khối chỉ số đầu báo cáo, rút gọn từ các popup đã giải mã.
// Popup nào lỗi thì chỉ số tương ứng là null, các chỉ số khác vẫn có.
type KpiBlock struct {
	SowTotal         float64  `json:"sowTotal"`
	Mating           *KpiItem `json:"mating,omitempty"`
	Farrowing        *KpiItem `json:"farrowing,omitempty"`
	Weaning          *KpiItem `json:"weaning,omitempty"`
	AccidentLastWeek int      `json:"accidentLastWeek"`
	ShipmentCount    int      `json:"shipmentCount"`
}

// WeeklyReportOutput là báo cáo tuần tổng hợp trả về khi mở share link.
// Khối nào dựng lỗi sẽ là null và tên khối được ghi vào partialErrors,
// các khối còn lại vẫn trả về bình thường.
type WeeklyReportOutput struct {
	Header        ReportHeader           `json:"header"`
	AlertMd       string                 `json:"alertMd,omitempty"`
	Alert         *AlertSummary          `json:"alert,omitempty"`
	LastWeek      *LastWeekOutput        `json:"lastWeek,omitempty"`
	ThisWeekSums  *ThisWeekSums          `json:"thisWeekSums,omitempty"`
	Kpi           *KpiBlock              `json:"kpi,omitempty"`
	Popups        map[string]interface{} `json:"popups,omitempty"`
	Calendar      *CalendarOutput        `json:"calendar,omitempty"`
	Schedule      *ScheduleOutput        `json:"schedule,omitempty"`
	Weather       *WeatherOutput         `json:"weather,omitempty"`
	Auction       []AuctionItem          `json:"auction,omitempty"`
	AuctionStats  *AuctionStatsOutput    `json:"auctionStats,omitempty"`
	Mgmt          *MgmtOutput            `json:"mgmt,omitempty"`
	PartialErrors []string               `json:"partialErrors,omitempty"`
}
