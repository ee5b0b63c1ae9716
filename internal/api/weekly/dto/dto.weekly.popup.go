// Package weeklydto - cấu trúc dữ liệu các popup chi tiết của báo cáo tuần.
package weeklydto

// ModonRow là một dòng bảng tồn nái theo lứa đẻ.
// Pointer nil nghĩa là lứa không có dữ liệu, hiển thị '-'.
type ModonRow struct {
	Parity string `json:"parity"`
	Group  string `json:"group"` // hubo | current
	Hubo   *int   `json:"hubo"`
	Imsin  *int   `json:"imsin"`
	Poyu   *int   `json:"poyu"`
	Eumo   *int   `json:"eumo"`
	Sago   *int   `json:"sago"`
	Change *int   `json:"change"`
}

// ModonOutput là popup tồn nái: bảng 10 lứa cố định + biểu đồ tổng theo lứa
type ModonOutput struct {
	Table []ModonRow  `json:"table"`
	Chart []ChartItem `json:"chart"`
}

// MatingRow là một dòng bảng thực hiện phối giống theo loại phối
type MatingRow struct {
	Type    string `json:"type"`
	Planned int    `json:"planned"`
	Actual  int    `json:"actual"`
	Rate    string `json:"rate"` // Phần trăm 1 chữ số thập phân, kế hoạch 0 là '-'
}

// MatingSummary là khối tóm tắt của popup phối giống
type MatingSummary struct {
	TotalActual   int     `json:"totalActual"`
	TotalPlanned  int     `json:"totalPlanned"`
	AccidentCnt   int     `json:"accidentCnt"`
	FarrowingCnt  int     `json:"farrowingCnt"`
	AvgReturnDay  float64 `json:"avgReturnDay"`
	AvgFirstGbDay float64 `json:"avgFirstGbDay"`
}

// MatingOutput là popup phối giống
type MatingOutput struct {
	Table   []MatingRow    `json:"table"`
	Total   MatingRow      `json:"total"`
	Chart   []ChartItem    `json:"chart"` // Số phối theo khoảng ngày động dục lại
	Summary *MatingSummary `json:"summary,omitempty"`
}

// StatCell là một ô thống kê tổng/bình quân/tỷ lệ
type StatCell struct {
	Sum  int     `json:"sum"`
	Avg  float64 `json:"avg"`
	Rate string  `json:"rate,omitempty"`
}

// FarrowingOutput là popup đẻ: kế hoạch/thực hiện + thống kê theo loại heo con
type FarrowingOutput struct {
	Planned int                 `json:"planned"`
	Actual  int                 `json:"actual"`
	Rate    string              `json:"rate"`
	Stats   map[string]StatCell `json:"stats"`
}

// WeaningFarrowingBase là thông tin đẻ của các nái cai sữa trong tuần
type WeaningFarrowingBase struct {
	TotalBirth   int     `json:"totalBirth"`
	LiveBirth    int     `json:"liveBirth"`
	NursingStart float64 `json:"nursingStart"`
}

// WeaningPigletChanges là biến động heo con trong thời gian bú
type WeaningPigletChanges struct {
	Dead        int `json:"dead"`
	PartialWean int `json:"partialWean"`
	FosterIn    int `json:"fosterIn"`
	FosterOut   int `json:"fosterOut"`
}

// WeaningOutput là popup cai sữa
type WeaningOutput struct {
	Planned        int                  `json:"planned"`
	Actual         int                  `json:"actual"`
	Rate           string               `json:"rate"`
	FarrowingBased WeaningFarrowingBase `json:"farrowingBased"`
	Stats          map[string]StatCell  `json:"stats"`
	PigletChanges  WeaningPigletChanges `json:"pigletChanges"`
}

// AccidentRow là một dòng bảng sự cố mang thai theo nguyên nhân.
// Pointer nil nghĩa là ô không có dữ liệu, khác với 0 là đo được thật.
type AccidentRow struct {
	Type         string   `json:"type"`
	LastWeek     *int     `json:"lastWeek"`
	LastWeekPct  *float64 `json:"lastWeekPct"`
	LastMonth    *int     `json:"lastMonth"`
	LastMonthPct *float64 `json:"lastMonthPct"`
}

// AccidentOutput là popup sự cố mang thai
type AccidentOutput struct {
	Table []AccidentRow `json:"table"`
	Chart []ChartItem   `json:"chart"` // Số sự cố theo khoảng ngày mang thai
}

// CullingStats là tóm tắt đào thải theo loại
type CullingStats struct {
	Dotae    int `json:"dotae"`
	Dead     int `json:"dead"`
	Transfer int `json:"transfer"`
	Sale     int `json:"sale"`
}

// CullingRow là một dòng bảng đào thải theo nguyên nhân.
// Tên nguyên nhân tra từ bảng mã hợp tác xã pcode 031.
type CullingRow struct {
	Reason    string  `json:"reason"`
	LastWeek  int     `json:"lastWeek"`
	LastMonth float64 `json:"lastMonth"`
}

// CullingOutput là popup đào thải
type CullingOutput struct {
	Stats CullingStats `json:"stats"`
	Table []CullingRow `json:"table"`
	Chart []ChartItem  `json:"chart"` // Tồn theo trạng thái nái (pcode 01)
}

// ShipmentMetrics là khối chỉ số đầu popup xuất chuồng
type ShipmentMetrics struct {
	TotalCount    int     `json:"totalCount"`
	YearTotal     int     `json:"yearTotal"`
	Grade1Cnt     int     `json:"grade1Cnt"`
	Grade1Rate    float64 `json:"grade1Rate"`
	AvgCarcass    float64 `json:"avgCarcass"`
	AvgBackfat    float64 `json:"avgBackfat"`
	FarmPrice     float64 `json:"farmPrice"`
	NationalPrice float64 `json:"nationalPrice"`
}

// ShipmentRearingConfig là cấu hình tính tỷ lệ nuôi sống hiển thị trong tooltip
type ShipmentRearingConfig struct {
	ShipDay    int    `json:"shipDay"`
	WeanPeriod int    `json:"weanPeriod"`
	EuDays     int    `json:"euDays"`
	EuDateFrom string `json:"euDateFrom"`
	EuDateTo   string `json:"euDateTo"`
}

// ShipmentRow là một dòng của bảng chéo xuất chuồng.
// Data luôn theo số cột ngày, ô không có dữ liệu là null.
type ShipmentRow struct {
	Category string   `json:"category"`
	Sub      string   `json:"sub"`
	GradeRow bool     `json:"gradeRow"`
	Data     []*int   `json:"data"`
	Sum      *float64 `json:"sum"`
	Rate     *float64 `json:"rate"`
	Avg      *float64 `json:"avg"`
}

// ShipmentTable là bảng chéo xuất chuồng 13 dòng cố định
type ShipmentTable struct {
	Days []string      `json:"days"`
	Rows []ShipmentRow `json:"rows"`
}

// ShipmentAnalysisChart là biểu đồ phân tích xuất chuồng theo ngày
type ShipmentAnalysisChart struct {
	Dates      []string  `json:"dates"`
	ShipCount  []int     `json:"shipCount"`
	AvgWeight  []float64 `json:"avgWeight"`
	AvgBackfat []float64 `json:"avgBackfat"`
}

// ShipmentOutput là popup xuất chuồng: 3 tab hiện trạng/phân tích/phân bố thân thịt
type ShipmentOutput struct {
	Metrics       ShipmentMetrics       `json:"metrics"`
	RearingConfig ShipmentRearingConfig `json:"rearingConfig"`
	GradeChart    []ChartItem           `json:"gradeChart"`
	Table         ShipmentTable         `json:"table"`
	AnalysisChart ShipmentAnalysisChart `json:"analysisChart"`
	Scatter       []ScatterPoint        `json:"scatter"`
}
