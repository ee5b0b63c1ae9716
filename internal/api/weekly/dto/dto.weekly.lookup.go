// Package weeklydto - DTO cho các endpoint tra cứu lẻ kèm báo cáo tuần.
// File: dto.weekly.lookup.go
package weeklydto

// AuctionPopupItem là một dòng giá trong popup giá đấu giá theo cấp
type AuctionPopupItem struct {
	Dt        string   `json:"dt"`
	AvgPrice  *float64 `json:"avgPrice"`
	MinPrice  *float64 `json:"minPrice"`
	MaxPrice  *float64 `json:"maxPrice"`
	HeadCount *int     `json:"headCount"`
}

// AuctionGradeGroup gom giá đấu giá của một cấp thịt trong tuần báo cáo
type AuctionGradeGroup struct {
	GradeCode string             `json:"gradeCode"`
	GradeNm   string             `json:"gradeNm"`
	Items     []AuctionPopupItem `json:"items"`
}

// WeatherHourOutput là dự báo một giờ trong popup thời tiết theo giờ
type WeatherHourOutput struct {
	Hour     int      `json:"hour"`
	Temp     *float64 `json:"temp"`
	Sky      string   `json:"sky"`
	RainProb *int     `json:"rainProb"`
}

// ProductivityItem là chỉ số năng suất một tháng của trang trại
type ProductivityItem struct {
	Yyyymm       string   `json:"yyyymm"`
	Psy          *float64 `json:"psy"`
	Msy          *float64 `json:"msy"`
	WeanedPerSow *float64 `json:"weanedPerSow"`
	FarrowRate   *float64 `json:"farrowRate"`
}
