// Package models - WeekMaster, WeekSub thuộc domain báo cáo tuần.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusComplete là trạng thái báo cáo đã chốt số liệu.
// Chỉ báo cáo COMPLETE mới được nhìn thấy từ bên ngoài qua share link.
const StatusComplete = "COMPLETE"

// WeekMaster là bản ghi master của một báo cáo tuần: trang trại, khoảng thời gian,
// share token, ngày hết hạn token và các bộ đếm tổng hợp dùng cho khối
// tóm tắt tuần trước / tuần này của báo cáo.
type WeekMaster struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	MasterSeq     int64              `json:"masterSeq" bson:"masterSeq" index:"compound:master_farm_unique"`
	FarmNo        int64              `json:"farmNo" bson:"farmNo" index:"compound:master_farm_unique"`
	FarmNm        string             `json:"farmNm" bson:"farmNm"`
	DtFrom        string             `json:"dtFrom" bson:"dtFrom"` // Ngày đầu tuần (YYYYMMDD)
	DtTo          string             `json:"dtTo" bson:"dtTo"`     // Ngày cuối tuần (YYYYMMDD)
	Status        string             `json:"status" bson:"status"`
	ShareToken    string             `json:"shareToken,omitempty" bson:"shareToken,omitempty" index:"unique,sparse"` // SHA-256 hex 64 ký tự
	TokenExpireDt string             `json:"tokenExpireDt,omitempty" bson:"tokenExpireDt,omitempty"`                // Ngày hết hạn token (YYYYMMDD, hết hạn cuối ngày KST)
	ReportWeekNo  int                `json:"reportWeekNo" bson:"reportWeekNo"`

	// Đếm cảnh báo tổng hợp, khớp khối alert của báo cáo
	AlertTotal   int `json:"alertTotal" bson:"alertTotal"`
	AlertEuMi    int `json:"alertEuMi" bson:"alertEuMi"`
	AlertSgMi    int `json:"alertSgMi" bson:"alertSgMi"`
	AlertBmDelay int `json:"alertBmDelay" bson:"alertBmDelay"`
	AlertEuDelay int `json:"alertEuDelay" bson:"alertEuDelay"`

	// Tồn nái cuối tuần trước. Cột biến động nil nghĩa là không hiển thị tăng giảm.
	ModonRegCnt    int  `json:"modonRegCnt" bson:"modonRegCnt"`
	ModonSangsiCnt int  `json:"modonSangsiCnt" bson:"modonSangsiCnt"`
	ModonRegChg    *int `json:"modonRegChg,omitempty" bson:"modonRegChg,omitempty"`
	ModonSangsiChg *int `json:"modonSangsiChg,omitempty" bson:"modonSangsiChg,omitempty"`

	// Bộ đếm tuần trước theo nghiệp vụ: cnt là tuần, sum là lũy kế năm
	LastGbCnt int `json:"lastGbCnt" bson:"lastGbCnt"`
	LastGbSum int `json:"lastGbSum" bson:"lastGbSum"`

	LastBmCnt         int      `json:"lastBmCnt" bson:"lastBmCnt"`
	LastBmTotal       int      `json:"lastBmTotal" bson:"lastBmTotal"`
	LastBmLive        int      `json:"lastBmLive" bson:"lastBmLive"`
	LastBmDead        int      `json:"lastBmDead" bson:"lastBmDead"`
	LastBmMummy       int      `json:"lastBmMummy" bson:"lastBmMummy"`
	LastBmSumCnt      int      `json:"lastBmSumCnt" bson:"lastBmSumCnt"`
	LastBmSumTotal    int      `json:"lastBmSumTotal" bson:"lastBmSumTotal"`
	LastBmSumLive     int      `json:"lastBmSumLive" bson:"lastBmSumLive"`
	LastBmAvgTotal    float64  `json:"lastBmAvgTotal" bson:"lastBmAvgTotal"`
	LastBmAvgLive     float64  `json:"lastBmAvgLive" bson:"lastBmAvgLive"`
	LastBmSumAvgTotal float64  `json:"lastBmSumAvgTotal" bson:"lastBmSumAvgTotal"`
	LastBmSumAvgLive  float64  `json:"lastBmSumAvgLive" bson:"lastBmSumAvgLive"`
	LastBmChgTotal    *float64 `json:"lastBmChgTotal,omitempty" bson:"lastBmChgTotal,omitempty"`
	LastBmChgLive     *float64 `json:"lastBmChgLive,omitempty" bson:"lastBmChgLive,omitempty"`

	LastEuCnt      int      `json:"lastEuCnt" bson:"lastEuCnt"`
	LastEuJdCnt    int      `json:"lastEuJdCnt" bson:"lastEuJdCnt"`
	LastEuAvgKg    float64  `json:"lastEuAvgKg" bson:"lastEuAvgKg"`
	LastEuAvgJd    float64  `json:"lastEuAvgJd" bson:"lastEuAvgJd"`
	LastEuSumCnt   int      `json:"lastEuSumCnt" bson:"lastEuSumCnt"`
	LastEuSumJd    int      `json:"lastEuSumJd" bson:"lastEuSumJd"`
	LastEuSumAvgJd float64  `json:"lastEuSumAvgJd" bson:"lastEuSumAvgJd"`
	LastEuChgJd    *float64 `json:"lastEuChgJd,omitempty" bson:"lastEuChgJd,omitempty"`
	LastEuChgKg    *float64 `json:"lastEuChgKg,omitempty" bson:"lastEuChgKg,omitempty"`

	LastSgCnt           int     `json:"lastSgCnt" bson:"lastSgCnt"`
	LastSgSum           int     `json:"lastSgSum" bson:"lastSgSum"`
	LastSgAvgGyungil    float64 `json:"lastSgAvgGyungil" bson:"lastSgAvgGyungil"`
	LastSgSumAvgGyungil float64 `json:"lastSgSumAvgGyungil" bson:"lastSgSumAvgGyungil"`

	LastClCnt int `json:"lastClCnt" bson:"lastClCnt"`
	LastClSum int `json:"lastClSum" bson:"lastClSum"`

	LastShCnt    int     `json:"lastShCnt" bson:"lastShCnt"`
	LastShSum    int     `json:"lastShSum" bson:"lastShSum"`
	LastShAvgKg  float64 `json:"lastShAvgKg" bson:"lastShAvgKg"`
	LastShAvgSum float64 `json:"lastShAvgSum" bson:"lastShAvgSum"`

	// Tổng số việc dự kiến tuần này theo loại
	ThisGbSum      int `json:"thisGbSum" bson:"thisGbSum"`
	ThisImsinSum   int `json:"thisImsinSum" bson:"thisImsinSum"`
	ThisBmSum      int `json:"thisBmSum" bson:"thisBmSum"`
	ThisEuSum      int `json:"thisEuSum" bson:"thisEuSum"`
	ThisVaccineSum int `json:"thisVaccineSum" bson:"thisVaccineSum"`
	ThisShipSum    int `json:"thisShipSum" bson:"thisShipSum"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// WeekSub là một dòng dữ liệu rộng của báo cáo tuần.
// Mọi nội dung báo cáo (tồn nái, phối, đẻ, cai sữa, xuất chuồng, lịch...) đều
// lưu chung schema này, phân loại bằng gubun/subGubun và sắp xếp bằng sortNo.
//
// Cột số dùng pointer: nil nghĩa là cột không có dữ liệu cho dòng này,
// khác với 0 là giá trị đo được thật.
type WeekSub struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	MasterSeq int64              `json:"masterSeq" bson:"masterSeq" index:"compound:master_gubun"`
	FarmNo    int64              `json:"farmNo" bson:"farmNo"`
	Gubun     string             `json:"gubun" bson:"gubun" index:"compound:master_gubun"`
	SubGubun  string             `json:"subGubun" bson:"subGubun"`
	SortNo    int                `json:"sortNo" bson:"sortNo"`
	Code1     string             `json:"code1,omitempty" bson:"code1,omitempty"`
	Code2     string             `json:"code2,omitempty" bson:"code2,omitempty"`

	Cnt1  *int `json:"cnt1,omitempty" bson:"cnt1,omitempty"`
	Cnt2  *int `json:"cnt2,omitempty" bson:"cnt2,omitempty"`
	Cnt3  *int `json:"cnt3,omitempty" bson:"cnt3,omitempty"`
	Cnt4  *int `json:"cnt4,omitempty" bson:"cnt4,omitempty"`
	Cnt5  *int `json:"cnt5,omitempty" bson:"cnt5,omitempty"`
	Cnt6  *int `json:"cnt6,omitempty" bson:"cnt6,omitempty"`
	Cnt7  *int `json:"cnt7,omitempty" bson:"cnt7,omitempty"`
	Cnt8  *int `json:"cnt8,omitempty" bson:"cnt8,omitempty"`
	Cnt9  *int `json:"cnt9,omitempty" bson:"cnt9,omitempty"`
	Cnt10 *int `json:"cnt10,omitempty" bson:"cnt10,omitempty"`
	Cnt11 *int `json:"cnt11,omitempty" bson:"cnt11,omitempty"`
	Cnt12 *int `json:"cnt12,omitempty" bson:"cnt12,omitempty"`
	Cnt13 *int `json:"cnt13,omitempty" bson:"cnt13,omitempty"`
	Cnt14 *int `json:"cnt14,omitempty" bson:"cnt14,omitempty"`
	Cnt15 *int `json:"cnt15,omitempty" bson:"cnt15,omitempty"`

	Val1  *float64 `json:"val1,omitempty" bson:"val1,omitempty"`
	Val2  *float64 `json:"val2,omitempty" bson:"val2,omitempty"`
	Val3  *float64 `json:"val3,omitempty" bson:"val3,omitempty"`
	Val4  *float64 `json:"val4,omitempty" bson:"val4,omitempty"`
	Val5  *float64 `json:"val5,omitempty" bson:"val5,omitempty"`
	Val6  *float64 `json:"val6,omitempty" bson:"val6,omitempty"`
	Val7  *float64 `json:"val7,omitempty" bson:"val7,omitempty"`
	Val8  *float64 `json:"val8,omitempty" bson:"val8,omitempty"`
	Val9  *float64 `json:"val9,omitempty" bson:"val9,omitempty"`
	Val10 *float64 `json:"val10,omitempty" bson:"val10,omitempty"`
	Val11 *float64 `json:"val11,omitempty" bson:"val11,omitempty"`
	Val12 *float64 `json:"val12,omitempty" bson:"val12,omitempty"`
	Val13 *float64 `json:"val13,omitempty" bson:"val13,omitempty"`
	Val14 *float64 `json:"val14,omitempty" bson:"val14,omitempty"`
	Val15 *float64 `json:"val15,omitempty" bson:"val15,omitempty"`

	Str1  string `json:"str1,omitempty" bson:"str1,omitempty"`
	Str2  string `json:"str2,omitempty" bson:"str2,omitempty"`
	Str3  string `json:"str3,omitempty" bson:"str3,omitempty"`
	Str4  string `json:"str4,omitempty" bson:"str4,omitempty"`
	Str5  string `json:"str5,omitempty" bson:"str5,omitempty"`
	Str6  string `json:"str6,omitempty" bson:"str6,omitempty"`
	Str7  string `json:"str7,omitempty" bson:"str7,omitempty"`
	Str8  string `json:"str8,omitempty" bson:"str8,omitempty"`
	Str9  string `json:"str9,omitempty" bson:"str9,omitempty"`
	Str10 string `json:"str10,omitempty" bson:"str10,omitempty"`
	Str11 string `json:"str11,omitempty" bson:"str11,omitempty"`
	Str12 string `json:"str12,omitempty" bson:"str12,omitempty"`
	Str13 string `json:"str13,omitempty" bson:"str13,omitempty"`
	Str14 string `json:"str14,omitempty" bson:"str14,omitempty"`
	Str15 string `json:"str15,omitempty" bson:"str15,omitempty"`
}

// CntAt trả về cột đếm thứ i (1-based). Ngoài khoảng 1..15 trả về nil.
func (r *WeekSub) CntAt(i int) *int {
	switch i {
	case 1:
		return r.Cnt1
	case 2:
		return r.Cnt2
	case 3:
		return r.Cnt3
	case 4:
		return r.Cnt4
	case 5:
		return r.Cnt5
	case 6:
		return r.Cnt6
	case 7:
		return r.Cnt7
	case 8:
		return r.Cnt8
	case 9:
		return r.Cnt9
	case 10:
		return r.Cnt10
	case 11:
		return r.Cnt11
	case 12:
		return r.Cnt12
	case 13:
		return r.Cnt13
	case 14:
		return r.Cnt14
	case 15:
		return r.Cnt15
	}
	return nil
}

// ValAt trả về cột giá trị thứ i (1-based). Ngoài khoảng 1..15 trả về nil.
func (r *WeekSub) ValAt(i int) *float64 {
	switch i {
	case 1:
		return r.Val1
	case 2:
		return r.Val2
	case 3:
		return r.Val3
	case 4:
		return r.Val4
	case 5:
		return r.Val5
	case 6:
		return r.Val6
	case 7:
		return r.Val7
	case 8:
		return r.Val8
	case 9:
		return r.Val9
	case 10:
		return r.Val10
	case 11:
		return r.Val11
	case 12:
		return r.Val12
	case 13:
		return r.Val13
	case 14:
		return r.Val14
	case 15:
		return r.Val15
	}
	return nil
}

// StrAt trả về cột chuỗi thứ i (1-based). Ngoài khoảng 1..15 trả về chuỗi rỗng.
func (r *WeekSub) StrAt(i int) string {
	switch i {
	case 1:
		return r.Str1
	case 2:
		return r.Str2
	case 3:
		return r.Str3
	case 4:
		return r.Str4
	case 5:
		return r.Str5
	case 6:
		return r.Str6
	case 7:
		return r.Str7
	case 8:
		return r.Str8
	case 9:
		return r.Str9
	case 10:
		return r.Str10
	case 11:
		return r.Str11
	case 12:
		return r.Str12
	case 13:
		return r.Str13
	case 14:
		return r.Str14
	case 15:
		return r.Str15
	}
	return ""
}

// CntOrZero trả về giá trị đếm, nil tính là 0. Dùng cho ngữ nghĩa cộng dồn.
func CntOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// ValOrZero trả về giá trị số thực, nil tính là 0. Dùng cho ngữ nghĩa cộng dồn.
func ValOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// NullIfZeroCnt trả về nil khi giá trị vắng hoặc bằng 0.
// Dùng cho ô lưới hiển thị: lưới lịch ẩn số 0.
func NullIfZeroCnt(p *int) *int {
	if p == nil || *p == 0 {
		return nil
	}
	return p
}

// IntPtr tạo pointer từ giá trị int
func IntPtr(v int) *int {
	return &v
}

// FloatPtr tạo pointer từ giá trị float64
func FloatPtr(v float64) *float64 {
	return &v
}
