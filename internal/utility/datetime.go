package utility

import (
	"time"
)

// Múi giờ Hàn Quốc. Server có thể chạy UTC nhưng nghiệp vụ báo cáo
// (ngày hết hạn link, xác định tuần quá khứ) tính theo giờ KST.
var kstZone = time.FixedZone("KST", 9*60*60)

// NowKST trả về thời điểm hiện tại theo giờ Hàn Quốc (UTC+9)
func NowKST() time.Time {
	return time.Now().In(kstZone)
}

// TodayKST trả về ngày hôm nay theo giờ Hàn Quốc, định dạng YYYYMMDD
func TodayKST() string {
	return NowKST().Format("20060102")
}

// ParseYYYYMMDD parse chuỗi ngày YYYYMMDD thành time.Time (00:00:00 KST)
func ParseYYYYMMDD(yyyymmdd string) (time.Time, error) {
	return time.ParseInLocation("20060102", yyyymmdd, kstZone)
}

// ParseExpireDateKST chuyển chuỗi YYYYMMDD thành thời điểm hết hạn 23:59:59 KST.
// Chuỗi sai định dạng trả về mốc 0 (luôn coi là đã hết hạn).
func ParseExpireDateKST(yyyymmdd string) time.Time {
	t, err := ParseYYYYMMDD(yyyymmdd)
	if err != nil {
		return time.Unix(0, 0)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, kstZone)
}

// AddDaysYYYYMMDD cộng (hoặc trừ) số ngày vào chuỗi ngày YYYYMMDD.
// Chuỗi sai định dạng trả về nguyên trạng.
func AddDaysYYYYMMDD(yyyymmdd string, days int) string {
	t, err := ParseYYYYMMDD(yyyymmdd)
	if err != nil {
		return yyyymmdd
	}
	return t.AddDate(0, 0, days).Format("20060102")
}

// FormatMMDD chuyển YYYYMMDD thành nhãn hiển thị MM.DD.
// Chuỗi sai định dạng trả về chuỗi rỗng.
func FormatMMDD(yyyymmdd string) string {
	if len(yyyymmdd) != 8 {
		return ""
	}
	return yyyymmdd[4:6] + "." + yyyymmdd[6:8]
}
