// Package models - Farm và các dữ liệu phụ trợ của báo cáo tuần
// (thời tiết, giá đấu giá, nội dung quản lý, năng suất).
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Farm là thông tin trang trại. Tọa độ lưới nx/ny dùng để tra thời tiết dự báo.
type Farm struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FarmNo      int64              `json:"farmNo" bson:"farmNo" index:"unique"`
	FarmNm      string             `json:"farmNm" bson:"farmNm"`
	Address     string             `json:"address" bson:"address"`
	Nx          int                `json:"nx" bson:"nx"`
	Ny          int                `json:"ny" bson:"ny"`
	CountryCode string             `json:"countryCode,omitempty" bson:"countryCode,omitempty"`
	Lang        string             `json:"lang,omitempty" bson:"lang,omitempty"` // Ngôn ngữ hiển thị mặc định của trang trại
}

// WeatherDaily là thời tiết lịch sử theo ngày của một vùng
type WeatherDaily struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Region  string             `json:"region" bson:"region" index:"compound:region_dt"`
	Dt      string             `json:"dt" bson:"dt" index:"compound:region_dt"` // YYYYMMDD
	MinTemp *float64           `json:"minTemp,omitempty" bson:"minTemp,omitempty"`
	MaxTemp *float64           `json:"maxTemp,omitempty" bson:"maxTemp,omitempty"`
	Sky     string             `json:"sky,omitempty" bson:"sky,omitempty"`
	Rain    *float64           `json:"rain,omitempty" bson:"rain,omitempty"`
}

// WeatherHourly là thời tiết dự báo theo giờ, tra theo tọa độ lưới nx/ny
type WeatherHourly struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nx       int                `json:"nx" bson:"nx" index:"compound:grid_dt"`
	Ny       int                `json:"ny" bson:"ny" index:"compound:grid_dt"`
	Dt       string             `json:"dt" bson:"dt" index:"compound:grid_dt"` // YYYYMMDD
	Hour     int                `json:"hour" bson:"hour"`
	Temp     *float64           `json:"temp,omitempty" bson:"temp,omitempty"`
	Sky      string             `json:"sky,omitempty" bson:"sky,omitempty"`
	RainProb *int               `json:"rainProb,omitempty" bson:"rainProb,omitempty"`
}

// AuctionPrice là giá đấu giá thịt heo theo ngày và cấp thịt
type AuctionPrice struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Dt        string             `json:"dt" bson:"dt" index:"compound:dt_grade"` // YYYYMMDD
	GradeCode string             `json:"gradeCode" bson:"gradeCode" index:"compound:dt_grade"`
	GradeNm   string             `json:"gradeNm,omitempty" bson:"gradeNm,omitempty"`
	AvgPrice  *float64           `json:"avgPrice,omitempty" bson:"avgPrice,omitempty"` // Won/kg
	MinPrice  *float64           `json:"minPrice,omitempty" bson:"minPrice,omitempty"`
	MaxPrice  *float64           `json:"maxPrice,omitempty" bson:"maxPrice,omitempty"`
	HeadCount *int               `json:"headCount,omitempty" bson:"headCount,omitempty"`
}

// MgmtAttachment là file đính kèm của nội dung quản lý
type MgmtAttachment struct {
	FileNm  string `json:"fileNm" bson:"fileNm"`
	FileURL string `json:"fileUrl" bson:"fileUrl"`
	Size    int64  `json:"size,omitempty" bson:"size,omitempty"`
}

// MgmtBoard là nội dung quản lý hiển thị kèm báo cáo (quiz, kênh, tin tức ngành)
type MgmtBoard struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	MgmtSeq     int64              `json:"mgmtSeq" bson:"mgmtSeq" index:"unique"`
	MgmtType    string             `json:"mgmtType" bson:"mgmtType" index:"single"` // QUIZ | CHANNEL | PORK-NEWS
	Title       string             `json:"title" bson:"title"`
	Content     string             `json:"content,omitempty" bson:"content,omitempty"`
	LinkURL     string             `json:"linkUrl,omitempty" bson:"linkUrl,omitempty"`
	Dt          string             `json:"dt" bson:"dt" index:"single"` // Ngày đăng (YYYYMMDD)
	Attachments []MgmtAttachment   `json:"attachments,omitempty" bson:"attachments,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// FarmProductivity là chỉ số năng suất tháng của trang trại (PSY, MSY...)
type FarmProductivity struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FarmNo int64              `json:"farmNo" bson:"farmNo" index:"compound:farm_month_unique"`
	Yyyymm string             `json:"yyyymm" bson:"yyyymm" index:"compound:farm_month_unique"`
	Psy    *float64           `json:"psy,omitempty" bson:"psy,omitempty"`
	Msy    *float64           `json:"msy,omitempty" bson:"msy,omitempty"`
	WeanedPerSow *float64     `json:"weanedPerSow,omitempty" bson:"weanedPerSow,omitempty"`
	FarrowRate   *float64     `json:"farrowRate,omitempty" bson:"farrowRate,omitempty"`
}
