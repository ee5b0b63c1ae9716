// Package weeklysvc - khối thời tiết của báo cáo tuần.
// File: service.weekly.weather.go
package weeklysvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	weeklydto "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/dto"
	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
	"github.com/wiselake/inspig-repo-sub000/internal/global"
	"github.com/wiselake/inspig-repo-sub000/internal/utility"
)

// WeatherService tra thời tiết hiển thị kèm báo cáo tuần.
type WeatherService struct {
	dailyColl  *mongo.Collection
	hourlyColl *mongo.Collection
}

// NewWeatherService tạo mới WeatherService.
func NewWeatherService() (*WeatherService, error) {
	dailyColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.WeatherDaily)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.WeatherDaily, common.ErrNotFound)
	}
	hourlyColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.WeatherHourly)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.WeatherHourly, common.ErrNotFound)
	}
	return &WeatherService{dailyColl: dailyColl, hourlyColl: hourlyColl}, nil
}

// RegionFromAddress rút vùng tra thời tiết từ địa chỉ trang trại,
// lấy tối đa 3 từ đầu (tỉnh/huyện/xã)
func RegionFromAddress(address string) string {
	tokens := strings.Fields(address)
	if len(tokens) > 3 {
		tokens = tokens[:3]
	}
	return strings.Join(tokens, " ")
}

// ForPeriod dựng khối thời tiết cho khoảng lịch công việc của báo cáo.
// Khoảng đã qua (periodTo trước hôm nay giờ KST) trả min/max theo ngày
// từ dữ liệu lịch sử, khoảng hiện tại trả thêm dự báo hôm nay theo tọa độ trại.
func (s *WeatherService) ForPeriod(ctx context.Context, farm *models.Farm, periodFrom, periodTo string) (*weeklydto.WeatherOutput, error) {
	region := RegionFromAddress(farm.Address)
	out := &weeklydto.WeatherOutput{
		Region: region,
		IsPast: periodTo < utility.TodayKST(),
	}

	days, err := s.dailyRange(ctx, region, periodFrom, periodTo)
	if err != nil {
		return nil, err
	}
	out.Days = days

	if !out.IsPast {
		current, err := s.currentByGrid(ctx, farm.Nx, farm.Ny)
		if err != nil {
			return nil, err
		}
		out.Current = current
	}
	return out, nil
}

// dailyRange tra thời tiết lịch sử theo vùng trong khoảng ngày
func (s *WeatherService) dailyRange(ctx context.Context, region, dtFrom, dtTo string) ([]weeklydto.WeatherDayOutput, error) {
	filter := bson.M{
		"region": region,
		"dt":     bson.M{"$gte": dtFrom, "$lte": dtTo},
	}
	cursor, err := s.dailyColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "dt", Value: 1}}))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []models.WeatherDaily
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	days := make([]weeklydto.WeatherDayOutput, 0, len(rows))
	for _, r := range rows {
		days = append(days, weeklydto.WeatherDayOutput{
			Dt:      r.Dt,
			MinTemp: r.MinTemp,
			MaxTemp: r.MaxTemp,
			Sky:     r.Sky,
		})
	}
	return days, nil
}

// HourlyForDate tra toàn bộ dự báo theo giờ của một ngày theo tọa độ lưới,
// cho popup thời tiết chi tiết. Không truyền ngày thì lấy hôm nay giờ KST.
func (s *WeatherService) HourlyForDate(ctx context.Context, nx, ny int, dt string) ([]weeklydto.WeatherHourOutput, error) {
	if dt == "" {
		dt = utility.TodayKST()
	}
	filter := bson.M{"nx": nx, "ny": ny, "dt": dt}
	cursor, err := s.hourlyColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "hour", Value: 1}}))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []models.WeatherHourly
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	hours := make([]weeklydto.WeatherHourOutput, 0, len(rows))
	for _, r := range rows {
		hours = append(hours, weeklydto.WeatherHourOutput{
			Hour:     r.Hour,
			Temp:     r.Temp,
			Sky:      r.Sky,
			RainProb: r.RainProb,
		})
	}
	return hours, nil
}

// currentByGrid tra dự báo gần nhất hôm nay theo tọa độ lưới của trại.
// Không có dữ liệu trả về nil, không phải lỗi.
func (s *WeatherService) currentByGrid(ctx context.Context, nx, ny int) (*weeklydto.WeatherDayOutput, error) {
	filter := bson.M{"nx": nx, "ny": ny, "dt": utility.TodayKST()}
	opts := options.FindOne().SetSort(bson.D{{Key: "hour", Value: -1}})

	var row models.WeatherHourly
	err := s.hourlyColl.FindOne(ctx, filter, opts).Decode(&row)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, common.ConvertMongoError(err)
	}
	return &weeklydto.WeatherDayOutput{
		Dt:       row.Dt,
		Temp:     row.Temp,
		Sky:      row.Sky,
		RainProb: row.RainProb,
	}, nil
}
