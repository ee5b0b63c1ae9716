// Package weeklysvc - giá đấu giá thịt heo trong tuần báo cáo.
// File: service.weekly.auction.go
package weeklysvc

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	weeklydto "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/dto"
	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
	"github.com/wiselake/inspig-repo-sub000/internal/global"
)

// Mã cấp thịt hiển thị trên biểu đồ giá theo cấp.
// ST là giá bình quân loại trừ 등외, T là bình quân toàn bộ.
var auctionGradeCodes = []string{"029068", "029069", "029070", "029076", "ST", "T"}

// AuctionService tra giá đấu giá theo ngày và cấp thịt.
type AuctionService struct {
	priceColl *mongo.Collection
}

// NewAuctionService tạo mới AuctionService.
func NewAuctionService() (*AuctionService, error) {
	priceColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.AuctionPrices)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.AuctionPrices, common.ErrNotFound)
	}
	return &AuctionService{priceColl: priceColl}, nil
}

// ForPeriod tra giá đấu giá của các cấp thịt trong khoảng ngày báo cáo,
// sắp theo ngày rồi theo cấp
func (s *AuctionService) ForPeriod(ctx context.Context, dtFrom, dtTo string) ([]weeklydto.AuctionItem, error) {
	filter := bson.M{
		"dt":        bson.M{"$gte": dtFrom, "$lte": dtTo},
		"gradeCode": bson.M{"$in": auctionGradeCodes},
	}
	opts := options.Find().SetSort(bson.D{{Key: "dt", Value: 1}, {Key: "gradeCode", Value: 1}})
	cursor, err := s.priceColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []models.AuctionPrice
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	items := make([]weeklydto.AuctionItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, weeklydto.AuctionItem{
			Dt:        r.Dt,
			GradeCode: r.GradeCode,
			GradeNm:   r.GradeNm,
			AvgPrice:  r.AvgPrice,
		})
	}
	return items, nil
}

// Chú thích nguồn số liệu hiển thị dưới khối giá của báo cáo
const auctionStatsSource = "전국(제주제외) 탕박 등외제외"

// StatsForPeriod tính giá bình quân/cao nhất/thấp nhất của cấp ST
// trong khoảng ngày báo cáo. Không có dữ liệu thì các giá trị là 0.
func (s *AuctionService) StatsForPeriod(ctx context.Context, dtFrom, dtTo string) (*weeklydto.AuctionStatsOutput, error) {
	filter := bson.M{
		"dt":        bson.M{"$gte": dtFrom, "$lte": dtTo},
		"gradeCode": "ST",
	}
	cursor, err := s.priceColl.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []models.AuctionPrice
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	stats := auctionStatsFromRows(rows)
	return &stats, nil
}

// auctionStatsFromRows gộp các dòng giá theo ngày thành một khối thống kê.
// Bình quân gia quyền theo số đầu con, giá 0 không tính vào min.
func auctionStatsFromRows(rows []models.AuctionPrice) weeklydto.AuctionStatsOutput {
	stats := weeklydto.AuctionStatsOutput{Source: auctionStatsSource}
	var amtSum float64
	var cntSum int
	for _, r := range rows {
		cnt := models.CntOrZero(r.HeadCount)
		amtSum += float64(cnt) * models.ValOrZero(r.AvgPrice)
		cntSum += cnt
		if max := models.ValOrZero(r.MaxPrice); max > stats.Max {
			stats.Max = max
		}
		if min := models.ValOrZero(r.MinPrice); min > 0 && (stats.Min == 0 || min < stats.Min) {
			stats.Min = min
		}
	}
	if cntSum > 0 {
		stats.Avg = math.Round(amtSum / float64(cntSum))
	}
	return stats
}

// ByGrade gom giá đấu giá trong khoảng ngày theo từng cấp thịt cho popup
// chi tiết, thứ tự cấp theo auctionGradeCodes
func (s *AuctionService) ByGrade(ctx context.Context, dtFrom, dtTo string) ([]weeklydto.AuctionGradeGroup, error) {
	filter := bson.M{
		"dt":        bson.M{"$gte": dtFrom, "$lte": dtTo},
		"gradeCode": bson.M{"$in": auctionGradeCodes},
	}
	opts := options.Find().SetSort(bson.D{{Key: "gradeCode", Value: 1}, {Key: "dt", Value: 1}})
	cursor, err := s.priceColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []models.AuctionPrice
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	byCode := make(map[string]*weeklydto.AuctionGradeGroup, len(auctionGradeCodes))
	for _, r := range rows {
		group, ok := byCode[r.GradeCode]
		if !ok {
			group = &weeklydto.AuctionGradeGroup{GradeCode: r.GradeCode, GradeNm: r.GradeNm}
			byCode[r.GradeCode] = group
		}
		group.Items = append(group.Items, weeklydto.AuctionPopupItem{
			Dt:        r.Dt,
			AvgPrice:  r.AvgPrice,
			MinPrice:  r.MinPrice,
			MaxPrice:  r.MaxPrice,
			HeadCount: r.HeadCount,
		})
	}

	groups := make([]weeklydto.AuctionGradeGroup, 0, len(byCode))
	for _, code := range auctionGradeCodes {
		if group, ok := byCode[code]; ok {
			groups = append(groups, *group)
		}
	}
	return groups, nil
}
