// Package weeklysvc chứa service báo cáo tuần: truy vấn dòng rộng,
// giải mã popup, lưới lịch và lắp ráp báo cáo tổng hợp.
// File: service.weekly.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package weeklysvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	comsvc "github.com/wiselake/inspig-repo-sub000/internal/api/com/service"
	weeklydto "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/dto"
	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
	"github.com/wiselake/inspig-repo-sub000/internal/global"
)

// Giá trị gubun của các nhóm dòng trong week_subs
const (
	GubunModon    = "MODON"
	GubunMating   = "GB"
	GubunFarrow   = "BM"
	GubunWeaning  = "EU"
	GubunAccident = "SG"
	GubunCulling  = "DOPE"
	GubunShipment = "SHIP"
	GubunSchedule = "SCHEDULE"
	GubunAlertMd  = "ALERT_MD"
)

// Giá trị subGubun hay gặp
const (
	SubGubunStat    = "STAT"
	SubGubunList    = "LIST"
	SubGubunRow     = "ROW"
	SubGubunChart   = "CHART"
	SubGubunScatter = "SCATTER"
	SubGubunGrade   = "GRADE"
	SubGubunCal     = "CAL"
	SubGubunHelp    = "HELP"
)

// WeeklyService truy vấn master và dòng rộng của báo cáo tuần.
type WeeklyService struct {
	masterColl *mongo.Collection
	subColl    *mongo.Collection
	farmColl   *mongo.Collection
	prodColl   *mongo.Collection

	codeService *comsvc.CodeService
}

// NewWeeklyService tạo mới WeeklyService.
func NewWeeklyService() (*WeeklyService, error) {
	masterColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.WeekMasters)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.WeekMasters, common.ErrNotFound)
	}
	subColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.WeekSubs)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.WeekSubs, common.ErrNotFound)
	}
	farmColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Farms)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Farms, common.ErrNotFound)
	}
	prodColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.FarmProductivity)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.FarmProductivity, common.ErrNotFound)
	}
	codeService, err := comsvc.NewCodeService()
	if err != nil {
		return nil, fmt.Errorf("tạo CodeService: %w", err)
	}
	return &WeeklyService{
		masterColl:  masterColl,
		subColl:     subColl,
		farmColl:    farmColl,
		prodColl:    prodColl,
		codeService: codeService,
	}, nil
}

// masterVisibleFilter dựng filter lấy master cho luồng xem báo cáo.
// Chỉ báo cáo COMPLETE được phục vụ ra ngoài, khác với danh sách báo cáo
// của chủ trại vốn thấy mọi trạng thái.
func masterVisibleFilter(masterSeq, farmNo int64) bson.M {
	return bson.M{
		"masterSeq": masterSeq,
		"farmNo":    farmNo,
		"status":    models.StatusComplete,
	}
}

// FetchMaster lấy master báo cáo tuần theo masterSeq và farmNo.
// Không có master (hoặc báo cáo chưa COMPLETE) là lỗi chặn toàn bộ báo cáo,
// trả về ErrNotFound.
func (s *WeeklyService) FetchMaster(ctx context.Context, masterSeq, farmNo int64) (*models.WeekMaster, error) {
	var master models.WeekMaster
	err := s.masterColl.FindOne(ctx, masterVisibleFilter(masterSeq, farmNo)).Decode(&master)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, common.ErrNotFound
		}
		return nil, common.ConvertMongoError(err)
	}
	return &master, nil
}

// FetchSubs lấy các dòng rộng của một nhóm gubun, sắp theo subGubun rồi sortNo.
// Nhóm không có dòng nào trả về slice rỗng, không phải lỗi.
func (s *WeeklyService) FetchSubs(ctx context.Context, masterSeq int64, gubun string) ([]models.WeekSub, error) {
	filter := bson.M{"masterSeq": masterSeq, "gubun": gubun}
	opts := options.Find().SetSort(bson.D{{Key: "subGubun", Value: 1}, {Key: "sortNo", Value: 1}})
	cursor, err := s.subColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []models.WeekSub
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return rows, nil
}

// FetchFarm lấy thông tin trang trại của báo cáo
func (s *WeeklyService) FetchFarm(ctx context.Context, farmNo int64) (*models.Farm, error) {
	var farm models.Farm
	err := s.farmColl.FindOne(ctx, bson.M{"farmNo": farmNo}).Decode(&farm)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, common.ErrNotFound
		}
		return nil, common.ConvertMongoError(err)
	}
	return &farm, nil
}

// FetchProductivity tra chỉ số năng suất các tháng gần nhất của trang trại,
// tháng mới nhất trước, mặc định 6 tháng
func (s *WeeklyService) FetchProductivity(ctx context.Context, farmNo int64, months int) ([]weeklydto.ProductivityItem, error) {
	if months <= 0 {
		months = 6
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "yyyymm", Value: -1}}).
		SetLimit(int64(months))
	cursor, err := s.prodColl.Find(ctx, bson.M{"farmNo": farmNo}, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []models.FarmProductivity
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	items := make([]weeklydto.ProductivityItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, weeklydto.ProductivityItem{
			Yyyymm:       r.Yyyymm,
			Psy:          r.Psy,
			Msy:          r.Msy,
			WeanedPerSow: r.WeanedPerSow,
			FarrowRate:   r.FarrowRate,
		})
	}
	return items, nil
}

// ReportList trả về danh sách báo cáo tuần của một trang trại, mới nhất trước.
func (s *WeeklyService) ReportList(ctx context.Context, query *weeklydto.ReportListQuery) ([]weeklydto.ReportListItem, error) {
	filter := bson.M{"farmNo": query.FarmNo}
	if query.DtFrom != "" {
		filter["dtFrom"] = bson.M{"$gte": query.DtFrom}
	}
	if query.DtTo != "" {
		filter["dtTo"] = bson.M{"$lte": query.DtTo}
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "dtFrom", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.masterColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var masters []models.WeekMaster
	if err := cursor.All(ctx, &masters); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	items := make([]weeklydto.ReportListItem, 0, len(masters))
	for _, m := range masters {
		items = append(items, weeklydto.ReportListItem{
			MasterSeq: m.MasterSeq,
			FarmNo:    m.FarmNo,
			FarmNm:    m.FarmNm,
			DtFrom:    m.DtFrom,
			DtTo:      m.DtTo,
			Status:    m.Status,
			HasToken:  m.ShareToken != "",
		})
	}
	return items, nil
}
