// Package weeklysvc - nội dung quản lý hiển thị kèm báo cáo tuần.
// File: service.weekly.mgmt.go
package weeklysvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	weeklydto "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/dto"
	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
	"github.com/wiselake/inspig-repo-sub000/internal/common"
	"github.com/wiselake/inspig-repo-sub000/internal/global"
	"github.com/wiselake/inspig-repo-sub000/internal/utility"
)

// Loại nội dung quản lý hiển thị trên báo cáo
const (
	MgmtTypeQuiz     = "QUIZ"
	MgmtTypeChannel  = "CHANNEL"
	MgmtTypePorkNews = "PORK-NEWS"
)

// MgmtService tra nội dung quản lý quanh tuần báo cáo.
type MgmtService struct {
	boardColl *mongo.Collection
}

// NewMgmtService tạo mới MgmtService.
func NewMgmtService() (*MgmtService, error) {
	boardColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.MgmtBoards)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.MgmtBoards, common.ErrNotFound)
	}
	return &MgmtService{boardColl: boardColl}, nil
}

// ForReportWeek tra nội dung quản lý trong cửa sổ tuần trước đến tuần sau
// của tuần báo cáo [dtFrom-7, dtTo+7], chia theo loại nội dung
func (s *MgmtService) ForReportWeek(ctx context.Context, dtFrom, dtTo string) (*weeklydto.MgmtOutput, error) {
	windowFrom := utility.AddDaysYYYYMMDD(dtFrom, -7)
	windowTo := utility.AddDaysYYYYMMDD(dtTo, 7)

	filter := bson.M{
		"dt":       bson.M{"$gte": windowFrom, "$lte": windowTo},
		"mgmtType": bson.M{"$in": []string{MgmtTypeQuiz, MgmtTypeChannel, MgmtTypePorkNews}},
	}
	opts := options.Find().SetSort(bson.D{{Key: "dt", Value: -1}})
	cursor, err := s.boardColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []models.MgmtBoard
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	out := &weeklydto.MgmtOutput{}
	for _, r := range rows {
		item := weeklydto.MgmtItem{
			MgmtSeq:  r.MgmtSeq,
			MgmtType: r.MgmtType,
			Title:    r.Title,
			Content:  r.Content,
			LinkURL:  r.LinkURL,
			Dt:       r.Dt,
		}
		switch r.MgmtType {
		case MgmtTypeQuiz:
			out.Quiz = append(out.Quiz, item)
		case MgmtTypeChannel:
			out.Channel = append(out.Channel, item)
		case MgmtTypePorkNews:
			out.PorkNews = append(out.PorkNews, item)
		}
	}
	return out, nil
}

// Detail lấy một nội dung quản lý đầy đủ kèm file đính kèm
func (s *MgmtService) Detail(ctx context.Context, mgmtSeq int64) (*models.MgmtBoard, error) {
	var board models.MgmtBoard
	err := s.boardColl.FindOne(ctx, bson.M{"mgmtSeq": mgmtSeq}).Decode(&board)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, common.ErrNotFound
		}
		return nil, common.ConvertMongoError(err)
	}
	return &board, nil
}
