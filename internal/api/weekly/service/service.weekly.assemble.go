// Package weeklysvc - lắp ráp báo cáo tuần tổng hợp.
// File: service.weekly.assemble.go
package weeklysvc

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	weeklydto "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/dto"
	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
	"github.com/wiselake/inspig-repo-sub000/internal/logger"
	"github.com/wiselake/inspig-repo-sub000/internal/utility"
)

// AssemblerService lắp ráp báo cáo tuần từ các khối: popup, lịch,
// thời tiết, giá đấu giá và nội dung quản lý.
type AssemblerService struct {
	weekly  *WeeklyService
	weather *WeatherService
	auction *AuctionService
	mgmt    *MgmtService
}

// NewAssemblerService tạo mới AssemblerService.
func NewAssemblerService() (*AssemblerService, error) {
	weekly, err := NewWeeklyService()
	if err != nil {
		return nil, fmt.Errorf("tạo WeeklyService: %w", err)
	}
	weather, err := NewWeatherService()
	if err != nil {
		return nil, fmt.Errorf("tạo WeatherService: %w", err)
	}
	auction, err := NewAuctionService()
	if err != nil {
		return nil, fmt.Errorf("tạo AuctionService: %w", err)
	}
	mgmt, err := NewMgmtService()
	if err != nil {
		return nil, fmt.Errorf("tạo MgmtService: %w", err)
	}
	return &AssemblerService{
		weekly:  weekly,
		weather: weather,
		auction: auction,
		mgmt:    mgmt,
	}, nil
}

// Weekly trả về WeeklyService bên trong, cho handler dùng lại các truy vấn lẻ
func (s *AssemblerService) Weekly() *WeeklyService {
	return s.weekly
}

// Weather trả về WeatherService bên trong
func (s *AssemblerService) Weather() *WeatherService {
	return s.weather
}

// Auction trả về AuctionService bên trong
func (s *AssemblerService) Auction() *AuctionService {
	return s.auction
}

// Mgmt trả về MgmtService bên trong
func (s *AssemblerService) Mgmt() *MgmtService {
	return s.mgmt
}

// GetWeeklyReport dựng báo cáo tuần tổng hợp.
//
// Master không tồn tại là lỗi chặn toàn bộ. Các khối còn lại độc lập:
// khối nào lỗi thì bỏ (null), tên khối ghi vào partialErrors và báo cáo
// vẫn trả về với phần còn lại.
func (s *AssemblerService) GetWeeklyReport(ctx context.Context, masterSeq, farmNo int64, lang string) (*weeklydto.WeeklyReportOutput, error) {
	master, err := s.weekly.FetchMaster(ctx, masterSeq, farmNo)
	if err != nil {
		return nil, err
	}

	out := &weeklydto.WeeklyReportOutput{
		Header: weeklydto.ReportHeader{
			MasterSeq:   master.MasterSeq,
			FarmNo:      master.FarmNo,
			FarmNm:      master.FarmNm,
			DtFrom:      master.DtFrom,
			DtTo:        master.DtTo,
			PeriodLabel: utility.FormatMMDD(master.DtFrom) + " - " + utility.FormatMMDD(master.DtTo),
		},
		Popups: map[string]interface{}{},
	}
	out.Alert = &weeklydto.AlertSummary{
		Count:      master.AlertTotal,
		EuMiCnt:    master.AlertEuMi,
		SgMiCnt:    master.AlertSgMi,
		BmDelayCnt: master.AlertBmDelay,
		EuDelayCnt: master.AlertEuDelay,
	}
	out.LastWeek = buildLastWeek(master)
	out.ThisWeekSums = &weeklydto.ThisWeekSums{
		GbSum:      master.ThisGbSum,
		ImsinSum:   master.ThisImsinSum,
		BmSum:      master.ThisBmSum,
		EuSum:      master.ThisEuSum,
		VaccineSum: master.ThisVaccineSum,
		ShipSum:    master.ThisShipSum,
	}

	var mu sync.Mutex
	addPartial := func(part string, err error) {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"masterSeq": masterSeq,
			"farmNo":    farmNo,
			"part":      part,
		}).WithError(err).Warn("Dựng một khối báo cáo thất bại, bỏ khối này")
		mu.Lock()
		out.PartialErrors = append(out.PartialErrors, part)
		mu.Unlock()
	}

	// Lịch dựng trước vì khối thời tiết cần khoảng thời gian tuần kế tiếp
	scheduleRows, err := s.weekly.FetchSubs(ctx, masterSeq, GubunSchedule)
	if err != nil {
		addPartial("calendar", err)
		scheduleRows = nil
	} else {
		out.Calendar = decodeCalendar(scheduleRows, master)
		out.Schedule = s.weekly.decodeSchedule(scheduleRows, lang)
	}

	g, gctx := errgroup.WithContext(ctx)

	for popupType := range popupGubunMap {
		popupType := popupType
		g.Go(func() error {
			popup, err := s.weekly.GetPopup(gctx, popupType, masterSeq, lang)
			if err != nil {
				addPartial("popup:"+popupType, err)
				return nil
			}
			mu.Lock()
			out.Popups[popupType] = popup
			mu.Unlock()
			return nil
		})
	}

	g.Go(func() error {
		rows, err := s.weekly.FetchSubs(gctx, masterSeq, GubunAlertMd)
		if err != nil {
			addPartial("alertMd", err)
			return nil
		}
		mu.Lock()
		out.AlertMd = decodeAlertMd(rows)
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		if out.Calendar == nil {
			return nil
		}
		farm, err := s.weekly.FetchFarm(gctx, farmNo)
		if err != nil {
			addPartial("weather", err)
			return nil
		}
		weather, err := s.weather.ForPeriod(gctx, farm, out.Calendar.PeriodFrom, out.Calendar.PeriodTo)
		if err != nil {
			addPartial("weather", err)
			return nil
		}
		mu.Lock()
		out.Weather = weather
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		items, err := s.auction.ForPeriod(gctx, master.DtFrom, master.DtTo)
		if err != nil {
			addPartial("auction", err)
			return nil
		}
		stats, err := s.auction.StatsForPeriod(gctx, master.DtFrom, master.DtTo)
		if err != nil {
			addPartial("auction", err)
			return nil
		}
		mu.Lock()
		out.Auction = items
		out.AuctionStats = stats
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		mgmt, err := s.mgmt.ForReportWeek(gctx, master.DtFrom, master.DtTo)
		if err != nil {
			addPartial("mgmt", err)
			return nil
		}
		mu.Lock()
		out.Mgmt = mgmt
		mu.Unlock()
		return nil
	})

	// Các goroutine chỉ ghi partialErrors, không trả lỗi
	_ = g.Wait()

	out.Kpi = buildKpi(out.Popups)

	return out, nil
}

// buildLastWeek dựng khối tóm tắt tuần trước từ các bộ đếm trên master
func buildLastWeek(master *models.WeekMaster) *weeklydto.LastWeekOutput {
	return &weeklydto.LastWeekOutput{
		WeekNum: master.ReportWeekNo,
		From:    utility.FormatMMDD(master.DtFrom),
		To:      utility.FormatMMDD(master.DtTo),
		Modon: weeklydto.LastWeekModon{
			RegCnt:       master.ModonRegCnt,
			SangsiCnt:    master.ModonSangsiCnt,
			RegChange:    master.ModonRegChg,
			SangsiChange: master.ModonSangsiChg,
		},
		Mating: weeklydto.LastWeekMating{
			Cnt: master.LastGbCnt,
			Sum: master.LastGbSum,
		},
		Farrowing: weeklydto.LastWeekFarrowing{
			Cnt:         master.LastBmCnt,
			TotalCnt:    master.LastBmTotal,
			LiveCnt:     master.LastBmLive,
			DeadCnt:     master.LastBmDead,
			MummyCnt:    master.LastBmMummy,
			SumCnt:      master.LastBmSumCnt,
			SumTotalCnt: master.LastBmSumTotal,
			SumLiveCnt:  master.LastBmSumLive,
			AvgTotal:    master.LastBmAvgTotal,
			AvgLive:     master.LastBmAvgLive,
			SumAvgTotal: master.LastBmSumAvgTotal,
			SumAvgLive:  master.LastBmSumAvgLive,
			ChangeTotal: master.LastBmChgTotal,
			ChangeLive:  master.LastBmChgLive,
		},
		Weaning: weeklydto.LastWeekWeaning{
			Cnt:          master.LastEuCnt,
			PigletCnt:    master.LastEuJdCnt,
			AvgWeight:    master.LastEuAvgKg,
			AvgPiglet:    master.LastEuAvgJd,
			SumCnt:       master.LastEuSumCnt,
			SumPiglet:    master.LastEuSumJd,
			SumAvgPiglet: master.LastEuSumAvgJd,
			ChangePiglet: master.LastEuChgJd,
			ChangeWeight: master.LastEuChgKg,
		},
		Accident: weeklydto.LastWeekAccident{
			Cnt:           master.LastSgCnt,
			AvgGyungil:    master.LastSgAvgGyungil,
			Sum:           master.LastSgSum,
			SumAvgGyungil: master.LastSgSumAvgGyungil,
		},
		Culling: weeklydto.LastWeekCulling{
			Cnt: master.LastClCnt,
			Sum: master.LastClSum,
		},
		Shipment: weeklydto.LastWeekShipment{
			Cnt:    master.LastShCnt,
			Avg:    master.LastShAvgKg,
			Sum:    master.LastShSum,
			AvgSum: master.LastShAvgSum,
		},
	}
}

// buildKpi rút khối chỉ số đầu báo cáo từ các popup đã giải mã.
// Popup lỗi (không có trong map) thì chỉ số tương ứng bỏ trống.
func buildKpi(popups map[string]interface{}) *weeklydto.KpiBlock {
	kpi := &weeklydto.KpiBlock{}
	if p, ok := popups["modon"].(*weeklydto.ModonOutput); ok && p != nil {
		for _, item := range p.Chart {
			kpi.SowTotal += item.Value
		}
	}
	if p, ok := popups["mating"].(*weeklydto.MatingOutput); ok && p != nil {
		kpi.Mating = &weeklydto.KpiItem{Planned: p.Total.Planned, Actual: p.Total.Actual, Rate: p.Total.Rate}
	}
	if p, ok := popups["farrowing"].(*weeklydto.FarrowingOutput); ok && p != nil {
		kpi.Farrowing = &weeklydto.KpiItem{Planned: p.Planned, Actual: p.Actual, Rate: p.Rate}
	}
	if p, ok := popups["weaning"].(*weeklydto.WeaningOutput); ok && p != nil {
		kpi.Weaning = &weeklydto.KpiItem{Planned: p.Planned, Actual: p.Actual, Rate: p.Rate}
	}
	if p, ok := popups["accident"].(*weeklydto.AccidentOutput); ok && p != nil {
		for _, row := range p.Table {
			kpi.AccidentLastWeek += models.CntOrZero(row.LastWeek)
		}
	}
	if p, ok := popups["shipment"].(*weeklydto.ShipmentOutput); ok && p != nil {
		kpi.ShipmentCount = p.Metrics.TotalCount
	}
	return kpi
}
