package weeklysvc

import (
	"testing"

	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
)

func TestAuctionStatsFromRows_BinhQuanGiaQuyen(t *testing.T) {
	rows := []models.AuctionPrice{
		{Dt: "20250602", GradeCode: "ST", AvgPrice: models.FloatPtr(5000), MinPrice: models.FloatPtr(4800), MaxPrice: models.FloatPtr(5300), HeadCount: models.IntPtr(100)},
		{Dt: "20250603", GradeCode: "ST", AvgPrice: models.FloatPtr(5600), MinPrice: models.FloatPtr(5200), MaxPrice: models.FloatPtr(5900), HeadCount: models.IntPtr(300)},
	}
	stats := auctionStatsFromRows(rows)

	// (100*5000 + 300*5600) / 400 = 5450
	if stats.Avg != 5450 {
		t.Errorf("bình quân phải gia quyền theo số đầu con, mong 5450, nhận %v", stats.Avg)
	}
	if stats.Max != 5900 || stats.Min != 4800 {
		t.Errorf("max/min sai: %+v", stats)
	}
	if stats.Source == "" {
		t.Error("khối thống kê phải kèm chú thích nguồn số liệu")
	}
}

func TestAuctionStatsFromRows_GiaKhongTinhVaoMin(t *testing.T) {
	rows := []models.AuctionPrice{
		{Dt: "20250602", GradeCode: "ST", AvgPrice: models.FloatPtr(5000), MinPrice: models.FloatPtr(0), MaxPrice: models.FloatPtr(5300), HeadCount: models.IntPtr(50)},
		{Dt: "20250603", GradeCode: "ST", AvgPrice: models.FloatPtr(5100), MinPrice: models.FloatPtr(4900), MaxPrice: models.FloatPtr(5200), HeadCount: models.IntPtr(50)},
	}
	stats := auctionStatsFromRows(rows)
	if stats.Min != 4900 {
		t.Errorf("giá 0 không được tính vào min, mong 4900, nhận %v", stats.Min)
	}
}

func TestAuctionStatsFromRows_KhongCoDuLieu(t *testing.T) {
	stats := auctionStatsFromRows(nil)
	if stats.Avg != 0 || stats.Max != 0 || stats.Min != 0 {
		t.Errorf("không có dữ liệu thì các giá trị là 0: %+v", stats)
	}
}
