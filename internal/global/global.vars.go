package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wiselake/inspig-repo-sub000/config"
	"github.com/wiselake/inspig-repo-sub000/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	WeekMasters      string // Tên collection cho bản ghi master báo cáo tuần
	WeekSubs         string // Tên collection cho các dòng dữ liệu rộng của báo cáo tuần
	Farms            string // Tên collection cho trang trại
	Members          string // Tên collection cho thành viên (đăng nhập)
	CodeSys          string // Tên collection cho mã hệ thống (trạng thái nái, mã công việc)
	CodeJohap        string // Tên collection cho mã theo hợp tác xã (lý do đào thải)
	CodeCValues      string // Tên collection cho giá trị cấu hình mã (quốc gia -> ngôn ngữ)
	HelpMessages     string // Tên collection cho nội dung trợ giúp
	WeatherDaily     string // Tên collection cho thời tiết theo ngày
	WeatherHourly    string // Tên collection cho thời tiết theo giờ
	AuctionPrices    string // Tên collection cho giá đấu giá thịt heo
	MgmtBoards       string // Tên collection cho nội dung quản lý (quiz, kênh, tin tức)
	FarmProductivity string // Tên collection cho chỉ số năng suất trang trại
}

// Các biến toàn cục
var Validate *validator.Validate                     // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                    // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration       // Cấu hình của server
var MongoDB_ColNames = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
