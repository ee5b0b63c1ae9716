package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/wiselake/inspig-repo-sub000/config"
	authmodels "github.com/wiselake/inspig-repo-sub000/internal/api/auth/models"
	commodels "github.com/wiselake/inspig-repo-sub000/internal/api/com/models"
	weeklymodels "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
	"github.com/wiselake/inspig-repo-sub000/internal/database"
	"github.com/wiselake/inspig-repo-sub000/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Dữ liệu báo cáo tuần (tiền tố week_)
	global.MongoDB_ColNames.WeekMasters = "week_masters"
	global.MongoDB_ColNames.WeekSubs = "week_subs"

	// Trang trại và thành viên
	global.MongoDB_ColNames.Farms = "farms"
	global.MongoDB_ColNames.Members = "members"
	global.MongoDB_ColNames.FarmProductivity = "farm_productivity"

	// Bảng mã dùng chung (tiền tố code_)
	global.MongoDB_ColNames.CodeSys = "code_sys"
	global.MongoDB_ColNames.CodeJohap = "code_johap"
	global.MongoDB_ColNames.CodeCValues = "code_cvalues"
	global.MongoDB_ColNames.HelpMessages = "help_messages"

	// Dữ liệu ngoài kèm báo cáo
	global.MongoDB_ColNames.WeatherDaily = "weather_daily"
	global.MongoDB_ColNames.WeatherHourly = "weather_hourly"
	global.MongoDB_ColNames.AuctionPrices = "auction_prices"
	global.MongoDB_ColNames.MgmtBoards = "mgmt_boards"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.WeekMasters), weeklymodels.WeekMaster{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.WeekSubs), weeklymodels.WeekSub{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Farms), weeklymodels.Farm{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Members), authmodels.Member{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.FarmProductivity), weeklymodels.FarmProductivity{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CodeSys), commodels.CodeSys{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CodeJohap), commodels.CodeJohap{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CodeCValues), commodels.CodeCValue{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.HelpMessages), commodels.HelpMessage{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.WeatherDaily), weeklymodels.WeatherDaily{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.WeatherHourly), weeklymodels.WeatherHourly{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AuctionPrices), weeklymodels.AuctionPrice{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.MgmtBoards), weeklymodels.MgmtBoard{})
}
