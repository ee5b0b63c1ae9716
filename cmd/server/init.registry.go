package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wiselake/inspig-repo-sub000/config"
	"github.com/wiselake/inspig-repo-sub000/internal/global"
)

func InitRegistry() {
	logrus.Info("Initialized registry") // Ghi log thông báo đã khởi tạo registry

	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.WeekMasters,
		global.MongoDB_ColNames.WeekSubs,
		global.MongoDB_ColNames.Farms,
		global.MongoDB_ColNames.Members,
		global.MongoDB_ColNames.FarmProductivity,
		global.MongoDB_ColNames.CodeSys,
		global.MongoDB_ColNames.CodeJohap,
		global.MongoDB_ColNames.CodeCValues,
		global.MongoDB_ColNames.HelpMessages,
		global.MongoDB_ColNames.WeatherDaily,
		global.MongoDB_ColNames.WeatherHourly,
		global.MongoDB_ColNames.AuctionPrices,
		global.MongoDB_ColNames.MgmtBoards,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
