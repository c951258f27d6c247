// Command reconcilestaff rebuilds only the staff counters (totalStaff,
// activeStaff) on the dashboard stats document. It is the narrow variant of
// cmd/reconcile for when only the roster has drifted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"hotelops/config"
	"hotelops/database"
	staffRepo "hotelops/database/repository/staff"
	statsRepo "hotelops/database/repository/stats"
	"hotelops/services/reconcile"
	"hotelops/utils"
)

func main() {
	emulator := flag.Bool("emulator", false, "target the local emulator database instead of production")
	flag.Parse()

	config.LoadConfig()
	if *emulator {
		config.AppConfig.DatabaseURL = "mongodb://" + config.AppConfig.EmulatorHost
		fmt.Printf("targeting emulator at %s\n", config.AppConfig.EmulatorHost)
	}

	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()

	job := &reconcile.Job{
		Staff:  staffRepo.NewMongoStaffRepo(),
		Stats:  statsRepo.NewMongoStatsRepo(),
		Logger: logger,
	}

	fmt.Println("starting staff stats reconciliation...")
	if err := job.RunStaff(context.Background()); err != nil {
		logger.Sugar().Errorf("staff reconciliation failed: %v", err)
		os.Exit(1)
	}
	fmt.Println("staff reconciliation complete")
}
