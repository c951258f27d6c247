// Command reconcile rebuilds every dashboard stats field from full scans of
// the bookings, rooms, staff and inventory collections. Run it manually (or
// from an operator cron) to repair drift left by lost or failed aggregation
// events. With --emulator it targets the local database instead of the
// configured production deployment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"hotelops/config"
	"hotelops/database"
	bookingRepo "hotelops/database/repository/booking"
	inventoryRepo "hotelops/database/repository/inventory"
	roomRepo "hotelops/database/repository/room"
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
		Bookings:  bookingRepo.NewMongoBookingRepo(),
		Rooms:     roomRepo.NewMongoRoomRepo(),
		Staff:     staffRepo.NewMongoStaffRepo(),
		Inventory: inventoryRepo.NewMongoInventoryRepo(),
		Stats:     statsRepo.NewMongoStatsRepo(),
		Logger:    logger,
	}

	fmt.Println("starting full stats reconciliation...")
	if err := job.RunFull(context.Background()); err != nil {
		logger.Sugar().Errorf("reconciliation failed: %v", err)
		os.Exit(1)
	}
	fmt.Println("reconciliation complete")
}
