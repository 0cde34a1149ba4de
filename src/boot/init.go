package boot

import (
	"log"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/common"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/db"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/lib"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Customer{},
		&models.Booking{},
		&models.Hotel{},
		&models.HotelRate{},
		&models.Guide{},
		&models.GuideRate{},
		&models.Activity{},
		&models.ActivityRate{},
		&models.Itinerary{},
		&models.ItineraryDay{},
		&models.ItineraryItem{},
		&models.InboxMessage{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	// Resolved statuses drift past midnight; re-warm the dashboard cache daily.
	id, err := lib.CreateDailyJob(common.RefreshDashboardStats, 0, 5)
	if err != nil {
		log.Printf("Error scheduling dashboard refresh: %s\n", err.Error())
		return
	}
	log.Printf("Scheduled daily dashboard refresh: %s\n", *id)
	jobsWaitingInQueue := len(sched.Jobs())
	log.Println("Jobs in queue:", jobsWaitingInQueue)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while shutting stopping Scheduler. Check logs for info")
		return
	}
}
