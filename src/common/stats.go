package common

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/config"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/db"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/lib"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/travel"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"
	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalCustomers   int64            `json:"total_customers"`
	StatusCounts     map[string]int64 `json:"status_counts"`
	UpcomingBookings int64            `json:"upcoming_bookings"`
	ConfirmedRevenue float64          `json:"confirmed_revenue"`
	UnreadMessages   int64            `json:"unread_messages"`
	GeneratedAt      time.Time        `json:"generated_at"`
}

const statsCacheKey = "dashboard:stats"
const statsCacheTTL = 10 * time.Minute

// ComputeDashboardStats derives the dashboard counters from live data. Status
// counts go through the resolver so the dashboard can never disagree with the
// customer list.
func ComputeDashboardStats(today time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{
		StatusCounts: map[string]int64{},
		GeneratedAt:  time.Now(),
	}
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var customers []models.Customer
		if err := tx.
			Model(&models.Customer{}).
			Preload("Bookings").
			Find(&customers).
			Error; err != nil {
			return err
		}
		stats.TotalCustomers = int64(len(customers))
		for _, c := range customers {
			status := travel.ResolveStatus(c, c.Bookings, today)
			stats.StatusCounts[status]++
		}
		cutoff := today.Format(config.DATE_PARSE_FORMAT)
		if err := tx.
			Model(&models.Booking{}).
			Where("start_date >= ? AND status <> ?", cutoff, types.BOOKING_CANCELED).
			Count(&stats.UpcomingBookings).
			Error; err != nil {
			return err
		}
		var revenue *float64
		if err := tx.
			Model(&models.Booking{}).
			Select("SUM(total_amount)").
			Where("status = ?", types.BOOKING_CONFIRMED).
			Scan(&revenue).
			Error; err != nil {
			return err
		}
		if revenue != nil {
			stats.ConfirmedRevenue = *revenue
		}
		if err := tx.
			Model(&models.InboxMessage{}).
			Where("status = ?", "unread").
			Count(&stats.UnreadMessages).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RefreshDashboardStats recomputes and caches the stats. Runs on a daily
// schedule since resolved statuses shift as dates roll over.
func RefreshDashboardStats() {
	stats, err := ComputeDashboardStats(time.Now())
	if err != nil {
		log.Printf("Error computing dashboard stats: %s\n", err.Error())
		return
	}
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	b, err := json.Marshal(stats)
	if err != nil {
		log.Printf("Error encoding dashboard stats: %s\n", err.Error())
		return
	}
	if err := rd.Set(context.Background(), statsCacheKey, string(b), statsCacheTTL).Err(); err != nil {
		log.Printf("[redis] Error caching dashboard stats: %s\n", err.Error())
	}
}

func GetCachedDashboardStats() *DashboardStats {
	rd := lib.GetRedisClient()
	if rd == nil {
		return nil
	}
	val := rd.Get(context.Background(), statsCacheKey).Val()
	if val == "" {
		return nil
	}
	var stats DashboardStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		log.Printf("Error decoding cached dashboard stats: %s\n", err.Error())
		return nil
	}
	return &stats
}

func CacheDashboardStats(stats *DashboardStats) {
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	b, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := rd.Set(context.Background(), statsCacheKey, string(b), statsCacheTTL).Err(); err != nil {
		log.Printf("[redis] Error caching dashboard stats: %s\n", err.Error())
	}
}
