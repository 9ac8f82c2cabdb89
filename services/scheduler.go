// services/scheduler.go
package services

import (
	"log"
	"time"

	"product-auth-system/models"

	"github.com/go-co-op/gocron/v2"
)

// StartStreakScheduler zeroes current_streak for users who have gone more
// than one full calendar day without activity, so dashboards never show a
// streak that has already lapsed. The award path recomputes streaks on its
// own — this sweep only keeps the displayed value honest between activities.
func (s *GamificationService) StartStreakScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			y, m, d := time.Now().AddDate(0, 0, -1).Date()
			cutoff := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
			res := s.DB.Model(&models.UserStats{}).
				Where("current_streak > 0 AND (last_activity_date IS NULL OR last_activity_date < ?)", cutoff).
				Update("current_streak", 0)
			if res.Error != nil {
				log.Printf("[Scheduler] DB error: %v", res.Error)
				return
			}
			if res.RowsAffected > 0 {
				log.Printf("✅ Reset %d lapsed streaks", res.RowsAffected)
			}
		}),
	)
}
