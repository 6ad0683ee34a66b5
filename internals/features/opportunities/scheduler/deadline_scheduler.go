package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/opportunities/opportunity/model"
)

// StartDeadlineScheduler closes published opportunities whose deadline has
// passed. Runs hourly as a single UPDATE.
func StartDeadlineScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		res := db.Model(&model.Opportunity{}).
			Where("status = ? AND deadline < ?", model.StatusPublished, time.Now()).
			Updates(map[string]interface{}{
				"status":     model.StatusClosed,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			log.Printf("[CLEANUP ERROR] deadline auto-close failed: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("[CLEANUP] closed %d opportunities past deadline", res.RowsAffected)
		}
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] scheduler setup failed: %v", err)
		return c
	}
	c.Start()
	return c
}
