package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	attendanceModel "eventhub_backend/internals/features/events/attendance/model"
	authModel "eventhub_backend/internals/features/users/auth/model"

	"gorm.io/gorm"
)

// StartBlacklistCleanupScheduler prunes blacklist rows whose tokens expired
// long ago. TTL is days via TOKEN_BLACKLIST_TTL_DAYS (default 7).
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expiredTokens []authModel.TokenBlacklist
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expiredTokens).Error; err != nil {
				log.Printf("[CLEANUP ERROR] fetching expired blacklist rows: %v", err)
			} else if len(expiredTokens) > 0 {
				if err := db.Delete(&expiredTokens).Error; err != nil {
					log.Printf("[CLEANUP ERROR] deleting blacklist rows: %v", err)
				} else {
					log.Printf("[CLEANUP] %d expired blacklist rows removed", len(expiredTokens))
				}
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}

// StartTokenSweepScheduler hard-deletes attendance tokens that expired over
// an hour ago. Validation never depends on this: expiry is checked per scan.
// The sweep only keeps the table from growing unbounded under 15s rotation.
func StartTokenSweepScheduler(db *gorm.DB) {
	go func() {
		for {
			cutoff := time.Now().Add(-1 * time.Hour)
			res := db.Where("attendance_token_expires_at < ?", cutoff).
				Delete(&attendanceModel.AttendanceTokenModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] sweeping attendance tokens: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d stale attendance tokens removed", res.RowsAffected)
			}

			time.Sleep(1 * time.Hour)
		}
	}()
}
