// services/cleanup.go
package services

import (
	"log"
	"time"

	"snowline/models"

	"gorm.io/gorm"
)

// CleanupService prunes stale achievement notifications for every user on
// a fixed interval.
type CleanupService struct {
	db       *gorm.DB
	queue    *NotificationQueue
	interval time.Duration
	stop     chan struct{}
}

var cleanupService *CleanupService

// InitCleanupService initializes the singleton cleanup service.
func InitCleanupService(db *gorm.DB, queue *NotificationQueue, interval time.Duration) {
	if interval <= 0 {
		interval = 12 * time.Hour
	}
	cleanupService = &CleanupService{
		db:       db,
		queue:    queue,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// GetCleanupService returns the initialized cleanup service.
func GetCleanupService() *CleanupService {
	return cleanupService
}

// Start runs the pruning loop in the background until Stop is called.
func (s *CleanupService) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.PruneNotifications()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop terminates the pruning loop.
func (s *CleanupService) Stop() {
	close(s.stop)
}

// PruneNotifications removes expired unlock notifications for all users
// and reports how many entries were dropped.
func (s *CleanupService) PruneNotifications() int {
	var userIDs []uint
	if err := s.db.Model(&models.User{}).Pluck("id", &userIDs).Error; err != nil {
		log.Printf("cleanup: failed to list users: %v", err)
		return 0
	}

	removed := 0
	for _, id := range userIDs {
		removed += s.queue.Prune(id, DefaultNotificationMaxAgeDays)
	}
	if removed > 0 {
		log.Printf("cleanup: pruned %d stale achievement notifications", removed)
	}
	return removed
}
