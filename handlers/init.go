// handlers/init.go
package handlers

import (
	"snowline/services"
)

var achievementSvc *services.AchievementService

// InitAchievementHandlers wires the shared achievement engine into the
// handler package. Must be called before routes are served.
func InitAchievementHandlers(svc *services.AchievementService) {
	achievementSvc = svc
}
