// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"snowline/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Run{},
		&models.Resort{},
		&models.StoreEntry{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	createIndexes()
	seedResorts()

	log.Println("Migrations completed")
}

func createIndexes() {
	db := GetDB()

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_verified ON users(is_verified)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_guest ON users(is_guest)")

	// Run indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_runs_user ON runs(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_runs_resort ON runs(resort_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_runs_start ON runs(start_time DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_runs_public ON runs(is_public)")
}

// seedResorts inserts the known resort list; existing rows are left alone.
func seedResorts() {
	db := GetDB()

	resorts := []models.Resort{
		{ID: "coronet-peak", Name: "Coronet Peak", Region: "Queenstown", Country: "New Zealand"},
		{ID: "the-remarkables", Name: "The Remarkables", Region: "Queenstown", Country: "New Zealand"},
		{ID: "cardrona", Name: "Cardrona Alpine Resort", Region: "Wanaka", Country: "New Zealand"},
		{ID: "treble-cone", Name: "Treble Cone", Region: "Wanaka", Country: "New Zealand"},
		{ID: "mt-hutt", Name: "Mt Hutt", Region: "Canterbury", Country: "New Zealand"},
		{ID: "whakapapa", Name: "Whakapapa", Region: "Mt Ruapehu", Country: "New Zealand"},
		{ID: "turoa", Name: "Tūroa", Region: "Mt Ruapehu", Country: "New Zealand"},
		{ID: "perisher", Name: "Perisher", Region: "Snowy Mountains", Country: "Australia"},
		{ID: "thredbo", Name: "Thredbo", Region: "Snowy Mountains", Country: "Australia"},
		{ID: "niseko", Name: "Niseko United", Region: "Hokkaido", Country: "Japan"},
	}

	for _, resort := range resorts {
		var count int64
		db.Model(&models.Resort{}).Where("id = ?", resort.ID).Count(&count)
		if count == 0 {
			if err := db.Create(&resort).Error; err != nil {
				log.Printf("Failed to seed resort %s: %v", resort.ID, err)
			}
		}
	}
}
