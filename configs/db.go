package configs

import (
	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the store selected by DB_SOURCE. The app only ever
// talks to one store at a time; swapping the source at startup is how a
// standalone (fully local) deployment is selected.
func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Order{},
		&entity.DessertItem{},
		&entity.MealOption{}, &entity.SubItemOption{},
		&entity.PayItForwardDonation{}, &entity.PayItForwardUsage{},
		&entity.AttendanceRecord{},
	)
}
