package configs

import (
	"log"

	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the admin account on first boot.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups fills the menu with a starter set so a fresh install is
// usable before the admin has configured anything.
func SeedLookups() error {
	db := DB()

	// Meals
	db.FirstOrCreate(&entity.MealOption{}, entity.MealOption{Name: "Soup of the Day", SortOrder: 1})
	db.FirstOrCreate(&entity.MealOption{}, entity.MealOption{Name: "Jacket Potato", SortOrder: 2})
	db.FirstOrCreate(&entity.MealOption{}, entity.MealOption{Name: "Sandwich Platter", SortOrder: 3})

	// Sides
	db.FirstOrCreate(&entity.SubItemOption{}, entity.SubItemOption{Name: "Bread Roll", SortOrder: 1})
	db.FirstOrCreate(&entity.SubItemOption{}, entity.SubItemOption{Name: "Side Salad", SortOrder: 2})

	return nil
}
