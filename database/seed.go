package database

import (
	"log"

	"travel_manager/constants"
	"travel_manager/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin@123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	accounts := []model.Account{
		{Username: "Administration", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	categories := []model.PackageCategory{
		{Name: "Beach", Description: "Beach tour packages"},
		{Name: "Backwaters", Description: "Backwaters tour packages"},
		{Name: "Hill Station", Description: "Hill Station tour packages"},
		{Name: "Religious", Description: "Religious tour packages"},
		{Name: "Heritage", Description: "Heritage tour packages"},
		{Name: "City Tour", Description: "City Tour tour packages"},
	}
	for _, category := range categories {
		category.Slug = slug.Make(category.Name)
		if err := db.Where(model.PackageCategory{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed data for category:", category.Name, "error:", err)
		}
	}
}
