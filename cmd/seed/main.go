package main

import (
	"log"
	"os"

	"printing-support-be/internal/model"
	"printing-support-be/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

// Demo accounts for local development. Passwords are hashed here so the
// seed never stores plaintext.
type seedUser struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
	Password  string
}

var seedUsers = []seedUser{
	{Email: "maria.santos@example.com", Phone: "555-010-2233", FirstName: "Maria", LastName: "Santos", Password: "printshop-demo-1"},
	{Email: "devon.carter@example.com", Phone: "555-014-8876", FirstName: "Devon", LastName: "Carter", Password: "printshop-demo-2"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding demo users...")

	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error: Failed to hash password for %s: %v", su.Email, err)
		}

		user := model.User{
			Email:        su.Email,
			Phone:        su.Phone,
			PasswordHash: string(hash),
			FirstName:    su.FirstName,
			LastName:     su.LastName,
		}

		// Re-running the seed updates the existing account.
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"phone", "password_hash", "first_name", "last_name"}),
		}).Create(&user)
		if result.Error != nil {
			log.Fatalf("Error: Failed to seed user %s: %v", su.Email, result.Error)
		}

		log.Printf("Seeded user %s", su.Email)
	}

	log.Println("✅ Success: Seed completed.")
}
