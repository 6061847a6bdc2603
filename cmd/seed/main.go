package main

import (
	"log"
	"os"
	"time"

	"vendor-marketplace-be/internal/entity"
	"vendor-marketplace-be/internal/model"
	"vendor-marketplace-be/internal/pkg/serverutils"
	"vendor-marketplace-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding subscription plans...")
	seedPlans(db)

	color.Cyan("Seeding service catalog...")
	seedServices(db)

	color.Cyan("Seeding users...")
	users := seedUsers(db)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	color.Cyan("\nDevelopment bearer tokens (valid 7 days):")
	for _, u := range users {
		token, err := serverutils.GenerateToken(secret, u.Id, u.Role, 7*24*time.Hour)
		if err != nil {
			color.Red("Failed to sign token for %s: %v", u.Email, err)
			continue
		}
		color.Yellow("%-8s %s", u.Role, u.Email)
		log.Printf("Bearer %s", token)
	}

	color.Green("\n✅ Seeding completed!")
}

func seedPlans(db *gorm.DB) {
	plans := []model.SubscriptionPlan{
		{Name: "Basic Plan", Description: "For vendors getting started", Price: decimal.NewFromInt(99000), BookingLimit: 10, ValidityPeriod: 30, IsActive: true},
		{Name: "Standard Plan", Description: "For growing vendors", Price: decimal.NewFromInt(199000), BookingLimit: 25, ValidityPeriod: 30, IsActive: true},
		{Name: "Premium Plan", Description: "For busy vendors", Price: decimal.NewFromInt(349000), BookingLimit: 50, ValidityPeriod: 30, IsActive: true},
	}

	for _, p := range plans {
		var existing model.SubscriptionPlan
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			log.Printf("Plan '%s' already exists, skipping...", p.Name)
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			color.Red("Error creating plan '%s': %v", p.Name, err)
		} else {
			log.Printf("Created plan: %s (%d bookings)", p.Name, p.BookingLimit)
		}
	}
}

func seedServices(db *gorm.DB) {
	services := []model.Service{
		{Name: "Home Cleaning", Category: "cleaning", Description: "Regular home cleaning", BasePrice: decimal.NewFromInt(150000), IsActive: true},
		{Name: "Deep Cleaning", Category: "cleaning", Description: "Thorough top to bottom cleaning", BasePrice: decimal.NewFromInt(350000), IsActive: true},
		{Name: "AC Service", Category: "maintenance", Description: "Air conditioner cleaning and check", BasePrice: decimal.NewFromInt(120000), IsActive: true},
		{Name: "Plumbing Repair", Category: "maintenance", Description: "Leaks, clogs and fittings", BasePrice: decimal.NewFromInt(175000), IsActive: true},
		{Name: "Electrical Repair", Category: "maintenance", Description: "Wiring, sockets and lighting", BasePrice: decimal.NewFromInt(175000), IsActive: true},
		{Name: "Garden Care", Category: "outdoor", Description: "Mowing, trimming and planting", BasePrice: decimal.NewFromInt(200000), IsActive: true},
		{Name: "Pest Control", Category: "outdoor", Description: "Termite and insect treatment", BasePrice: decimal.NewFromInt(400000), IsActive: true},
		{Name: "Laundry", Category: "cleaning", Description: "Wash, dry and fold", BasePrice: decimal.NewFromInt(80000), IsActive: true},
	}

	for _, s := range services {
		var existing model.Service
		if err := db.Where("name = ?", s.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			color.Red("Error creating service '%s': %v", s.Name, err)
		} else {
			log.Printf("Created service: %s", s.Name)
		}
	}
}

func seedUsers(db *gorm.DB) []model.User {
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "password123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash seed password: %v", err)
	}
	hashStr := string(hash)

	users := []model.User{
		{Name: "Marketplace Admin", Email: "admin@marketplace.local", Role: string(entity.UserRoleAdmin)},
		{Name: "Sparkle Cleaning", Email: "vendor@marketplace.local", Phone: "081200000001", Role: string(entity.UserRoleVendor)},
		{Name: "Jane Customer", Email: "customer@marketplace.local", Phone: "081200000002", Role: string(entity.UserRoleCustomer)},
	}

	seeded := make([]model.User, 0, len(users))
	for _, u := range users {
		var existing model.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			seeded = append(seeded, existing)
			continue
		}
		u.PasswordHash = &hashStr
		u.Status = string(entity.UserStatusActive)
		if err := db.Create(&u).Error; err != nil {
			color.Red("Error creating user '%s': %v", u.Email, err)
			continue
		}
		log.Printf("Created %s: %s", u.Role, u.Email)
		seeded = append(seeded, u)
	}
	return seeded
}
