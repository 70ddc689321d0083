package database

import (
	"fmt"
	"log"
	"time"

	"github.com/Alas-3/syrincal-system/auth"
	"github.com/Alas-3/syrincal-system/models"
	"gorm.io/gorm"
)

// SeedData seeds initial data into empty tables
func SeedData(db *gorm.DB) error {
	log.Println("Checking if database needs seeding...")

	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		log.Println("Database already has data. Skipping seed.")
		return nil
	}

	log.Println("Database is empty. Starting seed process...")

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SET search_path TO syrincal").Error; err != nil {
			return fmt.Errorf("failed to set search path: %w", err)
		}

		if err := seedUsers(tx); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}

		if err := seedClients(tx); err != nil {
			return fmt.Errorf("failed to seed clients: %w", err)
		}

		products, err := seedProducts(tx)
		if err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}

		if err := seedSales(tx, products); err != nil {
			return fmt.Errorf("failed to seed sales: %w", err)
		}

		log.Println("Seed completed successfully")
		return nil
	})
}

func seedUsers(tx *gorm.DB) error {
	type account struct {
		email    string
		password string
		role     string
		tier     string
	}

	accounts := []account{
		{"admin@syrincal.com", "admin123", models.RoleAdmin, "standard"},
		{"manager@syrincal.com", "manager123", models.RoleManager, "standard"},
		{"agent@syrincal.com", "agent123", models.RoleAgent, "clinic"},
	}

	for _, a := range accounts {
		hash, err := auth.HashPassword(a.password)
		if err != nil {
			return err
		}
		user := models.User{
			Email:        a.email,
			PasswordHash: hash,
			Role:         a.role,
			PriceTier:    a.tier,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
	}

	log.Printf("  ✓ Seeded %d users", len(accounts))
	return nil
}

func seedClients(tx *gorm.DB) error {
	clients := []models.Client{
		{
			Name:          "Happy Paws Veterinary Clinic",
			Address:       "123 Mabini St, Quezon City",
			ContactNumber: "0917-555-0101",
			Account:       "HPVC-001",
			TINNumber:     "123-456-789-000",
			ContactPerson: "Dr. Sarah Johnson",
		},
		{
			Name:          "Animal Care Center Manila",
			Address:       "45 Taft Ave, Manila",
			ContactNumber: "0918-555-0202",
			Account:       "ACCM-002",
			TINNumber:     "234-567-890-000",
			ContactPerson: "Dr. Michael Chen",
		},
		{
			Name:          "PetWell Distributors",
			Address:       "88 Ortigas Ave, Pasig",
			ContactNumber: "0919-555-0303",
			Account:       "PWD-003",
			TINNumber:     "345-678-901-000",
			ContactPerson: "Dr. Emily Rodriguez",
		},
	}

	for i := range clients {
		if err := tx.Create(&clients[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("  ✓ Seeded %d clients", len(clients))
	return nil
}

func seedProducts(tx *gorm.DB) ([]models.Product, error) {
	now := time.Now()
	date := func(daysAgo int) time.Time {
		return now.AddDate(0, 0, -daysAgo)
	}
	expiry := func(monthsAhead int) *time.Time {
		t := now.AddDate(0, monthsAhead, 0)
		return &t
	}
	price := func(v float64) *float64 { return &v }

	products := []models.Product{
		{
			Name:             "Premium Vaccine Vial",
			SellingPrice:     450,
			ClinicPrice:      price(420),
			DistributorPrice: price(390),
			AcquisitionPrice: 320,
			PurchaseQty:      50,
			Remaining:        50,
			PurchaseDate:     date(20),
			ExpirationDate:   expiry(10),
			SupplierName:     "VetPharma Labs",
		},
		{
			Name:             "Advanced Antibiotic Solution",
			SellingPrice:     680,
			ClinicPrice:      price(640),
			DistributorPrice: price(600),
			AcquisitionPrice: 510,
			PurchaseQty:      30,
			Remaining:        30,
			PurchaseDate:     date(15),
			ExpirationDate:   expiry(16),
			SupplierName:     "MedVet Supply Co",
		},
		{
			Name:             "Precision Syringe Pack",
			SellingPrice:     120,
			AcquisitionPrice: 85,
			PurchaseQty:      200,
			Remaining:        200,
			PurchaseDate:     date(40),
			ExpirationDate:   expiry(36),
			SupplierName:     "MedVet Supply Co",
		},
		{
			Name:             "Ultra-Comfort Sterile Gloves",
			SellingPrice:     95,
			AcquisitionPrice: 60,
			PurchaseQty:      150,
			Remaining:        150,
			PurchaseDate:     date(40),
			SupplierName:     "SafeHands Medical",
		},
		{
			Name:             "Eco-Friendly Disinfectant Spray",
			SellingPrice:     210,
			ClinicPrice:      price(195),
			AcquisitionPrice: 140,
			PurchaseQty:      80,
			Remaining:        80,
			PurchaseDate:     date(60),
			ExpirationDate:   expiry(24),
			SupplierName:     "GreenClean PH",
		},
		{
			Name:             "Quick-Heal Bandage Roll",
			SellingPrice:     75,
			AcquisitionPrice: 45,
			PurchaseQty:      120,
			Remaining:        120,
			PurchaseDate:     date(10),
			ExpirationDate:   expiry(30),
			SupplierName:     "SafeHands Medical",
		},
		{
			Name:             "Vital-Boost Pet Vitamins",
			SellingPrice:     350,
			ClinicPrice:      price(325),
			DistributorPrice: price(300),
			AcquisitionPrice: 240,
			PurchaseQty:      60,
			Remaining:        60,
			PurchaseDate:     date(5),
			ExpirationDate:   expiry(8),
			SupplierName:     "VetPharma Labs",
		},
		{
			Name:             "Pro-Clean Dental Kit",
			SellingPrice:     280,
			AcquisitionPrice: 190,
			PurchaseQty:      40,
			Remaining:        40,
			PurchaseDate:     date(25),
			ExpirationDate:   expiry(20),
			SupplierName:     "GreenClean PH",
		},
	}

	for i := range products {
		if err := tx.Create(&products[i]).Error; err != nil {
			return nil, err
		}
	}

	log.Printf("  ✓ Seeded %d products", len(products))
	return products, nil
}

func seedSales(tx *gorm.DB, products []models.Product) error {
	if len(products) < 2 {
		return nil
	}

	now := time.Now()
	sales := []models.Sale{
		{
			ProductID:  products[0].ID,
			ClientName: "Happy Paws Veterinary Clinic",
			Quantity:   5,
			SaleDate:   now.AddDate(0, 0, -7),
			SalePrice:  products[0].SellingPrice,
		},
		{
			ProductID:  products[1].ID,
			ClientName: "Animal Care Center Manila",
			Quantity:   3,
			SaleDate:   now.AddDate(0, 0, -3),
			SalePrice:  products[1].SellingPrice,
		},
		{
			ProductID:  products[0].ID,
			ClientName: "PetWell Distributors",
			Quantity:   10,
			SaleDate:   now.AddDate(0, 0, -1),
			SalePrice:  *products[0].DistributorPrice,
		},
	}

	for i := range sales {
		if err := tx.Create(&sales[i]).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Product{}).
			Where("id = ?", sales[i].ProductID).
			UpdateColumn("remaining", gorm.Expr("remaining - ?", sales[i].Quantity)).Error; err != nil {
			return err
		}
	}

	log.Printf("  ✓ Seeded %d sales", len(sales))
	return nil
}
