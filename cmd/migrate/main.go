package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Alas-3/syrincal-system/config"
	"github.com/Alas-3/syrincal-system/database"
)

func main() {
	var (
		drop = flag.Bool("drop", false, "Drop all tables before migration")
		help = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("🚀 Starting Database Migration Tool")
	fmt.Printf("📊 Database: %s@%s:%s/%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Printf("⚠️  Warning: %v", err)
	}

	if *drop {
		fmt.Println("⚠️  Dropping all tables in syrincal schema...")
		if err := database.DropAllTables(database.DB); err != nil {
			log.Fatalf("❌ Failed to drop tables: %v", err)
		}
		fmt.Println("✅ All tables dropped")
	}

	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	fmt.Println("✅ Migration completed successfully")
}

func showHelp() {
	fmt.Println("Database Migration Tool")
	fmt.Println("=======================")
	fmt.Println("\nUsage:")
	fmt.Println("  go run ./cmd/migrate [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -drop     Drop all tables before migration")
	fmt.Println("  -help     Show this help message")
}
