package main

import (
	"fmt"

	"github.com/isaacjstriker/notris/internal/config"
	"github.com/isaacjstriker/notris/internal/database"
)

// checkDatabase verifies the configured database is reachable and the
// schema can be created. Run with: notris --check-db
func checkDatabase() {
	fmt.Println("🧪 Testing database connection...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		return
	}

	if cfg.DatabaseURL == "" {
		fmt.Println("❌ DATABASE_URL is not set")
		return
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		fmt.Printf("❌ Failed to connect: %v\n", err)
		return
	}
	defer db.Close()

	if err := db.CreateTables(); err != nil {
		fmt.Printf("❌ Failed to create tables: %v\n", err)
		return
	}

	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		fmt.Printf("❌ Failed to query users table: %v\n", err)
		return
	}

	fmt.Println("✅ Database connection is healthy!")
	fmt.Printf("📋 %d registered users\n", userCount)
}
