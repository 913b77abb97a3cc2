package main

import (
	"fmt"
	"log"
	"os"

	"github.com/isaacjstriker/notris/games"
	"github.com/isaacjstriker/notris/games/tetris"
	"github.com/isaacjstriker/notris/internal/api"
	"github.com/isaacjstriker/notris/internal/auth"
	"github.com/isaacjstriker/notris/internal/config"
	"github.com/isaacjstriker/notris/internal/database"
	"github.com/isaacjstriker/notris/ui"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--check-db" {
		checkDatabase()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var db *database.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Connect(cfg.DatabaseURL)
		if err != nil {
			fmt.Printf("⚠️  Could not connect to database: %v\n", err)
			fmt.Println("Continuing without score saving.")
		} else {
			defer db.Close()
			if err := db.CreateTables(); err != nil {
				log.Fatalf("Failed to create tables: %v", err)
			}
			if cfg.Debug {
				if err := db.CreateTestData(); err != nil {
					log.Printf("[DEBUG] Failed to seed test data: %v", err)
				}
			}
		}
	} else {
		fmt.Println("💡 No DATABASE_URL configured; playing in guest mode.")
	}

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		if db == nil {
			log.Fatal("serve mode requires a database connection")
		}
		addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
		api.NewAPIServer(addr, db, cfg).Start()
		return
	}

	catalog := loadCatalog(cfg)
	authManager := auth.NewCLIAuth(db)

	runMenu(cfg, db, authManager, catalog)
}

// loadCatalog returns the configured Lua piece catalog, falling back to the
// built-in set when the script is missing or broken.
func loadCatalog(cfg *config.Config) *tetris.Catalog {
	if cfg.ShapesFile == "" {
		return tetris.NewCatalog()
	}

	catalog, err := tetris.LoadCatalogFile(cfg.ShapesFile)
	if err != nil {
		fmt.Printf("⚠️  Could not load shape script %s: %v\n", cfg.ShapesFile, err)
		fmt.Println("Using the standard piece set.")
		return tetris.NewCatalog()
	}

	fmt.Printf("🧩 Loaded %d custom shapes from %s\n", catalog.Size(), cfg.ShapesFile)
	return catalog
}

func runMenu(cfg *config.Config, db *database.DB, authManager *auth.CLIAuth, catalog *tetris.Catalog) {
	for {
		var items []ui.MenuItem
		for _, v := range games.Variants() {
			items = append(items, ui.MenuItem{
				Label: fmt.Sprintf("🧱 Play %s", v.Name),
				Value: v.Key,
			})
		}
		items = append(items,
			ui.MenuItem{Label: "🏆 Leaderboards", Value: "leaderboard"},
			ui.MenuItem{Label: "👤 Account", Value: "account"},
			ui.MenuItem{Label: "🚪 Quit", Value: "exit"},
		)

		menu := ui.NewMenu("Main Menu", items)
		choice := menu.Show()

		switch choice {
		case "leaderboard":
			showLeaderboards(db)
		case "account":
			if db == nil {
				fmt.Println("\n⚠️  Accounts need a database connection.")
				fmt.Println("Press Enter to continue...")
				fmt.Scanln()
				continue
			}
			authManager.ShowAuthMenu()
		case "exit", "":
			fmt.Println("\n👋 Thanks for playing!")
			return
		default:
			if variant, ok := games.Lookup(choice); ok {
				games.PlayWithAuth(variant, catalog, db, authManager)
			}
		}
	}
}

func showLeaderboards(db *database.DB) {
	if db == nil {
		fmt.Println("\n⚠️  Leaderboards need a database connection.")
		fmt.Println("Press Enter to continue...")
		fmt.Scanln()
		return
	}

	for _, v := range games.Variants() {
		entries, err := db.GetLeaderboard(v.Key, 10)
		if err != nil {
			fmt.Printf("⚠️  Failed to load %s leaderboard: %v\n", v.Name, err)
			continue
		}

		fmt.Printf("\n🏆 %s Leaderboard\n", v.Name)
		fmt.Println("==================================================")
		if len(entries) == 0 {
			fmt.Println("No scores yet. Be the first!")
			continue
		}
		for i, entry := range entries {
			fmt.Printf("%2d. %-20s best %6d  avg %7.1f  (%d games)\n",
				i+1, entry.Username, entry.BestScore, entry.AvgScore, entry.GamesPlayed)
		}
	}

	fmt.Println("\nPress Enter to continue...")
	fmt.Scanln()
}
