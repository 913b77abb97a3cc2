package games

import (
	"fmt"

	"github.com/isaacjstriker/notris/games/tetris"
	"github.com/isaacjstriker/notris/internal/auth"
	"github.com/isaacjstriker/notris/internal/database"
)

// PlayWithAuth runs one terminal round of the variant and saves the score
// for logged-in players.
func PlayWithAuth(variant Variant, catalog *tetris.Catalog, db *database.DB, authManager *auth.CLIAuth) {
	saveScores := false
	if authManager != nil && authManager.GetSession().IsLoggedIn() {
		saveScores = true
		fmt.Printf("\n🎮 Starting %s for %s\n", variant.Name, authManager.GetSession().GetUserInfo())
	} else {
		fmt.Printf("\n🎮 Starting %s (Guest Mode)\n", variant.Name)
		fmt.Println("💡 Tip: Login to save your high scores!")
	}
	fmt.Println("Press Enter to start...")
	fmt.Scanln()

	score := tetris.Play(variant.Rules, catalog)
	if score < 0 {
		return // player quit mid-game
	}

	if saveScores && db != nil {
		session := authManager.GetSession().GetCurrentSession()
		if session != nil {
			saveScore(db, session.UserID, variant, score)
		}
	}

	fmt.Println("\nPress Enter to continue...")
	fmt.Scanln()
}

func saveScore(db *database.DB, userID int, variant Variant, score int) {
	metadata := map[string]interface{}{
		"variant": variant.Key,
		"width":   variant.Rules.Width,
		"height":  variant.Rules.Height,
		"depth":   variant.Rules.Depth,
	}

	if err := db.SaveGameScore(userID, variant.Key, score, metadata); err != nil {
		fmt.Printf("⚠️  Warning: Could not save score: %v\n", err)
		return
	}
	fmt.Println("✅ Score saved to your profile!")

	best, err := db.GetHighScore(userID, variant.Key)
	if err == nil {
		if score >= best {
			fmt.Printf("🏆 New personal best: %d\n", score)
		} else {
			fmt.Printf("🏆 Your best score: %d\n", best)
		}
	}
}
