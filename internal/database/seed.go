package database

import "fmt"

// CreateTestData creates sample users and scores for development so the
// leaderboard has something to show. A no-op when users already exist.
func (db *DB) CreateTestData() error {
	var userCount int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM users").Scan(&userCount)
	if err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}

	if userCount > 0 {
		return nil // Data already exists
	}

	fmt.Println("🎮 Creating sample data for testing...")

	testUsers := []struct {
		username string
		email    string
		password string
	}{
		{"stackmaster", "stack@example.com", "hashed_password_123"},
		{"tetracer", "tetra@example.com", "hashed_password_456"},
		{"linefarmer", "lines@example.com", "hashed_password_789"},
		{"cubedropper", "cube@example.com", "hashed_password_abc"},
	}

	userIDs := make([]int, len(testUsers))

	for i, user := range testUsers {
		created, err := db.CreateUser(user.username, user.email, user.password)
		if err != nil {
			return fmt.Errorf("failed to create test user %s: %w", user.username, err)
		}
		userIDs[i] = created.ID
	}

	testScores := []struct {
		user    int
		variant string
		score   int
		lines   int
		level   int
	}{
		{0, "classic", 4210, 38, 5},
		{0, "classic", 2110, 19, 3},
		{1, "classic", 3650, 31, 4},
		{1, "simple", 1820, 16, 2},
		{2, "simple", 980, 9, 1},
		{3, "cube", 2540, 22, 3},
	}

	for _, s := range testScores {
		metadata := map[string]interface{}{
			"lines": s.lines,
			"level": s.level,
		}
		if err := db.SaveGameScore(userIDs[s.user], s.variant, s.score, metadata); err != nil {
			return fmt.Errorf("failed to create test score: %w", err)
		}
	}

	fmt.Printf("✅ Created %d test users with sample scores\n", len(testUsers))
	return nil
}
