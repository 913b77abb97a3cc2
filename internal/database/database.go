package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver for local development
)

type DB struct {
	conn   *sql.DB
	dbType string // "postgres" or "sqlite3"
}

type User struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

// LeaderboardEntry represents a single entry in a variant leaderboard.
type LeaderboardEntry struct {
	Username    string    `json:"username"`
	Variant     string    `json:"variant"`
	BestScore   int       `json:"best_score"`
	AvgScore    float64   `json:"avg_score"`
	GamesPlayed int       `json:"games_played"`
	LastPlayed  time.Time `json:"last_played"`
}

// Connect establishes a database connection. URLs with a postgres scheme use
// the PostgreSQL driver; anything else is treated as a SQLite file path for
// local development.
func Connect(dbURL string) (*DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	driverName := "sqlite3"
	if strings.HasPrefix(dbURL, "postgres://") || strings.HasPrefix(dbURL, "postgresql://") {
		driverName = "postgres"
	}

	conn, err := sql.Open(driverName, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("[INFO] Connected to %s database", driverName)
	return &DB{conn: conn, dbType: driverName}, nil
}

// CreateTables creates the necessary database tables.
func (db *DB) CreateTables() error {
	var queries []string

	if db.dbType == "postgres" {
		queries = []string{
			`CREATE TABLE IF NOT EXISTS users (
				id SERIAL PRIMARY KEY,
				username VARCHAR(50) UNIQUE NOT NULL,
				email VARCHAR(100) UNIQUE NOT NULL,
				password_hash VARCHAR(255) NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				last_login TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS game_scores (
				id SERIAL PRIMARY KEY,
				user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
				variant VARCHAR(50) NOT NULL,
				score INTEGER NOT NULL,
				metadata JSONB,
				played_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_game_scores_user_variant ON game_scores(user_id, variant)`,
			`CREATE INDEX IF NOT EXISTS idx_game_scores_variant_score ON game_scores(variant, score DESC)`,
		}
	} else {
		queries = []string{
			`CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT UNIQUE NOT NULL,
				email TEXT UNIQUE NOT NULL,
				password_hash TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				last_login DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS game_scores (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER,
				variant TEXT NOT NULL,
				score INTEGER NOT NULL,
				metadata TEXT,
				played_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users (id)
			)`,
		}
	}

	for _, query := range queries {
		if _, err := db.conn.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// Exec wrapper for convenience
func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return db.conn.Exec(query, args...)
}

// Query wrapper for convenience
func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

// QueryRow wrapper for convenience
func (db *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

// CreateUser creates a new user in the database.
func (db *DB) CreateUser(username, email, passwordHash string) (*User, error) {
	if db.dbType == "postgres" {
		var id int
		err := db.conn.QueryRow(
			`INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id`,
			username, email, passwordHash,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return &User{ID: id, Username: username, Email: email, CreatedAt: time.Now()}, nil
	}

	result, err := db.conn.Exec(
		`INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`,
		username, email, passwordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get user ID: %w", err)
	}

	return &User{
		ID:        int(id),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
	}, nil
}

// GetUserByUsername retrieves a user and their password hash by username.
func (db *DB) GetUserByUsername(username string) (*User, string, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, last_login
		FROM users WHERE username = ?
	`
	if db.dbType == "postgres" {
		query = strings.Replace(query, "?", "$1", 1)
	}

	var user User
	var passwordHash string
	err := db.conn.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Email, &passwordHash,
		&user.CreatedAt, &user.LastLogin,
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	return &user, passwordHash, nil
}

// SaveGameScore saves one finished round for a user.
func (db *DB) SaveGameScore(userID int, variant string, score int, metadata map[string]interface{}) error {
	query := `
		INSERT INTO game_scores (user_id, variant, score, metadata, played_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if db.dbType == "postgres" {
		query = `
			INSERT INTO game_scores (user_id, variant, score, metadata, played_at)
			VALUES ($1, $2, $3, $4, $5)
		`
	}

	var metadataValue interface{}
	if metadata != nil {
		metadataJSON, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadataValue = string(metadataJSON) // For SQLite
		if db.dbType == "postgres" {
			metadataValue = metadataJSON // For PostgreSQL JSONB
		}
	}

	if _, err := db.conn.Exec(query, userID, variant, score, metadataValue, time.Now()); err != nil {
		return fmt.Errorf("failed to save game score: %w", err)
	}

	return nil
}

// GetHighScore returns the user's best score for a variant, the persisted
// high-score value new rounds compare against. Zero when the user has not
// played the variant yet.
func (db *DB) GetHighScore(userID int, variant string) (int, error) {
	query := `SELECT COALESCE(MAX(score), 0) FROM game_scores WHERE user_id = ? AND variant = ?`
	if db.dbType == "postgres" {
		query = `SELECT COALESCE(MAX(score), 0) FROM game_scores WHERE user_id = $1 AND variant = $2`
	}

	var best int
	if err := db.conn.QueryRow(query, userID, variant).Scan(&best); err != nil {
		return 0, fmt.Errorf("failed to get high score: %w", err)
	}
	return best, nil
}

// GetLeaderboard retrieves the leaderboard for a specific variant.
func (db *DB) GetLeaderboard(variant string, limit int) ([]LeaderboardEntry, error) {
	var query string

	if db.dbType == "postgres" {
		query = `
			SELECT
				u.username,
				MAX(gs.score) as best_score,
				AVG(gs.score) as avg_score,
				COUNT(gs.id) as games_played,
				MAX(gs.played_at) as last_played
			FROM users u
			JOIN game_scores gs ON u.id = gs.user_id
			WHERE gs.variant = $1
			GROUP BY u.id, u.username
			ORDER BY best_score DESC
			LIMIT $2
		`
	} else {
		query = `
			SELECT
				u.username,
				MAX(gs.score) as best_score,
				AVG(CAST(gs.score AS REAL)) as avg_score,
				COUNT(gs.id) as games_played,
				MAX(gs.played_at) as last_played
			FROM users u
			JOIN game_scores gs ON u.id = gs.user_id
			WHERE gs.variant = ?
			GROUP BY u.id, u.username
			ORDER BY best_score DESC
			LIMIT ?
		`
	}

	rows, err := db.conn.Query(query, variant, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var entry LeaderboardEntry
		var lastPlayed interface{} // time.Time on postgres, string on sqlite

		err := rows.Scan(
			&entry.Username,
			&entry.BestScore,
			&entry.AvgScore,
			&entry.GamesPlayed,
			&lastPlayed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}

		entry.Variant = variant
		entry.LastPlayed = parsePlayedAt(lastPlayed)
		entries = append(entries, entry)
	}

	return entries, nil
}

func parsePlayedAt(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case []byte:
		return parsePlayedAt(string(t))
	case string:
		formats := []string{
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05Z",
			"2006-01-02T15:04:05",
			time.RFC3339,
		}
		for _, format := range formats {
			if parsed, err := time.Parse(format, t); err == nil {
				return parsed
			}
		}
	}
	return time.Now()
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
