package api

import (
	"log"
	"net/http"

	"github.com/isaacjstriker/notris/internal/config"
	"github.com/isaacjstriker/notris/internal/database"
)

// APIServer represents the main server for the application
type APIServer struct {
	listenAddr string
	db         *database.DB
	config     *config.Config
}

// NewAPIServer creates a new APIServer instance
func NewAPIServer(listenAddr string, db *database.DB, config *config.Config) *APIServer {
	return &APIServer{
		listenAddr: listenAddr,
		db:         db,
		config:     config,
	}
}

// Start runs the HTTP server
func (s *APIServer) Start() {
	router := http.NewServeMux()

	router.HandleFunc("GET /api/health", s.handleHealth)
	router.HandleFunc("GET /api/variants", s.handleGetVariants)

	router.HandleFunc("POST /api/register", s.handleRegister)
	router.HandleFunc("POST /api/login", s.handleLogin)
	router.HandleFunc("GET /api/leaderboard/{variant}", s.handleGetLeaderboard)
	router.HandleFunc("POST /api/scores", requireAuth(s, s.handleSubmitScore))
	router.HandleFunc("GET /api/highscore/{variant}", requireAuth(s, s.handleGetHighScore))

	// --- WebSocket Route for Games ---
	router.HandleFunc("/ws/game", s.handleGameConnection)

	log.Printf("API server listening on %s", s.listenAddr)
	if err := http.ListenAndServe(s.listenAddr, router); err != nil {
		log.Fatalf("could not start server: %s", err)
	}
}

func (s *APIServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"app":    s.config.AppName,
	})
}
