package api

import (
	"net/http"
	"strconv"
)

// handleGetLeaderboard handles requests for variant leaderboards
func (s *APIServer) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	variant := r.PathValue("variant")
	if variant == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "variant is required"})
		return
	}

	// Get limit from query params, default to 15
	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 15
	}

	entries, err := s.db.GetLeaderboard(variant, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to fetch leaderboard"})
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// handleGetHighScore returns the authenticated user's best score for a
// variant.
func (s *APIServer) handleGetHighScore(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		permissionDenied(w)
		return
	}

	variant := r.PathValue("variant")
	if variant == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "variant is required"})
		return
	}

	best, err := s.db.GetHighScore(user.UserID, variant)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to fetch high score"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"variant":    variant,
		"high_score": best,
	})
}
