package api

import (
	"encoding/json"
	"net/http"

	"github.com/isaacjstriker/notris/games"
)

type ScoreSubmission struct {
	Variant  string                 `json:"variant"`
	Score    int                    `json:"score"`
	Metadata map[string]interface{} `json:"metadata"`
}

// handleSubmitScore handles score submission from authenticated users
func (s *APIServer) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		permissionDenied(w)
		return
	}

	var submission ScoreSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}

	if _, known := games.Lookup(submission.Variant); !known {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "unknown variant"})
		return
	}

	if submission.Score < 0 {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "score must be non-negative"})
		return
	}

	err := s.db.SaveGameScore(user.UserID, submission.Variant, submission.Score, submission.Metadata)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to save score"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Score saved successfully",
	})
}
