package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/isaacjstriker/notris/internal/auth"
)

// LoginRequest defines the shape of the login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse defines the shape of the successful login response
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// UserInfo is the identity extracted from a validated token.
type UserInfo struct {
	UserID   int
	Username string
}

// handleLogin handles user login and JWT generation
func (s *APIServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}

	// Fetch user from database
	user, passwordHash, err := s.db.GetUserByUsername(req.Username)
	if err != nil {
		permissionDenied(w)
		return
	}

	// Check password
	if !auth.CheckPassword(req.Password, passwordHash) {
		permissionDenied(w)
		return
	}

	// Create JWT
	token, err := createJWT(user.ID, user.Username, s.config.JWTSecret)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to create token"})
		return
	}

	resp := LoginResponse{
		Token:    token,
		Username: user.Username,
	}

	writeJSON(w, http.StatusOK, resp)
}

// createJWT generates a new JWT for a given user
func createJWT(userID int, username, secret string) (string, error) {
	claims := jwt.MapClaims{
		"exp":      jwt.NewNumericDate(time.Now().Add(time.Hour * 24 * 7)), // 1 week
		"iat":      jwt.NewNumericDate(time.Now()),
		"userID":   userID,
		"username": username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// validateJWT parses and verifies a token, returning the user it names.
func (s *APIServer) validateJWT(tokenString string) (*UserInfo, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userID, ok := claims["userID"].(float64)
	if !ok {
		return nil, fmt.Errorf("token missing userID claim")
	}
	username, _ := claims["username"].(string)

	return &UserInfo{UserID: int(userID), Username: username}, nil
}
