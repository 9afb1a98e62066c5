// Package auth manages browser login sessions. A session is a signed
// token carried in an HTTP-only cookie and identifies one user.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the name of the cookie holding the session token
const SessionCookieName = "session"

// SessionManager mints and validates session tokens
type SessionManager struct {
	secret      string
	tokenExpiry time.Duration
}

// NewSessionManager creates a new session manager
func NewSessionManager(secret string, tokenExpiry time.Duration) *SessionManager {
	return &SessionManager{
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// IssueToken creates a signed session token bound to the given user ID
func (sm *SessionManager) IssueToken(userID int) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(sm.tokenExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(sm.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a session token and returns the user ID it is bound to
func (sm *SessionManager) ValidateToken(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(sm.secret), nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to parse session token: %w", err)
	}

	if !token.Valid {
		return 0, fmt.Errorf("session token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid session token claims")
	}

	// JWT claims decode numbers as float64
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("user_id not found in session token")
	}

	return int(userIDFloat), nil
}

// SetCookie establishes a session for the given user on the response
func (sm *SessionManager) SetCookie(w http.ResponseWriter, userID int) error {
	token, err := sm.IssueToken(userID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sm.tokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// ClearCookie tears the session down on the response
func (sm *SessionManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
