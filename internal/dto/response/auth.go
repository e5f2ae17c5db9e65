package response

import "time"

type AuthResponse struct {
	AdminID   string    `json:"admin_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionResponse struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
}
