package dto

import "github.com/spec-kit/content-gateway/internal/domain"

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// SessionResponse describes the caller's session state.
type SessionResponse struct {
	User            *domain.Profile `json:"user"`
	IsAuthenticated bool            `json:"is_authenticated"`
}
