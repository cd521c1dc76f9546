package dto

import "time"

type LoginRequestDTO struct {
	Login    string `json:"login" example:"admin"`
	Password string `json:"password" example:"s3cret-pass"`
}

type LoginResponseDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at" example:"2026-10-16T09:00:00Z"`
}
