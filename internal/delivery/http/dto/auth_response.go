package dto

import (
	"github.com/google/uuid"

	"dmless/internal/domain/recruiter"
	"dmless/internal/usecase/auth"
)

type RecruiterResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type AuthResponse struct {
	Recruiter    RecruiterResponse `json:"recruiter"`
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
}

type TokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func NewAuthResponse(rec recruiter.Recruiter, tokens auth.Tokens) AuthResponse {
	return AuthResponse{
		Recruiter:    RecruiterResponse{ID: rec.ID, Email: rec.Email},
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
	}
}
