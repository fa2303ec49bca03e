package auth

import (
	"context"
	"errors"
	"strings"

	"dmless/internal/domain/recruiter"
	"dmless/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Tokens is an access/refresh pair issued on every successful auth call.
type Tokens struct {
	Access  string
	Refresh string
}

type Usecase interface {
	Register(ctx context.Context, in RegisterInput) (recruiter.Recruiter, Tokens, error)
	Login(ctx context.Context, in LoginInput) (recruiter.Recruiter, Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (Tokens, error)
}

type Service struct {
	recruiters recruiter.Repository
	jwt        jwt.Service
}

func NewService(recruiters recruiter.Repository, jwtSvc jwt.Service) *Service {
	return &Service{recruiters: recruiters, jwt: jwtSvc}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (recruiter.Recruiter, Tokens, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.Password) {
		return recruiter.Recruiter{}, Tokens{}, ErrInvalidInput
	}

	exists, err := s.recruiters.ExistsByEmail(ctx, email)
	if err != nil {
		return recruiter.Recruiter{}, Tokens{}, ErrInternal
	}
	if exists {
		return recruiter.Recruiter{}, Tokens{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return recruiter.Recruiter{}, Tokens{}, ErrInternal
	}

	rec := recruiter.Recruiter{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.recruiters.Create(ctx, rec); err != nil {
		// a concurrent register may have won the unique email race
		if exists, exErr := s.recruiters.ExistsByEmail(ctx, email); exErr == nil && exists {
			return recruiter.Recruiter{}, Tokens{}, ErrEmailAlreadyRegistered
		}
		return recruiter.Recruiter{}, Tokens{}, ErrInternal
	}

	tokens, err := s.issueTokens(rec)
	if err != nil {
		return recruiter.Recruiter{}, Tokens{}, ErrInternal
	}
	return sanitize(rec), tokens, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (recruiter.Recruiter, Tokens, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return recruiter.Recruiter{}, Tokens{}, ErrInvalidCredentials
	}

	rec, err := s.recruiters.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, recruiter.ErrNotFound) {
			return recruiter.Recruiter{}, Tokens{}, ErrInvalidCredentials
		}
		return recruiter.Recruiter{}, Tokens{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(in.Password)); err != nil {
		return recruiter.Recruiter{}, Tokens{}, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(rec)
	if err != nil {
		return recruiter.Recruiter{}, Tokens{}, ErrInternal
	}
	return sanitize(rec), tokens, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return Tokens{}, ErrInvalidRefreshToken
	}

	claims, err := s.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Tokens{}, ErrRefreshTokenExpired
		}
		return Tokens{}, ErrInvalidRefreshToken
	}
	if !s.jwt.IsRefreshToken(claims) {
		return Tokens{}, ErrInvalidRefreshToken
	}

	rec, err := s.recruiters.GetByID(ctx, claims.RecruiterID)
	if err != nil {
		if errors.Is(err, recruiter.ErrNotFound) {
			return Tokens{}, ErrInvalidRefreshToken
		}
		return Tokens{}, ErrInternal
	}

	return s.issueTokens(rec)
}

func (s *Service) issueTokens(rec recruiter.Recruiter) (Tokens, error) {
	access, err := s.jwt.GenerateAccessToken(rec.ID, rec.Email)
	if err != nil {
		return Tokens{}, ErrInternal
	}
	refresh, err := s.jwt.GenerateRefreshToken(rec.ID)
	if err != nil {
		return Tokens{}, ErrInternal
	}
	return Tokens{Access: access, Refresh: refresh}, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitize(rec recruiter.Recruiter) recruiter.Recruiter {
	rec.PasswordHash = ""
	return rec
}
