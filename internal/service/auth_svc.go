package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nugrahsdhka/job-portal-api/internal/domain"
	"github.com/nugrahsdhka/job-portal-api/internal/repository"
	"github.com/nugrahsdhka/job-portal-api/pkg/auth"
)

type AuthSvc struct {
	repo   *repository.UserRepo
	tokens *auth.Tokens
}

func NewAuthSvc(r *repository.UserRepo, t *auth.Tokens) *AuthSvc {
	return &AuthSvc{repo: r, tokens: t}
}

func (s *AuthSvc) Register(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	if _, err := s.repo.ByEmail(ctx, email); err == nil {
		return nil, repository.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.ParseRole(role),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login deliberately reports the same error for an unknown email and a
// wrong password.
func (s *AuthSvc) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.repo.ByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(u.ID, string(u.Role))
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
