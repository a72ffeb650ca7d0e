package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"police-records-backend/internal/domains/credential"
	"police-records-backend/internal/shared/apperror"
	"police-records-backend/pkg/jwt"
)

const bcryptCost = 12

type credentialService struct {
	repo credential.Repository
	jwt  *jwt.Manager
}

func NewCredentialService(repo credential.Repository, jwtManager *jwt.Manager) credential.Service {
	return &credentialService{
		repo: repo,
		jwt:  jwtManager,
	}
}

func (s *credentialService) Register(ctx context.Context, req credential.AuthRequest) error {
	if err := req.Validate(); err != nil {
		return apperror.NewValidation("MISSING_FIELDS", "Username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return apperror.NewStore("failed to hash password", err)
	}

	return s.repo.Insert(ctx, strings.TrimSpace(req.Username), string(hash))
}

func (s *credentialService) Login(ctx context.Context, req credential.AuthRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", apperror.NewValidation("MISSING_FIELDS", "Username and password are required")
	}

	user, found, err := s.repo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return "", err
	}
	if !found {
		return "", apperror.NewAuth()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", apperror.NewAuth()
	}

	token, err := s.jwt.GenerateToken(user.Username)
	if err != nil {
		return "", apperror.NewStore("failed to issue access token", err)
	}

	return token, nil
}
