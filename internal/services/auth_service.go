package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"taskmarket.com/taskmarket/internal/constants"
	"taskmarket.com/taskmarket/internal/credentials"
	dto "taskmarket.com/taskmarket/internal/data_models"
	apperrors "taskmarket.com/taskmarket/internal/errors"
	model "taskmarket.com/taskmarket/internal/models"
	repository "taskmarket.com/taskmarket/internal/repositories"
	"taskmarket.com/taskmarket/internal/validators"
)

// Credentials hashes passwords and issues the tokens callers present.
type Credentials interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) bool
	IssueToken(subject string, role constants.Role) (string, error)
	ParseToken(raw string) (*credentials.Claims, error)
}

// AuthService is the identity store: accounts, login and token verification.
type AuthService struct {
	users  *repository.UserRepository
	creds  Credentials
	logger *slog.Logger
}

func NewAuthService(users *repository.UserRepository, creds Credentials, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		creds:  creds,
		logger: logger,
	}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return nil, err
	}

	hash, err := s.creds.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Type:              req.Type,
		Role:              req.Role,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		CompanyName:       req.CompanyName,
		PhoneNumber:       req.PhoneNumber,
		BusinessTaxNumber: req.BusinessTaxNumber,
		Email:             req.Email,
		MobileNumber:      req.MobileNumber,
		PasswordHash:      hash,
	}
	if a := req.Address; a != nil {
		user.StreetNumber = a.StreetNumber
		user.StreetName = a.StreetName
		user.City = a.City
		user.State = a.State
		user.PostCode = a.PostCode
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, translate(err, apperrors.NotFound("user not found"))
	}

	s.logger.InfoContext(ctx, "account registered", "user_id", user.ID, "role", user.Role)
	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResult, error) {
	if err := validators.Struct(&req); err != nil {
		return nil, apperrors.Validation("please provide an email and password")
	}

	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.creds.ComparePassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

// Authenticate resolves a bearer token to a caller. The account is reloaded
// so tokens of removed accounts stop working.
func (s *AuthService) Authenticate(ctx context.Context, token string) (Caller, error) {
	claims, err := s.creds.ParseToken(token)
	if err != nil {
		return Caller{}, apperrors.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Caller{}, apperrors.ErrInvalidToken
		}
		return Caller{}, err
	}

	return Caller{ID: user.ID, Role: user.Role}, nil
}

func (s *AuthService) Me(ctx context.Context, caller Caller) (*model.User, error) {
	user, err := s.users.FindByID(ctx, caller.ID)
	if err != nil {
		return nil, translate(err, apperrors.NotFound("user not found"))
	}
	return user, nil
}

func (s *AuthService) issue(user *model.User) (*dto.AuthResult, error) {
	token, err := s.creds.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResult{
		Token: token,
		Account: dto.AccountSummary{
			ID:        user.ID,
			Role:      user.Role,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
