package usecase

import (
	"context"
	"fmt"
	"time"

	"seat-reservation/internal/data/entity"
	"seat-reservation/internal/data/repository"
	"seat-reservation/internal/dto/request"
	"seat-reservation/internal/dto/response"
	"seat-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	GetSession(ctx context.Context, adminID uuid.UUID) (*response.SessionResponse, error)

	// EnsureDefaultAdmin seeds the configured admin account when the admins
	// table is empty, so a fresh deployment can be logged into.
	EnsureDefaultAdmin(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	admin, err := s.repo.Admin.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to look up admin", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("look up admin: %w", err)
	}

	if admin == nil || !utils.CheckPassword(admin.PasswordHash, req.Password) {
		s.log.Warn("Login rejected", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	expiryHours := s.config.Session.ExpiryHours
	if expiryHours <= 0 {
		expiryHours = 24
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID: uuid.New(),
		},
		AdminID:   admin.ID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(time.Duration(expiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("Admin logged in",
		zap.String("admin_id", admin.ID.String()),
		zap.String("email", admin.Email),
	)

	return &response.AuthResponse{
		AdminID:   admin.ID.String(),
		Email:     admin.Email,
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("Admin logged out")
	return nil
}

func (s *authService) GetSession(ctx context.Context, adminID uuid.UUID) (*response.SessionResponse, error) {
	admin, err := s.repo.Admin.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, fmt.Errorf("admin %s: %w", adminID.String(), repository.ErrNotFound)
	}

	return &response.SessionResponse{
		AdminID: admin.ID.String(),
		Email:   admin.Email,
	}, nil
}

func (s *authService) EnsureDefaultAdmin(ctx context.Context) error {
	if s.config.Admin.Email == "" || s.config.Admin.Password == "" {
		return nil
	}

	count, err := s.repo.Admin.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(s.config.Admin.Password)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	admin := &entity.Admin{
		Base: entity.Base{
			ID: uuid.New(),
		},
		Email:        s.config.Admin.Email,
		PasswordHash: hash,
	}

	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		return err
	}

	s.log.Info("Default admin created", zap.String("email", admin.Email))
	return nil
}
