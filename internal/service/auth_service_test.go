package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/config"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/jwt"
)

func setupAuthService(t *testing.T) AuthService {
	t.Helper()
	repo := newMockRepository()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt fixture failed: %v", err)
	}
	_ = repo.User.Create(context.Background(), &model.User{
		UserID:       "user-1",
		Name:         "Admin",
		Email:        "admin@uni.edu",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsActive:     true,
	})
	_ = repo.User.Create(context.Background(), &model.User{
		UserID:       "user-2",
		Name:         "Disabled",
		Email:        "off@uni.edu",
		PasswordHash: string(hash),
		Role:         model.RoleDean,
		IsActive:     false,
	})

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret-at-least-16-chars"
	cfg.Auth.AccessTokenTTL = 15 * time.Minute
	cfg.Auth.RefreshTokenTTLDefault = 24 * time.Hour
	cfg.Auth.RefreshTokenTTLRemember = 7 * 24 * time.Hour

	jwtMgr := jwt.NewManager(&cfg.Auth)
	return NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := setupAuthService(t)

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@uni.edu",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("expected a full token pair")
	}
	if tokens.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("unexpected expires_in: %d", tokens.ExpiresIn)
	}
	if tokens.User.Email != "admin@uni.edu" || tokens.User.Role != model.RoleAdmin {
		t.Errorf("unexpected user payload: %+v", tokens.User)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@uni.edu",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := setupAuthService(t)

	// unknown email reports the same error as a wrong password
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@uni.edu",
		Password: "correct-horse",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "off@uni.edu",
		Password: "correct-horse",
	})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAuthService_Refresh_RotatesPair(t *testing.T) {
	svc := setupAuthService(t)

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@uni.edu",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: tokens.RefreshToken,
	})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Error("expected a fresh token pair")
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc := setupAuthService(t)

	tokens, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@uni.edu",
		Password: "correct-horse",
	})

	_, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: tokens.AccessToken,
	})
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("expected ErrInvalidRefresh for an access token, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc := setupAuthService(t)

	err := svc.ChangePassword(context.Background(), "user-1", &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "new-password-123",
	})
	if !errors.Is(err, ErrWrongOldPassword) {
		t.Fatalf("expected ErrWrongOldPassword, got %v", err)
	}

	err = svc.ChangePassword(context.Background(), "user-1", &dto.ChangePasswordRequest{
		OldPassword: "correct-horse",
		NewPassword: "new-password-123",
	})
	if err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@uni.edu",
		Password: "new-password-123",
	}); err != nil {
		t.Errorf("login with the new password failed: %v", err)
	}
}
