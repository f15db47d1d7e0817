package usecase

import (
	"context"
	"errors"
	"testing"

	"fitmarket/internal/adapter/persistence/repository"
	"fitmarket/internal/domain/entities"
)

func newAuthUseCase() *AuthUseCase {
	return NewAuthUseCase(repository.NewUserMemoryRepository(), NewTokenService("test-secret"))
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		uc := newAuthUseCase()
		_, err := uc.Register(context.Background(), RegisterCommand{Name: "Ana", Email: "ana@example.com", Password: "12345"})
		if !errors.Is(err, ErrInvalidAuthInput) {
			t.Fatalf("expected ErrInvalidAuthInput, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := newAuthUseCase()
		_, err := uc.Register(context.Background(), RegisterCommand{Name: "Ana", Email: "ana@example.com", Password: "secret1", Role: "root"})
		if !errors.Is(err, ErrInvalidAuthInput) {
			t.Fatalf("expected ErrInvalidAuthInput, got %v", err)
		}
	})

	t.Run("defaults to user role and issues token", func(t *testing.T) {
		uc := newAuthUseCase()
		result, err := uc.Register(context.Background(), RegisterCommand{Name: "Ana", Email: "Ana@Example.com", Password: "secret1"})
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		if result.User.Role != entities.UserRoleUser {
			t.Fatalf("expected user role, got %s", result.User.Role)
		}
		if result.User.Email != "ana@example.com" {
			t.Fatalf("expected lowercased email, got %s", result.User.Email)
		}
		if result.Token == "" {
			t.Fatalf("expected token")
		}
		if result.User.PasswordHash == "secret1" {
			t.Fatalf("password stored in clear")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc := newAuthUseCase()
		if _, err := uc.Register(context.Background(), RegisterCommand{Name: "Ana", Email: "ana@example.com", Password: "secret1"}); err != nil {
			t.Fatalf("register: %v", err)
		}
		_, err := uc.Register(context.Background(), RegisterCommand{Name: "Other", Email: "ANA@example.com", Password: "secret2"})
		if !errors.Is(err, ErrEmailAlreadyInUse) {
			t.Fatalf("expected ErrEmailAlreadyInUse, got %v", err)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	uc := newAuthUseCase()
	registered, err := uc.Register(context.Background(), RegisterCommand{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(context.Background(), "ana@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := uc.Login(context.Background(), "nobody@example.com", "secret1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("valid credentials round-trip through the token", func(t *testing.T) {
		result, err := uc.Login(context.Background(), "ana@example.com", "secret1")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		subject, err := uc.tokens.ValidateToken(result.Token)
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		if subject != registered.User.ID {
			t.Fatalf("expected subject %s, got %s", registered.User.ID, subject)
		}
	})
}

func TestAuthUseCase_GetUser(t *testing.T) {
	uc := newAuthUseCase()
	_, err := uc.GetUser(context.Background(), "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTokenService(t *testing.T) {
	tokens := NewTokenService("test-secret")

	token, err := tokens.GenerateToken("u-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	subject, err := tokens.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if subject != "u-1" {
		t.Fatalf("expected u-1, got %s", subject)
	}

	if _, err := tokens.ValidateToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}

	other := NewTokenService("other-secret")
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong key, got %v", err)
	}
}
