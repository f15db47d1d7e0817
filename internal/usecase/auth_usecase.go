package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidAuthInput   = errors.New("invalid auth input")
)

// RegisterCommand carries a new-account request.

type RegisterCommand struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     entities.UserRole
}

// AuthResult pairs the account with a freshly issued bearer token.

type AuthResult struct {
	User  entities.User `json:"user"`
	Token string        `json:"token"`
}

type IAuthUseCase interface {
	Register(ctx context.Context, cmd RegisterCommand) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	GetUser(ctx context.Context, id string) (entities.User, error)
}

type AuthUseCase struct {
	repo   interfaces.IUserRepository
	tokens *TokenService
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IUserRepository, tokens *TokenService) *AuthUseCase {
	return &AuthUseCase{repo: repo, tokens: tokens}
}

func (u *AuthUseCase) Register(ctx context.Context, cmd RegisterCommand) (AuthResult, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if name == "" || email == "" || len(cmd.Password) < 6 {
		return AuthResult{}, ErrInvalidAuthInput
	}
	role := cmd.Role
	if role == "" {
		role = entities.UserRoleUser
	}
	if !role.IsValid() {
		return AuthResult{}, ErrInvalidAuthInput
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if existing.ID != "" {
		return AuthResult{}, ErrEmailAlreadyInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(cmd.Phone),
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	log.Printf("[auth][usecase] registered user_id=%s role=%s", created.ID, created.Role)

	token, err := u.tokens.GenerateToken(created.ID)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: created, Token: token}, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if user.ID == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (u *AuthUseCase) GetUser(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidAuthInput
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
