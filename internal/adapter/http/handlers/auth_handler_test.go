package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitmarket/internal/adapter/persistence/repository"
	"fitmarket/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newAuthRouter() (*gin.Engine, *usecase.TokenService) {
	tokens := usecase.NewTokenService("test-secret")
	h := NewAuthHandler(usecase.NewAuthUseCase(repository.NewUserMemoryRepository(), tokens))

	r := gin.New()
	auth := r.Group("/v1/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.GET("/me", AuthMiddleware(tokens), h.Me)
	return r, tokens
}

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, _ := newAuthRouter()

	register := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing email", func(t *testing.T) {
		w := register(`{"name":"Ana","password":"secret1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("register then login", func(t *testing.T) {
		w := register(`{"name":"Ana","email":"ana@example.com","password":"secret1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		if strings.Contains(w.Body.String(), "secret1") {
			t.Fatalf("password leaked in response: %s", w.Body.String())
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"ana@example.com","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		lw := httptest.NewRecorder()
		r.ServeHTTP(lw, req)

		if lw.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", lw.Code)
		}
		var resp struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(lw.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Token == "" {
			t.Fatalf("expected token in login response")
		}
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		w := register(`{"name":"Other","email":"ana@example.com","password":"secret2"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, tokens := newAuthRouter()

	register := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString(`{"name":"Ana","email":"ana@example.com","password":"secret1"}`))
	register.Header.Set("Content-Type", "application/json")
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, register)
	if rw.Code != http.StatusCreated {
		t.Fatalf("register: %d", rw.Code)
	}
	var registered struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rw.Body.Bytes(), &registered); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token resolves the account", func(t *testing.T) {
		token, err := tokens.GenerateToken(registered.User.ID)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var user struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if user.ID != registered.User.ID || user.Email != "ana@example.com" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})
}
