package controllerImp

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"farmlog/entities"
	"farmlog/pkg/auth/controller"
	"farmlog/pkg/auth/repository"
	"farmlog/pkg/middleware"
)

type authCtrl struct {
	repo   repository.UserRepository
	secret string
	ttl    time.Duration
}

func New(repo repository.UserRepository, secret string, ttl time.Duration) controller.AuthController {
	return &authCtrl{repo: repo, secret: secret, ttl: ttl}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *authCtrl) Register(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "username and password required"})
	}
	if _, err := h.repo.FindByUsername(req.Username); err == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "username already exists"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "server error"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "server error"})
	}
	u := &entities.User{Username: req.Username, PasswordHash: string(hash)}
	if err := h.repo.Create(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "server error"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "user registered"})
}

// Login answers the same 401 body for an unknown user and a wrong
// password; callers cannot probe which usernames exist.
func (h *authCtrl) Login(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, err := h.repo.FindByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "server error"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}
	tok, err := middleware.Sign(h.secret, u.UserID, h.ttl)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "server error"})
	}
	return c.JSON(http.StatusOK, map[string]string{"token": tok})
}
