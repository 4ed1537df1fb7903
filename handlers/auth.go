package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobmatch/backend/auth"
	"github.com/jobmatch/backend/models"
	"github.com/jobmatch/backend/storage"
)

// AuthHandler handles account requests
type AuthHandler struct {
	store      storage.UserStore
	jwtService *auth.JWTService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store storage.UserStore, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		store:      store,
		jwtService: jwtService,
	}
}

// Signup handles user registration with email/password
// @Summary Register a new user
// @Description Register a new user with username, email and password. Accepts JSON or form data.
// @Tags Auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} models.SignupResponse "User created"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "Email already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AuthHandler] Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to process registration",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashedPassword,
		IsActive: true,
	}

	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error: "Email already exists",
				Code:  http.StatusConflict,
			})
			return
		}
		log.Printf("[AuthHandler] Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create account",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AuthHandler] User registered: id=%s", user.ID)
	c.JSON(http.StatusCreated, models.SignupResponse{
		Message: "User has successfully created",
		Login:   absoluteURL(c, "/api/auth/login"),
	})
}

// Login handles user login with email/password
// @Summary Login user
// @Description Login with email and password to get a JWT access token
// @Tags Auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.LoginResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if !errors.Is(err, storage.ErrUserNotFound) {
			log.Printf("[AuthHandler] Failed to look up user: %v", err)
		}
		invalidCredentials(c)
		return
	}

	if !user.IsActive || !auth.CheckPassword(user.Password, req.Password) {
		invalidCredentials(c)
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to generate token",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AuthHandler] User logged in: id=%s", user.ID)
	c.JSON(http.StatusOK, models.LoginResponse{
		User:        user,
		AccessToken: token,
	})
}

// Refresh issues a new token for a still-valid one
// @Summary Refresh access token
// @Description Exchange a valid access token for one with a fresh expiry
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TokenResponse "New token"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	tokenString, _ := auth.BearerToken(c)

	token, err := h.jwtService.RefreshToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "Invalid or expired token",
			Code:    http.StatusUnauthorized,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token})
}

// GetProfile retrieves the current user's account
// @Summary Get current user
// @Description Get the authenticated user's account information
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "User account"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/me [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	user, err := h.store.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		userLookupFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes the caller's own account
// @Summary Delete account
// @Description Delete the authenticated user's account. user_id must be the caller's own ID.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Param user_id query string true "ID of the account to delete"
// @Success 200 {object} models.MessageResponse "User deleted"
// @Failure 400 {object} models.ErrorResponse "User ID is required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Not the caller's account"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/delete [delete]
func (h *AuthHandler) Delete(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "User ID is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	claims := auth.GetAuthClaims(c)
	if claims == nil || claims.UserID == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "User not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	user, err := h.store.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		userLookupFailed(c, err)
		return
	}

	if user.ID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error: "You can only delete your own account",
			Code:  http.StatusForbidden,
		})
		return
	}

	if err := h.store.DeleteUser(c.Request.Context(), user.ID); err != nil {
		userLookupFailed(c, err)
		return
	}

	log.Printf("[AuthHandler] User deleted: id=%s", user.ID)
	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "User has successfully delete",
	})
}

func invalidCredentials(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error: "Invalid email or password",
		Code:  http.StatusUnauthorized,
	})
}

func userLookupFailed(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "User not found",
			Code:  http.StatusNotFound,
		})
		return
	}
	log.Printf("[AuthHandler] User store error: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: "Internal server error",
		Code:  http.StatusInternalServerError,
	})
}

// absoluteURL resolves path against the scheme and host the request came in on
func absoluteURL(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host + path
}
