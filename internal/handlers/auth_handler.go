package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/middleware"
	"patrimoine/internal/services"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	advisorService services.AdvisorServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(advisorService services.AdvisorServicer) *AuthHandler {
	return &AuthHandler{advisorService: advisorService}
}

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the token refresh request payload.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AdvisorResponse represents the advisor data in the response.
type AdvisorResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AuthResponse represents the authentication response with token pair.
type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Advisor      AdvisorResponse `json:"advisor"`
}

func (h *AuthHandler) issueTokens(c *gin.Context, advisor *AdvisorResponse, status int) {
	full, err := h.advisorService.GetAdvisorByID(advisor.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accessToken, err := middleware.GenerateAccessToken(full)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	refreshToken, err := middleware.GenerateRefreshToken(full)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	if err := h.advisorService.StoreRefreshTokenHash(full.ID, middleware.HashToken(refreshToken)); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(status, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"advisor": gin.H{
			"id":         full.ID,
			"email":      full.Email,
			"first_name": full.FirstName,
			"last_name":  full.LastName,
		},
	})
}

// Register handles advisor registration.
// @Summary     Register a new advisor
// @Description Register a new advisor with email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "Advisor registration data"
// @Success     201 {object} AuthResponse "Advisor registered and tokens generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate email"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	advisor, err := h.advisorService.CreateAdvisor(req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.issueTokens(c, &AdvisorResponse{ID: advisor.ID}, http.StatusCreated)
}

// Login handles advisor login.
// @Summary     Login advisor
// @Description Authenticate an advisor and get a token pair
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Advisor login credentials"
// @Success     200 {object} AuthResponse "Advisor authenticated and tokens generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     423 {object} ErrorResponse "Account locked"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	advisor, err := h.advisorService.AttemptLogin(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.issueTokens(c, &AdvisorResponse{ID: advisor.ID}, http.StatusOK)
}

// Refresh exchanges a valid refresh token for a new token pair.
// @Summary     Refresh tokens
// @Description Exchange a refresh token for a new access/refresh token pair
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RefreshRequest true "Refresh token"
// @Success     200 {object} AuthResponse "New token pair"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid refresh token"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	claims, err := middleware.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	storedHash, err := h.advisorService.GetRefreshTokenHash(claims.AdvisorID)
	if err != nil || storedHash == "" || storedHash != middleware.HashToken(req.RefreshToken) {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	h.issueTokens(c, &AdvisorResponse{ID: claims.AdvisorID}, http.StatusOK)
}

// GetProfile returns the authenticated advisor's profile.
// @Summary     Get advisor profile
// @Description Get the authenticated advisor's profile information
// @Tags        auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} AdvisorResponse "Advisor profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	advisorID, err := getAdvisorID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	advisor, err := h.advisorService.GetAdvisorByID(advisorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"advisor": gin.H{
			"id":         advisor.ID,
			"email":      advisor.Email,
			"first_name": advisor.FirstName,
			"last_name":  advisor.LastName,
		},
	})
}
