package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/scoring"
	"patrimoine/internal/services"
)

// InvestorProfileHandler handles questionnaire document requests.
type InvestorProfileHandler struct {
	profileService services.InvestorProfileServicer
	auditService   services.AuditServicer
}

// NewInvestorProfileHandler creates a new InvestorProfileHandler.
func NewInvestorProfileHandler(profileService services.InvestorProfileServicer, auditService services.AuditServicer) *InvestorProfileHandler {
	return &InvestorProfileHandler{profileService: profileService, auditService: auditService}
}

// GetInvestorProfile handles retrieving a customer's questionnaire document.
// @Summary     Get investor profile
// @Description Get a customer's investor profile questionnaire with section scores
// @Tags        investor-profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Customer ID"
// @Success     200 {object} models.InvestorProfile "Investor profile"
// @Failure     400 {object} ErrorResponse "Invalid customer ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Profile not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id}/investor-profile [get]
func (h *InvestorProfileHandler) GetInvestorProfile(c *gin.Context) {
	advisorID, err := getAdvisorID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	customerID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(advisorID, customerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateInvestorProfile handles persisting a customer's full questionnaire.
// @Summary     Update investor profile
// @Description Persist the full questionnaire document; section scores are computed server-side
// @Tags        investor-profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string          true "Customer ID"
// @Param       request body scoring.Answers true "Questionnaire answers"
// @Success     200 {object} models.InvestorProfile "Persisted profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id}/investor-profile [put]
func (h *InvestorProfileHandler) UpdateInvestorProfile(c *gin.Context) {
	advisorID, err := getAdvisorID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	customerID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var answers scoring.Answers
	if err := c.ShouldBindJSON(&answers); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.profileService.UpdateProfile(advisorID, customerID, answers)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(advisorID, "UPDATE_INVESTOR_PROFILE", "investor_profile", profile.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
