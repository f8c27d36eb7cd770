package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/services"
)

// FiscalityHandler handles yearly fiscality record requests.
type FiscalityHandler struct {
	fiscalityService services.FiscalityServicer
	auditService     services.AuditServicer
}

// NewFiscalityHandler creates a new FiscalityHandler.
func NewFiscalityHandler(fiscalityService services.FiscalityServicer, auditService services.AuditServicer) *FiscalityHandler {
	return &FiscalityHandler{fiscalityService: fiscalityService, auditService: auditService}
}

// UpdateFiscalityRequest represents the payload for updating a fiscality record.
type UpdateFiscalityRequest struct {
	CompanyID                  string  `json:"company_id" binding:"required,uuid"`
	Year                       int     `json:"year" binding:"required,min=1990,max=2100"`
	SubjectRealEstateWealthTax bool    `json:"subjectRealEstateWealthTax"`
	RealEstateWealthPayableTax float64 `json:"realEstateWealthPayableTax" binding:"omitempty,gte=0"`
	IncomeTax                  float64 `json:"incomeTax" binding:"omitempty,gte=0"`
	PropertyTax                float64 `json:"propertyTax" binding:"omitempty,gte=0"`
	TaxReductions              float64 `json:"taxReductions" binding:"omitempty,gte=0"`
	NumberOfTaxParts           float64 `json:"numberOfTaxParts" binding:"omitempty,gt=0"`
}

// GetFiscality handles retrieving a customer's fiscality record.
// @Summary     Get fiscality record
// @Description Get a customer's yearly fiscality record
// @Tags        fiscality
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id         path  string true "Customer ID"
// @Param       company_id query string true "Company ID"
// @Param       year       query int    true "Fiscal year"
// @Success     200 {object} models.Fiscality "Fiscality record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id}/fiscality [get]
func (h *FiscalityHandler) GetFiscality(c *gin.Context) {
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

	companyID := c.Query("company_id")
	if companyID == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "company_id is required"))
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be an integer"))
		return
	}

	fiscality, err := h.fiscalityService.GetFiscality(advisorID, customerID, companyID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fiscality": fiscality})
}

// UpdateFiscality handles upserting a customer's fiscality record.
// @Summary     Update fiscality record
// @Description Upsert a customer's yearly fiscality record; wealth tax changes sync the matching budget item
// @Tags        fiscality
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "Customer ID"
// @Param       request body UpdateFiscalityRequest true "Fiscality fields"
// @Success     200 {object} models.Fiscality "Updated record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id}/fiscality [put]
func (h *FiscalityHandler) UpdateFiscality(c *gin.Context) {
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

	var req UpdateFiscalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.FiscalityInput{
		SubjectRealEstateWealthTax: req.SubjectRealEstateWealthTax,
		RealEstateWealthPayableTax: req.RealEstateWealthPayableTax,
		IncomeTax:                  req.IncomeTax,
		PropertyTax:                req.PropertyTax,
		TaxReductions:              req.TaxReductions,
		NumberOfTaxParts:           req.NumberOfTaxParts,
	}

	fiscality, err := h.fiscalityService.UpdateFiscality(advisorID, customerID, req.CompanyID, req.Year, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(advisorID, "UPDATE_FISCALITY", "fiscality", fiscality.ID, c.ClientIP(),
		map[string]interface{}{
			"year":                       req.Year,
			"subjectRealEstateWealthTax": req.SubjectRealEstateWealthTax,
		})

	c.JSON(http.StatusOK, gin.H{"fiscality": fiscality})
}
