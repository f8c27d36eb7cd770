package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/pagination"
	"patrimoine/internal/services"
)

// CompanyHandler handles advisory company requests.
type CompanyHandler struct {
	companyService services.CompanyServicer
	auditService   services.AuditServicer
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService services.CompanyServicer, auditService services.AuditServicer) *CompanyHandler {
	return &CompanyHandler{companyService: companyService, auditService: auditService}
}

// CreateCompanyRequest represents the payload for creating a company.
type CreateCompanyRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	SIREN string `json:"siren" binding:"omitempty,len=9,numeric"`
}

// CreateCompany handles the creation of a new company.
// @Summary     Create a company
// @Description Create a new advisory company
// @Tags        companies
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCompanyRequest true "Company details"
// @Success     201 {object} models.Company "Company created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	advisorID, err := getAdvisorID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	company, err := h.companyService.CreateCompany(advisorID, req.Name, req.SIREN)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(advisorID, "CREATE_COMPANY", "company", company.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// GetCompanies handles listing the advisor's companies.
// @Summary     Get companies
// @Description Get a paginated list of the advisor's companies
// @Tags        companies
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Company] "Paginated companies"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /companies [get]
func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	advisorID, err := getAdvisorID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.companyService.GetAdvisorCompanies(advisorID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCompany handles retrieving a specific company.
// @Summary     Get company by ID
// @Description Get a specific company by ID
// @Tags        companies
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Company ID"
// @Success     200 {object} models.Company "Company details"
// @Failure     400 {object} ErrorResponse "Invalid company ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Company not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	advisorID, err := getAdvisorID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	companyID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	company, err := h.companyService.GetCompanyByID(advisorID, companyID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}
