package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/models"
	"patrimoine/internal/pagination"
	"patrimoine/internal/services"
)

// CustomerHandler handles customer requests.
type CustomerHandler struct {
	customerService services.CustomerServicer
	auditService    services.AuditServicer
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService services.CustomerServicer, auditService services.AuditServicer) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, auditService: auditService}
}

// CreateCustomerRequest represents the payload for creating a customer.
type CreateCustomerRequest struct {
	CompanyID          string         `json:"company_id" binding:"required,uuid"`
	FirstName          string         `json:"first_name" binding:"required,min=1,max=100"`
	LastName           string         `json:"last_name" binding:"required,min=1,max=100"`
	Email              string         `json:"email" binding:"omitempty,email,max=255"`
	AvailableLiquidity *AmountPayload `json:"available_liquidity"`
}

// UpdateLiquidityRequest represents the payload for updating available liquidity.
type UpdateLiquidityRequest struct {
	AvailableLiquidity AmountPayload `json:"available_liquidity" binding:"required"`
}

// CreateCustomer handles the creation of a new customer.
// @Summary     Create a customer
// @Description Create a new customer under one of the advisor's companies
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCustomerRequest true "Customer details"
// @Success     201 {object} models.Customer "Customer created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Company not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	advisorID, err := getAdvisorID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var liquidity models.Amount
	if req.AvailableLiquidity != nil {
		liquidity = models.Amount{Value: req.AvailableLiquidity.Value, Instrument: req.AvailableLiquidity.Instrument}
	}

	customer, err := h.customerService.CreateCustomer(advisorID, req.CompanyID, req.FirstName, req.LastName, req.Email, liquidity)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(advisorID, "CREATE_CUSTOMER", "customer", customer.ID, c.ClientIP(),
		map[string]interface{}{"first_name": req.FirstName, "last_name": req.LastName})

	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

// GetCustomers handles listing a company's customers.
// @Summary     Get customers
// @Description Get a paginated list of a company's customers
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       company_id query string true  "Company ID"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Customer] "Paginated customers"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Company not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers [get]
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	advisorID, err := getAdvisorID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	companyID := c.Query("company_id")
	if companyID == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "company_id is required"))
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.customerService.GetCompanyCustomers(advisorID, companyID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCustomer handles retrieving a specific customer.
// @Summary     Get customer by ID
// @Description Get a specific customer by ID
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Customer ID"
// @Success     200 {object} models.Customer "Customer details"
// @Failure     400 {object} ErrorResponse "Invalid customer ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
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

	customer, err := h.customerService.GetCustomerByID(advisorID, customerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// UpdateLiquidity handles updating a customer's available liquidity.
// @Summary     Update available liquidity
// @Description Update a customer's available liquidity amount
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "Customer ID"
// @Param       request body UpdateLiquidityRequest true "New liquidity"
// @Success     200 {object} models.Customer "Updated customer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id}/liquidity [put]
func (h *CustomerHandler) UpdateLiquidity(c *gin.Context) {
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

	var req UpdateLiquidityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	customer, err := h.customerService.UpdateAvailableLiquidity(advisorID, customerID,
		models.Amount{Value: req.AvailableLiquidity.Value, Instrument: req.AvailableLiquidity.Instrument})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(advisorID, "UPDATE_CUSTOMER_LIQUIDITY", "customer", customerID, c.ClientIP(),
		map[string]interface{}{"value": req.AvailableLiquidity.Value})

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}
