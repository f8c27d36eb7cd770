package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/models"
	"patrimoine/internal/services"
)

// BudgetHandler handles budget ledger requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// AmountPayload is the wire shape of a monetary value.
type AmountPayload struct {
	Value      float64 `json:"value" binding:"required"`
	Instrument string  `json:"instrument" binding:"omitempty,iso4217"`
}

// CreateBudgetItemRequest represents the payload for creating or updating a
// budget entry. Supplying budget_id overwrites the existing entry in place.
type CreateBudgetItemRequest struct {
	CompanyID string        `json:"company_id" binding:"required,uuid"`
	Domain    string        `json:"domain" binding:"omitempty,budget_domain"`
	Type      string        `json:"type" binding:"omitempty,max=64"`
	Name      string        `json:"name" binding:"required,max=64"`
	Libelle   *string       `json:"libelle" binding:"omitempty,max=255"`
	Amount    AmountPayload `json:"amount" binding:"required"`
	BudgetID  *string       `json:"budget_id" binding:"omitempty,uuid"`
}

// GetBudget handles retrieving the budget overview for a customer.
// @Summary     Get budget overview
// @Description Get budget items with income/expense aggregation and available liquidity
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id         path  string true  "Customer ID"
// @Param       company_id query string true  "Company ID"
// @Param       domain     query string false "Taxonomy domain (person/company, default person)"
// @Success     200 {object} services.BudgetOverview "Budget overview"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id}/budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
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

	domain, err := parseDomain(c.Query("domain"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	overview, err := h.budgetService.GetBudgetOverview(advisorID, customerID, companyID, domain)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// CreateBudgetItem handles creation or overwrite of a budget entry.
// @Summary     Create or update a budget item
// @Description Create a budget entry, or overwrite an existing one when budget_id is given
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Customer ID"
// @Param       request body CreateBudgetItemRequest true "Budget entry"
// @Success     201 {object} services.BudgetItemCreated "Created entry"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown sub-category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Customer or budget item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id}/budget [post]
func (h *BudgetHandler) CreateBudgetItem(c *gin.Context) {
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

	var req CreateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	domain, err := parseDomain(req.Domain)
	if err != nil {
		respondWithError(c, err)
		return
	}

	input := services.BudgetItemInput{
		Type:    req.Type,
		Name:    req.Name,
		Libelle: req.Libelle,
		Amount:  models.Amount{Value: req.Amount.Value, Instrument: req.Amount.Instrument},
	}

	created, err := h.budgetService.CreateOrUpdateBudgetItem(advisorID, customerID, req.CompanyID, domain, input, req.BudgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(advisorID, "CREATE_BUDGET_ITEM", "budget_item", customerID, c.ClientIP(),
		map[string]interface{}{"name": created.Name, "type": created.Type, "amount": req.Amount.Value})

	c.JSON(http.StatusCreated, gin.H{"created": created})
}

// DeleteBudgetItem handles deletion of a budget entry.
// @Summary     Delete budget item
// @Description Delete a budget entry by ID
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id         path  string true "Customer ID"
// @Param       budgetID   path  string true "Budget item ID"
// @Param       company_id query string true "Company ID"
// @Success     200 {object} map[string]bool "Deletion confirmation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id}/budget/{budgetID} [delete]
func (h *BudgetHandler) DeleteBudgetItem(c *gin.Context) {
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

	budgetID, err := parsePathUUID(c, "budgetID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	companyID := c.Query("company_id")
	if companyID == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "company_id is required"))
		return
	}

	deleted, err := h.budgetService.DeleteBudgetItem(advisorID, customerID, companyID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(advisorID, "DELETE_BUDGET_ITEM", "budget_item", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func parseDomain(raw string) (models.BudgetDomain, error) {
	switch models.BudgetDomain(raw) {
	case "":
		return models.BudgetDomainPerson, nil
	case models.BudgetDomainPerson:
		return models.BudgetDomainPerson, nil
	case models.BudgetDomainCompany:
		return models.BudgetDomainCompany, nil
	}
	return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "domain must be 'person' or 'company'")
}
