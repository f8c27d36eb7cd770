package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/models"
	"patrimoine/internal/taxonomy"
)

// TaxonomyHandler serves the static budget category tables.
type TaxonomyHandler struct{}

// NewTaxonomyHandler creates a new TaxonomyHandler.
func NewTaxonomyHandler() *TaxonomyHandler {
	return &TaxonomyHandler{}
}

// GetCategories returns the category table for a domain and direction.
// @Summary     Get budget categories
// @Description Get the static category taxonomy for a domain and direction
// @Tags        taxonomy
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       domain    query string true "Taxonomy domain (person/company)"
// @Param       direction query string true "Direction (incomes/expenses)"
// @Success     200 {array} taxonomy.Category "Categories"
// @Failure     400 {object} ErrorResponse "Invalid domain or direction"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /taxonomy/categories [get]
func (h *TaxonomyHandler) GetCategories(c *gin.Context) {
	domain, err := parseDomain(c.Query("domain"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	direction := models.BudgetDirection(c.Query("direction"))
	if direction != models.BudgetDirectionIncomes && direction != models.BudgetDirectionExpenses {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "direction must be 'incomes' or 'expenses'"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": taxonomy.Categories(domain, direction)})
}
