package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/models"
	"patrimoine/internal/services"
)

// --- mock budget service ---

type mockBudgetService struct {
	getBudgetOverviewFn        func(advisorID, customerID, companyID string, domain models.BudgetDomain) (*services.BudgetOverview, error)
	createOrUpdateBudgetItemFn func(advisorID, customerID, companyID string, domain models.BudgetDomain, input services.BudgetItemInput, budgetID *string) (*services.BudgetItemCreated, error)
	deleteBudgetItemFn         func(advisorID, customerID, companyID, budgetID string) (bool, error)
}

func (m *mockBudgetService) GetBudgetOverview(advisorID, customerID, companyID string, domain models.BudgetDomain) (*services.BudgetOverview, error) {
	if m.getBudgetOverviewFn != nil {
		return m.getBudgetOverviewFn(advisorID, customerID, companyID, domain)
	}
	return &services.BudgetOverview{}, nil
}

func (m *mockBudgetService) CreateOrUpdateBudgetItem(advisorID, customerID, companyID string, domain models.BudgetDomain, input services.BudgetItemInput, budgetID *string) (*services.BudgetItemCreated, error) {
	if m.createOrUpdateBudgetItemFn != nil {
		return m.createOrUpdateBudgetItemFn(advisorID, customerID, companyID, domain, input, budgetID)
	}
	return &services.BudgetItemCreated{}, nil
}

func (m *mockBudgetService) DeleteBudgetItem(advisorID, customerID, companyID, budgetID string) (bool, error) {
	if m.deleteBudgetItemFn != nil {
		return m.deleteBudgetItemFn(advisorID, customerID, companyID, budgetID)
	}
	return true, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectAdvisorID(testAdvisorID))
	auth.GET("/customers/:id/budget", handler.GetBudget)
	auth.POST("/customers/:id/budget", handler.CreateBudgetItem)
	auth.DELETE("/customers/:id/budget/:budgetID", handler.DeleteBudgetItem)
	return r
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	t.Run("returns 200 with overview", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetOverviewFn: func(advisorID, customerID, companyID string, domain models.BudgetDomain) (*services.BudgetOverview, error) {
				if advisorID != testAdvisorID || customerID != testCustomerID || companyID != testCompanyID {
					t.Errorf("unexpected scope: %s %s %s", advisorID, customerID, companyID)
				}
				if domain != models.BudgetDomainPerson {
					t.Errorf("expected person domain by default, got %s", domain)
				}
				return &services.BudgetOverview{
					AvailableLiquidity: models.Amount{Value: 10000, Instrument: "EUR"},
				}, nil
			},
		}
		handler := NewBudgetHandler(svc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET",
			fmt.Sprintf("/customers/%s/budget?company_id=%s", testCustomerID, testCompanyID), "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		liquidity := result["available_liquidity"].(map[string]interface{})
		if liquidity["value"].(float64) != 10000 {
			t.Errorf("expected liquidity 10000, got %v", liquidity["value"])
		}
	})

	t.Run("returns 400 without company_id", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", fmt.Sprintf("/customers/%s/budget", testCustomerID), "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on invalid domain", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET",
			fmt.Sprintf("/customers/%s/budget?company_id=%s&domain=household", testCustomerID, testCompanyID), "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed customer id", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET",
			fmt.Sprintf("/customers/not-a-uuid/budget?company_id=%s", testCompanyID), "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when customer out of scope", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetOverviewFn: func(_, _, _ string, _ models.BudgetDomain) (*services.BudgetOverview, error) {
				return nil, apperrors.ErrCustomerNotFound
			},
		}
		handler := NewBudgetHandler(svc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET",
			fmt.Sprintf("/customers/%s/budget?company_id=%s", testCustomerID, testCompanyID), "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_CreateBudgetItem(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockBudgetService{
			createOrUpdateBudgetItemFn: func(_, _, _ string, _ models.BudgetDomain, input services.BudgetItemInput, budgetID *string) (*services.BudgetItemCreated, error) {
				if budgetID != nil {
					t.Error("expected nil budget ID for create")
				}
				return &services.BudgetItemCreated{Name: input.Name, Type: "employmentIncome"}, nil
			},
		}
		handler := NewBudgetHandler(svc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", fmt.Sprintf("/customers/%s/budget", testCustomerID),
			fmt.Sprintf(`{"company_id":"%s","name":"wagesAndSalaries","amount":{"value":3000}}`, testCompanyID))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		created := result["created"].(map[string]interface{})
		if created["name"] != "wagesAndSalaries" {
			t.Errorf("expected name wagesAndSalaries, got %v", created["name"])
		}
		if created["type"] != "employmentIncome" {
			t.Errorf("expected resolved type, got %v", created["type"])
		}
	})

	t.Run("passes budget_id through for overwrite", func(t *testing.T) {
		var gotBudgetID *string
		svc := &mockBudgetService{
			createOrUpdateBudgetItemFn: func(_, _, _ string, _ models.BudgetDomain, _ services.BudgetItemInput, budgetID *string) (*services.BudgetItemCreated, error) {
				gotBudgetID = budgetID
				return &services.BudgetItemCreated{}, nil
			},
		}
		handler := NewBudgetHandler(svc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", fmt.Sprintf("/customers/%s/budget", testCustomerID),
			fmt.Sprintf(`{"company_id":"%s","name":"rentOrMortgage","amount":{"value":1500},"budget_id":"%s"}`,
				testCompanyID, testBudgetID))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotBudgetID == nil || *gotBudgetID != testBudgetID {
			t.Errorf("expected budget ID %s passed to service, got %v", testBudgetID, gotBudgetID)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", fmt.Sprintf("/customers/%s/budget", testCustomerID),
			fmt.Sprintf(`{"company_id":"%s","amount":{"value":100}}`, testCompanyID))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid instrument", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", fmt.Sprintf("/customers/%s/budget", testCustomerID),
			fmt.Sprintf(`{"company_id":"%s","name":"utilities","amount":{"value":100,"instrument":"XYZ"}}`, testCompanyID))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown sub-category", func(t *testing.T) {
		svc := &mockBudgetService{
			createOrUpdateBudgetItemFn: func(_, _, _ string, _ models.BudgetDomain, _ services.BudgetItemInput, _ *string) (*services.BudgetItemCreated, error) {
				return nil, apperrors.ErrUnknownSubCategory
			},
		}
		handler := NewBudgetHandler(svc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", fmt.Sprintf("/customers/%s/budget", testCustomerID),
			fmt.Sprintf(`{"company_id":"%s","name":"cryptoWinnings","amount":{"value":100}}`, testCompanyID))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNKNOWN_SUBCATEGORY")
	})
}

func TestBudgetHandler_DeleteBudgetItem(t *testing.T) {
	t.Run("returns 200 with deleted flag", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "DELETE",
			fmt.Sprintf("/customers/%s/budget/%s?company_id=%s", testCustomerID, testBudgetID, testCompanyID), "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["deleted"] != true {
			t.Errorf("expected deleted true, got %v", result["deleted"])
		}
	})

	t.Run("returns 404 on unknown item", func(t *testing.T) {
		svc := &mockBudgetService{
			deleteBudgetItemFn: func(_, _, _, _ string) (bool, error) {
				return false, apperrors.ErrBudgetItemNotFound
			},
		}
		handler := NewBudgetHandler(svc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "DELETE",
			fmt.Sprintf("/customers/%s/budget/%s?company_id=%s", testCustomerID, testBudgetID, testCompanyID), "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 without company_id", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "DELETE",
			fmt.Sprintf("/customers/%s/budget/%s", testCustomerID, testBudgetID), "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
