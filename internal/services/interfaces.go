package services

import (
	"patrimoine/internal/aggregation"
	"patrimoine/internal/models"
	"patrimoine/internal/pagination"
	"patrimoine/internal/scoring"
)

// AdvisorServicer defines the contract for advisor account business logic.
type AdvisorServicer interface {
	CreateAdvisor(email, password, firstName, lastName string) (*models.Advisor, error)
	GetAdvisorByEmail(email string) (*models.Advisor, error)
	GetAdvisorByID(id string) (*models.Advisor, error)
	VerifyPassword(advisor *models.Advisor, password string) bool
	AttemptLogin(email, password string) (*models.Advisor, error)
	StoreRefreshTokenHash(advisorID, tokenHash string) error
	GetRefreshTokenHash(advisorID string) (string, error)
}

// CompanyServicer defines the contract for company business logic.
type CompanyServicer interface {
	CreateCompany(advisorID, name, siren string) (*models.Company, error)
	GetAdvisorCompanies(advisorID string, page pagination.PageRequest) (*pagination.PageResponse[models.Company], error)
	GetCompanyByID(advisorID, companyID string) (*models.Company, error)
}

// CustomerServicer defines the contract for customer business logic.
type CustomerServicer interface {
	CreateCustomer(advisorID, companyID, firstName, lastName, email string, availableLiquidity models.Amount) (*models.Customer, error)
	GetCompanyCustomers(advisorID, companyID string, page pagination.PageRequest) (*pagination.PageResponse[models.Customer], error)
	GetCustomerByID(advisorID, customerID string) (*models.Customer, error)
	UpdateAvailableLiquidity(advisorID, customerID string, liquidity models.Amount) (*models.Customer, error)
}

// BudgetItemInput carries the fields of a budget entry submission. Type may
// be left empty; it is then resolved from Name through the taxonomy.
type BudgetItemInput struct {
	Type    string
	Name    string
	Libelle *string
	Amount  models.Amount
}

// BudgetItemCreated is the response shape of a create-or-update operation.
type BudgetItemCreated struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Libelle *string `json:"libelle"`
}

// BudgetOverview bundles the raw items, their income and expense roll-ups,
// and the customer's available liquidity.
type BudgetOverview struct {
	Items              []models.BudgetItem `json:"items"`
	Incomes            aggregation.Result  `json:"incomes"`
	Expenses           aggregation.Result  `json:"expenses"`
	AvailableLiquidity models.Amount       `json:"available_liquidity"`
}

// BudgetServicer defines the contract for the budget item store and its
// aggregation views.
type BudgetServicer interface {
	GetBudgetOverview(advisorID, customerID, companyID string, domain models.BudgetDomain) (*BudgetOverview, error)
	CreateOrUpdateBudgetItem(advisorID, customerID, companyID string, domain models.BudgetDomain, input BudgetItemInput, budgetID *string) (*BudgetItemCreated, error)
	DeleteBudgetItem(advisorID, customerID, companyID, budgetID string) (bool, error)
}

// FiscalitySyncer receives real-estate wealth tax changes originating from
// budget item mutations. Implementations are best-effort: failures are
// reported to the caller, which logs and continues without rollback.
type FiscalitySyncer interface {
	SyncRealEstateWealthTax(customerID, companyID string, year int, subject bool, payable float64) error
}

// FiscalityInput carries the advisor-editable fiscality fields.
type FiscalityInput struct {
	SubjectRealEstateWealthTax bool
	RealEstateWealthPayableTax float64
	IncomeTax                  float64
	PropertyTax                float64
	TaxReductions              float64
	NumberOfTaxParts           float64
}

// FiscalityServicer defines the contract for yearly fiscality records. It
// embeds FiscalitySyncer so the same service can serve the budget-side sync.
type FiscalityServicer interface {
	FiscalitySyncer
	GetFiscality(advisorID, customerID, companyID string, year int) (*models.Fiscality, error)
	UpdateFiscality(advisorID, customerID, companyID string, year int, input FiscalityInput) (*models.Fiscality, error)
}

// InvestorProfileServicer defines the contract for questionnaire documents.
type InvestorProfileServicer interface {
	GetProfile(advisorID, customerID string) (*models.InvestorProfile, error)
	UpdateProfile(advisorID, customerID string, answers scoring.Answers) (*models.InvestorProfile, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(advisorID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
