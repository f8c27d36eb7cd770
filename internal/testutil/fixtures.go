package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"patrimoine/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAdvisor creates an advisor with a hashed password and unique email.
func CreateTestAdvisor(t *testing.T, db *gorm.DB) *models.Advisor {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	advisor := &models.Advisor{
		Email:     fmt.Sprintf("advisor%d@example.com", nextID()),
		Password:  string(hashed),
		FirstName: "Test",
		LastName:  "Advisor",
		IsActive:  true,
	}
	if err := db.Create(advisor).Error; err != nil {
		t.Fatalf("failed to create test advisor: %v", err)
	}
	return advisor
}

// CreateTestCompany creates a company owned by the given advisor.
func CreateTestCompany(t *testing.T, db *gorm.DB, advisorID string) *models.Company {
	t.Helper()

	company := &models.Company{
		AdvisorID: advisorID,
		Name:      fmt.Sprintf("Cabinet %d", nextID()),
	}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("failed to create test company: %v", err)
	}
	return company
}

// CreateTestCustomer creates a customer under the given company.
func CreateTestCustomer(t *testing.T, db *gorm.DB, companyID string) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		CompanyID: companyID,
		FirstName: "Test",
		LastName:  fmt.Sprintf("Customer%d", nextID()),
		AvailableLiquidity: models.Amount{
			Value:      10000,
			Instrument: models.DefaultInstrument,
		},
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}
	return customer
}

// CreateTestBudgetItem creates a budget item in the given scope. Type and
// name default to the housingCosts/rentOrMortgage pair.
func CreateTestBudgetItem(t *testing.T, db *gorm.DB, customerID, companyID string) *models.BudgetItem {
	t.Helper()

	item := &models.BudgetItem{
		CustomerID: customerID,
		CompanyID:  companyID,
		Domain:     models.BudgetDomainPerson,
		Type:       "housingCosts",
		Name:       "rentOrMortgage",
		Amount:     models.Amount{Value: 1000, Instrument: models.DefaultInstrument},
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test budget item: %v", err)
	}
	return item
}
