package models

// BudgetDomain selects which taxonomy a budget item is classified against.
type BudgetDomain string

const (
	BudgetDomainPerson  BudgetDomain = "person"
	BudgetDomainCompany BudgetDomain = "company"
)

// BudgetDirection splits budget entries into income and expense groupings.
// Amounts are positive for both; the direction, not the sign, disambiguates.
type BudgetDirection string

const (
	BudgetDirectionIncomes  BudgetDirection = "incomes"
	BudgetDirectionExpenses BudgetDirection = "expenses"
)

// BudgetItem is a single categorized income or expense ledger entry for a
// (customer, company) scope. Type is a taxonomy category label and Name one
// of that category's sub-entry values. The store does not enforce uniqueness
// of (type, name) per scope; callers follow a delete-and-recreate convention.
type BudgetItem struct {
	Base
	CustomerID string       `gorm:"type:uuid;not null;index" json:"customer_id"`
	CompanyID  string       `gorm:"type:uuid;not null;index" json:"company_id"`
	Domain     BudgetDomain `gorm:"not null;default:person" json:"domain"`
	Type       string       `gorm:"not null" json:"type"`
	Name       string       `gorm:"not null" json:"name"`
	Libelle    *string      `json:"libelle"`
	Amount     Amount       `gorm:"embedded;embeddedPrefix:amount_" json:"amount"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}
