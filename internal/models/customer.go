package models

// Customer represents a client of an advisory company.
// AvailableLiquidity is maintained by the advisor and returned alongside
// the budget overview.
type Customer struct {
	Base
	CompanyID          string `gorm:"type:uuid;not null;index" json:"company_id"`
	FirstName          string `gorm:"not null" json:"first_name"`
	LastName           string `gorm:"not null" json:"last_name"`
	Email              string `json:"email,omitempty"`
	AvailableLiquidity Amount `gorm:"embedded;embeddedPrefix:available_liquidity_" json:"available_liquidity"`

	// Relationships
	BudgetItems []BudgetItem `gorm:"foreignKey:CustomerID" json:"budget_items,omitempty"`
}
