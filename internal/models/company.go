package models

// Company represents an advisory firm managing a portfolio of customers.
type Company struct {
	Base
	AdvisorID string `gorm:"type:uuid;not null;index" json:"advisor_id"`
	Name      string `gorm:"not null" json:"name"`
	SIREN     string `gorm:"size:9" json:"siren,omitempty"`

	// Relationships
	Customers []Customer `gorm:"foreignKey:CompanyID" json:"customers,omitempty"`
}
