package models

// Fiscality holds a customer's yearly tax-related data for a
// (customer, company, year) scope. The real-estate wealth tax fields are
// kept in two-way sync with the matching budget item (see the fiscality
// service); the remaining fields are plain advisor-entered data.
type Fiscality struct {
	Base
	CustomerID string `gorm:"type:uuid;not null;index:idx_fiscality_scope,unique" json:"customer_id"`
	CompanyID  string `gorm:"type:uuid;not null;index:idx_fiscality_scope,unique" json:"company_id"`
	Year       int    `gorm:"not null;index:idx_fiscality_scope,unique" json:"year"`

	SubjectRealEstateWealthTax bool    `json:"subjectRealEstateWealthTax"`
	RealEstateWealthPayableTax float64 `json:"realEstateWealthPayableTax"`

	IncomeTax        float64 `json:"incomeTax"`
	PropertyTax      float64 `json:"propertyTax"`
	TaxReductions    float64 `json:"taxReductions"`
	NumberOfTaxParts float64 `json:"numberOfTaxParts"`
}
