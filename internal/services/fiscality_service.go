package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/logger"
	"patrimoine/internal/models"
	"patrimoine/internal/taxonomy"
)

// fiscalityService handles yearly fiscality records and both directions of
// the real-estate wealth tax synchronization.
type fiscalityService struct {
	db *gorm.DB
}

// NewFiscalityService creates a new FiscalityServicer. The returned service
// also implements FiscalitySyncer for the budget side of the sync.
func NewFiscalityService(db *gorm.DB) FiscalityServicer {
	return &fiscalityService{db: db}
}

// GetFiscality returns the record for a (customer, company, year) scope.
func (s *fiscalityService) GetFiscality(advisorID, customerID, companyID string, year int) (*models.Fiscality, error) {
	if _, err := customerInScope(s.db, advisorID, customerID, companyID); err != nil {
		return nil, err
	}

	var fiscality models.Fiscality
	if err := s.db.
		Where("customer_id = ? AND company_id = ? AND year = ?", customerID, companyID, year).
		First(&fiscality).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFiscalityNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &fiscality, nil
}

// UpdateFiscality upserts the record for a (customer, company, year) scope.
// When the real-estate wealth tax fields change, the matching budget item is
// recreated or removed so both views stay consistent. The two writes are
// sequential with no transaction boundary: a budget-side failure is logged
// and the fiscality update stands.
func (s *fiscalityService) UpdateFiscality(
	advisorID, customerID, companyID string,
	year int,
	input FiscalityInput,
) (*models.Fiscality, error) {
	if _, err := customerInScope(s.db, advisorID, customerID, companyID); err != nil {
		return nil, err
	}

	var fiscality models.Fiscality
	err := s.db.
		Where("customer_id = ? AND company_id = ? AND year = ?", customerID, companyID, year).
		First(&fiscality).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	wealthTaxChanged := errors.Is(err, gorm.ErrRecordNotFound) ||
		fiscality.SubjectRealEstateWealthTax != input.SubjectRealEstateWealthTax ||
		fiscality.RealEstateWealthPayableTax != input.RealEstateWealthPayableTax

	fiscality.CustomerID = customerID
	fiscality.CompanyID = companyID
	fiscality.Year = year
	fiscality.SubjectRealEstateWealthTax = input.SubjectRealEstateWealthTax
	fiscality.RealEstateWealthPayableTax = input.RealEstateWealthPayableTax
	fiscality.IncomeTax = input.IncomeTax
	fiscality.PropertyTax = input.PropertyTax
	fiscality.TaxReductions = input.TaxReductions
	fiscality.NumberOfTaxParts = input.NumberOfTaxParts

	if err := s.db.Save(&fiscality).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if wealthTaxChanged {
		if err := s.syncBudgetItem(customerID, companyID, input.SubjectRealEstateWealthTax, input.RealEstateWealthPayableTax); err != nil {
			logger.Get().Errorw("budget item sync after fiscality update failed",
				"customer_id", customerID,
				"company_id", companyID,
				"year", year,
				"error", err,
			)
		}
	}

	return &fiscality, nil
}

// SyncRealEstateWealthTax implements FiscalitySyncer: it mirrors a budget
// item mutation into the current-year fiscality record.
func (s *fiscalityService) SyncRealEstateWealthTax(customerID, companyID string, year int, subject bool, payable float64) error {
	var fiscality models.Fiscality
	err := s.db.
		Where("customer_id = ? AND company_id = ? AND year = ?", customerID, companyID, year).
		First(&fiscality).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	fiscality.CustomerID = customerID
	fiscality.CompanyID = companyID
	fiscality.Year = year
	fiscality.SubjectRealEstateWealthTax = subject
	fiscality.RealEstateWealthPayableTax = payable

	return s.db.Save(&fiscality).Error
}

// syncBudgetItem mirrors a fiscality edit back onto the budget item store.
// Any existing realEstateWealthTax entries are removed first to avoid
// duplicates; when the customer is subject to the tax a fresh entry is
// created with the payable amount.
func (s *fiscalityService) syncBudgetItem(customerID, companyID string, subject bool, payable float64) error {
	if err := s.db.
		Where("customer_id = ? AND company_id = ? AND name = ?",
			customerID, companyID, taxonomy.SubLabelRealEstateWealthTax).
		Delete(&models.BudgetItem{}).Error; err != nil {
		return err
	}

	if !subject {
		return nil
	}

	category, ok := taxonomy.FindCategoryBySubLabel(models.BudgetDomainPerson, taxonomy.SubLabelRealEstateWealthTax)
	if !ok {
		return apperrors.ErrUnknownSubCategory
	}

	item := &models.BudgetItem{
		CustomerID: customerID,
		CompanyID:  companyID,
		Domain:     models.BudgetDomainPerson,
		Type:       category.Label,
		Name:       taxonomy.SubLabelRealEstateWealthTax,
		Amount:     models.Amount{Value: payable, Instrument: models.DefaultInstrument},
	}
	return s.db.Create(item).Error
}
