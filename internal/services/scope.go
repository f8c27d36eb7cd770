package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/models"
)

// customerInScope loads a customer and verifies it belongs to the given
// company (when companyID is non-empty) and that the company is managed by
// the given advisor. Every customer-keyed operation goes through this check.
func customerInScope(db *gorm.DB, advisorID, customerID, companyID string) (*models.Customer, error) {
	var customer models.Customer
	if err := db.Where("id = ?", customerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if companyID != "" && customer.CompanyID != companyID {
		return nil, apperrors.ErrCustomerNotFound
	}

	var company models.Company
	if err := db.Where("id = ? AND advisor_id = ?", customer.CompanyID, advisorID).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &customer, nil
}
