package services

import (
	"gorm.io/gorm"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/models"
	"patrimoine/internal/pagination"
)

// customerService handles customer business logic.
type customerService struct {
	db      *gorm.DB
	company CompanyServicer
}

// NewCustomerService creates a new CustomerServicer.
func NewCustomerService(db *gorm.DB, company CompanyServicer) CustomerServicer {
	return &customerService{db: db, company: company}
}

// CreateCustomer creates a new customer under one of the advisor's companies.
func (s *customerService) CreateCustomer(
	advisorID, companyID, firstName, lastName, email string,
	availableLiquidity models.Amount,
) (*models.Customer, error) {
	if firstName == "" || lastName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "first and last name are required")
	}

	if _, err := s.company.GetCompanyByID(advisorID, companyID); err != nil {
		return nil, err
	}

	if availableLiquidity.Instrument == "" {
		availableLiquidity.Instrument = models.DefaultInstrument
	}

	customer := &models.Customer{
		CompanyID:          companyID,
		FirstName:          firstName,
		LastName:           lastName,
		Email:              email,
		AvailableLiquidity: availableLiquidity,
	}

	if err := s.db.Create(customer).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return customer, nil
}

// GetCompanyCustomers returns a paginated list of a company's customers.
func (s *customerService) GetCompanyCustomers(advisorID, companyID string, page pagination.PageRequest) (*pagination.PageResponse[models.Customer], error) {
	if _, err := s.company.GetCompanyByID(advisorID, companyID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Customer{}).Where("company_id = ?", companyID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var customers []models.Customer
	if err := base.Scopes(pagination.Paginate(page)).Find(&customers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(customers, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCustomerByID returns a customer if it belongs to one of the advisor's
// companies.
func (s *customerService) GetCustomerByID(advisorID, customerID string) (*models.Customer, error) {
	return customerInScope(s.db, advisorID, customerID, "")
}

// UpdateAvailableLiquidity updates the customer's available liquidity.
func (s *customerService) UpdateAvailableLiquidity(advisorID, customerID string, liquidity models.Amount) (*models.Customer, error) {
	customer, err := customerInScope(s.db, advisorID, customerID, "")
	if err != nil {
		return nil, err
	}

	if liquidity.Instrument == "" {
		liquidity.Instrument = models.DefaultInstrument
	}

	if err := s.db.Model(customer).Updates(map[string]interface{}{
		"available_liquidity_value":      liquidity.Value,
		"available_liquidity_instrument": liquidity.Instrument,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	customer.AvailableLiquidity = liquidity

	return customer, nil
}
