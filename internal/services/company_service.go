package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/models"
	"patrimoine/internal/pagination"
)

// companyService handles company business logic.
type companyService struct {
	db *gorm.DB
}

// NewCompanyService creates a new CompanyServicer.
func NewCompanyService(db *gorm.DB) CompanyServicer {
	return &companyService{db: db}
}

// CreateCompany creates a new advisory company for an advisor.
func (s *companyService) CreateCompany(advisorID, name, siren string) (*models.Company, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "company name is required")
	}

	company := &models.Company{
		AdvisorID: advisorID,
		Name:      name,
		SIREN:     siren,
	}

	if err := s.db.Create(company).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return company, nil
}

// GetAdvisorCompanies returns a paginated list of the advisor's companies.
func (s *companyService) GetAdvisorCompanies(advisorID string, page pagination.PageRequest) (*pagination.PageResponse[models.Company], error) {
	page.Defaults()

	base := s.db.Model(&models.Company{}).Where("advisor_id = ?", advisorID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var companies []models.Company
	if err := base.Scopes(pagination.Paginate(page)).Find(&companies).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(companies, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCompanyByID returns a company by ID if it belongs to the advisor.
func (s *companyService) GetCompanyByID(advisorID, companyID string) (*models.Company, error) {
	var company models.Company
	if err := s.db.Where("id = ? AND advisor_id = ?", companyID, advisorID).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &company, nil
}
