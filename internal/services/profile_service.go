package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/models"
	"patrimoine/internal/scoring"
)

// profileService handles investor profile questionnaire documents.
type profileService struct {
	db *gorm.DB
}

// NewInvestorProfileService creates a new InvestorProfileServicer.
func NewInvestorProfileService(db *gorm.DB) InvestorProfileServicer {
	return &profileService{db: db}
}

// GetProfile returns the customer's questionnaire document.
func (s *profileService) GetProfile(advisorID, customerID string) (*models.InvestorProfile, error) {
	if _, err := customerInScope(s.db, advisorID, customerID, ""); err != nil {
		return nil, err
	}

	var profile models.InvestorProfile
	if err := s.db.Where("customer_id = ?", customerID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestorProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// UpdateProfile persists the questionnaire as a whole document. Section
// scores are recomputed from the answers before saving; there is no
// partial-field persistence and no cross-section total.
func (s *profileService) UpdateProfile(advisorID, customerID string, answers scoring.Answers) (*models.InvestorProfile, error) {
	if _, err := customerInScope(s.db, advisorID, customerID, ""); err != nil {
		return nil, err
	}

	scoring.ScoreAll(&answers)

	var profile models.InvestorProfile
	err := s.db.Where("customer_id = ?", customerID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	profile.CustomerID = customerID
	profile.SetAnswers(answers)

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &profile, nil
}
