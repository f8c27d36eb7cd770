package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/models"
)

const (
	maxFailedLoginAttempts = 5
	loginLockoutDuration   = 15 * time.Minute
)

// advisorService handles advisor account business logic.
type advisorService struct {
	db *gorm.DB
}

// NewAdvisorService creates a new AdvisorServicer.
func NewAdvisorService(db *gorm.DB) AdvisorServicer {
	return &advisorService{db: db}
}

// CreateAdvisor registers a new advisor account.
func (s *advisorService) CreateAdvisor(email, password, firstName, lastName string) (*models.Advisor, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	var count int64
	s.db.Model(&models.Advisor{}).Where("email = ?", strings.ToLower(email)).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	advisor := &models.Advisor{
		Email:     strings.ToLower(email),
		Password:  string(hashedPassword),
		FirstName: firstName,
		LastName:  lastName,
		IsActive:  true,
	}

	if err := s.db.Create(advisor).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return advisor, nil
}

// GetAdvisorByEmail retrieves an active advisor by email.
func (s *advisorService) GetAdvisorByEmail(email string) (*models.Advisor, error) {
	var advisor models.Advisor
	if err := s.db.Where("email = ? AND is_active = ?", strings.ToLower(email), true).First(&advisor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdvisorNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &advisor, nil
}

// GetAdvisorByID retrieves an advisor by ID.
func (s *advisorService) GetAdvisorByID(id string) (*models.Advisor, error) {
	var advisor models.Advisor
	if err := s.db.Where("id = ?", id).First(&advisor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdvisorNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &advisor, nil
}

// VerifyPassword checks if the provided password matches the stored hash.
func (s *advisorService) VerifyPassword(advisor *models.Advisor, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(advisor.Password), []byte(password))
	return err == nil
}

// AttemptLogin verifies credentials with failed-attempt lockout. After five
// consecutive failures the account is locked for fifteen minutes.
func (s *advisorService) AttemptLogin(email, password string) (*models.Advisor, error) {
	advisor, err := s.GetAdvisorByEmail(email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if advisor.LockedUntil != nil && advisor.LockedUntil.After(time.Now()) {
		return nil, apperrors.ErrAccountLocked
	}

	if !s.VerifyPassword(advisor, password) {
		attempts := advisor.FailedLoginAttempts + 1
		updates := map[string]interface{}{"failed_login_attempts": attempts}
		if attempts >= maxFailedLoginAttempts {
			lockedUntil := time.Now().Add(loginLockoutDuration)
			updates["locked_until"] = lockedUntil
		}
		if err := s.db.Model(advisor).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(advisor).Updates(map[string]interface{}{
		"failed_login_attempts": 0,
		"locked_until":          nil,
		"last_login_at":         now,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	advisor.LastLoginAt = &now

	return advisor, nil
}

// StoreRefreshTokenHash persists the hash of the advisor's refresh token.
func (s *advisorService) StoreRefreshTokenHash(advisorID, tokenHash string) error {
	if err := s.db.Model(&models.Advisor{}).
		Where("id = ?", advisorID).
		Update("refresh_token_hash", tokenHash).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetRefreshTokenHash returns the stored refresh token hash for an advisor.
func (s *advisorService) GetRefreshTokenHash(advisorID string) (string, error) {
	var advisor models.Advisor
	if err := s.db.Select("refresh_token_hash").Where("id = ?", advisorID).First(&advisor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrAdvisorNotFound
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return advisor.RefreshTokenHash, nil
}
