package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"patrimoine/internal/aggregation"
	apperrors "patrimoine/internal/errors"
	"patrimoine/internal/logger"
	"patrimoine/internal/models"
	"patrimoine/internal/taxonomy"
)

// budgetService handles the budget item store and its aggregation views.
type budgetService struct {
	db        *gorm.DB
	fiscality FiscalitySyncer
}

// NewBudgetService creates a new BudgetServicer. The syncer receives
// real-estate wealth tax changes; pass nil to disable the side effect.
func NewBudgetService(db *gorm.DB, fiscality FiscalitySyncer) BudgetServicer {
	return &budgetService{db: db, fiscality: fiscality}
}

// GetBudgetOverview lists the scope's budget items and rolls them up into
// income and expense groups. Groups are recomputed in full on every call;
// nothing derived is cached between mutations.
func (s *budgetService) GetBudgetOverview(
	advisorID, customerID, companyID string,
	domain models.BudgetDomain,
) (*BudgetOverview, error) {
	customer, err := customerInScope(s.db, advisorID, customerID, companyID)
	if err != nil {
		return nil, err
	}

	var items []models.BudgetItem
	if err := s.db.
		Where("customer_id = ? AND company_id = ? AND domain = ?", customerID, companyID, domain).
		Order("created_at").
		Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &BudgetOverview{
		Items:              items,
		Incomes:            aggregation.Aggregate(taxonomy.Categories(domain, models.BudgetDirectionIncomes), items),
		Expenses:           aggregation.Aggregate(taxonomy.Categories(domain, models.BudgetDirectionExpenses), items),
		AvailableLiquidity: customer.AvailableLiquidity,
	}, nil
}

// CreateOrUpdateBudgetItem persists a budget entry. When budgetID is
// supplied the existing entry is overwritten in place (same identity, new
// amount); otherwise a new entry is allocated. The sub-category name must
// resolve to a taxonomy category before anything is persisted; an unknown
// name aborts the submission without touching the store.
func (s *budgetService) CreateOrUpdateBudgetItem(
	advisorID, customerID, companyID string,
	domain models.BudgetDomain,
	input BudgetItemInput,
	budgetID *string,
) (*BudgetItemCreated, error) {
	if _, err := customerInScope(s.db, advisorID, customerID, companyID); err != nil {
		return nil, err
	}

	category, ok := taxonomy.FindCategoryBySubLabel(domain, input.Name)
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrUnknownSubCategory,
			"Sub-category "+input.Name+" does not belong to any budget category")
	}
	if input.Type != "" && input.Type != category.Label {
		return nil, apperrors.ErrCategoryMismatch
	}

	amount := input.Amount
	if amount.Instrument == "" {
		amount.Instrument = models.DefaultInstrument
	}

	var item *models.BudgetItem
	if budgetID != nil {
		existing, err := s.getItemInScope(customerID, companyID, *budgetID)
		if err != nil {
			return nil, err
		}
		updates := map[string]interface{}{
			"type":              category.Label,
			"name":              input.Name,
			"libelle":           input.Libelle,
			"amount_value":      amount.Value,
			"amount_instrument": amount.Instrument,
		}
		if err := s.db.Model(existing).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		item = existing
	} else {
		item = &models.BudgetItem{
			CustomerID: customerID,
			CompanyID:  companyID,
			Domain:     domain,
			Type:       category.Label,
			Name:       input.Name,
			Libelle:    input.Libelle,
			Amount:     amount,
		}
		if err := s.db.Create(item).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	// Creating or overwriting the real-estate wealth tax entry must keep
	// the fiscality record's matching fields in step. The sync is
	// best-effort: a failure here is reported, never rolled back.
	if input.Name == taxonomy.SubLabelRealEstateWealthTax && s.fiscality != nil {
		if err := s.fiscality.SyncRealEstateWealthTax(
			customerID, companyID, time.Now().Year(), true, amount.Value,
		); err != nil {
			logger.Get().Errorw("fiscality sync after budget item creation failed",
				"customer_id", customerID,
				"company_id", companyID,
				"error", err,
			)
		}
	}

	return &BudgetItemCreated{Name: item.Name, Type: item.Type, Libelle: item.Libelle}, nil
}

// DeleteBudgetItem removes a budget entry and reports whether it was
// deleted. Deleting the real-estate wealth tax entry clears the fiscality
// record's matching fields, again best-effort.
func (s *budgetService) DeleteBudgetItem(advisorID, customerID, companyID, budgetID string) (bool, error) {
	if _, err := customerInScope(s.db, advisorID, customerID, companyID); err != nil {
		return false, err
	}

	item, err := s.getItemInScope(customerID, companyID, budgetID)
	if err != nil {
		return false, err
	}

	if err := s.db.Delete(item).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if item.Name == taxonomy.SubLabelRealEstateWealthTax && s.fiscality != nil {
		if err := s.fiscality.SyncRealEstateWealthTax(
			customerID, companyID, time.Now().Year(), false, 0,
		); err != nil {
			logger.Get().Errorw("fiscality sync after budget item deletion failed",
				"customer_id", customerID,
				"company_id", companyID,
				"error", err,
			)
		}
	}

	return true, nil
}

func (s *budgetService) getItemInScope(customerID, companyID, budgetID string) (*models.BudgetItem, error) {
	var item models.BudgetItem
	if err := s.db.
		Where("id = ? AND customer_id = ? AND company_id = ?", budgetID, customerID, companyID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}
