// Package taxonomy holds the static budget category tables. Two parallel
// taxonomies exist, one for person budgets and one for company budgets,
// each split into income and expense categories. The tables are compiled
// into the binary; order is significant for display grouping only.
package taxonomy

import "patrimoine/internal/models"

// SubCategory describes a selectable sub-entry of a category.
type SubCategory struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Category groups sub-categories under a single label.
type Category struct {
	Label string        `json:"label"`
	Items []SubCategory `json:"items"`
}

// SubLabelRealEstateWealthTax is the budget entry kept in sync with the
// fiscality record's real-estate wealth tax fields.
const SubLabelRealEstateWealthTax = "realEstateWealthTax"

var personIncomes = []Category{
	{Label: "employmentIncome", Items: []SubCategory{
		{Label: "Wages and salaries", Value: "wagesAndSalaries"},
		{Label: "Bonuses and commissions", Value: "bonusesAndCommissions"},
		{Label: "Director fees", Value: "directorFees"},
	}},
	{Label: "investmentIncome", Items: []SubCategory{
		{Label: "Dividends", Value: "dividends"},
		{Label: "Interest income", Value: "interestIncome"},
		{Label: "Life insurance income", Value: "lifeInsuranceIncome"},
	}},
	{Label: "propertyIncome", Items: []SubCategory{
		{Label: "Rental income", Value: "rentalIncome"},
		{Label: "Furnished rental income", Value: "furnishedRentalIncome"},
		{Label: "Land income", Value: "landIncome"},
	}},
	{Label: "pensionIncome", Items: []SubCategory{
		{Label: "Retirement pension", Value: "retirementPension"},
		{Label: "Annuities", Value: "annuities"},
	}},
	{Label: "otherIncome", Items: []SubCategory{
		{Label: "Alimony received", Value: "alimonyReceived"},
		{Label: "Family allowances", Value: "familyAllowances"},
	}},
}

var personExpenses = []Category{
	{Label: "housingCosts", Items: []SubCategory{
		{Label: "Rent or mortgage", Value: "rentOrMortgage"},
		{Label: "Utilities", Value: "utilities"},
		{Label: "Home insurance", Value: "homeInsurance"},
		{Label: "Condominium fees", Value: "condominiumFees"},
	}},
	{Label: "livingExpenses", Items: []SubCategory{
		{Label: "Food and groceries", Value: "foodAndGroceries"},
		{Label: "Clothing", Value: "clothing"},
		{Label: "Transport", Value: "transport"},
		{Label: "Leisure", Value: "leisure"},
	}},
	{Label: "taxes", Items: []SubCategory{
		{Label: "Income tax", Value: "incomeTax"},
		{Label: "Property tax", Value: "propertyTax"},
		{Label: "Residence tax", Value: "residenceTax"},
		{Label: "Real estate wealth tax", Value: SubLabelRealEstateWealthTax},
	}},
	{Label: "financialExpenses", Items: []SubCategory{
		{Label: "Loan repayments", Value: "loanRepayments"},
		{Label: "Consumer credit", Value: "consumerCredit"},
		{Label: "Insurance premiums", Value: "insurancePremiums"},
	}},
	{Label: "familyExpenses", Items: []SubCategory{
		{Label: "Childcare", Value: "childcare"},
		{Label: "School fees", Value: "schoolFees"},
		{Label: "Alimony paid", Value: "alimonyPaid"},
	}},
}

var companyIncomes = []Category{
	{Label: "operatingProducts", Items: []SubCategory{
		{Label: "Sales of goods", Value: "salesOfGoods"},
		{Label: "Services rendered", Value: "servicesRendered"},
		{Label: "Operating subsidies", Value: "operatingSubsidies"},
	}},
	{Label: "financialProducts", Items: []SubCategory{
		{Label: "Interest received", Value: "interestReceived"},
		{Label: "Exchange gains", Value: "exchangeGains"},
	}},
	{Label: "specialProducts", Items: []SubCategory{
		{Label: "Asset disposal proceeds", Value: "assetDisposalProceeds"},
		{Label: "Extraordinary income", Value: "extraordinaryIncome"},
	}},
}

var companyExpenses = []Category{
	{Label: "operatingCharges", Items: []SubCategory{
		{Label: "Purchases of goods", Value: "purchasesOfGoods"},
		{Label: "External services", Value: "externalServices"},
		{Label: "Staff costs", Value: "staffCosts"},
		{Label: "Taxes and duties", Value: "taxesAndDuties"},
	}},
	{Label: "financialCharges", Items: []SubCategory{
		{Label: "Interest paid", Value: "interestPaid"},
		{Label: "Exchange losses", Value: "exchangeLosses"},
	}},
	{Label: "specialCharges", Items: []SubCategory{
		{Label: "Extraordinary charges", Value: "extraordinaryCharges"},
		{Label: "Asset disposal losses", Value: "assetDisposalLosses"},
	}},
}

type tableKey struct {
	domain    models.BudgetDomain
	direction models.BudgetDirection
}

var tables = map[tableKey][]Category{
	{models.BudgetDomainPerson, models.BudgetDirectionIncomes}:   personIncomes,
	{models.BudgetDomainPerson, models.BudgetDirectionExpenses}:  personExpenses,
	{models.BudgetDomainCompany, models.BudgetDirectionIncomes}:  companyIncomes,
	{models.BudgetDomainCompany, models.BudgetDirectionExpenses}: companyExpenses,
}

// subLabelIndex maps a sub-category value to its owning category and
// direction within a domain. Built once at init; equivalent to scanning
// every category's items on each lookup, with constant-time resolution.
type indexEntry struct {
	category  *Category
	direction models.BudgetDirection
}

var subLabelIndex = map[models.BudgetDomain]map[string]indexEntry{}

func init() {
	for key, categories := range tables {
		byValue := subLabelIndex[key.domain]
		if byValue == nil {
			byValue = map[string]indexEntry{}
			subLabelIndex[key.domain] = byValue
		}
		for i := range categories {
			for _, sub := range categories[i].Items {
				byValue[sub.Value] = indexEntry{category: &categories[i], direction: key.direction}
			}
		}
	}
}

// Categories returns the ordered category table for a domain and direction.
// Unknown combinations return nil.
func Categories(domain models.BudgetDomain, direction models.BudgetDirection) []Category {
	return tables[tableKey{domain, direction}]
}

// FindCategoryBySubLabel resolves a sub-category value to its owning
// category within a domain, searching incomes and expenses. Returns false
// when the value belongs to no category.
func FindCategoryBySubLabel(domain models.BudgetDomain, subLabel string) (*Category, bool) {
	entry, ok := subLabelIndex[domain][subLabel]
	if !ok {
		return nil, false
	}
	return entry.category, true
}

// DirectionOfSubLabel reports whether a sub-category value belongs to the
// income or expense table of a domain.
func DirectionOfSubLabel(domain models.BudgetDomain, subLabel string) (models.BudgetDirection, bool) {
	entry, ok := subLabelIndex[domain][subLabel]
	if !ok {
		return "", false
	}
	return entry.direction, true
}
