package aggregation

import (
	"testing"

	"patrimoine/internal/models"
	"patrimoine/internal/taxonomy"
)

func item(categoryType, name string, value float64) models.BudgetItem {
	return models.BudgetItem{
		Type:   categoryType,
		Name:   name,
		Amount: models.Amount{Value: value, Instrument: models.DefaultInstrument},
	}
}

func personExpenseCategories() []taxonomy.Category {
	return taxonomy.Categories(models.BudgetDomainPerson, models.BudgetDirectionExpenses)
}

func TestAggregate(t *testing.T) {
	t.Run("empty_items", func(t *testing.T) {
		result := Aggregate(personExpenseCategories(), nil)

		if len(result.Groups) != 0 {
			t.Errorf("expected no groups, got %d", len(result.Groups))
		}
		if result.TotalAmount.Value != 0 {
			t.Errorf("expected zero total, got %f", result.TotalAmount.Value)
		}
		if result.TotalAmount.Instrument != models.DefaultInstrument {
			t.Errorf("expected %s instrument, got %s", models.DefaultInstrument, result.TotalAmount.Instrument)
		}
	})

	t.Run("single_item", func(t *testing.T) {
		items := []models.BudgetItem{item("housingCosts", "rentOrMortgage", 1200)}
		result := Aggregate(personExpenseCategories(), items)

		if len(result.Groups) != 1 {
			t.Fatalf("expected 1 group, got %d", len(result.Groups))
		}
		group := result.Groups[0]
		if group.Label != "housingCosts" {
			t.Errorf("expected group housingCosts, got %s", group.Label)
		}
		if len(group.Items) != 1 {
			t.Errorf("expected 1 item in group, got %d", len(group.Items))
		}
		if group.Amount.Value != 1200 {
			t.Errorf("expected group amount 1200, got %f", group.Amount.Value)
		}
		if result.TotalAmount.Value != 1200 {
			t.Errorf("expected total 1200, got %f", result.TotalAmount.Value)
		}
	})

	t.Run("groups_by_category", func(t *testing.T) {
		items := []models.BudgetItem{
			item("housingCosts", "rentOrMortgage", 1200),
			item("housingCosts", "utilities", 150),
			item("taxes", "incomeTax", 800),
		}
		result := Aggregate(personExpenseCategories(), items)

		if len(result.Groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(result.Groups))
		}
		if result.Groups[0].Label != "housingCosts" || result.Groups[0].Amount.Value != 1350 {
			t.Errorf("expected housingCosts with 1350, got %s with %f",
				result.Groups[0].Label, result.Groups[0].Amount.Value)
		}
		if result.Groups[1].Label != "taxes" || result.Groups[1].Amount.Value != 800 {
			t.Errorf("expected taxes with 800, got %s with %f",
				result.Groups[1].Label, result.Groups[1].Amount.Value)
		}
		if result.TotalAmount.Value != 2150 {
			t.Errorf("expected total 2150, got %f", result.TotalAmount.Value)
		}
	})

	t.Run("conservation", func(t *testing.T) {
		// When every item name belongs to the table, the grand total must
		// equal the plain sum over the items.
		items := []models.BudgetItem{
			item("housingCosts", "rentOrMortgage", 1200),
			item("livingExpenses", "foodAndGroceries", 400.50),
			item("taxes", "propertyTax", 900.25),
			item("familyExpenses", "childcare", 300),
		}
		var sum float64
		for _, it := range items {
			sum += it.Amount.Value
		}

		result := Aggregate(personExpenseCategories(), items)
		if result.TotalAmount.Value != sum {
			t.Errorf("expected total %f, got %f", sum, result.TotalAmount.Value)
		}
	})

	t.Run("unmatched_name_excluded", func(t *testing.T) {
		items := []models.BudgetItem{
			item("housingCosts", "rentOrMortgage", 1000),
			item("housingCosts", "notARealSubCategory", 500),
		}
		result := Aggregate(personExpenseCategories(), items)

		if len(result.Groups) != 1 {
			t.Fatalf("expected 1 group, got %d", len(result.Groups))
		}
		if len(result.Groups[0].Items) != 1 {
			t.Errorf("expected 1 grouped item, got %d", len(result.Groups[0].Items))
		}
		if result.TotalAmount.Value != 1000 {
			t.Errorf("expected total 1000 (unmatched excluded), got %f", result.TotalAmount.Value)
		}
	})

	t.Run("category_without_items_dropped", func(t *testing.T) {
		items := []models.BudgetItem{item("taxes", "residenceTax", 200)}
		result := Aggregate(personExpenseCategories(), items)

		for _, group := range result.Groups {
			if group.Label != "taxes" {
				t.Errorf("unexpected group %s for single taxes item", group.Label)
			}
		}
	})

	t.Run("wrong_direction_table_yields_nothing", func(t *testing.T) {
		// An expense item aggregated against the income table matches no
		// category and no sub value.
		items := []models.BudgetItem{item("housingCosts", "rentOrMortgage", 1200)}
		incomeTable := taxonomy.Categories(models.BudgetDomainPerson, models.BudgetDirectionIncomes)
		result := Aggregate(incomeTable, items)

		if len(result.Groups) != 0 {
			t.Errorf("expected no groups, got %d", len(result.Groups))
		}
		if result.TotalAmount.Value != 0 {
			t.Errorf("expected zero total, got %f", result.TotalAmount.Value)
		}
	})

	t.Run("pure_and_repeatable", func(t *testing.T) {
		items := []models.BudgetItem{
			item("employmentIncome", "wagesAndSalaries", 3000),
			item("investmentIncome", "dividends", 250),
		}
		incomeTable := taxonomy.Categories(models.BudgetDomainPerson, models.BudgetDirectionIncomes)

		first := Aggregate(incomeTable, items)
		second := Aggregate(incomeTable, items)

		if first.TotalAmount.Value != second.TotalAmount.Value {
			t.Errorf("expected identical totals, got %f then %f",
				first.TotalAmount.Value, second.TotalAmount.Value)
		}
		if len(first.Groups) != len(second.Groups) {
			t.Errorf("expected identical group counts, got %d then %d",
				len(first.Groups), len(second.Groups))
		}
	})

	t.Run("duplicate_name_counted_twice", func(t *testing.T) {
		items := []models.BudgetItem{
			item("housingCosts", "utilities", 100),
			item("housingCosts", "utilities", 80),
		}
		result := Aggregate(personExpenseCategories(), items)

		if len(result.Groups) != 1 {
			t.Fatalf("expected 1 group, got %d", len(result.Groups))
		}
		if result.Groups[0].Amount.Value != 180 {
			t.Errorf("expected both entries summed to 180, got %f", result.Groups[0].Amount.Value)
		}
	})
}
