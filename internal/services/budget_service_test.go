package services

import (
	"testing"
	"time"

	"patrimoine/internal/models"
	"patrimoine/internal/taxonomy"
	"patrimoine/internal/testutil"
)

func TestGetBudgetOverview(t *testing.T) {
	t.Run("empty_scope", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		overview, err := svc.GetBudgetOverview(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson)
		testutil.AssertNoError(t, err)

		if len(overview.Items) != 0 {
			t.Errorf("expected no items, got %d", len(overview.Items))
		}
		if len(overview.Incomes.Groups) != 0 || len(overview.Expenses.Groups) != 0 {
			t.Error("expected empty income and expense groups")
		}
		if overview.AvailableLiquidity.Value != 10000 {
			t.Errorf("expected available liquidity 10000, got %f", overview.AvailableLiquidity.Value)
		}
	})

	t.Run("groups_incomes_and_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.CreateOrUpdateBudgetItem(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson,
			BudgetItemInput{Name: "wagesAndSalaries", Amount: models.Amount{Value: 3000}}, nil)
		testutil.AssertNoError(t, err)
		_, err = svc.CreateOrUpdateBudgetItem(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson,
			BudgetItemInput{Name: "rentOrMortgage", Amount: models.Amount{Value: 1200}}, nil)
		testutil.AssertNoError(t, err)

		overview, err := svc.GetBudgetOverview(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson)
		testutil.AssertNoError(t, err)

		if len(overview.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(overview.Items))
		}
		if overview.Incomes.TotalAmount.Value != 3000 {
			t.Errorf("expected income total 3000, got %f", overview.Incomes.TotalAmount.Value)
		}
		if overview.Expenses.TotalAmount.Value != 1200 {
			t.Errorf("expected expense total 1200, got %f", overview.Expenses.TotalAmount.Value)
		}
		if len(overview.Incomes.Groups) != 1 || overview.Incomes.Groups[0].Label != "employmentIncome" {
			t.Error("expected a single employmentIncome group")
		}
	})

	t.Run("domain_scoped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.CreateOrUpdateBudgetItem(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson,
			BudgetItemInput{Name: "rentOrMortgage", Amount: models.Amount{Value: 1200}}, nil)
		testutil.AssertNoError(t, err)

		overview, err := svc.GetBudgetOverview(advisor.ID, customer.ID, company.ID, models.BudgetDomainCompany)
		testutil.AssertNoError(t, err)

		if len(overview.Items) != 0 {
			t.Errorf("expected no company-domain items, got %d", len(overview.Items))
		}
	})

	t.Run("wrong_advisor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor1 := testutil.CreateTestAdvisor(t, db)
		advisor2 := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor1.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.GetBudgetOverview(advisor2.ID, customer.ID, company.ID, models.BudgetDomainPerson)
		testutil.AssertAppError(t, err, "CUSTOMER_NOT_FOUND")
	})
}

func TestCreateOrUpdateBudgetItem(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		created, err := svc.CreateOrUpdateBudgetItem(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson,
			BudgetItemInput{Name: "wagesAndSalaries", Amount: models.Amount{Value: 3000}}, nil)
		testutil.AssertNoError(t, err)

		if created.Name != "wagesAndSalaries" {
			t.Errorf("expected name wagesAndSalaries, got %s", created.Name)
		}
		if created.Type != "employmentIncome" {
			t.Errorf("expected type resolved to employmentIncome, got %s", created.Type)
		}
		if created.Libelle != nil {
			t.Errorf("expected nil libelle, got %v", *created.Libelle)
		}
	})

	t.Run("defaults_instrument", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.CreateOrUpdateBudgetItem(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson,
			BudgetItemInput{Name: "utilities", Amount: models.Amount{Value: 150}}, nil)
		testutil.AssertNoError(t, err)

		var item models.BudgetItem
		if err := db.Where("customer_id = ? AND name = ?", customer.ID, "utilities").First(&item).Error; err != nil {
			t.Fatalf("failed to fetch item: %v", err)
		}
		if item.Amount.Instrument != models.DefaultInstrument {
			t.Errorf("expected instrument %s, got %s", models.DefaultInstrument, item.Amount.Instrument)
		}
	})

	t.Run("unknown_sub_category_aborts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.CreateOrUpdateBudgetItem(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson,
			BudgetItemInput{Name: "cryptoWinnings", Amount: models.Amount{Value: 999}}, nil)
		testutil.AssertAppError(t, err, "UNKNOWN_SUBCATEGORY")

		// Nothing may reach the store.
		var count int64
		db.Model(&models.BudgetItem{}).Where("customer_id = ?", customer.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected no persisted items after rejected name, got %d", count)
		}
	})

	t.Run("category_mismatch", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.CreateOrUpdateBudgetItem(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson,
			BudgetItemInput{Type: "housingCosts", Name: "wagesAndSalaries", Amount: models.Amount{Value: 100}}, nil)
		testutil.AssertAppError(t, err, "CATEGORY_MISMATCH")
	})

	t.Run("overwrite_with_budget_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)
		item := testutil.CreateTestBudgetItem(t, db, customer.ID, company.ID)

		libelle := "Paris apartment"
		_, err := svc.CreateOrUpdateBudgetItem(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson,
			BudgetItemInput{Name: "rentOrMortgage", Libelle: &libelle, Amount: models.Amount{Value: 1500}}, &item.ID)
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.BudgetItem{}).Where("customer_id = ?", customer.ID).Count(&count)
		if count != 1 {
			t.Fatalf("expected 1 item after overwrite, got %d", count)
		}

		var updated models.BudgetItem
		if err := db.First(&updated, "id = ?", item.ID).Error; err != nil {
			t.Fatalf("failed to fetch updated item: %v", err)
		}
		if updated.Amount.Value != 1500 {
			t.Errorf("expected amount 1500, got %f", updated.Amount.Value)
		}
		if updated.Libelle == nil || *updated.Libelle != "Paris apartment" {
			t.Error("expected libelle to be overwritten")
		}
	})

	t.Run("overwrite_unknown_budget_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		missing := "00000000-0000-0000-0000-000000000000"
		_, err := svc.CreateOrUpdateBudgetItem(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson,
			BudgetItemInput{Name: "rentOrMortgage", Amount: models.Amount{Value: 100}}, &missing)
		testutil.AssertAppError(t, err, "BUDGET_ITEM_NOT_FOUND")
	})

	t.Run("wealth_tax_syncs_fiscality", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.CreateOrUpdateBudgetItem(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson,
			BudgetItemInput{Name: taxonomy.SubLabelRealEstateWealthTax, Amount: models.Amount{Value: 5000}}, nil)
		testutil.AssertNoError(t, err)

		var fiscality models.Fiscality
		err = db.Where("customer_id = ? AND company_id = ? AND year = ?",
			customer.ID, company.ID, time.Now().Year()).First(&fiscality).Error
		if err != nil {
			t.Fatalf("expected fiscality record to be created: %v", err)
		}
		if !fiscality.SubjectRealEstateWealthTax {
			t.Error("expected subjectRealEstateWealthTax true")
		}
		if fiscality.RealEstateWealthPayableTax != 5000 {
			t.Errorf("expected payable tax 5000, got %f", fiscality.RealEstateWealthPayableTax)
		}
	})

	t.Run("other_names_do_not_touch_fiscality", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.CreateOrUpdateBudgetItem(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson,
			BudgetItemInput{Name: "incomeTax", Amount: models.Amount{Value: 2000}}, nil)
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Fiscality{}).Where("customer_id = ?", customer.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected no fiscality record, got %d", count)
		}
	})
}

func TestDeleteBudgetItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)
		item := testutil.CreateTestBudgetItem(t, db, customer.ID, company.ID)

		deleted, err := svc.DeleteBudgetItem(advisor.ID, customer.ID, company.ID, item.ID)
		testutil.AssertNoError(t, err)
		if !deleted {
			t.Error("expected deleted true")
		}

		var count int64
		db.Model(&models.BudgetItem{}).Where("id = ?", item.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected item gone from default scope, got %d", count)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewFiscalityService(db))
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.DeleteBudgetItem(advisor.ID, customer.ID, company.ID, "00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "BUDGET_ITEM_NOT_FOUND")
	})

	t.Run("wealth_tax_clears_fiscality", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		fiscalitySvc := NewFiscalityService(db)
		svc := NewBudgetService(db, fiscalitySvc)
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.CreateOrUpdateBudgetItem(advisor.ID, customer.ID, company.ID, models.BudgetDomainPerson,
			BudgetItemInput{Name: taxonomy.SubLabelRealEstateWealthTax, Amount: models.Amount{Value: 5000}}, nil)
		testutil.AssertNoError(t, err)

		var item models.BudgetItem
		if err := db.Where("customer_id = ? AND name = ?",
			customer.ID, taxonomy.SubLabelRealEstateWealthTax).First(&item).Error; err != nil {
			t.Fatalf("failed to fetch wealth tax item: %v", err)
		}

		deleted, err := svc.DeleteBudgetItem(advisor.ID, customer.ID, company.ID, item.ID)
		testutil.AssertNoError(t, err)
		if !deleted {
			t.Fatal("expected deleted true")
		}

		var fiscality models.Fiscality
		err = db.Where("customer_id = ? AND company_id = ? AND year = ?",
			customer.ID, company.ID, time.Now().Year()).First(&fiscality).Error
		if err != nil {
			t.Fatalf("expected fiscality record to remain: %v", err)
		}
		if fiscality.SubjectRealEstateWealthTax {
			t.Error("expected subjectRealEstateWealthTax cleared")
		}
		if fiscality.RealEstateWealthPayableTax != 0 {
			t.Errorf("expected payable tax 0, got %f", fiscality.RealEstateWealthPayableTax)
		}
	})
}
