package services

import (
	"testing"

	"patrimoine/internal/models"
	"patrimoine/internal/scoring"
	"patrimoine/internal/testutil"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestGetProfile(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestorProfileService(db)
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.GetProfile(advisor.ID, customer.ID)
		testutil.AssertAppError(t, err, "INVESTOR_PROFILE_NOT_FOUND")
	})

	t.Run("wrong_advisor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestorProfileService(db)
		advisor1 := testutil.CreateTestAdvisor(t, db)
		advisor2 := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor1.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.GetProfile(advisor2.ID, customer.ID)
		testutil.AssertAppError(t, err, "CUSTOMER_NOT_FOUND")
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("creates_and_scores", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestorProfileService(db)
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		answers := scoring.Answers{
			PersonalSituation: &scoring.PersonalSituation{
				MaritalStatus:      strPtr(scoring.MaritalStatusSingle),
				NumberOfDependents: intPtr(0),
			},
		}
		profile, err := svc.UpdateProfile(advisor.ID, customer.ID, answers)
		testutil.AssertNoError(t, err)

		if profile.PersonalSituation == nil {
			t.Fatal("expected personal situation to be persisted")
		}
		if profile.PersonalSituation.Score != 7 {
			t.Errorf("expected score 7, got %f", profile.PersonalSituation.Score)
		}
		if profile.AttitudeTowardsRisk != nil {
			t.Error("expected absent sections to stay nil")
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestorProfileService(db)
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		answers := scoring.Answers{
			SustainableInvestment: &scoring.SustainableInvestment{
				IncludeEnvironmentalSocialGovernanceDimension: strPtr(scoring.AnswerYes),
				DefineSustainabilityComponent:                 strPtr(scoring.SustainabilityDefinedPrecisely),
				Issues:                                        []string{"CLIMATE"},
			},
		}
		_, err := svc.UpdateProfile(advisor.ID, customer.ID, answers)
		testutil.AssertNoError(t, err)

		profile, err := svc.GetProfile(advisor.ID, customer.ID)
		testutil.AssertNoError(t, err)

		if profile.SustainableInvestment == nil {
			t.Fatal("expected sustainable investment section")
		}
		if profile.SustainableInvestment.Score != 2.6 {
			t.Errorf("expected score 2.6, got %f", profile.SustainableInvestment.Score)
		}
		if len(profile.SustainableInvestment.Issues) != 1 {
			t.Errorf("expected 1 issue, got %d", len(profile.SustainableInvestment.Issues))
		}
	})

	t.Run("whole_document_overwrite", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestorProfileService(db)
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		_, err := svc.UpdateProfile(advisor.ID, customer.ID, scoring.Answers{
			PersonalSituation: &scoring.PersonalSituation{MaritalStatus: strPtr(scoring.MaritalStatusMarried)},
		})
		testutil.AssertNoError(t, err)

		// A second submission without the personal section drops it.
		_, err = svc.UpdateProfile(advisor.ID, customer.ID, scoring.Answers{
			AttitudeTowardsRisk: &scoring.AttitudeTowardsRisk{ReactionToMarketDrop: strPtr(scoring.MarketDropHold)},
		})
		testutil.AssertNoError(t, err)

		profile, err := svc.GetProfile(advisor.ID, customer.ID)
		testutil.AssertNoError(t, err)

		if profile.PersonalSituation != nil {
			t.Error("expected personal section dropped by whole-document overwrite")
		}
		if profile.AttitudeTowardsRisk == nil || profile.AttitudeTowardsRisk.Score != 2 {
			t.Error("expected risk section with score 2")
		}
	})

	t.Run("single_record_per_customer", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestorProfileService(db)
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		for i := 0; i < 3; i++ {
			_, err := svc.UpdateProfile(advisor.ID, customer.ID, scoring.Answers{
				PersonalSituation: &scoring.PersonalSituation{NumberOfDependents: intPtr(i)},
			})
			testutil.AssertNoError(t, err)
		}

		var count int64
		db.Model(&models.InvestorProfile{}).Where("customer_id = ?", customer.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 profile record, got %d", count)
		}
	})

	t.Run("submitted_score_recomputed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestorProfileService(db)
		advisor := testutil.CreateTestAdvisor(t, db)
		company := testutil.CreateTestCompany(t, db, advisor.ID)
		customer := testutil.CreateTestCustomer(t, db, company.ID)

		profile, err := svc.UpdateProfile(advisor.ID, customer.ID, scoring.Answers{
			PersonalSituation: &scoring.PersonalSituation{
				MaritalStatus:      strPtr(scoring.MaritalStatusSingle),
				NumberOfDependents: intPtr(0),
				Score:              10,
			},
		})
		testutil.AssertNoError(t, err)

		if profile.PersonalSituation.Score != 7 {
			t.Errorf("expected submitted score discarded and recomputed to 7, got %f",
				profile.PersonalSituation.Score)
		}
	})
}
