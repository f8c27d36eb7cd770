package scoring

// Point tables. Marital-status and dependents points decrease as legal and
// financial entanglement grows. A historical fixture asserted 10 for
// SINGLE with no dependents; the table below (3+4=7) is the authoritative
// behavior and the fixture is treated as stale.
var maritalStatusPoints = map[string]float64{
	MaritalStatusSingle:    3,
	MaritalStatusFreeUnion: 2,
	MaritalStatusMarried:   1,
	MaritalStatusDivorced:  0,
	MaritalStatusWidowed:   0,
}

var dependentsPoints = []float64{4, 3, 2, 1}

var professionalStatusPoints = map[string]float64{
	ProfessionalStatusPermanentEmployee: 3,
	ProfessionalStatusSelfEmployed:      2,
	ProfessionalStatusFixedTerm:         1,
	ProfessionalStatusRetired:           1,
	ProfessionalStatusUnemployed:        0,
	ProfessionalStatusStudent:           0,
}

var savingsCapacityPoints = map[string]float64{
	LevelHigh:   3,
	LevelMedium: 2,
	LevelLow:    1,
	LevelNone:   0,
}

var liquidSharePoints = map[string]float64{
	LiquidShareMoreThan50:     3,
	LiquidShareBetween20And50: 2,
	LiquidShareLessThan20:     1,
	LevelNone:                 0,
}

var tradingFrequencyPoints = map[string]float64{
	FrequencyRegular:    2,
	FrequencyOccasional: 1,
	FrequencyNever:      0,
}

var marketDropPoints = map[string]float64{
	MarketDropBuyMore:  3,
	MarketDropHold:     2,
	MarketDropSellPart: 1,
	MarketDropSellAll:  0,
}

var horizonPoints = map[string]float64{
	HorizonMoreThan10Years: 3,
	HorizonFiveToTenYears:  2,
	HorizonTwoToFiveYears:  1,
	HorizonLessThan2Years:  0,
}

var riskRewardPoints = map[string]float64{
	RiskRewardHigh:       3,
	RiskRewardBalanced:   2,
	RiskRewardLow:        1,
	RiskRewardGuaranteed: 0,
}

// Per-instrument contribution for the knowledge section.
const instrumentPoints = 0.5

// Per-issue contribution for the sustainability section.
const issuePoints = 0.6

func choicePoints(table map[string]float64, choice *string) float64 {
	if choice == nil {
		return 0
	}
	return table[*choice]
}

// ScorePersonalSituation returns marital-status points plus dependents
// points. Four or more dependents score zero.
func ScorePersonalSituation(s *PersonalSituation) float64 {
	if s == nil {
		return 0
	}
	score := choicePoints(maritalStatusPoints, s.MaritalStatus)
	if s.NumberOfDependents != nil {
		n := *s.NumberOfDependents
		if n >= 0 && n < len(dependentsPoints) {
			score += dependentsPoints[n]
		}
	}
	return score
}

// ScoreProfessionalSituation scores employment stability, proximity to the
// finance sector, and distance from retirement.
func ScoreProfessionalSituation(s *ProfessionalSituation) float64 {
	if s == nil {
		return 0
	}
	score := choicePoints(professionalStatusPoints, s.Status)
	if s.WorksInFinance != nil && *s.WorksInFinance {
		score += 2
	}
	if s.YearsToRetirement != nil {
		switch years := *s.YearsToRetirement; {
		case years > 15:
			score += 2
		case years > 5:
			score += 1
		}
	}
	return score
}

// ScoreFinancialSituation scores savings capacity and asset liquidity.
func ScoreFinancialSituation(s *FinancialSituation) float64 {
	if s == nil {
		return 0
	}
	score := choicePoints(savingsCapacityPoints, s.SavingsCapacity)
	score += choicePoints(liquidSharePoints, s.ShareOfLiquidAssets)
	if s.HasEmergencyFund != nil && *s.HasEmergencyFund {
		score += 1
	}
	return score
}

// ScoreFinancialKnowledgeAndExperience scores instruments traded, trading
// frequency, and whether the customer has held a loss-making investment.
func ScoreFinancialKnowledgeAndExperience(s *FinancialKnowledgeAndExperience) float64 {
	if s == nil {
		return 0
	}
	score := float64(len(s.InstrumentsTraded)) * instrumentPoints
	score += choicePoints(tradingFrequencyPoints, s.TradingFrequency)
	if s.HeldLossMakingInvestment != nil && *s.HeldLossMakingInvestment {
		score += 1
	}
	return score
}

// ScoreSustainableInvestment scores ESG preferences. Answering YES to the
// ESG question and defining the sustainability component precisely is worth
// 2 points as a pair; a preferred ESG dimension combined with excluding
// negative activities is worth 1.5; each selected issue adds 0.6.
func ScoreSustainableInvestment(s *SustainableInvestment) float64 {
	if s == nil {
		return 0
	}
	var score float64
	if s.IncludeEnvironmentalSocialGovernanceDimension != nil &&
		*s.IncludeEnvironmentalSocialGovernanceDimension == AnswerYes &&
		s.DefineSustainabilityComponent != nil &&
		*s.DefineSustainabilityComponent == SustainabilityDefinedPrecisely {
		score += 2
	}
	if s.PreferredESGDimension != nil &&
		s.ExcludeNegativeActivities != nil && *s.ExcludeNegativeActivities {
		score += 1.5
	}
	score += float64(len(s.Issues)) * issuePoints
	return score
}

// ScoreAttitudeTowardsRisk scores loss tolerance, horizon, and preferred
// risk/reward trade-off.
func ScoreAttitudeTowardsRisk(s *AttitudeTowardsRisk) float64 {
	if s == nil {
		return 0
	}
	score := choicePoints(marketDropPoints, s.ReactionToMarketDrop)
	score += choicePoints(horizonPoints, s.InvestmentHorizon)
	score += choicePoints(riskRewardPoints, s.PreferredRiskReward)
	return score
}

// ScoreAll computes every section score in place. Sections left nil stay
// nil; present sections get their Score field overwritten. No cross-section
// total is computed.
func ScoreAll(a *Answers) {
	if a == nil {
		return
	}
	if a.PersonalSituation != nil {
		a.PersonalSituation.Score = ScorePersonalSituation(a.PersonalSituation)
	}
	if a.ProfessionalSituation != nil {
		a.ProfessionalSituation.Score = ScoreProfessionalSituation(a.ProfessionalSituation)
	}
	if a.FinancialSituation != nil {
		a.FinancialSituation.Score = ScoreFinancialSituation(a.FinancialSituation)
	}
	if a.FinancialKnowledgeAndExperience != nil {
		a.FinancialKnowledgeAndExperience.Score = ScoreFinancialKnowledgeAndExperience(a.FinancialKnowledgeAndExperience)
	}
	if a.SustainableInvestment != nil {
		a.SustainableInvestment.Score = ScoreSustainableInvestment(a.SustainableInvestment)
	}
	if a.AttitudeTowardsRisk != nil {
		a.AttitudeTowardsRisk.Score = ScoreAttitudeTowardsRisk(a.AttitudeTowardsRisk)
	}
}
