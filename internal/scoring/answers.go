// Package scoring converts investor questionnaire answers into per-section
// point totals. Every function is pure and nil-safe: an unanswered field
// contributes zero, and a nil section scores zero.
package scoring

// Discrete choices used across sections. Values mirror the questionnaire
// document persisted for each customer.
const (
	MaritalStatusSingle    = "SINGLE"
	MaritalStatusFreeUnion = "FREE_UNION"
	MaritalStatusMarried   = "MARRIED"
	MaritalStatusDivorced  = "DIVORCED"
	MaritalStatusWidowed   = "WIDOWED"

	ProfessionalStatusPermanentEmployee = "PERMANENT_EMPLOYEE"
	ProfessionalStatusSelfEmployed      = "SELF_EMPLOYED"
	ProfessionalStatusFixedTerm         = "FIXED_TERM"
	ProfessionalStatusRetired           = "RETIRED"
	ProfessionalStatusUnemployed        = "UNEMPLOYED"
	ProfessionalStatusStudent           = "STUDENT"

	LevelHigh   = "HIGH"
	LevelMedium = "MEDIUM"
	LevelLow    = "LOW"
	LevelNone   = "NONE"

	LiquidShareMoreThan50     = "MORE_THAN_50"
	LiquidShareBetween20And50 = "BETWEEN_20_AND_50"
	LiquidShareLessThan20     = "LESS_THAN_20"

	FrequencyRegular    = "REGULAR"
	FrequencyOccasional = "OCCASIONAL"
	FrequencyNever      = "NEVER"

	AnswerYes = "YES"
	AnswerNo  = "NO"

	SustainabilityDefinedPrecisely = "PRECISELY_FOUR_QUESTIONS"
	SustainabilityDefinedBroadly   = "BROADLY"
	SustainabilityNotDefined       = "NOT_DEFINED"

	ESGDimensionEnvironmental = "ENVIRONMENTAL"
	ESGDimensionSocial        = "SOCIAL"
	ESGDimensionGovernance    = "GOVERNANCE"

	MarketDropBuyMore  = "BUY_MORE"
	MarketDropHold     = "HOLD"
	MarketDropSellPart = "SELL_PART"
	MarketDropSellAll  = "SELL_ALL"

	HorizonMoreThan10Years = "MORE_THAN_10_YEARS"
	HorizonFiveToTenYears  = "FIVE_TO_TEN_YEARS"
	HorizonTwoToFiveYears  = "TWO_TO_FIVE_YEARS"
	HorizonLessThan2Years  = "LESS_THAN_2_YEARS"

	RiskRewardHigh       = "HIGH"
	RiskRewardBalanced   = "BALANCED"
	RiskRewardLow        = "LOW"
	RiskRewardGuaranteed = "GUARANTEED"
)

// PersonalSituation covers marital status and dependents.
type PersonalSituation struct {
	MaritalStatus      *string `json:"maritalStatus"`
	NumberOfDependents *int    `json:"numberOfDependents"`
	Score              float64 `json:"score"`
}

// ProfessionalSituation covers employment status and proximity to finance.
type ProfessionalSituation struct {
	Status            *string `json:"status"`
	WorksInFinance    *bool   `json:"worksInFinance"`
	YearsToRetirement *int    `json:"yearsToRetirement"`
	Score             float64 `json:"score"`
}

// FinancialSituation covers savings capacity and asset liquidity.
type FinancialSituation struct {
	SavingsCapacity     *string `json:"savingsCapacity"`
	ShareOfLiquidAssets *string `json:"shareOfLiquidAssets"`
	HasEmergencyFund    *bool   `json:"hasEmergencyFund"`
	Score               float64 `json:"score"`
}

// FinancialKnowledgeAndExperience covers instruments traded and frequency.
type FinancialKnowledgeAndExperience struct {
	InstrumentsTraded        []string `json:"instrumentsTraded"`
	TradingFrequency         *string  `json:"tradingFrequency"`
	HeldLossMakingInvestment *bool    `json:"heldLossMakingInvestment"`
	Score                    float64  `json:"score"`
}

// SustainableInvestment covers ESG preferences.
type SustainableInvestment struct {
	IncludeEnvironmentalSocialGovernanceDimension *string  `json:"includeEnvironmentalSocialGovernanceDimension"`
	DefineSustainabilityComponent                 *string  `json:"defineSustainabilityComponent"`
	PreferredESGDimension                         *string  `json:"preferredESGDimension"`
	ExcludeNegativeActivities                     *bool    `json:"excludeNegativeActivities"`
	Issues                                        []string `json:"issues"`
	Score                                         float64  `json:"score"`
}

// AttitudeTowardsRisk covers loss tolerance and horizon.
type AttitudeTowardsRisk struct {
	ReactionToMarketDrop *string `json:"reactionToMarketDrop"`
	InvestmentHorizon    *string `json:"investmentHorizon"`
	PreferredRiskReward  *string `json:"preferredRiskReward"`
	Score                float64 `json:"score"`
}

// Answers is the full questionnaire document. Sections are pointers so a
// partially filled form round-trips without inventing empty sections.
type Answers struct {
	PersonalSituation               *PersonalSituation               `json:"personalSituation"`
	ProfessionalSituation           *ProfessionalSituation           `json:"professionalSituation"`
	FinancialSituation              *FinancialSituation              `json:"financialSituation"`
	FinancialKnowledgeAndExperience *FinancialKnowledgeAndExperience `json:"financialKnowledgeAndExperience"`
	SustainableInvestment           *SustainableInvestment           `json:"sustainableInvestment"`
	AttitudeTowardsRisk             *AttitudeTowardsRisk             `json:"attitudeTowardsRisk"`
}
