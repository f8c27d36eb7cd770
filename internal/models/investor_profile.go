package models

import "patrimoine/internal/scoring"

// InvestorProfile persists a customer's questionnaire document as a whole.
// Section scores are computed by the scoring engine before every save; there
// is no partial-field persistence.
type InvestorProfile struct {
	Base
	CustomerID string `gorm:"type:uuid;not null;uniqueIndex" json:"customer_id"`

	PersonalSituation               *scoring.PersonalSituation               `gorm:"serializer:json" json:"personalSituation"`
	ProfessionalSituation           *scoring.ProfessionalSituation           `gorm:"serializer:json" json:"professionalSituation"`
	FinancialSituation              *scoring.FinancialSituation              `gorm:"serializer:json" json:"financialSituation"`
	FinancialKnowledgeAndExperience *scoring.FinancialKnowledgeAndExperience `gorm:"serializer:json" json:"financialKnowledgeAndExperience"`
	SustainableInvestment           *scoring.SustainableInvestment           `gorm:"serializer:json" json:"sustainableInvestment"`
	AttitudeTowardsRisk             *scoring.AttitudeTowardsRisk             `gorm:"serializer:json" json:"attitudeTowardsRisk"`
}

// Answers returns the questionnaire document view of the profile.
func (p *InvestorProfile) Answers() scoring.Answers {
	return scoring.Answers{
		PersonalSituation:               p.PersonalSituation,
		ProfessionalSituation:           p.ProfessionalSituation,
		FinancialSituation:              p.FinancialSituation,
		FinancialKnowledgeAndExperience: p.FinancialKnowledgeAndExperience,
		SustainableInvestment:           p.SustainableInvestment,
		AttitudeTowardsRisk:             p.AttitudeTowardsRisk,
	}
}

// SetAnswers replaces the questionnaire document on the profile.
func (p *InvestorProfile) SetAnswers(a scoring.Answers) {
	p.PersonalSituation = a.PersonalSituation
	p.ProfessionalSituation = a.ProfessionalSituation
	p.FinancialSituation = a.FinancialSituation
	p.FinancialKnowledgeAndExperience = a.FinancialKnowledgeAndExperience
	p.SustainableInvestment = a.SustainableInvestment
	p.AttitudeTowardsRisk = a.AttitudeTowardsRisk
}
