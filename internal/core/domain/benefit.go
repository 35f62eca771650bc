package domain

// BenefitCategory classifies a benefit for display grouping.
type BenefitCategory string

const (
	CategoryFood   BenefitCategory = "ALIMENTACAO"
	CategoryHealth BenefitCategory = "SAUDE"
	CategoryOther  BenefitCategory = "OUTROS"
)

// BenefitStatus represents whether a benefit is currently granted.
type BenefitStatus string

const (
	BenefitActive    BenefitStatus = "ATIVO"
	BenefitSuspended BenefitStatus = "SUSPENSO"
)

// Benefit is a benefit granted to a single collaborator.
type Benefit struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Name        string          `json:"name"`
	Category    BenefitCategory `json:"category"`
	Status      BenefitStatus   `json:"status"`
	Value       string          `json:"value"`
	Description string          `json:"description"`
}
