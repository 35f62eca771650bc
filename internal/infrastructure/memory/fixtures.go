package memory

import (
	"time"

	"github.com/beneficios/portal-api/internal/core/domain"
)

// FixtureStore serves the demonstration benefit and message records shown on
// the collaborator views. Read-only seed data, not a persistence layer.
type FixtureStore struct {
	benefits []domain.Benefit
	messages []domain.Message
}

func NewFixtureStore() *FixtureStore {
	sent := time.Date(2026, time.August, 10, 9, 30, 0, 0, time.UTC)
	return &FixtureStore{
		benefits: []domain.Benefit{
			{ID: "b1", UserID: "1", Name: "Vale Refeição", Category: domain.CategoryFood, Status: domain.BenefitActive, Value: "R$ 880,00", Description: "Crédito mensal para refeições"},
			{ID: "b2", UserID: "1", Name: "Plano de Saúde", Category: domain.CategoryHealth, Status: domain.BenefitActive, Value: "R$ 650,00", Description: "Cobertura nacional, plano família"},
			{ID: "b3", UserID: "2", Name: "Vale Refeição", Category: domain.CategoryFood, Status: domain.BenefitActive, Value: "R$ 880,00", Description: "Crédito mensal para refeições"},
			{ID: "b4", UserID: "2", Name: "Auxílio Academia", Category: domain.CategoryOther, Status: domain.BenefitSuspended, Value: "R$ 120,00", Description: "Reembolso parcial de academia"},
			{ID: "b5", UserID: "3", Name: "Plano de Saúde", Category: domain.CategoryHealth, Status: domain.BenefitActive, Value: "R$ 650,00", Description: "Cobertura nacional, plano família"},
		},
		messages: []domain.Message{
			{ID: "m1", UserID: "1", Title: "Segunda via do cartão", Content: "Perdi meu cartão de benefícios, como solicito outro?", SentAt: sent, Status: domain.MessageAnswered},
			{ID: "m2", UserID: "1", Title: "Inclusão de dependente", Content: "Gostaria de incluir minha filha no plano de saúde.", SentAt: sent.AddDate(0, 0, 3), Status: domain.MessageInReview},
			{ID: "m3", UserID: "2", Title: "Nota fiscal academia", Content: "Envio da nota fiscal de julho para reembolso.", SentAt: sent.AddDate(0, 0, 5), Status: domain.MessagePending},
		},
	}
}

// BenefitsFor returns the benefits granted to the given account.
func (f *FixtureStore) BenefitsFor(userID string) []domain.Benefit {
	var out []domain.Benefit
	for _, b := range f.benefits {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// MessagesFor returns the messages sent by the given account.
func (f *FixtureStore) MessagesFor(userID string) []domain.Message {
	var out []domain.Message
	for _, m := range f.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out
}
