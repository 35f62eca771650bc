package memory

import "github.com/beneficios/portal-api/internal/core/domain"

// SeedUsers returns the fixture identities the portal starts with.
// Demonstration credentials: ana.souza/colab123, bruno.lima/gestor123,
// carla.mendes/admin123. The ids are stable so quick-login presets and the
// durable session pointer survive restarts.
func SeedUsers() []*domain.UserAccount {
	return []*domain.UserAccount{
		{
			ID:         "1",
			Name:       "Ana Souza",
			Email:      "ana.souza@empresa.com.br",
			Username:   "ana.souza",
			SecretHash: HashSecret("colab123"),
			CPF:        "390.533.447-05",
			Phone:      "+55 11 98765-0001",
			Role:       domain.RoleCollaborator,
			Status:     domain.StatusActive,
			Banking: domain.BankingDetails{
				Bank:    "Banco do Brasil",
				Branch:  "1234-5",
				Account: "67890-1",
			},
		},
		{
			ID:         "2",
			Name:       "Bruno Lima",
			Email:      "bruno.lima@empresa.com.br",
			Username:   "bruno.lima",
			SecretHash: HashSecret("gestor123"),
			CPF:        "274.958.116-30",
			Phone:      "+55 11 98765-0002",
			Role:       domain.RoleHRManager,
			Status:     domain.StatusActive,
			Banking: domain.BankingDetails{
				Bank:    "Itaú",
				Branch:  "0456",
				Account: "11223-4",
			},
		},
		{
			ID:         "3",
			Name:       "Carla Mendes",
			Email:      "carla.mendes@empresa.com.br",
			Username:   "carla.mendes",
			SecretHash: HashSecret("admin123"),
			CPF:        "841.662.880-07",
			Phone:      "+55 11 98765-0003",
			Role:       domain.RoleAdmin,
			Status:     domain.StatusActive,
			Banking: domain.BankingDetails{
				Bank:    "Bradesco",
				Branch:  "7890",
				Account: "55667-8",
			},
		},
	}
}
