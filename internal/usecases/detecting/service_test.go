package detecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/backbone-api/internal/domain"
)

func TestService_Detect(t *testing.T) {
	service := NewService()

	t.Run("Empresa fora do portfólio nunca gera issues", func(t *testing.T) {
		dataset := &domain.Dataset{
			Companies: []*domain.Company{
				{
					ID:          "c1",
					Name:        "Vetro Health",
					IsPortfolio: false,
					CashOnHand:  floatPtr(100000),
					MonthlyBurn: floatPtr(100000),
				},
			},
			Rounds: []*domain.Round{
				{
					ID:        "r1",
					CompanyID: "c1",
					RoundType: "bridge",
					Status:    domain.RoundStatusActive,
					StartedAt: timePtr(referenceNow.AddDate(0, 0, -90)),
				},
			},
			Goals: []*domain.Goal{
				{ID: "g1", CompanyID: "c1", Title: "Any", Status: domain.GoalStatusAtRisk},
			},
		}

		issues := service.Detect(dataset, referenceNow)
		assert.Empty(t, issues)
	})

	t.Run("Rodada de empresa desconhecida é ignorada em silêncio", func(t *testing.T) {
		dataset := &domain.Dataset{
			Rounds: []*domain.Round{
				{
					ID:        "r1",
					CompanyID: "ghost",
					RoundType: "seed",
					Status:    domain.RoundStatusActive,
					StartedAt: timePtr(referenceNow.AddDate(0, 0, -90)),
				},
			},
		}

		issues := service.Detect(dataset, referenceNow)
		assert.Empty(t, issues)
	})

	t.Run("Rodada fechada e meta concluída não são avaliadas", func(t *testing.T) {
		dataset := &domain.Dataset{
			Companies: []*domain.Company{
				{ID: "c1", Name: "Helix Metrics", IsPortfolio: true},
			},
			Rounds: []*domain.Round{
				{
					ID:        "r1",
					CompanyID: "c1",
					RoundType: "seed",
					Status:    domain.RoundStatusClosed,
					StartedAt: timePtr(referenceNow.AddDate(0, 0, -200)),
				},
			},
			Goals: []*domain.Goal{
				{ID: "g1", CompanyID: "c1", Title: "Done goal", Status: domain.GoalStatusDone},
			},
		}

		issues := service.Detect(dataset, referenceNow)
		assert.Empty(t, issues)
	})

	t.Run("Uma empresa pode disparar várias regras na mesma execução", func(t *testing.T) {
		dataset := &domain.Dataset{
			Companies: []*domain.Company{
				{
					ID:                   "c1",
					Name:                 "Fidalgo Labs",
					IsPortfolio:          true,
					CashOnHand:           floatPtr(420000),
					MonthlyBurn:          floatPtr(210000),
					MRR:                  floatPtr(30000),
					LastMaterialUpdateAt: timePtr(referenceNow.AddDate(0, 0, -34)),
				},
			},
		}

		issues := service.Detect(dataset, referenceNow)
		require.Len(t, issues, 3)

		// Ordem de descoberta segue a ordem das regras de empresa
		assert.Equal(t, domain.IssueTypeCapitalSufficiency, issues[0].Type)
		assert.Equal(t, domain.SeverityCritical, issues[0].Severity)
		assert.Equal(t, "Runway at 2.0 months", issues[0].Title)

		assert.Equal(t, domain.IssueTypeRevenueViability, issues[1].Type)
		assert.Equal(t, "Burn multiple at 7.0x", issues[1].Title)

		assert.Equal(t, domain.IssueTypeAttentionMisallocation, issues[2].Type)
		assert.Equal(t, "No update in 34 days", issues[2].Title)

		// IDs sequenciais locais à execução
		assert.Equal(t, "issue-1", issues[0].ID)
		assert.Equal(t, "issue-2", issues[1].ID)
		assert.Equal(t, "issue-3", issues[2].ID)

		for _, issue := range issues {
			assert.Equal(t, "c1", issue.CompanyID)
		}
	})

	t.Run("Rodada aberta pode disparar travamento e falta de lead juntos", func(t *testing.T) {
		dataset := &domain.Dataset{
			Companies: []*domain.Company{
				{ID: "c1", Name: "Fidalgo Labs", IsPortfolio: true},
			},
			Rounds: []*domain.Round{
				{
					ID:           "r1",
					CompanyID:    "c1",
					RoundType:    "bridge",
					TargetAmount: 1500000,
					RaisedAmount: 300000,
					Status:       domain.RoundStatusActive,
					StartedAt:    timePtr(referenceNow.AddDate(0, 0, -62)),
					HasLead:      false,
				},
			},
		}

		issues := service.Detect(dataset, referenceNow)
		require.Len(t, issues, 2)

		assert.Equal(t, domain.IssueTypeCapitalSufficiency, issues[0].Type)
		assert.Equal(t, 91, issues[0].UrgencyScore)
		assert.Equal(t, "daysOpen=62 > 45 && coverage=0.20 < 0.3", issues[0].TriggerCondition)

		assert.Equal(t, domain.IssueTypeMarketAccess, issues[1].Type)
		assert.Equal(t, 59, issues[1].UrgencyScore)
		assert.Equal(t, "hasLead=false && daysOpen=62 > 30", issues[1].TriggerCondition)
	})

	t.Run("Sequência de IDs reinicia a cada execução", func(t *testing.T) {
		dataset := &domain.Dataset{
			Companies: []*domain.Company{
				{
					ID:          "c1",
					Name:        "Helix Metrics",
					IsPortfolio: true,
					CashOnHand:  floatPtr(100000),
					MonthlyBurn: floatPtr(50000),
				},
			},
		}

		first := service.Detect(dataset, referenceNow)
		second := service.Detect(dataset, referenceNow)

		require.Len(t, first, 1)
		require.Len(t, second, 1)
		assert.Equal(t, "issue-1", first[0].ID)
		assert.Equal(t, "issue-1", second[0].ID)
	})

	t.Run("Dataset vazio produz lista vazia, não nil", func(t *testing.T) {
		issues := service.Detect(&domain.Dataset{}, referenceNow)
		assert.NotNil(t, issues)
		assert.Empty(t, issues)
	})
}
