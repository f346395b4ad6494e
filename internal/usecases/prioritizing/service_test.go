package prioritizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/backbone-api/internal/domain"
)

func TestService_SortIssues(t *testing.T) {
	service := NewService()

	t.Run("Severidade domina a urgência", func(t *testing.T) {
		issues := []*domain.Issue{
			{ID: "issue-1", Severity: domain.SeverityHigh, UrgencyScore: 95},
			{ID: "issue-2", Severity: domain.SeverityCritical, UrgencyScore: 80},
		}

		sorted := service.SortIssues(issues)
		require.Len(t, sorted, 2)

		// Crítico com urgência 80 vem antes de alto com urgência 95
		assert.Equal(t, "issue-2", sorted[0].ID)
		assert.Equal(t, "issue-1", sorted[1].ID)
	})

	t.Run("Urgência decrescente dentro da mesma severidade", func(t *testing.T) {
		issues := []*domain.Issue{
			{ID: "issue-1", Severity: domain.SeverityMedium, UrgencyScore: 40},
			{ID: "issue-2", Severity: domain.SeverityMedium, UrgencyScore: 70},
			{ID: "issue-3", Severity: domain.SeverityMedium, UrgencyScore: 55},
		}

		sorted := service.SortIssues(issues)
		assert.Equal(t, []int{70, 55, 40}, []int{
			sorted[0].UrgencyScore, sorted[1].UrgencyScore, sorted[2].UrgencyScore,
		})
	})

	t.Run("Empate total preserva a ordem de descoberta", func(t *testing.T) {
		issues := []*domain.Issue{
			{ID: "issue-1", Severity: domain.SeverityHigh, UrgencyScore: 60},
			{ID: "issue-2", Severity: domain.SeverityHigh, UrgencyScore: 60},
			{ID: "issue-3", Severity: domain.SeverityHigh, UrgencyScore: 60},
		}

		sorted := service.SortIssues(issues)
		assert.Equal(t, "issue-1", sorted[0].ID)
		assert.Equal(t, "issue-2", sorted[1].ID)
		assert.Equal(t, "issue-3", sorted[2].ID)
	})

	t.Run("Ordenação é idempotente e não altera a entrada", func(t *testing.T) {
		issues := []*domain.Issue{
			{ID: "issue-1", Severity: domain.SeverityLow, UrgencyScore: 10},
			{ID: "issue-2", Severity: domain.SeverityCritical, UrgencyScore: 90},
		}

		first := service.SortIssues(issues)
		second := service.SortIssues(first)
		assert.Equal(t, first, second)

		// A fatia original permanece na ordem de descoberta
		assert.Equal(t, "issue-1", issues[0].ID)
	})

	t.Run("Severidade desconhecida vai para o fim da fila", func(t *testing.T) {
		issues := []*domain.Issue{
			{ID: "issue-1", Severity: "catastrophic", UrgencyScore: 99},
			{ID: "issue-2", Severity: domain.SeverityLow, UrgencyScore: 5},
		}

		sorted := service.SortIssues(issues)
		assert.Equal(t, "issue-2", sorted[0].ID)
		assert.Equal(t, "issue-1", sorted[1].ID)
	})
}

func TestService_BuildQueue(t *testing.T) {
	service := NewService()
	generatedAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	dataset := &domain.Dataset{
		Companies: []*domain.Company{
			{ID: "c1", Name: "Fidalgo Labs", IsPortfolio: true},
			{ID: "c2", Name: "Helix Metrics", IsPortfolio: true},
		},
	}

	issues := []*domain.Issue{
		{ID: "issue-1", CompanyID: "c2", Severity: domain.SeverityMedium, UrgencyScore: 40},
		{ID: "issue-2", CompanyID: "c1", Severity: domain.SeverityCritical, UrgencyScore: 80},
		{ID: "issue-3", CompanyID: "gone", Severity: domain.SeverityHigh, UrgencyScore: 55},
	}

	queue := service.BuildQueue(dataset, issues, generatedAt)

	assert.Equal(t, 3, queue.IssueCount)
	assert.Equal(t, 1, queue.CriticalCount)
	assert.Equal(t, generatedAt, queue.GeneratedAt)
	require.Len(t, queue.Items, 3)

	// Ranks densos a partir de 1, na ordem global
	assert.Equal(t, 1, queue.Items[0].Rank)
	assert.Equal(t, "issue-2", queue.Items[0].ID)
	assert.Equal(t, "Fidalgo Labs", queue.Items[0].CompanyName)

	assert.Equal(t, 2, queue.Items[1].Rank)
	assert.Equal(t, "issue-3", queue.Items[1].ID)
	assert.Equal(t, UnknownCompanyName, queue.Items[1].CompanyName)

	assert.Equal(t, 3, queue.Items[2].Rank)
	assert.Equal(t, "issue-1", queue.Items[2].ID)
	assert.Equal(t, "Helix Metrics", queue.Items[2].CompanyName)
}

func TestService_BuildQueue_FilaVazia(t *testing.T) {
	service := NewService()

	queue := service.BuildQueue(&domain.Dataset{}, nil, time.Now())

	assert.NotNil(t, queue.Items)
	assert.Empty(t, queue.Items)
	assert.Equal(t, 0, queue.IssueCount)
	assert.Equal(t, 0, queue.CriticalCount)
}
