// Package prioritizing ordena globalmente os issues detectados e monta a fila
// de prioridades pronta para exibição.
package prioritizing

import (
	"sort"
	"time"

	"github.com/vfg2006/backbone-api/internal/domain"
)

// UnknownCompanyName é o valor exibido quando o issue referencia uma empresa
// que não existe mais no dataset. Referência pendente nunca é erro.
const UnknownCompanyName = "Unknown"

type Prioritizer interface {
	SortIssues(issues []*domain.Issue) []*domain.Issue
	BuildQueue(dataset *domain.Dataset, issues []*domain.Issue, generatedAt time.Time) *domain.PriorityQueueResponse
}

type Service struct{}

func NewService() Prioritizer {
	return &Service{}
}

// SortIssues devolve uma nova fatia com a ordem total da fila: severidade como
// chave primária (critical antes de low) e urgência decrescente como chave
// secundária. Empates além disso mantêm a ordem de descoberta (sort estável),
// o que torna a ordenação determinística e idempotente para a mesma entrada.
func (s *Service) SortIssues(issues []*domain.Issue) []*domain.Issue {
	sorted := make([]*domain.Issue, len(issues))
	copy(sorted, issues)

	sort.SliceStable(sorted, func(i, j int) bool {
		left, right := sorted[i], sorted[j]
		if domain.SeverityRank(left.Severity) != domain.SeverityRank(right.Severity) {
			return domain.SeverityRank(left.Severity) < domain.SeverityRank(right.Severity)
		}
		return left.UrgencyScore > right.UrgencyScore
	})

	return sorted
}

// BuildQueue monta a resposta da fila de prioridades. As contagens do
// cabeçalho e a lista exibida saem da mesma ordenação, garantindo consistência
// entre os dois usos.
func (s *Service) BuildQueue(dataset *domain.Dataset, issues []*domain.Issue, generatedAt time.Time) *domain.PriorityQueueResponse {
	sorted := s.SortIssues(issues)

	response := &domain.PriorityQueueResponse{
		Items:       make([]domain.PriorityQueueItem, 0, len(sorted)),
		IssueCount:  len(sorted),
		GeneratedAt: generatedAt,
	}

	for i, issue := range sorted {
		if issue.Severity == domain.SeverityCritical {
			response.CriticalCount++
		}

		response.Items = append(response.Items, domain.PriorityQueueItem{
			Rank:        i + 1,
			CompanyName: s.companyName(dataset, issue.CompanyID),
			Issue:       *issue,
		})
	}

	return response
}

func (s *Service) companyName(dataset *domain.Dataset, companyID string) string {
	if company := dataset.CompanyByID(companyID); company != nil {
		return company.Name
	}
	return UnknownCompanyName
}
