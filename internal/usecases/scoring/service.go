// Package scoring calcula o health score por empresa e o agregado do
// portfólio a partir do conjunto de issues da execução corrente.
package scoring

import (
	"math"

	"github.com/vfg2006/backbone-api/internal/domain"
)

// Penalidade fixa por severidade. O score é puramente aditivo: sem retornos
// decrescentes e sem termos de interação, então a ordem dos issues não importa.
var severityPenalty = map[string]int{
	domain.SeverityCritical: 25,
	domain.SeverityHigh:     15,
	domain.SeverityMedium:   8,
	domain.SeverityLow:      3,
}

type Scorer interface {
	CompanyHealth(companyID string, issues []*domain.Issue) int
	PortfolioSummary(companies []*domain.Company, issues []*domain.Issue) *domain.PortfolioSummary
}

type Service struct{}

func NewService() Scorer {
	return &Service{}
}

// CompanyHealth parte de 100 e subtrai a penalidade de cada issue da empresa,
// com o resultado preso ao intervalo [0, 100]. Empresa sem issues vale
// exatamente 100.
func (s *Service) CompanyHealth(companyID string, issues []*domain.Issue) int {
	score := 100

	for _, issue := range issues {
		if issue.CompanyID != companyID {
			continue
		}
		score -= severityPenalty[issue.Severity]
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// PortfolioSummary agrega a média dos health scores das empresas do portfólio
// (zero quando não há nenhuma) e a contagem de issues críticos.
func (s *Service) PortfolioSummary(companies []*domain.Company, issues []*domain.Issue) *domain.PortfolioSummary {
	summary := &domain.PortfolioSummary{
		IssueCount: len(issues),
	}

	total := 0
	for _, company := range companies {
		if !company.IsPortfolio {
			continue
		}
		summary.CompanyCount++
		total += s.CompanyHealth(company.ID, issues)
	}

	if summary.CompanyCount > 0 {
		summary.Health = int(math.Round(float64(total) / float64(summary.CompanyCount)))
	}

	for _, issue := range issues {
		if issue.Severity == domain.SeverityCritical {
			summary.CriticalCount++
		}
	}

	return summary
}
