package detecting

import (
	"fmt"
	"time"

	"github.com/vfg2006/backbone-api/internal/domain"
)

// Detector executa a bateria de regras sobre um dataset e devolve os issues
// encontrados, na ordem de descoberta. A ordenação por prioridade é
// responsabilidade do pacote prioritizing.
type Detector interface {
	Detect(dataset *domain.Dataset, now time.Time) []*domain.Issue
}

type Service struct{}

func NewService() Detector {
	return &Service{}
}

// Detect roda uma execução completa de detecção. O instante `now` é amostrado
// uma única vez pelo chamador e vale para todos os cálculos relativos de data
// da execução, evitando divergência entre métricas calculadas em sequência.
//
// Apenas empresas do portfólio geram issues; rodadas e metas cujo dono não é
// resolvido (ou não é do portfólio) são ignoradas silenciosamente, nunca erro.
func (s *Service) Detect(dataset *domain.Dataset, now time.Time) []*domain.Issue {
	issues := make([]*domain.Issue, 0)

	// Contador de IDs local à execução: sequências não vazam entre execuções
	// concorrentes ou repetidas.
	issueSeq := 0
	newIssue := func(companyID string, d *draft) *domain.Issue {
		issueSeq++
		return &domain.Issue{
			ID:               fmt.Sprintf("issue-%d", issueSeq),
			CompanyID:        companyID,
			Type:             d.issueType,
			Severity:         d.severity,
			UrgencyScore:     d.urgencyScore,
			Title:            d.title,
			SuggestedAction:  d.suggestedAction,
			TriggerCondition: d.triggerCondition,
		}
	}

	enriched := make([]*domain.CompanyMetrics, 0, len(dataset.Companies))
	companyByID := make(map[string]*domain.CompanyMetrics, len(dataset.Companies))
	for _, company := range dataset.Companies {
		metrics := DeriveCompanyMetrics(company, now)
		enriched = append(enriched, metrics)
		companyByID[company.ID] = metrics
	}

	for _, company := range enriched {
		if !company.IsPortfolio {
			continue
		}

		for _, rule := range companyRules {
			if d := rule.eval(company); d != nil {
				issues = append(issues, newIssue(company.ID, d))
			}
		}
	}

	for _, round := range dataset.Rounds {
		if !round.IsOpen() {
			continue
		}

		company, ok := companyByID[round.CompanyID]
		if !ok || !company.IsPortfolio {
			continue
		}

		metrics := DeriveRoundMetrics(round, now)
		for _, rule := range roundRules {
			if d := rule.eval(metrics); d != nil {
				issues = append(issues, newIssue(company.ID, d))
			}
		}
	}

	for _, goal := range dataset.Goals {
		if !goal.IsTracked() {
			continue
		}

		company, ok := companyByID[goal.CompanyID]
		if !ok || !company.IsPortfolio {
			continue
		}

		for _, rule := range goalRules {
			if d := rule.eval(goal, now); d != nil {
				issues = append(issues, newIssue(company.ID, d))
			}
		}
	}

	return issues
}
