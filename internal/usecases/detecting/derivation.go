// Package detecting contém o motor de derivação de métricas e detecção de
// issues do portfólio. Todas as funções são puras: recebem as entidades e o
// instante de referência e devolvem novos valores, sem tocar nos originais.
package detecting

import (
	"math"
	"time"

	"github.com/vfg2006/backbone-api/internal/domain"
)

// daysBetween calcula dias inteiros (arredondados para baixo) entre dois instantes
func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

// DeriveCompanyMetrics produz uma cópia da empresa com runway, burn multiple e
// dias desde a última atualização. Divisões são protegidas: denominador zero ou
// campo ausente resulta em métrica nil, nunca em NaN ou infinito.
func DeriveCompanyMetrics(company *domain.Company, now time.Time) *domain.CompanyMetrics {
	metrics := &domain.CompanyMetrics{Company: *company}

	if company.CashOnHand != nil && company.MonthlyBurn != nil && *company.MonthlyBurn > 0 {
		runway := *company.CashOnHand / *company.MonthlyBurn
		metrics.Runway = &runway
	}

	if company.MonthlyBurn != nil && company.MRR != nil && *company.MRR > 0 {
		burnMultiple := *company.MonthlyBurn / *company.MRR
		metrics.BurnMultiple = &burnMultiple
	}

	if company.LastMaterialUpdateAt != nil {
		days := daysBetween(*company.LastMaterialUpdateAt, now)
		metrics.DaysSinceUpdate = &days
	}

	return metrics
}

// DeriveRoundMetrics produz uma cópia da rodada com cobertura, dias em aberto e
// dias até o fechamento. Cobertura sem alvo é zero, não desconhecida; dias até
// o fechamento sem data-alvo é nil.
func DeriveRoundMetrics(round *domain.Round, now time.Time) *domain.RoundMetrics {
	metrics := &domain.RoundMetrics{Round: *round}

	if round.TargetAmount > 0 {
		metrics.Coverage = round.RaisedAmount / round.TargetAmount
	}

	if round.StartedAt != nil {
		metrics.DaysOpen = daysBetween(*round.StartedAt, now)
	}

	if round.TargetCloseDate != nil {
		days := daysBetween(now, *round.TargetCloseDate)
		metrics.DaysToClose = &days
	}

	return metrics
}
