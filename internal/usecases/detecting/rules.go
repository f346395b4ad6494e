package detecting

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/backbone-api/internal/domain"
)

// Limiares da bateria de regras. Os valores são parte do contrato observável:
// aparecem literalmente nas strings de trigger condition.
const (
	runwayThresholdMonths   = 6.0
	runwayCriticalMonths    = 3.0
	burnMultipleThreshold   = 3.0
	burnMultipleHighValue   = 5.0
	staleUpdateThresholdDay = 14
	staleUpdateHighDays     = 30
	stalledRoundMinDaysOpen = 45
	stalledRoundMaxCoverage = 0.3
	missingLeadMinDaysOpen  = 30
	goalDeadlineWindowDays  = 30
	goalProgressThreshold   = 0.7
)

// draft é um issue ainda sem ID e sem empresa atribuída; o serviço de detecção
// completa os dois ao coletar os resultados das regras.
type draft struct {
	issueType        string
	severity         string
	urgencyScore     int
	title            string
	suggestedAction  string
	triggerCondition string
}

// companyRule avalia uma empresa enriquecida. Retorna nil quando não dispara.
type companyRule struct {
	name string
	eval func(company *domain.CompanyMetrics) *draft
}

// roundRule avalia uma rodada enriquecida (já filtrada por status em aberto).
type roundRule struct {
	name string
	eval func(round *domain.RoundMetrics) *draft
}

// goalRule avalia uma meta em acompanhamento.
type goalRule struct {
	name string
	eval func(goal *domain.Goal, now time.Time) *draft
}

// A bateria de regras é declarativa: cada regra é uma linha independente das
// tabelas abaixo. Uma mesma entidade pode disparar várias regras e gerar vários
// issues na mesma execução. Regras futuras (ex.: baseadas em deals) entram como
// novas linhas sem tocar nas existentes.
var (
	companyRules = []companyRule{
		{name: "runway", eval: evalRunway},
		{name: "burn_multiple", eval: evalBurnMultiple},
		{name: "stale_update", eval: evalStaleUpdate},
	}

	roundRules = []roundRule{
		{name: "stalled_round", eval: evalStalledRound},
		{name: "missing_lead", eval: evalMissingLead},
	}

	goalRules = []goalRule{
		{name: "goal_risk", eval: evalGoalRisk},
	}
)

// evalRunway dispara quando o runway é conhecido e está abaixo de 6 meses.
// Runway desconhecido (burn zero ou ausente) nunca dispara.
func evalRunway(company *domain.CompanyMetrics) *draft {
	if company.Runway == nil || *company.Runway >= runwayThresholdMonths {
		return nil
	}

	severity := domain.SeverityHigh
	action := "Review fundraising timeline"
	if *company.Runway < runwayCriticalMonths {
		severity = domain.SeverityCritical
		action = "Emergency bridge or accelerate close"
	}

	return &draft{
		issueType:        domain.IssueTypeCapitalSufficiency,
		severity:         severity,
		urgencyScore:     int(math.Round(100 - *company.Runway*10)),
		title:            fmt.Sprintf("Runway at %.1f months", *company.Runway),
		suggestedAction:  action,
		triggerCondition: fmt.Sprintf("runway=%.1f < 6", *company.Runway),
	}
}

// evalBurnMultiple dispara quando o burn multiple é conhecido e passa de 3x.
func evalBurnMultiple(company *domain.CompanyMetrics) *draft {
	if company.BurnMultiple == nil || *company.BurnMultiple <= burnMultipleThreshold {
		return nil
	}

	severity := domain.SeverityMedium
	if *company.BurnMultiple > burnMultipleHighValue {
		severity = domain.SeverityHigh
	}

	return &draft{
		issueType:        domain.IssueTypeRevenueViability,
		severity:         severity,
		urgencyScore:     int(math.Round(math.Min(*company.BurnMultiple*15, 90))),
		title:            fmt.Sprintf("Burn multiple at %.1fx", *company.BurnMultiple),
		suggestedAction:  "Review unit economics and path to efficiency",
		triggerCondition: fmt.Sprintf("burnMultiple=%.1f > 3", *company.BurnMultiple),
	}
}

// evalStaleUpdate dispara quando a última atualização material passou de 14
// dias. Empresa sem atualização registrada não dispara: ausência de timestamp
// não significa "atualizada hoje" nem "nunca atualizada".
func evalStaleUpdate(company *domain.CompanyMetrics) *draft {
	if company.DaysSinceUpdate == nil || *company.DaysSinceUpdate <= staleUpdateThresholdDay {
		return nil
	}

	severity := domain.SeverityMedium
	if *company.DaysSinceUpdate > staleUpdateHighDays {
		severity = domain.SeverityHigh
	}

	urgency := *company.DaysSinceUpdate * 2
	if urgency > 80 {
		urgency = 80
	}

	return &draft{
		issueType:        domain.IssueTypeAttentionMisallocation,
		severity:         severity,
		urgencyScore:     urgency,
		title:            fmt.Sprintf("No update in %d days", *company.DaysSinceUpdate),
		suggestedAction:  "Schedule check-in",
		triggerCondition: fmt.Sprintf("daysSinceUpdate=%d > 14", *company.DaysSinceUpdate),
	}
}

// evalStalledRound dispara para rodadas abertas há mais de 45 dias com menos
// de 30% do alvo captado.
func evalStalledRound(round *domain.RoundMetrics) *draft {
	if round.DaysOpen <= stalledRoundMinDaysOpen || round.Coverage >= stalledRoundMaxCoverage {
		return nil
	}

	return &draft{
		issueType:        domain.IssueTypeCapitalSufficiency,
		severity:         domain.SeverityHigh,
		urgencyScore:     int(math.Round(60 + float64(round.DaysOpen)*0.5)),
		title:            fmt.Sprintf("%s open %dd, %.0f%% covered", round.RoundType, round.DaysOpen, round.Coverage*100),
		suggestedAction:  "Assess pipeline, consider repositioning",
		triggerCondition: fmt.Sprintf("daysOpen=%d > 45 && coverage=%.2f < 0.3", round.DaysOpen, round.Coverage),
	}
}

// evalMissingLead dispara para rodadas abertas há mais de 30 dias sem lead.
// Pode disparar junto com a regra de rodada travada: são issues independentes
// e não há fusão entre eles.
func evalMissingLead(round *domain.RoundMetrics) *draft {
	if round.HasLead || round.DaysOpen <= missingLeadMinDaysOpen {
		return nil
	}

	return &draft{
		issueType:        domain.IssueTypeMarketAccess,
		severity:         domain.SeverityMedium,
		urgencyScore:     int(math.Round(40 + float64(round.DaysOpen)*0.3)),
		title:            fmt.Sprintf("%s needs lead, %dd open", round.RoundType, round.DaysOpen),
		suggestedAction:  "Focus on lead-capable firms",
		triggerCondition: fmt.Sprintf("hasLead=false && daysOpen=%d > 30", round.DaysOpen),
	}
}

// evalGoalRisk dispara quando a meta está marcada como at_risk, ou quando o
// prazo está a menos de 30 dias com progresso abaixo de 70%. Meta sem prazo
// ainda dispara pelo ramo do status; o título e o trigger toleram o prazo
// ausente.
func evalGoalRisk(goal *domain.Goal, now time.Time) *draft {
	progress := goal.Progress()

	var daysToDeadline *int
	if goal.TargetDate != nil {
		days := daysBetween(now, *goal.TargetDate)
		daysToDeadline = &days
	}

	deadlineClose := daysToDeadline != nil &&
		*daysToDeadline < goalDeadlineWindowDays &&
		progress < goalProgressThreshold

	if goal.Status != domain.GoalStatusAtRisk && !deadlineClose {
		return nil
	}

	severity := domain.SeverityMedium
	if goal.Priority == domain.GoalPriorityCritical {
		severity = domain.SeverityHigh
	}

	title := fmt.Sprintf("%s: %.0f%% complete, no deadline", goal.Title, progress*100)
	trigger := fmt.Sprintf("progress=%.2f < 0.7 && daysLeft=null", progress)
	if daysToDeadline != nil {
		title = fmt.Sprintf("%s: %.0f%% complete, %dd left", goal.Title, progress*100, *daysToDeadline)
		trigger = fmt.Sprintf("progress=%.2f < 0.7 && daysLeft=%d", progress, *daysToDeadline)
	}

	return &draft{
		issueType:        domain.IssueTypeGoalRisk,
		severity:         severity,
		urgencyScore:     int(math.Round(50 + (1-progress)*30)),
		title:            title,
		suggestedAction:  "Review blockers and acceleration options",
		triggerCondition: trigger,
	}
}
