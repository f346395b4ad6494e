package domain

// Tipos de issue produzidos pelo motor de detecção
const (
	IssueTypeCapitalSufficiency     = "capital_sufficiency"
	IssueTypeRevenueViability       = "revenue_viability"
	IssueTypeAttentionMisallocation = "attention_misallocation"
	IssueTypeMarketAccess           = "market_access"
	IssueTypeGoalRisk               = "goal_risk"
)

// Severidades possíveis de um issue, da mais grave para a menos grave
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// severityRank define a ordem de prioridade entre severidades (menor = mais urgente)
var severityRank = map[string]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
}

// SeverityRank retorna a posição da severidade na ordem de prioridade.
// Severidades desconhecidas vão para o fim da fila.
func SeverityRank(severity string) int {
	if rank, ok := severityRank[severity]; ok {
		return rank
	}
	return len(severityRank)
}

// Issue representa uma situação que exige atenção humana, produzida por uma
// regra de detecção. Issues são efêmeros: recalculados por completo a cada
// execução, nunca persistidos ou alterados. O ID é atribuído por um contador
// local à execução e não é estável entre execuções.
type Issue struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Type      string `json:"type"`
	Severity  string `json:"severity"`

	// UrgencyScore ordena issues dentro da mesma severidade. Sem limite
	// superior e não comparável entre severidades diferentes.
	UrgencyScore int `json:"urgency_score"`

	Title           string `json:"title"`
	SuggestedAction string `json:"suggested_action"`

	// TriggerCondition reproduz literalmente os valores e limiares que
	// dispararam a regra. É contrato observável: a tela "Why this priority?"
	// exibe essa string como trilha de auditoria.
	TriggerCondition string `json:"trigger_condition"`
}
