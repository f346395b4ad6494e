package domain

import "time"

// Status possíveis de uma meta
const (
	GoalStatusActive = "active"
	GoalStatusAtRisk = "at_risk"
	GoalStatusDone   = "done"
)

// Prioridades possíveis de uma meta
const (
	GoalPriorityCritical = "critical"
	GoalPriorityHigh     = "high"
	GoalPriorityMedium   = "medium"
	GoalPriorityLow      = "low"
)

// Goal representa uma meta acordada com uma empresa do portfólio.
type Goal struct {
	ID           string     `json:"id"`
	CompanyID    string     `json:"company_id"`
	GoalType     string     `json:"goal_type"`
	Title        string     `json:"title"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	TargetDate   *time.Time `json:"target_date"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
}

// IsTracked indica se a meta ainda está em acompanhamento
func (g Goal) IsTracked() bool {
	return g.Status == GoalStatusActive || g.Status == GoalStatusAtRisk
}

// Progress retorna a fração concluída da meta (zero quando não há valor-alvo)
func (g Goal) Progress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	return g.CurrentValue / g.TargetValue
}
