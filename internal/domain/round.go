package domain

import "time"

// Status possíveis de uma rodada de captação
const (
	RoundStatusActive  = "active"
	RoundStatusClosing = "closing"
	RoundStatusClosed  = "closed"
)

// Round representa uma rodada de captação de uma empresa.
type Round struct {
	ID              string     `json:"id"`
	CompanyID       string     `json:"company_id"`
	RoundType       string     `json:"round_type"`
	TargetAmount    float64    `json:"target_amount"`
	RaisedAmount    float64    `json:"raised_amount"`
	Status          string     `json:"status"`
	StartedAt       *time.Time `json:"started_at"`
	TargetCloseDate *time.Time `json:"target_close_date"`
	HasLead         bool       `json:"has_lead"`
}

// IsOpen indica se a rodada ainda está em andamento (ativa ou em fechamento)
func (r Round) IsOpen() bool {
	return r.Status == RoundStatusActive || r.Status == RoundStatusClosing
}

// RoundMetrics é a cópia enriquecida de uma Round com as métricas derivadas.
type RoundMetrics struct {
	Round

	// Coverage é a fração do alvo já captada. Zero (não nil) quando o alvo é
	// zero: uma rodada sem alvo é tratada como 0% coberta, não como desconhecida.
	Coverage float64 `json:"coverage"`

	// DaysOpen em dias desde o início da rodada. Zero quando não há data de início.
	DaysOpen int `json:"days_open"`

	// DaysToClose em dias até a data-alvo de fechamento. Nil quando não há alvo.
	DaysToClose *int `json:"days_to_close"`
}
