// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Company representa uma empresa acompanhada pelo fundo.
// Os campos numéricos opcionais usam ponteiros: ausência é diferente de zero
// e as regras de detecção dependem dessa distinção.
type Company struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	IsPortfolio          bool       `json:"is_portfolio"`
	Stage                string     `json:"stage"`
	Sector               string     `json:"sector"`
	CashOnHand           *float64   `json:"cash_on_hand"`
	MonthlyBurn          *float64   `json:"monthly_burn"`
	MRR                  *float64   `json:"mrr"`
	EmployeeCount        *int       `json:"employee_count"`
	LastMaterialUpdateAt *time.Time `json:"last_material_update_at"`
}

// CompanyMetrics é a cópia enriquecida de uma Company com as métricas derivadas.
// A entidade original nunca é alterada; a derivação sempre retorna um novo registro.
type CompanyMetrics struct {
	Company

	// Runway em meses (caixa / burn mensal). Nil quando o burn é zero ou ausente:
	// runway desconhecido, não infinito.
	Runway *float64 `json:"runway"`

	// BurnMultiple (burn mensal / MRR). Nil quando não há receita recorrente.
	BurnMultiple *float64 `json:"burn_multiple"`

	// DaysSinceUpdate em dias desde a última atualização material.
	// Nil quando a empresa nunca registrou atualização.
	DaysSinceUpdate *int `json:"days_since_update"`
}

// CompanyWithHealth é a visão de uma empresa com o health score calculado
// a partir dos issues atuais dela.
type CompanyWithHealth struct {
	Company
	HealthScore int `json:"health_score"`
}
