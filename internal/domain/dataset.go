package domain

import "time"

// Dataset agrupa as seis coleções de entrada do motor de análise.
// Firms e People passam direto pelo motor sem serem consultadas.
type Dataset struct {
	Companies []*Company `json:"companies"`
	Rounds    []*Round   `json:"rounds"`
	Deals     []*Deal    `json:"deals"`
	Firms     []*Firm    `json:"firms"`
	People    []*Person  `json:"people"`
	Goals     []*Goal    `json:"goals"`
}

// CompanyByID resolve uma empresa pelo identificador. Retorna nil para
// referências pendentes: o chamador decide se isso é "pular" ou "Unknown".
func (d *Dataset) CompanyByID(id string) *Company {
	for _, company := range d.Companies {
		if company.ID == id {
			return company
		}
	}
	return nil
}

// DatasetSummary resume o dataset armazenado, por coleção.
type DatasetSummary struct {
	Companies int `json:"companies"`
	Rounds    int `json:"rounds"`
	Deals     int `json:"deals"`
	Firms     int `json:"firms"`
	People    int `json:"people"`
	Goals     int `json:"goals"`
}

// Summarize devolve as contagens por coleção do dataset.
func (d *Dataset) Summarize() *DatasetSummary {
	return &DatasetSummary{
		Companies: len(d.Companies),
		Rounds:    len(d.Rounds),
		Deals:     len(d.Deals),
		Firms:     len(d.Firms),
		People:    len(d.People),
		Goals:     len(d.Goals),
	}
}

// PortfolioSummary é o agregado exibido na barra de saúde do portfólio.
type PortfolioSummary struct {
	// Health é a média (arredondada) dos health scores das empresas do
	// portfólio. Zero quando o portfólio está vazio.
	Health        int `json:"health"`
	CompanyCount  int `json:"company_count"`
	IssueCount    int `json:"issue_count"`
	CriticalCount int `json:"critical_count"`
}

// PriorityQueueItem é um issue pronto para exibição, com posição na fila e
// nome da empresa já resolvido.
type PriorityQueueItem struct {
	Rank        int    `json:"rank"`
	CompanyName string `json:"company_name"`
	Issue
}

// PriorityQueueResponse é a fila de prioridades completa, globalmente ordenada.
type PriorityQueueResponse struct {
	Items         []PriorityQueueItem `json:"items"`
	IssueCount    int                 `json:"issue_count"`
	CriticalCount int                 `json:"critical_count"`
	GeneratedAt   time.Time           `json:"generated_at"`
}
