package domain

import "time"

// Deal representa a participação de uma firma investidora em uma rodada.
// A detecção de issues ainda não consome deals, mas o schema é preservado
// para regras futuras baseadas em pipeline de investidores.
type Deal struct {
	ID            string     `json:"id"`
	RoundID       string     `json:"round_id"`
	FirmID        string     `json:"firm_id"`
	Stage         string     `json:"stage"`
	CheckSize     *float64   `json:"check_size"`
	IsLead        bool       `json:"is_lead"`
	LastContactAt *time.Time `json:"last_contact_at"`
	NextAction    string     `json:"next_action"`
	NextActionDue *time.Time `json:"next_action_due"`
}

// Firm representa uma firma investidora. Opaca para o motor de detecção.
type Firm struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	FirmType        string   `json:"firm_type"`
	TypicalCheckMin *float64 `json:"typical_check_min"`
	TypicalCheckMax *float64 `json:"typical_check_max"`
}

// Person representa um contato ligado a uma firma. Opaca para o motor de detecção.
type Person struct {
	ID              string     `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	Role            string     `json:"role"`
	FirmID          string     `json:"firm_id"`
	LastContactedAt *time.Time `json:"last_contacted_at"`
}
