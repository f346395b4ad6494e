package importing

import (
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/backbone-api/internal/domain"
)

// record é uma linha do CSV indexada pelo cabeçalho
type record map[string]string

// parseTable lê um bloco CSV colado e devolve as linhas como mapas
// cabeçalho → valor. Texto vazio resulta em zero linhas, não em erro.
func parseTable(text string) ([]record, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.TrimLeadingSpace = true
	// Linhas podem vir com menos colunas que o cabeçalho; campo faltante é
	// ausência, não erro
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "CSV malformado")
	}

	if len(rows) < 2 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		entry := make(record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				entry[header] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, entry)
	}

	return records, nil
}

// Coerção de valores textuais para tipos nativos. Campo vazio vira ausência
// (nil ou zero conforme o tipo), nunca um valor sentinela.

func parseFloatPtr(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "valor numérico inválido: %q", value)
	}

	if parsed < 0 {
		return nil, errors.Errorf("valor numérico negativo não permitido: %q", value)
	}

	return &parsed, nil
}

func parseFloat(value string) (float64, error) {
	parsed, err := parseFloatPtr(value)
	if err != nil {
		return 0, err
	}
	if parsed == nil {
		return 0, nil
	}
	return *parsed, nil
}

func parseIntPtr(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, errors.Wrapf(err, "valor inteiro inválido: %q", value)
	}

	return &parsed, nil
}

func parseBool(value string) bool {
	return strings.EqualFold(value, "true")
}

// timeLayouts aceitos nos campos de data do CSV
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

func parseTimePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}

	return nil, errors.Errorf("data inválida: %q", value)
}

func parseCompanies(text string) ([]*domain.Company, error) {
	records, err := parseTable(text)
	if err != nil {
		return nil, err
	}

	companies := make([]*domain.Company, 0, len(records))
	for _, entry := range records {
		company := &domain.Company{
			ID:          ensureID(entry["id"]),
			Name:        entry["name"],
			IsPortfolio: parseBool(entry["isPortfolio"]),
			Stage:       entry["stage"],
			Sector:      entry["sector"],
		}

		if company.CashOnHand, err = parseFloatPtr(entry["cashOnHand"]); err != nil {
			return nil, err
		}
		if company.MonthlyBurn, err = parseFloatPtr(entry["monthlyBurn"]); err != nil {
			return nil, err
		}
		if company.MRR, err = parseFloatPtr(entry["mrr"]); err != nil {
			return nil, err
		}
		if company.EmployeeCount, err = parseIntPtr(entry["employeeCount"]); err != nil {
			return nil, err
		}
		if company.LastMaterialUpdateAt, err = parseTimePtr(entry["lastMaterialUpdate_at"]); err != nil {
			return nil, err
		}

		companies = append(companies, company)
	}

	return companies, nil
}

func parseRounds(text string) ([]*domain.Round, error) {
	records, err := parseTable(text)
	if err != nil {
		return nil, err
	}

	rounds := make([]*domain.Round, 0, len(records))
	for _, entry := range records {
		round := &domain.Round{
			ID:        ensureID(entry["id"]),
			CompanyID: entry["company_id"],
			RoundType: entry["roundType"],
			Status:    entry["status"],
			HasLead:   parseBool(entry["hasLead"]),
		}

		if round.TargetAmount, err = parseFloat(entry["targetAmount"]); err != nil {
			return nil, err
		}
		if round.RaisedAmount, err = parseFloat(entry["raisedAmount"]); err != nil {
			return nil, err
		}
		if round.StartedAt, err = parseTimePtr(entry["startedAt"]); err != nil {
			return nil, err
		}
		if round.TargetCloseDate, err = parseTimePtr(entry["targetCloseDate"]); err != nil {
			return nil, err
		}

		rounds = append(rounds, round)
	}

	return rounds, nil
}

func parseDeals(text string) ([]*domain.Deal, error) {
	records, err := parseTable(text)
	if err != nil {
		return nil, err
	}

	deals := make([]*domain.Deal, 0, len(records))
	for _, entry := range records {
		deal := &domain.Deal{
			ID:         ensureID(entry["id"]),
			RoundID:    entry["round_id"],
			FirmID:     entry["firm_id"],
			Stage:      entry["stage"],
			IsLead:     parseBool(entry["isLead"]),
			NextAction: entry["nextAction"],
		}

		if deal.CheckSize, err = parseFloatPtr(entry["checkSize"]); err != nil {
			return nil, err
		}
		if deal.LastContactAt, err = parseTimePtr(entry["lastContactAt"]); err != nil {
			return nil, err
		}
		if deal.NextActionDue, err = parseTimePtr(entry["nextActionDue"]); err != nil {
			return nil, err
		}

		deals = append(deals, deal)
	}

	return deals, nil
}

func parseFirms(text string) ([]*domain.Firm, error) {
	records, err := parseTable(text)
	if err != nil {
		return nil, err
	}

	firms := make([]*domain.Firm, 0, len(records))
	for _, entry := range records {
		firm := &domain.Firm{
			ID:       ensureID(entry["id"]),
			Name:     entry["name"],
			FirmType: entry["firmType"],
		}

		if firm.TypicalCheckMin, err = parseFloatPtr(entry["typicalCheckMin"]); err != nil {
			return nil, err
		}
		if firm.TypicalCheckMax, err = parseFloatPtr(entry["typicalCheckMax"]); err != nil {
			return nil, err
		}

		firms = append(firms, firm)
	}

	return firms, nil
}

func parsePeople(text string) ([]*domain.Person, error) {
	records, err := parseTable(text)
	if err != nil {
		return nil, err
	}

	people := make([]*domain.Person, 0, len(records))
	for _, entry := range records {
		person := &domain.Person{
			ID:        ensureID(entry["id"]),
			FirstName: entry["firstName"],
			LastName:  entry["lastName"],
			Email:     entry["email"],
			Role:      entry["role"],
			FirmID:    entry["firm_id"],
		}

		if person.LastContactedAt, err = parseTimePtr(entry["lastContactedAt"]); err != nil {
			return nil, err
		}

		people = append(people, person)
	}

	return people, nil
}

func parseGoals(text string) ([]*domain.Goal, error) {
	records, err := parseTable(text)
	if err != nil {
		return nil, err
	}

	goals := make([]*domain.Goal, 0, len(records))
	for _, entry := range records {
		goal := &domain.Goal{
			ID:        ensureID(entry["id"]),
			CompanyID: entry["company_id"],
			GoalType:  entry["goalType"],
			Title:     entry["title"],
			Status:    entry["status"],
			Priority:  entry["priority"],
		}

		if goal.TargetValue, err = parseFloat(entry["targetValue"]); err != nil {
			return nil, err
		}
		if goal.CurrentValue, err = parseFloat(entry["currentValue"]); err != nil {
			return nil, err
		}
		if goal.TargetDate, err = parseTimePtr(entry["targetDate"]); err != nil {
			return nil, err
		}

		goals = append(goals, goal)
	}

	return goals, nil
}
