package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/backbone-api/infrastructure/database/postgres"
	"github.com/vfg2006/backbone-api/internal/domain"
)

const dealsTable = "deals"

var dealColumns = []string{
	"id",
	"round_id",
	"firm_id",
	"stage",
	"check_size",
	"is_lead",
	"last_contact_at",
	"next_action",
	"next_action_due",
}

type DealRepository interface {
	List() ([]*domain.Deal, error)
	ReplaceAll(tx *sql.Tx, deals []*domain.Deal) error
}

type dealRepository struct {
	conn postgres.Conn
}

func NewDealRepository(conn postgres.Conn) DealRepository {
	return &dealRepository{
		conn: conn,
	}
}

func (r *dealRepository) List() ([]*domain.Deal, error) {
	query, args, err := squirrel.
		Select(dealColumns...).
		From(dealsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	deals := make([]*domain.Deal, 0)
	for rows.Next() {
		var (
			deal          domain.Deal
			checkSize     sql.NullFloat64
			lastContactAt sql.NullTime
			nextActionDue sql.NullTime
		)

		err := rows.Scan(
			&deal.ID,
			&deal.RoundID,
			&deal.FirmID,
			&deal.Stage,
			&checkSize,
			&deal.IsLead,
			&lastContactAt,
			&deal.NextAction,
			&nextActionDue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear deal: %w", err)
		}

		if checkSize.Valid {
			deal.CheckSize = &checkSize.Float64
		}
		if lastContactAt.Valid {
			deal.LastContactAt = &lastContactAt.Time
		}
		if nextActionDue.Valid {
			deal.NextActionDue = &nextActionDue.Time
		}

		deals = append(deals, &deal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deals, nil
}

func (r *dealRepository) ReplaceAll(tx *sql.Tx, deals []*domain.Deal) error {
	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", dealsTable)); err != nil {
		return fmt.Errorf("erro ao limpar a tabela de deals: %w", err)
	}

	if len(deals) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(dealsTable).
		Columns(dealColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, deal := range deals {
		builder = builder.Values(
			deal.ID,
			deal.RoundID,
			deal.FirmID,
			deal.Stage,
			deal.CheckSize,
			deal.IsLead,
			deal.LastContactAt,
			deal.NextAction,
			deal.NextActionDue,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de inserção: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir deals: %w", err)
	}

	return nil
}
