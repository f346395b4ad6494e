package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/backbone-api/infrastructure/database/postgres"
	"github.com/vfg2006/backbone-api/internal/domain"
)

const roundsTable = "rounds"

var roundColumns = []string{
	"id",
	"company_id",
	"round_type",
	"target_amount",
	"raised_amount",
	"status",
	"started_at",
	"target_close_date",
	"has_lead",
}

type RoundRepository interface {
	List() ([]*domain.Round, error)
	ReplaceAll(tx *sql.Tx, rounds []*domain.Round) error
}

type roundRepository struct {
	conn postgres.Conn
}

func NewRoundRepository(conn postgres.Conn) RoundRepository {
	return &roundRepository{
		conn: conn,
	}
}

func (r *roundRepository) List() ([]*domain.Round, error) {
	query, args, err := squirrel.
		Select(roundColumns...).
		From(roundsTable).
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

	rounds := make([]*domain.Round, 0)
	for rows.Next() {
		var (
			round           domain.Round
			startedAt       sql.NullTime
			targetCloseDate sql.NullTime
		)

		err := rows.Scan(
			&round.ID,
			&round.CompanyID,
			&round.RoundType,
			&round.TargetAmount,
			&round.RaisedAmount,
			&round.Status,
			&startedAt,
			&targetCloseDate,
			&round.HasLead,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear rodada: %w", err)
		}

		if startedAt.Valid {
			round.StartedAt = &startedAt.Time
		}
		if targetCloseDate.Valid {
			round.TargetCloseDate = &targetCloseDate.Time
		}

		rounds = append(rounds, &round)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rounds, nil
}

func (r *roundRepository) ReplaceAll(tx *sql.Tx, rounds []*domain.Round) error {
	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", roundsTable)); err != nil {
		return fmt.Errorf("erro ao limpar a tabela de rodadas: %w", err)
	}

	if len(rounds) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(roundsTable).
		Columns(roundColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, round := range rounds {
		builder = builder.Values(
			round.ID,
			round.CompanyID,
			round.RoundType,
			round.TargetAmount,
			round.RaisedAmount,
			round.Status,
			round.StartedAt,
			round.TargetCloseDate,
			round.HasLead,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de inserção: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir rodadas: %w", err)
	}

	return nil
}
