package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/backbone-api/infrastructure/database/postgres"
	"github.com/vfg2006/backbone-api/internal/domain"
)

const goalsTable = "goals"

var goalColumns = []string{
	"id",
	"company_id",
	"goal_type",
	"title",
	"target_value",
	"current_value",
	"target_date",
	"status",
	"priority",
}

type GoalRepository interface {
	List() ([]*domain.Goal, error)
	ReplaceAll(tx *sql.Tx, goals []*domain.Goal) error
}

type goalRepository struct {
	conn postgres.Conn
}

func NewGoalRepository(conn postgres.Conn) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) List() ([]*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalColumns...).
		From(goalsTable).
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

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		var (
			goal       domain.Goal
			targetDate sql.NullTime
		)

		err := rows.Scan(
			&goal.ID,
			&goal.CompanyID,
			&goal.GoalType,
			&goal.Title,
			&goal.TargetValue,
			&goal.CurrentValue,
			&targetDate,
			&goal.Status,
			&goal.Priority,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}

		if targetDate.Valid {
			goal.TargetDate = &targetDate.Time
		}

		goals = append(goals, &goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}

func (r *goalRepository) ReplaceAll(tx *sql.Tx, goals []*domain.Goal) error {
	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", goalsTable)); err != nil {
		return fmt.Errorf("erro ao limpar a tabela de metas: %w", err)
	}

	if len(goals) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(goalsTable).
		Columns(goalColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, goal := range goals {
		builder = builder.Values(
			goal.ID,
			goal.CompanyID,
			goal.GoalType,
			goal.Title,
			goal.TargetValue,
			goal.CurrentValue,
			goal.TargetDate,
			goal.Status,
			goal.Priority,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de inserção: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir metas: %w", err)
	}

	return nil
}
