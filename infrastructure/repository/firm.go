package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/backbone-api/infrastructure/database/postgres"
	"github.com/vfg2006/backbone-api/internal/domain"
)

const firmsTable = "firms"

var firmColumns = []string{
	"id",
	"name",
	"firm_type",
	"typical_check_min",
	"typical_check_max",
}

type FirmRepository interface {
	List() ([]*domain.Firm, error)
	ReplaceAll(tx *sql.Tx, firms []*domain.Firm) error
}

type firmRepository struct {
	conn postgres.Conn
}

func NewFirmRepository(conn postgres.Conn) FirmRepository {
	return &firmRepository{
		conn: conn,
	}
}

func (r *firmRepository) List() ([]*domain.Firm, error) {
	query, args, err := squirrel.
		Select(firmColumns...).
		From(firmsTable).
		OrderBy("name ASC").
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

	firms := make([]*domain.Firm, 0)
	for rows.Next() {
		var (
			firm     domain.Firm
			checkMin sql.NullFloat64
			checkMax sql.NullFloat64
		)

		err := rows.Scan(
			&firm.ID,
			&firm.Name,
			&firm.FirmType,
			&checkMin,
			&checkMax,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear firma: %w", err)
		}

		if checkMin.Valid {
			firm.TypicalCheckMin = &checkMin.Float64
		}
		if checkMax.Valid {
			firm.TypicalCheckMax = &checkMax.Float64
		}

		firms = append(firms, &firm)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return firms, nil
}

func (r *firmRepository) ReplaceAll(tx *sql.Tx, firms []*domain.Firm) error {
	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", firmsTable)); err != nil {
		return fmt.Errorf("erro ao limpar a tabela de firmas: %w", err)
	}

	if len(firms) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(firmsTable).
		Columns(firmColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, firm := range firms {
		builder = builder.Values(
			firm.ID,
			firm.Name,
			firm.FirmType,
			firm.TypicalCheckMin,
			firm.TypicalCheckMax,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de inserção: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir firmas: %w", err)
	}

	return nil
}
