// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/backbone-api/infrastructure/database/postgres"
	"github.com/vfg2006/backbone-api/internal/domain"
)

const companiesTable = "companies"

var companyColumns = []string{
	"id",
	"name",
	"is_portfolio",
	"stage",
	"sector",
	"cash_on_hand",
	"monthly_burn",
	"mrr",
	"employee_count",
	"last_material_update_at",
}

type CompanyRepository interface {
	List() ([]*domain.Company, error)
	GetByID(id string) (*domain.Company, error)
	ReplaceAll(tx *sql.Tx, companies []*domain.Company) error
}

type companyRepository struct {
	conn postgres.Conn
}

func NewCompanyRepository(conn postgres.Conn) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) List() ([]*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns...).
		From(companiesTable).
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

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
		}
		companies = append(companies, company)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return companies, nil
}

func (r *companyRepository) GetByID(id string) (*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns...).
		From(companiesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	company, err := scanCompanyRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
	}

	return company, nil
}

// ReplaceAll substitui a coleção inteira dentro da transação do import
func (r *companyRepository) ReplaceAll(tx *sql.Tx, companies []*domain.Company) error {
	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", companiesTable)); err != nil {
		return fmt.Errorf("erro ao limpar a tabela de empresas: %w", err)
	}

	if len(companies) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(companiesTable).
		Columns(companyColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, company := range companies {
		builder = builder.Values(
			company.ID,
			company.Name,
			company.IsPortfolio,
			company.Stage,
			company.Sector,
			company.CashOnHand,
			company.MonthlyBurn,
			company.MRR,
			company.EmployeeCount,
			company.LastMaterialUpdateAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de inserção: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir empresas: %w", err)
	}

	return nil
}

func scanCompany(rows *sql.Rows) (*domain.Company, error) {
	var (
		company       domain.Company
		cashOnHand    sql.NullFloat64
		monthlyBurn   sql.NullFloat64
		mrr           sql.NullFloat64
		employeeCount sql.NullInt64
		lastUpdateAt  sql.NullTime
	)

	err := rows.Scan(
		&company.ID,
		&company.Name,
		&company.IsPortfolio,
		&company.Stage,
		&company.Sector,
		&cashOnHand,
		&monthlyBurn,
		&mrr,
		&employeeCount,
		&lastUpdateAt,
	)
	if err != nil {
		return nil, err
	}

	applyCompanyNullables(&company, cashOnHand, monthlyBurn, mrr, employeeCount, lastUpdateAt)
	return &company, nil
}

func scanCompanyRow(row *sql.Row) (*domain.Company, error) {
	var (
		company       domain.Company
		cashOnHand    sql.NullFloat64
		monthlyBurn   sql.NullFloat64
		mrr           sql.NullFloat64
		employeeCount sql.NullInt64
		lastUpdateAt  sql.NullTime
	)

	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.IsPortfolio,
		&company.Stage,
		&company.Sector,
		&cashOnHand,
		&monthlyBurn,
		&mrr,
		&employeeCount,
		&lastUpdateAt,
	)
	if err != nil {
		return nil, err
	}

	applyCompanyNullables(&company, cashOnHand, monthlyBurn, mrr, employeeCount, lastUpdateAt)
	return &company, nil
}

func applyCompanyNullables(
	company *domain.Company,
	cashOnHand, monthlyBurn, mrr sql.NullFloat64,
	employeeCount sql.NullInt64,
	lastUpdateAt sql.NullTime,
) {
	if cashOnHand.Valid {
		company.CashOnHand = &cashOnHand.Float64
	}
	if monthlyBurn.Valid {
		company.MonthlyBurn = &monthlyBurn.Float64
	}
	if mrr.Valid {
		company.MRR = &mrr.Float64
	}
	if employeeCount.Valid {
		count := int(employeeCount.Int64)
		company.EmployeeCount = &count
	}
	if lastUpdateAt.Valid {
		company.LastMaterialUpdateAt = &lastUpdateAt.Time
	}
}
