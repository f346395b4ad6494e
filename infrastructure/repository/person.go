package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/backbone-api/infrastructure/database/postgres"
	"github.com/vfg2006/backbone-api/internal/domain"
)

const peopleTable = "people"

var personColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"role",
	"firm_id",
	"last_contacted_at",
}

type PersonRepository interface {
	List() ([]*domain.Person, error)
	ReplaceAll(tx *sql.Tx, people []*domain.Person) error
}

type personRepository struct {
	conn postgres.Conn
}

func NewPersonRepository(conn postgres.Conn) PersonRepository {
	return &personRepository{
		conn: conn,
	}
}

func (r *personRepository) List() ([]*domain.Person, error) {
	query, args, err := squirrel.
		Select(personColumns...).
		From(peopleTable).
		OrderBy("last_name ASC, first_name ASC").
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

	people := make([]*domain.Person, 0)
	for rows.Next() {
		var (
			person          domain.Person
			lastContactedAt sql.NullTime
		)

		err := rows.Scan(
			&person.ID,
			&person.FirstName,
			&person.LastName,
			&person.Email,
			&person.Role,
			&person.FirmID,
			&lastContactedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear contato: %w", err)
		}

		if lastContactedAt.Valid {
			person.LastContactedAt = &lastContactedAt.Time
		}

		people = append(people, &person)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return people, nil
}

func (r *personRepository) ReplaceAll(tx *sql.Tx, people []*domain.Person) error {
	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", peopleTable)); err != nil {
		return fmt.Errorf("erro ao limpar a tabela de contatos: %w", err)
	}

	if len(people) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(peopleTable).
		Columns(personColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, person := range people {
		builder = builder.Values(
			person.ID,
			person.FirstName,
			person.LastName,
			person.Email,
			person.Role,
			person.FirmID,
			person.LastContactedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de inserção: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir contatos: %w", err)
	}

	return nil
}
