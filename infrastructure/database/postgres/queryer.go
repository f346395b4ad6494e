package postgres

import "database/sql"

// Queryer é o subconjunto de operações de leitura e escrita que os
// repositórios usam. As assinaturas espelham as de *sql.DB para que a
// Connection o satisfaça por embedding.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
