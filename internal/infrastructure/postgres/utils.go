package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isNoRows verifica si un error es la ausencia de filas (id inexistente).
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// updateBuilder acumula pares columna/valor para un UPDATE parcial.
// Genera siempre placeholders posicionales ($n): nunca se interpola un
// valor dentro del SQL. args[0] queda reservado para el id (WHERE id = $1).
type updateBuilder struct {
	sets []string
	args []any
}

func newUpdateBuilder(id int) *updateBuilder {
	return &updateBuilder{args: []any{id}}
}

// set añade una columna al SET con su placeholder.
func (b *updateBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// empty informa si el patch no tocó ninguna columna (no-op).
func (b *updateBuilder) empty() bool { return len(b.sets) == 0 }

// query arma el UPDATE completo con RETURNING para leer la fila resultante.
func (b *updateBuilder) query(table, returning string) string {
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $1 RETURNING %s",
		table, strings.Join(b.sets, ", "), returning)
}
