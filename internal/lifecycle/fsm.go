package lifecycle

import (
	"context"
	"database/sql"
	"errors"

	"deudasBack/internal/models"
)

var transitions = map[string]map[string]struct{}{
	models.EstadoPendiente: {models.EstadoPagada: {}},
	models.EstadoPagada:    {},
}

// CanTransition reports whether a debt or schedule entry may move from
// one estado to another. The only edge is PENDIENTE -> PAGADA; PAGADA
// is terminal and never reverts.
func CanTransition(from, to string) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// Apply updates the estado of one row in the given table using an
// optimistic guard on the current estado, so a concurrent transition on
// the same row cannot be silently overwritten. Returns sql.ErrNoRows
// when the row was not in fromEstado anymore (or does not exist).
func Apply(ctx context.Context, tx *sql.Tx, table string, id int, fromEstado, toEstado string) error {
	if !CanTransition(fromEstado, toEstado) {
		return errors.New("invalid estado transition")
	}
	res, err := tx.ExecContext(ctx, `UPDATE `+table+` SET estado = ? WHERE id = ? AND estado = ?`, toEstado, id, fromEstado)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
