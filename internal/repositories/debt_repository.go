package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"deudasBack/internal/lifecycle"
	"deudasBack/internal/models"
)

type DebtRepository struct {
	DB *sql.DB
}

const debtColumns = `id, numero_documento, usuario_id, empresa, monto, fecha_vencimiento, estado, tipo, kind,
	       numero_factura, fecha_compra, metodo_pago, referencia_servicio, detalle_cobranza, periodo,
	       tasa_interes, plazo_meses, created_at, updated_at`

func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func scanDebt(row interface{ Scan(...interface{}) error }) (models.Debt, error) {
	var (
		debt               models.Debt
		numeroFactura      sql.NullString
		fechaCompra        sql.NullTime
		metodoPago         sql.NullString
		referenciaServicio sql.NullString
		detalleCobranza    sql.NullString
		periodo            sql.NullTime
		tasaInteres        sql.NullFloat64
		plazoMeses         sql.NullInt64
	)
	err := row.Scan(
		&debt.ID, &debt.NumeroDocumento, &debt.UserID, &debt.Empresa, &debt.Monto,
		&debt.FechaVencimiento, &debt.Estado, &debt.Tipo, &debt.Kind,
		&numeroFactura, &fechaCompra, &metodoPago, &referenciaServicio, &detalleCobranza, &periodo,
		&tasaInteres, &plazoMeses, &debt.CreatedAt, &debt.UpdatedAt,
	)
	if err != nil {
		return models.Debt{}, err
	}

	switch debt.Kind {
	case models.KindCompra:
		compra := &models.CompraDetalle{
			NumeroFactura: numeroFactura.String,
			MetodoPago:    metodoPago.String,
		}
		if fechaCompra.Valid {
			fc := fechaCompra.Time
			compra.FechaCompra = &fc
		}
		debt.Compra = compra
	case models.KindServicio:
		debt.Servicio = &models.ServicioDetalle{ReferenciaServicio: referenciaServicio.String}
	case models.KindImpuesto:
		impuesto := &models.ImpuestoDetalle{DetalleCobranza: detalleCobranza.String}
		if periodo.Valid {
			p := periodo.Time
			impuesto.Periodo = &p
		}
		debt.Impuesto = impuesto
	case models.KindCronograma:
		debt.Cronograma = &models.CronogramaDetalle{
			TasaInteres: tasaInteres.Float64,
			PlazoMeses:  int(plazoMeses.Int64),
		}
	}
	return debt, nil
}

// CreateDebtAggregate persists a debt and, for installment debts, every
// schedule row in a single transaction. A duplicate numero_documento is
// rejected by the unique index even when two creations race past the
// service-level check.
func (r *DebtRepository) CreateDebtAggregate(ctx context.Context, debt models.Debt) (models.Debt, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Debt{}, err
	}
	defer tx.Rollback()

	var (
		numeroFactura, metodoPago, referenciaServicio, detalleCobranza interface{}
		fechaCompra, periodo                                           interface{}
		tasaInteres, plazoMeses                                        interface{}
	)
	switch debt.Kind {
	case models.KindCompra:
		numeroFactura = debt.Compra.NumeroFactura
		metodoPago = debt.Compra.MetodoPago
		if debt.Compra.FechaCompra != nil {
			fechaCompra = *debt.Compra.FechaCompra
		}
	case models.KindServicio:
		referenciaServicio = debt.Servicio.ReferenciaServicio
	case models.KindImpuesto:
		detalleCobranza = debt.Impuesto.DetalleCobranza
		if debt.Impuesto.Periodo != nil {
			periodo = *debt.Impuesto.Periodo
		}
	case models.KindCronograma:
		tasaInteres = debt.Cronograma.TasaInteres
		plazoMeses = debt.Cronograma.PlazoMeses
	}

	debt.CreatedAt = time.Now()
	debt.UpdatedAt = &debt.CreatedAt

	query := `
        INSERT INTO deudas (numero_documento, usuario_id, empresa, monto, fecha_vencimiento, estado, tipo, kind,
                            numero_factura, fecha_compra, metodo_pago, referencia_servicio, detalle_cobranza, periodo,
                            tasa_interes, plazo_meses, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	result, err := tx.ExecContext(ctx, query,
		debt.NumeroDocumento, debt.UserID, debt.Empresa, debt.Monto, debt.FechaVencimiento,
		debt.Estado, debt.Tipo, debt.Kind,
		numeroFactura, fechaCompra, metodoPago, referenciaServicio, detalleCobranza, periodo,
		tasaInteres, plazoMeses, debt.CreatedAt, debt.UpdatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return models.Debt{}, models.ErrDuplicateDocumento
		}
		return models.Debt{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Debt{}, err
	}
	debt.ID = int(id)

	if debt.Kind == models.KindCronograma {
		entryQuery := `
            INSERT INTO cronograma_pagos (deuda_id, numero_pago, fecha_vencimiento, saldo, capital, interes, cuota, estado)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        `
		for i := range debt.Cronograma.Pagos {
			pago := &debt.Cronograma.Pagos[i]
			pago.DebtID = debt.ID
			res, err := tx.ExecContext(ctx, entryQuery,
				pago.DebtID, pago.NumeroPago, pago.FechaVencimiento,
				pago.Saldo, pago.Capital, pago.Interes, pago.Cuota, pago.Estado,
			)
			if err != nil {
				return models.Debt{}, err
			}
			entryID, err := res.LastInsertId()
			if err != nil {
				return models.Debt{}, err
			}
			pago.ID = int(entryID)
		}
	}

	if err = tx.Commit(); err != nil {
		return models.Debt{}, err
	}
	return debt, nil
}

func (r *DebtRepository) GetDebtByID(ctx context.Context, id int) (models.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM deudas WHERE id = ?`
	debt, err := scanDebt(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Debt{}, models.ErrDebtNotFound
	}
	if err != nil {
		return models.Debt{}, err
	}
	if debt.Kind == models.KindCronograma {
		debt.Cronograma.Pagos, err = r.GetScheduleEntries(ctx, debt.ID)
		if err != nil {
			return models.Debt{}, err
		}
	}
	return debt, nil
}

// GetDebtByNumeroDocumento returns the zero Debt and nil error when no
// debt carries the document number, so callers can test for existence.
func (r *DebtRepository) GetDebtByNumeroDocumento(ctx context.Context, numeroDocumento string) (models.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM deudas WHERE numero_documento = ?`
	debt, err := scanDebt(r.DB.QueryRowContext(ctx, query, numeroDocumento))
	if err == sql.ErrNoRows {
		return models.Debt{}, nil
	}
	if err != nil {
		return models.Debt{}, err
	}
	return debt, nil
}

func (r *DebtRepository) queryDebts(ctx context.Context, query string, args ...interface{}) ([]models.Debt, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []models.Debt
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return debts, nil
}

func (r *DebtRepository) GetDebtsForUserInRange(ctx context.Context, userID int, start, end time.Time) ([]models.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM deudas WHERE usuario_id = ? AND fecha_vencimiento BETWEEN ? AND ?`
	return r.queryDebts(ctx, query, userID, start, end)
}

func (r *DebtRepository) GetOverduePendingForUser(ctx context.Context, userID int, before time.Time) ([]models.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM deudas WHERE usuario_id = ? AND fecha_vencimiento < ? AND estado = ?`
	return r.queryDebts(ctx, query, userID, before, models.EstadoPendiente)
}

func (r *DebtRepository) GetDueOnDateForUser(ctx context.Context, userID int, date time.Time) ([]models.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM deudas WHERE usuario_id = ? AND fecha_vencimiento = ? AND estado = ?`
	return r.queryDebts(ctx, query, userID, date, models.EstadoPendiente)
}

func (r *DebtRepository) GetAllDueOnDate(ctx context.Context, date time.Time) ([]models.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM deudas WHERE fecha_vencimiento = ? AND estado = ?`
	return r.queryDebts(ctx, query, date, models.EstadoPendiente)
}

// MarkDebtPaid transitions a debt from PENDIENTE to PAGADA. The row is
// locked inside the transaction so concurrent calls cannot both
// succeed; the loser observes the terminal estado and fails.
func (r *DebtRepository) MarkDebtPaid(ctx context.Context, debtID, userID int) (models.Debt, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Debt{}, err
	}
	defer tx.Rollback()

	var (
		ownerID int
		estado  string
	)
	err = tx.QueryRowContext(ctx, `SELECT usuario_id, estado FROM deudas WHERE id = ? FOR UPDATE`, debtID).
		Scan(&ownerID, &estado)
	if err == sql.ErrNoRows {
		return models.Debt{}, models.ErrDebtNotFound
	}
	if err != nil {
		return models.Debt{}, err
	}
	if ownerID != userID {
		return models.Debt{}, models.ErrDebtForbidden
	}
	if estado != models.EstadoPendiente {
		return models.Debt{}, models.ErrDebtAlreadyPaid
	}

	if err = lifecycle.Apply(ctx, tx, "deudas", debtID, models.EstadoPendiente, models.EstadoPagada); err != nil {
		if err == sql.ErrNoRows {
			return models.Debt{}, models.ErrDebtAlreadyPaid
		}
		return models.Debt{}, err
	}
	if _, err = tx.ExecContext(ctx, `UPDATE deudas SET updated_at = NOW() WHERE id = ?`, debtID); err != nil {
		return models.Debt{}, err
	}
	if err = tx.Commit(); err != nil {
		return models.Debt{}, err
	}

	return r.GetDebtByID(ctx, debtID)
}

func (r *DebtRepository) GetScheduleEntries(ctx context.Context, debtID int) ([]models.ScheduleEntry, error) {
	query := `
        SELECT id, deuda_id, numero_pago, fecha_vencimiento, saldo, capital, interes, cuota, estado
        FROM cronograma_pagos
        WHERE deuda_id = ?
        ORDER BY numero_pago
    `
	rows, err := r.DB.QueryContext(ctx, query, debtID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ScheduleEntry
	for rows.Next() {
		var entry models.ScheduleEntry
		if err := rows.Scan(
			&entry.ID, &entry.DebtID, &entry.NumeroPago, &entry.FechaVencimiento,
			&entry.Saldo, &entry.Capital, &entry.Interes, &entry.Cuota, &entry.Estado,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetScheduleForUser returns every schedule row of every installment
// debt owned by the user, with the parent debt's fields flattened in.
func (r *DebtRepository) GetScheduleForUser(ctx context.Context, userID int) ([]models.ScheduleEntryView, error) {
	query := `
        SELECT p.id, p.deuda_id, p.numero_pago, p.fecha_vencimiento, p.saldo, p.capital, p.interes, p.cuota, p.estado,
               d.empresa, d.tipo, d.numero_documento
        FROM cronograma_pagos p
        JOIN deudas d ON d.id = p.deuda_id
        WHERE d.usuario_id = ?
        ORDER BY p.deuda_id, p.numero_pago
    `
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []models.ScheduleEntryView
	for rows.Next() {
		var v models.ScheduleEntryView
		if err := rows.Scan(
			&v.ID, &v.DebtID, &v.NumeroPago, &v.FechaVencimiento,
			&v.Saldo, &v.Capital, &v.Interes, &v.Cuota, &v.Estado,
			&v.Empresa, &v.TipoDeuda, &v.NumeroDocumento,
		); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

// MarkScheduleEntryPaid transitions one schedule row from PENDIENTE to
// PAGADA after verifying the parent debt belongs to userID. The entry
// and the parent aggregate are updated in one transaction; the parent
// debt's own estado is left untouched.
func (r *DebtRepository) MarkScheduleEntryPaid(ctx context.Context, entryID, userID int) (models.ScheduleEntryView, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.ScheduleEntryView{}, err
	}
	defer tx.Rollback()

	var (
		v       models.ScheduleEntryView
		ownerID int
	)
	query := `
        SELECT p.id, p.deuda_id, p.numero_pago, p.fecha_vencimiento, p.saldo, p.capital, p.interes, p.cuota, p.estado,
               d.empresa, d.tipo, d.numero_documento, d.usuario_id
        FROM cronograma_pagos p
        JOIN deudas d ON d.id = p.deuda_id
        WHERE p.id = ?
        FOR UPDATE
    `
	err = tx.QueryRowContext(ctx, query, entryID).Scan(
		&v.ID, &v.DebtID, &v.NumeroPago, &v.FechaVencimiento,
		&v.Saldo, &v.Capital, &v.Interes, &v.Cuota, &v.Estado,
		&v.Empresa, &v.TipoDeuda, &v.NumeroDocumento, &ownerID,
	)
	if err == sql.ErrNoRows {
		return models.ScheduleEntryView{}, models.ErrScheduleEntryNotFound
	}
	if err != nil {
		return models.ScheduleEntryView{}, err
	}
	if ownerID != userID {
		return models.ScheduleEntryView{}, models.ErrDebtForbidden
	}
	if v.Estado != models.EstadoPendiente {
		return models.ScheduleEntryView{}, models.ErrEntryAlreadyPaid
	}

	if err = lifecycle.Apply(ctx, tx, "cronograma_pagos", entryID, models.EstadoPendiente, models.EstadoPagada); err != nil {
		if err == sql.ErrNoRows {
			return models.ScheduleEntryView{}, models.ErrEntryAlreadyPaid
		}
		return models.ScheduleEntryView{}, err
	}
	if _, err = tx.ExecContext(ctx, `UPDATE deudas SET updated_at = NOW() WHERE id = ?`, v.DebtID); err != nil {
		return models.ScheduleEntryView{}, err
	}
	if err = tx.Commit(); err != nil {
		return models.ScheduleEntryView{}, err
	}

	v.Estado = models.EstadoPagada
	return v, nil
}
