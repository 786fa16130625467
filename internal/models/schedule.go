package models

import "time"

// ScheduleEntry is one row of an installment debt's payment plan.
// NumeroPago 0 is the disbursement row; 1..plazo_meses are the
// amortizing rows. Saldo is the balance remaining after the row's
// capital portion is applied.
type ScheduleEntry struct {
	ID               int       `json:"id"`
	DebtID           int       `json:"deuda_id"`
	NumeroPago       int       `json:"numero_pago"`
	FechaVencimiento time.Time `json:"fecha_vencimiento"`
	Saldo            float64   `json:"saldo"`
	Capital          float64   `json:"capital"`
	Interes          float64   `json:"interes"`
	Cuota            float64   `json:"cuota"`
	Estado           string    `json:"estado"`
}

// ScheduleEntryView is a schedule row flattened with fields of its
// parent debt, as returned by the cronograma listing.
type ScheduleEntryView struct {
	ScheduleEntry
	Empresa         string `json:"empresa"`
	TipoDeuda       string `json:"tipo_deuda"`
	NumeroDocumento string `json:"numero_documento"`
}
