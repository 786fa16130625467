package models

import "time"

// Debt kinds. The kind discriminates which of the variant payloads is set.
const (
	KindCompra     = "compra"
	KindServicio   = "servicio"
	KindImpuesto   = "impuesto"
	KindCronograma = "cronograma"
)

// Estado values shared by debts and schedule entries.
const (
	EstadoPendiente = "PENDIENTE"
	EstadoPagada    = "PAGADA"
)

// Debt is a monetary obligation owned by a user. Exactly one of the
// variant payloads is non-nil, matching Kind.
type Debt struct {
	ID               int                `json:"id"`
	NumeroDocumento  string             `json:"numero_documento"`
	UserID           int                `json:"user_id"`
	Empresa          string             `json:"empresa"`
	Monto            float64            `json:"monto"`
	FechaVencimiento time.Time          `json:"fecha_vencimiento"`
	Estado           string             `json:"estado"`
	Tipo             string             `json:"tipo"`
	Kind             string             `json:"kind"`
	Compra           *CompraDetalle     `json:"compra,omitempty"`
	Servicio         *ServicioDetalle   `json:"servicio,omitempty"`
	Impuesto         *ImpuestoDetalle   `json:"impuesto,omitempty"`
	Cronograma       *CronogramaDetalle `json:"cronograma,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        *time.Time         `json:"updated_at,omitempty"`
}

type CompraDetalle struct {
	NumeroFactura string     `json:"numero_factura,omitempty"`
	FechaCompra   *time.Time `json:"fecha_compra,omitempty"`
	MetodoPago    string     `json:"metodo_pago"`
}

type ServicioDetalle struct {
	ReferenciaServicio string `json:"referencia_servicio"`
}

type ImpuestoDetalle struct {
	DetalleCobranza string     `json:"detalle_cobranza"`
	Periodo         *time.Time `json:"periodo,omitempty"`
}

// CronogramaDetalle carries the fixed loan terms and the generated
// payment schedule. The schedule is created once with the debt and its
// financial figures never change afterwards; only row estados move.
type CronogramaDetalle struct {
	TasaInteres float64         `json:"tasa_interes"`
	PlazoMeses  int             `json:"plazo_meses"`
	Pagos       []ScheduleEntry `json:"cronograma_pagos"`
}
