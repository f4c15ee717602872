package prestamo

import (
	"time"

	"github.com/shopspring/decimal"
)

// PromoteInput turns an APROBADO solicitud into a prestamo.
type PromoteInput struct {
	SolicitudID   uint64
	MontoAprobado decimal.Decimal
	TasaInteres   decimal.Decimal
	PlazoMeses    int
	Actor         string
}

// UpdateInput lists the only mutable fields; saldo_actual moves through
// the ledger alone.
type UpdateInput struct {
	TasaInteres *decimal.Decimal
	PlazoMeses  *int
	Estado      *string
	Actor       string
}

type PagoItem struct {
	ID            uint64    `json:"id"`
	FechaPago     time.Time `json:"fecha_pago"`
	MontoPagado   string    `json:"monto_pagado"`
	MetodoPago    string    `json:"metodo_pago"`
	Observaciones string    `json:"observaciones"`
}

type PrestamoDTO struct {
	ID              uint64     `json:"id"`
	SolicitudID     uint64     `json:"solicitud_id"`
	ClienteID       uint64     `json:"cliente_id,omitempty"`
	ClienteNombre   string     `json:"cliente_nombre,omitempty"`
	MontoAprobado   string     `json:"monto_aprobado"`
	FechaAprobacion time.Time  `json:"fecha_aprobacion"`
	TasaInteres     string     `json:"tasa_interes"`
	PlazoMeses      int        `json:"plazo_meses"`
	SaldoActual     string     `json:"saldo_actual"`
	Estado          string     `json:"estado"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Pagos           []PagoItem `json:"pagos,omitempty"`
}
