package pago

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordInput struct {
	PrestamoID    uint64
	MontoPagado   decimal.Decimal
	MetodoPago    string
	Observaciones string
	Actor         string
}

type PagoDTO struct {
	ID            uint64    `json:"id"`
	PrestamoID    uint64    `json:"prestamo_id"`
	ClienteNombre string    `json:"cliente_nombre,omitempty"`
	FechaPago     time.Time `json:"fecha_pago"`
	MontoPagado   string    `json:"monto_pagado"`
	MetodoPago    string    `json:"metodo_pago"`
	Observaciones string    `json:"observaciones"`
	UsuarioCrea   string    `json:"usuario_crea"`
	CreatedAt     time.Time `json:"created_at"`
	// balance and estado of the prestamo right after this write
	SaldoActual    string `json:"saldo_actual,omitempty"`
	EstadoPrestamo string `json:"estado_prestamo,omitempty"`
}

// ReversalDTO reports the prestamo after a pago was removed.
type ReversalDTO struct {
	PagoID      uint64 `json:"pago_id"`
	PrestamoID  uint64 `json:"prestamo_id"`
	SaldoActual string `json:"saldo_actual"`
	Estado      string `json:"estado"`
}
