package prestamo

import (
	"prestamos-backend/internal/domain/apperr"

	"github.com/shopspring/decimal"
)

// Currency scale for every monetary column.
const MoneyScale = 2

var (
	ErrInvalidAmount = apperr.NewField(apperr.ErrValidation, "monto_pagado", "El monto pagado debe ser mayor que cero")
	ErrOverpayment   = apperr.New(apperr.ErrInvalidState, "El monto pagado no puede exceder el saldo actual del préstamo")
)

// ApplyPayment debits amount from the balance. An amount equal to the
// balance is an exact payoff; anything above it is rejected and leaves p
// untouched. Reaching zero (or below) marks the loan PAGADO.
func (p *Prestamo) ApplyPayment(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(p.SaldoActual) {
		return ErrOverpayment
	}
	p.SaldoActual = p.SaldoActual.Sub(amount).Round(MoneyScale)
	if !p.SaldoActual.IsPositive() {
		p.Estado = EstadoPagado
	}
	return nil
}

// RevertPayment credits amount back and reopens the loan. The estado is
// reset to ACTIVO unconditionally, even when the restored balance is still
// <= 0; it is not recomputed from the balance sign.
func (p *Prestamo) RevertPayment(amount decimal.Decimal) {
	p.SaldoActual = p.SaldoActual.Add(amount).Round(MoneyScale)
	p.Estado = EstadoActivo
}

// SetEstado applies a manual estado change. PAGADO belongs to the ledger,
// and a settled loan keeps its estado.
func (p *Prestamo) SetEstado(e Estado) error {
	if !e.Valid() {
		return ErrInvalidEstado
	}
	if e == EstadoPagado {
		return ErrEstadoFromLedger
	}
	if !p.SaldoActual.IsPositive() {
		return ErrEstadoSettled
	}
	p.Estado = e
	return nil
}
