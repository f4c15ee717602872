package http

import (
	"net/http"

	"prestamos-backend/internal/usecase/pago"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PagoHandler struct{ uc *pago.Usecase }

func NewPagoHandler(uc *pago.Usecase) *PagoHandler { return &PagoHandler{uc: uc} }

type createPagoReq struct {
	PrestamoID    uint64          `json:"prestamo_id" validate:"required"`
	MontoPagado   decimal.Decimal `json:"monto_pagado" validate:"required,gt=0,dec2"`
	MetodoPago    string          `json:"metodo_pago"`
	Observaciones string          `json:"observaciones" validate:"max=255"`
}

func (h *PagoHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, out)
}

func (h *PagoHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, dto)
}

// Create records a payment against the prestamo's balance.
func (h *PagoHandler) Create(c echo.Context) error {
	p, err := caller(c)
	if err != nil {
		return err
	}
	var req createPagoReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	dto, err := h.uc.Record(c.Request().Context(), pago.RecordInput{
		PrestamoID:    req.PrestamoID,
		MontoPagado:   req.MontoPagado,
		MetodoPago:    req.MetodoPago,
		Observaciones: req.Observaciones,
		Actor:         p.Name,
	})
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, dto)
}

// Delete reverses a payment; the balance goes back up.
func (h *PagoHandler) Delete(c echo.Context) error {
	p, err := caller(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if _, err := h.uc.Reverse(c.Request().Context(), id, p.Name); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
