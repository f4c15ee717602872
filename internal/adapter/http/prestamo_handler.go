package http

import (
	"net/http"

	"prestamos-backend/internal/usecase/prestamo"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PrestamoHandler struct{ uc *prestamo.Usecase }

func NewPrestamoHandler(uc *prestamo.Usecase) *PrestamoHandler { return &PrestamoHandler{uc: uc} }

// createPrestamoReq promotes an APROBADO solicitud.
type createPrestamoReq struct {
	SolicitudID   uint64           `json:"solicitud_id" validate:"required"`
	MontoAprobado decimal.Decimal  `json:"monto_aprobado" validate:"required,gt=0,dec2"`
	TasaInteres   *decimal.Decimal `json:"tasa_interes" validate:"required,gte=0,lte=999.99,dec2"`
	PlazoMeses    int              `json:"plazo_meses" validate:"required,min=1"`
}

// saldo_actual is not accepted here; unknown json fields are ignored.
type updatePrestamoReq struct {
	TasaInteres *decimal.Decimal `json:"tasa_interes" validate:"omitnil,gte=0,lte=999.99,dec2"`
	PlazoMeses  *int             `json:"plazo_meses" validate:"omitnil,min=1"`
	Estado      *string          `json:"estado"`
}

func (h *PrestamoHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, out)
}

func (h *PrestamoHandler) Get(c echo.Context) error {
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

func (h *PrestamoHandler) Create(c echo.Context) error {
	p, err := caller(c)
	if err != nil {
		return err
	}
	var req createPrestamoReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	dto, err := h.uc.Promote(c.Request().Context(), prestamo.PromoteInput{
		SolicitudID:   req.SolicitudID,
		MontoAprobado: req.MontoAprobado,
		TasaInteres:   *req.TasaInteres,
		PlazoMeses:    req.PlazoMeses,
		Actor:         p.Name,
	})
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, dto)
}

func (h *PrestamoHandler) Update(c echo.Context) error {
	p, err := caller(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req updatePrestamoReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), id, prestamo.UpdateInput{
		TasaInteres: req.TasaInteres,
		PlazoMeses:  req.PlazoMeses,
		Estado:      req.Estado,
		Actor:       p.Name,
	})
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, dto)
}

func (h *PrestamoHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
