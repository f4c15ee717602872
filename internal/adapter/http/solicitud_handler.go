package http

import (
	"net/http"

	"prestamos-backend/internal/usecase/solicitud"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type SolicitudHandler struct{ uc *solicitud.Usecase }

func NewSolicitudHandler(uc *solicitud.Usecase) *SolicitudHandler { return &SolicitudHandler{uc: uc} }

type createSolicitudReq struct {
	ClienteID       uint64           `json:"cliente_id" validate:"required"`
	MontoSolicitado decimal.Decimal  `json:"monto_solicitado" validate:"required,gt=0,dec2"`
	PlazoMeses      int              `json:"plazo_meses" validate:"required,min=1"`
	TasaInteres     *decimal.Decimal `json:"tasa_interes" validate:"required,gte=0,lte=999.99,dec2"`
	Observaciones   string           `json:"observaciones" validate:"max=255"`
}

type updateSolicitudReq struct {
	ClienteID       *uint64          `json:"cliente_id" validate:"omitnil,min=1"`
	MontoSolicitado *decimal.Decimal `json:"monto_solicitado" validate:"omitnil,gt=0,dec2"`
	PlazoMeses      *int             `json:"plazo_meses" validate:"omitnil,min=1"`
	TasaInteres     *decimal.Decimal `json:"tasa_interes" validate:"omitnil,gte=0,lte=999.99,dec2"`
	Estado          *string          `json:"estado"`
	Observaciones   *string          `json:"observaciones" validate:"omitnil,max=255"`
}

func (h *SolicitudHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, out)
}

func (h *SolicitudHandler) Get(c echo.Context) error {
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

func (h *SolicitudHandler) Create(c echo.Context) error {
	p, err := caller(c)
	if err != nil {
		return err
	}
	var req createSolicitudReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), solicitud.CreateInput{
		ClienteID:       req.ClienteID,
		MontoSolicitado: req.MontoSolicitado,
		PlazoMeses:      req.PlazoMeses,
		TasaInteres:     *req.TasaInteres,
		Observaciones:   req.Observaciones,
		Actor:           p.Name,
	})
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, dto)
}

func (h *SolicitudHandler) Update(c echo.Context) error {
	p, err := caller(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req updateSolicitudReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), id, solicitud.UpdateInput{
		ClienteID:       req.ClienteID,
		MontoSolicitado: req.MontoSolicitado,
		PlazoMeses:      req.PlazoMeses,
		TasaInteres:     req.TasaInteres,
		Estado:          req.Estado,
		Observaciones:   req.Observaciones,
		Actor:           p.Name,
	})
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, dto)
}

func (h *SolicitudHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
