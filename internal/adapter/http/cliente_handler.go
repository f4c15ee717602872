package http

import (
	"net/http"
	"time"

	"prestamos-backend/internal/usecase/cliente"

	"github.com/labstack/echo/v4"
)

type ClienteHandler struct{ uc *cliente.Usecase }

func NewClienteHandler(uc *cliente.Usecase) *ClienteHandler { return &ClienteHandler{uc: uc} }

type createClienteReq struct {
	PrimerNombre    string `json:"primer_nombre" validate:"required,max=100"`
	SegundoNombre   string `json:"segundo_nombre" validate:"max=100"`
	PrimerApellido  string `json:"primer_apellido" validate:"required,max=100"`
	SegundoApellido string `json:"segundo_apellido" validate:"max=100"`
	DPI             string `json:"dpi" validate:"required,max=20"`
	NIT             string `json:"nit" validate:"required,max=20"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"required,datetime=2006-01-02"`
	Direccion       string `json:"direccion" validate:"max=255"`
	Correo          string `json:"correo" validate:"omitempty,email,max=100"`
	Telefono        string `json:"telefono" validate:"max=20"`
}

type updateClienteReq struct {
	PrimerNombre    *string `json:"primer_nombre" validate:"omitnil,min=1,max=100"`
	SegundoNombre   *string `json:"segundo_nombre" validate:"omitnil,max=100"`
	PrimerApellido  *string `json:"primer_apellido" validate:"omitnil,min=1,max=100"`
	SegundoApellido *string `json:"segundo_apellido" validate:"omitnil,max=100"`
	DPI             *string `json:"dpi" validate:"omitnil,min=1,max=20"`
	NIT             *string `json:"nit" validate:"omitnil,min=1,max=20"`
	FechaNacimiento *string `json:"fecha_nacimiento" validate:"omitnil,datetime=2006-01-02"`
	Direccion       *string `json:"direccion" validate:"omitnil,max=255"`
	Correo          *string `json:"correo" validate:"omitnil,max=100,email|len=0"`
	Telefono        *string `json:"telefono" validate:"omitnil,max=20"`
}

// validated by the datetime tag first
func parseDate(s string) time.Time {
	t, _ := time.ParseInLocation(cliente.DateLayout, s, time.UTC)
	return t
}

func (h *ClienteHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, out)
}

func (h *ClienteHandler) Get(c echo.Context) error {
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

func (h *ClienteHandler) Create(c echo.Context) error {
	p, err := caller(c)
	if err != nil {
		return err
	}
	var req createClienteReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), cliente.CreateInput{
		PrimerNombre:    req.PrimerNombre,
		SegundoNombre:   req.SegundoNombre,
		PrimerApellido:  req.PrimerApellido,
		SegundoApellido: req.SegundoApellido,
		DPI:             req.DPI,
		NIT:             req.NIT,
		FechaNacimiento: parseDate(req.FechaNacimiento),
		Direccion:       req.Direccion,
		Correo:          req.Correo,
		Telefono:        req.Telefono,
		Actor:           p.Name,
	})
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, dto)
}

func (h *ClienteHandler) Update(c echo.Context) error {
	p, err := caller(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req updateClienteReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in := cliente.UpdateInput{
		PrimerNombre:    req.PrimerNombre,
		SegundoNombre:   req.SegundoNombre,
		PrimerApellido:  req.PrimerApellido,
		SegundoApellido: req.SegundoApellido,
		DPI:             req.DPI,
		NIT:             req.NIT,
		Direccion:       req.Direccion,
		Correo:          req.Correo,
		Telefono:        req.Telefono,
		Actor:           p.Name,
	}
	if req.FechaNacimiento != nil {
		d := parseDate(*req.FechaNacimiento)
		in.FechaNacimiento = &d
	}
	dto, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, dto)
}

func (h *ClienteHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
