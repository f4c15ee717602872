package http

import (
	"errors"
	"net/http"
	"strconv"

	"prestamos-backend/internal/domain/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Envelope wraps every response body.
type Envelope struct {
	Status  string       `json:"status"`
	Data    any          `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

var (
	errBadBody   = echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la solicitud inválido")
	errBadID     = echo.NewHTTPError(http.StatusBadRequest, "Identificador inválido")
	errNoSession = echo.NewHTTPError(http.StatusUnauthorized, "No autenticado")
)

func ok(c echo.Context, code int, data any) error {
	return c.JSON(code, Envelope{Status: statusSuccess, Data: data})
}

func parseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errBadID
	}
	return id, nil
}

// bindAndValidate is Bind → 400, then Validate → 422 (through the error handler).
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errBadBody
	}
	return c.Validate(req)
}

var kindStatus = []struct {
	kind error
	code int
}{
	{apperr.ErrValidation, http.StatusUnprocessableEntity},
	{apperr.ErrNotFound, http.StatusNotFound},
	{apperr.ErrInvalidState, http.StatusBadRequest},
	{apperr.ErrUnauthorized, http.StatusUnauthorized},
}

// StatusFor maps an error to its HTTP code and envelope.
func StatusFor(err error) (int, Envelope) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, Envelope{
			Status:  statusError,
			Message: "Los datos enviados no son válidos",
			Details: ToFieldErrors(ve),
		}
	}

	if ae, found := apperr.As(err); found {
		env := Envelope{Status: statusError, Message: ae.Message}
		if ae.Field != "" {
			env.Details = []FieldError{{Field: ae.Field, Message: ae.Message}}
		}
		for _, ks := range kindStatus {
			if errors.Is(ae, ks.kind) {
				return ks.code, env
			}
		}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, isStr := he.Message.(string)
		if !isStr {
			msg = http.StatusText(he.Code)
		}
		return he.Code, Envelope{Status: statusError, Message: msg}
	}

	return http.StatusInternalServerError, Envelope{Status: statusError, Message: "Error interno del servidor"}
}

// NewErrorHandler renders every error, domain or framework, in the
// envelope. 5xx causes are logged; the client only sees a generic message.
func NewErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code, env := StatusFor(err)
		if code >= http.StatusInternalServerError {
			log.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().RequestURI,
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			}).WithError(err).Error("request failed")
		}
		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, env)
		}
		if werr != nil {
			log.WithError(werr).Warn("write error response")
		}
	}
}
