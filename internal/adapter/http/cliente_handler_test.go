package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prestamos-backend/internal/adapter/middleware"
	domain "prestamos-backend/internal/domain/cliente"
	"prestamos-backend/internal/testutil/clientemock"
	"prestamos-backend/internal/testutil/solicitudmock"
	"prestamos-backend/internal/usecase/auth"
	uc "prestamos-backend/internal/usecase/cliente"

	"github.com/labstack/echo/v4"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"gorm.io/gorm"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	log, _ := logtest.NewNullLogger()
	return NewEcho(log)
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// serve runs one request through h with a signed-in caller named "cajero".
func serve(e *echo.Echo, method, path string, body *bytes.Reader, h echo.HandlerFunc) *httptest.ResponseRecorder {
	var req *stdhttp.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, body)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.Add(method, "/t/:id", func(c echo.Context) error {
		middleware.SetPrincipal(c, &auth.Principal{UserID: 1, Name: "cajero"})
		return h(c)
	})
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) Envelope {
	t.Helper()
	var raw struct {
		Envelope
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}
	if data != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			t.Fatalf("data: %v", err)
		}
	}
	return raw.Envelope
}

var validCliente = map[string]any{
	"primer_nombre":    "Ana",
	"primer_apellido":  "López",
	"dpi":              "1234567890101",
	"nit":              "1234567-8",
	"fecha_nacimiento": "1990-05-17",
	"correo":           "ana@example.com",
}

// -------- tests --------

func TestCreateCliente_Success(t *testing.T) {
	var saved *domain.Cliente
	repo := &clientemock.Repo{
		ExistsByDPIFn: func(context.Context, string, uint64) (bool, error) { return false, nil },
		ExistsByNITFn: func(context.Context, string, uint64) (bool, error) { return false, nil },
		CreateFn: func(_ context.Context, c *domain.Cliente) error {
			c.ID = 7
			c.CreatedAt = time.Now().UTC()
			saved = c
			return nil
		},
	}
	h := NewClienteHandler(uc.NewUsecase(repo, &solicitudmock.Repo{}))

	rec := serve(newEchoWithValidator(), stdhttp.MethodPost, "/t/0", mustJSON(validCliente), h.Create)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("want 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var dto uc.ClienteDTO
	env := decodeEnvelope(t, rec, &dto)
	if env.Status != "success" || dto.ID != 7 || dto.FechaNacimiento != "1990-05-17" {
		t.Fatalf("unexpected %+v %+v", env, dto)
	}
	if saved.UsuarioCrea != "cajero" {
		t.Fatalf("actor not stamped: %q", saved.UsuarioCrea)
	}
	if !saved.FechaNacimiento.Equal(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("fecha: %v", saved.FechaNacimiento)
	}
}

func TestCreateCliente_ValidationErrors(t *testing.T) {
	h := NewClienteHandler(uc.NewUsecase(&clientemock.Repo{}, &solicitudmock.Repo{}))

	body := map[string]any{"dpi": strings.Repeat("9", 21), "fecha_nacimiento": "1990-13-01"}
	rec := serve(newEchoWithValidator(), stdhttp.MethodPost, "/t/0", mustJSON(body), h.Create)
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec, nil)
	for _, f := range []string{"primer_nombre", "primer_apellido", "dpi", "nit", "fecha_nacimiento"} {
		if !containsFieldMsg(env.Details, f, "") {
			t.Fatalf("missing detail for %s: %+v", f, env.Details)
		}
	}
}

func TestCreateCliente_BadBody(t *testing.T) {
	h := NewClienteHandler(uc.NewUsecase(&clientemock.Repo{}, &solicitudmock.Repo{}))
	rec := serve(newEchoWithValidator(), stdhttp.MethodPost, "/t/0", bytes.NewReader([]byte(`{"dpi":`)), h.Create)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestCreateCliente_DuplicateDPI(t *testing.T) {
	repo := &clientemock.Repo{
		ExistsByDPIFn: func(context.Context, string, uint64) (bool, error) { return true, nil },
		ExistsByNITFn: func(context.Context, string, uint64) (bool, error) { return false, nil },
	}
	h := NewClienteHandler(uc.NewUsecase(repo, &solicitudmock.Repo{}))

	rec := serve(newEchoWithValidator(), stdhttp.MethodPost, "/t/0", mustJSON(validCliente), h.Create)
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec, nil); !containsFieldMsg(env.Details, "dpi", "DPI") {
		t.Fatalf("details: %+v", env.Details)
	}
}

func TestGetCliente_NotFoundAndBadID(t *testing.T) {
	repo := &clientemock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.Cliente, error) { return nil, gorm.ErrRecordNotFound },
	}
	h := NewClienteHandler(uc.NewUsecase(repo, &solicitudmock.Repo{}))

	if rec := serve(newEchoWithValidator(), stdhttp.MethodGet, "/t/5", nil, h.Get); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
	if rec := serve(newEchoWithValidator(), stdhttp.MethodGet, "/t/abc", nil, h.Get); rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestDeleteCliente_RestrictedAndNoContent(t *testing.T) {
	repo := &clientemock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domain.Cliente, error) { return &domain.Cliente{ID: id}, nil },
	}
	count := int64(2)
	sols := &solicitudmock.Repo{
		CountByClienteIDFn: func(context.Context, uint64) (int64, error) { return count, nil },
	}
	h := NewClienteHandler(uc.NewUsecase(repo, sols))

	if rec := serve(newEchoWithValidator(), stdhttp.MethodDelete, "/t/3", nil, h.Delete); rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("with solicitudes => want 400, got %d", rec.Code)
	}
	count = 0
	rec := serve(newEchoWithValidator(), stdhttp.MethodDelete, "/t/3", nil, h.Delete)
	if rec.Code != stdhttp.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("want 204 without body, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestUpdateCliente_Partial(t *testing.T) {
	stored := &domain.Cliente{
		ID: 4, PrimerNombre: "Ana", PrimerApellido: "López", DPI: "1", NIT: "2",
		FechaNacimiento: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
	}
	var savedActor string
	repo := &clientemock.Repo{
		GetByIDFn:     func(context.Context, uint64) (*domain.Cliente, error) { c := *stored; return &c, nil },
		ExistsByDPIFn: func(context.Context, string, uint64) (bool, error) { return false, nil },
		ExistsByNITFn: func(context.Context, string, uint64) (bool, error) { return false, nil },
		SaveFn: func(_ context.Context, c *domain.Cliente) error {
			savedActor = c.UsuarioActualiza
			return nil
		},
	}
	h := NewClienteHandler(uc.NewUsecase(repo, &solicitudmock.Repo{}))

	rec := serve(newEchoWithValidator(), stdhttp.MethodPut, "/t/4", mustJSON(map[string]any{"telefono": "5555-1234"}), h.Update)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("want 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var dto uc.ClienteDTO
	decodeEnvelope(t, rec, &dto)
	if dto.Telefono != "5555-1234" || dto.PrimerNombre != "Ana" || dto.FechaNacimiento != "1990-05-17" {
		t.Fatalf("partial update: %+v", dto)
	}
	if savedActor != "cajero" {
		t.Fatalf("actor: %q", savedActor)
	}
}
