package solicitud

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prestamos-backend/internal/domain/cliente"
	"prestamos-backend/internal/domain/prestamo"
	"prestamos-backend/internal/domain/solicitud"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	repo      solicitud.Repository
	clientes  cliente.Repository
	prestamos prestamo.Repository
	now       func() time.Time
}

func NewUsecase(r solicitud.Repository, c cliente.Repository, p prestamo.Repository) *Usecase {
	return &Usecase{repo: r, clientes: c, prestamos: p, now: time.Now}
}

// Create registers a new application; it always starts EN PROCESO.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*SolicitudDTO, error) {
	if err := validateTerms(in.MontoSolicitado, in.PlazoMeses, in.TasaInteres); err != nil {
		return nil, err
	}
	owner, err := u.cliente(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	s := &solicitud.Solicitud{
		ClienteID:       in.ClienteID,
		MontoSolicitado: in.MontoSolicitado.Round(2),
		PlazoMeses:      in.PlazoMeses,
		TasaInteres:     in.TasaInteres.Round(2),
		Estado:          solicitud.EstadoEnProceso,
		Observaciones:   in.Observaciones,
		FechaSolicitud:  u.now().UTC(),
		UsuarioCrea:     in.Actor,
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create solicitud: %w", err)
	}
	s.Cliente = owner
	return toDTO(s), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*SolicitudDTO, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

func (u *Usecase) List(ctx context.Context) ([]SolicitudDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	out := make([]SolicitudDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// Update applies a partial change. Estado is checked for membership only;
// any estado may follow any other.
func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateInput) (*SolicitudDTO, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Estado != nil {
		e := solicitud.Estado(*in.Estado)
		if !e.Valid() {
			return nil, solicitud.ErrInvalidEstado
		}
		s.Estado = e
	}
	if in.ClienteID != nil && *in.ClienteID != s.ClienteID {
		owner, err := u.cliente(ctx, *in.ClienteID)
		if err != nil {
			return nil, err
		}
		s.ClienteID, s.Cliente = owner.ID, owner
	}
	if in.MontoSolicitado != nil {
		s.MontoSolicitado = in.MontoSolicitado.Round(2)
	}
	if in.PlazoMeses != nil {
		s.PlazoMeses = *in.PlazoMeses
	}
	if in.TasaInteres != nil {
		s.TasaInteres = in.TasaInteres.Round(2)
	}
	if in.Observaciones != nil {
		s.Observaciones = *in.Observaciones
	}
	if err := validateTerms(s.MontoSolicitado, s.PlazoMeses, s.TasaInteres); err != nil {
		return nil, err
	}
	s.UsuarioActualiza = in.Actor

	if err := u.repo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("update solicitud: %w", err)
	}
	return toDTO(s), nil
}

// Delete refuses once the solicitud has been promoted to a prestamo.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	_, err := u.prestamos.GetBySolicitudID(ctx, id)
	switch {
	case err == nil:
		return solicitud.ErrHasPrestamo
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("check prestamo: %w", err)
	}
	switch err := u.repo.Delete(ctx, id); {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return solicitud.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return solicitud.ErrHasPrestamo
	default:
		return fmt.Errorf("delete solicitud: %w", err)
	}
}

func (u *Usecase) load(ctx context.Context, id uint64) (*solicitud.Solicitud, error) {
	s, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, solicitud.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get solicitud: %w", err)
	}
	return s, nil
}

func (u *Usecase) cliente(ctx context.Context, id uint64) (*cliente.Cliente, error) {
	c, err := u.clientes.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, solicitud.ErrClienteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

func validateTerms(monto decimal.Decimal, plazo int, tasa decimal.Decimal) error {
	switch {
	case !monto.IsPositive():
		return solicitud.ErrInvalidMonto
	case plazo < 1:
		return solicitud.ErrInvalidPlazo
	case tasa.IsNegative():
		return solicitud.ErrInvalidTasa
	}
	return nil
}

func toDTO(s *solicitud.Solicitud) *SolicitudDTO {
	dto := &SolicitudDTO{
		ID:               s.ID,
		ClienteID:        s.ClienteID,
		MontoSolicitado:  s.MontoSolicitado.StringFixed(2),
		PlazoMeses:       s.PlazoMeses,
		TasaInteres:      s.TasaInteres.StringFixed(2),
		Estado:           string(s.Estado),
		Observaciones:    s.Observaciones,
		FechaSolicitud:   s.FechaSolicitud,
		UsuarioCrea:      s.UsuarioCrea,
		UsuarioActualiza: s.UsuarioActualiza,
		FechaCrea:        s.CreatedAt,
		FechaActualiza:   s.UpdatedAt,
	}
	if s.Cliente != nil {
		dto.ClienteNombre = s.Cliente.DisplayName()
	}
	return dto
}
