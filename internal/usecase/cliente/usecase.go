package cliente

import (
	"context"
	"errors"
	"fmt"

	"prestamos-backend/internal/domain/cliente"
	"prestamos-backend/internal/domain/solicitud"

	"gorm.io/gorm"
)

type Usecase struct {
	repo        cliente.Repository
	solicitudes solicitud.Repository
}

func NewUsecase(r cliente.Repository, s solicitud.Repository) *Usecase {
	return &Usecase{repo: r, solicitudes: s}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ClienteDTO, error) {
	if err := u.checkUnique(ctx, in.DPI, in.NIT, 0); err != nil {
		return nil, err
	}
	c := &cliente.Cliente{
		PrimerNombre:    in.PrimerNombre,
		SegundoNombre:   in.SegundoNombre,
		PrimerApellido:  in.PrimerApellido,
		SegundoApellido: in.SegundoApellido,
		DPI:             in.DPI,
		NIT:             in.NIT,
		FechaNacimiento: in.FechaNacimiento.UTC(),
		Direccion:       in.Direccion,
		Correo:          in.Correo,
		Telefono:        in.Telefono,
		UsuarioCrea:     in.Actor,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, u.writeErr(ctx, "create cliente", c, err)
	}
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*ClienteDTO, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]ClienteDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	out := make([]ClienteDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateInput) (*ClienteDTO, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	dpi, nit := c.DPI, c.NIT
	if in.DPI != nil {
		dpi = *in.DPI
	}
	if in.NIT != nil {
		nit = *in.NIT
	}
	if err := u.checkUnique(ctx, dpi, nit, c.ID); err != nil {
		return nil, err
	}

	setStr(&c.PrimerNombre, in.PrimerNombre)
	setStr(&c.SegundoNombre, in.SegundoNombre)
	setStr(&c.PrimerApellido, in.PrimerApellido)
	setStr(&c.SegundoApellido, in.SegundoApellido)
	setStr(&c.Direccion, in.Direccion)
	setStr(&c.Correo, in.Correo)
	setStr(&c.Telefono, in.Telefono)
	c.DPI, c.NIT = dpi, nit
	if in.FechaNacimiento != nil {
		c.FechaNacimiento = in.FechaNacimiento.UTC()
	}
	c.UsuarioActualiza = in.Actor

	if err := u.repo.Save(ctx, c); err != nil {
		return nil, u.writeErr(ctx, "update cliente", c, err)
	}
	return toDTO(c), nil
}

// Delete refuses while the cliente still owns solicitudes.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	n, err := u.solicitudes.CountByClienteID(ctx, id)
	if err != nil {
		return fmt.Errorf("count solicitudes: %w", err)
	}
	if n > 0 {
		return cliente.ErrHasSolicitudes
	}
	switch err := u.repo.Delete(ctx, id); {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return cliente.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		// a solicitud slipped in after the count
		return cliente.ErrHasSolicitudes
	default:
		return fmt.Errorf("delete cliente: %w", err)
	}
}

func (u *Usecase) load(ctx context.Context, id uint64) (*cliente.Cliente, error) {
	c, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, cliente.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

func (u *Usecase) checkUnique(ctx context.Context, dpi, nit string, excludeID uint64) error {
	taken, err := u.repo.ExistsByDPI(ctx, dpi, excludeID)
	if err != nil {
		return fmt.Errorf("check dpi: %w", err)
	}
	if taken {
		return cliente.ErrDuplicateDPI
	}
	taken, err = u.repo.ExistsByNIT(ctx, nit, excludeID)
	if err != nil {
		return fmt.Errorf("check nit: %w", err)
	}
	if taken {
		return cliente.ErrDuplicateNIT
	}
	return nil
}

// writeErr maps a unique-index hit that raced the pre-check back to the
// field that collided.
func (u *Usecase) writeErr(ctx context.Context, op string, c *cliente.Cliente, err error) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if taken, _ := u.repo.ExistsByNIT(ctx, c.NIT, c.ID); taken {
		return cliente.ErrDuplicateNIT
	}
	return cliente.ErrDuplicateDPI
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func toDTO(c *cliente.Cliente) *ClienteDTO {
	return &ClienteDTO{
		ID:               c.ID,
		PrimerNombre:     c.PrimerNombre,
		SegundoNombre:    c.SegundoNombre,
		PrimerApellido:   c.PrimerApellido,
		SegundoApellido:  c.SegundoApellido,
		NombreCompleto:   c.FullName(),
		DPI:              c.DPI,
		NIT:              c.NIT,
		FechaNacimiento:  c.FechaNacimiento.Format(DateLayout),
		Direccion:        c.Direccion,
		Correo:           c.Correo,
		Telefono:         c.Telefono,
		UsuarioCrea:      c.UsuarioCrea,
		UsuarioActualiza: c.UsuarioActualiza,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
