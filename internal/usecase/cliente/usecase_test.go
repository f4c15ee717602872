package cliente

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "prestamos-backend/internal/domain/cliente"
	"prestamos-backend/internal/testutil/clientemock"
	"prestamos-backend/internal/testutil/solicitudmock"

	"gorm.io/gorm"
)

func noDupes() *clientemock.Repo {
	return &clientemock.Repo{
		ExistsByDPIFn: func(context.Context, string, uint64) (bool, error) { return false, nil },
		ExistsByNITFn: func(context.Context, string, uint64) (bool, error) { return false, nil },
	}
}

func TestCreate_StampsActorAndMapsFields(t *testing.T) {
	repo := noDupes()
	repo.CreateFn = func(_ context.Context, c *domain.Cliente) error {
		if c.UsuarioCrea != "operador" {
			t.Fatalf("usuario_crea = %q", c.UsuarioCrea)
		}
		c.ID = 10
		return nil
	}
	uc := NewUsecase(repo, &solicitudmock.Repo{})

	dto, err := uc.Create(context.Background(), CreateInput{
		PrimerNombre: "Ana", SegundoNombre: "María", PrimerApellido: "López",
		DPI: "DPI-1", NIT: "NIT-1",
		FechaNacimiento: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		Actor:           "operador",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.ID != 10 || dto.FechaNacimiento != "1990-05-17" || dto.NombreCompleto != "Ana María López" {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestCreate_DuplicateChecks(t *testing.T) {
	tests := []struct {
		name    string
		dpi     bool
		nit     bool
		wantErr error
	}{
		{"dpi taken", true, false, domain.ErrDuplicateDPI},
		{"nit taken", false, true, domain.ErrDuplicateNIT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &clientemock.Repo{
				ExistsByDPIFn: func(context.Context, string, uint64) (bool, error) { return tt.dpi, nil },
				ExistsByNITFn: func(context.Context, string, uint64) (bool, error) { return tt.nit, nil },
				CreateFn: func(context.Context, *domain.Cliente) error {
					t.Fatalf("Create must not be called")
					return nil
				},
			}
			_, err := NewUsecase(repo, &solicitudmock.Repo{}).Create(context.Background(), CreateInput{DPI: "x", NIT: "y"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreate_UniqueIndexRace(t *testing.T) {
	calls := 0
	repo := &clientemock.Repo{
		ExistsByDPIFn: func(context.Context, string, uint64) (bool, error) { return false, nil },
		ExistsByNITFn: func(context.Context, string, uint64) (bool, error) {
			calls++
			// free on the pre-check, taken once the insert collided
			return calls > 1, nil
		},
		CreateFn: func(context.Context, *domain.Cliente) error { return gorm.ErrDuplicatedKey },
	}
	_, err := NewUsecase(repo, &solicitudmock.Repo{}).Create(context.Background(), CreateInput{DPI: "x", NIT: "y"})
	if !errors.Is(err, domain.ErrDuplicateNIT) {
		t.Fatalf("want ErrDuplicateNIT, got %v", err)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	stored := &domain.Cliente{ID: 3, PrimerNombre: "Ana", PrimerApellido: "López", DPI: "D", NIT: "N", Telefono: "1"}
	repo := noDupes()
	repo.GetByIDFn = func(_ context.Context, id uint64) (*domain.Cliente, error) { return stored, nil }
	repo.ExistsByDPIFn = func(_ context.Context, dpi string, exclude uint64) (bool, error) {
		if exclude != 3 {
			t.Fatalf("update must exclude its own row, got %d", exclude)
		}
		return false, nil
	}
	var saved *domain.Cliente
	repo.SaveFn = func(_ context.Context, c *domain.Cliente) error { saved = c; return nil }

	tel := "5555"
	dto, err := NewUsecase(repo, &solicitudmock.Repo{}).Update(context.Background(), 3, UpdateInput{Telefono: &tel, Actor: "editor"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if saved.Telefono != "5555" || saved.PrimerNombre != "Ana" || saved.DPI != "D" || saved.UsuarioActualiza != "editor" {
		t.Fatalf("saved = %+v", saved)
	}
	if dto.Telefono != "5555" {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &clientemock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.Cliente, error) { return nil, gorm.ErrRecordNotFound },
	}
	_, err := NewUsecase(repo, &solicitudmock.Repo{}).Get(context.Background(), 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	found := func(context.Context, uint64) (*domain.Cliente, error) { return &domain.Cliente{ID: 1}, nil }

	t.Run("restricted by solicitudes", func(t *testing.T) {
		repo := &clientemock.Repo{
			GetByIDFn: found,
			DeleteFn: func(context.Context, uint64) error {
				t.Fatalf("Delete must not be called")
				return nil
			},
		}
		sols := &solicitudmock.Repo{CountByClienteIDFn: func(context.Context, uint64) (int64, error) { return 2, nil }}
		if err := NewUsecase(repo, sols).Delete(context.Background(), 1); !errors.Is(err, domain.ErrHasSolicitudes) {
			t.Fatalf("want ErrHasSolicitudes, got %v", err)
		}
	})

	t.Run("foreign key race", func(t *testing.T) {
		repo := &clientemock.Repo{
			GetByIDFn: found,
			DeleteFn:  func(context.Context, uint64) error { return gorm.ErrForeignKeyViolated },
		}
		sols := &solicitudmock.Repo{CountByClienteIDFn: func(context.Context, uint64) (int64, error) { return 0, nil }}
		if err := NewUsecase(repo, sols).Delete(context.Background(), 1); !errors.Is(err, domain.ErrHasSolicitudes) {
			t.Fatalf("want ErrHasSolicitudes, got %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		deleted := false
		repo := &clientemock.Repo{
			GetByIDFn: found,
			DeleteFn:  func(context.Context, uint64) error { deleted = true; return nil },
		}
		sols := &solicitudmock.Repo{CountByClienteIDFn: func(context.Context, uint64) (int64, error) { return 0, nil }}
		if err := NewUsecase(repo, sols).Delete(context.Background(), 1); err != nil || !deleted {
			t.Fatalf("err=%v deleted=%v", err, deleted)
		}
	})
}
