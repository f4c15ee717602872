package prestamomock

import (
	"context"
	"errors"
	"testing"
)

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}
	if err := m.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete default: want nil, got %v", err)
	}
	if _, err := m.GetByID(ctx, 1); !errors.Is(err, errUnimplemented) {
		t.Fatalf("GetByID default: want errUnimplemented, got %v", err)
	}
	if _, err := m.List(ctx); !errors.Is(err, errUnimplemented) {
		t.Fatalf("List default: want errUnimplemented, got %v", err)
	}
}

func TestRepo_UsesProvidedFunc(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("boom")
	called := false
	m := &Repo{
		DeleteFn: func(gotCtx context.Context, id uint64) error {
			called = true
			if gotCtx != ctx || id != 42 {
				t.Fatalf("Delete args mismatch: id=%d", id)
			}
			return wantErr
		},
	}
	if err := m.Delete(ctx, 42); !errors.Is(err, wantErr) {
		t.Fatalf("Delete: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("DeleteFn not called")
	}
}
