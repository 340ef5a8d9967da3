package usecase_test

import (
	"context"
	"errors"
	"testing"

	"folio/internal/modules/ambient/domain"
	"folio/internal/modules/ambient/dto"
	ambientout "folio/internal/modules/ambient/port/out"
	"folio/internal/modules/ambient/service"
	"folio/internal/modules/ambient/usecase"
	apperrors "folio/internal/platform/errors"
)

type fakeTarget struct {
	saved   string
	closed  bool
	circles int
}

func (f *fakeTarget) Resize(int, int)                                              {}
func (f *fakeTarget) Clear()                                                       {}
func (f *fakeTarget) Circle(float64, float64, float64, domain.RGB, float64)        { f.circles++ }
func (f *fakeTarget) Line(float64, float64, float64, float64, domain.RGB, float64) {}
func (f *fakeTarget) SavePNG(path string) error                                    { f.saved = path; return nil }
func (f *fakeTarget) Close() error                                                 { f.closed = true; return nil }

func TestSnapshotRendersFrames(t *testing.T) {
	t.Parallel()
	target := &fakeTarget{}
	uc := usecase.NewInteractor(service.NewSnapshotter(func(int, int) ambientout.RasterTarget { return target }, nil))

	out, err := uc.Snapshot(context.Background(), dto.SnapshotInput{Width: 1440, Height: 900, Frames: 5, Seed: 42, Cores: 8, Path: "bg.png"})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if out.Frames != 5 || out.Particles != 30 || out.FPS != 60 || !out.Connections {
		t.Fatalf("unexpected output %+v", out)
	}
	if target.saved != "bg.png" || !target.closed || target.circles != 150 {
		t.Fatalf("target not driven as expected: %+v", target)
	}
}

func TestSnapshotSuppressedAndInvalid(t *testing.T) {
	t.Parallel()
	created := false
	uc := usecase.NewInteractor(service.NewSnapshotter(func(int, int) ambientout.RasterTarget {
		created = true
		return &fakeTarget{}
	}, nil))

	out, err := uc.Snapshot(context.Background(), dto.SnapshotInput{Width: 375, Height: 800, Cores: 2, Path: "x.png"})
	if err != nil || !out.Suppressed || created {
		t.Fatalf("suppressed snapshot must not render: %+v %v created=%v", out, err, created)
	}
	if _, err := uc.Snapshot(context.Background(), dto.SnapshotInput{Width: 0, Height: 10, Path: "x.png"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := uc.Snapshot(context.Background(), dto.SnapshotInput{Width: 10, Height: 10}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty path, got %v", err)
	}
}

func TestBudget(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(nil)
	if got := uc.Budget(dto.BudgetInput{Width: 1440, Height: 900, Cores: 2}); got.Particles != 12 || got.Connections {
		t.Fatalf("unexpected low-end desktop budget %+v", got)
	}
	if got := uc.Budget(dto.BudgetInput{Width: 1440, ReducedMotion: true}); !got.Suppressed || got.Particles != 0 {
		t.Fatalf("reduced motion must suppress: %+v", got)
	}
}
