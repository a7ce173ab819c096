// Package interp3d approximates expensive scalar functions of three
// variables. The function is sampled once on a configurable, possibly
// non-uniformly spaced grid; afterwards queries anywhere inside the
// domain are answered by local polynomial interpolation instead of
// calling the function again.
package interp3d

import (
	"fmt"
	"io"

	"github.com/nbrandt/interp3d/field"
	"github.com/nbrandt/interp3d/grid"
	"github.com/nbrandt/interp3d/interpolate"
	fio "github.com/nbrandt/interp3d/io"
)

// Mode selects the interpolation scheme of a query.
type Mode = interpolate.Mode

const (
	Tricubic         = interpolate.Tricubic
	BicubicUnilinear = interpolate.BicubicUnilinear
)

// Interp3D owns one sampled field and answers interpolation queries
// against it. The zero value is valid but empty; fill it with Generate
// or read data back with ReadFrom.
type Interp3D struct {
	f  *field.Field
	ev *interpolate.Evaluator
}

// New returns an empty interpolator.
func New() *Interp3D { return &Interp3D{} }

// Generate builds the grid described by cfg, samples s once per interior
// node, and replaces the interpolator's data. Grid and samples are
// swapped in together: if generation fails, the previous data remains
// untouched, and queries never see a half-replaced state.
func (ip *Interp3D) Generate(s field.Sampler, cfg *grid.Config) error {
	return ip.generate(s, cfg, 1)
}

// GenerateParallel is Generate with the sampling pass split across
// workers goroutines. s must be pure or externally synchronized; see
// field.GenerateParallel.
func (ip *Interp3D) GenerateParallel(
	s field.Sampler, cfg *grid.Config, workers int,
) error {
	return ip.generate(s, cfg, workers)
}

func (ip *Interp3D) generate(
	s field.Sampler, cfg *grid.Config, workers int,
) error {
	g, err := grid.New(cfg)
	if err != nil {
		return err
	}

	f := field.New(g)
	if workers <= 1 {
		f.Generate(s)
	} else {
		f.GenerateParallel(s, workers)
	}

	ip.f = f
	ip.ev = interpolate.New(f)
	return nil
}

// FromConfig constructs an interpolator and generates its data in one
// call.
func FromConfig(s field.Sampler, cfg *grid.Config) (*Interp3D, error) {
	ip := New()
	if err := ip.Generate(s, cfg); err != nil {
		return nil, err
	}
	return ip, nil
}

// Interpolate evaluates the sampled function at (x, y, z). It returns an
// interpolate.DomainError if the point lies outside the domain covered
// by interior nodes.
func (ip *Interp3D) Interpolate(x, y, z float64, mode Mode) (float64, error) {
	if ip.ev == nil {
		return 0, fmt.Errorf("interp3d: no data generated or loaded")
	}
	return ip.ev.Eval(x, y, z, mode)
}

// Field returns the interpolator's sampled field, or nil if no data has
// been generated.
func (ip *Interp3D) Field() *field.Field { return ip.f }

// Grid returns the interpolator's grid, or nil if no data has been
// generated.
func (ip *Interp3D) Grid() *grid.Grid {
	if ip.f == nil {
		return nil
	}
	return ip.f.Grid()
}

// WriteTo writes the interpolator's grid and samples to wr.
func (ip *Interp3D) WriteTo(wr io.Writer) error {
	if ip.f == nil {
		return fmt.Errorf("interp3d: no data generated or loaded")
	}
	return fio.Write(wr, ip.f)
}

// ReadFrom replaces the interpolator's data with a field read from rd.
// Like Generate, the replacement is all-or-nothing.
func (ip *Interp3D) ReadFrom(rd io.Reader) error {
	f, err := fio.Read(rd)
	if err != nil {
		return err
	}
	ip.f = f
	ip.ev = interpolate.New(f)
	return nil
}

// WriteFile writes the interpolator's data to the named file.
func (ip *Interp3D) WriteFile(fname string) error {
	if ip.f == nil {
		return fmt.Errorf("interp3d: no data generated or loaded")
	}
	return fio.WriteFile(fname, ip.f)
}

// FromFile constructs an interpolator from a previously written file.
func FromFile(fname string) (*Interp3D, error) {
	f, err := fio.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return &Interp3D{f: f, ev: interpolate.New(f)}, nil
}
