// Package io persists sampled fields and the grids they live on, and
// reads grid configuration files.
package io

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"unsafe"

	"github.com/nbrandt/interp3d/field"
	"github.com/nbrandt/interp3d/grid"
)

// Endianness used by default when writing field files. Files of any
// endianness can be read.
const DefaultEndiannessFlag int32 = -1

/*
The binary format used for field files is as follows:
    |-- 1 --||-- 2 --||-- 3 --||-- ... 4 ... --||-- ... 5 ... --|

    1 - (int32) Flag indicating the endianness of the file. 0 indicates a
        big endian byte ordering and -1 indicates a little endian byte
        order. The flag encodes identically under both orderings, so it
        can be read before the ordering is known.
    2 - (int32) Size of a FieldHeader struct. Should be checked for
        consistency.
    3 - (FieldHeader) Axis slot counts, ghost nodes included.
    4 - ([]float64) The three axis coordinate arrays, x then y then z.
    5 - ([]float64) Contiguous row-major block of sample values.
*/
type FieldHeader struct {
	Nx, Ny, Nz int64
}

// Write writes f and its grid to wr in little endian byte order. Errors
// from wr are propagated unchanged.
func Write(wr io.Writer, f *field.Field) error {
	g := f.Grid()
	nx, ny, nz := g.Dims()
	hd := FieldHeader{int64(nx), int64(ny), int64(nz)}

	order := endianness(DefaultEndiannessFlag)
	if err := binary.Write(wr, order, DefaultEndiannessFlag); err != nil {
		return err
	}
	err := binary.Write(wr, order, int32(unsafe.Sizeof(FieldHeader{})))
	if err != nil {
		return err
	}
	if err := binary.Write(wr, order, &hd); err != nil {
		return err
	}
	for _, coords := range [][]float64{g.X(), g.Y(), g.Z()} {
		if err := binary.Write(wr, order, coords); err != nil {
			return err
		}
	}
	return binary.Write(wr, order, f.Vals())
}

// Read reads a field and its grid back from rd. Coordinates and sample
// values are reproduced bit-exactly. Errors from rd are propagated
// unchanged; structurally invalid content fails with a format error or a
// grid.ConfigError.
func Read(rd io.Reader) (*field.Field, error) {
	// Order doesn't matter for this read, since flags are symmetric.
	var flag int32
	if err := binary.Read(rd, binary.LittleEndian, &flag); err != nil {
		return nil, err
	}
	order := endianness(flag)
	if order == nil {
		return nil, fmt.Errorf("io: unrecognized endianness flag %d", flag)
	}

	var headerSize int32
	if err := binary.Read(rd, order, &headerSize); err != nil {
		return nil, err
	}
	if headerSize != int32(unsafe.Sizeof(FieldHeader{})) {
		return nil, fmt.Errorf(
			"io: expected FieldHeader size of %d, found %d",
			unsafe.Sizeof(FieldHeader{}), headerSize,
		)
	}

	hd := FieldHeader{}
	if err := binary.Read(rd, order, &hd); err != nil {
		return nil, err
	}
	if hd.Nx < 5 || hd.Ny < 5 || hd.Nz < 5 {
		return nil, fmt.Errorf(
			"io: axis slot counts (%d, %d, %d) too small",
			hd.Nx, hd.Ny, hd.Nz,
		)
	}

	xs := make([]float64, hd.Nx)
	ys := make([]float64, hd.Ny)
	zs := make([]float64, hd.Nz)
	vals := make([]float64, hd.Nx*hd.Ny*hd.Nz)
	for _, buf := range [][]float64{xs, ys, zs, vals} {
		if err := binary.Read(rd, order, buf); err != nil {
			return nil, err
		}
	}

	g, err := grid.FromCoords(xs, ys, zs)
	if err != nil {
		return nil, err
	}
	return field.FromVals(g, vals), nil
}

// WriteFile writes f to the named file.
func WriteFile(fname string, f *field.Field) error {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer fp.Close()

	if err := Write(fp, f); err != nil {
		return err
	}
	return fp.Close()
}

// ReadFile reads a field back from the named file.
func ReadFile(fname string) (*field.Field, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Read(fp)
}

func endianness(flag int32) binary.ByteOrder {
	if flag == -1 {
		return binary.LittleEndian
	} else if flag == 0 {
		return binary.BigEndian
	}
	return nil
}
