// Package dump registers field-dump regions on a simulation structure and
// manages their output directories.
//
// The simulation object is abstracted behind the [Structure] interface so
// the package stays independent of any particular solver binding; tests use
// an in-memory fake. Box coordinates are given in the structure's length
// unit and converted to meters on registration.
package dump

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Errors returned by dump operations.
var (
	ErrNilStructure = errors.New("dump: structure must not be nil")
	ErrBoxOrder     = errors.New("dump: box start must not exceed stop on any axis")
)

// FieldType selects which field quantity a dump records. The values match
// the solver's dump type codes.
type FieldType int

const (
	// FieldE records the electric field.
	FieldE FieldType = iota
	// FieldH records the magnetic field.
	FieldH
	// FieldCurrent records the electric conduction current.
	FieldCurrent
	// FieldCurrentDensity records the current density.
	FieldCurrentDensity
)

// Region is a registered dump region accepting box volumes.
type Region interface {
	AddBox(start, stop [3]float64) error
}

// Structure is the simulation-object handle a dump registers against.
type Structure interface {
	// Unit returns the mesh length unit in meters (e.g. 1e-3 for mm).
	Unit() float64
	// AddDump registers a dump writing files with the given path prefix.
	AddDump(path string, fieldType FieldType) (Region, error)
}

// Box is an axis-aligned volume given by two opposite corners, in the
// structure's length unit.
type Box [2][3]float64

// FieldDump is a field-dump region registered on a structure. Its output
// files accumulate under Dir.
type FieldDump struct {
	cs        Structure
	box       Box
	fieldType FieldType
	dirPath   string
	prefix    string
	viewer    string
}

// New registers a field dump for the given box on the structure. Without
// WithDirPath, dump files go to a fresh temp directory.
func New(cs Structure, box Box, opts ...Option) (*FieldDump, error) {
	if cs == nil {
		return nil, ErrNilStructure
	}

	for axis := 0; axis < 3; axis++ {
		if box[0][axis] > box[1][axis] {
			return nil, fmt.Errorf("%w: axis %d: %g > %g", ErrBoxOrder, axis, box[0][axis], box[1][axis])
		}
	}

	cfg := applyOptions(opts...)

	dir := cfg.DirPath
	if dir == "" {
		var err error

		dir, err = os.MkdirTemp("", "emkit-dump-")
		if err != nil {
			return nil, fmt.Errorf("dump: failed to create dump directory: %w", err)
		}
	}

	d := &FieldDump{
		cs:        cs,
		box:       box,
		fieldType: cfg.FieldType,
		dirPath:   dir,
		prefix:    cfg.Prefix,
		viewer:    cfg.Viewer,
	}

	region, err := cs.AddDump(filepath.Join(dir, cfg.Prefix), cfg.FieldType)
	if err != nil {
		return nil, fmt.Errorf("dump: failed to register dump: %w", err)
	}

	// The solver expects box corners in meters.
	unit := cs.Unit()

	var start, stop [3]float64
	for axis := 0; axis < 3; axis++ {
		start[axis] = box[0][axis] * unit
		stop[axis] = box[1][axis] * unit
	}

	if err := region.AddBox(start, stop); err != nil {
		return nil, fmt.Errorf("dump: failed to add dump box: %w", err)
	}

	return d, nil
}

// Dir returns the directory the dump writes its files to.
func (d *FieldDump) Dir() string {
	return d.dirPath
}

// FieldType returns the recorded field quantity.
func (d *FieldDump) FieldType() FieldType {
	return d.fieldType
}

// Box returns the dump volume in the structure's length unit.
func (d *FieldDump) Box() Box {
	return d.box
}

// Save copies the dump's output files into dir, creating it if needed.
// Subdirectories are not expected in dump output and are skipped.
func (d *FieldDump) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("dump: failed to create save directory: %w", err)
	}

	entries, err := os.ReadDir(d.dirPath)
	if err != nil {
		return fmt.Errorf("dump: failed to read dump directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if err := copyFile(filepath.Join(d.dirPath, entry.Name()), filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("dump: failed to save %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// MaxPriority returns a region priority that won't be overridden.
func MaxPriority() int {
	return 999
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
