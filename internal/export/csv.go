// Package export persists the growth record of a DLA run.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"dlagrow/internal/growth"

	errgo "gopkg.in/errgo.v1"
)

// maxProbe bounds the search for an unused output name.
const maxProbe = 100000

// ErrNoFreeName is returned when every candidate file name is taken.
var ErrNoFreeName = errgo.New("no free output file name")

// NextFilename returns the first fractDim<N>.csv in dir, N counting from 1,
// that does not exist yet.
func NextFilename(dir string) (string, error) {
	for n := 1; n <= maxProbe; n++ {
		path := filepath.Join(dir, fmt.Sprintf("fractDim%d.csv", n))
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", errgo.Notef(err, "cannot probe %s", path)
		}
	}
	return "", errgo.WithCausef(nil, ErrNoFreeName, "all of fractDim1..%d.csv exist in %s", maxProbe, dir)
}

// CSVExporter appends growth samples as particleIndex,clusterRadius,fractalDimension
// rows. There is no header row.
type CSVExporter struct {
	f    *os.File
	w    *csv.Writer
	path string
	rows int
}

// Create opens the next free fractDim<N>.csv in dir. The file is created
// exclusively so an earlier run's output is never truncated.
func Create(dir string) (*CSVExporter, error) {
	for attempt := 0; attempt < 3; attempt++ {
		path, err := NextFilename(dir)
		if err != nil {
			return nil, errgo.Mask(err, errgo.Is(ErrNoFreeName))
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if os.IsExist(err) {
			// Lost a race with another writer; probe again.
			continue
		}
		if err != nil {
			return nil, errgo.Notef(err, "cannot create %s", path)
		}
		return &CSVExporter{f: f, w: csv.NewWriter(f), path: path}, nil
	}
	return nil, errgo.WithCausef(nil, ErrNoFreeName, "output names in %s kept being taken", dir)
}

// Path returns the file being written.
func (e *CSVExporter) Path() string { return e.path }

// Rows returns how many samples were written.
func (e *CSVExporter) Rows() int { return e.rows }

// Write appends one sample.
func (e *CSVExporter) Write(s growth.Sample) error {
	if e.w == nil {
		return errgo.Newf("write to closed exporter %s", e.path)
	}
	rec := []string{
		strconv.Itoa(s.Index),
		strconv.FormatFloat(s.Radius, 'g', -1, 64),
		strconv.FormatFloat(s.Dimension, 'g', -1, 64),
	}
	if err := e.w.Write(rec); err != nil {
		return errgo.Notef(err, "cannot write row %d to %s", s.Index, e.path)
	}
	e.rows++
	return nil
}

// WriteAll appends every sample in order.
func (e *CSVExporter) WriteAll(samples []growth.Sample) error {
	for _, s := range samples {
		if err := e.Write(s); err != nil {
			return errgo.Mask(err)
		}
	}
	return nil
}

// Flush pushes buffered rows to the file.
func (e *CSVExporter) Flush() error {
	if e.w == nil {
		return nil
	}
	e.w.Flush()
	if err := e.w.Error(); err != nil {
		return errgo.Notef(err, "cannot flush %s", e.path)
	}
	return nil
}

// Close flushes and closes the file. Closing twice is a no-op.
func (e *CSVExporter) Close() error {
	if e.f == nil {
		return nil
	}
	flushErr := e.Flush()
	closeErr := e.f.Close()
	e.f, e.w = nil, nil
	if flushErr != nil {
		return flushErr
	}
	if closeErr != nil {
		return errgo.Notef(closeErr, "cannot close %s", e.path)
	}
	return nil
}
