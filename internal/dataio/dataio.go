// SPDX-License-Identifier: MIT

// Package dataio reads and writes datasets in the tab-delimited layout of
// the reference data directory:
//
//	data.dat          one row per time point, one column per state row
//	connectivity.dat  optional N×N weighted adjacency (row = target)
//	ts_param.dat      replicate count S then points per replicate M
package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/netinfer/matrix"
)

// File names inside a dataset directory.
const (
	DataFile         = "data.dat"
	ConnectivityFile = "connectivity.dat"
	ParamsFile       = "ts_param.dat"
)

// Sentinel errors.
var (
	// ErrEmptyFile indicates a file without numeric rows.
	ErrEmptyFile = errors.New("dataio: file has no data rows")

	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("dataio: rows have differing field counts")

	// ErrBadValue indicates a field that is not a number.
	ErrBadValue = errors.New("dataio: field is not a number")

	// ErrBadParams indicates a ts_param.dat that does not hold two positive
	// integers, or that disagrees with the data length.
	ErrBadParams = errors.New("dataio: invalid time-series parameters")
)

// Dataset is the in-memory form of a dataset directory.
type Dataset struct {
	// Trajectory is N × (Replicates·Length): data.dat transposed.
	Trajectory *matrix.Dense
	// Truth is the adjacency from connectivity.dat, nil when absent.
	Truth *matrix.Dense

	Replicates int // S
	Length     int // M
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return cr
}

// ReadMatrix parses tab-delimited numeric rows. Rows without a tab are
// split on spaces instead. Empty lines and lines starting with '#' are
// skipped; a trailing empty field (from a trailing tab) is ignored.
//
// Errors: ErrEmptyFile, ErrRagged, ErrBadValue.
func ReadMatrix(r io.Reader) (*matrix.Dense, error) {
	cr := newReader(r)
	cr.FieldsPerRecord = -1 // checked below to report ErrRagged ourselves

	var rows [][]float64
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: %w", err)
		}
		if n := len(rec); n > 1 && strings.TrimSpace(rec[n-1]) == "" {
			rec = rec[:n-1]
		}
		if len(rec) == 1 {
			rec = strings.Fields(rec[0]) // space-separated fallback
		}
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("dataio: record %d field %d %q: %w", line, j+1, field, ErrBadValue)
			}
			row[j] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("dataio: record %d has %d fields, want %d: %w", line, len(row), len(rows[0]), ErrRagged)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyFile
	}

	return matrix.NewDenseRows(rows)
}

// WriteMatrix writes m as tab-delimited rows with full float precision.
func WriteMatrix(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("dataio: %w", err)
	}
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	rec := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		row, err := m.RowView(i)
		if err != nil {
			return fmt.Errorf("dataio: %w", err)
		}
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("dataio: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// LoadDataset reads a dataset directory. connectivity.dat is optional.
//
// Errors: os errors for missing data.dat or ts_param.dat, ErrBadParams when
// the rows of data.dat are not S·M, plus the ReadMatrix errors.
func LoadDataset(dir string) (*Dataset, error) {
	raw, err := readFile(filepath.Join(dir, DataFile))
	if err != nil {
		return nil, err
	}
	params, err := readFile(filepath.Join(dir, ParamsFile))
	if err != nil {
		return nil, err
	}
	s, m, err := parseParams(params)
	if err != nil {
		return nil, err
	}
	if raw.Rows() != s*m {
		return nil, fmt.Errorf("dataio: %s has %d rows, want S·M = %d·%d: %w", DataFile, raw.Rows(), s, m, ErrBadParams)
	}
	traj, err := matrix.Transpose(raw)
	if err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}

	ds := &Dataset{Trajectory: traj, Replicates: s, Length: m}
	truth, err := readFile(filepath.Join(dir, ConnectivityFile))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		ds.Truth = truth
	}

	return ds, nil
}

// SaveDataset writes ds into dir (created if needed) in the layout LoadDataset reads.
func SaveDataset(dir string, ds *Dataset) error {
	if ds == nil {
		return fmt.Errorf("dataio: dataset: %w", matrix.ErrNilMatrix)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("dataio: %w", err)
	}
	raw, err := matrix.Transpose(ds.Trajectory)
	if err != nil {
		return fmt.Errorf("dataio: %w", err)
	}
	if err := writeFile(filepath.Join(dir, DataFile), raw); err != nil {
		return err
	}
	params, err := matrix.NewDenseFrom(2, 1, []float64{float64(ds.Replicates), float64(ds.Length)})
	if err != nil {
		return fmt.Errorf("dataio: %w", err)
	}
	if err := writeFile(filepath.Join(dir, ParamsFile), params); err != nil {
		return err
	}
	if ds.Truth != nil {
		return writeFile(filepath.Join(dir, ConnectivityFile), ds.Truth)
	}

	return nil
}

// parseParams accepts S and M as a row or a column.
func parseParams(m *matrix.Dense) (s, l int, err error) {
	vals := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		row, err := m.RowView(i)
		if err != nil {
			return 0, 0, fmt.Errorf("dataio: %w", err)
		}
		vals = append(vals, row...)
	}
	if len(vals) < 2 {
		return 0, 0, fmt.Errorf("dataio: %s holds %d values: %w", ParamsFile, len(vals), ErrBadParams)
	}
	for _, v := range vals[:2] {
		if v < 1 || v != math.Trunc(v) {
			return 0, 0, fmt.Errorf("dataio: %s value %g: %w", ParamsFile, v, ErrBadParams)
		}
	}

	return int(vals[0]), int(vals[1]), nil
}

func readFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}
	defer f.Close()

	m, err := ReadMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return m, nil
}

func writeFile(path string, m *matrix.Dense) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dataio: %w", cerr)
		}
	}()

	return WriteMatrix(f, m)
}
