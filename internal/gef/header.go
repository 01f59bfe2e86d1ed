// Package gef parses GEF (Geotechnical Exchange Format) CPT files into
// depth-indexed profiles.
//
// A GEF file is a header of "#KEYWORD= p1, p2, ..." lines terminated by an
// "#EOH=" line, followed by rows of numbers. The header declares which data
// column holds which measurement, so the column layout is resolved per file.
package gef

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"

	"github.com/rcliao/gef-cpt/internal/model"
)

// EndOfHeader marks the last header line.
const EndOfHeader = "#EOH"

// GEF quantity numbers used in COLUMNINFO.
const (
	quantityPenetrationLength = 1
	quantityConeResistance    = 2
	quantitySleeveFriction    = 3
	quantityPorePressureU2    = 6
	quantityCorrectedDepth    = 11
)

// measurementVarPreExcavation is the MEASUREMENTVAR number for the
// pre-excavated depth.
const measurementVarPreExcavation = "13"

var quantityRoles = map[int]model.ColumnRole{
	quantityPenetrationLength: model.Depth,
	quantityCorrectedDepth:    model.Depth,
	quantityConeResistance:    model.ConeResistance,
	quantitySleeveFriction:    model.SleeveFriction,
	quantityPorePressureU2:    model.PorePressure,
}

// RawMetadata accumulates header values while the header is scanned.
type RawMetadata struct {
	RecordSeparator string
	ColumnSeparator string

	// ColumnVoids maps a 0-based column index to its "no value" sentinel.
	ColumnVoids map[int]float64
	// ColumnIndex maps a column role to its 0-based column index.
	ColumnIndex map[model.ColumnRole]int
	// Units maps a column role to the unit declared for it.
	Units map[model.ColumnRole]string

	OriginX           float64
	OriginY           float64
	TopElevation      float64
	PreExcavatedDepth float64
	TestName          string
	FileDate          string
	StartDate         string
}

// NewRawMetadata returns an empty accumulator with the default separators.
func NewRawMetadata() *RawMetadata {
	return &RawMetadata{
		ColumnSeparator: " ",
		ColumnVoids:     make(map[int]float64),
		ColumnIndex:     make(map[model.ColumnRole]int),
		Units:           make(map[model.ColumnRole]string),
	}
}

// Metadata is the frozen header record handed to BuildProfile.
type Metadata struct {
	RecordSeparator string
	ColumnSeparator string
	ColumnVoids     map[int]float64
	ColumnIndex     map[model.ColumnRole]int
	Units           map[model.ColumnRole]string

	OriginX           float64
	OriginY           float64
	TopElevation      float64
	PreExcavatedDepth float64
	TestName          string
	FileDate          string
	StartDate         string
}

// Finalize copies the accumulated values into a Metadata record that does
// not share maps with m.
func (m *RawMetadata) Finalize() Metadata {
	return Metadata{
		RecordSeparator:   m.RecordSeparator,
		ColumnSeparator:   m.ColumnSeparator,
		ColumnVoids:       maps.Clone(m.ColumnVoids),
		ColumnIndex:       maps.Clone(m.ColumnIndex),
		Units:             maps.Clone(m.Units),
		OriginX:           m.OriginX,
		OriginY:           m.OriginY,
		TopElevation:      m.TopElevation,
		PreExcavatedDepth: m.PreExcavatedDepth,
		TestName:          m.TestName,
		FileDate:          m.FileDate,
		StartDate:         m.StartDate,
	}
}

// Column returns the data column index mapped to role.
func (md Metadata) Column(role model.ColumnRole) (int, bool) {
	idx, ok := md.ColumnIndex[role]
	return idx, ok
}

// ParseHeader scans lines up to and including the end-of-header marker. It
// returns the accumulated metadata and the index of the first data line.
func ParseHeader(lines []string) (*RawMetadata, int, error) {
	md := NewRawMetadata()
	for i, line := range lines {
		if strings.Contains(line, EndOfHeader) {
			return md, i + 1, nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := md.apply(line); err != nil {
			var wrongType *WrongFileTypeError
			if errors.As(err, &wrongType) {
				return nil, 0, err
			}
			return nil, 0, &HeaderError{Line: i + 1, Text: line, Err: err}
		}
	}
	return nil, 0, &HeaderError{Line: len(lines), Err: ErrNoEndOfHeader}
}

// splitKeyword splits "#KEYWORD= a, b" into "KEYWORD" and its raw parameter
// text.
func splitKeyword(line string) (string, string, error) {
	key, rest, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", errNoEquals
	}
	key = strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "#")))
	return key, rest, nil
}

func splitParams(rest string) []string {
	params := strings.Split(rest, ",")
	for i := range params {
		params[i] = strings.TrimSpace(params[i])
	}
	return params
}

// apply folds one keyword line into m.
func (m *RawMetadata) apply(line string) error {
	key, rest, err := splitKeyword(line)
	if err != nil {
		return err
	}
	params := splitParams(rest)

	switch key {
	case "PROCEDURECODE", "REPORTCODE":
		if strings.Contains(strings.ToUpper(params[0]), "BORE") {
			return &WrongFileTypeError{Code: params[0]}
		}
	case "RECORDSEPARATOR":
		m.RecordSeparator = strings.TrimSpace(rest)
	case "COLUMNSEPARATOR":
		// A blank separator means whitespace, which is the default.
		if sep := strings.TrimSpace(rest); sep != "" {
			m.ColumnSeparator = sep
		}
	case "COLUMNINFO":
		return m.applyColumnInfo(params)
	case "XYID":
		x, err := floatParam(params, 1)
		if err != nil {
			return err
		}
		y, err := floatParam(params, 2)
		if err != nil {
			return err
		}
		m.OriginX = round2(x)
		m.OriginY = round2(y)
	case "ZID":
		z, err := floatParam(params, 1)
		if err != nil {
			return err
		}
		m.TopElevation = z
	case "MEASUREMENTVAR":
		if params[0] != measurementVarPreExcavation {
			return nil
		}
		d, err := floatParam(params, 1)
		if err != nil {
			return err
		}
		m.PreExcavatedDepth = d
	case "COLUMNVOID":
		col, err := columnParam(params, 0)
		if err != nil {
			return err
		}
		v, err := floatParam(params, 1)
		if err != nil {
			return err
		}
		m.ColumnVoids[col] = v
	case "TESTID":
		m.TestName = params[0]
	case "FILEDATE":
		m.FileDate = parseDate(params)
	case "STARTDATE":
		m.StartDate = parseDate(params)
	}
	return nil
}

// applyColumnInfo handles "#COLUMNINFO= column, unit, name, quantity".
func (m *RawMetadata) applyColumnInfo(params []string) error {
	if len(params) < 4 {
		return fmt.Errorf("COLUMNINFO: %w: want 4, got %d", errMissingArgs, len(params))
	}
	col, err := columnParam(params, 0)
	if err != nil {
		return err
	}
	quantity, err := strconv.Atoi(params[3])
	if err != nil {
		return fmt.Errorf("quantity number: %w", err)
	}
	role, ok := quantityRoles[quantity]
	if !ok {
		return nil
	}
	m.ColumnIndex[role] = col
	m.Units[role] = params[1]
	return nil
}

func floatParam(params []string, i int) (float64, error) {
	if i >= len(params) {
		return 0, fmt.Errorf("%w %d", errMissingArgs, i+1)
	}
	v, err := strconv.ParseFloat(params[i], 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %d: %w", i+1, err)
	}
	return v, nil
}

// columnParam reads a 1-based column number and returns it 0-based.
func columnParam(params []string, i int) (int, error) {
	if i >= len(params) {
		return 0, fmt.Errorf("%w %d", errMissingArgs, i+1)
	}
	n, err := strconv.Atoi(params[i])
	if err != nil {
		return 0, fmt.Errorf("column number: %w", err)
	}
	if n < 1 {
		return 0, fmt.Errorf("column number %d out of range", n)
	}
	return n - 1, nil
}

// parseDate encodes "year, month, day" as YYYYMMDD. Anything unparseable or
// out of range yields "".
func parseDate(params []string) string {
	if len(params) < 3 {
		return ""
	}
	var ymd [3]int
	for i := range ymd {
		n, err := strconv.Atoi(params[i])
		if err != nil {
			return ""
		}
		ymd[i] = n
	}
	year, month, day := ymd[0], ymd[1], ymd[2]
	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	return fmt.Sprintf("%04d%02d%02d", year, month, day)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
