package gef

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rcliao/gef-cpt/internal/model"
)

// Lower bounds applied to non-positive readings so the friction ratio
// division stays finite.
const (
	MinConeResistance = 1e-3
	MinSleeveFriction = 1e-6
)

var requiredRoles = []model.ColumnRole{model.Depth, model.ConeResistance, model.SleeveFriction}

// series holds the raw per-row readings before post-processing.
type series struct {
	depth, qc, fs, u []float64
}

// BuildProfile reads the data section using the column layout in md and
// post-processes the rows into a Profile. firstLine is the 1-based file line
// number of lines[0], used in errors.
func BuildProfile(lines []string, firstLine int, md Metadata) (model.Profile, error) {
	for _, role := range requiredRoles {
		if _, ok := md.Column(role); !ok {
			return model.Profile{}, fmt.Errorf("%w: %s", ErrMissingColumn, role)
		}
	}

	var s series
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := s.ingest(line, md); err != nil {
			return model.Profile{}, &DataLineError{Line: firstLine + i, Text: line, Err: err}
		}
	}

	return s.finish(md)
}

// splitRow breaks a data line into its non-empty column tokens.
func splitRow(line string, md Metadata) []string {
	line = strings.TrimSpace(line)
	if md.RecordSeparator != "" {
		line = strings.TrimSpace(strings.TrimSuffix(line, md.RecordSeparator))
	}
	var tokens []string
	if strings.TrimSpace(md.ColumnSeparator) == "" {
		tokens = strings.Fields(line)
	} else {
		tokens = strings.Split(line, md.ColumnSeparator)
	}
	out := tokens[:0]
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ingest appends one data line to s. Rows carrying a void sentinel are
// dropped without error.
func (s *series) ingest(line string, md Metadata) error {
	tokens := splitRow(line, md)

	for col, void := range md.ColumnVoids {
		if col >= len(tokens) {
			continue
		}
		if v, err := strconv.ParseFloat(tokens[col], 64); err == nil && v == void {
			return nil
		}
	}

	value := func(role model.ColumnRole) (float64, error) {
		col, _ := md.Column(role)
		if col >= len(tokens) {
			return 0, fmt.Errorf("%s: column %d missing, row has %d", role, col+1, len(tokens))
		}
		v, err := strconv.ParseFloat(tokens[col], 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", role, err)
		}
		return v, nil
	}

	depth, err := value(model.Depth)
	if err != nil {
		return err
	}
	qc, err := value(model.ConeResistance)
	if err != nil {
		return err
	}
	fs, err := value(model.SleeveFriction)
	if err != nil {
		return err
	}
	var u float64
	if _, ok := md.Column(model.PorePressure); ok {
		if u, err = value(model.PorePressure); err != nil {
			return err
		}
	}

	if qc <= 0 {
		qc = MinConeResistance
	}
	if fs <= 0 {
		fs = MinSleeveFriction
	}
	s.depth = append(s.depth, md.TopElevation-math.Abs(depth))
	s.qc = append(s.qc, qc)
	s.fs = append(s.fs, fs)
	s.u = append(s.u, u)
	return nil
}
