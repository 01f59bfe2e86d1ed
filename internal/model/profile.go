// Package model defines the CPT profile data types.
package model

import "errors"

// ErrNoDate is returned by EffectiveDate when neither a start date nor a
// file date was recorded.
var ErrNoDate = errors.New("profile has no start date or file date")

// ColumnRole identifies what a data column measures.
type ColumnRole int

const (
	Depth ColumnRole = iota
	ConeResistance
	SleeveFriction
	PorePressure
)

var roleNames = map[ColumnRole]string{
	Depth:          "depth",
	ConeResistance: "cone_resistance",
	SleeveFriction: "sleeve_friction",
	PorePressure:   "pore_pressure",
}

func (r ColumnRole) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return "unknown"
}

// Profile is a depth-indexed CPT sounding. The five series are index-aligned:
// row i is Depth[i], ConeResistance[i], SleeveFriction[i], FrictionRatio[i]
// and PorePressure[i].
//
// Depth holds elevations relative to the reference level, decreasing with
// penetration.
type Profile struct {
	Depth          []float64 `json:"depth" yaml:"depth"`
	ConeResistance []float64 `json:"cone_resistance" yaml:"cone_resistance"`
	SleeveFriction []float64 `json:"sleeve_friction" yaml:"sleeve_friction"`
	FrictionRatio  []float64 `json:"friction_ratio" yaml:"friction_ratio"`
	PorePressure   []float64 `json:"pore_pressure" yaml:"pore_pressure"`

	OriginX           float64 `json:"origin_x" yaml:"origin_x"`
	OriginY           float64 `json:"origin_y" yaml:"origin_y"`
	TopElevation      float64 `json:"top_elevation" yaml:"top_elevation"`
	BottomElevation   float64 `json:"bottom_elevation" yaml:"bottom_elevation"`
	PreExcavatedDepth float64 `json:"pre_excavated_depth" yaml:"pre_excavated_depth"`

	Name           string `json:"name" yaml:"name"`
	FileDate       string `json:"file_date,omitempty" yaml:"file_date,omitempty"`
	StartDate      string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	SourceFilename string `json:"source_filename,omitempty" yaml:"source_filename,omitempty"`

	// Units maps a column role name to the unit declared in the header.
	Units map[string]string `json:"units,omitempty" yaml:"units,omitempty"`
}

// Rows returns the number of rows in the profile.
func (p Profile) Rows() int {
	return len(p.Depth)
}

// Length is the vertical extent of the sounding. It is negative for an
// inverted profile.
func (p Profile) Length() float64 {
	return p.TopElevation - p.BottomElevation
}

// EffectiveDate returns the start date, falling back to the file date.
func (p Profile) EffectiveDate() (string, error) {
	if p.StartDate != "" {
		return p.StartDate, nil
	}
	if p.FileDate != "" {
		return p.FileDate, nil
	}
	return "", ErrNoDate
}

// HasPorePressure reports whether any pore pressure reading is non-zero.
func (p Profile) HasPorePressure() bool {
	for _, u := range p.PorePressure {
		if u > 0 || u < 0 {
			return true
		}
	}
	return false
}

// Summary holds aggregate figures for a profile.
type Summary struct {
	Name               string  `json:"name" yaml:"name"`
	SourceFilename     string  `json:"source_filename,omitempty" yaml:"source_filename,omitempty"`
	Rows               int     `json:"rows" yaml:"rows"`
	TopElevation       float64 `json:"top_elevation" yaml:"top_elevation"`
	BottomElevation    float64 `json:"bottom_elevation" yaml:"bottom_elevation"`
	Length             float64 `json:"length" yaml:"length"`
	MaxPenetration     float64 `json:"max_penetration" yaml:"max_penetration"`
	MeanConeResistance float64 `json:"mean_cone_resistance" yaml:"mean_cone_resistance"`
	MaxConeResistance  float64 `json:"max_cone_resistance" yaml:"max_cone_resistance"`
	MeanSleeveFriction float64 `json:"mean_sleeve_friction" yaml:"mean_sleeve_friction"`
	MeanFrictionRatio  float64 `json:"mean_friction_ratio" yaml:"mean_friction_ratio"`
	HasPorePressure    bool    `json:"has_pore_pressure" yaml:"has_pore_pressure"`
	Date               string  `json:"date,omitempty" yaml:"date,omitempty"`
	OriginX            float64 `json:"origin_x" yaml:"origin_x"`
	OriginY            float64 `json:"origin_y" yaml:"origin_y"`
}
