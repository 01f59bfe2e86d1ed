package cpt

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rcliao/gef-cpt/internal/model"
)

// Summarize computes aggregate figures for p. An empty profile yields zero
// statistics.
func Summarize(p model.Profile) model.Summary {
	s := model.Summary{
		Name:            p.Name,
		SourceFilename:  p.SourceFilename,
		Rows:            p.Rows(),
		TopElevation:    p.TopElevation,
		BottomElevation: p.BottomElevation,
		Length:          p.Length(),
		HasPorePressure: p.HasPorePressure(),
		OriginX:         p.OriginX,
		OriginY:         p.OriginY,
	}
	if date, err := p.EffectiveDate(); err == nil {
		s.Date = date
	}
	if s.Rows == 0 {
		return s
	}

	s.MaxPenetration = p.TopElevation - floats.Min(p.Depth)
	s.MeanConeResistance = stat.Mean(p.ConeResistance, nil)
	s.MaxConeResistance = floats.Max(p.ConeResistance)
	s.MeanSleeveFriction = stat.Mean(p.SleeveFriction, nil)
	s.MeanFrictionRatio = stat.Mean(p.FrictionRatio, nil)
	return s
}
