package gef

import (
	"math"

	"github.com/rcliao/gef-cpt/internal/model"
)

// MaxFrictionRatio is reported where cone resistance is zero.
const MaxFrictionRatio = 10.0

// FrictionRatio returns sleeve friction as a percentage of cone resistance.
func FrictionRatio(qc, fs float64) float64 {
	if qc == 0 {
		return MaxFrictionRatio
	}
	return fs / qc * 100
}

func zeroNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// finish derives the friction ratio, drops rows without a usable depth and
// fixes the elevation bounds.
func (s *series) finish(md Metadata) (model.Profile, error) {
	p := model.Profile{
		OriginX:           md.OriginX,
		OriginY:           md.OriginY,
		TopElevation:      round2(md.TopElevation),
		PreExcavatedDepth: md.PreExcavatedDepth,
		Name:              md.TestName,
		FileDate:          md.FileDate,
		StartDate:         md.StartDate,
	}
	if len(md.Units) > 0 {
		p.Units = make(map[string]string, len(md.Units))
		for role, unit := range md.Units {
			p.Units[role.String()] = unit
		}
	}

	n := len(s.depth)
	p.Depth = make([]float64, 0, n)
	p.ConeResistance = make([]float64, 0, n)
	p.SleeveFriction = make([]float64, 0, n)
	p.FrictionRatio = make([]float64, 0, n)
	p.PorePressure = make([]float64, 0, n)

	for i := range n {
		if math.IsNaN(s.depth[i]) {
			continue
		}
		rf := FrictionRatio(s.qc[i], s.fs[i])
		p.Depth = append(p.Depth, s.depth[i])
		p.ConeResistance = append(p.ConeResistance, zeroNaN(s.qc[i]))
		p.SleeveFriction = append(p.SleeveFriction, zeroNaN(s.fs[i]))
		p.FrictionRatio = append(p.FrictionRatio, zeroNaN(rf))
		p.PorePressure = append(p.PorePressure, zeroNaN(s.u[i]))
	}

	if len(p.Depth) == 0 {
		return model.Profile{}, ErrEmptyProfile
	}
	p.BottomElevation = round2(p.Depth[len(p.Depth)-1])
	return p, nil
}
