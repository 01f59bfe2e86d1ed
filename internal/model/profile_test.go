package model

import (
	"errors"
	"math"
	"testing"
)

func TestColumnRole_String(t *testing.T) {
	tests := []struct {
		role ColumnRole
		want string
	}{
		{Depth, "depth"},
		{ConeResistance, "cone_resistance"},
		{SleeveFriction, "sleeve_friction"},
		{PorePressure, "pore_pressure"},
		{ColumnRole(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("ColumnRole(%d).String() = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestProfile_Length(t *testing.T) {
	p := Profile{TopElevation: 1.5, BottomElevation: -20.25}
	if got := p.Length(); math.Abs(got-21.75) > 1e-12 {
		t.Errorf("Length() = %f, want 21.75", got)
	}

	// Inverted profiles are allowed and yield a negative length.
	p = Profile{TopElevation: -3, BottomElevation: 1}
	if got := p.Length(); got != -4 {
		t.Errorf("Length() = %f, want -4", got)
	}
}

func TestProfile_EffectiveDate(t *testing.T) {
	tests := []struct {
		name    string
		p       Profile
		want    string
		wantErr bool
	}{
		{"start date preferred", Profile{StartDate: "20230507", FileDate: "20230510"}, "20230507", false},
		{"file date fallback", Profile{FileDate: "20230510"}, "20230510", false},
		{"no date", Profile{}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.p.EffectiveDate()
			if tt.wantErr {
				if !errors.Is(err, ErrNoDate) {
					t.Fatalf("expected ErrNoDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("EffectiveDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProfile_HasPorePressure(t *testing.T) {
	tests := []struct {
		name string
		u    []float64
		want bool
	}{
		{"empty", nil, false},
		{"all zero", []float64{0, 0, 0}, false},
		{"positive", []float64{0, 0.01}, true},
		{"negative", []float64{-0.002, 0}, true},
		{"NaN only", []float64{math.NaN()}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Profile{PorePressure: tt.u}).HasPorePressure(); got != tt.want {
				t.Errorf("HasPorePressure() = %v, want %v", got, tt.want)
			}
		})
	}
}
