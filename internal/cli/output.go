package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/gef-cpt/internal/model"
)

// writeValue encodes v as JSON or YAML. Text output is handled per command.
func writeValue(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
}

func writeProfileText(w io.Writer, p model.Profile) error {
	fmt.Fprintf(w, "name:       %s\n", p.Name)
	if p.SourceFilename != "" {
		fmt.Fprintf(w, "file:       %s\n", p.SourceFilename)
	}
	fmt.Fprintf(w, "origin:     %.2f, %.2f\n", p.OriginX, p.OriginY)
	fmt.Fprintf(w, "elevation:  %.2f to %.2f\n", p.TopElevation, p.BottomElevation)
	if date, err := p.EffectiveDate(); err == nil {
		fmt.Fprintf(w, "date:       %s\n", date)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "z\tqc\tfs\trf\tu\t")
	for i := range p.Depth {
		fmt.Fprintf(tw, "%.2f\t%.3f\t%.4f\t%.2f\t%.3f\t\n",
			p.Depth[i], p.ConeResistance[i], p.SleeveFriction[i], p.FrictionRatio[i], p.PorePressure[i])
	}
	return tw.Flush()
}

func writeSummaryText(w io.Writer, s model.Summary) {
	name := s.Name
	if s.SourceFilename != "" {
		name = fmt.Sprintf("%s (%s)", s.Name, s.SourceFilename)
	}
	fmt.Fprintf(w, "%s: %d rows, %.2f to %.2f m, qc mean %.2f max %.2f, rf mean %.2f",
		name, s.Rows, s.TopElevation, s.BottomElevation,
		s.MeanConeResistance, s.MaxConeResistance, s.MeanFrictionRatio)
	if s.HasPorePressure {
		fmt.Fprint(w, ", pore pressure")
	}
	if s.Date != "" {
		fmt.Fprintf(w, ", %s", s.Date)
	}
	fmt.Fprintln(w)
}
