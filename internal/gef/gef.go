package gef

import (
	"strings"

	"github.com/rcliao/gef-cpt/internal/model"
)

// SplitLines splits text on LF, dropping a trailing CR from each line.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Parse reads a complete GEF CPT file.
func Parse(text string) (model.Profile, error) {
	lines := SplitLines(text)
	raw, start, err := ParseHeader(lines)
	if err != nil {
		return model.Profile{}, err
	}
	return BuildProfile(lines[start:], start+1, raw.Finalize())
}
