// Package cpt reads CPT soundings from raw file content, dispatching on the
// file format.
package cpt

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rcliao/gef-cpt/internal/gef"
	"github.com/rcliao/gef-cpt/internal/model"
	"github.com/rcliao/gef-cpt/internal/source"
)

// Format hints.
const (
	FormatGEF = "gef"
	FormatXML = "xml"
)

// Supported lists the recognized format hints.
var Supported = []string{FormatGEF, FormatXML}

// ReadError wraps every failure to read a CPT file.
type ReadError struct {
	Filename string
	Format   string
	Err      error
}

func (e *ReadError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("read %s (%s): %v", e.Filename, e.Format, e.Err)
	}
	return fmt.Sprintf("read cpt (%s): %v", e.Format, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// UnsupportedFormatError is returned for unrecognized format hints.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q (supported: %s)", e.Format, strings.Join(Supported, ", "))
}

// NotImplementedError is returned for recognized formats without a reader.
type NotImplementedError struct {
	Format string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s reader not implemented", e.Format)
}

// NormalizeFormat lower-cases a format hint and drops a leading dot, so
// ".GEF" and "gef" are equivalent.
func NormalizeFormat(hint string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(hint), "."))
}

// Parse reads a CPT profile from data using the format hint.
func Parse(data []byte, formatHint string) (model.Profile, error) {
	format := NormalizeFormat(formatHint)
	p, err := parse(data, format)
	if err != nil {
		return model.Profile{}, &ReadError{Format: format, Err: err}
	}
	return p, nil
}

// ParseFile reads a CPT profile, taking the format from the extension of
// name and recording name as the source filename.
func ParseFile(name string, data []byte) (model.Profile, error) {
	format := NormalizeFormat(filepath.Ext(name))
	p, err := parse(data, format)
	if err != nil {
		return model.Profile{}, &ReadError{Filename: name, Format: format, Err: err}
	}
	p.SourceFilename = filepath.Base(name)
	return p, nil
}

func parse(data []byte, format string) (model.Profile, error) {
	switch format {
	case FormatGEF:
		text, err := source.Decode(data)
		if err != nil {
			return model.Profile{}, err
		}
		return gef.Parse(text)
	case FormatXML:
		return model.Profile{}, &NotImplementedError{Format: format}
	default:
		return model.Profile{}, &UnsupportedFormatError{Format: format}
	}
}
