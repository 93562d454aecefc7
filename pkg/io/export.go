package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/reqdetect/pkg/errors"
	"github.com/matzehuels/reqdetect/pkg/requirement"
)

// Output formats.
const (
	FormatRequirementsFile = "requirements_file"
	FormatJSON             = "json"
)

// Formats lists the formats [Write] accepts.
var Formats = []string{FormatRequirementsFile, FormatJSON}

// Write renders reqs in the named format to w.
func Write(w io.Writer, format string, reqs []*requirement.DetectedRequirement) error {
	switch format {
	case FormatRequirementsFile:
		return WriteRequirementsFile(w, reqs)
	case FormatJSON:
		return WriteJSON(w, reqs)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
}

// WriteRequirementsFile writes one pip-format line per requirement. It fails
// on a requirement with neither name nor URL.
func WriteRequirementsFile(w io.Writer, reqs []*requirement.DetectedRequirement) error {
	for _, r := range reqs {
		line, err := r.PipFormat()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}

// WriteJSON encodes reqs as an indented JSON array.
func WriteJSON(w io.Writer, reqs []*requirement.DetectedRequirement) error {
	if reqs == nil {
		reqs = []*requirement.DetectedRequirement{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reqs); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes reqs in the named format to a file at path.
func Export(path, format string, reqs []*requirement.DetectedRequirement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, format, reqs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
