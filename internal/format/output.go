package format

import (
	"fmt"
	"strings"

	"github.com/allisonsierra/bomsmith/bomsmith"
	"github.com/allisonsierra/bomsmith/bomsmith/format"
	"github.com/allisonsierra/bomsmith/bomsmith/spec"
)

// ParseOutput returns the output named by user input of the form <format>[@<version>], e.g. "xml@1.2".
func ParseOutput(userInput string, defaultVersion spec.Version) (bomsmith.Output, error) {
	name, version, hasVersion := strings.Cut(strings.TrimSpace(userInput), "@")

	f, err := format.Parse(name)
	if err != nil {
		return bomsmith.Output{}, err
	}

	v := defaultVersion
	if hasVersion {
		if v, err = spec.ParseVersion(version); err != nil {
			return bomsmith.Output{}, err
		}
	}

	return bomsmith.Output{Version: v, Format: f}, nil
}

// AvailableOutputs lists every supported <format>@<version> option.
func AvailableOutputs() []string {
	var names []string
	for _, o := range bomsmith.Outputs(bomsmith.SupportedVersions(), format.AvailableFormats) {
		names = append(names, o.String())
	}
	return names
}

// defaultFileName is used when several documents are written into the same directory.
func defaultFileName(o bomsmith.Output) string {
	return fmt.Sprintf("bom-%s.%s", o.Version, o.Format.Extension())
}
