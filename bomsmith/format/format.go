package format

import (
	"fmt"
	"strings"
)

// Format is a serialization of a CycloneDX document.
type Format int

const (
	UnknownFormat Format = iota
	JSON
	XML
)

// AvailableFormats lists every format that documents can be written in.
var AvailableFormats = []Format{JSON, XML}

func Parse(userInput string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(userInput)) {
	case "json":
		return JSON, nil
	case "xml":
		return XML, nil
	}
	return UnknownFormat, fmt.Errorf("unsupported format %q, supported formats are: %+v", userInput, AvailableFormats)
}

func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case XML:
		return "XML"
	}
	return "unknown"
}

// Extension is the file extension used for documents of this format, without a leading dot.
func (f Format) Extension() string {
	return strings.ToLower(f.String())
}

// MediaType is the CycloneDX registered media type of the format.
func (f Format) MediaType() string {
	switch f {
	case JSON:
		return "application/vnd.cyclonedx+json"
	case XML:
		return "application/vnd.cyclonedx+xml"
	}
	return ""
}
