package format

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	cycloneDXFormat = "CycloneDX"
	namespacePrefix = "http://cyclonedx.org/schema/bom/"
)

var ErrNotCycloneDX = errors.New("not a CycloneDX document")

// Identify sniffs the serialization and the declared schema version ("1.3") of a document.
func Identify(data []byte) (Format, string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return UnknownFormat, "", fmt.Errorf("%w: empty input", ErrNotCycloneDX)
	}

	switch trimmed[0] {
	case '{':
		v, err := identifyJSON(trimmed)
		return JSON, v, err
	case '<':
		v, err := identifyXML(trimmed)
		return XML, v, err
	}
	return UnknownFormat, "", fmt.Errorf("%w: input is neither JSON nor XML", ErrNotCycloneDX)
}

func identifyJSON(data []byte) (string, error) {
	var header struct {
		BOMFormat   string `json:"bomFormat"`
		SpecVersion string `json:"specVersion"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return "", &DeserializationError{Format: JSON, Err: err}
	}
	if header.BOMFormat != cycloneDXFormat {
		return "", fmt.Errorf("%w: bomFormat is %q", ErrNotCycloneDX, header.BOMFormat)
	}
	if header.SpecVersion == "" {
		return "", fmt.Errorf("%w: missing specVersion", ErrNotCycloneDX)
	}
	return header.SpecVersion, nil
}

func identifyXML(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: no root element", ErrNotCycloneDX)
		}
		if err != nil {
			return "", &DeserializationError{Format: XML, Err: err}
		}
		root, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if root.Name.Local != "bom" || !strings.HasPrefix(root.Name.Space, namespacePrefix) {
			return "", fmt.Errorf("%w: root element is {%s}%s", ErrNotCycloneDX, root.Name.Space, root.Name.Local)
		}
		return strings.TrimPrefix(root.Name.Space, namespacePrefix), nil
	}
}
