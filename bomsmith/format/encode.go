package format

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
)

const indent = "  "

// Encode serializes a wire document. The output is built in memory first and only copied to w once it is
// complete, so a failure never leaves a partial document behind.
func Encode(w io.Writer, doc interface{}, f Format) error {
	var buf bytes.Buffer
	var err error
	switch f {
	case JSON:
		err = encodeJSON(&buf, doc)
	case XML:
		err = encodeXML(&buf, doc)
	default:
		err = fmt.Errorf("unsupported format: %s", f)
	}
	if err != nil {
		return &SerializationError{Format: f, Err: err}
	}

	if _, err := buf.WriteTo(w); err != nil {
		return &SerializationError{Format: f, Err: err}
	}
	return nil
}

func encodeJSON(buf *bytes.Buffer, doc interface{}) error {
	enc := json.NewEncoder(buf)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	return enc.Encode(doc)
}

func encodeXML(buf *bytes.Buffer, doc interface{}) error {
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(buf)
	enc.Indent("", indent)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	buf.WriteString("\n")
	return nil
}

// Decode reads a wire document of the given format into doc.
func Decode(r io.Reader, doc interface{}, f Format) error {
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(doc)
	case XML:
		err = xml.NewDecoder(r).Decode(doc)
	default:
		err = fmt.Errorf("unsupported format: %s", f)
	}
	if err != nil {
		return &DeserializationError{Format: f, Err: err}
	}
	return nil
}
