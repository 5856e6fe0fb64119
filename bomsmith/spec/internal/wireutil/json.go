package wireutil

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes v without HTML escaping, matching the document encoder, for use inside custom
// MarshalJSON methods.
func MarshalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
