package primitive

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidWhitespace = errors.New("contains carriage return, line feed or tab")

var whitespaceNormalizer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

// NormalizedString is text that holds no carriage returns, line feeds or tabs, following the XML schema
// normalizedString type (https://www.w3.org/TR/xmlschema-2/#normalizedString).
//
// A plain conversion (NormalizedString(s)) does not normalize and is reserved for data that was already
// normalized elsewhere, such as values read back from a document. Use Validate to re-check such values.
type NormalizedString string

// NewNormalizedString replaces every CRLF, CR, LF and TAB in the given text with a single space.
func NewNormalizedString(raw string) NormalizedString {
	return NormalizedString(whitespaceNormalizer.Replace(raw))
}

func (s NormalizedString) Validate() error {
	if strings.ContainsAny(string(s), "\r\n\t") {
		return fmt.Errorf("%q %w", string(s), ErrInvalidWhitespace)
	}
	return nil
}

func (s NormalizedString) String() string {
	return string(s)
}
