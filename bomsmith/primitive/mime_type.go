package primitive

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidMimeType = errors.New("invalid media type")

var mimeTypePattern = regexp.MustCompile(`^[-+a-z0-9.]+/[-+a-z0-9.]+$`)

// MimeType is a media type without parameters (e.g. "text/plain").
type MimeType string

func ParseMimeType(s string) (MimeType, error) {
	m := MimeType(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// MimeTypeFromHeader drops any parameters from a content type header value ("text/plain; charset=utf-8").
func MimeTypeFromHeader(header string) MimeType {
	base, _, _ := strings.Cut(header, ";")
	return MimeType(strings.ToLower(strings.TrimSpace(base)))
}

func (m MimeType) Validate() error {
	if !mimeTypePattern.MatchString(string(m)) {
		return fmt.Errorf("%w %q", ErrInvalidMimeType, string(m))
	}
	return nil
}

func (m MimeType) String() string {
	return string(m)
}
