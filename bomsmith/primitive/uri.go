package primitive

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrInvalidURI = errors.New("invalid URI")

// URI is an RFC 3986 URI reference.
type URI string

func ParseURI(s string) (URI, error) {
	u := URI(s)
	if err := u.Validate(); err != nil {
		return "", err
	}
	return u, nil
}

func (u URI) Validate() error {
	if u == "" {
		return fmt.Errorf("%w: empty value", ErrInvalidURI)
	}
	if strings.ContainsAny(string(u), " \t\r\n") {
		return fmt.Errorf("%w %q: contains whitespace", ErrInvalidURI, string(u))
	}
	if _, err := url.Parse(string(u)); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidURI, string(u), err)
	}
	return nil
}

func (u URI) String() string {
	return string(u)
}
