package primitive

import (
	"errors"
	"fmt"
	"regexp"
)

var ErrInvalidHashValue = errors.New("invalid hash value")

var hashValuePattern = regexp.MustCompile(`^([a-fA-F0-9]{32}|[a-fA-F0-9]{40}|[a-fA-F0-9]{64}|[a-fA-F0-9]{96}|[a-fA-F0-9]{128})$`)

// HashValue is the hex encoded digest of a hash (MD5 through SHA-512 lengths).
type HashValue string

func ParseHashValue(s string) (HashValue, error) {
	h := HashValue(s)
	if err := h.Validate(); err != nil {
		return "", err
	}
	return h, nil
}

func (h HashValue) Validate() error {
	if !hashValuePattern.MatchString(string(h)) {
		return fmt.Errorf("%w %q: expected 32, 40, 64, 96 or 128 hex characters", ErrInvalidHashValue, string(h))
	}
	return nil
}

func (h HashValue) String() string {
	return string(h)
}
