package primitive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const urnUUIDPrefix = "urn:uuid:"

var ErrInvalidUrnUUID = errors.New("invalid UUID URN")

// UrnUUID is an RFC 4122 UUID in URN form, used as a BOM serial number.
type UrnUUID string

// NewUrnUUID returns a random (v4) serial number.
func NewUrnUUID() UrnUUID {
	return UrnUUIDFrom(uuid.New())
}

func UrnUUIDFrom(id uuid.UUID) UrnUUID {
	return UrnUUID(id.URN())
}

func ParseUrnUUID(s string) (UrnUUID, error) {
	u := UrnUUID(s)
	if err := u.Validate(); err != nil {
		return "", err
	}
	return u, nil
}

func (u UrnUUID) Validate() error {
	v := string(u)
	if !strings.HasPrefix(v, urnUUIDPrefix) {
		return fmt.Errorf("%w %q: missing %q prefix", ErrInvalidUrnUUID, v, urnUUIDPrefix)
	}
	rest := strings.TrimPrefix(v, urnUUIDPrefix)
	if len(rest) != 36 {
		return fmt.Errorf("%w %q: expected a hyphenated UUID", ErrInvalidUrnUUID, v)
	}
	if _, err := uuid.Parse(rest); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidUrnUUID, v, err)
	}
	return nil
}

func (u UrnUUID) String() string {
	return string(u)
}
