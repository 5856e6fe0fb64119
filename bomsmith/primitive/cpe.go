package primitive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/facebookincubator/nvdtools/wfn"
)

var ErrInvalidCPE = errors.New("invalid CPE")

// CPE is a Common Platform Enumeration name, either a 2.3 formatted string ("cpe:2.3:a:...") or a 2.2
// URI ("cpe:/a:...").
type CPE string

func ParseCPE(s string) (CPE, error) {
	c := CPE(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

func (c CPE) Validate() error {
	var err error
	switch v := string(c); {
	case strings.HasPrefix(v, "cpe:2.3:"):
		_, err = wfn.UnbindFmtString(v)
	case strings.HasPrefix(v, "cpe:/"):
		_, err = wfn.UnbindURI(v)
	default:
		err = errors.New("missing cpe:2.3: or cpe:/ prefix")
	}
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidCPE, string(c), err)
	}
	return nil
}

func (c CPE) String() string {
	return string(c)
}
