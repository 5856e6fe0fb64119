package primitive

import (
	"errors"
	"fmt"

	"github.com/anchore/packageurl-go"
)

var ErrInvalidPURL = errors.New("invalid package URL")

// PackageURL is a purl (https://github.com/package-url/purl-spec) in its canonical string form.
type PackageURL string

func ParsePackageURL(s string) (PackageURL, error) {
	p := PackageURL(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// NewPackageURL renders a purl from its parts.
func NewPackageURL(ecosystem, namespace, name, version string) PackageURL {
	return PackageURL(packageurl.NewPackageURL(ecosystem, namespace, name, version, nil, "").ToString())
}

func (p PackageURL) Validate() error {
	if _, err := packageurl.FromString(string(p)); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidPURL, string(p), err)
	}
	return nil
}

func (p PackageURL) String() string {
	return string(p)
}
