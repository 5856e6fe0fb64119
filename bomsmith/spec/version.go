package spec

import (
	"fmt"
	"strings"

	hashiVersion "github.com/hashicorp/go-version"
)

// Version is a CycloneDX schema version that bomsmith can read and write.
type Version int

const (
	UnknownVersion Version = iota
	V1_2
	V1_3
)

const namespacePrefix = "http://cyclonedx.org/schema/bom/"

var versionStrings = map[Version]string{
	V1_2: "1.2",
	V1_3: "1.3",
}

// ParseVersion accepts "1.3", "v1.3" and "1.3.0" style values.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	parsed, err := hashiVersion.NewVersion(raw)
	if err != nil {
		return UnknownVersion, fmt.Errorf("unable to parse spec version %q: %w", s, err)
	}

	segments := parsed.Segments()
	if len(segments) < 2 || (len(segments) > 2 && segments[2] != 0) || parsed.Prerelease() != "" {
		return UnknownVersion, fmt.Errorf("unsupported spec version %q", s)
	}

	want := fmt.Sprintf("%d.%d", segments[0], segments[1])
	for v, str := range versionStrings {
		if str == want {
			return v, nil
		}
	}
	return UnknownVersion, fmt.Errorf("unsupported spec version %q", s)
}

func (v Version) String() string {
	if s, ok := versionStrings[v]; ok {
		return s
	}
	return "unknown"
}

// Namespace is the XML default namespace of documents of this version.
func (v Version) Namespace() string {
	return namespacePrefix + v.String()
}

// VersionFromNamespace maps an XML namespace back to its schema version.
func VersionFromNamespace(ns string) (Version, error) {
	if !strings.HasPrefix(ns, namespacePrefix) {
		return UnknownVersion, fmt.Errorf("not a CycloneDX namespace: %q", ns)
	}
	return ParseVersion(strings.TrimPrefix(ns, namespacePrefix))
}
