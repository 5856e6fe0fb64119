package bomsmith

import (
	"fmt"

	"github.com/allisonsierra/bomsmith/bomsmith/spec"
	"github.com/allisonsierra/bomsmith/bomsmith/spec/v1_2"
	"github.com/allisonsierra/bomsmith/bomsmith/spec/v1_3"
)

// adapters is ordered from the oldest to the newest schema version.
var adapters = []spec.Adapter{
	v1_2.NewAdapter(),
	v1_3.NewAdapter(),
}

// SupportedVersions lists every schema version bomsmith can read and write, oldest first.
func SupportedVersions() []spec.Version {
	versions := make([]spec.Version, 0, len(adapters))
	for _, a := range adapters {
		versions = append(versions, a.Version())
	}
	return versions
}

// LatestVersion is the newest supported schema version.
func LatestVersion() spec.Version {
	return adapters[len(adapters)-1].Version()
}

// Adapter returns the adapter for the given schema version.
func Adapter(v spec.Version) (spec.Adapter, error) {
	for _, a := range adapters {
		if a.Version() == v {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no adapter for spec version %s", v)
}
