package v1_2

import (
	"encoding/json"

	"github.com/allisonsierra/bomsmith/bomsmith/spec/internal/wireutil"
)

// Dependency nests freely in XML. JSON only has room for one level: the direct dependencies of Ref are
// written as a flat dependsOn list of refs.
type Dependency struct {
	Ref          string       `xml:"ref,attr"`
	Dependencies []Dependency `xml:"dependency"`
}

type jsonDependency struct {
	Ref       string   `json:"ref"`
	DependsOn []string `json:"dependsOn"`
}

func (d Dependency) MarshalJSON() ([]byte, error) {
	dependsOn := make([]string, len(d.Dependencies))
	for i, child := range d.Dependencies {
		dependsOn[i] = child.Ref
	}
	return wireutil.MarshalJSON(jsonDependency{Ref: d.Ref, DependsOn: dependsOn})
}

func (d *Dependency) UnmarshalJSON(data []byte) error {
	var raw jsonDependency
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Ref = raw.Ref
	d.Dependencies = nil
	for _, ref := range raw.DependsOn {
		d.Dependencies = append(d.Dependencies, Dependency{Ref: ref})
	}
	return nil
}
