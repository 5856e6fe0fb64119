package builder

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/scylladb/go-set/strset"
	"gopkg.in/yaml.v2"
)

// Manifest is the resolved package graph of a project, as handed over by the tool that performed dependency
// resolution.
type Manifest struct {
	Name     string              `yaml:"name" json:"name"`
	Version  string              `yaml:"version" json:"version"`
	Packages []Package           `yaml:"packages" json:"packages"`
	Edges    map[string][]string `yaml:"edges" json:"edges"`
}

// Package describes one resolved package. ID must be unique within the manifest and is used as the bom-ref.
type Package struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Version     string   `yaml:"version" json:"version"`
	Ecosystem   string   `yaml:"ecosystem" json:"ecosystem"`
	Namespace   string   `yaml:"namespace" json:"namespace"`
	Authors     []string `yaml:"authors" json:"authors"`
	License     string   `yaml:"license" json:"license"`
	Licenses    []string `yaml:"licenses" json:"licenses"`
	Source      string   `yaml:"source" json:"source"`
	Description string   `yaml:"description" json:"description"`
	Homepage    string   `yaml:"homepage" json:"homepage"`
	Repository  string   `yaml:"repository" json:"repository"`
	Checksum    string   `yaml:"checksum" json:"checksum"`
}

var ErrInvalidManifest = errors.New("invalid manifest")

// ReadManifest decodes a YAML (or JSON) manifest and checks that it is self-consistent.
func ReadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("unable to decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest has a name, unique package IDs, and edges only between known packages.
func (m Manifest) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: missing project name", ErrInvalidManifest)
	}

	ids := strset.New()
	for i, p := range m.Packages {
		switch {
		case p.ID == "":
			return fmt.Errorf("%w: packages[%d] has no id", ErrInvalidManifest, i)
		case p.Name == "":
			return fmt.Errorf("%w: package %q has no name", ErrInvalidManifest, p.ID)
		case ids.Has(p.ID):
			return fmt.Errorf("%w: duplicate package id %q", ErrInvalidManifest, p.ID)
		}
		ids.Add(p.ID)
	}

	for from, targets := range m.Edges {
		if !ids.Has(from) {
			return fmt.Errorf("%w: edge from unknown package %q", ErrInvalidManifest, from)
		}
		for _, to := range targets {
			if !ids.Has(to) {
				return fmt.Errorf("%w: edge from %q to unknown package %q", ErrInvalidManifest, from, to)
			}
		}
	}
	return nil
}

// root returns the package describing the project itself, if the manifest lists one.
func (m Manifest) root() *Package {
	for i := range m.Packages {
		p := &m.Packages[i]
		if p.Name == m.Name && (m.Version == "" || p.Version == m.Version) {
			return p
		}
	}
	return nil
}
