package builder

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/allisonsierra/bomsmith/bomsmith/model"
	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
	"github.com/allisonsierra/bomsmith/internal/log"
)

const (
	toolVendor = "allisonsierra"
	toolName   = "bomsmith"

	sourceProperty = "bomsmith:package:source"
)

// serialNamespace scopes serial numbers derived from manifest content.
var serialNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/allisonsierra/bomsmith"))

type Config struct {
	// DeterministicSerial derives the serial number from the manifest content instead of generating a random one.
	DeterministicSerial bool
	// ToolVersion is recorded in the metadata tool entry.
	ToolVersion string
	// Now is used for the metadata timestamp (defaults to time.Now).
	Now func() time.Time
}

// Build shapes a manifest into a BOM. The project package becomes the metadata component, every other package a
// top-level component, and the manifest edges become the dependency graph.
func Build(m *Manifest, cfg Config) (*model.Bom, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	serial, err := serialNumber(m, cfg)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}

	bom := model.NewBom()
	bom.SerialNumber = serial
	bom.Metadata = &model.Metadata{
		Timestamp: primitive.NewDateTime(now()),
		Tools: &[]model.Tool{
			{
				Vendor:  primitive.NewNormalizedString(toolVendor),
				Name:    primitive.NewNormalizedString(toolName),
				Version: primitive.NewNormalizedString(cfg.ToolVersion),
			},
		},
	}

	root := m.root()
	rootRef := m.Name
	if root != nil {
		rootRef = root.ID
		c := component(*root, model.ApplicationClassification)
		bom.Metadata.Component = &c
	} else {
		log.Debugf("manifest does not list the project %q as a package, describing it from the manifest header", m.Name)
		bom.Metadata.Component = &model.Component{
			Type:    model.ApplicationClassification,
			BOMRef:  rootRef,
			Name:    primitive.NewNormalizedString(m.Name),
			Version: primitive.NewNormalizedString(m.Version),
		}
	}

	packages := make([]Package, 0, len(m.Packages))
	for _, p := range m.Packages {
		if root != nil && p.ID == root.ID {
			continue
		}
		packages = append(packages, p)
	}
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].ID < packages[j].ID
	})

	components := make([]model.Component, 0, len(packages))
	for _, p := range packages {
		components = append(components, component(p, model.LibraryClassification))
	}
	bom.Components = &components

	deps := dependencies(rootRef, packages, m.Edges)
	bom.Dependencies = &deps

	log.Debugf("built BOM for %q with %d components", m.Name, len(components))
	return &bom, nil
}

func serialNumber(m *Manifest, cfg Config) (primitive.UrnUUID, error) {
	if !cfg.DeterministicSerial {
		return primitive.NewUrnUUID(), nil
	}
	hash, err := hashstructure.Hash(m, hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("unable to hash manifest: %w", err)
	}
	return primitive.UrnUUIDFrom(uuid.NewSHA1(serialNamespace, []byte(fmt.Sprintf("%x", hash)))), nil
}

func component(p Package, classification model.Classification) model.Component {
	c := model.Component{
		Type:        classification,
		BOMRef:      p.ID,
		Name:        primitive.NewNormalizedString(p.Name),
		Version:     primitive.NewNormalizedString(p.Version),
		Description: primitive.NewNormalizedString(p.Description),
		Author:      primitive.NewNormalizedString(strings.Join(p.Authors, ", ")),
		Licenses:    licenses(p),
	}

	if classification != model.ApplicationClassification {
		c.Scope = model.RequiredScope
	}

	if p.Ecosystem != "" && p.Version != "" {
		purl := primitive.NewPackageURL(p.Ecosystem, p.Namespace, p.Name, p.Version)
		if err := purl.Validate(); err != nil {
			log.Warnf("skipping package URL of %q: %v", p.ID, err)
		} else {
			c.PURL = purl
		}
	}

	if h := hash(p); h != nil {
		c.Hashes = &[]model.Hash{*h}
	}

	var refs []model.ExternalReference
	if p.Homepage != "" {
		refs = append(refs, model.ExternalReference{Type: model.WebsiteReference, URL: primitive.URI(p.Homepage)})
	}
	if p.Repository != "" {
		refs = append(refs, model.ExternalReference{Type: model.VCSReference, URL: primitive.URI(p.Repository)})
	}
	if refs != nil {
		c.ExternalReferences = &refs
	}

	if p.Source != "" {
		c.Properties = &[]model.Property{{Name: sourceProperty, Value: primitive.NewNormalizedString(p.Source)}}
	}
	return c
}

// licenses prefers the SPDX expression of a package. Legacy "MIT/Apache-2.0" values are read as a disjunction.
// An expression that still does not parse is kept as a named license rather than dropped.
func licenses(p Package) *[]model.LicenseChoice {
	if raw := strings.TrimSpace(p.License); raw != "" {
		candidate := strings.Join(strings.Split(raw, "/"), " OR ")
		expression, err := primitive.ParseSpdxExpression(candidate)
		if err == nil {
			return &[]model.LicenseChoice{model.NewLicenseExpression(expression)}
		}
		log.Warnf("package %q declares a license that is not a valid SPDX expression, recording it by name: %v", p.ID, err)
		return &[]model.LicenseChoice{model.NewLicense(model.License{Name: primitive.NewNormalizedString(raw)})}
	}

	if len(p.Licenses) == 0 {
		return nil
	}

	choices := make([]model.LicenseChoice, 0, len(p.Licenses))
	for _, name := range p.Licenses {
		if id, err := primitive.ParseSpdxIdentifier(name); err == nil {
			choices = append(choices, model.NewLicense(model.License{ID: id}))
			continue
		}
		choices = append(choices, model.NewLicense(model.License{Name: primitive.NewNormalizedString(name)}))
	}
	return &choices
}

var checksumAlgorithms = map[string]model.HashAlgorithm{
	"md5":    model.MD5,
	"sha1":   model.SHA1,
	"sha256": model.SHA256,
	"sha384": model.SHA384,
	"sha512": model.SHA512,
}

// hash reads "<algorithm>:<hex>" checksums; a bare hex value is taken as sha256.
func hash(p Package) *model.Hash {
	if p.Checksum == "" {
		return nil
	}

	algorithm, value := "sha256", p.Checksum
	if before, after, found := strings.Cut(p.Checksum, ":"); found {
		algorithm, value = strings.ToLower(before), after
	}

	alg, ok := checksumAlgorithms[algorithm]
	if !ok {
		log.Warnf("ignoring checksum of %q with unsupported algorithm %q", p.ID, algorithm)
		return nil
	}

	hv, err := primitive.ParseHashValue(strings.ToLower(value))
	if err != nil {
		log.Warnf("ignoring checksum of %q: %v", p.ID, err)
		return nil
	}
	return &model.Hash{Algorithm: alg, Value: hv}
}

func dependencies(rootRef string, packages []Package, edges map[string][]string) []model.Dependency {
	refs := []string{rootRef}
	for _, p := range packages {
		refs = append(refs, p.ID)
	}

	deps := make([]model.Dependency, 0, len(refs))
	for _, ref := range refs {
		targets := append([]string(nil), edges[ref]...)
		sort.Strings(targets)

		var children []model.Dependency
		for _, target := range targets {
			children = append(children, model.Dependency{Ref: target})
		}
		deps = append(deps, model.Dependency{Ref: ref, Dependencies: children})
	}
	return deps
}
