package model

import (
	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
)

// Bom is the version-agnostic bill of materials. Collections are pointers so that an absent collection
// (nil) can be told apart from one that is present but empty.
type Bom struct {
	Version            int
	SerialNumber       primitive.UrnUUID
	Metadata           *Metadata
	Components         *[]Component
	Services           *[]Service
	ExternalReferences *[]ExternalReference
	Dependencies       *[]Dependency
	Compositions       *[]Composition
	Properties         *[]Property
}

// NewBom returns an empty BOM at version 1 with a fresh random serial number.
func NewBom() Bom {
	return Bom{
		Version:      1,
		SerialNumber: primitive.NewUrnUUID(),
	}
}

type Metadata struct {
	Timestamp   primitive.DateTime
	Tools       *[]Tool
	Authors     *[]OrganizationalContact
	Component   *Component
	Manufacture *OrganizationalEntity
	Supplier    *OrganizationalEntity
	Licenses    *[]LicenseChoice
	Properties  *[]Property
}

type Tool struct {
	Vendor  primitive.NormalizedString
	Name    primitive.NormalizedString
	Version primitive.NormalizedString
	Hashes  *[]Hash
}

type Property struct {
	Name  string
	Value primitive.NormalizedString
}

// BomReference points at the bom-ref of a component or service in the same document.
type BomReference string

type Composition struct {
	Aggregate    AggregateType
	Assemblies   *[]BomReference
	Dependencies *[]BomReference
}

// Dependency records that the component or service identified by Ref depends on each of Dependencies.
// Entries refer to each other by bom-ref, never by pointer.
type Dependency struct {
	Ref          string
	Dependencies []Dependency
}

// FindComponent looks up a component by bom-ref, searching the metadata component and all nested components.
func (b *Bom) FindComponent(ref string) (*Component, bool) {
	if b.Metadata != nil && b.Metadata.Component != nil {
		if c, ok := findComponent(b.Metadata.Component, ref); ok {
			return c, true
		}
	}
	if b.Components != nil {
		for i := range *b.Components {
			if c, ok := findComponent(&(*b.Components)[i], ref); ok {
				return c, true
			}
		}
	}
	return nil, false
}

// FindService looks up a service by bom-ref, searching nested services as well.
func (b *Bom) FindService(ref string) (*Service, bool) {
	if b.Services == nil {
		return nil, false
	}
	for i := range *b.Services {
		if s, ok := findService(&(*b.Services)[i], ref); ok {
			return s, true
		}
	}
	return nil, false
}

// Resolve finds the component or service that a dependency or composition ref names. Exactly one of the
// returned pointers is set when found is true.
func (b *Bom) Resolve(ref string) (component *Component, service *Service, found bool) {
	if c, ok := b.FindComponent(ref); ok {
		return c, nil, true
	}
	if s, ok := b.FindService(ref); ok {
		return nil, s, true
	}
	return nil, nil, false
}

func findComponent(c *Component, ref string) (*Component, bool) {
	if ref != "" && c.BOMRef == ref {
		return c, true
	}
	if c.Components == nil {
		return nil, false
	}
	for i := range *c.Components {
		if found, ok := findComponent(&(*c.Components)[i], ref); ok {
			return found, true
		}
	}
	return nil, false
}

func findService(s *Service, ref string) (*Service, bool) {
	if ref != "" && s.BOMRef == ref {
		return s, true
	}
	if s.Services == nil {
		return nil, false
	}
	for i := range *s.Services {
		if found, ok := findService(&(*s.Services)[i], ref); ok {
			return found, true
		}
	}
	return nil, false
}
