package model

import (
	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
)

type Component struct {
	Type               Classification
	MimeType           primitive.MimeType
	BOMRef             string
	Supplier           *OrganizationalEntity
	Author             primitive.NormalizedString
	Publisher          primitive.NormalizedString
	Group              primitive.NormalizedString
	Name               primitive.NormalizedString
	Version            primitive.NormalizedString
	Description        primitive.NormalizedString
	Scope              Scope
	Hashes             *[]Hash
	Licenses           *[]LicenseChoice
	Copyright          primitive.NormalizedString
	CPE                primitive.CPE
	PURL               primitive.PackageURL
	SWID               *SWID
	Modified           *bool
	Pedigree           *Pedigree
	ExternalReferences *[]ExternalReference
	Properties         *[]Property
	Components         *[]Component
	Evidence           *ComponentEvidence
}

// SWID is an ISO/IEC 19770-2 software identification tag.
type SWID struct {
	TagID      string
	Name       string
	Version    string
	TagVersion *int
	Patch      *bool
	Text       *AttachedText
	URL        primitive.URI
}

type ComponentEvidence struct {
	Licenses  *[]LicenseChoice
	Copyright *[]string
}

type Hash struct {
	Algorithm HashAlgorithm
	Value     primitive.HashValue
}

type ExternalReference struct {
	Type    ExternalReferenceType
	URL     primitive.URI
	Comment string
	Hashes  *[]Hash
}
