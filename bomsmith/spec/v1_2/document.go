package v1_2

import (
	"encoding/xml"
)

const bomFormat = "CycloneDX"

// Document is a CycloneDX 1.2 BOM as it appears on the wire. 1.2 has no compositions, properties or
// component evidence.
type Document struct {
	XMLName            xml.Name               `json:"-" xml:"bom"`
	XMLNS              string                 `json:"-" xml:"xmlns,attr"`
	BOMFormat          string                 `json:"bomFormat" xml:"-"`
	SpecVersion        string                 `json:"specVersion" xml:"-"`
	Version            int                    `json:"version" xml:"version,attr"`
	SerialNumber       string                 `json:"serialNumber,omitempty" xml:"serialNumber,attr,omitempty"`
	Metadata           *Metadata              `json:"metadata,omitempty" xml:"metadata,omitempty"`
	Components         *ComponentList         `json:"components,omitempty" xml:"components,omitempty"`
	Services           *ServiceList           `json:"services,omitempty" xml:"services,omitempty"`
	ExternalReferences *ExternalReferenceList `json:"externalReferences,omitempty" xml:"externalReferences,omitempty"`
	Dependencies       *DependencyList        `json:"dependencies,omitempty" xml:"dependencies,omitempty"`
}

type Metadata struct {
	Timestamp   string                `json:"timestamp,omitempty" xml:"timestamp,omitempty"`
	Tools       *ToolList             `json:"tools,omitempty" xml:"tools,omitempty"`
	Authors     *AuthorList           `json:"authors,omitempty" xml:"authors,omitempty"`
	Component   *Component            `json:"component,omitempty" xml:"component,omitempty"`
	Manufacture *OrganizationalEntity `json:"manufacture,omitempty" xml:"manufacture,omitempty"`
	Supplier    *OrganizationalEntity `json:"supplier,omitempty" xml:"supplier,omitempty"`
}

type Tool struct {
	Vendor  string    `json:"vendor,omitempty" xml:"vendor,omitempty"`
	Name    string    `json:"name,omitempty" xml:"name,omitempty"`
	Version string    `json:"version,omitempty" xml:"version,omitempty"`
	Hashes  *HashList `json:"hashes,omitempty" xml:"hashes,omitempty"`
}

type OrganizationalEntity struct {
	Name    string                   `json:"name,omitempty" xml:"name,omitempty"`
	URL     *[]string                `json:"url,omitempty" xml:"url,omitempty"`
	Contact *[]OrganizationalContact `json:"contact,omitempty" xml:"contact,omitempty"`
}

type OrganizationalContact struct {
	Name  string `json:"name,omitempty" xml:"name,omitempty"`
	Email string `json:"email,omitempty" xml:"email,omitempty"`
	Phone string `json:"phone,omitempty" xml:"phone,omitempty"`
}

type Component struct {
	Type               string                 `json:"type" xml:"type,attr"`
	MimeType           string                 `json:"mime-type,omitempty" xml:"mime-type,attr,omitempty"`
	BOMRef             string                 `json:"bom-ref,omitempty" xml:"bom-ref,attr,omitempty"`
	Supplier           *OrganizationalEntity  `json:"supplier,omitempty" xml:"supplier,omitempty"`
	Author             string                 `json:"author,omitempty" xml:"author,omitempty"`
	Publisher          string                 `json:"publisher,omitempty" xml:"publisher,omitempty"`
	Group              string                 `json:"group,omitempty" xml:"group,omitempty"`
	Name               string                 `json:"name" xml:"name"`
	Version            string                 `json:"version" xml:"version"`
	Description        string                 `json:"description,omitempty" xml:"description,omitempty"`
	Scope              string                 `json:"scope,omitempty" xml:"scope,omitempty"`
	Hashes             *HashList              `json:"hashes,omitempty" xml:"hashes,omitempty"`
	Licenses           *LicenseList           `json:"licenses,omitempty" xml:"licenses,omitempty"`
	Copyright          string                 `json:"copyright,omitempty" xml:"copyright,omitempty"`
	CPE                string                 `json:"cpe,omitempty" xml:"cpe,omitempty"`
	PURL               string                 `json:"purl,omitempty" xml:"purl,omitempty"`
	SWID               *SWID                  `json:"swid,omitempty" xml:"swid,omitempty"`
	Modified           *bool                  `json:"modified,omitempty" xml:"modified,omitempty"`
	Pedigree           *Pedigree              `json:"pedigree,omitempty" xml:"pedigree,omitempty"`
	ExternalReferences *ExternalReferenceList `json:"externalReferences,omitempty" xml:"externalReferences,omitempty"`
	Components         *ComponentList         `json:"components,omitempty" xml:"components,omitempty"`
}

type Hash struct {
	Alg     string `json:"alg" xml:"alg,attr"`
	Content string `json:"content" xml:",chardata"`
}

type AttachedText struct {
	ContentType string `json:"contentType,omitempty" xml:"content-type,attr,omitempty"`
	Encoding    string `json:"encoding,omitempty" xml:"encoding,attr,omitempty"`
	Content     string `json:"content" xml:",chardata"`
}

type SWID struct {
	TagID      string        `json:"tagId" xml:"tagId,attr"`
	Name       string        `json:"name" xml:"name,attr"`
	Version    string        `json:"version,omitempty" xml:"version,attr,omitempty"`
	TagVersion *int          `json:"tagVersion,omitempty" xml:"tagVersion,attr,omitempty"`
	Patch      *bool         `json:"patch,omitempty" xml:"patch,attr,omitempty"`
	Text       *AttachedText `json:"text,omitempty" xml:"text,omitempty"`
	URL        string        `json:"url,omitempty" xml:"url,omitempty"`
}

type ExternalReference struct {
	Type    string `json:"type" xml:"type,attr"`
	URL     string `json:"url" xml:"url"`
	Comment string `json:"comment,omitempty" xml:"comment,omitempty"`
}

type Pedigree struct {
	Ancestors   *ComponentList `json:"ancestors,omitempty" xml:"ancestors,omitempty"`
	Descendants *ComponentList `json:"descendants,omitempty" xml:"descendants,omitempty"`
	Variants    *ComponentList `json:"variants,omitempty" xml:"variants,omitempty"`
	Commits     *CommitList    `json:"commits,omitempty" xml:"commits,omitempty"`
	Patches     *PatchList     `json:"patches,omitempty" xml:"patches,omitempty"`
	Notes       string         `json:"notes,omitempty" xml:"notes,omitempty"`
}

type Commit struct {
	UID       string              `json:"uid,omitempty" xml:"uid,omitempty"`
	URL       string              `json:"url,omitempty" xml:"url,omitempty"`
	Author    *IdentifiableAction `json:"author,omitempty" xml:"author,omitempty"`
	Committer *IdentifiableAction `json:"committer,omitempty" xml:"committer,omitempty"`
	Message   string              `json:"message,omitempty" xml:"message,omitempty"`
}

type IdentifiableAction struct {
	Timestamp string `json:"timestamp,omitempty" xml:"timestamp,omitempty"`
	Name      string `json:"name,omitempty" xml:"name,omitempty"`
	Email     string `json:"email,omitempty" xml:"email,omitempty"`
}

type Patch struct {
	Type     string     `json:"type" xml:"type,attr"`
	Diff     *Diff      `json:"diff,omitempty" xml:"diff,omitempty"`
	Resolves *IssueList `json:"resolves,omitempty" xml:"resolves,omitempty"`
}

type Diff struct {
	Text *AttachedText `json:"text,omitempty" xml:"text,omitempty"`
	URL  string        `json:"url,omitempty" xml:"url,omitempty"`
}

type Issue struct {
	Type        string         `json:"type" xml:"type,attr"`
	ID          string         `json:"id,omitempty" xml:"id,omitempty"`
	Name        string         `json:"name,omitempty" xml:"name,omitempty"`
	Description string         `json:"description,omitempty" xml:"description,omitempty"`
	Source      *Source        `json:"source,omitempty" xml:"source,omitempty"`
	References  *ReferenceList `json:"references,omitempty" xml:"references,omitempty"`
}

type Source struct {
	Name string `json:"name,omitempty" xml:"name,omitempty"`
	URL  string `json:"url,omitempty" xml:"url,omitempty"`
}

type Service struct {
	BOMRef             string                 `json:"bom-ref,omitempty" xml:"bom-ref,attr,omitempty"`
	Provider           *OrganizationalEntity  `json:"provider,omitempty" xml:"provider,omitempty"`
	Group              string                 `json:"group,omitempty" xml:"group,omitempty"`
	Name               string                 `json:"name" xml:"name"`
	Version            string                 `json:"version,omitempty" xml:"version,omitempty"`
	Description        string                 `json:"description,omitempty" xml:"description,omitempty"`
	Endpoints          *EndpointList          `json:"endpoints,omitempty" xml:"endpoints,omitempty"`
	Authenticated      *bool                  `json:"authenticated,omitempty" xml:"authenticated,omitempty"`
	TrustBoundary      *bool                  `json:"x-trust-boundary,omitempty" xml:"x-trust-boundary,omitempty"`
	Data               *DataList              `json:"data,omitempty" xml:"data,omitempty"`
	Licenses           *LicenseList           `json:"licenses,omitempty" xml:"licenses,omitempty"`
	ExternalReferences *ExternalReferenceList `json:"externalReferences,omitempty" xml:"externalReferences,omitempty"`
	Services           *ServiceList           `json:"services,omitempty" xml:"services,omitempty"`
}

type DataClassification struct {
	Flow           string `json:"flow" xml:"flow,attr"`
	Classification string `json:"classification" xml:",chardata"`
}
