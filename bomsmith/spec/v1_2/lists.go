package v1_2

import (
	"encoding/xml"

	"github.com/allisonsierra/bomsmith/bomsmith/spec/internal/wireutil"
)

// Collections are written in XML as a wrapper element holding one element per item. JSON uses the plain
// array form of the underlying slice.

type ComponentList []Component

func (l ComponentList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "component", l)
}

func (l *ComponentList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "component", (*[]Component)(l))
}

type ServiceList []Service

func (l ServiceList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "service", l)
}

func (l *ServiceList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "service", (*[]Service)(l))
}

type ExternalReferenceList []ExternalReference

func (l ExternalReferenceList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "reference", l)
}

func (l *ExternalReferenceList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "reference", (*[]ExternalReference)(l))
}

type DependencyList []Dependency

func (l DependencyList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "dependency", l)
}

func (l *DependencyList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "dependency", (*[]Dependency)(l))
}

type HashList []Hash

func (l HashList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "hash", l)
}

func (l *HashList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "hash", (*[]Hash)(l))
}

type ToolList []Tool

func (l ToolList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "tool", l)
}

func (l *ToolList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "tool", (*[]Tool)(l))
}

type AuthorList []OrganizationalContact

func (l AuthorList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "author", l)
}

func (l *AuthorList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "author", (*[]OrganizationalContact)(l))
}

type EndpointList []string

func (l EndpointList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "endpoint", l)
}

func (l *EndpointList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "endpoint", (*[]string)(l))
}

type DataList []DataClassification

func (l DataList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "classification", l)
}

func (l *DataList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "classification", (*[]DataClassification)(l))
}

type CommitList []Commit

func (l CommitList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "commit", l)
}

func (l *CommitList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "commit", (*[]Commit)(l))
}

type PatchList []Patch

func (l PatchList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "patch", l)
}

func (l *PatchList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "patch", (*[]Patch)(l))
}

type IssueList []Issue

func (l IssueList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "issue", l)
}

func (l *IssueList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "issue", (*[]Issue)(l))
}

type ReferenceList []string

func (l ReferenceList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "url", l)
}

func (l *ReferenceList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "url", (*[]string)(l))
}

