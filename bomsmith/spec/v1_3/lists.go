package v1_3

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

type CompositionList []Composition

func (l CompositionList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "composition", l)
}

func (l *CompositionList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "composition", (*[]Composition)(l))
}

type PropertyList []Property

func (l PropertyList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeList(e, start, "property", l)
}

func (l *PropertyList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeList(d, start, "property", (*[]Property)(l))
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

// CopyrightList holds evidence copyright texts: objects with a text key in JSON, bare <text> elements in XML.
type CopyrightList []Copyright

func (l CopyrightList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	texts := make([]string, len(l))
	for i, c := range l {
		texts[i] = c.Text
	}
	return wireutil.EncodeList(e, start, "text", texts)
}

func (l *CopyrightList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var texts []string
	if err := wireutil.DecodeList(d, start, "text", &texts); err != nil {
		return err
	}
	copyrights := make(CopyrightList, len(texts))
	for i, text := range texts {
		copyrights[i] = Copyright{Text: text}
	}
	*l = copyrights
	return nil
}

// AssemblyList and DependencyRefList are lists of bom-refs: strings in JSON, elements carrying a ref
// attribute in XML.
type AssemblyList []string

func (l AssemblyList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeRefs(e, start, "assembly", l)
}

func (l *AssemblyList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeRefs(d, start, "assembly", (*[]string)(l))
}

type DependencyRefList []string

func (l DependencyRefList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return wireutil.EncodeRefs(e, start, "dependency", l)
}

func (l *DependencyRefList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return wireutil.DecodeRefs(d, start, "dependency", (*[]string)(l))
}
