package v1_3

import (
	"github.com/allisonsierra/bomsmith/bomsmith/model"
	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
	"github.com/allisonsierra/bomsmith/bomsmith/spec"
	"github.com/allisonsierra/bomsmith/bomsmith/spec/internal/wireutil"
)

func fromModel(bom *model.Bom) *Document {
	return &Document{
		XMLNS:              spec.V1_3.Namespace(),
		BOMFormat:          bomFormat,
		SpecVersion:        spec.V1_3.String(),
		Version:            bom.Version,
		SerialNumber:       string(bom.SerialNumber),
		Metadata:           fromMetadata(bom.Metadata),
		Components:         fromComponents(bom.Components),
		Services:           fromServices(bom.Services),
		ExternalReferences: fromExternalReferences(bom.ExternalReferences),
		Dependencies:       (*DependencyList)(wireutil.MapList(bom.Dependencies, fromDependency)),
		Compositions:       (*CompositionList)(wireutil.MapList(bom.Compositions, fromComposition)),
		Properties:         fromProperties(bom.Properties),
	}
}

func fromMetadata(m *model.Metadata) *Metadata {
	if m == nil {
		return nil
	}
	return &Metadata{
		Timestamp:   string(m.Timestamp),
		Tools:       (*ToolList)(wireutil.MapList(m.Tools, fromTool)),
		Authors:     (*AuthorList)(wireutil.MapList(m.Authors, fromContact)),
		Component:   fromComponentPtr(m.Component),
		Manufacture: fromEntity(m.Manufacture),
		Supplier:    fromEntity(m.Supplier),
		Licenses:    fromLicenses(m.Licenses),
		Properties:  fromProperties(m.Properties),
	}
}

func fromTool(t model.Tool) Tool {
	return Tool{
		Vendor:  string(t.Vendor),
		Name:    string(t.Name),
		Version: string(t.Version),
		Hashes:  fromHashes(t.Hashes),
	}
}

func fromContact(c model.OrganizationalContact) OrganizationalContact {
	return OrganizationalContact{
		Name:  string(c.Name),
		Email: string(c.Email),
		Phone: string(c.Phone),
	}
}

func fromEntity(e *model.OrganizationalEntity) *OrganizationalEntity {
	if e == nil {
		return nil
	}
	return &OrganizationalEntity{
		Name:    string(e.Name),
		URL:     wireutil.MapList(e.URL, func(u primitive.URI) string { return string(u) }),
		Contact: wireutil.MapList(e.Contact, fromContact),
	}
}

func fromComponents(components *[]model.Component) *ComponentList {
	return (*ComponentList)(wireutil.MapList(components, fromComponent))
}

func fromComponentPtr(c *model.Component) *Component {
	if c == nil {
		return nil
	}
	component := fromComponent(*c)
	return &component
}

func fromComponent(c model.Component) Component {
	return Component{
		Type:               classifications.Token(c.Type),
		MimeType:           string(c.MimeType),
		BOMRef:             c.BOMRef,
		Supplier:           fromEntity(c.Supplier),
		Author:             string(c.Author),
		Publisher:          string(c.Publisher),
		Group:              string(c.Group),
		Name:               string(c.Name),
		Version:            string(c.Version),
		Description:        string(c.Description),
		Scope:              scopes.Token(c.Scope),
		Hashes:             fromHashes(c.Hashes),
		Licenses:           fromLicenses(c.Licenses),
		Copyright:          string(c.Copyright),
		CPE:                string(c.CPE),
		PURL:               string(c.PURL),
		SWID:               fromSWID(c.SWID),
		Modified:           c.Modified,
		Pedigree:           fromPedigree(c.Pedigree),
		ExternalReferences: fromExternalReferences(c.ExternalReferences),
		Properties:         fromProperties(c.Properties),
		Components:         fromComponents(c.Components),
		Evidence:           fromEvidence(c.Evidence),
	}
}

func fromHashes(hashes *[]model.Hash) *HashList {
	return (*HashList)(wireutil.MapList(hashes, func(h model.Hash) Hash {
		return Hash{
			Alg:     hashAlgorithms.Token(h.Algorithm),
			Content: string(h.Value),
		}
	}))
}

func fromLicenses(choices *[]model.LicenseChoice) *LicenseList {
	return (*LicenseList)(wireutil.MapList(choices, func(c model.LicenseChoice) LicenseChoice {
		if c.License == nil {
			var expression string
			if c.Expression != nil {
				expression = string(*c.Expression)
			}
			return LicenseChoice{Expression: expression}
		}
		return LicenseChoice{License: &License{
			ID:   string(c.License.ID),
			Name: string(c.License.Name),
			Text: fromAttachedText(c.License.Text),
			URL:  string(c.License.URL),
		}}
	}))
}

func fromAttachedText(t *model.AttachedText) *AttachedText {
	if t == nil {
		return nil
	}
	text := AttachedText{
		ContentType: string(t.ContentType),
		Content:     t.Content,
	}
	if t.Encoding != nil {
		text.Encoding = t.Encoding.String()
	}
	return &text
}

func fromSWID(s *model.SWID) *SWID {
	if s == nil {
		return nil
	}
	return &SWID{
		TagID:      s.TagID,
		Name:       s.Name,
		Version:    s.Version,
		TagVersion: s.TagVersion,
		Patch:      s.Patch,
		Text:       fromAttachedText(s.Text),
		URL:        string(s.URL),
	}
}

func fromPedigree(p *model.Pedigree) *Pedigree {
	if p == nil {
		return nil
	}
	return &Pedigree{
		Ancestors:   fromComponents(p.Ancestors),
		Descendants: fromComponents(p.Descendants),
		Variants:    fromComponents(p.Variants),
		Commits:     (*CommitList)(wireutil.MapList(p.Commits, fromCommit)),
		Patches:     (*PatchList)(wireutil.MapList(p.Patches, fromPatch)),
		Notes:       p.Notes,
	}
}

func fromCommit(c model.Commit) Commit {
	return Commit{
		UID:       string(c.UID),
		URL:       string(c.URL),
		Author:    fromAction(c.Author),
		Committer: fromAction(c.Committer),
		Message:   string(c.Message),
	}
}

func fromAction(a *model.IdentifiableAction) *IdentifiableAction {
	if a == nil {
		return nil
	}
	return &IdentifiableAction{
		Timestamp: string(a.Timestamp),
		Name:      string(a.Name),
		Email:     string(a.Email),
	}
}

func fromPatch(p model.Patch) Patch {
	patch := Patch{
		Type:     patchClassifications.Token(p.Type),
		Resolves: (*IssueList)(wireutil.MapList(p.Resolves, fromIssue)),
	}
	if p.Diff != nil {
		patch.Diff = &Diff{
			Text: fromAttachedText(p.Diff.Text),
			URL:  string(p.Diff.URL),
		}
	}
	return patch
}

func fromIssue(i model.Issue) Issue {
	issue := Issue{
		Type:        issueClassifications.Token(i.Type),
		ID:          string(i.ID),
		Name:        string(i.Name),
		Description: string(i.Description),
		References:  (*ReferenceList)(wireutil.MapList(i.References, func(u primitive.URI) string { return string(u) })),
	}
	if i.Source != nil {
		issue.Source = &Source{
			Name: string(i.Source.Name),
			URL:  string(i.Source.URL),
		}
	}
	return issue
}

func fromEvidence(e *model.ComponentEvidence) *Evidence {
	if e == nil {
		return nil
	}
	return &Evidence{
		Licenses: fromLicenses(e.Licenses),
		Copyright: (*CopyrightList)(wireutil.MapList(e.Copyright, func(text string) Copyright {
			return Copyright{Text: text}
		})),
	}
}

func fromExternalReferences(refs *[]model.ExternalReference) *ExternalReferenceList {
	return (*ExternalReferenceList)(wireutil.MapList(refs, func(r model.ExternalReference) ExternalReference {
		return ExternalReference{
			Type:    externalReferenceTypes.Token(r.Type),
			URL:     string(r.URL),
			Comment: r.Comment,
			Hashes:  fromHashes(r.Hashes),
		}
	}))
}

func fromProperties(props *[]model.Property) *PropertyList {
	return (*PropertyList)(wireutil.MapList(props, func(p model.Property) Property {
		return Property{Name: p.Name, Value: string(p.Value)}
	}))
}

func fromServices(services *[]model.Service) *ServiceList {
	return (*ServiceList)(wireutil.MapList(services, fromService))
}

func fromService(s model.Service) Service {
	return Service{
		BOMRef:        s.BOMRef,
		Provider:      fromEntity(s.Provider),
		Group:         string(s.Group),
		Name:          string(s.Name),
		Version:       string(s.Version),
		Description:   string(s.Description),
		Endpoints:     (*EndpointList)(wireutil.MapList(s.Endpoints, func(u primitive.URI) string { return string(u) })),
		Authenticated: s.Authenticated,
		TrustBoundary: s.TrustBoundary,
		Data: (*DataList)(wireutil.MapList(s.Data, func(d model.DataClassification) DataClassification {
			return DataClassification{
				Flow:           dataFlowTypes.Token(d.Flow),
				Classification: string(d.Classification),
			}
		})),
		Licenses:           fromLicenses(s.Licenses),
		ExternalReferences: fromExternalReferences(s.ExternalReferences),
		Properties:         fromProperties(s.Properties),
		Services:           fromServices(s.Services),
	}
}

func fromDependency(d model.Dependency) Dependency {
	var children []Dependency
	for _, child := range d.Dependencies {
		children = append(children, fromDependency(child))
	}
	return Dependency{Ref: d.Ref, Dependencies: children}
}

func fromComposition(c model.Composition) Composition {
	refs := func(r model.BomReference) string { return string(r) }
	return Composition{
		Aggregate:    aggregateTypes.Token(c.Aggregate),
		Assemblies:   (*AssemblyList)(wireutil.MapList(c.Assemblies, refs)),
		Dependencies: (*DependencyRefList)(wireutil.MapList(c.Dependencies, refs)),
	}
}
