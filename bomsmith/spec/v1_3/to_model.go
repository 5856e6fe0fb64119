package v1_3

import (
	"github.com/allisonsierra/bomsmith/bomsmith/model"
	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
	"github.com/allisonsierra/bomsmith/bomsmith/spec/internal/wireutil"
)

// ToModel converts the document without validating it; call Validate on the result to check values read
// from untrusted input.
func (d *Document) ToModel() *model.Bom {
	version := d.Version
	if version == 0 {
		version = 1
	}
	return &model.Bom{
		Version:            version,
		SerialNumber:       primitive.UrnUUID(d.SerialNumber),
		Metadata:           toMetadata(d.Metadata),
		Components:         toComponents(d.Components),
		Services:           toServices(d.Services),
		ExternalReferences: toExternalReferences(d.ExternalReferences),
		Dependencies:       wireutil.MapList((*[]Dependency)(d.Dependencies), toDependency),
		Compositions:       wireutil.MapList((*[]Composition)(d.Compositions), toComposition),
		Properties:         toProperties(d.Properties),
	}
}

func toMetadata(m *Metadata) *model.Metadata {
	if m == nil {
		return nil
	}
	return &model.Metadata{
		Timestamp:   primitive.DateTime(m.Timestamp),
		Tools:       wireutil.MapList((*[]Tool)(m.Tools), toTool),
		Authors:     wireutil.MapList((*[]OrganizationalContact)(m.Authors), toContact),
		Component:   toComponentPtr(m.Component),
		Manufacture: toEntity(m.Manufacture),
		Supplier:    toEntity(m.Supplier),
		Licenses:    toLicenses(m.Licenses),
		Properties:  toProperties(m.Properties),
	}
}

func toTool(t Tool) model.Tool {
	return model.Tool{
		Vendor:  primitive.NormalizedString(t.Vendor),
		Name:    primitive.NormalizedString(t.Name),
		Version: primitive.NormalizedString(t.Version),
		Hashes:  toHashes(t.Hashes),
	}
}

func toContact(c OrganizationalContact) model.OrganizationalContact {
	return model.OrganizationalContact{
		Name:  primitive.NormalizedString(c.Name),
		Email: primitive.NormalizedString(c.Email),
		Phone: primitive.NormalizedString(c.Phone),
	}
}

func toEntity(e *OrganizationalEntity) *model.OrganizationalEntity {
	if e == nil {
		return nil
	}
	return &model.OrganizationalEntity{
		Name:    primitive.NormalizedString(e.Name),
		URL:     wireutil.MapList(e.URL, toURI),
		Contact: wireutil.MapList(e.Contact, toContact),
	}
}

func toURI(s string) primitive.URI {
	return primitive.URI(s)
}

func toComponents(components *ComponentList) *[]model.Component {
	return wireutil.MapList((*[]Component)(components), toComponent)
}

func toComponentPtr(c *Component) *model.Component {
	if c == nil {
		return nil
	}
	component := toComponent(*c)
	return &component
}

func toComponent(c Component) model.Component {
	return model.Component{
		Type:               classifications.Value(c.Type),
		MimeType:           primitive.MimeType(c.MimeType),
		BOMRef:             c.BOMRef,
		Supplier:           toEntity(c.Supplier),
		Author:             primitive.NormalizedString(c.Author),
		Publisher:          primitive.NormalizedString(c.Publisher),
		Group:              primitive.NormalizedString(c.Group),
		Name:               primitive.NormalizedString(c.Name),
		Version:            primitive.NormalizedString(c.Version),
		Description:        primitive.NormalizedString(c.Description),
		Scope:              scopes.Value(c.Scope),
		Hashes:             toHashes(c.Hashes),
		Licenses:           toLicenses(c.Licenses),
		Copyright:          primitive.NormalizedString(c.Copyright),
		CPE:                primitive.CPE(c.CPE),
		PURL:               primitive.PackageURL(c.PURL),
		SWID:               toSWID(c.SWID),
		Modified:           c.Modified,
		Pedigree:           toPedigree(c.Pedigree),
		ExternalReferences: toExternalReferences(c.ExternalReferences),
		Properties:         toProperties(c.Properties),
		Components:         toComponents(c.Components),
		Evidence:           toEvidence(c.Evidence),
	}
}

func toHashes(hashes *HashList) *[]model.Hash {
	return wireutil.MapList((*[]Hash)(hashes), func(h Hash) model.Hash {
		return model.Hash{
			Algorithm: hashAlgorithms.Value(h.Alg),
			Value:     primitive.HashValue(h.Content),
		}
	})
}

func toLicenses(list *LicenseList) *[]model.LicenseChoice {
	return wireutil.MapList((*[]LicenseChoice)(list), func(choice LicenseChoice) model.LicenseChoice {
		if choice.License == nil {
			return model.NewLicenseExpression(primitive.SpdxExpression(choice.Expression))
		}
		return model.NewLicense(model.License{
			ID:   primitive.SpdxIdentifier(choice.License.ID),
			Name: primitive.NormalizedString(choice.License.Name),
			Text: toAttachedText(choice.License.Text),
			URL:  primitive.URI(choice.License.URL),
		})
	})
}

func toAttachedText(t *AttachedText) *model.AttachedText {
	if t == nil {
		return nil
	}
	text := model.AttachedText{
		ContentType: primitive.MimeType(t.ContentType),
		Content:     t.Content,
	}
	if t.Encoding != "" {
		encoding := primitive.ParseEncoding(t.Encoding)
		text.Encoding = &encoding
	}
	return &text
}

func toSWID(s *SWID) *model.SWID {
	if s == nil {
		return nil
	}
	return &model.SWID{
		TagID:      s.TagID,
		Name:       s.Name,
		Version:    s.Version,
		TagVersion: s.TagVersion,
		Patch:      s.Patch,
		Text:       toAttachedText(s.Text),
		URL:        primitive.URI(s.URL),
	}
}

func toPedigree(p *Pedigree) *model.Pedigree {
	if p == nil {
		return nil
	}
	return &model.Pedigree{
		Ancestors:   toComponents(p.Ancestors),
		Descendants: toComponents(p.Descendants),
		Variants:    toComponents(p.Variants),
		Commits:     wireutil.MapList((*[]Commit)(p.Commits), toCommit),
		Patches:     wireutil.MapList((*[]Patch)(p.Patches), toPatch),
		Notes:       p.Notes,
	}
}

func toCommit(c Commit) model.Commit {
	return model.Commit{
		UID:       primitive.NormalizedString(c.UID),
		URL:       primitive.URI(c.URL),
		Author:    toAction(c.Author),
		Committer: toAction(c.Committer),
		Message:   primitive.NormalizedString(c.Message),
	}
}

func toAction(a *IdentifiableAction) *model.IdentifiableAction {
	if a == nil {
		return nil
	}
	return &model.IdentifiableAction{
		Timestamp: primitive.DateTime(a.Timestamp),
		Name:      primitive.NormalizedString(a.Name),
		Email:     primitive.NormalizedString(a.Email),
	}
}

func toPatch(p Patch) model.Patch {
	patch := model.Patch{
		Type:     patchClassifications.Value(p.Type),
		Resolves: wireutil.MapList((*[]Issue)(p.Resolves), toIssue),
	}
	if p.Diff != nil {
		patch.Diff = &model.Diff{
			Text: toAttachedText(p.Diff.Text),
			URL:  primitive.URI(p.Diff.URL),
		}
	}
	return patch
}

func toIssue(i Issue) model.Issue {
	issue := model.Issue{
		Type:        issueClassifications.Value(i.Type),
		ID:          primitive.NormalizedString(i.ID),
		Name:        primitive.NormalizedString(i.Name),
		Description: primitive.NormalizedString(i.Description),
		References:  wireutil.MapList((*[]string)(i.References), toURI),
	}
	if i.Source != nil {
		issue.Source = &model.Source{
			Name: primitive.NormalizedString(i.Source.Name),
			URL:  primitive.URI(i.Source.URL),
		}
	}
	return issue
}

func toEvidence(e *Evidence) *model.ComponentEvidence {
	if e == nil {
		return nil
	}
	return &model.ComponentEvidence{
		Licenses:  toLicenses(e.Licenses),
		Copyright: wireutil.MapList((*[]Copyright)(e.Copyright), func(c Copyright) string { return c.Text }),
	}
}

func toExternalReferences(refs *ExternalReferenceList) *[]model.ExternalReference {
	return wireutil.MapList((*[]ExternalReference)(refs), func(r ExternalReference) model.ExternalReference {
		return model.ExternalReference{
			Type:    externalReferenceTypes.Value(r.Type),
			URL:     primitive.URI(r.URL),
			Comment: r.Comment,
			Hashes:  toHashes(r.Hashes),
		}
	})
}

func toProperties(props *PropertyList) *[]model.Property {
	return wireutil.MapList((*[]Property)(props), func(p Property) model.Property {
		return model.Property{Name: p.Name, Value: primitive.NormalizedString(p.Value)}
	})
}

func toServices(services *ServiceList) *[]model.Service {
	return wireutil.MapList((*[]Service)(services), toService)
}

func toService(s Service) model.Service {
	return model.Service{
		BOMRef:        s.BOMRef,
		Provider:      toEntity(s.Provider),
		Group:         primitive.NormalizedString(s.Group),
		Name:          primitive.NormalizedString(s.Name),
		Version:       primitive.NormalizedString(s.Version),
		Description:   primitive.NormalizedString(s.Description),
		Endpoints:     wireutil.MapList((*[]string)(s.Endpoints), toURI),
		Authenticated: s.Authenticated,
		TrustBoundary: s.TrustBoundary,
		Data: wireutil.MapList((*[]DataClassification)(s.Data), func(d DataClassification) model.DataClassification {
			return model.DataClassification{
				Flow:           dataFlowTypes.Value(d.Flow),
				Classification: primitive.NormalizedString(d.Classification),
			}
		}),
		Licenses:           toLicenses(s.Licenses),
		ExternalReferences: toExternalReferences(s.ExternalReferences),
		Properties:         toProperties(s.Properties),
		Services:           toServices(s.Services),
	}
}

func toDependency(d Dependency) model.Dependency {
	var children []model.Dependency
	for _, child := range d.Dependencies {
		children = append(children, toDependency(child))
	}
	return model.Dependency{Ref: d.Ref, Dependencies: children}
}

func toComposition(c Composition) model.Composition {
	ref := func(s string) model.BomReference { return model.BomReference(s) }
	return model.Composition{
		Aggregate:    aggregateTypes.Value(c.Aggregate),
		Assemblies:   wireutil.MapList((*[]string)(c.Assemblies), ref),
		Dependencies: wireutil.MapList((*[]string)(c.Dependencies), ref),
	}
}
