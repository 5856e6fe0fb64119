package model

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/scylladb/go-set/strset"

	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
)

type validatable interface {
	Validate() error
}

// Validate walks the whole document, re-checking every primitive value and the structural rules that the
// types alone cannot express. All findings are returned together as a *multierror.Error of *ValidationError.
func (b *Bom) Validate() error {
	v := &validator{refs: strset.New()}

	if b.Version < 1 {
		v.fail("version", fmt.Errorf("must be at least 1, got %d", b.Version))
	}
	if b.SerialNumber != "" {
		v.check("serialNumber", b.SerialNumber)
	}
	if b.Metadata != nil {
		v.metadata("metadata", b.Metadata)
	}
	if b.Components != nil {
		for i := range *b.Components {
			v.component(index("components", i), &(*b.Components)[i])
		}
	}
	if b.Services != nil {
		for i := range *b.Services {
			v.service(index("services", i), &(*b.Services)[i])
		}
	}
	if b.ExternalReferences != nil {
		v.externalReferences("externalReferences", *b.ExternalReferences)
	}
	if b.Properties != nil {
		v.properties("properties", *b.Properties)
	}

	// refs are only known once every component and service has been visited
	if b.Dependencies != nil {
		for i, d := range *b.Dependencies {
			v.dependency(index("dependencies", i), d)
		}
	}
	if b.Compositions != nil {
		for i, c := range *b.Compositions {
			v.composition(index("compositions", i), c)
		}
	}

	return v.errs.ErrorOrNil()
}

type validator struct {
	errs *multierror.Error
	refs *strset.Set
}

func (v *validator) fail(path string, err error) {
	v.errs = multierror.Append(v.errs, &ValidationError{Path: path, Err: err})
}

func (v *validator) check(path string, value validatable) {
	if err := value.Validate(); err != nil {
		v.fail(path, err)
	}
}

// text checks optional normalized strings; empty values are absent and always pass.
func (v *validator) text(path string, s primitive.NormalizedString) {
	if s != "" {
		v.check(path, s)
	}
}

func (v *validator) uri(path string, u primitive.URI) {
	if u != "" {
		v.check(path, u)
	}
}

func (v *validator) required(path string, s primitive.NormalizedString) {
	if s == "" {
		v.fail(path, ErrRequired)
		return
	}
	v.check(path, s)
}

func (v *validator) enum(path string, valid bool) {
	if !valid {
		v.fail(path, ErrInvalidEnum)
	}
}

func (v *validator) bomRef(path, ref string) {
	if ref == "" {
		return
	}
	if v.refs.Has(ref) {
		v.fail(path, fmt.Errorf("%w: %q", ErrDuplicateBOMRef, ref))
		return
	}
	v.refs.Add(ref)
}

func (v *validator) metadata(path string, m *Metadata) {
	if m.Timestamp != "" {
		v.check(field(path, "timestamp"), m.Timestamp)
	}
	if m.Tools != nil {
		for i, t := range *m.Tools {
			p := index(field(path, "tools"), i)
			v.text(field(p, "vendor"), t.Vendor)
			v.text(field(p, "name"), t.Name)
			v.text(field(p, "version"), t.Version)
			if t.Hashes != nil {
				v.hashes(field(p, "hashes"), *t.Hashes)
			}
		}
	}
	if m.Authors != nil {
		for i, a := range *m.Authors {
			v.contact(index(field(path, "authors"), i), a)
		}
	}
	if m.Component != nil {
		v.component(field(path, "component"), m.Component)
	}
	if m.Manufacture != nil {
		v.entity(field(path, "manufacture"), m.Manufacture)
	}
	if m.Supplier != nil {
		v.entity(field(path, "supplier"), m.Supplier)
	}
	if m.Licenses != nil {
		v.licenses(field(path, "licenses"), *m.Licenses)
	}
	if m.Properties != nil {
		v.properties(field(path, "properties"), *m.Properties)
	}
}

func (v *validator) component(path string, c *Component) {
	v.enum(field(path, "type"), c.Type.IsValid())
	if c.MimeType != "" {
		v.check(field(path, "mime-type"), c.MimeType)
	}
	v.bomRef(field(path, "bom-ref"), c.BOMRef)
	if c.Supplier != nil {
		v.entity(field(path, "supplier"), c.Supplier)
	}
	v.text(field(path, "author"), c.Author)
	v.text(field(path, "publisher"), c.Publisher)
	v.text(field(path, "group"), c.Group)
	v.required(field(path, "name"), c.Name)
	v.text(field(path, "version"), c.Version)
	v.text(field(path, "description"), c.Description)
	if c.Hashes != nil {
		v.hashes(field(path, "hashes"), *c.Hashes)
	}
	if c.Licenses != nil {
		v.licenses(field(path, "licenses"), *c.Licenses)
	}
	v.text(field(path, "copyright"), c.Copyright)
	if c.CPE != "" {
		v.check(field(path, "cpe"), c.CPE)
	}
	if c.PURL != "" {
		v.check(field(path, "purl"), c.PURL)
	}
	if c.SWID != nil {
		v.swid(field(path, "swid"), c.SWID)
	}
	if c.Pedigree != nil {
		v.pedigree(field(path, "pedigree"), c.Pedigree)
	}
	if c.ExternalReferences != nil {
		v.externalReferences(field(path, "externalReferences"), *c.ExternalReferences)
	}
	if c.Properties != nil {
		v.properties(field(path, "properties"), *c.Properties)
	}
	if c.Components != nil {
		for i := range *c.Components {
			v.component(index(field(path, "components"), i), &(*c.Components)[i])
		}
	}
	if c.Evidence != nil && c.Evidence.Licenses != nil {
		v.licenses(field(path, "evidence.licenses"), *c.Evidence.Licenses)
	}
}

func (v *validator) service(path string, s *Service) {
	v.bomRef(field(path, "bom-ref"), s.BOMRef)
	if s.Provider != nil {
		v.entity(field(path, "provider"), s.Provider)
	}
	v.text(field(path, "group"), s.Group)
	v.required(field(path, "name"), s.Name)
	v.text(field(path, "version"), s.Version)
	v.text(field(path, "description"), s.Description)
	if s.Endpoints != nil {
		for i, e := range *s.Endpoints {
			v.check(index(field(path, "endpoints"), i), e)
		}
	}
	if s.Data != nil {
		for i, d := range *s.Data {
			p := index(field(path, "data"), i)
			v.enum(field(p, "flow"), d.Flow.IsValid())
			v.required(field(p, "classification"), d.Classification)
		}
	}
	if s.Licenses != nil {
		v.licenses(field(path, "licenses"), *s.Licenses)
	}
	if s.ExternalReferences != nil {
		v.externalReferences(field(path, "externalReferences"), *s.ExternalReferences)
	}
	if s.Properties != nil {
		v.properties(field(path, "properties"), *s.Properties)
	}
	if s.Services != nil {
		for i := range *s.Services {
			v.service(index(field(path, "services"), i), &(*s.Services)[i])
		}
	}
}

func (v *validator) licenses(path string, choices []LicenseChoice) {
	for i, c := range choices {
		p := index(path, i)
		switch {
		case c.License != nil && c.Expression != nil, c.License == nil && c.Expression == nil:
			v.fail(p, ErrLicenseChoice)
		case c.Expression != nil:
			v.check(field(p, "expression"), *c.Expression)
		default:
			v.license(field(p, "license"), *c.License)
		}
	}
}

func (v *validator) license(path string, l License) {
	switch {
	case l.ID != "" && l.Name != "", l.ID == "" && l.Name == "":
		v.fail(path, ErrLicenseIdentifier)
	case l.ID != "":
		v.check(field(path, "id"), l.ID)
	default:
		v.check(field(path, "name"), l.Name)
	}
	if l.Text != nil {
		v.attachedText(field(path, "text"), l.Text)
	}
	v.uri(field(path, "url"), l.URL)
}

func (v *validator) attachedText(path string, t *AttachedText) {
	if t.ContentType != "" {
		v.check(field(path, "contentType"), t.ContentType)
	}
}

func (v *validator) hashes(path string, hashes []Hash) {
	for i, h := range hashes {
		p := index(path, i)
		v.enum(field(p, "alg"), h.Algorithm.IsValid())
		v.check(field(p, "content"), h.Value)
	}
}

func (v *validator) externalReferences(path string, refs []ExternalReference) {
	for i, r := range refs {
		p := index(path, i)
		v.enum(field(p, "type"), r.Type.IsValid())
		v.check(field(p, "url"), r.URL)
		if r.Hashes != nil {
			v.hashes(field(p, "hashes"), *r.Hashes)
		}
	}
}

func (v *validator) properties(path string, props []Property) {
	for i, p := range props {
		v.text(field(index(path, i), "value"), p.Value)
	}
}

func (v *validator) contact(path string, c OrganizationalContact) {
	v.text(field(path, "name"), c.Name)
	v.text(field(path, "email"), c.Email)
	v.text(field(path, "phone"), c.Phone)
}

func (v *validator) entity(path string, e *OrganizationalEntity) {
	v.text(field(path, "name"), e.Name)
	if e.URL != nil {
		for i, u := range *e.URL {
			v.check(index(field(path, "url"), i), u)
		}
	}
	if e.Contact != nil {
		for i, c := range *e.Contact {
			v.contact(index(field(path, "contact"), i), c)
		}
	}
}

func (v *validator) swid(path string, s *SWID) {
	if s.TagID == "" {
		v.fail(field(path, "tagId"), ErrRequired)
	}
	if s.Name == "" {
		v.fail(field(path, "name"), ErrRequired)
	}
	if s.Text != nil {
		v.attachedText(field(path, "text"), s.Text)
	}
	v.uri(field(path, "url"), s.URL)
}

func (v *validator) pedigree(path string, p *Pedigree) {
	v.pedigreeComponents(field(path, "ancestors"), p.Ancestors)
	v.pedigreeComponents(field(path, "descendants"), p.Descendants)
	v.pedigreeComponents(field(path, "variants"), p.Variants)
	if p.Commits != nil {
		for i, c := range *p.Commits {
			cp := index(field(path, "commits"), i)
			v.text(field(cp, "uid"), c.UID)
			v.uri(field(cp, "url"), c.URL)
			v.action(field(cp, "author"), c.Author)
			v.action(field(cp, "committer"), c.Committer)
			v.text(field(cp, "message"), c.Message)
		}
	}
	if p.Patches != nil {
		for i, patch := range *p.Patches {
			v.patch(index(field(path, "patches"), i), patch)
		}
	}
}

// pedigreeComponents checks ancestors, descendants and variants. Their bom-refs describe other documents
// and are left out of the duplicate check.
func (v *validator) pedigreeComponents(path string, components *[]Component) {
	if components == nil {
		return
	}
	nested := &validator{refs: strset.New()}
	for i := range *components {
		nested.component(index(path, i), &(*components)[i])
	}
	if nested.errs != nil {
		v.errs = multierror.Append(v.errs, nested.errs.Errors...)
	}
}

func (v *validator) action(path string, a *IdentifiableAction) {
	if a == nil {
		return
	}
	if a.Timestamp != "" {
		v.check(field(path, "timestamp"), a.Timestamp)
	}
	v.text(field(path, "name"), a.Name)
	v.text(field(path, "email"), a.Email)
}

func (v *validator) patch(path string, p Patch) {
	v.enum(field(path, "type"), p.Type.IsValid())
	if p.Diff != nil {
		if p.Diff.Text != nil {
			v.attachedText(field(path, "diff.text"), p.Diff.Text)
		}
		v.uri(field(path, "diff.url"), p.Diff.URL)
	}
	if p.Resolves == nil {
		return
	}
	for i, issue := range *p.Resolves {
		ip := index(field(path, "resolves"), i)
		v.enum(field(ip, "type"), issue.Type.IsValid())
		v.text(field(ip, "id"), issue.ID)
		v.text(field(ip, "name"), issue.Name)
		v.text(field(ip, "description"), issue.Description)
		if issue.Source != nil {
			v.text(field(ip, "source.name"), issue.Source.Name)
			v.uri(field(ip, "source.url"), issue.Source.URL)
		}
		if issue.References != nil {
			for j, r := range *issue.References {
				v.check(index(field(ip, "references"), j), r)
			}
		}
	}
}

func (v *validator) dependency(path string, d Dependency) {
	if !v.refs.Has(d.Ref) {
		v.fail(field(path, "ref"), fmt.Errorf("%w: %q", ErrUnresolvedRef, d.Ref))
	}
	for i, child := range d.Dependencies {
		v.dependency(index(field(path, "dependsOn"), i), child)
	}
}

func (v *validator) composition(path string, c Composition) {
	v.enum(field(path, "aggregate"), c.Aggregate.IsValid())
	v.references(field(path, "assemblies"), c.Assemblies)
	v.references(field(path, "dependencies"), c.Dependencies)
}

func (v *validator) references(path string, refs *[]BomReference) {
	if refs == nil {
		return
	}
	for i, r := range *refs {
		if !v.refs.Has(string(r)) {
			v.fail(index(path, i), fmt.Errorf("%w: %q", ErrUnresolvedRef, string(r)))
		}
	}
}

func field(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
