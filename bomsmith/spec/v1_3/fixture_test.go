package v1_3

import (
	"strings"

	"github.com/allisonsierra/bomsmith/bomsmith/model"
	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
)

const serial = primitive.UrnUUID("urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79")

func leftPadBom() model.Bom {
	return model.Bom{
		Version:      1,
		SerialNumber: serial,
		Components: &[]model.Component{
			{Type: model.LibraryClassification, Name: "left-pad", Version: "1.3.0"},
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

// fullBom sets every field the model has, with collections that survive both encodings (no empty repeated
// elements, dependencies one level deep).
func fullBom() model.Bom {
	sha1 := primitive.HashValue(strings.Repeat("a", 40))
	sha256 := primitive.HashValue(strings.Repeat("b", 64))
	expression := primitive.SpdxExpression("MIT OR Apache-2.0")
	base64 := primitive.EncodingBase64
	unknownEncoding := primitive.UnknownEncoding("uuencode")
	licenseText := model.AttachedText{ContentType: "text/plain", Encoding: &base64, Content: "TUlU"}

	contact := model.OrganizationalContact{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-0100"}
	entity := func() *model.OrganizationalEntity {
		return &model.OrganizationalEntity{
			Name:    "Acme Inc",
			URL:     &[]primitive.URI{"https://acme.example.com", "https://acme.example.org"},
			Contact: &[]model.OrganizationalContact{contact},
		}
	}

	return model.Bom{
		Version:      3,
		SerialNumber: serial,
		Metadata: &model.Metadata{
			Timestamp: "2022-03-01T12:30:00Z",
			Tools: &[]model.Tool{
				{Vendor: "allisonsierra", Name: "bomsmith", Version: "0.1.0", Hashes: &[]model.Hash{{Algorithm: model.SHA1, Value: sha1}}},
			},
			Authors: &[]model.OrganizationalContact{contact},
			Component: &model.Component{
				Type:    model.ApplicationClassification,
				BOMRef:  "app",
				Name:    "app",
				Version: "0.1.0",
			},
			Manufacture: entity(),
			Supplier:    &model.OrganizationalEntity{Name: "Supplier Co"},
			Licenses:    &[]model.LicenseChoice{{Expression: &expression}},
			Properties:  &[]model.Property{{Name: "build", Value: "ci"}},
		},
		Components: &[]model.Component{
			{
				Type:        model.LibraryClassification,
				MimeType:    "application/javascript",
				BOMRef:      "left-pad",
				Supplier:    entity(),
				Author:      "Cameron Westland",
				Publisher:   "npm",
				Group:       "js",
				Name:        "left-pad",
				Version:     "1.3.0",
				Description: "String left pad",
				Scope:       model.RequiredScope,
				Hashes: &[]model.Hash{
					{Algorithm: model.SHA1, Value: sha1},
					{Algorithm: model.SHA256, Value: sha256},
				},
				Licenses: &[]model.LicenseChoice{
					model.NewLicense(model.License{ID: "WTFPL", Text: &licenseText, URL: "https://spdx.org/licenses/WTFPL.html"}),
					model.NewLicenseExpression("MIT OR Apache-2.0"),
					model.NewLicense(model.License{Name: "Custom License"}),
					model.NewLicenseExpression("GPL-2.0-only"),
				},
				Copyright: "Copyright 2016 Cameron Westland",
				CPE:       "cpe:2.3:a:left-pad:left-pad:1.3.0:*:*:*:*:*:*:*",
				PURL:      "pkg:npm/left-pad@1.3.0",
				SWID: &model.SWID{
					TagID:      "swidgen-left-pad",
					Name:       "left-pad",
					Version:    "1.3.0",
					TagVersion: intPtr(1),
					Patch:      boolPtr(false),
					Text:       &model.AttachedText{ContentType: "text/xml", Encoding: &unknownEncoding, Content: "PHN3aWQ+"},
					URL:        "https://example.com/swid",
				},
				Modified: boolPtr(false),
				Pedigree: &model.Pedigree{
					Ancestors: &[]model.Component{
						{Type: model.LibraryClassification, Name: "left-pad", Version: "1.2.0", PURL: "pkg:npm/left-pad@1.2.0"},
					},
					Descendants: &[]model.Component{},
					Commits: &[]model.Commit{
						{
							UID:       "4c3f8a1",
							URL:       "https://github.com/left-pad/left-pad/commit/4c3f8a1",
							Author:    &model.IdentifiableAction{Timestamp: "2022-01-01T00:00:00Z", Name: "Jane Doe", Email: "jane@example.com"},
							Committer: &model.IdentifiableAction{Name: "CI"},
							Message:   "Fix padding of empty strings",
						},
					},
					Patches: &[]model.Patch{
						{
							Type: model.BackportPatch,
							Diff: &model.Diff{URL: "https://example.com/fix.diff"},
							Resolves: &[]model.Issue{
								{
									Type:        model.DefectIssue,
									ID:          "LP-1",
									Name:        "empty strings",
									Description: "Empty strings are not padded",
									Source:      &model.Source{Name: "tracker", URL: "https://example.com/tracker"},
									References:  &[]primitive.URI{"https://example.com/LP-1"},
								},
							},
						},
					},
					Notes: "Backported from 1.4",
				},
				ExternalReferences: &[]model.ExternalReference{
					{
						Type:    model.VCSReference,
						URL:     "https://github.com/left-pad/left-pad",
						Comment: "source",
						Hashes:  &[]model.Hash{{Algorithm: model.SHA1, Value: sha1}},
					},
				},
				Properties: &[]model.Property{{Name: "npm:dev", Value: "false"}},
				Components: &[]model.Component{
					{Type: model.FileClassification, BOMRef: "left-pad/index.js", Name: "index.js", Version: "1.3.0"},
				},
				Evidence: &model.ComponentEvidence{
					Licenses:  &[]model.LicenseChoice{{Expression: &expression}},
					Copyright: &[]string{"Copyright 2016 Cameron Westland", "Copyright 2018 Contributors"},
				},
			},
		},
		Services: &[]model.Service{
			{
				BOMRef:        "registry",
				Provider:      &model.OrganizationalEntity{Name: "npm"},
				Group:         "npm",
				Name:          "registry",
				Version:       "1",
				Description:   "Package registry",
				Endpoints:     &[]primitive.URI{"https://registry.npmjs.org"},
				Authenticated: boolPtr(true),
				TrustBoundary: boolPtr(true),
				Data: &[]model.DataClassification{
					{Flow: model.OutboundDataFlow, Classification: "public"},
				},
				Licenses:           &[]model.LicenseChoice{model.NewLicense(model.License{Name: "Terms of Service"})},
				ExternalReferences: &[]model.ExternalReference{{Type: model.WebsiteReference, URL: "https://npmjs.com"}},
				Properties:         &[]model.Property{{Name: "tier", Value: "public"}},
				Services: &[]model.Service{
					{BOMRef: "registry-search", Name: "search"},
				},
			},
		},
		ExternalReferences: &[]model.ExternalReference{
			{Type: model.BuildSystemReference, URL: "https://ci.example.com/builds/42"},
		},
		Dependencies: &[]model.Dependency{
			{Ref: "app", Dependencies: []model.Dependency{{Ref: "left-pad"}, {Ref: "registry"}}},
			{Ref: "left-pad"},
		},
		Compositions: &[]model.Composition{
			{
				Aggregate:    model.CompleteAggregate,
				Assemblies:   &[]model.BomReference{"left-pad"},
				Dependencies: &[]model.BomReference{"app"},
			},
			{Aggregate: model.IncompleteThirdPartyOnlyAggregate},
		},
		Properties: &[]model.Property{{Name: "origin", Value: "test"}},
	}
}
