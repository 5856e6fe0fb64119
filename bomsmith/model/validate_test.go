package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
)

func validBom() Bom {
	return Bom{
		Version:      1,
		SerialNumber: "urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79",
		Metadata: &Metadata{
			Timestamp: "2022-03-01T12:30:00Z",
			Component: &Component{Type: ApplicationClassification, Name: "app", Version: "0.1.0", BOMRef: "app"},
		},
		Components: &[]Component{
			{
				Type:     LibraryClassification,
				Name:     "left-pad",
				Version:  "1.3.0",
				BOMRef:   "left-pad",
				PURL:     "pkg:npm/left-pad@1.3.0",
				Licenses: &[]LicenseChoice{NewLicenseExpression("MIT")},
				Hashes: &[]Hash{
					{Algorithm: SHA1, Value: primitive.HashValue(strings.Repeat("a", 40))},
				},
			},
		},
		Dependencies: &[]Dependency{
			{Ref: "app", Dependencies: []Dependency{{Ref: "left-pad"}}},
			{Ref: "left-pad"},
		},
	}
}

func findingPaths(t *testing.T, err error) map[string]error {
	t.Helper()
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr), "expected a multierror, got %+v", err)

	paths := make(map[string]error)
	for _, e := range merr.Errors {
		var verr *ValidationError
		require.True(t, errors.As(e, &verr), "unexpected finding %+v", e)
		paths[verr.Path] = verr.Err
	}
	return paths
}

func TestBom_Validate_Valid(t *testing.T) {
	bom := validBom()
	assert.NoError(t, bom.Validate())
}

func TestBom_Validate_Findings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Bom)
		path    string
		wantErr error
	}{
		{
			name:    "unnormalized name",
			mutate:  func(b *Bom) { (*b.Components)[0].Name = "left\npad" },
			path:    "components[0].name",
			wantErr: primitive.ErrInvalidWhitespace,
		},
		{
			name:    "missing name",
			mutate:  func(b *Bom) { (*b.Components)[0].Name = "" },
			path:    "components[0].name",
			wantErr: ErrRequired,
		},
		{
			name:    "unset classification",
			mutate:  func(b *Bom) { (*b.Components)[0].Type = UnknownClassification },
			path:    "components[0].type",
			wantErr: ErrInvalidEnum,
		},
		{
			name: "bad license id in list",
			mutate: func(b *Bom) {
				(*b.Components)[0].Licenses = &[]LicenseChoice{NewLicense(License{ID: "MIT"}), NewLicense(License{ID: "not-a-license"})}
			},
			path: "components[0].licenses[1].license.id",
		},
		{
			name: "license with id and name",
			mutate: func(b *Bom) {
				(*b.Components)[0].Licenses = &[]LicenseChoice{NewLicense(License{ID: "MIT", Name: "MIT License"})}
			},
			path:    "components[0].licenses[0].license",
			wantErr: ErrLicenseIdentifier,
		},
		{
			name: "license choice with both variants",
			mutate: func(b *Bom) {
				expression := primitive.SpdxExpression("MIT")
				(*b.Components)[0].Licenses = &[]LicenseChoice{
					NewLicense(License{ID: "MIT"}),
					{License: &License{Name: "MIT License"}, Expression: &expression},
				}
			},
			path:    "components[0].licenses[1]",
			wantErr: ErrLicenseChoice,
		},
		{
			name:    "bad purl",
			mutate:  func(b *Bom) { (*b.Components)[0].PURL = "left-pad" },
			path:    "components[0].purl",
			wantErr: primitive.ErrInvalidPURL,
		},
		{
			name:    "bad hash",
			mutate:  func(b *Bom) { (*(*b.Components)[0].Hashes)[0].Value = "abc" },
			path:    "components[0].hashes[0].content",
			wantErr: primitive.ErrInvalidHashValue,
		},
		{
			name:    "bad timestamp",
			mutate:  func(b *Bom) { b.Metadata.Timestamp = "yesterday" },
			path:    "metadata.timestamp",
			wantErr: primitive.ErrInvalidDateTime,
		},
		{
			name: "duplicate bom-ref",
			mutate: func(b *Bom) {
				*b.Components = append(*b.Components, Component{Type: LibraryClassification, Name: "copy", BOMRef: "left-pad"})
			},
			path:    "components[1].bom-ref",
			wantErr: ErrDuplicateBOMRef,
		},
		{
			name: "unresolved nested dependency",
			mutate: func(b *Bom) {
				(*b.Dependencies)[0].Dependencies = append((*b.Dependencies)[0].Dependencies, Dependency{Ref: "ghost"})
			},
			path:    "dependencies[0].dependsOn[1].ref",
			wantErr: ErrUnresolvedRef,
		},
		{
			name: "unresolved composition assembly",
			mutate: func(b *Bom) {
				b.Compositions = &[]Composition{{Aggregate: CompleteAggregate, Assemblies: &[]BomReference{"ghost"}}}
			},
			path:    "compositions[0].assemblies[0]",
			wantErr: ErrUnresolvedRef,
		},
		{
			name: "bad service endpoint",
			mutate: func(b *Bom) {
				b.Services = &[]Service{{Name: "api", Endpoints: &[]primitive.URI{"https://example.com/a b"}}}
			},
			path:    "services[0].endpoints[0]",
			wantErr: primitive.ErrInvalidURI,
		},
		{
			name:    "bad serial number",
			mutate:  func(b *Bom) { b.SerialNumber = "3e671687" },
			path:    "serialNumber",
			wantErr: primitive.ErrInvalidUrnUUID,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bom := validBom()
			test.mutate(&bom)

			findings := findingPaths(t, bom.Validate())
			require.Contains(t, findings, test.path, "findings: %+v", findings)
			if test.wantErr != nil {
				assert.ErrorIs(t, findings[test.path], test.wantErr)
			}
		})
	}
}

func TestBom_Validate_CollectsEveryFinding(t *testing.T) {
	bom := validBom()
	(*bom.Components)[0].Name = "tab\there"
	(*bom.Components)[0].CPE = "nope"
	bom.Metadata.Timestamp = "later"

	findings := findingPaths(t, bom.Validate())
	assert.Len(t, findings, 3)
	assert.Contains(t, findings, "components[0].name")
	assert.Contains(t, findings, "components[0].cpe")
	assert.Contains(t, findings, "metadata.timestamp")
}

func TestBom_Validate_SpdxReason(t *testing.T) {
	bom := validBom()
	(*bom.Components)[0].Licenses = &[]LicenseChoice{NewLicense(License{ID: "MIT"}), NewLicenseExpression("not a real license")}

	findings := findingPaths(t, bom.Validate())
	require.Contains(t, findings, "components[0].licenses[1].expression")

	var spdxErr *primitive.InvalidSpdxExpressionError
	require.True(t, errors.As(findings["components[0].licenses[1].expression"], &spdxErr))
	assert.Equal(t, "unknown license or other term: not", spdxErr.Reason)
}
