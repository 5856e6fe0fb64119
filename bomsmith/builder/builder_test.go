package builder

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisonsierra/bomsmith/bomsmith/model"
	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
)

var fixedTime = time.Date(2022, 3, 1, 12, 30, 0, 0, time.UTC)

func readFixture(t *testing.T) *Manifest {
	t.Helper()
	f, err := os.Open("test-fixtures/manifest.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	m, err := ReadManifest(f)
	require.NoError(t, err)
	return m
}

func build(t *testing.T, m *Manifest) *model.Bom {
	t.Helper()
	bom, err := Build(m, Config{DeterministicSerial: true, ToolVersion: "0.1.0", Now: func() time.Time { return fixedTime }})
	require.NoError(t, err)
	return bom
}

func TestBuild(t *testing.T) {
	bom := build(t, readFixture(t))
	require.NoError(t, bom.Validate())

	require.NotNil(t, bom.Metadata)
	assert.Equal(t, primitive.DateTime("2022-03-01T12:30:00Z"), bom.Metadata.Timestamp)
	require.NotNil(t, bom.Metadata.Tools)
	assert.Equal(t, []model.Tool{{Vendor: "allisonsierra", Name: "bomsmith", Version: "0.1.0"}}, *bom.Metadata.Tools)

	root := bom.Metadata.Component
	require.NotNil(t, root)
	assert.Equal(t, model.ApplicationClassification, root.Type)
	assert.Equal(t, "app 0.1.0", root.BOMRef)
	assert.Equal(t, model.UnsetScope, root.Scope)
	assert.Equal(t, primitive.PackageURL("pkg:cargo/app@0.1.0"), root.PURL)
	assert.Equal(t, primitive.NormalizedString("Jane Doe <jane@example.com>"), root.Author)

	require.NotNil(t, bom.Components)
	var refs []string
	for _, c := range *bom.Components {
		refs = append(refs, c.BOMRef)
		assert.Equal(t, model.LibraryClassification, c.Type)
		assert.Equal(t, model.RequiredScope, c.Scope)
	}
	assert.Equal(t, []string{"ring 0.16.20", "serde 1.0.136", "serde_derive 1.0.136"}, refs)

	ring, serde, derive := (*bom.Components)[0], (*bom.Components)[1], (*bom.Components)[2]

	// the expression is invalid, so it is kept by name
	require.NotNil(t, ring.Licenses)
	assert.Equal(t, []model.LicenseChoice{model.NewLicense(model.License{Name: "LicenseRef-ring and some prose"})}, *ring.Licenses)

	require.NotNil(t, serde.Licenses)
	assert.Equal(t, []model.LicenseChoice{model.NewLicenseExpression("MIT OR Apache-2.0")}, *serde.Licenses)
	assert.Equal(t, primitive.NormalizedString("A generic serialization/deserialization framework "), serde.Description)
	assert.Equal(t, primitive.NormalizedString("Erick Tryzelaar <erick.tryzelaar@gmail.com>, David Tolnay <dtolnay@gmail.com>"), serde.Author)
	assert.Equal(t, primitive.PackageURL("pkg:cargo/serde@1.0.136"), serde.PURL)
	require.NotNil(t, serde.ExternalReferences)
	assert.Equal(t, []model.ExternalReference{
		{Type: model.WebsiteReference, URL: "https://serde.rs"},
		{Type: model.VCSReference, URL: "https://github.com/serde-rs/serde"},
	}, *serde.ExternalReferences)
	require.NotNil(t, serde.Properties)
	assert.Equal(t, []model.Property{{Name: sourceProperty, Value: "registry+https://github.com/rust-lang/crates.io-index"}}, *serde.Properties)

	require.NotNil(t, derive.Licenses)
	assert.Equal(t, []model.LicenseChoice{model.NewLicenseExpression("MIT OR Apache-2.0")}, *derive.Licenses)
	require.NotNil(t, derive.Hashes)
	assert.Equal(t, model.SHA256, (*derive.Hashes)[0].Algorithm)

	require.NotNil(t, bom.Dependencies)
	assert.Equal(t, []model.Dependency{
		{Ref: "app 0.1.0", Dependencies: []model.Dependency{{Ref: "ring 0.16.20"}, {Ref: "serde 1.0.136"}}},
		{Ref: "ring 0.16.20"},
		{Ref: "serde 1.0.136", Dependencies: []model.Dependency{{Ref: "serde_derive 1.0.136"}}},
		{Ref: "serde_derive 1.0.136"},
	}, *bom.Dependencies)
}

func TestBuild_LicenseList(t *testing.T) {
	m := &Manifest{
		Name:     "app",
		Packages: []Package{{ID: "a", Name: "a", Licenses: []string{"ISC", "Custom License"}}},
	}
	bom := build(t, m)
	require.NoError(t, bom.Validate())

	c := (*bom.Components)[0]
	require.NotNil(t, c.Licenses)
	assert.Equal(t, []model.LicenseChoice{
		model.NewLicense(model.License{ID: "ISC"}),
		model.NewLicense(model.License{Name: "Custom License"}),
	}, *c.Licenses)
	assert.Empty(t, c.PURL)
}

func TestBuild_RootNotListed(t *testing.T) {
	m := &Manifest{
		Name:     "workspace",
		Version:  "2.0.0",
		Packages: []Package{{ID: "a", Name: "a", Version: "1.0.0", Ecosystem: "npm"}},
	}
	bom := build(t, m)
	require.NoError(t, bom.Validate())

	root := bom.Metadata.Component
	require.NotNil(t, root)
	assert.Equal(t, "workspace", root.BOMRef)
	assert.Equal(t, primitive.NormalizedString("2.0.0"), root.Version)
	assert.Len(t, *bom.Components, 1)
	assert.Equal(t, []model.Dependency{{Ref: "workspace"}, {Ref: "a"}}, *bom.Dependencies)
}

func TestBuild_Checksums(t *testing.T) {
	tests := []struct {
		checksum string
		expected *model.Hash
	}{
		{checksum: strings.Repeat("a", 64), expected: &model.Hash{Algorithm: model.SHA256, Value: primitive.HashValue(strings.Repeat("a", 64))}},
		{checksum: "SHA1:" + strings.Repeat("B", 40), expected: &model.Hash{Algorithm: model.SHA1, Value: primitive.HashValue(strings.Repeat("b", 40))}},
		{checksum: "crc32:deadbeef"},
		{checksum: "sha256:not-hex"},
	}

	for _, test := range tests {
		t.Run(test.checksum, func(t *testing.T) {
			assert.Equal(t, test.expected, hash(Package{ID: "p", Checksum: test.checksum}))
		})
	}
}

func TestBuild_DeterministicSerial(t *testing.T) {
	first := build(t, readFixture(t))
	second := build(t, readFixture(t))
	assert.Equal(t, first.SerialNumber, second.SerialNumber)
	require.NoError(t, first.SerialNumber.Validate())

	changed := readFixture(t)
	changed.Version = "0.2.0"
	assert.NotEqual(t, first.SerialNumber, build(t, changed).SerialNumber)

	random, err := Build(readFixture(t), Config{})
	require.NoError(t, err)
	assert.NotEqual(t, first.SerialNumber, random.SerialNumber)
}

func TestReadManifest_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{name: "missing name", manifest: "packages: []"},
		{name: "duplicate ids", manifest: "name: x\npackages:\n  - {id: a, name: a}\n  - {id: a, name: b}"},
		{name: "package without name", manifest: "name: x\npackages:\n  - {id: a}"},
		{name: "unknown edge target", manifest: "name: x\npackages:\n  - {id: a, name: a}\nedges:\n  a: [b]"},
		{name: "unknown edge source", manifest: "name: x\npackages:\n  - {id: a, name: a}\nedges:\n  b: [a]"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadManifest(strings.NewReader(test.manifest))
			assert.ErrorIs(t, err, ErrInvalidManifest)
		})
	}
}

func TestReadManifest_JSON(t *testing.T) {
	m, err := ReadManifest(strings.NewReader(`{"name": "app", "packages": [{"id": "a", "name": "a", "license": "MIT"}], "edges": {"a": []}}`))
	require.NoError(t, err)
	assert.Equal(t, "app", m.Name)
	assert.Equal(t, "MIT", m.Packages[0].License)
}
