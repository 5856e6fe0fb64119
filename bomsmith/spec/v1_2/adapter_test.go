package v1_2

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/anchore/go-testutils"
	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisonsierra/bomsmith/bomsmith/format"
	"github.com/allisonsierra/bomsmith/bomsmith/model"
	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
)

var update = flag.Bool("update", false, "update the *.golden files for 1.2 documents")

const serial = primitive.UrnUUID("urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79")

func encode(t *testing.T, bom model.Bom, f format.Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, format.Encode(&buf, NewAdapter().FromModel(&bom), f))
	return buf.Bytes()
}

func decode(t *testing.T, data []byte, f format.Format) *model.Bom {
	t.Helper()
	doc := NewAdapter().NewDocument()
	require.NoError(t, format.Decode(bytes.NewReader(data), doc, f))
	return doc.ToModel()
}

// representableBom only uses fields that exist in 1.2.
func representableBom() model.Bom {
	sha1 := primitive.HashValue(strings.Repeat("c", 40))
	expression := primitive.SpdxExpression("Apache-2.0")
	modified := true

	return model.Bom{
		Version:      1,
		SerialNumber: serial,
		Metadata: &model.Metadata{
			Timestamp: "2022-03-01T12:30:00Z",
			Tools:     &[]model.Tool{{Vendor: "allisonsierra", Name: "bomsmith", Version: "0.1.0"}},
			Authors:   &[]model.OrganizationalContact{{Name: "Jane Doe"}},
			Component: &model.Component{Type: model.ApplicationClassification, BOMRef: "app", Name: "app", Version: "0.1.0"},
			Supplier:  &model.OrganizationalEntity{Name: "Acme Inc", URL: &[]primitive.URI{"https://acme.example.com"}},
		},
		Components: &[]model.Component{
			{
				Type:     model.FrameworkClassification,
				BOMRef:   "serde",
				Group:    "rust",
				Name:     "serde",
				Version:  "1.0.136",
				Scope:    model.OptionalScope,
				Hashes:   &[]model.Hash{{Algorithm: model.SHA1, Value: sha1}},
				Licenses: &[]model.LicenseChoice{{Expression: &expression}},
				PURL:     "pkg:cargo/serde@1.0.136",
				Modified: &modified,
				ExternalReferences: &[]model.ExternalReference{
					{Type: model.DistributionReference, URL: "https://crates.io/crates/serde"},
				},
				Components: &[]model.Component{},
			},
		},
		Services: &[]model.Service{
			{Name: "crates.io", Endpoints: &[]primitive.URI{"https://crates.io/api/v1"}},
		},
		Dependencies: &[]model.Dependency{
			{Ref: "app", Dependencies: []model.Dependency{{Ref: "serde"}}},
		},
	}
}

func TestEncodeXML_Serde(t *testing.T) {
	bom := model.Bom{
		Version:      1,
		SerialNumber: serial,
		Components: &[]model.Component{
			{Type: model.LibraryClassification, Name: "serde", Version: "1.0.136", PURL: "pkg:cargo/serde@1.0.136"},
		},
	}
	actual := encode(t, bom, format.XML)

	if *update {
		testutils.UpdateGoldenFileContents(t, actual)
	}

	var expected = testutils.GetGoldenFileContents(t)

	if !bytes.Equal(expected, actual) {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(expected), string(actual), true)
		t.Errorf("mismatched output:\n%s", dmp.DiffPrettyText(diffs))
	}
}

func TestEncodeJSON_DeclaresVersion(t *testing.T) {
	actual := string(encode(t, representableBom(), format.JSON))
	assert.True(t, strings.HasPrefix(actual, "{\n  \"bomFormat\": \"CycloneDX\",\n  \"specVersion\": \"1.2\",\n  \"version\": 1,\n"), actual)
}

func TestRoundTrip(t *testing.T) {
	expected := representableBom()
	require.NoError(t, expected.Validate())

	for _, f := range format.AvailableFormats {
		t.Run(f.String(), func(t *testing.T) {
			actual := decode(t, encode(t, expected, f), f)
			if d := cmp.Diff(&expected, actual, cmp.AllowUnexported(primitive.Encoding{})); d != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestFromModel_DropsFieldsMissingFromSchema(t *testing.T) {
	expression := primitive.SpdxExpression("MIT")
	sha1 := primitive.HashValue(strings.Repeat("c", 40))

	bom := representableBom()
	bom.Properties = &[]model.Property{{Name: "origin", Value: "test"}}
	bom.Compositions = &[]model.Composition{{Aggregate: model.CompleteAggregate}}
	bom.Metadata.Licenses = &[]model.LicenseChoice{{Expression: &expression}}
	bom.Metadata.Properties = &[]model.Property{{Name: "build", Value: "ci"}}
	serde := &(*bom.Components)[0]
	serde.Properties = &[]model.Property{{Name: "cargo:features", Value: "derive"}}
	serde.Evidence = &model.ComponentEvidence{Copyright: &[]string{"Copyright Serde developers"}}
	(*serde.ExternalReferences)[0].Hashes = &[]model.Hash{{Algorithm: model.SHA1, Value: sha1}}
	(*bom.Services)[0].Properties = &[]model.Property{{Name: "tier", Value: "public"}}

	for _, f := range format.AvailableFormats {
		t.Run(f.String(), func(t *testing.T) {
			data := encode(t, bom, f)
			for _, dropped := range []string{"properties", "compositions", "evidence", "Copyright Serde developers", "cargo:features"} {
				assert.NotContains(t, string(data), dropped)
			}

			actual := decode(t, data, f)
			if d := cmp.Diff(representableBom(), *actual, cmp.AllowUnexported(primitive.Encoding{})); d != "" {
				t.Errorf("1.3-only fields survived (-want +got):\n%s", d)
			}
		})
	}
}

func TestDecode_IgnoresLaterSchemaElements(t *testing.T) {
	raw := `<?xml version="1.0" encoding="UTF-8"?>
<bom xmlns="http://cyclonedx.org/schema/bom/1.2" version="2">
  <components>
    <component type="library">
      <name>serde</name>
      <version>1.0.136</version>
      <properties>
        <property name="ignored">value</property>
      </properties>
    </component>
  </components>
  <compositions>
    <composition>
      <aggregate>complete</aggregate>
    </composition>
  </compositions>
</bom>`

	bom := decode(t, []byte(raw), format.XML)
	assert.Equal(t, 2, bom.Version)
	require.NotNil(t, bom.Components)
	assert.Nil(t, (*bom.Components)[0].Properties)
	assert.Nil(t, bom.Compositions)
}
