package primitive

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{ Validate() error }
		wantErr error
	}{
		{name: "uri", value: URI("https://github.com/left-pad/left-pad")},
		{name: "uri with space", value: URI("https://example.com/a b"), wantErr: ErrInvalidURI},
		{name: "uri empty", value: URI(""), wantErr: ErrInvalidURI},
		{name: "uri bad escape", value: URI("http://example.com/%zz"), wantErr: ErrInvalidURI},
		{name: "purl", value: PackageURL("pkg:npm/left-pad@1.3.0")},
		{name: "purl without scheme", value: PackageURL("npm/left-pad@1.3.0"), wantErr: ErrInvalidPURL},
		{name: "cpe 2.3", value: CPE("cpe:2.3:a:left-pad:left-pad:1.3.0:*:*:*:*:*:*:*")},
		{name: "cpe 2.2", value: CPE("cpe:/a:left-pad:left-pad:1.3.0")},
		{name: "cpe unknown binding", value: CPE("left-pad"), wantErr: ErrInvalidCPE},
		{name: "md5", value: HashValue(strings.Repeat("a", 32))},
		{name: "sha-512", value: HashValue(strings.Repeat("F", 128))},
		{name: "hash odd length", value: HashValue(strings.Repeat("a", 33)), wantErr: ErrInvalidHashValue},
		{name: "hash not hex", value: HashValue(strings.Repeat("z", 40)), wantErr: ErrInvalidHashValue},
		{name: "mime", value: MimeType("text/plain")},
		{name: "mime vendor", value: MimeType("application/vnd.cyclonedx+xml")},
		{name: "mime with params", value: MimeType("text/plain; charset=utf-8"), wantErr: ErrInvalidMimeType},
		{name: "mime missing subtype", value: MimeType("text"), wantErr: ErrInvalidMimeType},
		{name: "urn uuid", value: UrnUUID("urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79")},
		{name: "bare uuid", value: UrnUUID("3e671687-395b-41f5-a30f-a58921a69b79"), wantErr: ErrInvalidUrnUUID},
		{name: "urn uuid garbage", value: UrnUUID("urn:uuid:3e671687-395b-41f5-a30f-a58921a69bzz"), wantErr: ErrInvalidUrnUUID},
		{name: "date-time", value: DateTime("2022-03-01T12:30:00Z")},
		{name: "date-time with offset", value: DateTime("2022-03-01T12:30:00+02:00")},
		{name: "date only", value: DateTime("2022-03-01"), wantErr: ErrInvalidDateTime},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.value.Validate()
			if test.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, test.wantErr)
		})
	}
}

func TestParse_ReturnsZeroValueOnError(t *testing.T) {
	u, err := ParseURI("has space")
	assert.Error(t, err)
	assert.Empty(t, u)

	p, err := ParsePackageURL("pkg:npm/left-pad@1.3.0")
	require.NoError(t, err)
	assert.Equal(t, PackageURL("pkg:npm/left-pad@1.3.0"), p)
}

func TestNewPackageURL(t *testing.T) {
	p := NewPackageURL("cargo", "", "serde", "1.0.136")
	assert.Equal(t, PackageURL("pkg:cargo/serde@1.0.136"), p)
	assert.NoError(t, p.Validate())
}

func TestNewUrnUUID(t *testing.T) {
	first := NewUrnUUID()
	second := NewUrnUUID()

	assert.NoError(t, first.Validate())
	assert.True(t, strings.HasPrefix(first.String(), "urn:uuid:"))
	assert.NotEqual(t, first, second)

	fixed := UrnUUIDFrom(uuid.MustParse("3e671687-395b-41f5-a30f-a58921a69b79"))
	assert.Equal(t, UrnUUID("urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79"), fixed)
}

func TestMimeTypeFromHeader(t *testing.T) {
	assert.Equal(t, MimeType("text/plain"), MimeTypeFromHeader("text/plain; charset=utf-8"))
	assert.Equal(t, MimeType("application/json"), MimeTypeFromHeader("Application/JSON"))
}

func TestNewDateTime(t *testing.T) {
	local := time.Date(2022, 3, 1, 14, 30, 0, 0, time.FixedZone("x", 2*60*60))
	d := NewDateTime(local)
	assert.Equal(t, DateTime("2022-03-01T12:30:00Z"), d)

	parsed, err := d.Time()
	require.NoError(t, err)
	assert.True(t, parsed.Equal(local))
}

func TestEncoding(t *testing.T) {
	assert.Equal(t, EncodingBase64, ParseEncoding("base64"))
	assert.True(t, EncodingBase64.IsKnown())

	unknown := ParseEncoding("uuencode")
	assert.False(t, unknown.IsKnown())
	assert.Equal(t, "uuencode", unknown.String())
	assert.Equal(t, UnknownEncoding("uuencode"), unknown)
}
