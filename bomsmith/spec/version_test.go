package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{input: "1.3", want: V1_3},
		{input: "v1.3", want: V1_3},
		{input: "1.3.0", want: V1_3},
		{input: "1.2", want: V1_2},
		{input: " 1.2 ", want: V1_2},
		{input: "1.4", wantErr: true},
		{input: "1.3.1", wantErr: true},
		{input: "1", wantErr: true},
		{input: "latest", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			actual, err := ParseVersion(test.input)
			if test.wantErr {
				assert.Error(t, err)
				assert.Equal(t, UnknownVersion, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, actual)
		})
	}
}

func TestVersion_Namespace(t *testing.T) {
	assert.Equal(t, "http://cyclonedx.org/schema/bom/1.3", V1_3.Namespace())
	assert.Equal(t, "http://cyclonedx.org/schema/bom/1.2", V1_2.Namespace())

	v, err := VersionFromNamespace("http://cyclonedx.org/schema/bom/1.2")
	require.NoError(t, err)
	assert.Equal(t, V1_2, v)

	_, err = VersionFromNamespace("http://example.com/bom/1.2")
	assert.Error(t, err)
}
