package primitive

const base64Token = "base64"

// Encoding names how AttachedText content is encoded. The set is open: values other than base64 are kept
// verbatim so they survive a round trip.
type Encoding struct {
	known bool
	value string
}

var EncodingBase64 = Encoding{known: true, value: base64Token}

// UnknownEncoding wraps an encoding token that has no dedicated value.
func UnknownEncoding(s string) Encoding {
	return Encoding{value: s}
}

func ParseEncoding(s string) Encoding {
	if s == base64Token {
		return EncodingBase64
	}
	return UnknownEncoding(s)
}

// IsKnown reports whether the encoding is one of the named values.
func (e Encoding) IsKnown() bool {
	return e.known
}

func (e Encoding) String() string {
	return e.value
}
