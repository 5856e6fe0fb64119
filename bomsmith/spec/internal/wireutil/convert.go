package wireutil

// MapList converts every element of a list, keeping an absent (nil) list absent and an empty list empty.
func MapList[In, Out any](in *[]In, fn func(In) Out) *[]Out {
	if in == nil {
		return nil
	}
	out := make([]Out, len(*in))
	for i, v := range *in {
		out[i] = fn(v)
	}
	return &out
}

// TokenTable maps the values of a closed enumeration to their wire tokens and back. Lookups of values or
// tokens that are not in the table yield the zero value.
type TokenTable[E comparable] struct {
	tokens map[E]string
	values map[string]E
}

func NewTokenTable[E comparable](tokens map[E]string) TokenTable[E] {
	values := make(map[string]E, len(tokens))
	for v, t := range tokens {
		values[t] = v
	}
	return TokenTable[E]{tokens: tokens, values: values}
}

func (t TokenTable[E]) Token(v E) string {
	return t.tokens[v]
}

func (t TokenTable[E]) Value(token string) E {
	return t.values[token]
}

// Len is the number of known tokens.
func (t TokenTable[E]) Len() int {
	return len(t.tokens)
}
